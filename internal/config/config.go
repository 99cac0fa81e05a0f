package config

const (
	WindowWidth  = 400
	WindowHeight = 400

	// Point accumulator
	Capacity      = 10001
	ColorDecimals = 2
	PointSize     = 5

	// Motion integrator
	VelocityDivisor = 50
	VertexCount     = 3

	// Fragment colour cycle: fragment coords are divided by ShaderScale,
	// time (ms) by TimeScale.
	ShaderScale = 400.0
	TimeScale   = 1000.0

	// Bounce chime
	ChimeSampleRate = 44100
	ChimeDurationMs = 60
	ChimeBaseHz     = 440.0
	ChimeVolume     = 0.25

	// Terminal backend
	TerminalFPS = 30
)
