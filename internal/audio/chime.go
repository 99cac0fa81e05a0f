// Package audio plays a short tone whenever a triangle vertex bounces.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/trails/internal/config"
	"github.com/iburimskiy/trails/internal/motion"
)

// Chime turns bounces into tones on the speaker.
type Chime struct {
	sampleRate beep.SampleRate
	duration   time.Duration
	mu         sync.Mutex
	muted      bool
}

// NewChime initializes the speaker. It must be called at most once per
// process.
func NewChime(sampleRate int) (*Chime, error) {
	sr := beep.SampleRate(sampleRate)
	// 1/20 s buffer
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Chime{
		sampleRate: sr,
		duration:   config.ChimeDurationMs * time.Millisecond,
	}, nil
}

// Bounce plays the tone for b. Vertices get different pitches and the y
// axis sounds a fifth above the x axis.
func (c *Chime) Bounce(b motion.Bounce) {
	c.mu.Lock()
	muted := c.muted
	c.mu.Unlock()
	if muted {
		return
	}
	speaker.Play(Tone(c.sampleRate, Pitch(b), c.duration, config.ChimeVolume))
}

func (c *Chime) SetMuted(m bool) {
	c.mu.Lock()
	c.muted = m
	c.mu.Unlock()
}

func (c *Chime) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Close stops anything still playing.
func (c *Chime) Close() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}

// Pitch returns the tone frequency for a bounce.
func Pitch(b motion.Bounce) float64 {
	hz := config.ChimeBaseHz * math.Pow(2, float64(b.Vertex)*4/12)
	if b.Axis == motion.AxisY {
		hz *= 1.5
	}
	return hz
}

// Tone is a sine at freq Hz with a linear fade-out, lasting d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	total := sr.N(d)
	if total <= 0 {
		return beep.Silence(0)
	}
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)

	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			fade := 1 - float64(pos)/float64(total)
			v := math.Sin(step*float64(pos)) * volume * fade
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	}))
}
