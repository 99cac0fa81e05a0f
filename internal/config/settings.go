package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
)

const (
	ModeTriangle = "triangle"
	ModePoints   = "points"
	ModeBoth     = "both"

	BackendEbiten = "ebiten"
	BackendTerm   = "term"
)

type Settings struct {
	Mode         string `json:"mode"`
	Backend      string `json:"backend"`
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Sound        bool   `json:"sound"`
	ShowHUD      bool   `json:"show_hud"`
	TerminalFPS  int    `json:"terminal_fps"`
}

func Default() *Settings {
	return &Settings{
		Mode:         ModeBoth,
		Backend:      BackendEbiten,
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		Sound:        false,
		ShowHUD:      true,
		TerminalFPS:  TerminalFPS,
	}
}

// DefaultPath returns $HOME/.config/trails/settings.json, creating the
// directory if needed.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "trails")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.json"), nil
}

// LoadSettings reads the settings file at path. A missing file is created
// with defaults; an unparsable one is ignored in favour of defaults.
func LoadSettings(path string) (*Settings, error) {
	defaults := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", path)
			if err := createDefaultSettings(path, defaults); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return defaults, nil
		}
		return nil, err
	}

	// Check for unrecognised keys
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaults, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range raw {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	// Start from defaults so omitted keys keep their default value.
	settings := Default()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return defaults, nil
	}

	settings.Validate()
	return settings, nil
}

// Validate resets out-of-range values to their defaults.
func (s *Settings) Validate() {
	d := Default()

	switch s.Mode {
	case ModeTriangle, ModePoints, ModeBoth:
	default:
		log.Printf("Invalid mode %q, must be one of triangle, points, both, using default %q", s.Mode, d.Mode)
		s.Mode = d.Mode
	}

	switch s.Backend {
	case BackendEbiten, BackendTerm:
	default:
		log.Printf("Invalid backend %q, must be ebiten or term, using default %q", s.Backend, d.Backend)
		s.Backend = d.Backend
	}

	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		log.Printf("Invalid window size %dx%d, using default %dx%d",
			s.WindowWidth, s.WindowHeight, d.WindowWidth, d.WindowHeight)
		s.WindowWidth = d.WindowWidth
		s.WindowHeight = d.WindowHeight
	}

	if s.TerminalFPS < 1 || s.TerminalFPS > 120 {
		log.Printf("Invalid terminal_fps value %d, must be between 1 and 120, using default %d",
			s.TerminalFPS, d.TerminalFPS)
		s.TerminalFPS = d.TerminalFPS
	}
}

func (s *Settings) ShowTriangle() bool {
	return s.Mode == ModeTriangle || s.Mode == ModeBoth
}

func (s *Settings) ShowPoints() bool {
	return s.Mode == ModePoints || s.Mode == ModeBoth
}

func createDefaultSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if jsonTag := field.Tag.Get("json"); jsonTag != "" {
			tagName := strings.Split(jsonTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
