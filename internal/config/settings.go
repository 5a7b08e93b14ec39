package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Settings represents a caselang.yaml file.
type Settings struct {
	// CaseSensitive sets CaseSensitive when present.
	CaseSensitive *bool `yaml:"case_sensitive,omitempty"`

	// Trace logs every match attempt to stderr.
	Trace bool `yaml:"trace,omitempty"`

	// Color is one of auto, always, never. Defaults to auto.
	Color string `yaml:"color,omitempty"`
}

// LoadSettings reads and parses a caselang.yaml file.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	return ParseSettings(data, path)
}

// ParseSettings parses caselang.yaml content from bytes.
// The path argument is used only for error messages.
func ParseSettings(data []byte, path string) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := s.validate(path); err != nil {
		return nil, err
	}
	s.setDefaults()
	return &s, nil
}

// FindSettings searches for caselang.yaml starting from dir and walking up
// to parent directories. It returns an empty path and nil error if none exists.
func FindSettings(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range SettingsFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (s *Settings) validate(path string) error {
	switch s.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color must be one of %s, %s, %s, got %q",
			path, ColorAuto, ColorAlways, ColorNever, s.Color)
	}
	return nil
}

func (s *Settings) setDefaults() {
	if s.Color == "" {
		s.Color = ColorAuto
	}
}

// ApplyEnv folds the CASELANG_CASESENSITIVE environment variable into s.
// It wins over the settings file; callers apply command line flags after it.
func (s *Settings) ApplyEnv() error {
	v, ok := os.LookupEnv(CaseSensitiveEnvVar)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", CaseSensitiveEnvVar, err)
	}
	s.CaseSensitive = &b
	return nil
}

// Apply writes the settings into the process-wide flags.
func (s *Settings) Apply() {
	if s.CaseSensitive != nil {
		CaseSensitive = *s.CaseSensitive
	}
}
