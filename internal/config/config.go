// Package config locates the stint data directory and loads the yaml
// settings file that configures the picker.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"stint/internal/dateformat"
	"stint/internal/rangeinput"
)

const (
	AppName      = "stint"
	DbName       = "stint.db"
	SettingsName = "settings.yaml"
)

// DataDir returns the path to the stint data directory (~/.stint/),
// creating it if needed. STINT_DATA_DIR overrides the location,
// primarily for testing.
func DataDir() (string, error) {
	if dataDir := os.Getenv("STINT_DATA_DIR"); dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return dataDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(home, "."+AppName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// DatabasePath returns the path to the history database.
func DatabasePath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, DbName), nil
}

// SettingsPath returns the path to the settings file.
func SettingsPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, SettingsName), nil
}

// Settings is the persisted picker configuration. Dates are stored as
// YYYY-MM-DD strings; empty means unbounded.
type Settings struct {
	Pattern             string `yaml:"pattern"`
	MinDate             string `yaml:"min_date,omitempty"`
	MaxDate             string `yaml:"max_date,omitempty"`
	InvalidDateMessage  string `yaml:"invalid_date_message,omitempty"`
	OutOfRangeMessage   string `yaml:"out_of_range_message,omitempty"`
	OverlappingMessage  string `yaml:"overlapping_dates_message,omitempty"`
	AllowSingleDayRange bool   `yaml:"allow_single_day_range"`
	AllowUnboundedRange bool   `yaml:"allow_unbounded_range"`
	AllowRelativeInput  bool   `yaml:"allow_relative_input"`
	OpenOnFocus         bool   `yaml:"open_on_focus"`
	SelectAllOnFocus    bool   `yaml:"select_all_on_focus"`
	HistorySize         int    `yaml:"history_size"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Pattern:             dateformat.DefaultPattern,
		AllowSingleDayRange: true,
		AllowUnboundedRange: true,
		AllowRelativeInput:  true,
		OpenOnFocus:         true,
		SelectAllOnFocus:    true,
		HistorySize:         5,
	}
}

// LoadSettings reads the settings file, returning defaults when it does
// not exist.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultSettings(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes the settings file.
func (s Settings) Save(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Validate checks the pattern and bound dates.
func (s Settings) Validate() error {
	if s.Pattern != "" && !dateformat.KnownPattern(s.Pattern) {
		return fmt.Errorf("unknown date pattern %q", s.Pattern)
	}

	min, err := s.boundDate(s.MinDate)
	if err != nil {
		return fmt.Errorf("invalid min_date %q", s.MinDate)
	}
	max, err := s.boundDate(s.MaxDate)
	if err != nil {
		return fmt.Errorf("invalid max_date %q", s.MaxDate)
	}
	if !min.IsZero() && !max.IsZero() && dateformat.After(min, max) {
		return fmt.Errorf("min_date %s is after max_date %s", s.MinDate, s.MaxDate)
	}
	if s.HistorySize < 0 {
		return fmt.Errorf("history_size must not be negative")
	}
	return nil
}

// Options converts the settings into controller options.
func (s Settings) Options() rangeinput.Options {
	min, _ := s.boundDate(s.MinDate)
	max, _ := s.boundDate(s.MaxDate)

	return rangeinput.Options{
		Pattern:                 s.Pattern,
		MinDate:                 min,
		MaxDate:                 max,
		InvalidDateMessage:      s.InvalidDateMessage,
		OutOfRangeMessage:       s.OutOfRangeMessage,
		OverlappingDatesMessage: s.OverlappingMessage,
		AllowSingleDayRange:     s.AllowSingleDayRange,
		AllowUnboundedRange:     s.AllowUnboundedRange,
		AllowRelativeInput:      s.AllowRelativeInput,
		OpenOnFocus:             s.OpenOnFocus,
		SelectAllOnFocus:        s.SelectAllOnFocus,
	}
}

// boundDate parses a bound; empty means unbounded (zero time).
func (s Settings) boundDate(text string) (time.Time, error) {
	if text == "" {
		return time.Time{}, nil
	}
	r := dateformat.Parse(text, "YYYY-MM-DD")
	if r.Kind != dateformat.KindValid {
		return time.Time{}, fmt.Errorf("not a date: %q", text)
	}
	return r.Date, nil
}
