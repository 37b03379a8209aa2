package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/handiism/piechart/internal/chart"
	"github.com/pelletier/go-toml/v2"
)

// Settings holds all configuration options.
type Settings struct {
	// Chart settings
	Width      int     `json:"width" toml:"width"`
	Height     int     `json:"height" toml:"height"`
	Mode       string  `json:"mode" toml:"mode"` // pie, donut
	LineWidth  float64 `json:"line_width" toml:"line_width"`
	StartAngle float64 `json:"start_angle" toml:"start_angle"` // degrees, clockwise from 3 o'clock
	Animate    bool    `json:"animate" toml:"animate"`
	Background string  `json:"background" toml:"background"`

	// Output settings
	OutputPath     string   `json:"output_path" toml:"output_path"`
	FileNameFormat string   `json:"file_name_format" toml:"file_name_format"`
	Formats        []string `json:"formats" toml:"formats"` // png, jpeg, svg, gif
	JPEGQuality    int      `json:"jpeg_quality" toml:"jpeg_quality"`

	// Animation playback
	FramesPerUnit int     `json:"frames_per_unit" toml:"frames_per_unit"`
	TimeUnitMs    int     `json:"time_unit_ms" toml:"time_unit_ms"`
	Workers       int     `json:"workers" toml:"workers"`
	RotateStep    float64 `json:"rotate_step" toml:"rotate_step"` // degrees per key press in the TUI

	// Logging
	LogLevel string `json:"log_level" toml:"log_level"`
	LogJSON  bool   `json:"log_json" toml:"log_json"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		Width:      400,
		Height:     400,
		Mode:       "pie",
		LineWidth:  40,
		StartAngle: 270,
		Animate:    true,
		Background: "#ffffff",

		OutputPath:     filepath.Join(homeDir, "Pictures", "Charts"),
		FileNameFormat: "{name}-{mode}",
		Formats:        []string{"png", "svg"},
		JPEGQuality:    90,

		FramesPerUnit: 15,
		TimeUnitMs:    1000,
		Workers:       4,
		RotateStep:    15,

		LogLevel: "info",
	}
}

// Load reads settings from a JSON or TOML file, chosen by extension.
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isTOML(path) {
		err = toml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return settings, nil
}

// Save writes settings to a JSON or TOML file, chosen by extension.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Validate reports the first setting that cannot be used.
func (s *Settings) Validate() error {
	switch {
	case s.Width <= 0 || s.Height <= 0:
		return fmt.Errorf("size %dx%d must be positive", s.Width, s.Height)
	case s.Mode != "pie" && s.Mode != "donut":
		return fmt.Errorf("unknown mode %q (want pie or donut)", s.Mode)
	case s.Mode == "donut" && s.LineWidth <= 0:
		return fmt.Errorf("donut line width must be positive, got %v", s.LineWidth)
	case s.FramesPerUnit <= 0:
		return fmt.Errorf("frames per unit must be positive, got %d", s.FramesPerUnit)
	case s.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", s.Workers)
	case s.JPEGQuality < 1 || s.JPEGQuality > 100:
		return fmt.Errorf("jpeg quality must be in [1, 100], got %d", s.JPEGQuality)
	}

	for _, f := range s.Formats {
		if _, ok := knownFormats[strings.ToLower(strings.TrimSpace(f))]; !ok {
			return fmt.Errorf("unknown output format %q", f)
		}
	}
	return nil
}

var knownFormats = map[string]struct{}{
	"png":  {},
	"jpeg": {},
	"jpg":  {},
	"svg":  {},
	"gif":  {},
}

// ToMode converts settings to a chart Mode.
func (s *Settings) ToMode() chart.Mode {
	if s.Mode == "donut" {
		return chart.Donut(s.LineWidth)
	}
	return chart.Pie()
}

// StartAngleRadians returns StartAngle converted to radians.
func (s *Settings) StartAngleRadians() float64 {
	return s.StartAngle * math.Pi / 180
}

// Bounds returns the configured drawing surface.
func (s *Settings) Bounds() chart.Bounds {
	return chart.Bounds{Width: float64(s.Width), Height: float64(s.Height)}
}

// TimeUnit returns the wall-clock length of one animation time unit.
func (s *Settings) TimeUnit() time.Duration {
	if s.TimeUnitMs <= 0 {
		return time.Second
	}
	return time.Duration(s.TimeUnitMs) * time.Millisecond
}

// ApplyTo configures m from the chart settings.
func (s *Settings) ApplyTo(m *chart.Model) {
	m.SetMode(s.ToMode())
	m.SetStartAngle(s.StartAngleRadians())
	m.SetAnimationEnabled(s.Animate)
}
