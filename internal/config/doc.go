// Package config provides configuration management for piechart.
//
// This package handles:
//   - Loading and saving settings from JSON or TOML files
//   - Default configuration values
//   - Conversion to chart types (Mode, Bounds, start angle)
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// 400x400 pie chart starting at 12 o'clock
//	// Animated reveal, PNG and SVG output
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.toml")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// Files ending in .toml are parsed as TOML, anything else as JSON.
//
// # Saving Settings
//
//	settings.Mode = "donut"
//	settings.LineWidth = 24
//	err := settings.Save("/path/to/config.json")
package config
