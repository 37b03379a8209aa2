package main

import (
	"flag"
	"strings"

	"github.com/handiism/piechart/internal/config"
)

// options holds the command line flags.
type options struct {
	parts     string
	random    bool
	seed      uint64
	name      string
	config    string
	output    string
	formats   string
	mode      string
	lineWidth float64
	angle     float64
	size      int
	noAnimate bool
	verbose   bool
}

// newOptions registers the flags on fs.
func newOptions(fs *flag.FlagSet) *options {
	o := &options{}
	fs.StringVar(&o.parts, "parts", "", "Parts as color:value pairs, e.g. \"red:1,#0000ff:3\"")
	fs.BoolVar(&o.random, "random", false, "Generate random parts and mode")
	fs.Uint64Var(&o.seed, "seed", 0, "Seed for -random (0 picks a random seed)")
	fs.StringVar(&o.name, "name", "chart", "Chart name used for the title and file name")
	fs.StringVar(&o.config, "config", "", "Path to config file (.json or .toml)")
	fs.StringVar(&o.output, "output", "", "Output directory (overrides config)")
	fs.StringVar(&o.formats, "format", "", "Comma separated output formats: png,jpeg,svg,gif (overrides config)")
	fs.StringVar(&o.mode, "mode", "", "Chart mode: pie or donut (overrides config)")
	fs.Float64Var(&o.lineWidth, "line-width", 0, "Donut line width in pixels (overrides config)")
	fs.Float64Var(&o.angle, "angle", 0, "Start angle in degrees, clockwise from 3 o'clock (overrides config)")
	fs.IntVar(&o.size, "size", 0, "Width and height in pixels (overrides config)")
	fs.BoolVar(&o.noAnimate, "no-animate", false, "Write fully drawn charts without a reveal animation")
	fs.BoolVar(&o.verbose, "verbose", false, "Show verbose output")
	return o
}

// apply overrides settings with every flag given on the command line and
// returns the names of those flags. Values are taken as given, so
// "-angle -90" applies and a bad "-size 0" is left to settings validation.
func (o *options) apply(s *config.Settings, fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["output"] {
		s.OutputPath = o.output
	}
	if set["format"] {
		s.Formats = splitList(o.formats)
	}
	if set["mode"] {
		s.Mode = o.mode
	}
	if set["line-width"] {
		s.LineWidth = o.lineWidth
	}
	if set["angle"] {
		s.StartAngle = o.angle
	}
	if set["size"] {
		s.Width, s.Height = o.size, o.size
	}
	if o.noAnimate {
		s.Animate = false
	}
	if o.verbose {
		s.LogLevel = "debug"
	}
	return set
}

// splitList splits a comma separated list, trimming blanks and dropping
// empty entries.
func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
