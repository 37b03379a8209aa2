package demo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/handiism/piechart/internal/chart"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ParseParts parses comma separated "color:value" pairs. An entry without
// a color ("3") takes the next palette color. Values must be finite and
// not negative.
func ParseParts(s string) ([]chart.Part, error) {
	var parts []chart.Part
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		colorText, valueText, found := strings.Cut(entry, ":")
		if !found {
			colorText, valueText = "", entry
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(valueText), 64)
		if err != nil {
			return nil, fmt.Errorf("part %q: invalid value: %w", entry, err)
		}
		if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("part %q: value must be a finite non-negative number", entry)
		}

		c := Palette(len(parts))
		if colorText = strings.TrimSpace(colorText); colorText != "" {
			c, err = ParseColor(colorText)
			if err != nil {
				return nil, fmt.Errorf("part %q: %w", entry, err)
			}
		}

		parts = append(parts, chart.Part{Color: c, Value: value})
	}
	return parts, nil
}

// ParseColor parses a hex color ("#rrggbb" or "#rgb") or a CSS color name.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return c, nil
	}

	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("unknown color %q", s)
	}
	c, _ := colorful.MakeColor(named)
	return c, nil
}
