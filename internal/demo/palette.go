package demo

import "github.com/lucasb-eyer/go-colorful"

// palette is Paul Tol's qualitative color scheme, readable for color blind
// viewers. See https://personal.sron.nl/~pault/
var palette = []string{
	"#4477AA", // blue
	"#EE6677", // rose
	"#228833", // green
	"#CCBB44", // olive
	"#66CCEE", // cyan
	"#AA3377", // purple
	"#BBBBBB", // grey
	"#EE8866", // orange
	"#44BB99", // teal
	"#FFAABB", // pink
}

// Palette returns the palette color for index i, cycling through the
// palette.
func Palette(i int) colorful.Color {
	if i < 0 {
		i = -i
	}
	c, _ := colorful.Hex(palette[i%len(palette)])
	return c
}
