package demo

import (
	"math/rand/v2"

	"github.com/handiism/piechart/internal/chart"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	maxParts     = 10
	maxPartValue = 100
	maxLineWidth = 30
)

// Generator produces random chart input.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a Generator drawing from rnd. A nil rnd uses a
// randomly seeded source.
func NewGenerator(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rnd: rnd}
}

// Parts returns between 1 and 10 parts with integer values in [1, 100].
func (g *Generator) Parts() []chart.Part {
	n := g.rnd.IntN(maxParts) + 1
	parts := make([]chart.Part, n)
	for i := range parts {
		parts[i] = chart.Part{
			Color: g.Color(),
			Value: float64(g.rnd.IntN(maxPartValue) + 1),
		}
	}
	return parts
}

// Color returns an opaque color with uniformly random channels.
func (g *Generator) Color() colorful.Color {
	return colorful.Color{
		R: g.rnd.Float64(),
		G: g.rnd.Float64(),
		B: g.rnd.Float64(),
	}
}

// Mode returns Pie or Donut with equal probability. Donut line widths are
// integers in [0, 30).
func (g *Generator) Mode() chart.Mode {
	if g.rnd.IntN(2) == 0 {
		return chart.Pie()
	}
	return chart.Donut(float64(g.rnd.IntN(maxLineWidth)))
}
