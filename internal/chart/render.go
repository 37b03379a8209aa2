package chart

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// AnimationDuration is the length of a full reveal, in time units,
// regardless of how many parts the chart has.
const AnimationDuration = 2.0

// Segment is the arc computed for one part.
type Segment struct {
	// Index is the position of the part in the model's sequence.
	Index int

	Color       colorful.Color
	StrokeWidth float64
	Center      Point
	Radius      float64

	// StartAngle and EndAngle are in radians, clockwise from the x axis.
	// EndAngle is never less than StartAngle.
	StartAngle float64
	EndAngle   float64
}

// Sweep returns the angular length of the segment.
func (s Segment) Sweep() float64 {
	return s.EndAngle - s.StartAngle
}

// EndAt returns the end angle of the segment when only fraction of it is
// drawn. fraction is clamped to [0, 1].
func (s Segment) EndAt(fraction float64) float64 {
	return s.StartAngle + s.Sweep()*clamp01(fraction)
}

// PointAt returns the point on the arc's center line at angle.
func (s Segment) PointAt(angle float64) Point {
	return Point{
		X: s.Center.X + s.Radius*math.Cos(angle),
		Y: s.Center.Y + s.Radius*math.Sin(angle),
	}
}

// AnimationStep schedules the reveal of one segment relative to the start
// of the plan.
type AnimationStep struct {
	Index    int
	Delay    float64
	Duration float64
}

// Result is the output of Render.
type Result struct {
	Segments []Segment

	// Plan is nil unless this render was the first one after a mutation
	// and animation is enabled.
	Plan Plan
}

// Render computes one segment per part for the surface b and, on the first
// render after a mutation, the animation plan.
//
// A surface without area produces nothing and leaves the model dirty, so
// the first real paint still animates. Empty or all-zero part sequences
// produce nothing and consume the dirty flag.
func Render(m *Model, b Bounds) Result {
	m.bounds = b
	if b.Empty() {
		return Result{}
	}

	initial := m.dirty
	m.dirty = false

	total := m.TotalWeight()
	if len(m.parts) == 0 || total <= 0 {
		return Result{}
	}

	var (
		center = b.Center()
		width  = m.StrokeWidth(b)
		radius = m.Radius(b)
		acc    float64
	)

	segments := make([]Segment, len(m.parts))
	for i, p := range m.parts {
		start := m.startAngle + (acc/total)*2*math.Pi
		acc += p.Value
		end := m.startAngle + (acc/total)*2*math.Pi

		segments[i] = Segment{
			Index:       i,
			Color:       p.Color,
			StrokeWidth: width,
			Center:      center,
			Radius:      radius,
			StartAngle:  start,
			EndAngle:    end,
		}
	}

	res := Result{Segments: segments}
	if initial && m.animate {
		res.Plan = makePlan(m.parts, total)
	}
	return res
}

func makePlan(parts []Part, total float64) Plan {
	plan := make(Plan, len(parts))
	var t float64
	for i, p := range parts {
		d := p.Value / total * AnimationDuration
		plan[i] = AnimationStep{Index: i, Delay: t, Duration: d}
		t += d
	}
	return plan
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
