package chart

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultStartAngle points to 12 o'clock in a y-down coordinate system.
const DefaultStartAngle = 3 * math.Pi / 2

// Part is one weighted, colored slice of the chart.
//
// Value must not be negative. A zero value is allowed and produces a
// zero-length segment.
type Part struct {
	Color colorful.Color
	Value float64
}

type modeKind int

const (
	modePie modeKind = iota
	modeDonut
)

// Mode selects how segments are stroked.
//
// The zero Mode is Pie.
type Mode struct {
	kind      modeKind
	lineWidth float64
}

// Pie strokes every segment from the center to the edge, producing solid
// wedges.
func Pie() Mode {
	return Mode{kind: modePie}
}

// Donut strokes every segment with a fixed line width, leaving the center
// hollow.
func Donut(lineWidth float64) Mode {
	return Mode{kind: modeDonut, lineWidth: lineWidth}
}

// IsDonut reports whether the mode is Donut.
func (m Mode) IsDonut() bool {
	return m.kind == modeDonut
}

// LineWidth returns the configured donut line width, or 0 for Pie.
func (m Mode) LineWidth() float64 {
	if m.kind != modeDonut {
		return 0
	}
	return m.lineWidth
}

// String returns "pie" or "donut".
func (m Mode) String() string {
	if m.kind == modeDonut {
		return "donut"
	}
	return "pie"
}

// Point is a position on the drawing surface.
type Point struct {
	X, Y float64
}

// Bounds is the size of the drawing surface. Its origin is the top-left
// corner.
type Bounds struct {
	Width, Height float64
}

// Empty reports whether the surface has no area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Center returns the middle of the surface.
func (b Bounds) Center() Point {
	return Point{X: b.Width / 2, Y: b.Height / 2}
}

func (b Bounds) halfExtent() float64 {
	return math.Min(b.Width, b.Height) / 2
}

// Model holds the chart configuration and the dirty flag that gates the
// animation plan.
//
// A Model is not safe for concurrent use. The host must confine all calls
// to a single goroutine.
type Model struct {
	parts      []Part
	mode       Mode
	startAngle float64
	animate    bool
	bounds     Bounds

	dirty        bool
	onInvalidate func()
}

// NewModel creates a model with no parts, Pie mode, DefaultStartAngle and
// animation enabled. The model starts dirty so the first render animates.
func NewModel() *Model {
	return &Model{
		mode:       Pie(),
		startAngle: DefaultStartAngle,
		animate:    true,
		dirty:      true,
	}
}

// OnInvalidate registers fn to be called after every mutation. Passing nil
// removes the observer.
func (m *Model) OnInvalidate(fn func()) {
	m.onInvalidate = fn
}

// SetParts replaces the part sequence. The slice is copied.
func (m *Model) SetParts(parts []Part) {
	m.parts = append([]Part(nil), parts...)
	m.invalidate()
}

// SetMode replaces the stroke mode.
func (m *Model) SetMode(mode Mode) {
	m.mode = mode
	m.invalidate()
}

// SetStartAngle sets the angle, in radians, where the first segment starts.
// Any value is accepted.
func (m *Model) SetStartAngle(angle float64) {
	m.startAngle = angle
	m.invalidate()
}

// SetAnimationEnabled turns the reveal animation on or off.
func (m *Model) SetAnimationEnabled(enabled bool) {
	m.animate = enabled
	m.invalidate()
}

func (m *Model) invalidate() {
	m.dirty = true
	if m.onInvalidate != nil {
		m.onInvalidate()
	}
}

// Parts returns a copy of the part sequence.
func (m *Model) Parts() []Part {
	return append([]Part(nil), m.parts...)
}

// Mode returns the stroke mode.
func (m *Model) Mode() Mode { return m.mode }

// StartAngle returns the angle where the first segment starts.
func (m *Model) StartAngle() float64 { return m.startAngle }

// AnimationEnabled reports whether renders after a mutation produce a plan.
func (m *Model) AnimationEnabled() bool { return m.animate }

// Bounds returns the surface passed to the most recent Render call.
func (m *Model) Bounds() Bounds { return m.bounds }

// NeedsRedraw reports whether the model changed since the last render that
// consumed the dirty flag.
func (m *Model) NeedsRedraw() bool { return m.dirty }

// TotalWeight returns the sum of all part values, or 0 when there are none.
func (m *Model) TotalWeight() float64 {
	var total float64
	for _, p := range m.parts {
		total += p.Value
	}
	return total
}

// StrokeWidth returns the arc stroke width for the given surface.
func (m *Model) StrokeWidth(b Bounds) float64 {
	if m.mode.IsDonut() {
		return m.mode.LineWidth()
	}
	return b.halfExtent()
}

// Radius returns the arc radius for the given surface, keeping the stroked
// ring inside it.
func (m *Model) Radius(b Bounds) float64 {
	return b.halfExtent() - m.StrokeWidth(b)/2
}
