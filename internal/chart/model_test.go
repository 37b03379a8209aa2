package chart

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

var (
	red  = colorful.Color{R: 1}
	blue = colorful.Color{B: 1}
)

func TestNewModel_Defaults(t *testing.T) {
	m := NewModel()

	assert.Empty(t, m.Parts())
	assert.False(t, m.Mode().IsDonut())
	assert.Equal(t, 3*math.Pi/2, m.StartAngle())
	assert.True(t, m.AnimationEnabled())
	assert.True(t, m.NeedsRedraw(), "a new model must start dirty")
	assert.Zero(t, m.TotalWeight())
}

func TestModel_TotalWeight(t *testing.T) {
	tests := []struct {
		name  string
		parts []Part
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []Part{{red, 4}}, 4},
		{"several", []Part{{red, 1}, {blue, 3}, {red, 0.5}}, 4.5},
		{"all zero", []Part{{red, 0}, {blue, 0}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			m.SetParts(tt.parts)
			assert.InDelta(t, tt.want, m.TotalWeight(), 1e-12)
		})
	}
}

func TestModel_StrokeWidthAndRadius(t *testing.T) {
	tests := []struct {
		name       string
		mode       Mode
		bounds     Bounds
		wantStroke float64
		wantRadius float64
	}{
		{"donut square", Donut(20), Bounds{200, 200}, 20, 90},
		{"pie square", Pie(), Bounds{200, 200}, 100, 50},
		{"pie wide", Pie(), Bounds{300, 100}, 50, 25},
		{"donut tall", Donut(10), Bounds{100, 400}, 10, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			m.SetMode(tt.mode)
			assert.Equal(t, tt.wantStroke, m.StrokeWidth(tt.bounds))
			assert.Equal(t, tt.wantRadius, m.Radius(tt.bounds))
		})
	}
}

func TestModel_SettersInvalidate(t *testing.T) {
	mutations := map[string]func(m *Model){
		"parts":     func(m *Model) { m.SetParts([]Part{{red, 1}}) },
		"mode":      func(m *Model) { m.SetMode(Donut(5)) },
		"angle":     func(m *Model) { m.SetStartAngle(1) },
		"animation": func(m *Model) { m.SetAnimationEnabled(true) },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			m := NewModel()
			m.SetParts([]Part{{red, 1}})
			Render(m, Bounds{10, 10})
			assert.False(t, m.NeedsRedraw())

			var calls int
			m.OnInvalidate(func() { calls++ })
			mutate(m)

			assert.True(t, m.NeedsRedraw())
			assert.Equal(t, 1, calls)
		})
	}
}

func TestModel_SetPartsCopies(t *testing.T) {
	parts := []Part{{red, 1}, {blue, 2}}
	m := NewModel()
	m.SetParts(parts)

	parts[0].Value = 100
	assert.Equal(t, 1.0, m.Parts()[0].Value)

	got := m.Parts()
	got[1].Value = 100
	assert.Equal(t, 2.0, m.Parts()[1].Value)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "pie", Pie().String())
	assert.Equal(t, "donut", Donut(3).String())
	assert.Equal(t, "pie", Mode{}.String())
	assert.Zero(t, Pie().LineWidth())
	assert.Equal(t, 3.0, Donut(3).LineWidth())
}
