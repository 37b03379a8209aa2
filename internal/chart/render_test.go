package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestRender_QuarterAndRest(t *testing.T) {
	m := NewModel()
	m.SetStartAngle(0)
	m.SetParts([]Part{{red, 1}, {blue, 3}})

	res := Render(m, Bounds{200, 200})
	require.Len(t, res.Segments, 2)

	s0, s1 := res.Segments[0], res.Segments[1]
	assert.InDelta(t, 0, s0.StartAngle, eps)
	assert.InDelta(t, math.Pi/2, s0.EndAngle, eps)
	assert.InDelta(t, math.Pi/2, s1.StartAngle, eps)
	assert.InDelta(t, 2*math.Pi, s1.EndAngle, eps)
	assert.Equal(t, red, s0.Color)
	assert.Equal(t, blue, s1.Color)

	for i, s := range res.Segments {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, Point{100, 100}, s.Center)
		assert.Equal(t, 100.0, s.StrokeWidth)
		assert.Equal(t, 50.0, s.Radius)
	}

	require.Len(t, res.Plan, 2)
	assert.Equal(t, 0, res.Plan[0].Index)
	assert.InDelta(t, 0.0, res.Plan[0].Delay, eps)
	assert.InDelta(t, 0.5, res.Plan[0].Duration, eps)
	assert.Equal(t, 1, res.Plan[1].Index)
	assert.InDelta(t, 0.5, res.Plan[1].Delay, eps)
	assert.InDelta(t, 1.5, res.Plan[1].Duration, eps)
}

func TestRender_ZeroValuePart(t *testing.T) {
	m := NewModel()
	m.SetStartAngle(0)
	m.SetParts([]Part{{red, 0}, {blue, 5}})

	res := Render(m, Bounds{100, 100})
	require.Len(t, res.Segments, 2)

	assert.InDelta(t, 0, res.Segments[0].StartAngle, eps)
	assert.InDelta(t, 0, res.Segments[0].EndAngle, eps)
	assert.InDelta(t, 0, res.Segments[1].StartAngle, eps)
	assert.InDelta(t, 2*math.Pi, res.Segments[1].EndAngle, eps)

	require.Len(t, res.Plan, 2)
	assert.Zero(t, res.Plan[0].Duration)
	assert.InDelta(t, AnimationDuration, res.Plan[1].Duration, eps)
}

func TestRender_SweepsCoverFullCircle(t *testing.T) {
	partSets := [][]float64{
		{1},
		{1, 1, 1},
		{0.1, 7, 3.3, 0, 12},
		{100, 1, 55, 23, 9, 81, 2, 64, 17, 40},
	}

	for _, values := range partSets {
		m := NewModel()
		parts := make([]Part, len(values))
		for i, v := range values {
			parts[i] = Part{Color: red, Value: v}
		}
		m.SetParts(parts)
		m.SetStartAngle(-7.25)

		res := Render(m, Bounds{320, 240})
		require.Len(t, res.Segments, len(values))

		var sweep, duration float64
		for i, s := range res.Segments {
			assert.Equal(t, i, s.Index)
			assert.GreaterOrEqual(t, s.Sweep(), 0.0)
			sweep += s.Sweep()
			if i > 0 {
				assert.InDelta(t, res.Segments[i-1].EndAngle, s.StartAngle, eps)
			}
		}
		assert.InDelta(t, 2*math.Pi, sweep, eps)
		assert.InDelta(t, -7.25, res.Segments[0].StartAngle, eps)

		require.Len(t, res.Plan, len(values))
		for i, step := range res.Plan {
			assert.InDelta(t, duration, step.Delay, eps, "step %d must start when the previous ends", i)
			duration += step.Duration
		}
		assert.InDelta(t, AnimationDuration, duration, eps)
		assert.InDelta(t, AnimationDuration, res.Plan.Total(), eps)
	}
}

func TestRender_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		parts  []Part
		bounds Bounds
	}{
		{"no parts", nil, Bounds{100, 100}},
		{"all zero", []Part{{red, 0}, {blue, 0}}, Bounds{100, 100}},
		{"zero width", []Part{{red, 1}}, Bounds{0, 100}},
		{"zero height", []Part{{red, 1}}, Bounds{100, 0}},
		{"zero bounds", []Part{{red, 1}}, Bounds{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel()
			m.SetParts(tt.parts)

			res := Render(m, tt.bounds)
			assert.Empty(t, res.Segments)
			assert.Nil(t, res.Plan)
		})
	}
}

func TestRender_ZeroBoundsKeepsModelDirty(t *testing.T) {
	m := NewModel()
	m.SetParts([]Part{{red, 1}})

	res := Render(m, Bounds{})
	assert.Nil(t, res.Plan)
	assert.True(t, m.NeedsRedraw())
	assert.Equal(t, Bounds{}, m.Bounds())

	res = Render(m, Bounds{50, 50})
	assert.NotNil(t, res.Plan, "first render with a real surface animates")
	assert.Equal(t, Bounds{50, 50}, m.Bounds())
}

func TestRender_PlanOnlyOnInitialDraw(t *testing.T) {
	m := NewModel()
	m.SetParts([]Part{{red, 1}, {blue, 2}})
	b := Bounds{100, 100}

	assert.NotNil(t, Render(m, b).Plan)
	assert.Nil(t, Render(m, b).Plan)

	// resize without mutation recomputes geometry only
	res := Render(m, Bounds{300, 300})
	assert.Nil(t, res.Plan)
	require.Len(t, res.Segments, 2)
	assert.Equal(t, Point{150, 150}, res.Segments[0].Center)

	m.SetMode(Donut(8))
	res = Render(m, b)
	assert.NotNil(t, res.Plan)
	assert.Equal(t, 8.0, res.Segments[0].StrokeWidth)
	assert.Nil(t, Render(m, b).Plan)
}

func TestRender_AnimationDisabled(t *testing.T) {
	m := NewModel()
	m.SetAnimationEnabled(false)
	m.SetParts([]Part{{red, 1}, {blue, 2}})
	b := Bounds{100, 100}

	for i := 0; i < 3; i++ {
		res := Render(m, b)
		assert.Len(t, res.Segments, 2)
		assert.Nil(t, res.Plan)
		m.SetStartAngle(float64(i))
	}
}

func TestSegment_EndAt(t *testing.T) {
	s := Segment{StartAngle: 1, EndAngle: 3}

	assert.Equal(t, 1.0, s.EndAt(0))
	assert.Equal(t, 2.0, s.EndAt(0.5))
	assert.Equal(t, 3.0, s.EndAt(1))
	assert.Equal(t, 3.0, s.EndAt(7))
	assert.Equal(t, 1.0, s.EndAt(-1))
}

func TestSegment_PointAt(t *testing.T) {
	s := Segment{Center: Point{100, 100}, Radius: 50}

	top := s.PointAt(DefaultStartAngle)
	assert.InDelta(t, 100, top.X, eps)
	assert.InDelta(t, 50, top.Y, eps, "3π/2 is 12 o'clock with y growing down")

	right := s.PointAt(0)
	assert.InDelta(t, 150, right.X, eps)
	assert.InDelta(t, 100, right.Y, eps)
}
