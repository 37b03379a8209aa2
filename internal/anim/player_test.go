package anim

import (
	"testing"
	"time"

	"github.com/handiism/piechart/internal/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plan = chart.Plan{
	{Index: 0, Delay: 0, Duration: 0.5},
	{Index: 1, Delay: 0.5, Duration: 1.5},
}

func TestPlayer_Fractions(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPlayer(plan, 100*time.Millisecond, start)

	tests := []struct {
		after time.Duration
		want  []float64
	}{
		{0, []float64{0, 0}},
		{25 * time.Millisecond, []float64{0.5, 0}},
		{50 * time.Millisecond, []float64{1, 0}},
		{125 * time.Millisecond, []float64{1, 0.5}},
		{time.Second, []float64{1, 1}},
	}

	for _, tt := range tests {
		got := p.Fractions(2, start.Add(tt.after))
		require.Len(t, got, 2)
		for i := range got {
			assert.InDelta(t, tt.want[i], got[i], 1e-9, "after %v segment %d", tt.after, i)
		}
	}
}

func TestPlayer_PlayingAndProgress(t *testing.T) {
	start := time.Now()
	p := NewPlayer(plan, time.Second, start)

	assert.True(t, p.Playing(start))
	assert.Equal(t, 0.0, p.Progress(start))
	assert.Equal(t, 2*time.Second, p.Remaining(start))

	mid := start.Add(time.Second)
	assert.True(t, p.Playing(mid))
	assert.InDelta(t, 0.5, p.Progress(mid), 1e-9)

	end := start.Add(2 * time.Second)
	assert.False(t, p.Playing(end))
	assert.Equal(t, 1.0, p.Progress(end))
	assert.Zero(t, p.Remaining(end))

	assert.Zero(t, p.Elapsed(start.Add(-time.Second)))
}

func TestPlayer_NilPlan(t *testing.T) {
	p := NewPlayer(nil, time.Second, time.Now())

	assert.False(t, p.Playing(time.Now()))
	assert.Equal(t, []float64{1, 1}, p.Fractions(2, time.Now()))
	assert.Equal(t, 1.0, p.Progress(time.Now()))

	var none *Player
	assert.False(t, none.Playing(time.Now()))
	assert.Equal(t, []float64{1}, none.Fractions(1, time.Now()))
}

func TestFrames(t *testing.T) {
	frames := Frames(10)

	require.Len(t, frames, 21)
	assert.Equal(t, 0.0, frames[0])
	assert.Equal(t, chart.AnimationDuration, frames[len(frames)-1])
	for i := 1; i < len(frames); i++ {
		assert.Greater(t, frames[i], frames[i-1])
	}

	assert.Len(t, Frames(0), 3)
}
