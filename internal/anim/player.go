// Package anim plays chart animation plans against a clock.
//
// The chart package only computes a schedule. Player maps wall-clock time
// onto that schedule so hosts can ask, on every frame, how much of each
// segment should be visible.
package anim

import (
	"math"
	"time"

	"github.com/handiism/piechart/internal/chart"
)

// Player tracks the playback of one animation plan.
//
// A new plan replaces the old one: hosts simply create a new Player and
// drop the previous one, which discards any in-flight playback.
type Player struct {
	plan  chart.Plan
	unit  time.Duration
	start time.Time
}

// NewPlayer starts playing plan at now. unit is the wall-clock length of
// one plan time unit. A nil plan plays as "everything already drawn".
func NewPlayer(plan chart.Plan, unit time.Duration, now time.Time) *Player {
	if unit <= 0 {
		unit = time.Second
	}
	return &Player{plan: plan, unit: unit, start: now}
}

// Elapsed returns the plan time elapsed at now.
func (p *Player) Elapsed(now time.Time) float64 {
	d := now.Sub(p.start)
	if d < 0 {
		return 0
	}
	return float64(d) / float64(p.unit)
}

// Fractions returns the drawn fraction of each of n segments at now.
func (p *Player) Fractions(n int, now time.Time) []float64 {
	if p == nil || p.plan == nil {
		return chart.FullyDrawn(n)
	}
	return p.plan.Fractions(n, p.Elapsed(now))
}

// Playing reports whether some segment is still being revealed at now.
func (p *Player) Playing(now time.Time) bool {
	if p == nil || p.plan == nil {
		return false
	}
	return !p.plan.Done(p.Elapsed(now))
}

// Progress returns how far playback is through the plan, from 0 to 1.
func (p *Player) Progress(now time.Time) float64 {
	if p == nil || p.plan == nil {
		return 1
	}
	total := p.plan.Total()
	if total <= 0 {
		return 1
	}
	return math.Min(p.Elapsed(now)/total, 1)
}

// Remaining returns the wall-clock time until playback finishes.
func (p *Player) Remaining(now time.Time) time.Duration {
	if !p.Playing(now) {
		return 0
	}
	left := p.plan.Total() - p.Elapsed(now)
	return time.Duration(left * float64(p.unit))
}

// Frames returns the plan times at which to sample a plan played at fps
// frames per time unit. The first frame is at 0 and the last one at
// chart.AnimationDuration, so the final frame is always fully drawn.
func Frames(fps int) []float64 {
	if fps <= 0 {
		fps = 1
	}
	n := int(math.Ceil(chart.AnimationDuration * float64(fps)))
	frames := make([]float64, n+1)
	for i := range frames {
		frames[i] = chart.AnimationDuration * float64(i) / float64(n)
	}
	return frames
}
