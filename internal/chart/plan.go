package chart

// Plan is an ordered reveal schedule, one step per segment.
type Plan []AnimationStep

// Total returns the time at which the last step finishes.
func (p Plan) Total() float64 {
	if len(p) == 0 {
		return 0
	}
	last := p[len(p)-1]
	return last.Delay + last.Duration
}

// Done reports whether every step has finished at elapsed.
func (p Plan) Done(elapsed float64) bool {
	return elapsed >= p.Total()
}

// Fraction returns how much of segment index is drawn at elapsed time units
// after the plan started. Segments are hidden before their window, grow
// linearly inside it and stay fully drawn afterwards. A nil plan or an
// index without a step is fully drawn.
func (p Plan) Fraction(index int, elapsed float64) float64 {
	if index < 0 || index >= len(p) {
		return 1
	}
	step := p[index]
	switch {
	case elapsed < step.Delay:
		return 0
	case step.Duration <= 0, elapsed >= step.Delay+step.Duration:
		return 1
	}
	return (elapsed - step.Delay) / step.Duration
}

// Fractions returns Fraction for each of n segments.
func (p Plan) Fractions(n int, elapsed float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = p.Fraction(i, elapsed)
	}
	return out
}

// FullyDrawn returns n fractions of 1.
func FullyDrawn(n int) []float64 {
	return Plan(nil).Fractions(n, 0)
}
