// Package chart defines the geometry and animation engine behind a circular
// proportional chart.
//
// # Model
//
// Model holds the chart configuration: an ordered list of parts, a mode,
// a start angle and an animation flag. Every setter marks the model dirty
// and notifies the registered invalidation observer:
//
//	m := chart.NewModel()
//	m.OnInvalidate(func() { host.ScheduleRedraw() })
//	m.SetParts([]chart.Part{
//	    {Color: red, Value: 1},
//	    {Color: blue, Value: 3},
//	})
//	m.SetMode(chart.Donut(20))
//
// # Rendering
//
// Render turns a model and a drawing surface into one arc segment per part.
// The first render after a mutation also returns an animation plan:
//
//	res := chart.Render(m, chart.Bounds{Width: 200, Height: 200})
//	for _, seg := range res.Segments {
//	    host.StrokeArc(seg.Center, seg.Radius, seg.StartAngle, seg.EndAt(1), seg.StrokeWidth, seg.Color)
//	}
//	if res.Plan != nil {
//	    host.Animate(res.Plan)
//	}
//
// Angles are in radians and grow clockwise in a y-down coordinate system,
// so the default start angle 3π/2 points to 12 o'clock.
//
// # Animation Plan
//
// A plan reveals segments one after another in part order. Each step's
// duration is proportional to the part's share of the total and the whole
// plan always lasts AnimationDuration time units. Playback is left to the
// host; Plan.Fraction gives the drawn fraction of a segment at a point in
// time.
package chart
