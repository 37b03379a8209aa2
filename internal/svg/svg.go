// Package svg writes chart segments as a standalone SVG document.
//
// Every segment becomes one stroked, unfilled <path>, in part order, so
// the document stays index-aligned with the part sequence. When an
// animation plan is given, each path is revealed with an SMIL <animate>
// on stroke-dashoffset, using the step's delay and duration.
package svg

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	svgo "github.com/ajstarks/svgo"
	"github.com/handiism/piechart/internal/chart"
	"github.com/lucasb-eyer/go-colorful"
)

// maxArc is the largest sweep written as a single SVG arc command. Arcs of
// π or more are ambiguous in SVG's endpoint notation.
const maxArc = math.Pi / 2

// Writer generates SVG documents.
//
// Example:
//
//	w := NewWriter("Sales", colornames.White, time.Second)
//	doc := w.Document(bounds, res.Segments, res.Plan)
//	os.WriteFile("sales.svg", []byte(doc), 0644)
type Writer struct {
	title      string
	background color.Color
	unit       time.Duration
}

// NewWriter creates a Writer. background may be nil for a transparent
// document. unit is the wall-clock length of one plan time unit.
func NewWriter(title string, background color.Color, unit time.Duration) *Writer {
	if unit <= 0 {
		unit = time.Second
	}
	return &Writer{title: title, background: background, unit: unit}
}

// Document renders a complete SVG document. plan may be nil for a static
// chart.
func (w *Writer) Document(b chart.Bounds, segments []chart.Segment, plan chart.Plan) string {
	var sb strings.Builder
	w.Write(&sb, b, segments, plan)
	return sb.String()
}

// Write renders the document to out.
func (w *Writer) Write(out io.Writer, b chart.Bounds, segments []chart.Segment, plan chart.Plan) {
	width, height := int(math.Round(b.Width)), int(math.Round(b.Height))

	canvas := svgo.New(out)
	canvas.Startview(width, height, 0, 0, width, height)
	if w.title != "" {
		canvas.Title(w.title)
	}
	if bg, ok := w.backgroundHex(); ok {
		canvas.Rect(0, 0, width, height, attr("fill", bg))
	}

	for _, seg := range segments {
		w.writeSegment(canvas, seg, plan)
	}

	canvas.End()
}

func (w *Writer) writeSegment(canvas *svgo.SVG, seg chart.Segment, plan chart.Plan) {
	id := "segment-" + strconv.Itoa(seg.Index)
	attrs := []string{
		attr("id", id),
		attr("data-index", strconv.Itoa(seg.Index)),
		attr("fill", "none"),
		attr("stroke", seg.Color.Hex()),
		attr("stroke-width", num(seg.StrokeWidth)),
	}

	if seg.Index < 0 || seg.Index >= len(plan) || plan[seg.Index].Duration <= 0 {
		canvas.Path(ArcPath(seg), attrs...)
		return
	}
	step := plan[seg.Index]

	attrs = append(attrs,
		attr("pathLength", "1"),
		attr("stroke-dasharray", "1"),
		attr("stroke-dashoffset", "1"),
	)
	canvas.Path(ArcPath(seg), attrs...)
	canvas.Animate("#"+id, "stroke-dashoffset", 1, 0, w.seconds(step.Duration), 1,
		attr("begin", num(w.seconds(step.Delay))+"s"),
		attr("fill", "freeze"),
	)
}

// seconds converts plan units to wall-clock seconds, rounded to the
// millisecond.
func (w *Writer) seconds(units float64) float64 {
	return math.Round(units*w.unit.Seconds()*1000) / 1000
}

// backgroundHex reports the background as a hex color. Fully transparent
// and nil backgrounds are skipped.
func (w *Writer) backgroundHex() (string, bool) {
	if w.background == nil {
		return "", false
	}
	c, ok := colorful.MakeColor(w.background)
	if !ok {
		return "", false
	}
	return c.Hex(), true
}

// ArcPath returns the SVG path data for the center line of seg, drawn
// clockwise from its start to its end angle. A zero-length segment is a
// lone move command.
func ArcPath(seg chart.Segment) string {
	var sb strings.Builder

	start := seg.PointAt(seg.StartAngle)
	sb.WriteString(fmt.Sprintf("M %s %s", num(start.X), num(start.Y)))

	sweep := seg.Sweep()
	if sweep <= 0 {
		return sb.String()
	}

	n := int(math.Ceil(sweep / maxArc))
	r := num(seg.Radius)
	for i := 1; i <= n; i++ {
		p := seg.PointAt(seg.StartAngle + sweep*float64(i)/float64(n))
		sb.WriteString(fmt.Sprintf(" A %s %s 0 0 1 %s %s", r, r, num(p.X), num(p.Y)))
	}
	return sb.String()
}

func attr(name, value string) string {
	return name + `="` + value + `"`
}

// num formats v with at most three decimals.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
