// Package raster draws chart segments into images.
//
// Every segment is a stroked arc. The stroke is filled as an annular
// sector polygon with golang.org/x/image/vector, which gives anti-aliased
// edges without a full 2D graphics stack.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/handiism/piechart/internal/chart"
	"golang.org/x/image/vector"
)

// maxStep is the largest angle covered by one polygon edge.
const maxStep = math.Pi / 90

// Draw paints segments onto dst. fractions[i] is the drawn fraction of
// segments[i]; a missing entry means fully drawn.
func Draw(dst draw.Image, segments []chart.Segment, fractions []float64) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())

	for i, seg := range segments {
		f := 1.0
		if i < len(fractions) {
			f = fractions[i]
		}
		end := seg.EndAt(f)
		if end <= seg.StartAngle || seg.StrokeWidth <= 0 {
			continue
		}

		z.Reset(b.Dx(), b.Dy())
		sector(z, seg, end, float64(b.Min.X), float64(b.Min.Y))
		z.Draw(dst, b, image.NewUniform(seg.Color), image.Point{})
	}
}

// Render returns a new image of the given surface filled with bg and the
// segments drawn on top.
func Render(bounds chart.Bounds, bg color.Color, segments []chart.Segment, fractions []float64) *image.RGBA {
	w, h := int(math.Ceil(bounds.Width)), int(math.Ceil(bounds.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	Draw(img, segments, fractions)
	return img
}

// sector adds the outline of seg's stroke from its start angle to end.
// (ox, oy) is the image origin.
func sector(z *vector.Rasterizer, seg chart.Segment, end, ox, oy float64) {
	outer, inner := radii(seg)
	sweep := end - seg.StartAngle
	steps := int(math.Ceil(sweep / maxStep))
	if steps < 1 {
		steps = 1
	}

	at := func(r, a float64) (float32, float32) {
		return float32(seg.Center.X + r*math.Cos(a) - ox), float32(seg.Center.Y + r*math.Sin(a) - oy)
	}

	z.MoveTo(at(outer, seg.StartAngle))
	for i := 1; i <= steps; i++ {
		z.LineTo(at(outer, seg.StartAngle+sweep*float64(i)/float64(steps)))
	}
	if inner > 0 {
		for i := steps; i >= 0; i-- {
			z.LineTo(at(inner, seg.StartAngle+sweep*float64(i)/float64(steps)))
		}
	} else {
		z.LineTo(float32(seg.Center.X-ox), float32(seg.Center.Y-oy))
	}
	z.ClosePath()
}

func radii(seg chart.Segment) (outer, inner float64) {
	half := seg.StrokeWidth / 2
	return seg.Radius + half, math.Max(seg.Radius-half, 0)
}

// Sample returns the index of the segment whose drawn stroke covers p, or
// -1 when p is on the background.
func Sample(segments []chart.Segment, fractions []float64, p chart.Point) int {
	for i, seg := range segments {
		f := 1.0
		if i < len(fractions) {
			f = fractions[i]
		}
		sweep := seg.Sweep() * f
		if sweep <= 0 {
			continue
		}

		dx, dy := p.X-seg.Center.X, p.Y-seg.Center.Y
		outer, inner := radii(seg)
		d := math.Hypot(dx, dy)
		if d > outer || d < inner {
			continue
		}

		rel := math.Mod(math.Atan2(dy, dx)-seg.StartAngle, 2*math.Pi)
		if rel < 0 {
			rel += 2 * math.Pi
		}
		if rel <= sweep || sweep >= 2*math.Pi {
			return i
		}
	}
	return -1
}
