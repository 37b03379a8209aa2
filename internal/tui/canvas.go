package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/piechart/internal/chart"
	"github.com/handiism/piechart/internal/raster"
)

const (
	upperHalf = "▀"
	lowerHalf = "▄"
)

// canvasBounds returns the chart surface for a block of cols x rows
// terminal cells. Every cell holds two vertically stacked pixels, which
// keeps pixels roughly square on common terminal fonts.
func canvasBounds(cols, rows int) chart.Bounds {
	side := cols
	if rows*2 < side {
		side = rows * 2
	}
	if side < 0 {
		side = 0
	}
	return chart.Bounds{Width: float64(side), Height: float64(side)}
}

// renderCanvas draws segments into terminal cells using half blocks.
func renderCanvas(b chart.Bounds, segments []chart.Segment, fractions []float64) string {
	cols, rows := int(b.Width), int(b.Height)/2
	styles := make(map[[2]int]lipgloss.Style)

	style := func(fg, bg int) lipgloss.Style {
		key := [2]int{fg, bg}
		if s, ok := styles[key]; ok {
			return s
		}
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(segments[fg].Color.Hex()))
		if bg >= 0 {
			s = s.Background(lipgloss.Color(segments[bg].Color.Hex()))
		}
		styles[key] = s
		return s
	}

	var sb strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			px := float64(x) + 0.5
			top := raster.Sample(segments, fractions, chart.Point{X: px, Y: float64(2*y) + 0.5})
			bottom := raster.Sample(segments, fractions, chart.Point{X: px, Y: float64(2*y) + 1.5})

			switch {
			case top < 0 && bottom < 0:
				sb.WriteByte(' ')
			case top < 0:
				sb.WriteString(style(bottom, -1).Render(lowerHalf))
			default:
				sb.WriteString(style(top, bottom).Render(upperHalf))
			}
		}
		if y < rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
