package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rileyhilliard/workmon/internal/workarea"
)

// DefaultStartAngle is where the first wedge begins, in degrees
// counter-clockwise from three o'clock.
const DefaultStartAngle = 140.0

const (
	upperHalf = '▀'
	lowerHalf = '▄'
	fullBlock = '█'
)

// WedgeAt returns the index of the wedge covering angle (degrees,
// counter-clockwise from three o'clock) when wedges of the given shares are
// laid out counter-clockwise from start. It returns -1 when shares is empty.
func WedgeAt(shares []float64, start, angle float64) int {
	if len(shares) == 0 {
		return -1
	}
	rel := math.Mod(angle-start, 360)
	if rel < 0 {
		rel += 360
	}

	var cum float64
	for i, s := range shares {
		cum += s * 360
		if rel < cum {
			return i
		}
	}
	return len(shares) - 1
}

// raster maps each pixel of a diameter x diameter square to a wedge index,
// or -1 outside the circle.
func raster(shares []float64, diameter int, start float64) [][]int {
	r := float64(diameter) / 2
	grid := make([][]int, diameter)
	for y := range grid {
		grid[y] = make([]int, diameter)
		for x := range grid[y] {
			dx := float64(x) + 0.5 - r
			dy := r - (float64(y) + 0.5)
			if dx*dx+dy*dy > r*r {
				grid[y][x] = -1
				continue
			}
			angle := math.Atan2(dy, dx) * 180 / math.Pi
			grid[y][x] = WedgeAt(shares, start, angle)
		}
	}
	return grid
}

// Pie draws b as a filled circle that fits in size. It returns "" when the
// breakdown has nothing to draw or size has no room.
func Pie(b workarea.Breakdown, size Size, startAngle float64) string {
	d := size.Diameter()
	if !b.Drawable() || d == 0 {
		return ""
	}

	grid := raster(b.Shares(), d, startAngle)
	mono := lipgloss.ColorProfile() == termenv.Ascii

	rows := (d + 1) / 2
	lines := make([]string, rows)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		for x := 0; x < d; x++ {
			top := grid[2*row][x]
			bottom := -1
			if 2*row+1 < d {
				bottom = grid[2*row+1][x]
			}
			if mono {
				sb.WriteString(monoCell(top, bottom))
			} else {
				sb.WriteString(colorCell(top, bottom))
			}
		}
		lines[row] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

func colorCell(top, bottom int) string {
	switch {
	case top < 0 && bottom < 0:
		return " "
	case top == bottom:
		return lipgloss.NewStyle().Foreground(ColorFor(top)).Render(string(fullBlock))
	case top < 0:
		return lipgloss.NewStyle().Foreground(ColorFor(bottom)).Render(string(lowerHalf))
	case bottom < 0:
		return lipgloss.NewStyle().Foreground(ColorFor(top)).Render(string(upperHalf))
	default:
		return lipgloss.NewStyle().
			Foreground(ColorFor(top)).
			Background(ColorFor(bottom)).
			Render(string(upperHalf))
	}
}

// monoCell draws one glyph per wedge. Half blocks can't show two wedges in
// one cell without colors, so the top pixel wins.
func monoCell(top, bottom int) string {
	switch {
	case top < 0 && bottom < 0:
		return " "
	case top < 0:
		return string(glyphFor(bottom))
	default:
		return string(glyphFor(top))
	}
}
