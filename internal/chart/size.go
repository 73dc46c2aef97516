// Package chart draws the per-user work-area breakdown as a pie in the
// terminal.
//
// The pie is rasterized onto half-block cells: each terminal cell holds two
// vertically stacked pixels, so a cell grid of W columns by W/2 rows is close
// to a square on screen. Wedges run counter-clockwise from a start angle.
package chart

// Size is a drawing area in terminal cells.
type Size struct {
	Width  int
	Height int
}

// DefaultSize is used until the terminal reports its size. It renders as a
// square.
var DefaultSize = Size{Width: 40, Height: 20}

// Valid reports whether s can hold at least one pixel.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Diameter returns the pie diameter in pixels for s: the largest circle that
// fits in Width columns and 2*Height pixel rows.
func (s Size) Diameter() int {
	if !s.Valid() {
		return 0
	}
	return min(s.Width, s.Height*2)
}

// Fit returns the area left for the pie in a window of width x height cells
// after reserved rows are taken by titles, legend and footer. It never
// returns an invalid size for a window that has any room left.
func Fit(width, height, reserved int) Size {
	h := height - reserved
	if width <= 0 || h <= 0 {
		return Size{}
	}
	return Size{Width: width, Height: h}
}
