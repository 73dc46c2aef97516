package chart

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/workmon/internal/watch"
)

// ClosedMarker is printed when a headless chart is taken down.
const ClosedMarker = "(chart closed)"

// TextRenderer draws each poll's chart to a plain writer. It backs the
// headless loop and the once command.
type TextRenderer struct {
	out        io.Writer
	size       Size
	startAngle float64
	open       bool
}

// NewTextRenderer returns a renderer writing to out. An invalid size falls
// back to DefaultSize.
func NewTextRenderer(out io.Writer, size Size, startAngle float64) *TextRenderer {
	if !size.Valid() {
		size = DefaultSize
	}
	return &TextRenderer{out: out, size: size, startAngle: startAngle}
}

// Draw writes the window title, then the chart for o.
func (r *TextRenderer) Draw(o watch.Outcome) error {
	r.open = true
	_, err := fmt.Fprintf(r.out, "\n== %s ==\n%s\n\n", WindowTitle(o.At), Render(o.Breakdown, o.At, r.size, r.startAngle))
	return err
}

// Close prints ClosedMarker if a chart is showing.
func (r *TextRenderer) Close() error {
	if !r.open {
		return nil
	}
	r.open = false
	_, err := fmt.Fprintln(r.out, ClosedMarker)
	return err
}

