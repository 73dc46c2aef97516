package chart

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rileyhilliard/workmon/internal/workarea"
)

// TimeLayout formats the poll time in titles.
const TimeLayout = "15:04:05"

// NoWorkArea replaces the pie when the sessions hold no work area.
const NoWorkArea = "no work area in use"

const swatch = "■"

// WindowTitle is the terminal window title for a poll at now.
func WindowTitle(now time.Time) string {
	return "SAS Work at " + now.Format(TimeLayout)
}

// ChartTitle is the heading drawn above the pie.
func ChartTitle(b workarea.Breakdown, now time.Time) string {
	return "Work Area - Total: " + workarea.FormatTotal(b.Total) +
		", Users: " + strconv.Itoa(b.Users) +
		" at [" + now.Format(TimeLayout) + "]"
}

// Legend returns one line per wedge: swatch, label, share and value.
func Legend(b workarea.Breakdown) []string {
	if !b.Drawable() {
		return nil
	}

	width := 0
	for _, w := range b.Wedges {
		width = max(width, lipgloss.Width(w.Label))
	}

	mono := lipgloss.ColorProfile() == termenv.Ascii
	lines := make([]string, len(b.Wedges))
	for i, w := range b.Wedges {
		mark := lipgloss.NewStyle().Foreground(ColorFor(i)).Render(swatch)
		if mono {
			mark = string(glyphFor(i))
		}
		label := strings.ReplaceAll(workarea.WedgeLabel(w, b.Total), "\n", " ")
		lines[i] = mark + " " + w.Label + strings.Repeat(" ", width-lipgloss.Width(w.Label)) + "  " + label
	}
	return lines
}

// Render composes title, pie and legend for one poll. A breakdown with
// nothing to draw gets the NoWorkArea placeholder instead of a pie.
func Render(b workarea.Breakdown, now time.Time, size Size, startAngle float64) string {
	parts := []string{ChartTitle(b, now), ""}
	if !b.Drawable() {
		parts = append(parts, NoWorkArea)
		return strings.Join(parts, "\n")
	}
	if pie := Pie(b, size, startAngle); pie != "" {
		parts = append(parts, pie, "")
	}
	parts = append(parts, Legend(b)...)
	return strings.Join(parts, "\n")
}
