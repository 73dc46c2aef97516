package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/rileyhilliard/workmon/internal/chart"
	"github.com/rileyhilliard/workmon/internal/errors"
	"github.com/rileyhilliard/workmon/internal/ui"
)

// renderWindow renders header, body and footer.
func (m Model) renderWindow() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderHeader shows the program name, the database and the poll state.
func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().
		Foreground(ColorAccent).
		Bold(true).
		Render("workmon")

	stats := LabelStyle.Render(" | " + m.target)

	state := HealthyStyle.Render(" " + ui.SymbolSuccess)
	switch {
	case m.polling:
		state = " " + m.spinner.View()
	case errors.IsCode(m.lastErr, errors.ErrRender):
		state = CriticalStyle.Render(" " + ui.SymbolFail)
	case m.lastErr != nil:
		state = WarningStyle.Render(" " + ui.SymbolFail)
	case !m.chartOpen:
		state = LabelStyle.Render(" " + ui.SymbolPending)
	}

	return HeaderStyle.Render(title + stats + state)
}

// renderBody shows the chart, the session table or a placeholder.
func (m Model) renderBody() string {
	if !m.polled {
		return PlaceholderStyle.Render("waiting for the first poll...")
	}
	if !m.chartOpen {
		return PlaceholderStyle.Render("no active sessions")
	}
	if m.viewMode == ViewSessions {
		return m.sessions.View()
	}
	return m.chartBody
}

// renderChart draws the title, pie and legend of the last data outcome.
func (m Model) renderChart() string {
	b := m.last.Breakdown
	lines := []string{TitleStyle.Render(chart.ChartTitle(b, m.last.At)), ""}
	if !b.Drawable() {
		lines = append(lines, PlaceholderStyle.Render(chart.NoWorkArea))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, chart.Pie(b, m.size, m.startAngle), "")
	lines = append(lines, chart.Legend(b)...)
	return strings.Join(lines, "\n")
}

// renderFooter shows the last error, data age and key hints.
func (m Model) renderFooter() string {
	var lines []string
	if m.lastErr != nil {
		style := WarningStyle
		if errors.IsCode(m.lastErr, errors.ErrRender) {
			style = CriticalStyle
		}
		lines = append(lines, style.Render(ui.SymbolFail+" "+errors.Summary(m.lastErr)))
	}

	hints := []string{
		"q quit",
		"r refresh",
		"t sessions",
		"? help",
	}
	if !m.lastUpdate.IsZero() {
		hints = append([]string{"updated " + humanize.RelTime(m.lastUpdate, m.now(), "ago", "from now")}, hints...)
	}
	lines = append(lines, FooterStyle.Render(strings.Join(hints, " | ")))

	return strings.Join(lines, "\n")
}
