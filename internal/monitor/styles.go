package monitor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/workmon/internal/ui"
)

// Dashboard color palette
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent = lipgloss.Color("#FF2E97")
)

// Base styles for the dashboard. Poll states use the shared status colors.
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Background(ColorSurfaceBg).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true).
				Padding(1, 2)

	PollingStyle = lipgloss.NewStyle().
			Foreground(ui.ColorInfo)

	HealthyStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ui.ColorWarning)

	CriticalStyle = lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Bold(true)
)
