package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary lipgloss.Color = "7" // White/default
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// Color modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ApplyColorMode sets the lipgloss color profile for mode. Auto detects the
// profile from out and falls back to plain text when out isn't a terminal.
func ApplyColorMode(mode string, out io.Writer) {
	switch mode {
	case ColorNever:
		DisableColors()
	case ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			lipgloss.SetColorProfile(termenv.NewOutput(f).EnvColorProfile())
			return
		}
		DisableColors()
	}
}

// DisableColors switches all styles to monochrome output.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
