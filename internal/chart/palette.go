package chart

import "github.com/charmbracelet/lipgloss"

// Palette is the wedge color cycle (matplotlib's tab10).
var Palette = []lipgloss.Color{
	"#1f77b4",
	"#ff7f0e",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
}

// monoGlyphs stand in for colors when the terminal has none.
var monoGlyphs = []rune{'█', '▓', '▒', '░', '#', '*', '+', 'o', '=', '%'}

// ColorFor returns the color of wedge i.
func ColorFor(i int) lipgloss.Color {
	return Palette[i%len(Palette)]
}

func glyphFor(i int) rune {
	return monoGlyphs[i%len(monoGlyphs)]
}
