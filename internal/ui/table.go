package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/workmon/internal/workarea"
)

// Separator ends every console table block.
const Separator = "***"

// columnGap separates console table columns.
const columnGap = "  "

// rightAligned marks the numeric session columns.
var rightAligned = map[int]bool{1: true, 4: true}

// TableStyle is the look of the interactive session table.
type TableStyle struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
}

// DefaultTableStyle returns the default table styling.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),
		Cell: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Selected: lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Background(ColorMuted),
		Border: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row, height int) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}
	if height <= 0 {
		height = len(rows) + 1 // +1 for header
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	t.SetStyles(tableStyles(DefaultTableStyle()))
	return t
}

// tableStyles layers style over the bubbles defaults, which carry the cell
// padding.
func tableStyles(style TableStyle) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Inherit(style.Header).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(style.Border.GetForeground()).
		BorderBottom(true)
	s.Cell = s.Cell.Inherit(style.Cell)
	s.Selected = style.Selected.Bold(false)
	return s
}

// SessionTable builds a scrollable Bubbles table of the sessions in t.
func SessionTable(t workarea.Table, height int) table.Model {
	cells := t.Cells()
	columns := make([]TableColumn, len(workarea.Columns))
	for i, title := range workarea.Columns {
		columns[i] = TableColumn{Title: title, Width: columnWidth(title, cells, i)}
	}

	rows := make([]table.Row, len(cells))
	for i, c := range cells {
		rows[i] = table.Row(c)
	}
	return NewTable(columns, rows, height)
}

// TableRenderer formats each poll's rows as console lines. Only the first
// block it renders carries the header and the row index.
type TableRenderer struct {
	printedHeader bool
}

// NewTableRenderer returns a renderer that has not printed a header yet.
func NewTableRenderer() *TableRenderer {
	return &TableRenderer{}
}

// PrintedHeader reports whether the header block has been rendered.
func (r *TableRenderer) PrintedHeader() bool {
	return r.printedHeader
}

// Lines renders t and ends the block with Separator. An empty table renders
// nothing and does not use up the header.
func (r *TableRenderer) Lines(t workarea.Table) []string {
	if t.Empty() {
		return nil
	}

	withHeader := !r.printedHeader
	r.printedHeader = true

	lines := renderRows(t.Cells(), withHeader)
	return append(lines, Separator)
}

func renderRows(cells [][]string, withHeader bool) []string {
	widths := make([]int, len(workarea.Columns))
	for i, title := range workarea.Columns {
		if withHeader {
			widths[i] = columnWidth(title, cells, i)
		} else {
			widths[i] = columnWidth("", cells, i)
		}
	}

	indexWidth := len(strconv.Itoa(len(cells) - 1))
	lines := make([]string, 0, len(cells)+1)

	if withHeader {
		header := make([]string, len(widths))
		for i, title := range workarea.Columns {
			header[i] = align(title, widths[i], rightAligned[i])
		}
		lines = append(lines, strings.Repeat(" ", indexWidth)+columnGap+strings.Join(header, columnGap))
	}

	for n, row := range cells {
		out := make([]string, len(row))
		for i, cell := range row {
			out[i] = align(cell, widths[i], rightAligned[i])
		}
		line := strings.Join(out, columnGap)
		if withHeader {
			line = padLeft(strconv.Itoa(n), indexWidth) + columnGap + line
		}
		lines = append(lines, strings.TrimRight(line, " "))
	}
	return lines
}

func columnWidth(title string, cells [][]string, col int) int {
	w := lipgloss.Width(title)
	for _, row := range cells {
		if cw := lipgloss.Width(row[col]); cw > w {
			w = cw
		}
	}
	return w
}

func align(s string, width int, right bool) string {
	if right {
		return padLeft(s, width)
	}
	return padRight(s, width)
}

// padRight pads a string to the specified width.
func padRight(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visibleLen)
}

func padLeft(s string, width int) string {
	visibleLen := lipgloss.Width(s)
	if visibleLen >= width {
		return s
	}
	return strings.Repeat(" ", width-visibleLen) + s
}
