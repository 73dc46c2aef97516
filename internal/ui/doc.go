// Package ui holds the terminal styling shared by the CLI and the monitor,
// and the console renderer for the session table.
//
// # Color Scheme
//
// Colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Last poll drew the chart
//	ColorError     (red)    - Chart could not be drawn
//	ColorWarning   (yellow) - Last poll failed, retrying
//	ColorInfo      (cyan)   - Poll in flight
//	ColorPrimary   (white)  - Session table text
//	ColorMuted     (gray)   - Table borders and selection
//
// ApplyColorMode honors output.color (auto, always, never); DisableColors
// switches to monochrome output for --no-color.
//
// # Session table
//
// TableRenderer prints the rows of every poll to the console. The first
// block carries a header and a row index; later blocks are data rows only.
// Each block ends with the "***" separator.
package ui
