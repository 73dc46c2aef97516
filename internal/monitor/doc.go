// Package monitor implements the interactive work-area window.
//
// The window shows the latest per-user pie chart, redrawn after every poll,
// and prints each poll's console lines above itself.
//
// # Architecture
//
// The package uses the Bubble Tea framework, which follows The Elm Architecture
// (Model-Update-View pattern):
//
//   - Model: Holds the last outcome, the chart size and the poll state
//   - Update: Processes messages (keystrokes, resize, ticks, poll outcomes)
//   - View: Renders the current state to a string for display
//
// # Message Flow
//
// Polls never overlap:
//
//  1. Init runs the first poll as a tea.Cmd
//  2. pollMsg arrives with a watch.Outcome; its console lines are printed
//  3. A data outcome redraws the chart and sets the window title; an empty
//     one closes the chart; a fatal one quits the program
//  4. Otherwise tickMsg is scheduled after the poll interval and starts the
//     next poll
//
// Pressing r abandons the current wait and polls at once. The wait is
// interruptible: q or Ctrl+C quits without waiting for the tick.
package monitor
