// Package watch runs the poll loop: fetch the active sessions, aggregate them
// by user and hand the result to whatever draws the chart.
//
// Poller.Poll performs exactly one iteration and reports what happened as an
// Outcome. The interactive monitor drives Poll from its own event loop; Run
// drives it headless with a plain context-aware wait.
package watch

import (
	"time"

	"github.com/rileyhilliard/workmon/internal/workarea"
)

// OutcomeKind classifies one poll.
type OutcomeKind int

const (
	// OutcomeData means the query returned rows and the chart should be redrawn.
	OutcomeData OutcomeKind = iota
	// OutcomeEmpty means no active session holds work area; the chart closes.
	OutcomeEmpty
	// OutcomeRecoverable means this poll failed but the next one may work.
	OutcomeRecoverable
	// OutcomeFatal means the database can't be reached; the loop must stop.
	OutcomeFatal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeData:
		return "data"
	case OutcomeEmpty:
		return "empty"
	case OutcomeRecoverable:
		return "recoverable"
	case OutcomeFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Outcome is the result of one poll.
type Outcome struct {
	Kind OutcomeKind
	At   time.Time

	// Table and Breakdown are set for OutcomeData.
	Table     workarea.Table
	Breakdown workarea.Breakdown

	// Console holds the lines to print for this poll, in order.
	Console []string

	// Err is set for OutcomeRecoverable and OutcomeFatal.
	Err error
}

// Stops reports whether the loop must end after this outcome.
func (o Outcome) Stops() bool {
	return o.Kind == OutcomeFatal
}
