// Package workarea holds the per-poll data model: the session rows returned
// by the database, the table they form, and the per-user breakdown drawn as
// a pie chart.
package workarea

import (
	"strconv"
	"time"
)

// UnknownOwner labels rows whose owner column is NULL.
const UnknownOwner = "<unknown>"

// TimestampLayout is how Last Timestamp cells are printed.
const TimestampLayout = "2006-01-02 15:04:05"

// Columns are the Result Table headers, in row order.
var Columns = []string{"User", "PID", "Session ID", "Last Timestamp", "Work Area (MB)"}

// Row is one active session and the temp space it holds.
type Row struct {
	User       string
	PID        int64
	SessionID  string
	Timestamp  time.Time
	WorkAreaMB float64
}

// Cells returns the row formatted for console output, in Columns order.
func (r Row) Cells() []string {
	return []string{
		r.User,
		strconv.FormatInt(r.PID, 10),
		r.SessionID,
		r.Timestamp.Format(TimestampLayout),
		strconv.FormatFloat(r.WorkAreaMB, 'f', 2, 64),
	}
}

// Table is the result of one poll. It is rebuilt every iteration.
type Table struct {
	Rows []Row
}

// NewTable wraps rows in a Table.
func NewTable(rows []Row) Table {
	return Table{Rows: rows}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Empty reports whether the poll found no sessions.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Total sums the Work Area column.
func (t Table) Total() float64 {
	var total float64
	for _, r := range t.Rows {
		total += r.WorkAreaMB
	}
	return total
}

// DistinctUsers counts the distinct owners in the table.
func (t Table) DistinctUsers() int {
	seen := make(map[string]struct{}, len(t.Rows))
	for _, r := range t.Rows {
		seen[r.User] = struct{}{}
	}
	return len(seen)
}

// Cells returns every row formatted for console output.
func (t Table) Cells() [][]string {
	cells := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		cells[i] = r.Cells()
	}
	return cells
}
