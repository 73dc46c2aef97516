package monitor

import (
	"context"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/workmon/internal/chart"
	"github.com/rileyhilliard/workmon/internal/errors"
	"github.com/rileyhilliard/workmon/internal/watch"
	"github.com/rileyhilliard/workmon/internal/workarea"
)

var pollTime = time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)

type staticFetcher struct {
	table workarea.Table
	err   error
}

func (f staticFetcher) Fetch(context.Context) (workarea.Table, error) {
	return f.table, f.err
}

func sampleTable() workarea.Table {
	return workarea.NewTable([]workarea.Row{
		{User: "alice", PID: 1, SessionID: "s1", Timestamp: pollTime, WorkAreaMB: 600},
		{User: "bob", PID: 2, SessionID: "s2", Timestamp: pollTime, WorkAreaMB: 400},
	})
}

func newTestModel(t *testing.T, f watch.Fetcher) Model {
	t.Helper()
	return newTestModelInterval(t, f, 10*time.Second)
}

func newTestModelInterval(t *testing.T, f watch.Fetcher, interval time.Duration) Model {
	t.Helper()
	orig := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(orig) })

	p := watch.NewPoller(f, watch.Options{
		Threshold: workarea.DefaultOthersThreshold,
		Interval:  interval,
		Now:       func() time.Time { return pollTime },
	})
	return NewModel(context.Background(), p, Options{
		Target:     "esm@localhost:15432/esm",
		StartAngle: chart.DefaultStartAngle,
		Now:        func() time.Time { return pollTime.Add(3 * time.Second) },
	})
}

func dataOutcome() watch.Outcome {
	table := sampleTable()
	return watch.Outcome{
		Kind:      watch.OutcomeData,
		At:        pollTime,
		Table:     table,
		Breakdown: workarea.Aggregate(table, workarea.DefaultOthersThreshold),
		Console:   []string{"row", "***"},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func keyMsg(s string) tea.KeyMsg {
	if s == KeyQuitAlt {
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	if s == KeyCollapse {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t, staticFetcher{})

	assert.Equal(t, chart.DefaultSize, m.size)
	assert.True(t, m.polling, "the first poll starts with Init")
	assert.False(t, m.chartOpen)
	assert.NoError(t, m.Err())
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "waiting for the first poll")
}

func TestModel_PollCmdRunsPoller(t *testing.T) {
	m := newTestModel(t, staticFetcher{table: sampleTable()})

	msg := m.pollCmd()()
	pm, ok := msg.(pollMsg)
	require.True(t, ok)
	assert.Equal(t, watch.OutcomeData, pm.outcome.Kind)
	assert.Equal(t, 1000.0, pm.outcome.Breakdown.Total)
}

func TestModel_DataOutcomeDrawsChart(t *testing.T) {
	m := newTestModel(t, staticFetcher{})

	m, cmd := update(t, m, pollMsg{outcome: dataOutcome()})

	assert.NotNil(t, cmd)
	assert.False(t, m.polling)
	assert.True(t, m.chartOpen)
	assert.Equal(t, 1, m.generation)
	assert.Equal(t, pollTime, m.lastUpdate)

	view := m.View()
	assert.Contains(t, view, "Work Area - Total: 1000.00 MB, Users: 2 at [12:30:45]")
	assert.Contains(t, view, "60.0% (600.0 MB)")
	assert.Contains(t, view, "updated 3 seconds ago")
	assert.Contains(t, view, "esm@localhost:15432/esm")
}

func TestModel_EmptyOutcomeClosesChart(t *testing.T) {
	m := newTestModel(t, staticFetcher{})
	m, _ = update(t, m, pollMsg{outcome: dataOutcome()})

	m, cmd := update(t, m, pollMsg{outcome: watch.Outcome{Kind: watch.OutcomeEmpty, At: pollTime}})

	assert.NotNil(t, cmd, "next poll is scheduled")
	assert.False(t, m.chartOpen)
	assert.Contains(t, m.View(), "no active sessions")
	assert.NotContains(t, m.View(), "Work Area - Total")
}

func TestModel_ZeroTotalShowsPlaceholder(t *testing.T) {
	m := newTestModel(t, staticFetcher{})
	table := workarea.NewTable([]workarea.Row{{User: "alice", WorkAreaMB: 0}})
	o := watch.Outcome{Kind: watch.OutcomeData, At: pollTime, Table: table, Breakdown: workarea.Aggregate(table, 0.05)}

	m, _ = update(t, m, pollMsg{outcome: o})

	assert.Contains(t, m.View(), chart.NoWorkArea)
}

func TestModel_FatalOutcomeQuits(t *testing.T) {
	m := newTestModel(t, staticFetcher{})
	fatal := errors.New(errors.ErrConnect, "Cannot connect", "")

	m, cmd := update(t, m, pollMsg{outcome: watch.Outcome{Kind: watch.OutcomeFatal, Err: fatal, Console: []string{"x"}}})

	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, fatal, m.Err())
	assert.Equal(t, 0, m.generation, "no further poll is scheduled")
	assert.Empty(t, m.View())
}

func TestModel_RecoverableOutcomeKeepsChart(t *testing.T) {
	m := newTestModel(t, staticFetcher{})
	m, _ = update(t, m, pollMsg{outcome: dataOutcome()})

	m, cmd := update(t, m, pollMsg{outcome: watch.Outcome{
		Kind: watch.OutcomeRecoverable,
		Err:  errors.WrapWithCode(stderrors.New("relation missing"), errors.ErrQuery, "Session query failed", ""),
	}})

	assert.NotNil(t, cmd)
	assert.True(t, m.chartOpen)
	assert.Equal(t, 2, m.generation)
	view := m.View()
	assert.Contains(t, view, "Session query failed: relation missing")
	assert.Contains(t, view, "Work Area - Total")
}

func TestModel_TickStartsNextPoll(t *testing.T) {
	m := newTestModel(t, staticFetcher{})
	m, _ = update(t, m, pollMsg{outcome: dataOutcome()})

	stale, cmd := update(t, m, tickMsg{generation: 0})
	assert.Nil(t, cmd, "ticks from an abandoned wait are ignored")
	assert.False(t, stale.polling)

	m, cmd = update(t, m, tickMsg{generation: m.generation})
	assert.NotNil(t, cmd)
	assert.True(t, m.polling)

	_, cmd = update(t, m, tickMsg{generation: m.generation})
	assert.Nil(t, cmd, "no overlapping polls")
}

func TestModel_RefreshKey(t *testing.T) {
	m := newTestModel(t, staticFetcher{})

	_, cmd := update(t, m, keyMsg(KeyRefresh))
	assert.Nil(t, cmd, "ignored while a poll is in flight")

	m, _ = update(t, m, pollMsg{outcome: dataOutcome()})
	gen := m.generation

	m, cmd = update(t, m, keyMsg(KeyRefresh))
	assert.NotNil(t, cmd)
	assert.True(t, m.polling)
	assert.Equal(t, gen+1, m.generation, "pending tick is invalidated")
}

func TestModel_QuitKeys(t *testing.T) {
	for _, key := range []string{KeyQuit, KeyQuitAlt} {
		t.Run(key, func(t *testing.T) {
			m := newTestModel(t, staticFetcher{})

			m, cmd := update(t, m, keyMsg(key))

			require.NotNil(t, cmd)
			_, isQuit := cmd().(tea.QuitMsg)
			assert.True(t, isQuit)
			assert.True(t, m.quitting)
			assert.NoError(t, m.Err())
		})
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, staticFetcher{})

	m, _ = update(t, m, keyMsg(KeyToggleHelp))
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m, _ = update(t, m, keyMsg(KeyCollapse))
	assert.False(t, m.showHelp)
}

func TestModel_SessionsView(t *testing.T) {
	m := newTestModel(t, staticFetcher{})
	m, _ = update(t, m, pollMsg{outcome: dataOutcome()})

	m, _ = update(t, m, keyMsg(KeyToggleTable))
	assert.Equal(t, ViewSessions, m.viewMode)
	view := m.View()
	assert.Contains(t, view, "Session ID")
	assert.Contains(t, view, "alice")

	m, _ = update(t, m, keyMsg(KeyCollapse))
	assert.Equal(t, ViewChart, m.viewMode)
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t, staticFetcher{})
	m, _ = update(t, m, pollMsg{outcome: dataOutcome()})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 100, m.width)
	assert.Equal(t, chart.Fit(100, 40, chromeRows+2), m.size)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 5})
	assert.Equal(t, chart.Fit(100, 40, chromeRows+2), m.size, "too small keeps the last usable size")
}

func TestModel_EmptyOutcomeWaitsOneInterval(t *testing.T) {
	const interval = 40 * time.Millisecond
	m := newTestModelInterval(t, staticFetcher{}, interval)
	require.Equal(t, interval, m.poller.Interval())

	m, cmd := update(t, m, pollMsg{outcome: watch.Outcome{Kind: watch.OutcomeEmpty, At: pollTime}})
	require.NotNil(t, cmd, "the wait is the only command")

	start := time.Now()
	msg := cmd()
	assert.GreaterOrEqual(t, time.Since(start), interval)
	assert.Equal(t, tickMsg{generation: m.generation}, msg)
}

func TestModel_DrawFailureIsReported(t *testing.T) {
	m := newTestModel(t, staticFetcher{})
	m.draw = func(Model) string { panic("bad wedge") }

	m, cmd := update(t, m, pollMsg{outcome: dataOutcome()})

	require.NotNil(t, cmd)
	assert.False(t, m.quitting, "a draw failure does not end the program")
	assert.Equal(t, 1, m.generation, "next poll is scheduled")
	require.Error(t, m.lastErr)
	assert.True(t, errors.IsCode(m.lastErr, errors.ErrRender))
	assert.NoError(t, m.Err())

	msgs := cmd()
	seq := reflect.ValueOf(msgs)
	require.Equal(t, reflect.Slice, seq.Kind(), "print, title, report and wait run in order")
	var printed []string
	for i := 0; i < seq.Len(); i++ {
		c, ok := seq.Index(i).Interface().(tea.Cmd)
		require.True(t, ok)
		if i == seq.Len()-1 {
			continue // the wait
		}
		printed = append(printed, fmt.Sprintf("%+v", c()))
	}
	report := strings.Join(printed, "\n")
	assert.Contains(t, report, "An error occurred: Chart draw failed: draw panicked: bad wedge")
	assert.Contains(t, report, "goroutine")

	view := m.View()
	assert.Contains(t, view, chartUnavailable)
	assert.Contains(t, view, "Chart draw failed")

	m.draw = Model.renderChart
	m, _ = update(t, m, pollMsg{outcome: dataOutcome()})
	assert.NoError(t, m.lastErr)
	assert.Contains(t, m.View(), "Work Area - Total")
}
