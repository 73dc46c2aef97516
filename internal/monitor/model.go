package monitor

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/workmon/internal/chart"
	"github.com/rileyhilliard/workmon/internal/ui"
	"github.com/rileyhilliard/workmon/internal/watch"
	"github.com/rileyhilliard/workmon/internal/workarea"
)

// chartUnavailable replaces a chart that failed to draw.
const chartUnavailable = "chart unavailable"

// Rows around the pie: header, title, spacing, footer and status lines.
const chromeRows = 8

// Options configure a Model.
type Options struct {
	// Target names the database in the header.
	Target     string
	StartAngle float64
	// Now defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model for the work-area window.
type Model struct {
	ctx    context.Context
	poller *watch.Poller
	target string

	startAngle float64
	now        func() time.Time

	width  int
	height int
	size   chart.Size

	// last is the most recent data outcome; chartOpen is false after an
	// empty poll until the next data poll.
	last      watch.Outcome
	draw      func(Model) string
	chartBody string
	chartOpen bool
	polled    bool
	lastErr   error
	fatal     error

	lastUpdate time.Time
	polling    bool
	generation int

	spinner  spinner.Model
	sessions table.Model
	viewMode ViewMode
	showHelp bool
	quitting bool
}

// tickMsg ends the wait after a poll. Ticks from a superseded wait carry an
// older generation and are ignored.
type tickMsg struct {
	generation int
}

// pollMsg carries the outcome of one poll.
type pollMsg struct {
	outcome watch.Outcome
}

// NewModel creates the window model. Polls run with ctx, which the caller
// cancels once the program exits.
func NewModel(ctx context.Context, poller *watch.Poller, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = PollingStyle

	return Model{
		ctx:        ctx,
		poller:     poller,
		target:     opts.Target,
		startAngle: opts.StartAngle,
		now:        opts.Now,
		size:       chart.DefaultSize,
		draw:       Model.renderChart,
		polling:    true,
		spinner:    s,
		sessions:   ui.SessionTable(workarea.Table{}, 0),
	}
}

// Init triggers the first poll and starts the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.pollCmd(),
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.chartOpen {
			return m, m.drawChart()
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		if msg.generation != m.generation || m.polling {
			return m, nil
		}
		m.polling = true
		return m, m.pollCmd()

	case pollMsg:
		return m.handleOutcome(msg.outcome)
	}

	return m, nil
}

// View renders the window.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderWindow()
}

// Err returns the error that closed the window, if a poll was fatal.
func (m Model) Err() error {
	return m.fatal
}

// handleOutcome prints the poll's console lines, updates the chart and
// either schedules the next poll or quits.
func (m Model) handleOutcome(o watch.Outcome) (tea.Model, tea.Cmd) {
	m.polling = false
	m.polled = true

	var cmds []tea.Cmd
	if len(o.Console) > 0 {
		cmds = append(cmds, tea.Println(strings.Join(o.Console, "\n")))
	}

	if o.Stops() {
		m.fatal = o.Err
		m.quitting = true
		cmds = append(cmds, tea.Quit)
		return m, tea.Sequence(cmds...)
	}

	switch o.Kind {
	case watch.OutcomeEmpty:
		m.chartOpen = false
		m.lastErr = nil
		m.lastUpdate = o.At
		m.sessions.SetRows(nil)

	case watch.OutcomeData:
		m.last = o
		m.chartOpen = true
		m.lastErr = nil
		m.lastUpdate = o.At
		m.sessions = ui.SessionTable(o.Table, m.tableHeight())
		m.resize()
		cmds = append(cmds, tea.SetWindowTitle(chart.WindowTitle(o.At)))
		if cmd := m.drawChart(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case watch.OutcomeRecoverable:
		m.lastErr = o.Err
	}

	m.generation++
	cmds = append(cmds, m.tickCmd())
	return m, tea.Sequence(cmds...)
}

// drawChart renders the chart for the last data outcome at the current size.
// A failed draw is printed like a failed poll and leaves a placeholder; the
// next outcome or resize tries again.
func (m *Model) drawChart() tea.Cmd {
	var body string
	err := watch.Guard("draw", func() error {
		body = m.draw(*m)
		return nil
	})
	if err != nil {
		m.lastErr = err
		m.chartBody = PlaceholderStyle.Render(chartUnavailable)
		return tea.Println(strings.Join(watch.FailureLines(err), "\n"))
	}
	m.chartBody = body
	return nil
}

// refresh starts a poll now, abandoning the current wait. It does nothing
// while a poll is in flight.
func (m *Model) refresh() tea.Cmd {
	if m.polling {
		return nil
	}
	m.generation++
	m.polling = true
	return m.pollCmd()
}

// resize recomputes the pie area from the window and the legend height.
func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	size := chart.Fit(m.width, m.height, chromeRows+len(m.last.Breakdown.Wedges))
	if size.Valid() {
		m.size = size
	}
	m.sessions.SetHeight(m.tableHeight())
	m.sessions.SetWidth(m.width)
}

func (m Model) tableHeight() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-chromeRows, 3)
}

// tickCmd returns a command that ends the wait after the poll interval.
func (m Model) tickCmd() tea.Cmd {
	gen := m.generation
	return tea.Tick(m.poller.Interval(), func(time.Time) tea.Msg {
		return tickMsg{generation: gen}
	})
}

// pollCmd returns a command that runs one poll.
func (m Model) pollCmd() tea.Cmd {
	ctx, p := m.ctx, m.poller
	return func() tea.Msg {
		return pollMsg{outcome: p.Poll(ctx)}
	}
}
