package watch

import (
	"context"
	stderrors "errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/xerrors"

	"github.com/rileyhilliard/workmon/internal/errors"
	"github.com/rileyhilliard/workmon/internal/logger"
	"github.com/rileyhilliard/workmon/internal/store"
	"github.com/rileyhilliard/workmon/internal/ui"
	"github.com/rileyhilliard/workmon/internal/workarea"
)

// ErrorPrefix starts the console line of every failed poll.
const ErrorPrefix = "An error occurred: "

// Fetcher returns the current active-session table.
type Fetcher interface {
	Fetch(ctx context.Context) (workarea.Table, error)
}

// Options configure a Poller.
type Options struct {
	// Threshold is the share at or below which a user joins Others.
	Threshold float64
	// Interval is the wait between polls, quoted in the empty-result message.
	Interval time.Duration
	Logger   logger.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Poller runs single iterations of the loop. It remembers whether the
// console header was printed, so it must not be shared between loops.
type Poller struct {
	fetcher   Fetcher
	threshold float64
	interval  time.Duration
	table     *ui.TableRenderer
	log       logger.Logger
	now       func() time.Time
}

// NewPoller creates a Poller reading from f.
func NewPoller(f Fetcher, opts Options) *Poller {
	if opts.Logger == nil {
		opts.Logger = logger.Noop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Interval <= 0 {
		opts.Interval = 10 * time.Second
	}
	return &Poller{
		fetcher:   f,
		threshold: opts.Threshold,
		interval:  opts.Interval,
		table:     ui.NewTableRenderer(),
		log:       opts.Logger,
		now:       opts.Now,
	}
}

// Interval returns the wait between polls.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Poll runs one fetch-aggregate iteration. It never panics: a panic in the
// fetcher or the aggregation is reported as a recoverable outcome.
func (p *Poller) Poll(ctx context.Context) (out Outcome) {
	at := p.now()

	defer func() {
		if r := recover(); r != nil {
			err := errors.WrapWithCode(
				&panicError{op: "poll", value: r, stack: debug.Stack()},
				errors.ErrQuery,
				"Unexpected failure during poll",
				"",
			)
			out = p.recoverable(at, err)
		}
	}()

	table, err := p.fetcher.Fetch(ctx)
	if err != nil {
		var coded *errors.Error
		if !stderrors.As(err, &coded) {
			err = errors.Wrap(xerrors.Errorf("fetch: %w", err), "Session query failed")
		}
		if errors.IsFatal(err) {
			p.log.Error("poll stopped: %s", errors.Summary(err))
			return Outcome{
				Kind: OutcomeFatal,
				At:   at,
				Err:  err,
				Console: []string{
					store.ConnectHint,
					ErrorPrefix + errors.Summary(err),
				},
			}
		}
		return p.recoverable(at, err)
	}

	if table.Empty() {
		p.log.Debug("no active sessions")
		return Outcome{
			Kind:    OutcomeEmpty,
			At:      at,
			Console: []string{EmptyMessage(p.interval)},
		}
	}

	b := workarea.Aggregate(table, p.threshold)
	p.log.Debug("%d sessions, %d users, total %s", table.Len(), b.Users, workarea.FormatTotal(b.Total))

	return Outcome{
		Kind:      OutcomeData,
		At:        at,
		Table:     table,
		Breakdown: b,
		Console:   p.table.Lines(table),
	}
}

func (p *Poller) recoverable(at time.Time, err error) Outcome {
	p.log.Warn("poll failed: %s", errors.Summary(err))
	return Outcome{
		Kind:    OutcomeRecoverable,
		At:      at,
		Err:     err,
		Console: FailureLines(err),
	}
}

// panicError carries a recovered panic. The stack is only printed in the
// detailed (%+v) form.
type panicError struct {
	op    string
	value interface{}
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("%s panicked: %v", e.op, e.value)
}

func (e *panicError) Format(s fmt.State, v rune) {
	xerrors.FormatError(e, s, v)
}

func (e *panicError) FormatError(p xerrors.Printer) error {
	p.Print(e.Error())
	if p.Detail() {
		p.Print("\n" + strings.TrimRight(string(e.stack), "\n"))
	}
	return nil
}

// EmptyMessage is printed when no session holds work area.
func EmptyMessage(interval time.Duration) string {
	return fmt.Sprintf("No sessions found. Sleeping %s seconds...", formatSeconds(interval))
}

func formatSeconds(d time.Duration) string {
	s := d.Seconds()
	if s == float64(int64(s)) {
		return fmt.Sprintf("%d", int64(s))
	}
	return fmt.Sprintf("%.1f", s)
}
