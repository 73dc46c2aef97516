package watch

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rileyhilliard/workmon/internal/errors"
)

// Renderer draws the chart for the headless loop.
type Renderer interface {
	// Draw replaces the chart with the outcome's breakdown.
	Draw(o Outcome) error
	// Close takes the chart down. Closing a closed chart does nothing.
	Close() error
}

// Run polls until ctx is done or a poll is fatal. Each outcome's console
// lines go to out before the renderer sees it. A renderer that fails or
// panics is reported on out like a failed poll and the loop goes on. The
// returned error is the fatal poll error, or nil when ctx ended the loop.
func Run(ctx context.Context, p *Poller, r Renderer, out io.Writer) error {
	defer func() {
		if err := Guard("close", r.Close); err != nil {
			p.log.Warn("%s", errors.Summary(err))
		}
	}()

	for {
		o := p.Poll(ctx)
		if ctx.Err() != nil {
			return nil
		}

		for _, line := range o.Console {
			_, _ = fmt.Fprintln(out, line)
		}

		if o.Stops() {
			return o.Err
		}

		var err error
		switch o.Kind {
		case OutcomeEmpty:
			err = Guard("close", r.Close)
		case OutcomeData:
			err = Guard("draw", func() error { return r.Draw(o) })
		}
		if err != nil {
			p.log.Warn("%s", errors.Summary(err))
			for _, line := range FailureLines(err) {
				_, _ = fmt.Fprintln(out, line)
			}
		}

		if !Wait(ctx, p.interval) {
			return nil
		}
	}
}

// Wait blocks for d or until ctx is done. It reports whether the full wait
// elapsed.
func Wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
