package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rileyhilliard/workmon/internal/chart"
	"github.com/rileyhilliard/workmon/internal/errors"
	"github.com/rileyhilliard/workmon/internal/logger"
	"github.com/rileyhilliard/workmon/internal/ui"
	"github.com/rileyhilliard/workmon/internal/watch"
)

// NoSessions is printed by once when nothing holds work area.
const NoSessions = "No sessions found."

func onceCommand(out io.Writer) error {
	cleanup, err := setupLogging(false)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}
	ui.ApplyColorMode(cfg.Output.Color, out)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller := newPoller(cfg, logger.Default())
	return printOnce(ctx, poller, out, cfg.Chart.StartAngle)
}

// printOnce runs one poll and prints its result. A failed poll or chart
// exits 1.
func printOnce(ctx context.Context, poller *watch.Poller, out io.Writer, startAngle float64) error {
	o := poller.Poll(ctx)

	if o.Kind == watch.OutcomeEmpty {
		_, _ = fmt.Fprintln(out, NoSessions)
		return nil
	}

	for _, line := range o.Console {
		_, _ = fmt.Fprintln(out, line)
	}

	if o.Kind != watch.OutcomeData {
		return errors.NewExitError(1)
	}

	r := chart.NewTextRenderer(out, chart.DefaultSize, startAngle)
	if err := watch.Guard("draw", func() error { return r.Draw(o) }); err != nil {
		for _, line := range watch.FailureLines(err) {
			_, _ = fmt.Fprintln(out, line)
		}
		return errors.NewExitError(1)
	}
	return nil
}
