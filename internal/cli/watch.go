package cli

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/workmon/internal/chart"
	"github.com/rileyhilliard/workmon/internal/config"
	"github.com/rileyhilliard/workmon/internal/errors"
	"github.com/rileyhilliard/workmon/internal/logger"
	"github.com/rileyhilliard/workmon/internal/monitor"
	"github.com/rileyhilliard/workmon/internal/store"
	"github.com/rileyhilliard/workmon/internal/ui"
	"github.com/rileyhilliard/workmon/internal/watch"
)

// watchCommand runs the poll loop, in the terminal UI unless headless is set
// or stdout isn't a terminal.
func watchCommand(headless bool) error {
	tui := !headless && isTerminal(os.Stdout)

	cleanup, err := setupLogging(tui)
	if err != nil {
		return err
	}
	defer cleanup()

	cfg, err := loadConfig(true)
	if err != nil {
		return err
	}
	ui.ApplyColorMode(cfg.Output.Color, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Default()
	log.Info("watching %s every %s", store.RedactedDSN(cfg.Database), cfg.Interval)
	poller := newPoller(cfg, log)

	if !tui {
		err := watch.Run(ctx, poller, chart.NewTextRenderer(os.Stdout, chart.DefaultSize, cfg.Chart.StartAngle), os.Stdout)
		return exitOnFatal(err)
	}

	model := monitor.NewModel(ctx, poller, monitor.Options{
		Target:     store.Target(cfg.Database),
		StartAngle: cfg.Chart.StartAngle,
	})

	p := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrRender, "Terminal UI failed",
			"Run with --headless to print the chart as text.")
	}

	if m, ok := final.(monitor.Model); ok {
		return exitOnFatal(m.Err())
	}
	return nil
}

func newPoller(cfg *config.Config, log logger.Logger) *watch.Poller {
	return watch.NewPoller(store.New(cfg.Database, log), watch.Options{
		Threshold: cfg.Chart.OthersThreshold,
		Interval:  cfg.Interval,
		Logger:    log,
	})
}

// exitOnFatal turns an error the loop already reported on the console into
// a bare exit status.
func exitOnFatal(err error) error {
	if err == nil {
		return nil
	}
	if errors.IsFatal(err) {
		return errors.NewExitError(1)
	}
	return err
}
