package cli

import (
	"os"

	"golang.org/x/term"

	"github.com/rileyhilliard/workmon/internal/config"
	"github.com/rileyhilliard/workmon/internal/errors"
	"github.com/rileyhilliard/workmon/internal/logger"
	"github.com/rileyhilliard/workmon/internal/ui"
)

// loadConfig resolves the configuration for this invocation: defaults, the
// config file, env and flags, then the credential prompt when allowed.
func loadConfig(prompt bool) (*config.Config, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}
	if noColor {
		cfg.Output.Color = ui.ColorNever
	}

	if prompt && !noPrompt && isTerminal(os.Stdin) {
		if err := promptCredentials(&cfg.Database); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging picks the default logger. The terminal UI owns the screen, so
// it only logs when --log-file is given.
func setupLogging(tui bool) (func(), error) {
	debug := os.Getenv(logger.DebugEnv) != ""

	if logFile != "" {
		path := config.ExpandTilde(logFile)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Can't open log file "+path,
				"Check that the directory exists and is writable.")
		}
		logger.SetDefault(logger.NewWriterLogger(f, "workmon", true))
		return func() { _ = f.Close() }, nil
	}

	if tui {
		logger.SetDefault(logger.Noop())
		return func() {}, nil
	}

	logger.SetDefault(logger.NewWriterLogger(os.Stderr, "workmon", debug))
	return func() {}, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
