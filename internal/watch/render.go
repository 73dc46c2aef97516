package watch

import (
	"runtime/debug"
	"strings"

	"golang.org/x/xerrors"

	"github.com/rileyhilliard/workmon/internal/errors"
)

// Guard runs one chart operation (op is "draw" or "close") and reports a
// returned error or a panic as an errors.ErrRender error. A failed render
// never stops the loop.
func Guard(op string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.WrapWithCode(
				&panicError{op: op, value: r, stack: debug.Stack()},
				errors.ErrRender,
				"Chart "+op+" failed",
				"",
			)
		}
	}()

	if err := fn(); err != nil {
		return errors.WrapWithCode(
			xerrors.Errorf("%s chart: %w", op, err),
			errors.ErrRender,
			"Chart "+op+" failed",
			"",
		)
	}
	return nil
}

// FailureLines is the console report of a recoverable failure: the summary
// line followed by the full trace.
func FailureLines(err error) []string {
	lines := []string{ErrorPrefix + errors.Summary(err)}
	return append(lines, strings.Split(strings.TrimRight(errors.Trace(err), "\n"), "\n")...)
}
