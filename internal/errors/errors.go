package errors

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/xerrors"
)

// Error codes for categorizing errors
const (
	ErrConfig  = "CONFIG"
	ErrConnect = "CONNECT"
	ErrQuery   = "QUERY"
	ErrPrompt  = "PROMPT"
	ErrRender  = "RENDER"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Error() renders it as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrQuery code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrQuery,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Format makes %+v print the whole cause chain, including the frames
// recorded by xerrors.Errorf further down.
func (e *Error) Format(s fmt.State, v rune) {
	if v == 'v' && s.Flag('+') {
		xerrors.FormatError(e, s, v)
		return
	}
	_, _ = fmt.Fprint(s, e.Error())
}

// FormatError implements xerrors.Formatter.
func (e *Error) FormatError(p xerrors.Printer) error {
	p.Printf("[%s] %s", e.Code, e.Message)
	if p.Detail() && e.Suggestion != "" {
		p.Printf("\n%s", e.Suggestion)
	}
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var wmErr *Error
	if errors.As(err, &wmErr) {
		return wmErr.Code == code
	}
	return false
}

// IsFatal reports whether err should stop the poll loop. Only connection and
// authentication failures are fatal; everything else is retried on the next
// iteration.
func IsFatal(err error) bool {
	return IsCode(err, ErrConnect)
}

// Summary renders err on one line: the message followed by its cause.
func Summary(err error) string {
	if err == nil {
		return ""
	}
	var wmErr *Error
	if !errors.As(err, &wmErr) {
		return err.Error()
	}
	if wmErr.Cause == nil {
		return wmErr.Message
	}
	return wmErr.Message + ": " + wmErr.Cause.Error()
}

// Trace renders err with its full cause chain and recorded frames.
func Trace(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%+v", err)
}

// ExitError carries a process exit code without a message. The CLI uses it
// when the failure was already reported on the console.
type ExitError struct {
	Code int
}

// NewExitError creates an ExitError with the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// GetExitCode extracts the exit code from an ExitError anywhere in err's chain.
func GetExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
