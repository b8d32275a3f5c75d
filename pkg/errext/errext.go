// Package errext attaches process exit codes and user hints to errors.
package errext

import "errors"

// ExitCode is the code with which the process should exit if the error
// bubbles up to main.
type ExitCode uint8

// Exit codes. 0 means every check passed.
const (
	ChecksFailed     ExitCode = 1
	EnvironmentError ExitCode = 2
	InvalidConfig    ExitCode = 3
)

// HasExitCode is an error with an attached exit code.
type HasExitCode interface {
	error
	ExitCode() ExitCode
}

// WithExitCodeIfNone attaches exitCode to err unless err already carries one.
// A nil error stays nil.
func WithExitCodeIfNone(err error, exitCode ExitCode) error {
	if err == nil {
		return nil
	}
	var ecerr HasExitCode
	if errors.As(err, &ecerr) {
		return err
	}
	return withExitCode{err, exitCode}
}

type withExitCode struct {
	error
	exitCode ExitCode
}

func (wh withExitCode) Unwrap() error {
	return wh.error
}

func (wh withExitCode) ExitCode() ExitCode {
	return wh.exitCode
}

// HasHint is an error with a human-readable hint on how to fix it.
type HasHint interface {
	error
	Hint() string
}

// WithHint attaches a hint to err. An existing hint is kept in parentheses:
// "new hint (old hint)".
func WithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return withHint{err, hint}
}

type withHint struct {
	error
	hint string
}

func (wh withHint) Unwrap() error {
	return wh.error
}

func (wh withHint) Hint() string {
	hint := wh.hint
	var oldhint HasHint
	if errors.As(wh.error, &oldhint) {
		hint = hint + " (" + oldhint.Hint() + ")"
	}
	return hint
}

// Code returns the exit code for err: 0 for nil, the attached code when
// present, ChecksFailed otherwise.
func Code(err error) ExitCode {
	if err == nil {
		return 0
	}
	var ecerr HasExitCode
	if errors.As(err, &ecerr) {
		return ecerr.ExitCode()
	}
	return ChecksFailed
}

var (
	_ HasExitCode = withExitCode{}
	_ HasHint     = withHint{}
)
