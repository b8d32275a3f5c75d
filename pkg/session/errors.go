package session

import (
	"errors"
	"fmt"
)

// ErrElementNotFound is matched by errors returned when a locator does not
// resolve to an element within the element timeout.
var ErrElementNotFound = errors.New("element not found")

// EnvironmentError reports that the browser environment itself failed, e.g.
// the session could not be created. It is never a test failure.
type EnvironmentError struct {
	Op  string
	Err error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("environment: %s: %v", e.Op, e.Err)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

// AssertionError reports that observed page state did not match the expectation.
type AssertionError struct {
	Check    string
	Expected any
	Actual   any
	Msg      string
}

func (e *AssertionError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("assertion %s failed: %s", e.Check, e.Msg)
	}
	return fmt.Sprintf("assertion %s failed: expected %v, got %v", e.Check, e.Expected, e.Actual)
}

// Assertf returns an *AssertionError with a formatted message.
func Assertf(check, format string, args ...any) error {
	return &AssertionError{Check: check, Msg: fmt.Sprintf(format, args...)}
}

// PanicError wraps a value recovered from a panicking test body.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Outcome is the recorded result of one test case.
type Outcome int

// Outcomes.
const (
	Passed Outcome = iota
	Failed
	Errored
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Errored:
		return "error"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Classify maps a test body error to an outcome. Environment errors are
// Errored, every other non-nil error is Failed.
func Classify(err error) Outcome {
	if err == nil {
		return Passed
	}
	var envErr *EnvironmentError
	if errors.As(err, &envErr) {
		return Errored
	}
	return Failed
}
