package asking

import (
	"errors"
	"fmt"
	"time"
)

// Common errors
var (
	// ErrEmptyMessage is returned by Ask when the question has no message configured
	ErrEmptyMessage = errors.New("question has no message")
	// ErrNilParser is returned by Ask when the question has no parser configured
	ErrNilParser = errors.New("question has no parser")
	// ErrEmptyAnswer is the cause of the parse failure reported for an empty
	// answer to a required question
	ErrEmptyAnswer = errors.New("answer can not be empty")
)

// ProcessingError is the closed set of failures Ask can report. Exactly five
// types implement it: *ParseError, *ValidationError, *AttemptsError,
// *TimeoutError, and *IOError. Callers match the concrete type with errors.As
// or a type switch to decide policy, for example treating a timeout as
// "assume the default and move on" while treating an I/O failure as fatal.
//
// Configuration mistakes (ErrEmptyMessage, ErrNilParser) are plain sentinel
// errors outside this set: they signal a caller bug, not a processing outcome.
type ProcessingError interface {
	error
	processing()
}

// ParseError reports that raw input could not be converted to the answer type.
// Input holds the raw line after trimming the line terminator; Err is the
// parser's own error.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

// Unwrap returns the parser's error.
func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) processing() {}

// ValidationError reports that a parsed value was rejected by a rule.
// Explanation carries the first failing rule's text and may be empty.
type ValidationError struct {
	Input       string
	Explanation string
}

func (e *ValidationError) Error() string {
	if e.Explanation == "" {
		return fmt.Sprintf("invalid answer %q", e.Input)
	}
	return fmt.Sprintf("invalid answer %q: %s", e.Input, e.Explanation)
}

func (e *ValidationError) processing() {}

// AttemptsError reports that the configured number of attempts was consumed
// without an accepted answer. Attempts is the number of failed answers; Last
// is the failure of the final attempt, so errors.As can still recover the
// parse or validation detail behind the exhaustion.
type AttemptsError struct {
	Attempts int
	Last     error
}

func (e *AttemptsError) Error() string {
	return fmt.Sprintf("no attempts left after %d failed answers", e.Attempts)
}

// Unwrap returns the failure of the final attempt.
func (e *AttemptsError) Unwrap() error { return e.Last }

func (e *AttemptsError) processing() {}

// TimeoutError reports that no answer was accepted in the allowed time.
// Elapsed is measured from the start of the ask. Err is the context error
// that ended the wait, so errors.Is(err, context.DeadlineExceeded) and
// errors.Is(err, context.Canceled) distinguish an expired timeout from an
// external cancellation.
type TimeoutError struct {
	Elapsed time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no answer after %s", e.Elapsed)
}

// Unwrap returns the context error that ended the wait.
func (e *TimeoutError) Unwrap() error { return e.Err }

func (e *TimeoutError) processing() {}

// IOError reports a failed read from the input source or a failed write to
// the output sink. It ends the ask immediately: I/O failures are never
// retried. Reaching the end of input surfaces here too, as
// errors.Is(err, io.EOF).
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read or write failed: %v", e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) processing() {}

// explain returns the user-facing text of a recoverable failure, written to
// the output sink before re-prompting. Parse failures show the parser's own
// error text; validation failures show the failing rule's explanation, which
// may be empty, in which case nothing is written.
func explain(err error) string {
	switch e := err.(type) {
	case *ParseError:
		return e.Err.Error()
	case *ValidationError:
		return e.Explanation
	}
	return ""
}
