// Package asking builds interactive question prompts for command-line Go
// programs.
//
// A question reads a line of text from an input source, parses it into a
// typed value, validates it against caller-supplied rules, and returns
// either the accepted value or a structured error. Retries, defaults, help
// text, attempt budgets and timeouts are all part of the question itself, so
// callers describe the conversation once and let the engine drive it.
//
// Key Features:
//
//   - Typed answers: Question[T] parses input into any Go type
//   - Built-in questions for yes/no, dates, text, numbers and selections
//   - Ordered validation rules with per-rule explanations
//   - Defaults for empty answers, attempt budgets, and timeouts
//   - A closed error set that callers can match exhaustively
//   - Pluggable input and output: standard streams, buffers, files, or the
//     controlling terminal
//   - Password input with terminal echo disabled
//
// Quick Start:
//
// The simplest question reads a yes or no from standard input:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/saona-raimundo/asking"
//	)
//
//	func main() {
//		agreed, err := asking.YN().
//			Message("Shall I continue? (y/n) ").
//			Default(true).
//			Ask()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("agreed:", agreed)
//	}
//
// Pressing Enter on an empty line accepts the default. Any other input goes
// through the parser; input the parser rejects is asked again.
//
// Validation:
//
// Rules run in order after a successful parse, and the first failing rule's
// explanation is shown before the retry:
//
//	level, err := asking.Int().
//		Message("Pick a level between 1 and 100: ").
//		Rules(asking.Between(1, 100), asking.Not(13)).
//		Attempts(3).
//		Ask()
//
// Error Handling:
//
// Ask reports failures from a closed set of types, so policy decisions are a
// type switch away:
//
//	answer, err := question.Ask()
//	var perr asking.ProcessingError
//	if errors.As(err, &perr) {
//		switch e := perr.(type) {
//		case *asking.TimeoutError:
//			fmt.Printf("no answer after %s, moving on\n", e.Elapsed)
//		case *asking.AttemptsError:
//			fmt.Printf("gave up after %d tries\n", e.Attempts)
//		case *asking.IOError:
//			log.Fatal(e)
//		}
//	}
//
// An AttemptsError unwraps to the last rejected attempt's *ParseError or
// *ValidationError, and an IOError unwraps to its cause, so errors.Is(err,
// io.EOF) detects a closed input stream. ErrEmptyMessage and ErrNilParser
// are configuration mistakes, reported at ask time and outside the set
// above.
//
// Timeouts and Cancellation:
//
// Timeout bounds the whole exchange. AskWithContext accepts an external
// context as well; both end the ask with a *TimeoutError whose Err
// distinguishes the two:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	answer, err := asking.Text().
//		Message("Name: ").
//		Timeout(30 * time.Second).
//		AskWithContext(ctx)
//
// Concurrency:
//
// One Ask call is one logical task: writes and reads alternate in program
// order, and the only waits are the line read and the timer. Questions are
// immutable values, safe to copy and to ask from several goroutines at once,
// provided concurrent asks do not share input and output handles. Two asks
// over the same source interleave unpredictably, so serialize them or give
// each its own handles.
//
// A blocking read cannot be interrupted on every platform, so when a timeout
// or cancellation fires mid-read the pending read is abandoned rather than
// killed. The abandoned read may still consume one more line from the
// source, which is then discarded; a later ask on the same source will not
// see that line.
package asking
