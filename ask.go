package asking

import (
	"context"
	"io"
	"time"
)

// Ask poses the question on the configured input and output and blocks until
// an answer is accepted or the question fails.
//
// This is a convenience method that calls AskWithContext with a background
// context.
//
// Example:
//
//	agreed, err := asking.YN().
//		Message("Shall I continue? (y/n) ").
//		Default(true).
//		Ask()
//	if err != nil {
//		log.Fatal(err)
//	}
func (q Question[T]) Ask() (T, error) {
	return q.AskWithContext(context.Background())
}

// AskWithContext poses the question with context support.
//
// Each attempt writes the message (plus the help text on retries), reads one
// line, parses it, and checks the rules. A rejected answer consumes an
// attempt and is asked again until the attempt budget runs out; reads and
// writes that fail stop the ask immediately. An empty answer with a default
// configured returns the default without consulting the parser or rules.
//
// The error is either a configuration sentinel (ErrEmptyMessage, ErrNilParser)
// or one of the ProcessingError types. Cancelling the context has the same
// effect as running out of time: the ask stops at the next read and reports a
// TimeoutError wrapping ctx.Err().
//
// Example with timeout:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//	defer cancel()
//
//	name, err := asking.Text().Message("Name: ").AskWithContext(ctx)
//	var timeout *asking.TimeoutError
//	if errors.As(err, &timeout) {
//		fmt.Printf("gave up after %s\n", timeout.Elapsed)
//		return
//	}
func (q Question[T]) AskWithContext(ctx context.Context) (T, error) {
	var zero T
	if q.message == "" {
		return zero, ErrEmptyMessage
	}
	if q.parser == nil {
		return zero, ErrNilParser
	}

	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	in := q.in
	if in == nil {
		in = defaultInput()
	}
	out := q.out
	if out == nil {
		out = defaultOutput()
	}

	a := &asker[T]{
		q:        q,
		ctx:      ctx,
		in:       in,
		out:      out,
		start:    time.Now(),
		requests: make(chan struct{}),
		results:  make(chan lineResult, 1),
	}
	go a.serveReads()
	defer close(a.requests)

	return a.finish(a.loop())
}

// lineResult carries one read off the input source.
type lineResult struct {
	line string
	err  error
}

// asker drives one ask invocation. All prompting runs on the calling
// goroutine; only the blocking line reads happen on the serveReads goroutine,
// so that they can be raced against the context.
type asker[T any] struct {
	q        Question[T]
	ctx      context.Context
	in       LineReader
	out      io.Writer
	start    time.Time
	requests chan struct{}
	results  chan lineResult
}

// serveReads performs one blocking read per request. When the ask ends while
// a read is in flight, the read keeps running until the source delivers a
// line, which is then discarded. That line is lost to any later reader of the
// same source; see the package documentation.
func (a *asker[T]) serveReads() {
	for range a.requests {
		line, err := a.in.ReadLine()
		a.results <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

func (a *asker[T]) loop() (T, error) {
	var zero T
	consumed := 0
	for attempt := 1; ; attempt++ {
		select {
		case <-a.ctx.Done():
			return zero, a.timeoutErr()
		default:
		}

		if err := a.prompt(attempt, consumed); err != nil {
			return zero, err
		}

		raw, err := a.readLine()
		if err != nil {
			return zero, err
		}
		raw = trimEOL(raw)

		if raw == "" && !a.q.required && a.q.def != nil {
			return *a.q.def, nil
		}

		value, failure := a.propose(raw)
		if failure == nil {
			return value, nil
		}
		consumed++
		if a.q.attempts > 0 && consumed >= a.q.attempts {
			return zero, &AttemptsError{Attempts: consumed, Last: failure}
		}
		if err := a.write(a.retryText(failure)); err != nil {
			return zero, err
		}
	}
}

// prompt writes the attempt's message, or the remaining-attempts note when
// one is configured, followed by the help text on retries.
func (a *asker[T]) prompt(attempt, consumed int) error {
	message := a.q.message
	if attempt > 1 && a.q.attemptsFeedback != nil {
		message = a.q.attemptsFeedback(a.q.attempts - consumed)
	}
	if err := a.write(message); err != nil {
		return err
	}
	if attempt > 1 {
		return a.write(a.q.help)
	}
	return nil
}

// propose runs one raw answer through the parse and validation pipeline.
func (a *asker[T]) propose(raw string) (T, error) {
	var zero T
	if raw == "" && a.q.required {
		return zero, &ParseError{Input: raw, Err: ErrEmptyAnswer}
	}
	value, err := a.q.parser(raw)
	if err != nil {
		return zero, &ParseError{Input: raw, Err: err}
	}
	if explanation, ok := a.q.rules.Evaluate(value); !ok {
		return zero, &ValidationError{Input: raw, Explanation: explanation}
	}
	return value, nil
}

// readLine hands one read to the serving goroutine and waits for the line or
// the context, whichever comes first.
func (a *asker[T]) readLine() (string, error) {
	select {
	case a.requests <- struct{}{}:
	case <-a.ctx.Done():
		return "", a.timeoutErr()
	}
	select {
	case res := <-a.results:
		if res.err != nil {
			return "", &IOError{Err: res.err}
		}
		return res.line, nil
	case <-a.ctx.Done():
		return "", a.timeoutErr()
	}
}

func (a *asker[T]) write(s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(a.out, s); err != nil {
		return &IOError{Err: err}
	}
	if err := flush(a.out); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

func (a *asker[T]) retryText(failure error) string {
	if a.q.errorFormatter != nil {
		return a.q.errorFormatter(failure)
	}
	return explain(failure)
}

func (a *asker[T]) timeoutErr() error {
	return &TimeoutError{Elapsed: time.Since(a.start), Err: a.ctx.Err()}
}

// finish runs the feedback exactly once against the final outcome and writes
// its remark. A feedback write failure only surfaces when the ask itself
// succeeded; it never masks the failure the feedback was commenting on.
func (a *asker[T]) finish(value T, err error) (T, error) {
	if a.q.feedback == nil {
		return value, err
	}
	if text := a.q.feedback(value, err); text != "" {
		if werr := a.write(text); werr != nil && err == nil {
			var zero T
			return zero, werr
		}
	}
	return value, err
}
