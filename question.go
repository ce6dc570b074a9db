package asking

import (
	"io"
	"slices"
	"time"
)

// Question describes one question to ask: the message to display, how to
// parse the answer, the rules an answer must pass, and how patient to be
// about retries and time.
//
// A Question is an immutable value. Every configuration method takes the
// receiver by value and returns the updated copy, so a configured question
// can be stored, copied, and derived from freely:
//
//	base := asking.Int().Message("Pick a number: ").Rules(asking.Between(1, 10))
//	strict := base.Attempts(1)
//	patient := base.Timeout(time.Minute)
//
// Both derived questions share nothing with each other; asking one has no
// effect on the other. The zero value is not usable: a question needs at
// least a message and a parser, which Ask checks before doing anything else.
//
// Input and output default to the process's standard streams. Reader, Writer,
// LineReader and Terminal rebind them. The handles are used exclusively for
// the duration of one Ask call; two asks running at the same time over the
// same handles interleave unpredictably, so serialize them or use distinct
// handles.
type Question[T any] struct {
	message          string
	help             string
	def              *T
	required         bool
	parser           Parser[T]
	rules            RuleSet[T]
	attempts         int
	attemptsFeedback func(remaining int) string
	timeout          time.Duration
	feedback         func(value T, err error) string
	errorFormatter   func(err error) string
	in               LineReader
	out              io.Writer
}

// New builds a question that converts answers with the given parser.
//
// Example:
//
//	hex := asking.New(func(s string) (int64, error) {
//		return strconv.ParseInt(s, 16, 64)
//	})
//	n, err := hex.Message("Color (hex): ").Ask()
func New[T any](parser Parser[T]) Question[T] {
	return Question[T]{parser: parser}
}

// YN builds a yes/no question. After lowercasing, "true", "t", "yes" and "y"
// answer true, and "false", "f", "no" and "n" answer false.
func YN() Question[bool] {
	return New(parseBool)
}

// Date builds a question answered by a calendar date in DateLayout form,
// for example "2026-08-21".
func Date() Question[time.Time] {
	return New(parseDate)
}

// Text builds a question that accepts any line of text as is.
func Text() Question[string] {
	return New(parseText)
}

// Int builds a question answered by a whole number.
func Int() Question[int] {
	return New(parseInt)
}

// Float64 builds a question answered by a number.
func Float64() Question[float64] {
	return New(parseFloat)
}

// Select builds a question whose answer must be one of the given options,
// compared verbatim.
func Select(options ...string) Question[string] {
	return New(parseText).Rules(OneOf(options...))
}

// Password builds a text question that reads its answer with terminal echo
// disabled, so the typed secret never appears on screen. When standard input
// is not a terminal the answer is read like any other line.
func Password() Question[string] {
	return New(parseText).LineReader(newPasswordReader())
}

// Message sets the text written before each read. A question with no message
// cannot be asked.
func (q Question[T]) Message(message string) Question[T] {
	q.message = message
	return q
}

// Help sets a hint written after the message on every retry. It is not shown
// on the first attempt.
func (q Question[T]) Help(help string) Question[T] {
	q.help = help
	return q
}

// Default sets the value accepted when the user answers with an empty line.
// The default is returned as is: neither the parser nor the rules see it.
// It only applies to an empty line that was actually read; end of input is
// still an I/O failure.
func (q Question[T]) Default(value T) Question[T] {
	q.def = &value
	return q
}

// Required refuses empty answers, even when a default is configured. The
// refusal consumes an attempt like any other rejected answer and is shown as
// ErrEmptyAnswer.
func (q Question[T]) Required() Question[T] {
	q.required = true
	return q
}

// Parser replaces the parser.
func (q Question[T]) Parser(parser Parser[T]) Question[T] {
	q.parser = parser
	return q
}

// Rules appends acceptance rules. Rules run in the order they were added and
// the first failure decides the reported explanation.
func (q Question[T]) Rules(rules ...Rule[T]) Question[T] {
	q.rules = append(slices.Clip(q.rules), rules...)
	return q
}

// Test appends a rule that rejects silently.
func (q Question[T]) Test(pred func(T) bool) Question[T] {
	return q.TestMsg(pred, "")
}

// TestMsg appends a rule with the given explanation.
func (q Question[T]) TestMsg(pred func(T) bool, explanation string) Question[T] {
	return q.Rules(Rule[T]{Pred: pred, Explanation: explanation})
}

// Attempts bounds how many rejected answers the question tolerates before
// giving up with an AttemptsError. n <= 0 means unbounded.
func (q Question[T]) Attempts(n int) Question[T] {
	q.attempts = n
	return q
}

// AttemptsWithFeedback is Attempts with a message per retry: on every attempt
// after the first, feedback(remaining) replaces the question's message, where
// remaining counts the attempts still available including the current one.
//
//	q.AttemptsWithFeedback(3, func(remaining int) string {
//		if remaining == 1 {
//			return "Last chance: "
//		}
//		return fmt.Sprintf("Try again (%d left): ", remaining)
//	})
func (q Question[T]) AttemptsWithFeedback(n int, feedback func(remaining int) string) Question[T] {
	q.attempts = n
	q.attemptsFeedback = feedback
	return q
}

// Timeout bounds how long the whole ask may take. When the time is up the
// ask stops where it is and reports a TimeoutError. d <= 0 means wait
// forever.
func (q Question[T]) Timeout(d time.Duration) Question[T] {
	q.timeout = d
	return q
}

// Feedback sets a closing remark. After the outcome is decided, on success
// and failure alike, feedback receives the final value and error and its
// return is written to the output sink. Return "" to write nothing.
func (q Question[T]) Feedback(feedback func(value T, err error) string) Question[T] {
	q.feedback = feedback
	return q
}

// ErrorFormatter replaces the text written when a rejected answer is asked
// again. The formatter receives the *ParseError or *ValidationError of the
// failed attempt; returning "" silences the retry entirely. Without a
// formatter, parse failures show the parser's error text and validation
// failures show the failing rule's explanation.
func (q Question[T]) ErrorFormatter(format func(err error) string) Question[T] {
	q.errorFormatter = format
	return q
}

// Reader reads answers from r instead of standard input.
func (q Question[T]) Reader(r io.Reader) Question[T] {
	q.in = newLineScanner(r)
	return q
}

// LineReader reads answers from a custom line source instead of standard
// input.
func (q Question[T]) LineReader(r LineReader) Question[T] {
	q.in = r
	return q
}

// Writer writes prompts to w instead of standard output. If w has a
// Flush() error method it is flushed after every write.
func (q Question[T]) Writer(w io.Writer) Question[T] {
	q.out = w
	return q
}

// Terminal binds the question to an open controlling terminal, reading and
// writing through it even when the standard streams are redirected.
func (q Question[T]) Terminal(t *TTY) Question[T] {
	return q.LineReader(t).Writer(t.Output())
}
