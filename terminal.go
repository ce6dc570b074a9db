package asking

import (
	"bufio"
	"errors"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// LineReader abstracts the input side of a question for testability and
// cross-platform compatibility.
//
// A LineReader yields raw input one line at a time, terminator included when
// the source provides one. Implementations report I/O problems, including
// end of input, through the error return.
//
// Implementations:
//   - lineScanner: wraps any io.Reader (the default, over os.Stdin)
//   - TTY: reads from the controlling terminal via go-tty
//   - passwordReader: reads without echo via golang.org/x/term
type LineReader interface {
	ReadLine() (string, error)
}

// lineScanner adapts a plain io.Reader into a LineReader.
type lineScanner struct {
	r *bufio.Reader
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{r: bufio.NewReader(r)}
}

// ReadLine returns the next line including its terminator. A final line that
// ends at EOF without a terminator is still returned as a line; the EOF
// surfaces on the following call.
func (s *lineScanner) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func defaultInput() LineReader {
	return newLineScanner(os.Stdin)
}

func defaultOutput() io.Writer {
	if runtime.GOOS == "windows" {
		// Use colorable for Windows ANSI escape sequence processing
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

// TTY is a question's line of communication with the controlling terminal.
// Use it when the standard streams are redirected, for example inside a
// pipeline, but the question should still reach the user:
//
//	t, err := asking.OpenTTY()
//	if err != nil {
//		return err
//	}
//	defer t.Close()
//
//	ok, err := asking.YN().Message("Overwrite? (y/n) ").Terminal(t).Ask()
//
// A TTY is not safe for concurrent use. Always Close it to release the
// terminal handle; Close is safe to call more than once.
type TTY struct {
	tty    *tty.TTY
	closed bool // prevents double-close panic on Windows
}

// OpenTTY opens the controlling terminal.
func OpenTTY() (*TTY, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &TTY{tty: t}, nil
}

// ReadLine reads one answer from the terminal.
func (t *TTY) ReadLine() (string, error) {
	return t.tty.ReadString()
}

// Output returns the writer that reaches the terminal's screen.
func (t *TTY) Output() io.Writer {
	return t.tty.Output()
}

// Close releases the terminal handle.
func (t *TTY) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}

// passwordReader reads a line with terminal echo disabled, so the answer
// never appears on screen. When standard input is not a terminal it falls
// back to a plain buffered read.
type passwordReader struct {
	stdinFd  int
	fallback LineReader
}

func newPasswordReader() *passwordReader {
	return &passwordReader{
		stdinFd:  int(os.Stdin.Fd()),
		fallback: newLineScanner(os.Stdin),
	}
}

func (p *passwordReader) ReadLine() (string, error) {
	if term.IsTerminal(p.stdinFd) {
		secret, err := term.ReadPassword(p.stdinFd)
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}
	return p.fallback.ReadLine()
}
