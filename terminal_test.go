package asking

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"golang.org/x/term"
)

func TestLineScanner(t *testing.T) {
	t.Parallel()

	t.Run("lines keep their terminators", func(t *testing.T) {
		t.Parallel()

		s := newLineScanner(strings.NewReader("one\ntwo\r\n"))

		line, err := s.ReadLine()
		if err != nil {
			t.Errorf("ReadLine() error = %v", err)
		}
		if line != "one\n" {
			t.Errorf("Expected %q, got %q", "one\n", line)
		}

		line, err = s.ReadLine()
		if err != nil {
			t.Errorf("ReadLine() error = %v", err)
		}
		if line != "two\r\n" {
			t.Errorf("Expected %q, got %q", "two\r\n", line)
		}
	})

	t.Run("a final unterminated line is still a line", func(t *testing.T) {
		t.Parallel()

		s := newLineScanner(strings.NewReader("yes"))

		line, err := s.ReadLine()
		if err != nil {
			t.Errorf("ReadLine() error = %v", err)
		}
		if line != "yes" {
			t.Errorf("Expected %q, got %q", "yes", line)
		}

		_, err = s.ReadLine()
		if !errors.Is(err, io.EOF) {
			t.Errorf("Expected EOF after the last line, got %v", err)
		}
	})

	t.Run("empty input is EOF", func(t *testing.T) {
		t.Parallel()

		s := newLineScanner(strings.NewReader(""))

		_, err := s.ReadLine()
		if !errors.Is(err, io.EOF) {
			t.Errorf("Expected EOF for empty input, got %v", err)
		}
	})
}

func TestScriptReader(t *testing.T) {
	t.Parallel()

	r := newScriptReader("first", "second")

	line, err := r.ReadLine()
	if err != nil {
		t.Errorf("ReadLine() error = %v", err)
	}
	if line != "first" {
		t.Errorf("Expected %q, got %q", "first", line)
	}

	line, err = r.ReadLine()
	if err != nil {
		t.Errorf("ReadLine() error = %v", err)
	}
	if line != "second" {
		t.Errorf("Expected %q, got %q", "second", line)
	}

	// Exhausted scripts keep returning EOF
	for i := range 2 {
		_, err = r.ReadLine()
		if !errors.Is(err, io.EOF) {
			t.Errorf("Expected EOF on extra read %d, got %v", i, err)
		}
	}
}

func TestBlockingReader(t *testing.T) {
	t.Parallel()

	r := newBlockingReader()

	go r.Answer("hello")
	line, err := r.ReadLine()
	if err != nil {
		t.Errorf("ReadLine() error = %v", err)
	}
	if line != "hello" {
		t.Errorf("Expected %q, got %q", "hello", line)
	}

	r.Close()
	_, err = r.ReadLine()
	if !errors.Is(err, io.EOF) {
		t.Errorf("Expected EOF after Close, got %v", err)
	}
}

func TestPasswordReaderFallback(t *testing.T) {
	t.Parallel()

	// An invalid descriptor is never a terminal, so the reader must fall
	// back to a plain buffered read.
	p := &passwordReader{
		stdinFd:  -1,
		fallback: newLineScanner(strings.NewReader("secret\n")),
	}

	line, err := p.ReadLine()
	if err != nil {
		t.Errorf("ReadLine() error = %v", err)
	}
	if line != "secret\n" {
		t.Errorf("Expected %q, got %q", "secret\n", line)
	}
}

func TestIsTerminal(t *testing.T) {
	// Test with stdin
	stdinFd := int(os.Stdin.Fd())
	isTerminal := term.IsTerminal(stdinFd)

	if os.Getenv("GITHUB_ACTIONS") != "" {
		// In CI, stdin is usually not a terminal
		t.Logf("IsTerminal(stdin) in CI: %v", isTerminal)
	} else {
		t.Logf("IsTerminal(stdin) locally: %v", isTerminal)
	}

	// Test with invalid fd
	if term.IsTerminal(-1) {
		t.Error("Expected IsTerminal(-1) to return false")
	}
}

func TestDefaultStreams(t *testing.T) {
	t.Parallel()

	if defaultInput() == nil {
		t.Error("Expected non-nil default input")
	}
	if defaultOutput() == nil {
		t.Error("Expected non-nil default output")
	}
}

func TestOpenTTY(t *testing.T) {
	if os.Getenv("GITHUB_ACTIONS") == "" {
		t.Skip("Skipping real terminal test in local development")
	}

	terminal, err := OpenTTY()
	if err != nil {
		t.Logf("Cannot open the controlling terminal in this environment: %v", err)
		// This is expected in headless CI environments
		return
	}

	if terminal.Output() == nil {
		t.Error("Expected non-nil terminal output")
	}

	// Double close should not panic or fail
	err1 := terminal.Close()
	err2 := terminal.Close()
	if err1 != nil {
		t.Errorf("First close failed: %v", err1)
	}
	if err2 != nil {
		t.Errorf("Second close should not fail: %v", err2)
	}
}

func TestTTYCloseWithoutTerminal(t *testing.T) {
	t.Parallel()

	terminal := &TTY{tty: nil}

	// Close should handle a nil handle gracefully
	if err := terminal.Close(); err != nil {
		t.Errorf("Close() with nil handle should not error, got: %v", err)
	}
	if terminal.closed {
		t.Error("Expected closed flag to remain false with nil handle")
	}
}

func TestLineReaderCompliance(_ *testing.T) {
	var _ LineReader = (*lineScanner)(nil)
	var _ LineReader = (*TTY)(nil)
	var _ LineReader = (*passwordReader)(nil)
	var _ LineReader = (*scriptReader)(nil)
	var _ LineReader = (*blockingReader)(nil)
}
