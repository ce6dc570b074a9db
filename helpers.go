package asking

import (
	"io"
	"strings"
)

// trimEOL removes the trailing line terminator from one line of raw input.
// Only trailing '\r' and '\n' characters are stripped; interior and leading
// whitespace stay untouched, so "  " is an answer of two spaces, not an
// empty answer.
func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}

// flush pushes buffered output through to the user when the sink supports
// it. Prompts must be visible before the read starts, or the user sits in
// front of a blank line.
func flush(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
