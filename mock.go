package asking

import "io"

// scriptReader implements LineReader for testing and development.
//
// It plays back a pre-configured sequence of lines, one per ReadLine call,
// providing deterministic input without a terminal. Once the script runs out
// it keeps returning io.EOF, which mirrors a user closing the input stream.
type scriptReader struct {
	lines []string
	pos   int
}

func newScriptReader(lines ...string) *scriptReader {
	return &scriptReader{lines: lines}
}

func (r *scriptReader) ReadLine() (string, error) {
	if r.pos >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.pos]
	r.pos++
	return line, nil
}

// blockingReader implements LineReader as a user who answers only when told
// to. Every ReadLine blocks until Answer delivers a line or Close ends the
// input, which makes timeout behavior reproducible in tests.
type blockingReader struct {
	answers chan string
}

func newBlockingReader() *blockingReader {
	return &blockingReader{answers: make(chan string)}
}

func (r *blockingReader) ReadLine() (string, error) {
	line, ok := <-r.answers
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

// Answer delivers one line to a pending or future ReadLine.
func (r *blockingReader) Answer(line string) {
	r.answers <- line
}

// Close ends the input; blocked and future ReadLine calls return io.EOF.
func (r *blockingReader) Close() {
	close(r.answers)
}
