package app

import (
	"bytes"
	"io"
)

var (
	clearLine  = []byte("\r\033[K")
	greenColor = []byte("\033[32m")
	resetColor = []byte("\033[0m")
	newLine    = []byte("\n")
)

var _ io.Writer = (*InterimWriter)(nil)

// InterimWriter redraws the current terminal line.
type InterimWriter struct {
	Writer io.Writer
	buf    bytes.Buffer
}

func (w *InterimWriter) Write(p []byte) (n int, err error) {
	w.buf.Reset()
	w.buf.Write(clearLine)
	w.buf.Write(greenColor)
	w.buf.Write(p)
	w.buf.Write(resetColor)

	return w.Writer.Write(w.buf.Bytes())
}

var _ io.Writer = (*LineWriter)(nil)

// LineWriter terminates every write with a newline. With ClearLine set it
// first erases an interim line drawn by InterimWriter.
type LineWriter struct {
	Writer    io.Writer
	ClearLine bool
	buf       bytes.Buffer
}

func (w *LineWriter) Write(p []byte) (n int, err error) {
	w.buf.Reset()
	if w.ClearLine {
		w.buf.Write(clearLine)
	}
	w.buf.Write(p)
	w.buf.Write(newLine)

	return w.Writer.Write(w.buf.Bytes())
}
