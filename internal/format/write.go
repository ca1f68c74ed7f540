package format

import (
	"fmt"
	"strings"
)

// Options controls whitespace in generated output.
type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 4
	}
	return o
}

// Writer accumulates generated output and provides helpers for emitting
// canonical whitespace. It is append-only and single-pass.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

// NewWriter creates a new generation writer.
func NewWriter(opt Options) *Writer {
	return &Writer{
		opt:         opt.withDefaults(),
		buf:         make([]byte, 0, 1024),
		atLineStart: true,
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// String returns the accumulated output as a string.
func (w *Writer) String() string {
	return string(w.buf)
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	if w.opt.UseTabs {
		for i := 0; i < w.indentLevel; i++ {
			w.buf = append(w.buf, '\t')
		}
	} else {
		spaceCount := w.indentLevel * w.opt.IndentWidth
		for i := 0; i < spaceCount; i++ {
			w.buf = append(w.buf, ' ')
		}
	}
	w.atLineStart = false
}

// WriteString writes a string to the output, handling indentation.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.buf = append(w.buf, s...)
	w.updateLineState(s[len(s)-1])
}

// Printf formats and writes.
func (w *Writer) Printf(formatStr string, args ...any) {
	w.WriteString(fmt.Sprintf(formatStr, args...))
}

// WriteByte writes a single byte to the output.
func (w *Writer) WriteByte(b byte) error {
	w.writeIndent()
	w.buf = append(w.buf, b)
	w.updateLineState(b)
	return nil
}

func (w *Writer) updateLineState(last byte) {
	if last == '\n' {
		w.atLineStart = true
	} else {
		w.atLineStart = false
	}
}

// Space writes a single space unless the output already ends with whitespace.
func (w *Writer) Space() {
	if len(w.buf) == 0 {
		return
	}
	last := w.buf[len(w.buf)-1]
	if last == ' ' || last == '\n' || last == '\t' {
		return
	}
	w.buf = append(w.buf, ' ')
}

// Newline writes a newline unless the output already ends with one.
func (w *Writer) Newline() {
	if len(w.buf) == 0 || w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = true
}

// Line writes a string followed by a hard newline.
func (w *Writer) Line(s string) {
	w.WriteString(s)
	w.buf = append(w.buf, '\n')
	w.atLineStart = true
}

// IndentPush increases the indentation level.
func (w *Writer) IndentPush() {
	w.indentLevel++
}

// IndentPop decreases the indentation level.
func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}

// Indented runs fn with indentation one level deeper.
func (w *Writer) Indented(fn func()) {
	w.IndentPush()
	fn()
	w.IndentPop()
}

// Join invokes fn for each of n items, writing sep between consecutive items.
// Signature emission uses it for comma-separated parameter lists.
func (w *Writer) Join(n int, sep string, fn func(i int)) {
	for i := 0; i < n; i++ {
		if i > 0 {
			w.WriteString(sep)
		}
		fn(i)
	}
}

// JoinStrings is Join over a literal slice.
func (w *Writer) JoinStrings(items []string, sep string) {
	w.Join(len(items), sep, func(i int) {
		w.WriteString(items[i])
	})
}

// TrimmedWrite writes s with surrounding whitespace removed, skipping empty
// results entirely.
func (w *Writer) TrimmedWrite(s string) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return
	}
	w.WriteString(trimmed)
}
