package java

import (
	"io"
	"strings"
	"unicode/utf8"
)

// DefaultColumnLimit is the line width used when none is configured.
const DefaultColumnLimit = 100

type flushType int

const (
	flushNone flushType = iota
	flushWrap
	flushSpace
	flushEmpty
)

// LineWrapper writes text to w, turning wrapping spaces into newlines when a
// line would otherwise exceed the column limit. Columns are counted in runes.
// Text following the most recent wrapping space is buffered until it is
// known whether the space becomes a newline.
type LineWrapper struct {
	out         io.Writer
	indent      string
	columnLimit int
	closed      bool
	err         error

	buffer strings.Builder
	// column counts runes since the last newline, including buffered text.
	column int
	// indentLevel is the number of indents to write after wrapping, or -1
	// when nothing is buffered.
	indentLevel int
	nextFlush   flushType
}

func NewLineWrapper(w io.Writer, indent string, columnLimit int) *LineWrapper {
	checkNotNull(w != nil, "out")
	checkArgument(columnLimit > 0, "column limit must be positive")
	return &LineWrapper{
		out:         w,
		indent:      indent,
		columnLimit: columnLimit,
		indentLevel: -1,
	}
}

// Append emits s. It may be buffered to permit a line wrap before it.
func (lw *LineWrapper) Append(s string) error {
	if lw.closed {
		return newError(ErrIllegalState, "closed")
	}
	if lw.nextFlush != flushNone {
		nextNewline := strings.IndexByte(s, '\n')
		// Buffer s if it fits on the current line; whether to wrap is
		// decided later.
		if nextNewline < 0 && lw.column+utf8.RuneCountInString(s) <= lw.columnLimit {
			lw.buffer.WriteString(s)
			lw.column += utf8.RuneCountInString(s)
			return nil
		}
		wrap := nextNewline < 0 || lw.column+utf8.RuneCountInString(s[:nextNewline]) > lw.columnLimit
		if wrap {
			lw.flush(flushWrap)
		} else {
			lw.flush(lw.nextFlush)
		}
	}

	lw.write(s)
	if lastNewline := strings.LastIndexByte(s, '\n'); lastNewline >= 0 {
		lw.column = utf8.RuneCountInString(s[lastNewline+1:])
	} else {
		lw.column += utf8.RuneCountInString(s)
	}
	return lw.err
}

// WrappingSpace emits a space, or a newline followed by indentLevel indents
// if the text after it does not fit.
func (lw *LineWrapper) WrappingSpace(indentLevel int) error {
	if lw.closed {
		return newError(ErrIllegalState, "closed")
	}
	if lw.nextFlush != flushNone {
		lw.flush(lw.nextFlush)
	}
	// The space is counted now even though it is written on flush.
	lw.column++
	lw.nextFlush = flushSpace
	lw.indentLevel = indentLevel
	return lw.err
}

// ZeroWidthSpace emits nothing, or a newline followed by indentLevel
// indents if the text after it does not fit.
func (lw *LineWrapper) ZeroWidthSpace(indentLevel int) error {
	if lw.closed {
		return newError(ErrIllegalState, "closed")
	}
	if lw.column == 0 {
		return nil
	}
	if lw.nextFlush != flushNone {
		lw.flush(lw.nextFlush)
	}
	lw.nextFlush = flushEmpty
	lw.indentLevel = indentLevel
	return lw.err
}

// Close flushes buffered text. Further calls fail.
func (lw *LineWrapper) Close() error {
	if lw.nextFlush != flushNone {
		lw.flush(lw.nextFlush)
	}
	lw.closed = true
	return lw.err
}

func (lw *LineWrapper) flush(t flushType) {
	switch t {
	case flushWrap:
		lw.write("\n")
		for i := 0; i < lw.indentLevel; i++ {
			lw.write(lw.indent)
		}
		lw.column = lw.indentLevel*utf8.RuneCountInString(lw.indent) + utf8.RuneCountInString(lw.buffer.String())
	case flushSpace:
		lw.write(" ")
	}
	lw.write(lw.buffer.String())
	lw.buffer.Reset()
	lw.indentLevel = -1
	lw.nextFlush = flushNone
}

func (lw *LineWrapper) write(s string) {
	if lw.err != nil || s == "" {
		return
	}
	_, lw.err = io.WriteString(lw.out, s)
}
