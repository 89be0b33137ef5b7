package source

import (
	"fmt"
	"sort"
)

// File represents a single unit of Metamath source, either the root
// database or a file pulled in via "$[ name $]".
type File struct {
	// Name under which this file was included (e.g. "peano.mm").
	filename string
	// Raw contents, as runes so spans index consistently regardless of
	// multi-byte UTF-8 sequences.
	contents []rune
	// lineStarts[i] is the rune offset where line i+1 begins; lineStarts[0]
	// is always 0. Built once so FindFirstEnclosingLine can binary-search
	// rather than re-scan from the top of the file on every diagnostic a
	// verification session raises.
	lineStarts []int
}

// NewFile constructs a new source file from a given byte array.
func NewFile(filename string, bytes []byte) *File {
	contents := []rune(string(bytes))
	lineStarts := []int{0}

	for i, r := range contents {
		if r == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	return &File{filename, contents, lineStarts}
}

// Filename returns the filename associated with this source file.
func (f *File) Filename() string { return f.filename }

// Contents returns the contents of this source file.
func (f *File) Contents() []rune { return f.contents }

// SyntaxError constructs a syntax error anchored to a span of this file.
func (f *File) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{f, span, msg}
}

// Line describes one physical line of a File, numbered from 1.
type Line struct {
	text   []rune
	span   Span
	number int
}

// String returns the text of this line.
func (l *Line) String() string { return string(l.text[l.span.start:l.span.end]) }

// Number returns the 1-indexed line number.
func (l *Line) Number() int { return l.number }

// Start returns the starting rune offset of this line within its file.
func (l *Line) Start() int { return l.span.start }

// Length returns the number of runes on this line.
func (l *Line) Length() int { return l.span.Length() }

// FindFirstEnclosingLine determines the line enclosing the start of span,
// via binary search over lineStarts rather than a linear scan from the
// beginning of the file. If the position is beyond the end of the file,
// the last physical line is returned.
func (f *File) FindFirstEnclosingLine(span Span) Line {
	index := span.start
	if index > len(f.contents) {
		index = len(f.contents)
	}

	lineIdx := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > index
	}) - 1

	start := f.lineStarts[lineIdx]
	end := len(f.contents)

	if lineIdx+1 < len(f.lineStarts) {
		end = f.lineStarts[lineIdx+1] - 1 // exclude the newline itself
	}

	return Line{f.contents, Span{start, end}, lineIdx + 1}
}

// SyntaxError is a structured error which retains a span of the original
// file where a problem was found, along with a human-readable message.
type SyntaxError struct {
	srcfile *File
	span    Span
	msg     string
}

// SourceFile returns the file this error was raised against.
func (e *SyntaxError) SourceFile() *File { return e.srcfile }

// Span returns the span of the file this error is reported over.
func (e *SyntaxError) Span() Span { return e.span }

// Message returns the human-readable error message.
func (e *SyntaxError) Message() string { return e.msg }

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	line := e.FirstEnclosingLine()
	return fmt.Sprintf("%s:%d:%s", e.srcfile.Filename(), line.Number(), e.msg)
}

// FirstEnclosingLine determines the first line of the owning file to which
// this error's span belongs.
func (e *SyntaxError) FirstEnclosingLine() Line {
	return e.srcfile.FindFirstEnclosingLine(e.span)
}
