package report

import (
	"path/filepath"
	"sort"
)

// SourceFile is a source file loaded into memory.  It is used to map byte
// offsets back to line and column positions when displaying diagnostics.
type SourceFile struct {
	// The absolute path to the source file.
	AbsPath string

	// The path displayed to the user.  This is usually the path relative to
	// the directory the compiler was invoked from.
	ReprPath string

	// The full text of the file.
	Text string

	// lineStarts is the byte offset of the first byte of every line.
	lineStarts []int
}

// NewSourceFile creates a new source file from its path and text.
func NewSourceFile(absPath, text string) *SourceFile {
	sf := &SourceFile{
		AbsPath:    absPath,
		ReprPath:   absPath,
		Text:       text,
		lineStarts: []int{0},
	}

	if wd, err := filepath.Abs("."); err == nil {
		if rel, err := filepath.Rel(wd, absPath); err == nil {
			sf.ReprPath = rel
		}
	}

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			sf.lineStarts = append(sf.lineStarts, i+1)
		}
	}

	return sf
}

// Position returns the zero-indexed line and column of the given byte offset.
// Offsets outside of the file are clamped to its bounds.
func (sf *SourceFile) Position(offset int) (line, col int) {
	offset = min(max(offset, 0), len(sf.Text))

	line = sort.Search(len(sf.lineStarts), func(i int) bool {
		return sf.lineStarts[i] > offset
	}) - 1

	return line, offset - sf.lineStarts[line]
}

// LineCount returns the number of lines in the file.
func (sf *SourceFile) LineCount() int {
	return len(sf.lineStarts)
}

// Line returns the text of the zero-indexed line n without its line ending.
func (sf *SourceFile) Line(n int) (string, bool) {
	if n < 0 || n >= len(sf.lineStarts) {
		return "", false
	}

	start := sf.lineStarts[n]
	end := len(sf.Text)
	if n+1 < len(sf.lineStarts) {
		end = sf.lineStarts[n+1] - 1
	}

	if end > start && sf.Text[end-1] == '\r' {
		end--
	}

	return sf.Text[start:end], true
}
