package token

import (
	"fmt"
	"sort"
)

// File tracks the line-start offsets of one source buffer previously
// registered with a FileSet, so a byte offset within it can be resolved to
// a 1-based line/column pair on demand.
type File struct {
	name        string // name as given to FileSet.AddFile
	base        int    // Pos values for this file span [base, base+size]
	size        int    // byte length as given to FileSet.AddFile
	lineOffsets []int  // byte offset of each line's first byte; [0] is always 0
}

// Name returns the name f was registered under.
func (f *File) Name() string {
	return f.name
}

// Base returns f's starting Pos offset.
func (f *File) Base() int {
	return f.base
}

// Size returns the byte length f was registered with.
func (f *File) Size() int {
	return f.size
}

// LineCount returns how many line starts have been recorded so far.
func (f *File) LineCount() int {
	return len(f.lineOffsets)
}

// Lines returns the recorded line-start offsets. Callers must not mutate
// the result.
func (f *File) Lines() []int {
	return f.lineOffsets
}

// AddLine records offset as the start of a new line. It is silently
// ignored unless it strictly follows the previous line start and falls
// within the file.
func (f *File) AddLine(offset int) {
	n := len(f.lineOffsets)
	if (n == 0 || f.lineOffsets[n-1] < offset) && offset < f.size {
		f.lineOffsets = append(f.lineOffsets, offset)
	}
}

// LineStart returns the Pos of the first byte of the given 1-based line
// number. It panics if line is out of the recorded range.
func (f *File) LineStart(line int) Pos {
	switch {
	case line < 1:
		panic(fmt.Sprintf("invalid line number %d (should be >= 1)", line))
	case line > len(f.lineOffsets):
		panic(fmt.Sprintf("invalid line number %d (should be < %d)", line, len(f.lineOffsets)+1))
	default:
		return Pos(f.base + f.lineOffsets[line-1])
	}
}

// Pos converts a byte offset within f into a file-set-wide Pos.
func (f *File) Pos(offset int) Pos {
	return Pos(f.base + f.clamp(offset))
}

// Offset converts a Pos belonging to f back into a byte offset.
func (f *File) Offset(p Pos) int {
	return f.clamp(int(p) - f.base)
}

// Line returns the 1-based line number containing p.
func (f *File) Line(p Pos) int {
	return f.Position(p).Line
}

// Position resolves p, which must belong to f, into a full Position. NoPos
// resolves to the zero Position.
func (f *File) Position(p Pos) Position {
	if p == NoPos {
		return Position{}
	}
	return f.position(p)
}

func (f *File) position(p Pos) Position {
	offset := f.clamp(int(p) - f.base)
	line, column := f.locate(offset)
	return Position{Filename: f.name, Offset: offset, Line: line, Column: column}
}

// clamp pins an out-of-range offset to the nearest valid value, 0 or size.
func (f *File) clamp(offset int) int {
	switch {
	case offset < 0:
		return 0
	case offset > f.size:
		return f.size
	default:
		return offset
	}
}

// locate finds the line and column for a byte offset by binary-searching
// the recorded line starts for the last one at or before offset.
func (f *File) locate(offset int) (line, column int) {
	i := sort.Search(len(f.lineOffsets), func(i int) bool {
		return f.lineOffsets[i] > offset
	}) - 1
	if i < 0 {
		return 0, 0
	}
	return i + 1, offset - f.lineOffsets[i] + 1
}
