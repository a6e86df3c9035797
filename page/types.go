package page

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig reports a non-positive DisplayWidth or LinesPerPage.
	ErrInvalidConfig = errors.New("page: invalid configuration")
	// ErrAtEnd reports that the cursor already shows the last page.
	ErrAtEnd = errors.New("page: already at the last page")
	// ErrAtStart reports that the cursor already shows the first page.
	ErrAtStart = errors.New("page: already at the first page")
	// ErrInvalidTarget reports a jump outside the corpus.
	ErrInvalidTarget = errors.New("page: invalid target line")
)

// Cursor marks where the next page begins.
// Line is 0-based; Offset is a rune index into that line.
type Cursor struct {
	Line   int
	Offset int
}

// Config sizes one page. It may change between calls.
type Config struct {
	// DisplayWidth is the width budget of one row.
	DisplayWidth int
	// LinesPerPage is the number of rows rendered per page.
	LinesPerPage int
}

// Validate returns ErrInvalidConfig when either field is not positive.
func (c Config) Validate() error {
	if c.DisplayWidth <= 0 {
		return fmt.Errorf("%w: display width %d", ErrInvalidConfig, c.DisplayWidth)
	}
	if c.LinesPerPage <= 0 {
		return fmt.Errorf("%w: lines per page %d", ErrInvalidConfig, c.LinesPerPage)
	}
	return nil
}

// Page is one rendered viewport.
type Page struct {
	// Text is up to LinesPerPage segments joined by a single space.
	Text string
	// Next is the position right after this page's content.
	Next Cursor
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampCursor clamps c into corpus bounds described by lineCount and lineLen.
//
// The returned Cursor always satisfies:
// - 0 <= Line < lineCount (with lineCount treated as at least 1)
// - 0 <= Offset <= lineLen(Line)
func ClampCursor(c Cursor, lineCount int, lineLen func(line int) int) Cursor {
	if lineCount <= 0 {
		lineCount = 1
	}

	line := clampInt(c.Line, 0, lineCount-1)

	maxOffset := 0
	if lineLen != nil {
		maxOffset = lineLen(line)
		if maxOffset < 0 {
			maxOffset = 0
		}
	}
	return Cursor{Line: line, Offset: clampInt(c.Offset, 0, maxOffset)}
}
