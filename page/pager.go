package page

import (
	"fmt"

	"github.com/iw2rmb/glance/display"
)

// Options configures a Pager.
type Options struct {
	// Measure classifies character widths. Nil means display.Block.
	Measure display.Measure
}

// Pager pages an immutable line corpus.
//
// A Pager holds no cursor, so one instance may serve concurrent callers; each
// caller owns and serializes its own Cursor.
type Pager struct {
	lines   [][]rune
	measure display.Measure
}

// New builds a Pager over lines. Empty strings are valid lines and each takes
// one row of a page.
func New(lines []string, opt Options) *Pager {
	rl := make([][]rune, 0, len(lines))
	for _, s := range lines {
		rl = append(rl, []rune(s))
	}
	m := opt.Measure
	if m == nil {
		m = display.Block
	}
	return &Pager{lines: rl, measure: m}
}

// Len returns the number of lines in the corpus.
func (p *Pager) Len() int { return len(p.lines) }

// Line returns line i, or "" when i is out of range.
func (p *Pager) Line(i int) string {
	if i < 0 || i >= len(p.lines) {
		return ""
	}
	return string(p.lines[i])
}

func (p *Pager) lineLen(i int) int {
	if i < 0 || i >= len(p.lines) {
		return 0
	}
	return len(p.lines[i])
}

func (p *Pager) clamp(c Cursor) Cursor {
	return ClampCursor(c, len(p.lines), p.lineLen)
}

// Resume turns a persisted cursor into a valid one for the current corpus and
// width: the line is clamped to the last line and the offset is moved back to
// the start of the segment that contains it.
func (p *Pager) Resume(c Cursor, cfg Config) Cursor {
	if len(p.lines) == 0 {
		return Cursor{}
	}
	c = p.clamp(c)
	if cfg.DisplayWidth <= 0 {
		return Cursor{Line: c.Line}
	}
	c.Offset = p.measure.SegmentStartAtOrBefore(p.lines[c.Line], c.Offset, cfg.DisplayWidth)
	return c
}

// Jump moves to the start of line target. On ErrInvalidTarget the returned
// cursor is c unchanged.
func (p *Pager) Jump(c Cursor, target int) (Cursor, error) {
	if target < 0 || target >= len(p.lines) {
		return c, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidTarget, target, len(p.lines))
	}
	return Cursor{Line: target}, nil
}
