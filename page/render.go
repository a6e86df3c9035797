package page

import "strings"

// Render cuts the page that starts at c.
//
// Each row takes one segment of at most cfg.DisplayWidth. An empty line fills
// a row with nothing. A line whose next character is wider than the whole
// budget is skipped and still fills a row, so the loop always makes progress.
// Render has no side effects: the same inputs yield the same Page.
func (p *Pager) Render(c Cursor, cfg Config) (Page, error) {
	if err := cfg.Validate(); err != nil {
		return Page{}, err
	}
	if len(p.lines) == 0 {
		return Page{}, nil
	}

	c = p.clamp(c)
	line, off := c.Line, c.Offset
	rows := 0
	var sb strings.Builder
	for rows < cfg.LinesPerPage && line < len(p.lines) {
		text := p.lines[line]
		if len(text) == 0 {
			rows++
			line, off = line+1, 0
			continue
		}
		if off >= len(text) {
			// Only a cursor at the line end gets here, such as the Next
			// reported at the end of the corpus. No row is spent on it.
			line, off = line+1, 0
			continue
		}

		seg := p.measure.Slice(text, off, cfg.DisplayWidth)
		rows++
		if seg.End <= off {
			line, off = line+1, 0
			continue
		}

		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(seg.Text)

		if seg.End >= len(text) {
			line, off = line+1, 0
		} else {
			off = seg.End
		}
	}

	next := Cursor{Line: line, Offset: off}
	if line >= len(p.lines) {
		last := len(p.lines) - 1
		next = Cursor{Line: last, Offset: len(p.lines[last])}
	}
	return Page{Text: sb.String(), Next: next}, nil
}
