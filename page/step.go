package page

// Advance moves c forward by cfg.LinesPerPage segments.
//
// If not even one step is possible (the last line is fully shown from c),
// Advance returns c unchanged with ErrAtEnd. If the corpus ends part way, the
// cursor stops at the last segment reached.
func (p *Pager) Advance(c Cursor, cfg Config) (Cursor, error) {
	if err := cfg.Validate(); err != nil {
		return c, err
	}
	if len(p.lines) == 0 {
		return c, ErrAtEnd
	}

	cur := p.clamp(c)
	for i := 0; i < cfg.LinesPerPage; i++ {
		next, ok := p.stepForward(cur, cfg.DisplayWidth)
		if !ok {
			if i == 0 {
				return c, ErrAtEnd
			}
			break
		}
		cur = next
	}
	return cur, nil
}

// Retreat moves c backward by cfg.LinesPerPage segments, entering a previous
// line at the start of its last segment. At {0,0} it returns c unchanged with
// ErrAtStart.
func (p *Pager) Retreat(c Cursor, cfg Config) (Cursor, error) {
	if err := cfg.Validate(); err != nil {
		return c, err
	}
	if len(p.lines) == 0 {
		return c, ErrAtStart
	}

	cur := p.clamp(c)
	for i := 0; i < cfg.LinesPerPage; i++ {
		prev, ok := p.stepBackward(cur, cfg.DisplayWidth)
		if !ok {
			if i == 0 {
				return c, ErrAtStart
			}
			break
		}
		cur = prev
	}
	return cur, nil
}

func (p *Pager) stepForward(c Cursor, width int) (Cursor, bool) {
	text := p.lines[c.Line]
	end := p.measure.Slice(text, c.Offset, width).End

	// A slice that reached the end or made no progress moves to the next line.
	if end >= len(text) || end <= c.Offset {
		if c.Line >= len(p.lines)-1 {
			return c, false
		}
		return Cursor{Line: c.Line + 1}, true
	}
	return Cursor{Line: c.Line, Offset: end}, true
}

func (p *Pager) stepBackward(c Cursor, width int) (Cursor, bool) {
	if c.Offset > 0 {
		return Cursor{Line: c.Line, Offset: p.measure.PrevIndex(p.lines[c.Line], c.Offset, width)}, true
	}
	if c.Line > 0 {
		prev := c.Line - 1
		return Cursor{Line: prev, Offset: p.measure.LastSegmentStart(p.lines[prev], width)}, true
	}
	return c, false
}
