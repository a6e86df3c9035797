package display

// SegmentCount returns how many width-sized rows s occupies:
// ceil(StringWidth(s) / width). It is 0 for "" and for width <= 0.
func SegmentCount(s string, width int) int {
	return Block.SegmentCount([]rune(s), width)
}

// LastSegmentStart returns the rune index where the final row of s begins.
func LastSegmentStart(s string, width int) int {
	return Block.LastSegmentStart([]rune(s), width)
}

// SegmentCount is the package-level SegmentCount over a rune line.
func (m Measure) SegmentCount(line []rune, width int) int {
	if width <= 0 || len(line) == 0 {
		return 0
	}
	total := m.LineWidth(line)
	return (total + width - 1) / width
}

// LastSegmentStart is the package-level LastSegmentStart over a rune line.
//
// The walk skips SegmentCount-1 forward slices from index 0. A slice that makes
// no progress (a wide character wider than width) ends the walk early.
func (m Measure) LastSegmentStart(line []rune, width int) int {
	n := m.SegmentCount(line, width)
	if n <= 1 {
		return 0
	}

	idx := 0
	for seg := 0; seg < n-1; seg++ {
		next := m.Slice(line, idx, width).End
		if next <= idx {
			break
		}
		idx = next
	}
	return idx
}

// SegmentStartAtOrBefore returns the start of the segment containing rune
// index offset, walking forward slices from 0. An offset past the end of the
// line maps to the start of the last segment.
func (m Measure) SegmentStartAtOrBefore(line []rune, offset, width int) int {
	if width <= 0 || offset <= 0 || len(line) == 0 {
		return 0
	}

	idx := 0
	for {
		next := m.Slice(line, idx, width).End
		if next <= idx || next > offset || next >= len(line) {
			return idx
		}
		idx = next
	}
}
