package display

// Slice is the result of a forward cut: Text holds the consumed characters and
// End is the rune index of the first unconsumed character.
type Slice struct {
	Text string
	End  int
}

// Empty reports whether the cut consumed nothing.
func (s Slice) Empty() bool { return s.Text == "" }

// SliceByWidth returns the longest run of s starting at rune index start whose
// width does not exceed maxWidth.
//
// A character that would overflow the budget is never taken, even when some
// budget remains. When nothing fits, Text is empty and End == start; callers
// looping over slices must treat that as zero progress.
func SliceByWidth(s string, start, maxWidth int) Slice {
	return Block.Slice([]rune(s), start, maxWidth)
}

// PrevIndexByWidth walks left from rune index current until at least maxWidth
// has been stepped over or index 0 is reached, and returns the new index.
//
// Unlike SliceByWidth it may overshoot the budget by one character, so a
// forward slice from the result always reaches back to current.
func PrevIndexByWidth(s string, current, maxWidth int) int {
	return Block.PrevIndex([]rune(s), current, maxWidth)
}

// Slice is SliceByWidth over a rune line.
func (m Measure) Slice(line []rune, start, maxWidth int) Slice {
	if start < 0 {
		start = 0
	}
	if start >= len(line) {
		return Slice{End: start}
	}

	used := 0
	i := start
	for i < len(line) && used < maxWidth {
		w := m.RuneWidth(line[i])
		if used+w > maxWidth {
			break
		}
		used += w
		i++
	}
	return Slice{Text: string(line[start:i]), End: i}
}

// PrevIndex is PrevIndexByWidth over a rune line.
func (m Measure) PrevIndex(line []rune, current, maxWidth int) int {
	i := clampInt(current, 0, len(line))
	used := 0
	for i > 0 && used < maxWidth {
		i--
		used += m.RuneWidth(line[i])
	}
	return i
}
