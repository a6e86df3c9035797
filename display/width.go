package display

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

type wideRange struct {
	lo, hi rune
}

var wideRanges = [...]wideRange{
	{0x4e00, 0x9fff}, // CJK unified ideographs
	{0x3400, 0x4dbf}, // CJK extension A
	{0x3000, 0x303f}, // CJK symbols and punctuation
	{0xff00, 0xffef}, // half-width and full-width forms
	{0x3040, 0x309f}, // hiragana
	{0x30a0, 0x30ff}, // katakana
	{0xac00, 0xd7af}, // hangul syllables
	{0x2e80, 0x2eff}, // CJK radicals supplement
	{0x2f00, 0x2fdf}, // kangxi radicals
}

// CharWidth returns the display width of r: 2 for wide characters, 1 otherwise.
func CharWidth(r rune) int {
	for _, wr := range wideRanges {
		if r >= wr.lo && r <= wr.hi {
			return 2
		}
	}
	return 1
}

// StringWidth returns the display width of s.
func StringWidth(s string) int {
	return Block.StringWidth(s)
}

// Measure maps a single character to its display width.
//
// A nil Measure behaves like Block.
type Measure func(r rune) int

var (
	// Block classifies characters by Unicode block ranges only.
	Block Measure = CharWidth

	// Terminal asks the terminal width tables (East Asian Width, emoji) and
	// clamps the result to 1 or 2 so every character makes progress.
	Terminal Measure = terminalWidth
)

func terminalWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		w = uniseg.StringWidth(string(r))
	}
	return clampInt(w, 1, 2)
}

// RuneWidth returns the width of r under m.
func (m Measure) RuneWidth(r rune) int {
	if m == nil {
		return CharWidth(r)
	}
	return m(r)
}

// StringWidth sums RuneWidth over every rune of s.
func (m Measure) StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += m.RuneWidth(r)
	}
	return w
}

// LineWidth sums RuneWidth over line.
func (m Measure) LineWidth(line []rune) int {
	w := 0
	for _, r := range line {
		w += m.RuneWidth(r)
	}
	return w
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
