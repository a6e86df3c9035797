// Package display measures and cuts text by display width for fixed-width,
// single-row viewports.
//
// Narrow characters (Latin, digits) count 1 and wide characters (CJK,
// full-width punctuation, kana, hangul) count 2. Indices are 0-based rune
// indices into a line; a wide character is never split across a boundary.
package display
