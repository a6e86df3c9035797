// Package page pages a line corpus through a single-row, fixed-width viewport.
//
// A Cursor is (Line, Offset): the logical line index and the rune offset inside
// that line where the next page begins. Pager operations take a cursor value
// and return a new one; they never hold or mutate cursor state themselves.
package page
