// Package statusbar provides a Bubble Tea component that shows a reading
// session as a single status row: the current page on the left and the line
// progress on the right.
//
// The component turns pages on key presses and, when configured, on a timer.
// Every page turn goes through reader.Session, which persists the cursor.
package statusbar
