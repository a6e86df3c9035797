package statusbar

import "time"

// Config configures the status bar Model.
type Config struct {
	Style  Style
	KeyMap KeyMap

	// AutoAdvance turns a page every interval while reading. 0 disables.
	AutoAdvance time.Duration
	// AutoStop pauses reading after this long without a page turn, manual or
	// automatic. 0 disables.
	AutoStop time.Duration

	// Ellipsis marks page text cut to fit the terminal. Default "…".
	Ellipsis string
}
