package util

// Terminal control sequences
const (
	ClearScreen       = "\033[2J"   // Clear entire screen
	ClearToEnd        = "\033[J"    // Clear from cursor to end of screen
	ClearScrollback   = "\033[3J"   // Clear scrollback buffer
	ResetScrollRegion = "\033[r"    // Reset scroll region
	MoveCursorHome    = "\033[H"    // Move cursor to home position
	HideCursor        = "\033[?25l" // Hide cursor
	ShowCursor        = "\033[?25h" // Show cursor
	EnterAltScreen    = "\033[?1049h"
	ExitAltScreen     = "\033[?1049l"
)
