package term

import "fmt"

// ANSI control strings written verbatim. The SGR color forms must be
// reproduced byte-for-byte for terminal compatibility.
const (
	Reset       = "\x1b[0m"
	ClearScreen = "\x1b[2J"
	ClearLine   = "\x1b[2K"
	HideCursor  = "\x1b[?25l"
	ShowCursor  = "\x1b[?25h"

	EnterAltScreen = "\x1b[?1049h"
	ExitAltScreen  = "\x1b[?1049l"

	EnablePaste  = "\x1b[?2004h"
	DisablePaste = "\x1b[?2004l"

	// SGR mouse reporting, matching the decoder's CSI < grammar.
	EnableMouse  = "\x1b[?1000;1006h"
	DisableMouse = "\x1b[?1000;1006l"
)

// Foreground returns the 24-bit SGR foreground sequence.
func Foreground(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// Background returns the 24-bit SGR background sequence.
func Background(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
}

// MoveTo returns the cursor addressing sequence for a 0-based cell
// position.
func MoveTo(x, y uint16) string {
	return fmt.Sprintf("\x1b[%d;%dH", y+1, x+1)
}
