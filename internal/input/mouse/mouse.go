// Package mouse provides the mouse event value type for the input
// system.
package mouse

import "fmt"

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button (motion or release reports).
	ButtonNone Button = iota
	// ButtonLeft is the primary mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the secondary mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Event is a single decoded mouse report in cell coordinates.
type Event struct {
	Button  Button
	X       uint16
	Y       uint16
	Pressed bool
}

// String returns a representation like "left press 12,4".
func (e Event) String() string {
	state := "release"
	if e.Pressed {
		state = "press"
	}
	return fmt.Sprintf("%s %s %d,%d", e.Button, state, e.X, e.Y)
}
