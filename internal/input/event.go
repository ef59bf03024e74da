package input

import (
	"fmt"

	"github.com/scribeterm/scribe/internal/input/key"
	"github.com/scribeterm/scribe/internal/input/mouse"
)

// Kind tags the variant held by an Event.
type Kind uint8

const (
	// KindNone means no event was decoded this call. It is a normal
	// outcome (end of stream, failed poll), not an error.
	KindNone Kind = iota
	// KindKey is a keyboard event; see Event.Key.
	KindKey
	// KindMouse is a mouse event; see Event.Mouse.
	KindMouse
	// KindResize is a terminal resize; see Event.Width and Event.Height.
	KindResize
	// KindPaste is a bracketed paste; see Event.Paste.
	KindPaste
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindKey:
		return "key"
	case KindMouse:
		return "mouse"
	case KindResize:
		return "resize"
	case KindPaste:
		return "paste"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Event is one decoded input event. Only the field selected by Kind is
// meaningful. Events are plain values owned by the caller; the decoder
// holds no reference to them after returning.
type Event struct {
	Kind  Kind
	Key   key.Event
	Mouse mouse.Event

	// Width and Height are the new terminal size for KindResize.
	Width  uint16
	Height uint16

	// Paste holds the raw pasted bytes for KindPaste. No UTF-8
	// reassembly is performed.
	Paste []byte
}

// None returns the "no event" value.
func None() Event {
	return Event{Kind: KindNone}
}

// KeyEvent wraps a key event.
func KeyEvent(ev key.Event) Event {
	return Event{Kind: KindKey, Key: ev}
}

// MouseEvent wraps a mouse event.
func MouseEvent(ev mouse.Event) Event {
	return Event{Kind: KindMouse, Mouse: ev}
}

// ResizeEvent reports a new terminal size.
func ResizeEvent(width, height uint16) Event {
	return Event{Kind: KindResize, Width: width, Height: height}
}

// PasteEvent wraps pasted bytes.
func PasteEvent(data []byte) Event {
	return Event{Kind: KindPaste, Paste: data}
}

// IsNone returns true if no event was decoded.
func (e Event) IsNone() bool {
	return e.Kind == KindNone
}
