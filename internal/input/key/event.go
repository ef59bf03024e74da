package key

import "fmt"

// Event is a single decoded key press. Ch is meaningful only when Key
// is KeyChar. Events are plain values: created fresh per decode call,
// compared by equality, never shared.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Ch is the raw character byte for KeyChar events.
	Ch byte

	// Mod contains the active modifier keys.
	Mod Modifier
}

// NewChar creates an event for a character key.
func NewChar(ch byte, mod Modifier) Event {
	return Event{Key: KeyChar, Ch: ch, Mod: mod}
}

// NewSpecial creates an event for a non-character key.
func NewSpecial(k Key, mod Modifier) Event {
	return Event{Key: k, Mod: mod}
}

// IsChar returns true if this is a character key event.
func (e Event) IsChar() bool {
	return e.Key == KeyChar
}

// Equals returns true if two events represent the same key press:
// same key tag, same character byte, same modifier set.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key && e.Ch == other.Ch && e.Mod == other.Mod
}

// String returns a canonical representation like "Ctrl+s" or "F5".
func (e Event) String() string {
	name := e.Key.String()
	if e.Key == KeyChar {
		name = string(rune(e.Ch))
	}
	if mods := e.Mod.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("key.Event{Key: %s, Ch: %q, Mod: %s}", e.Key, e.Ch, e.Mod)
}
