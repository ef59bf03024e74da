// Package keymap maps decoded key chords to action identifiers.
package keymap

import "github.com/scribeterm/scribe/internal/input/key"

// Binding pairs a key chord pattern with an opaque action identifier.
type Binding struct {
	Pattern key.Event
	Action  string
}

// Keymap is an ordered collection of bindings. Lookup is a linear
// first-match scan, so registration order is a priority order:
// earlier bindings shadow later ones with the same pattern. Binding
// sets are small and static per session; O(bindings) lookup is fine.
//
// A Keymap is owned and mutated by a single UI event loop; no
// concurrent access is contracted.
type Keymap struct {
	bindings []Binding
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{}
}

// Bind appends a binding. Duplicate patterns are accepted; the first
// registered continues to win on lookup.
func (k *Keymap) Bind(pattern key.Event, action string) {
	k.bindings = append(k.bindings, Binding{Pattern: pattern, Action: action})
}

// BindChar registers a chord for a character key.
func (k *Keymap) BindChar(ch byte, mod key.Modifier, action string) {
	k.Bind(key.NewChar(ch, mod), action)
}

// BindKey registers a chord for a special key.
func (k *Keymap) BindKey(kk key.Key, mod key.Modifier, action string) {
	k.Bind(key.NewSpecial(kk, mod), action)
}

// FindAction returns the action of the first binding matching the
// event, or false if none matches. A pattern matches when the key tag
// is equal, the character byte is equal for character keys, and all
// modifier flags are equal: an event with extra or missing modifiers
// never matches.
func (k *Keymap) FindAction(ev key.Event) (string, bool) {
	for _, b := range k.bindings {
		if matches(b.Pattern, ev) {
			return b.Action, true
		}
	}
	return "", false
}

// Len returns the number of registered bindings.
func (k *Keymap) Len() int {
	return len(k.bindings)
}

// Bindings returns the registered bindings in priority order.
func (k *Keymap) Bindings() []Binding {
	return k.bindings
}

func matches(pattern, ev key.Event) bool {
	if pattern.Key != ev.Key {
		return false
	}
	if pattern.Key == key.KeyChar && pattern.Ch != ev.Ch {
		return false
	}
	return pattern.Mod == ev.Mod
}
