// Package input decodes a raw terminal byte stream into structured
// events.
//
// The decoder is a per-call state machine over the escape-sequence
// grammar (ground, ESC, CSI, SS3): each ReadEvent call consumes bytes
// and returns exactly one event, never a partial one. Decoding is
// best-effort and total: malformed or truncated sequences degrade to
// the most specific event derivable (a lone ESC is the Escape key,
// an unmapped sequence is KeyUnknown), and end of stream is the None
// event, never an error.
//
// Subpackages hold the value types (key, mouse) and the key binding
// table (keymap).
package input
