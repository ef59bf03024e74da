// Package key provides the key event value types for the input system.
//
//   - Key: identifies a keyboard key (editing, navigation, function
//     keys, or a raw character byte)
//   - Modifier: modifier keys (Ctrl, Alt, Shift) as a bitmask
//   - Event: a single key press with its modifiers
//
// The key model is deliberately single-byte: terminal input arrives as
// bytes and character keys carry the raw byte unchanged. Anything the
// decoder cannot classify becomes KeyUnknown rather than an error.
package key
