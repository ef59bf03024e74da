package keymap

import "github.com/scribeterm/scribe/internal/input/key"

// Default returns the stock bindings for the editor shell. Only
// chords the decoder can produce are registered here; user config can
// prepend its own bindings before these by building its keymap first.
func Default() *Keymap {
	k := New()

	// Application
	k.BindChar('c', key.ModCtrl, "app.quit")
	k.BindKey(key.KeyF1, key.ModNone, "help.toggle")
	k.BindKey(key.KeyEscape, key.ModNone, "overlay.close")

	// Panes
	k.BindChar('b', key.ModCtrl, "browser.toggle")
	k.BindChar('d', key.ModCtrl, "preview.toggle")
	k.BindKey(key.KeyTab, key.ModNone, "focus.next")
	k.BindChar('1', key.ModAlt, "focus.browser")
	k.BindChar('2', key.ModAlt, "focus.editor")
	k.BindChar('3', key.ModAlt, "focus.preview")

	// Agent
	k.BindChar('a', key.ModCtrl, "agent.prompt")

	// Navigation
	k.BindKey(key.KeyUp, key.ModNone, "cursor.up")
	k.BindKey(key.KeyDown, key.ModNone, "cursor.down")
	k.BindKey(key.KeyLeft, key.ModNone, "cursor.left")
	k.BindKey(key.KeyRight, key.ModNone, "cursor.right")
	k.BindKey(key.KeyHome, key.ModNone, "cursor.lineStart")
	k.BindKey(key.KeyEnd, key.ModNone, "cursor.lineEnd")
	k.BindKey(key.KeyPageUp, key.ModNone, "view.pageUp")
	k.BindKey(key.KeyPageDown, key.ModNone, "view.pageDown")

	return k
}
