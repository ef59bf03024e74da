package keymap

import (
	"testing"

	"github.com/scribeterm/scribe/internal/input/key"
)

func TestFindAction(t *testing.T) {
	k := New()
	k.BindChar('s', key.ModCtrl, "editor.save")
	k.BindKey(key.KeyF1, key.ModNone, "help.toggle")
	k.BindChar('q', key.ModNone, "app.quit")

	tests := []struct {
		name   string
		ev     key.Event
		want   string
		wantOK bool
	}{
		{"ctrl-s", key.NewChar('s', key.ModCtrl), "editor.save", true},
		{"f1", key.NewSpecial(key.KeyF1, key.ModNone), "help.toggle", true},
		{"plain q", key.NewChar('q', key.ModNone), "app.quit", true},
		{"unbound key", key.NewSpecial(key.KeyF2, key.ModNone), "", false},
		{"unbound char", key.NewChar('z', key.ModNone), "", false},
	}

	for _, tt := range tests {
		got, ok := k.FindAction(tt.ev)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("%s: FindAction = (%q, %v), want (%q, %v)",
				tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFindActionModifiersMustMatchExactly(t *testing.T) {
	k := New()
	k.BindChar('s', key.ModCtrl, "editor.save")
	k.BindKey(key.KeyDelete, key.ModNone, "editor.deleteChar")

	// Extra or missing modifiers never match.
	if _, ok := k.FindAction(key.NewChar('s', key.ModNone)); ok {
		t.Error("plain s should not match Ctrl+s binding")
	}
	if _, ok := k.FindAction(key.NewChar('s', key.ModCtrl|key.ModShift)); ok {
		t.Error("Ctrl+Shift+s should not match Ctrl+s binding")
	}
	if _, ok := k.FindAction(key.NewSpecial(key.KeyDelete, key.ModAlt)); ok {
		t.Error("Alt+Delete should not match plain Delete binding")
	}
}

func TestFindActionCharByteMustMatch(t *testing.T) {
	k := New()
	k.BindChar('a', key.ModCtrl, "agent.prompt")

	if _, ok := k.FindAction(key.NewChar('b', key.ModCtrl)); ok {
		t.Error("Ctrl+b should not match Ctrl+a binding")
	}
}

func TestFindActionFirstRegisteredWins(t *testing.T) {
	k := New()
	k.BindChar('x', key.ModNone, "first")
	k.BindChar('x', key.ModNone, "second")

	got, ok := k.FindAction(key.NewChar('x', key.ModNone))
	if !ok || got != "first" {
		t.Errorf("FindAction = (%q, %v), want the first-registered action", got, ok)
	}
	if k.Len() != 2 {
		t.Errorf("Len = %d, want 2: duplicates are kept, not rejected", k.Len())
	}
}

func TestDefaultKeymap(t *testing.T) {
	k := Default()
	if k.Len() == 0 {
		t.Fatal("default keymap should not be empty")
	}

	tests := []struct {
		ev   key.Event
		want string
	}{
		{key.NewChar('c', key.ModCtrl), "app.quit"},
		{key.NewSpecial(key.KeyF1, key.ModNone), "help.toggle"},
		{key.NewSpecial(key.KeyUp, key.ModNone), "cursor.up"},
		{key.NewChar('2', key.ModAlt), "focus.editor"},
	}

	for _, tt := range tests {
		got, ok := k.FindAction(tt.ev)
		if !ok || got != tt.want {
			t.Errorf("FindAction(%v) = (%q, %v), want %q", tt.ev, got, ok, tt.want)
		}
	}
}
