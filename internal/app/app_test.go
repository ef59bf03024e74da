package app

import (
	"testing"

	"github.com/scribeterm/scribe/internal/input"
	"github.com/scribeterm/scribe/internal/input/keymap"
	"github.com/scribeterm/scribe/internal/theme"
)

func testApp() *App {
	return &App{
		logger: NullLogger,
		theme:  theme.Default(),
		keys:   keymap.Default(),
		width:  100,
		height: 30,
		focus:  FocusEditor,
	}
}

func TestApplyQuit(t *testing.T) {
	a := testApp()
	a.apply("app.quit")
	if !a.quit {
		t.Error("app.quit should set the quit flag")
	}
}

func TestApplyHelpToggle(t *testing.T) {
	a := testApp()
	a.apply("help.toggle")
	if !a.help {
		t.Error("first toggle should open help")
	}
	a.apply("help.toggle")
	if a.help {
		t.Error("second toggle should close help")
	}

	a.apply("help.toggle")
	a.apply("overlay.close")
	if a.help {
		t.Error("overlay.close should close help")
	}
}

func TestApplyFocus(t *testing.T) {
	a := testApp()

	a.apply("focus.browser")
	if a.focus != FocusBrowser {
		t.Errorf("focus = %v, want browser", a.focus)
	}

	a.apply("focus.next")
	if a.focus != FocusEditor {
		t.Errorf("focus = %v, want editor after next", a.focus)
	}
	a.apply("focus.next")
	a.apply("focus.next")
	if a.focus != FocusBrowser {
		t.Errorf("focus = %v, want wrap back to browser", a.focus)
	}
}

func TestApplyPaneToggles(t *testing.T) {
	a := testApp()

	a.apply("browser.toggle")
	if a.focus != FocusBrowser {
		t.Errorf("focus = %v, want browser", a.focus)
	}
	a.apply("browser.toggle")
	if a.focus != FocusEditor {
		t.Errorf("focus = %v, want editor after second toggle", a.focus)
	}

	a.apply("preview.toggle")
	if a.focus != FocusPreview {
		t.Errorf("focus = %v, want preview", a.focus)
	}
}

func TestApplyUnknownActionIsIgnored(t *testing.T) {
	a := testApp()
	a.apply("no.such.action")
	if a.quit || a.help {
		t.Error("unknown action should not change state")
	}
}

func TestHandleResize(t *testing.T) {
	a := testApp()
	a.handle(input.ResizeEvent(150, 40))
	if a.width != 150 || a.height != 40 {
		t.Errorf("size = %dx%d, want 150x40", a.width, a.height)
	}

	panes := a.Layout()
	if panes.Browser.IsEmpty() {
		t.Error("browser pane should be visible at width 150")
	}
}

func TestHandleNoneIsNoop(t *testing.T) {
	a := testApp()
	a.handle(input.None())
	if a.quit || a.help || a.focus != FocusEditor || a.width != 100 || a.height != 30 {
		t.Error("none event should not change state")
	}
}
