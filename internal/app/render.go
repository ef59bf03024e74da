package app

import (
	"fmt"
	"strings"

	"github.com/scribeterm/scribe/internal/layout"
	"github.com/scribeterm/scribe/internal/term"
)

var focusNames = map[Focus]string{
	FocusBrowser: "browser",
	FocusEditor:  "editor",
	FocusPreview: "preview",
}

// render draws the current frame. Output is built in one string and
// written once so partial frames never reach the terminal.
func (a *App) render() {
	if a.width == 0 || a.height == 0 {
		return
	}
	panes := a.Layout()

	var frame strings.Builder
	frame.WriteString(term.ClearScreen)

	a.drawPane(&frame, panes.Browser, "files")
	a.drawPane(&frame, panes.Editor, "edit")
	a.drawPane(&frame, panes.Preview, "preview")
	a.drawStatus(&frame, panes.Status)

	if a.help {
		a.drawHelp(&frame)
	}

	fmt.Fprint(a.terminal.Output(), frame.String())
}

// drawPane writes a pane title in its top-left corner. Hidden panes
// have no area and draw nothing.
func (a *App) drawPane(frame *strings.Builder, r layout.Rect, title string) {
	if r.IsEmpty() {
		return
	}
	style := a.theme.DimStyle()
	frame.WriteString(term.MoveTo(r.X, r.Y))
	frame.WriteString(style.Render(clip(title, r.Width)))
}

// drawStatus fills the bottom row with the status bar.
func (a *App) drawStatus(frame *strings.Builder, r layout.Rect) {
	if r.IsEmpty() {
		return
	}
	text := fmt.Sprintf(" scribe | %s | %dx%d ", focusNames[a.focus], a.width, a.height)
	if len(text) < int(r.Width) {
		text += strings.Repeat(" ", int(r.Width)-len(text))
	}
	frame.WriteString(term.MoveTo(r.X, r.Y))
	frame.WriteString(a.theme.StatusStyle().Render(clip(text, r.Width)))
}

// drawHelp paints the help overlay box with the active bindings.
func (a *App) drawHelp(frame *strings.Builder) {
	box := layout.HelpOverlay(layout.NewRect(0, 0, a.width, a.height))
	if box.IsEmpty() {
		return
	}
	style := a.theme.StatusStyle()

	blank := strings.Repeat(" ", int(box.Width))
	for row := uint16(0); row < box.Height; row++ {
		frame.WriteString(term.MoveTo(box.X, box.Y+row))
		frame.WriteString(style.Render(blank))
	}

	row := box.Y
	frame.WriteString(term.MoveTo(box.X, row))
	frame.WriteString(style.Render(clip(" keys ", box.Width)))
	for _, b := range a.keys.Bindings() {
		row++
		if row >= box.Bottom() {
			break
		}
		line := fmt.Sprintf(" %-14s %s", b.Pattern, b.Action)
		frame.WriteString(term.MoveTo(box.X, row))
		frame.WriteString(style.Render(clip(line, box.Width)))
	}
}

func clip(s string, width uint16) string {
	if len(s) > int(width) {
		return s[:width]
	}
	return s
}
