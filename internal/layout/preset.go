package layout

import "fmt"

// Breakpoint classifies a terminal width into a named size class.
type Breakpoint uint8

const (
	// BreakpointSmall is a terminal narrower than 80 columns.
	BreakpointSmall Breakpoint = iota
	// BreakpointMedium is a terminal 80 to 120 columns wide, inclusive.
	BreakpointMedium
	// BreakpointLarge is a terminal wider than 120 columns.
	BreakpointLarge
)

// FromWidth classifies a terminal width: <80 small, 80-120 inclusive
// medium, >120 large.
func FromWidth(width uint16) Breakpoint {
	switch {
	case width < 80:
		return BreakpointSmall
	case width <= 120:
		return BreakpointMedium
	default:
		return BreakpointLarge
	}
}

// String returns a string representation of the breakpoint.
func (b Breakpoint) String() string {
	switch b {
	case BreakpointSmall:
		return "small"
	case BreakpointMedium:
		return "medium"
	case BreakpointLarge:
		return "large"
	default:
		return fmt.Sprintf("Breakpoint(%d)", b)
	}
}

// EditorPanes holds the rects of the editor's main panes. Panes that
// the current terminal width cannot fit are returned as zero-area
// rects, never omitted; callers must check IsEmpty before rendering.
type EditorPanes struct {
	Browser Rect
	Editor  Rect
	Preview Rect
	Status  Rect
}

// EditorLayout computes the standard pane layout for the given
// viewport: the bottom row is reserved for the status bar, and the
// remaining area holds up to three columns depending on width.
func EditorLayout(area Rect) EditorPanes {
	if area.Height == 0 {
		hidden := Rect{X: area.X, Y: area.Y}
		return EditorPanes{Browser: hidden, Editor: hidden, Preview: hidden, Status: hidden}
	}

	// Reserve the bottom row (the 1-1/height share goes to content).
	// Computed directly: pushing a height-dependent ratio through the
	// solver's float math can lose the row at certain heights.
	content := Rect{X: area.X, Y: area.Y, Width: area.Width, Height: area.Height - 1}
	status := Rect{X: area.X, Y: area.Y + area.Height - 1, Width: area.Width, Height: 1}

	panes := EditorPanes{Status: status}
	switch {
	case content.Width >= 120:
		cols := Split(content, Vertical, []Constraint{
			Percentage(20),
			Percentage(40),
			Percentage(40),
		})
		panes.Browser = cols[0]
		panes.Editor = cols[1]
		panes.Preview = cols[2]
	case content.Width >= 80:
		cols := Split(content, Vertical, []Constraint{
			Percentage(50),
			Percentage(50),
		})
		panes.Browser = Rect{X: content.X, Y: content.Y, Width: 0, Height: content.Height}
		panes.Editor = cols[0]
		panes.Preview = cols[1]
	default:
		panes.Browser = Rect{X: content.X, Y: content.Y, Width: 0, Height: content.Height}
		panes.Editor = content
		panes.Preview = Rect{X: content.Right(), Y: content.Y, Width: 0, Height: content.Height}
	}
	return panes
}

// ModalOverlay centers a width x height box within area, clamping the
// box to area's extent when the request is larger than the viewport.
func ModalOverlay(area Rect, width, height uint16) Rect {
	width = minU16(width, area.Width)
	height = minU16(height, area.Height)
	return Rect{
		X:      area.X + (area.Width-width)/2,
		Y:      area.Y + (area.Height-height)/2,
		Width:  width,
		Height: height,
	}
}

// HelpOverlay insets area by min(width/8, height/8) on each side. The
// margin is clamped so it never exceeds half of either dimension.
func HelpOverlay(area Rect) Rect {
	margin := minU16(area.Width/8, area.Height/8)
	margin = minU16(margin, area.Width/2)
	margin = minU16(margin, area.Height/2)
	return Rect{
		X:      area.X + margin,
		Y:      area.Y + margin,
		Width:  satSub(area.Width, 2*margin),
		Height: satSub(area.Height, 2*margin),
	}
}
