// Package theme defines the editor's color palette and text styles.
// Styles render to the exact SGR byte sequences the terminal
// contract requires; color math goes through go-colorful so derived
// shades stay perceptually even.
package theme

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/scribeterm/scribe/internal/term"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// FromHex parses a "#rrggbb" color string.
func FromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

func mustHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Lighten blends the color toward white in Lab space.
func (c Color) Lighten(amount float64) Color {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return fromColorful(c.toColorful().BlendLab(white, amount))
}

// Darken blends the color toward black in Lab space.
func (c Color) Darken(amount float64) Color {
	black := colorful.Color{}
	return fromColorful(c.toColorful().BlendLab(black, amount))
}

// Hex returns the "#rrggbb" form of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Style is a renderable text style.
type Style struct {
	Fg     Color
	Bg     Color
	HasBg  bool
	Bold   bool
	Invert bool
}

// NewStyle creates a style with the given foreground.
func NewStyle(fg Color) Style {
	return Style{Fg: fg}
}

// WithBg returns the style with a background color set.
func (s Style) WithBg(bg Color) Style {
	s.Bg = bg
	s.HasBg = true
	return s
}

// WithBold returns the style with bold enabled.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}

// Render wraps text in the style's SGR sequences, ending with a
// reset so styles never leak into following output.
func (s Style) Render(text string) string {
	out := ""
	if s.Bold {
		out += "\x1b[1m"
	}
	if s.Invert {
		out += "\x1b[7m"
	}
	fg, bg := s.Fg, s.Bg
	out += term.Foreground(fg.R, fg.G, fg.B)
	if s.HasBg {
		out += term.Background(bg.R, bg.G, bg.B)
	}
	return out + text + term.Reset
}

// Theme is the editor's palette.
type Theme struct {
	Name string

	Background Color
	Foreground Color
	Accent     Color
	Border     Color
	Dim        Color

	StatusFg Color
	StatusBg Color
}

// Default returns the stock dark theme.
func Default() *Theme {
	accent := mustHex("#7aa2f7")
	fg := mustHex("#c0caf5")
	bg := mustHex("#1a1b26")
	return &Theme{
		Name:       "default-dark",
		Background: bg,
		Foreground: fg,
		Accent:     accent,
		Border:     fg.Darken(0.5),
		Dim:        fg.Darken(0.35),
		StatusFg:   bg,
		StatusBg:   accent,
	}
}

// StatusStyle returns the status bar style.
func (t *Theme) StatusStyle() Style {
	return NewStyle(t.StatusFg).WithBg(t.StatusBg)
}

// BorderStyle returns the pane border style.
func (t *Theme) BorderStyle() Style {
	return NewStyle(t.Border)
}

// DimStyle returns the style for secondary text.
func (t *Theme) DimStyle() Style {
	return NewStyle(t.Dim)
}
