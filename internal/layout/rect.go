package layout

import "fmt"

// Rect is an axis-aligned rectangle in terminal cell coordinates.
// Coordinates are unsigned; arithmetic that would go negative saturates
// to zero instead. A rect with zero width or height is a valid "hidden"
// rect, not an error.
type Rect struct {
	X      uint16
	Y      uint16
	Width  uint16
	Height uint16
}

// NewRect creates a rect from position and size.
func NewRect(x, y, width, height uint16) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the exclusive right edge.
func (r Rect) Right() uint16 {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() uint16 {
	return r.Y + r.Height
}

// Area returns the number of cells covered by the rect.
func (r Rect) Area() uint32 {
	return uint32(r.Width) * uint32(r.Height)
}

// IsEmpty returns true if the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Contains returns true if the cell at (x, y) is inside the rect.
func (r Rect) Contains(x, y uint16) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inner returns the rect shrunk by pad cells on every side.
// Width and height saturate at zero when the padding is larger than
// the rect.
func (r Rect) Inner(pad uint16) Rect {
	return Rect{
		X:      r.X + pad,
		Y:      r.Y + pad,
		Width:  satSub(r.Width, 2*pad),
		Height: satSub(r.Height, 2*pad),
	}
}

// Intersection returns the overlapping region of two rects, or a
// zero-area rect when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x := maxU16(r.X, other.X)
	y := maxU16(r.Y, other.Y)
	right := minU16(r.Right(), other.Right())
	bottom := minU16(r.Bottom(), other.Bottom())
	return Rect{
		X:      x,
		Y:      y,
		Width:  satSub(right, x),
		Height: satSub(bottom, y),
	}
}

// Equals returns true if two rects are identical.
func (r Rect) Equals(other Rect) bool {
	return r == other
}

// String returns a compact representation like "10,2 80x24".
func (r Rect) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}

// satSub subtracts b from a, saturating at zero.
func satSub(a, b uint16) uint16 {
	if b >= a {
		return 0
	}
	return a - b
}

func minU16(a, b uint16) uint16 {
	if a < b {
		return a
	}
	return b
}

func maxU16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}
