package layout

import "fmt"

// Direction selects which axis a split distributes.
// Horizontal stacks rects top to bottom (distributes height);
// Vertical places rects side by side (distributes width).
type Direction uint8

const (
	// Horizontal splits distribute the area's height.
	Horizontal Direction = iota
	// Vertical splits distribute the area's width.
	Vertical
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// ConstraintKind identifies the sizing rule a Constraint applies.
type ConstraintKind uint8

const (
	// KindLength requests a fixed number of cells.
	KindLength ConstraintKind = iota
	// KindPercentage requests a percentage (0-100) of the total.
	KindPercentage
	// KindMin requests a floor, resolved against the flexible share.
	KindMin
	// KindMax requests a ceiling, resolved against the flexible share.
	KindMax
	// KindRatio requests a fraction (0.0-1.0) of the remaining space.
	KindRatio
)

// String returns a string representation of the constraint kind.
func (k ConstraintKind) String() string {
	switch k {
	case KindLength:
		return "length"
	case KindPercentage:
		return "percentage"
	case KindMin:
		return "min"
	case KindMax:
		return "max"
	case KindRatio:
		return "ratio"
	default:
		return fmt.Sprintf("ConstraintKind(%d)", k)
	}
}

// Constraint is a declarative sizing rule for one produced rect of a
// split. Exactly one constraint corresponds to each output rect.
type Constraint struct {
	Kind  ConstraintKind
	Cells uint16  // Length, Min, Max
	Pct   uint16  // Percentage, 0-100
	Frac  float64 // Ratio, 0.0-1.0
}

// Length requests exactly n cells (clamped to the available total).
func Length(n uint16) Constraint {
	return Constraint{Kind: KindLength, Cells: n}
}

// Percentage requests pct percent of the total, rounded down.
func Percentage(pct uint16) Constraint {
	return Constraint{Kind: KindPercentage, Pct: pct}
}

// Min requests at least n cells, resolved against the flexible share.
func Min(n uint16) Constraint {
	return Constraint{Kind: KindMin, Cells: n}
}

// Max requests at most n cells, resolved against the flexible share.
func Max(n uint16) Constraint {
	return Constraint{Kind: KindMax, Cells: n}
}

// Ratio requests frac of the space left after fixed constraints.
func Ratio(frac float64) Constraint {
	return Constraint{Kind: KindRatio, Frac: frac}
}

// IsFlexible returns true if the constraint is resolved in the second
// pass of the solver against the remaining space.
func (c Constraint) IsFlexible() bool {
	return c.Kind == KindMin || c.Kind == KindMax || c.Kind == KindRatio
}

// String returns a string representation of the constraint.
func (c Constraint) String() string {
	switch c.Kind {
	case KindLength:
		return fmt.Sprintf("length(%d)", c.Cells)
	case KindPercentage:
		return fmt.Sprintf("percentage(%d)", c.Pct)
	case KindMin:
		return fmt.Sprintf("min(%d)", c.Cells)
	case KindMax:
		return fmt.Sprintf("max(%d)", c.Cells)
	case KindRatio:
		return fmt.Sprintf("ratio(%g)", c.Frac)
	default:
		return c.Kind.String()
	}
}
