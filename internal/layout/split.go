// Package layout partitions a terminal viewport into pane rects from
// declarative size constraints. The solver is a deterministic two-pass
// distribution, not a full constraint system: fixed sizes resolve
// first, then flexible constraints share what is left.
package layout

// Split divides area into exactly len(constraints) rects, positioned
// contiguously along the split axis in constraint order. Each output
// rect spans area's full extent on the cross axis.
//
// Flexible space is divided with integer math; a remainder from uneven
// division is dropped, so the produced rects can undershoot the area
// by up to flexibleCount-1 cells. Min and Max constraints are resolved
// independently against the shared flexible share and are not
// reconciled with each other, which can overshoot the total. Both are
// accepted behavior, not errors.
func Split(area Rect, dir Direction, constraints []Constraint) []Rect {
	if len(constraints) == 0 {
		return nil
	}
	// A single constraint always yields the whole area.
	if len(constraints) == 1 {
		return []Rect{area}
	}

	total := area.Width
	if dir == Horizontal {
		total = area.Height
	}

	sizes := make([]uint16, len(constraints))
	flexible := 0

	// Pass 1: fixed sizes; flexible constraints are deferred.
	var used uint32
	for i, c := range constraints {
		switch c.Kind {
		case KindLength:
			sizes[i] = minU16(c.Cells, total)
		case KindPercentage:
			sizes[i] = uint16(uint32(total) * uint32(c.Pct) / 100)
		default:
			flexible++
		}
		used += uint32(sizes[i])
	}

	var remaining uint16
	if used < uint32(total) {
		remaining = total - uint16(used)
	}

	var share uint16
	if flexible > 0 {
		share = remaining / uint16(flexible)
	}

	// Pass 2: resolve flexible constraints against the shared share.
	for i, c := range constraints {
		switch c.Kind {
		case KindMin:
			sizes[i] = maxU16(c.Cells, share)
		case KindMax:
			sizes[i] = minU16(c.Cells, share)
		case KindRatio:
			sizes[i] = uint16(float64(remaining) * c.Frac)
		}
	}

	rects := make([]Rect, len(constraints))
	offset := uint16(0)
	for i, size := range sizes {
		if dir == Horizontal {
			rects[i] = Rect{
				X:      area.X,
				Y:      area.Y + offset,
				Width:  area.Width,
				Height: size,
			}
		} else {
			rects[i] = Rect{
				X:      area.X + offset,
				Y:      area.Y,
				Width:  size,
				Height: area.Height,
			}
		}
		offset += size
	}
	return rects
}
