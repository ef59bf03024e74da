package layout

import "testing"

func TestRectInner(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		pad  uint16
		want Rect
	}{
		{"no padding", NewRect(0, 0, 80, 24), 0, NewRect(0, 0, 80, 24)},
		{"one cell", NewRect(0, 0, 80, 24), 1, NewRect(1, 1, 78, 22)},
		{"offset rect", NewRect(5, 3, 20, 10), 2, NewRect(7, 5, 16, 6)},
		{"padding equals half width", NewRect(0, 0, 10, 10), 5, NewRect(5, 5, 0, 0)},
		{"padding exceeds width", NewRect(0, 0, 8, 24), 5, NewRect(5, 5, 0, 14)},
		{"padding exceeds both", NewRect(0, 0, 4, 4), 9, NewRect(9, 9, 0, 0)},
	}

	for _, tt := range tests {
		if got := tt.rect.Inner(tt.pad); got != tt.want {
			t.Errorf("%s: Inner(%d) = %v, want %v", tt.name, tt.pad, got, tt.want)
		}
	}
}

func TestRectInnerNeverUnderflows(t *testing.T) {
	r := NewRect(0, 0, 7, 7)
	for pad := uint16(4); pad < 100; pad++ {
		inner := r.Inner(pad)
		if inner.Width != 0 || inner.Height != 0 {
			t.Fatalf("Inner(%d) = %v, want zero size", pad, inner)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 5, 20, 10)

	tests := []struct {
		x, y uint16
		want bool
	}{
		{10, 5, true},
		{29, 14, true},
		{30, 14, false}, // right edge is exclusive
		{29, 15, false}, // bottom edge is exclusive
		{9, 5, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 20, 20), NewRect(4, 4, 2, 2), NewRect(4, 4, 2, 2)},
		{"disjoint", NewRect(0, 0, 5, 5), NewRect(10, 10, 5, 5), NewRect(10, 10, 0, 0)},
	}

	for _, tt := range tests {
		got := tt.a.Intersection(tt.b)
		if got.Width != tt.want.Width || got.Height != tt.want.Height {
			t.Errorf("%s: Intersection = %v, want %v", tt.name, got, tt.want)
		}
		if !got.IsEmpty() && got != tt.want {
			t.Errorf("%s: Intersection = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !NewRect(3, 3, 0, 10).IsEmpty() {
		t.Error("zero width rect should be empty")
	}
	if !NewRect(3, 3, 10, 0).IsEmpty() {
		t.Error("zero height rect should be empty")
	}
	if NewRect(0, 0, 1, 1).IsEmpty() {
		t.Error("1x1 rect should not be empty")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 5, 20, 10)
	if r.Right() != 30 {
		t.Errorf("Right() = %d, want 30", r.Right())
	}
	if r.Bottom() != 15 {
		t.Errorf("Bottom() = %d, want 15", r.Bottom())
	}
	if r.Area() != 200 {
		t.Errorf("Area() = %d, want 200", r.Area())
	}
}
