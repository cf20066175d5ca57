package world

import "fmt"

// Shape is a room outline that generators can place and carve.
type Shape interface {
	// Center returns the room's center cell.
	Center() (int, int)
	// Intersects reports whether the two shapes' bounds overlap or touch.
	Intersects(other Shape) bool
	// Bounds returns the axis-aligned box enclosing the shape, walls included.
	Bounds() Rect
	// Fill sets every interior cell of the shape on m to kind.
	Fill(m *Map, kind TileKind) error
}

// Rect is a rectangular room. (X1,Y1) and (X2,Y2) are the corners of its
// wall ring; the floor is the cells strictly inside.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a room with its top-left corner at (x, y) and the given size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width returns X2 - X1.
func (r Rect) Width() int { return r.X2 - r.X1 }

// Height returns Y2 - Y1.
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Center returns the center coordinates of the room, truncated toward the
// lower coordinate for odd spans.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Contains returns true if the point is on the room's floor (inside the wall ring).
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}

// Intersects uses closed intervals, so rooms sharing an edge intersect.
// That keeps at least one wall cell between accepted rooms.
func (r Rect) Intersects(other Shape) bool {
	o := other.Bounds()
	return r.X1 <= o.X2 && r.X2 >= o.X1 &&
		r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}

// Bounds returns r.
func (r Rect) Bounds() Rect {
	return r
}

// Fill sets the interior cells (X1+1..X2-1, Y1+1..Y2-1) to kind.
func (r Rect) Fill(m *Map, kind TileKind) error {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			if err := m.SetKind(x, y, kind); err != nil {
				return fmt.Errorf("fill room %v: %w", r, err)
			}
		}
	}
	return nil
}

// Outline sets the wall ring cells to kind.
func (r Rect) Outline(m *Map, kind TileKind) error {
	for x := r.X1; x <= r.X2; x++ {
		if err := m.SetKind(x, r.Y1, kind); err != nil {
			return err
		}
		if err := m.SetKind(x, r.Y2, kind); err != nil {
			return err
		}
	}
	for y := r.Y1; y <= r.Y2; y++ {
		if err := m.SetKind(r.X1, y, kind); err != nil {
			return err
		}
		if err := m.SetKind(r.X2, y, kind); err != nil {
			return err
		}
	}
	return nil
}

// String formats the room as (x1,y1)-(x2,y2).
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X1, r.Y1, r.X2, r.Y2)
}

// Circle is a round room. Not built yet.
type Circle struct {
	CX, CY, Radius int
}

// NewCircle always fails until circular rooms are supported.
func NewCircle(cx, cy, radius int) (*Circle, error) {
	return nil, fmt.Errorf("%w: circular rooms", ErrNotImplemented)
}

// Hexagon is a six-sided room. Not built yet.
type Hexagon struct {
	CX, CY, Side int
}

// NewHexagon always fails until hexagonal rooms are supported.
func NewHexagon(cx, cy, side int) (*Hexagon, error) {
	return nil, fmt.Errorf("%w: hexagonal rooms", ErrNotImplemented)
}
