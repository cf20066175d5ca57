package world

import "fmt"

// generateLabyrinth carves a perfect maze (recursive backtracker) out of a
// solid map. Passages sit on odd coordinates with walls between them, and the
// start stairs are at the maze entrance (1,1).
func generateLabyrinth(m *Map) ([]Rect, error) {
	if m.Width < 3 || m.Height < 3 {
		return nil, fmt.Errorf("%w: labyrinth needs at least 3x3, got %dx%d",
			ErrInvalidGenerationParams, m.Width, m.Height)
	}
	floor, err := m.floorKind()
	if err != nil {
		return nil, err
	}

	start := Point{X: 1, Y: 1}
	carved := NewPointSet()
	carved.Put(start)
	m.tiles[start.Y][start.X].Kind = floor

	stack := []Point{start}
	dirs := []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]Point, 0, 4)

		for _, d := range dirs {
			next := Point{X: curr.X + d.X, Y: curr.Y + d.Y}
			// Keep a one-cell wall around the edge.
			if next.X > 0 && next.X < m.Width-1 && next.Y > 0 && next.Y < m.Height-1 && !carved.Has(next) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[m.rng.Intn(len(candidates))]
		next := Point{X: curr.X + d.X, Y: curr.Y + d.Y}
		m.tiles[curr.Y+d.Y/2][curr.X+d.X/2].Kind = floor
		m.tiles[next.Y][next.X].Kind = floor
		carved.Put(next)
		stack = append(stack, next)
	}

	if err := m.placeStairs(start.X, start.Y); err != nil {
		return nil, err
	}
	return nil, nil
}
