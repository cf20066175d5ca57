package world

import (
	"fmt"
	"strings"
)

// FOVAlgorithm selects how ComputeFOV traces sight lines.
type FOVAlgorithm int

const (
	// FOVBasic casts a Bresenham ray to every cell in range.
	FOVBasic FOVAlgorithm = iota
	// FOVShadow is recursive shadowcasting over eight octants.
	FOVShadow
)

// String returns the config name of the algorithm.
func (a FOVAlgorithm) String() string {
	switch a {
	case FOVBasic:
		return "basic"
	case FOVShadow:
		return "shadow"
	default:
		return "unknown"
	}
}

// ParseFOVAlgorithm maps a config name to an algorithm. Empty means basic.
func ParseFOVAlgorithm(name string) (FOVAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "basic":
		return FOVBasic, nil
	case "shadow", "shadowcasting":
		return FOVShadow, nil
	default:
		return FOVBasic, fmt.Errorf("unknown FOV algorithm %q", name)
	}
}

// ComputeFOV returns the cells visible from (ox, oy) within radius
// (Euclidean, dx*dx+dy*dy <= radius*radius). Cells with BlocksSight stop
// the view past them; with lightWalls they are visible themselves, without
// it they are not. The origin is always visible. The map is not modified.
func ComputeFOV(m *Map, ox, oy, radius int, lightWalls bool, algo FOVAlgorithm) (PointSet, error) {
	if err := m.checkBounds(ox, oy); err != nil {
		return PointSet{}, err
	}

	visible := NewPointSet()
	visible.Put(Point{X: ox, Y: oy})
	if radius <= 0 {
		return visible, nil
	}

	switch algo {
	case FOVShadow:
		for _, oct := range octants {
			castLight(m, visible, ox, oy, 1, 1.0, 0.0, radius, lightWalls, oct)
		}
	default:
		castRays(m, visible, ox, oy, radius, lightWalls)
	}
	return visible, nil
}

// Reveal marks every cell of visible as explored. Cells off the map are skipped.
func Reveal(m *Map, visible PointSet) {
	visible.Each(func(p Point) {
		if m.InBounds(p.X, p.Y) {
			m.tiles[p.Y][p.X].Explored = true
		}
	})
}

func castRays(m *Map, visible PointSet, ox, oy, radius int, lightWalls bool) {
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x, y := ox+dx, oy+dy
			if !m.InBounds(x, y) {
				continue
			}
			if m.BlocksSight(x, y) && !lightWalls {
				continue
			}
			if hasLineOfSight(m, ox, oy, x, y) {
				visible.Put(Point{X: x, Y: y})
			}
		}
	}
}

// hasLineOfSight walks the Bresenham line from (x0,y0) to (x1,y1) and
// reports whether every cell strictly between the two is transparent.
func hasLineOfSight(m *Map, x0, y0, x1, y1 int) bool {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)

	x, y := x0, y0
	if dx >= dy {
		err := 2*dy - dx
		for x != x1 {
			x += sx
			if err > 0 {
				y += sy
				err -= 2 * dx
			}
			err += 2 * dy
			if x == x1 && y == y1 {
				return true
			}
			if m.BlocksSight(x, y) {
				return false
			}
		}
	} else {
		err := 2*dx - dy
		for y != y1 {
			y += sy
			if err > 0 {
				x += sx
				err -= 2 * dy
			}
			err += 2 * dx
			if x == x1 && y == y1 {
				return true
			}
			if m.BlocksSight(x, y) {
				return false
			}
		}
	}
	return true
}

// octants maps the (col, row) sweep of castLight into each of the eight
// octants: worldX = ox + col*xx + row*xy, worldY = oy + col*yx + row*yy.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// castLight lights one octant row by row between the start and end slopes,
// recursing past every run of opaque cells.
func castLight(m *Map, visible PointSet, ox, oy, row int, start, end float64, radius int, lightWalls bool, oct [4]int) {
	if start < end {
		return
	}
	xx, xy, yx, yy := oct[0], oct[1], oct[2], oct[3]
	r2 := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := ox + dx*xx + dy*xy
			wy := oy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			opaque := m.BlocksSight(wx, wy)
			if dx*dx+dy*dy <= r2 && m.InBounds(wx, wy) && (!opaque || lightWalls) {
				visible.Put(Point{X: wx, Y: wy})
			}

			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				castLight(m, visible, ox, oy, j+1, start, lSlope, radius, lightWalls, oct)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
