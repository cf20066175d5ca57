package world

import "fmt"

// Cellular automaton settings for cave layouts.
const (
	caveInitialFill = 0.45
	caveSmoothSteps = 5
	caveBirthLimit  = 5 // open cell with this many solid neighbours fills in
	caveSurvival    = 4 // solid cell with this many solid neighbours stays
)

// generateCave grows an organic open area out of the archetype's background
// (rock for caves, trees for woods). Only the largest connected open region
// is kept; smaller pockets are filled back in so every floor cell is
// reachable from the stairs.
func generateCave(m *Map) ([]Rect, error) {
	floor, err := m.floorKind()
	if err != nil {
		return nil, err
	}

	solid := m.seedCave()
	for range caveSmoothSteps {
		solid = smoothCave(solid, m.Width, m.Height)
	}

	region := largestOpenRegion(solid, m.Width, m.Height)
	if len(region) == 0 {
		return nil, fmt.Errorf("%w: %s map has no open cells", ErrMapGenerationFailed, m.Archetype.Name())
	}

	for _, pt := range region {
		m.tiles[pt.Y][pt.X].Kind = floor
	}

	start := region[m.rng.Intn(len(region))]
	if err := m.placeStairs(start.X, start.Y); err != nil {
		return nil, err
	}
	return nil, nil
}

// seedCave returns the initial random fill. The border is always solid.
func (m *Map) seedCave() [][]bool {
	solid := make([][]bool, m.Height)
	for y := range solid {
		solid[y] = make([]bool, m.Width)
		for x := range solid[y] {
			if x == 0 || y == 0 || x == m.Width-1 || y == m.Height-1 {
				solid[y][x] = true
				continue
			}
			solid[y][x] = m.rng.Float64() < caveInitialFill
		}
	}
	return solid
}

// smoothCave applies one automaton step. Off-map neighbours count as solid.
func smoothCave(solid [][]bool, width, height int) [][]bool {
	next := make([][]bool, height)
	for y := range next {
		next[y] = make([]bool, width)
		for x := range next[y] {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				next[y][x] = true
				continue
			}
			n := solidNeighbours(solid, x, y, width, height)
			if solid[y][x] {
				next[y][x] = n >= caveSurvival
			} else {
				next[y][x] = n >= caveBirthLimit
			}
		}
	}
	return next
}

func solidNeighbours(solid [][]bool, x, y, width, height int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= width || ny >= height || solid[ny][nx] {
				n++
			}
		}
	}
	return n
}

// largestOpenRegion flood fills every 4-connected open region and returns
// the cells of the biggest one, in discovery order. Ties go to the region
// found first in row-major order.
func largestOpenRegion(solid [][]bool, width, height int) []Point {
	seen := make([][]bool, height)
	for y := range seen {
		seen[y] = make([]bool, width)
	}

	var best []Point
	dirs := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if solid[y][x] || seen[y][x] {
				continue
			}

			seen[y][x] = true
			region := []Point{{X: x, Y: y}}
			for i := 0; i < len(region); i++ {
				curr := region[i]
				for _, d := range dirs {
					nx, ny := curr.X+d.X, curr.Y+d.Y
					if nx < 0 || ny < 0 || nx >= width || ny >= height {
						continue
					}
					if solid[ny][nx] || seen[ny][nx] {
						continue
					}
					seen[ny][nx] = true
					region = append(region, Point{X: nx, Y: ny})
				}
			}

			if len(region) > len(best) {
				best = region
			}
		}
	}
	return best
}
