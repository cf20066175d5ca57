package world

import (
	"context"
	"testing"
)

// newTestMap returns a w x h map of bg with no generation run.
func newTestMap(w, h int, bg TileKey) *Map {
	kind := MustTile(bg)
	tiles := make([][]Tile, h)
	for y := range tiles {
		tiles[y] = make([]Tile, w)
		for x := range tiles[y] {
			tiles[y][x] = Tile{Kind: kind}
		}
	}
	return &Map{
		Width:     w,
		Height:    h,
		Archetype: ArchetypeFor(Dungeon2),
		tiles:     tiles,
		rng:       NewRand(1),
	}
}

// generate builds a map and fails the test on error.
func generate(t *testing.T, kind ArchetypeKind, w, h int, seed int64) *Map {
	t.Helper()
	m, err := NewMap(context.Background(), w, h, ArchetypeFor(kind), NewRand(seed))
	if err != nil {
		t.Fatalf("NewMap(%s, %dx%d, seed %d) error: %v", kind, w, h, seed, err)
	}
	return m
}

// reachable flood fills from start through cells that pass the filter.
func reachable(m *Map, start Point, pass func(TileKind) bool) PointSet {
	seen := NewPointSet()
	seen.Put(start)
	queue := []Point{start}
	dirs := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			next := Point{X: curr.X + d.X, Y: curr.Y + d.Y}
			if !m.InBounds(next.X, next.Y) || seen.Has(next) {
				continue
			}
			kind, _ := m.Kind(next.X, next.Y)
			if !pass(kind) {
				continue
			}
			seen.Put(next)
			queue = append(queue, next)
		}
	}
	return seen
}

func walkable(k TileKind) bool { return !k.BlocksPassage() }

// walkableWithDoors treats closed doors as open.
func walkableWithDoors(k TileKind) bool {
	return !k.BlocksPassage() || k.Key() == TileDoorClosed
}
