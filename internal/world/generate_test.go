package world

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestEveryArchetypeHasStairs(t *testing.T) {
	for _, kind := range []ArchetypeKind{Classrooms, Classrooms2, Dungeon, Dungeon2, Cave, Wood, Labyrinth} {
		t.Run(kind.String(), func(t *testing.T) {
			m := generate(t, kind, DefaultWidth, DefaultHeight, 42)

			stairs, err := m.StartStairs()
			if err != nil {
				t.Fatalf("StartStairs error: %v", err)
			}
			tile, _ := m.Kind(stairs.X, stairs.Y)
			if tile.Key() != TileStairs {
				t.Errorf("stairs cell is %s", tile.Key())
			}
			if m.BlocksPassage(stairs.X, stairs.Y) {
				t.Error("stairs block passage")
			}
		})
	}
}

func TestArchetypesAreDeterministic(t *testing.T) {
	for _, kind := range []ArchetypeKind{Classrooms, Classrooms2, Dungeon, Cave, Wood, Labyrinth} {
		m1 := generate(t, kind, 90, 60, 77)
		m2 := generate(t, kind, 90, 60, 77)
		for y := 0; y < m1.Height; y++ {
			for x := 0; x < m1.Width; x++ {
				if m1.tiles[y][x] != m2.tiles[y][x] {
					t.Fatalf("%s: tile mismatch at (%d,%d)", kind, x, y)
				}
			}
		}
	}
}

func TestPartitionedDungeon(t *testing.T) {
	m := generate(t, Dungeon, DefaultWidth, DefaultHeight, 5)

	if len(m.Rooms) == 0 || len(m.Rooms) > DefaultRoomLimits.MaxRooms {
		t.Fatalf("got %d rooms, want 1..%d", len(m.Rooms), DefaultRoomLimits.MaxRooms)
	}
	for i, a := range m.Rooms {
		for j := i + 1; j < len(m.Rooms); j++ {
			if a.Intersects(m.Rooms[j]) {
				t.Errorf("rooms %v and %v intersect", a, m.Rooms[j])
			}
		}
	}

	stairs, _ := m.StartStairs()
	if !m.Rooms[0].Contains(stairs.X, stairs.Y) {
		t.Errorf("stairs %v not inside first room %v", stairs, m.Rooms[0])
	}

	seen := reachable(m, stairs, walkable)
	for i, room := range m.Rooms {
		cx, cy := room.Center()
		if !seen.Has(Point{X: cx, Y: cy}) {
			t.Errorf("room %d center (%d,%d) unreachable from stairs", i, cx, cy)
		}
	}
}

func TestCaveIsOneRegion(t *testing.T) {
	for _, kind := range []ArchetypeKind{Cave, Wood} {
		m := generate(t, kind, 80, 50, 11)
		stairs, _ := m.StartStairs()
		seen := reachable(m, stairs, walkable)
		background := MustTile(m.Archetype.Background)

		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				k, _ := m.Kind(x, y)
				border := x == 0 || y == 0 || x == m.Width-1 || y == m.Height-1
				if border && k != background {
					t.Errorf("%s: border cell (%d,%d) is %s", kind, x, y, k.Key())
				}
				if !k.BlocksPassage() && !seen.Has(Point{X: x, Y: y}) {
					t.Errorf("%s: open cell (%d,%d) cut off from stairs", kind, x, y)
				}
			}
		}
	}
}

func TestLabyrinthReachesEveryCell(t *testing.T) {
	m := generate(t, Labyrinth, 41, 21, 3)

	stairs, _ := m.StartStairs()
	if stairs != (Point{X: 1, Y: 1}) {
		t.Errorf("stairs at %v, want (1,1)", stairs)
	}

	seen := reachable(m, stairs, walkable)
	for y := 1; y < m.Height-1; y += 2 {
		for x := 1; x < m.Width-1; x += 2 {
			if !seen.Has(Point{X: x, Y: y}) {
				t.Errorf("maze cell (%d,%d) not reachable", x, y)
			}
		}
	}
	for x := 0; x < m.Width; x++ {
		if !m.BlocksPassage(x, 0) || !m.BlocksPassage(x, m.Height-1) {
			t.Errorf("outer wall open at column %d", x)
		}
	}
}

func TestClassroomsReachableThroughDoors(t *testing.T) {
	for _, kind := range []ArchetypeKind{Classrooms, Classrooms2} {
		m := generate(t, kind, DefaultWidth, DefaultHeight, 8)
		if len(m.Rooms) == 0 {
			t.Fatalf("%s: no classrooms", kind)
		}

		stairs, _ := m.StartStairs()
		seen := reachable(m, stairs, walkableWithDoors)
		doors := 0
		for i, room := range m.Rooms {
			for j := i + 1; j < len(m.Rooms); j++ {
				if room.Intersects(m.Rooms[j]) {
					t.Errorf("%s: classrooms %v and %v intersect", kind, room, m.Rooms[j])
				}
			}
			for y := room.Y1 + 1; y < room.Y2; y++ {
				for x := room.X1 + 1; x < room.X2; x++ {
					if !seen.Has(Point{X: x, Y: y}) {
						t.Errorf("%s: classroom cell (%d,%d) unreachable", kind, x, y)
					}
				}
			}
		}
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				if k, _ := m.Kind(x, y); k.Key() == TileDoorClosed {
					doors++
				}
			}
		}
		if doors != len(m.Rooms) {
			t.Errorf("%s: %d doors for %d classrooms", kind, doors, len(m.Rooms))
		}
	}
}

func TestClassroomRingHasWindowedWell(t *testing.T) {
	m := generate(t, Classrooms2, 60, 40, 2)
	cx, cy := m.Width/2, m.Height/2

	k, _ := m.Kind(cx, cy)
	if k.Key() != TileAir {
		t.Fatalf("center of the ring is %s, want air", k.Key())
	}
	if !m.BlocksPassage(cx, cy) || m.BlocksSight(cx, cy) {
		t.Error("the well should block passage but not sight")
	}

	windows := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if k, _ := m.Kind(x, y); k.Key() == TileWindow {
				windows++
			}
		}
	}
	if windows == 0 {
		t.Error("no windows around the well")
	}
}

func TestClassroomsTooSmall(t *testing.T) {
	_, err := NewMap(context.Background(), 15, 8, ArchetypeFor(Classrooms), NewRand(1))
	if !errors.Is(err, ErrInvalidGenerationParams) {
		t.Errorf("classrooms 15x8 error = %v, want ErrInvalidGenerationParams", err)
	}
	_, err = NewMap(context.Background(), 30, 20, ArchetypeFor(Classrooms2), NewRand(1))
	if !errors.Is(err, ErrInvalidGenerationParams) {
		t.Errorf("classroom ring 30x20 error = %v, want ErrInvalidGenerationParams", err)
	}
}

func TestSpecialNotImplemented(t *testing.T) {
	arch := ArchetypeFor(Special)
	arch.Depth = 7
	m, err := NewMap(context.Background(), 50, 50, arch, NewRand(1))
	if !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("special map error = %v, want ErrNotImplemented", err)
	}
	if !strings.Contains(err.Error(), "level 7") {
		t.Errorf("error %q does not name the level", err)
	}
	if m != nil {
		t.Error("got a map despite the error")
	}
}

func TestParseArchetypeKind(t *testing.T) {
	for k := Classrooms; k <= Special; k++ {
		got, err := ParseArchetypeKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseArchetypeKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseArchetypeKind("castle"); err == nil {
		t.Error("ParseArchetypeKind(castle) should fail")
	}
}
