package world

import (
	"context"
	"errors"
	"testing"
)

func TestDungeonReproducibility(t *testing.T) {
	// Generate two dungeons with the same seed
	m1 := generate(t, Dungeon2, DefaultWidth, DefaultHeight, 12345)
	m2 := generate(t, Dungeon2, DefaultWidth, DefaultHeight, 12345)

	if len(m1.Rooms) != len(m2.Rooms) {
		t.Fatalf("Room count mismatch: %d != %d", len(m1.Rooms), len(m2.Rooms))
	}
	for i := range m1.Rooms {
		if m1.Rooms[i] != m2.Rooms[i] {
			t.Errorf("Room %d mismatch: %v != %v", i, m1.Rooms[i], m2.Rooms[i])
		}
	}

	s1, _ := m1.StartStairs()
	s2, _ := m2.StartStairs()
	if s1 != s2 {
		t.Errorf("Stairs mismatch: %v != %v", s1, s2)
	}

	for y := 0; y < m1.Height; y++ {
		for x := 0; x < m1.Width; x++ {
			if m1.tiles[y][x] != m2.tiles[y][x] {
				t.Fatalf("Tile mismatch at (%d,%d): %s != %s",
					x, y, m1.tiles[y][x].Kind.Key(), m2.tiles[y][x].Kind.Key())
			}
		}
	}
}

func TestDungeonDifferentSeeds(t *testing.T) {
	m1 := generate(t, Dungeon2, DefaultWidth, DefaultHeight, 12345)
	m2 := generate(t, Dungeon2, DefaultWidth, DefaultHeight, 54321)

	identical := len(m1.Rooms) == len(m2.Rooms)
	for i := 0; identical && i < len(m1.Rooms); i++ {
		if m1.Rooms[i] != m2.Rooms[i] {
			identical = false
		}
	}
	if identical {
		t.Error("Dungeons with different seeds should not be identical")
	}
}

func TestDungeonSeed42(t *testing.T) {
	m := generate(t, Dungeon2, 200, 100, 42)

	if len(m.Rooms) == 0 {
		t.Fatal("expected at least one room")
	}

	for i, a := range m.Rooms {
		if a.X1 < 0 || a.X1 >= a.X2 || a.X2 > m.Width || a.Y1 < 0 || a.Y1 >= a.Y2 || a.Y2 > m.Height {
			t.Errorf("room %d %v out of bounds", i, a)
		}
		for j, b := range m.Rooms {
			if i != j && a.Intersects(b) {
				t.Errorf("rooms %d %v and %d %v intersect", i, a, j, b)
			}
		}
	}

	stairs, err := m.StartStairs()
	if err != nil {
		t.Fatalf("StartStairs error: %v", err)
	}
	if !m.Rooms[0].Contains(stairs.X, stairs.Y) {
		t.Errorf("stairs %v not inside first room %v", stairs, m.Rooms[0])
	}
	kind, _ := m.Kind(stairs.X, stairs.Y)
	if kind.Key() != TileStairs {
		t.Errorf("stairs cell is %s", kind.Key())
	}
}

func TestDungeonRoomsConnected(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 42, 1000} {
		m := generate(t, Dungeon2, DefaultWidth, DefaultHeight, seed)
		if len(m.Rooms) < 2 {
			continue
		}
		sx, sy := m.Rooms[0].Center()
		seen := reachable(m, Point{X: sx, Y: sy}, walkable)
		for i, room := range m.Rooms {
			cx, cy := room.Center()
			if !seen.Has(Point{X: cx, Y: cy}) {
				t.Errorf("seed %d: room %d center (%d,%d) unreachable", seed, i, cx, cy)
			}
		}
	}
}

func TestDungeonRoomInteriorsAreFloor(t *testing.T) {
	m := generate(t, Dungeon2, 80, 40, 7)
	stairs, _ := m.StartStairs()
	for i, room := range m.Rooms {
		for y := room.Y1 + 1; y < room.Y2; y++ {
			for x := room.X1 + 1; x < room.X2; x++ {
				kind, _ := m.Kind(x, y)
				if kind.BlocksPassage() {
					t.Errorf("room %d cell (%d,%d) is %s", i, x, y, kind.Key())
				}
				if kind.Key() == TileStairs && (Point{X: x, Y: y}) != stairs {
					t.Errorf("unexpected stairs at (%d,%d)", x, y)
				}
			}
		}
	}
}

func TestDungeonReversedRoomLimitsAreSwapped(t *testing.T) {
	arch := ArchetypeFor(Dungeon2)
	arch.Params = &GenParams{MaxRooms: 30, RoomMinSize: 12, RoomMaxSize: 4}

	m, err := NewMap(context.Background(), 60, 40, arch, NewRand(9))
	if err != nil {
		t.Fatalf("NewMap error: %v", err)
	}
	for i, room := range m.Rooms {
		if room.Width() < 4 || room.Width() > 12 || room.Height() < 4 || room.Height() > 12 {
			t.Errorf("room %d %v outside swapped limits [4,12]", i, room)
		}
	}
}

func TestDungeonInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params *GenParams
		want   error
	}{
		{"no limits", nil, ErrInvalidGenerationParams},
		{"zero rooms", &GenParams{MaxRooms: 0, RoomMinSize: 4, RoomMaxSize: 8}, ErrMapGenerationFailed},
		{"negative rooms", &GenParams{MaxRooms: -3, RoomMinSize: 4, RoomMaxSize: 8}, ErrInvalidGenerationParams},
		{"rooms too small", &GenParams{MaxRooms: 5, RoomMinSize: 1, RoomMaxSize: 8}, ErrInvalidGenerationParams},
		{"rooms too big", &GenParams{MaxRooms: 5, RoomMinSize: 4, RoomMaxSize: 40}, ErrInvalidGenerationParams},
	}

	for _, tt := range tests {
		arch := ArchetypeFor(Dungeon2)
		arch.Params = tt.params
		m, err := NewMap(context.Background(), 60, 40, arch, NewRand(1))
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
		if m != nil {
			t.Errorf("%s: got a map despite the error", tt.name)
		}
	}
}

func TestNormalize(t *testing.T) {
	p, err := GenParams{MaxRooms: 3, RoomMinSize: 9, RoomMaxSize: 5}.Normalize(20, 20)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if p.RoomMinSize != 5 || p.RoomMaxSize != 9 {
		t.Errorf("Normalize = %+v, want min 5 max 9", p)
	}

	if _, err := DefaultRoomLimits.Normalize(DefaultWidth, DefaultHeight); err != nil {
		t.Errorf("default limits rejected on default map: %v", err)
	}
}
