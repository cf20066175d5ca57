package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguewarts/internal/logger"
	"github.com/samdwyer/roguewarts/internal/telemetry"
)

// Map is the tile grid of one level.
type Map struct {
	Width     int
	Height    int
	Archetype Archetype
	Rooms     []Rect

	tiles     [][]Tile // indexed [y][x]
	rng       *Rand
	stairs    Point
	hasStairs bool
}

// NewMap allocates a width x height map of the archetype's background tile
// and runs the archetype's generator on it. Any generation error aborts
// construction; a partially built map is never returned.
func NewMap(ctx context.Context, width, height int, archetype Archetype, rng *Rand) (*Map, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()

	if width <= 0 || height <= 0 {
		return nil, telemetry.Fail(span, fmt.Errorf("%w: map size %dx%d", ErrInvalidGenerationParams, width, height))
	}

	background, err := LookupTile(archetype.Background)
	if err != nil {
		return nil, telemetry.Fail(span, fmt.Errorf("background for %s: %w", archetype.Name(), err))
	}

	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Tile{Kind: background}
		}
	}

	m := &Map{
		Width:     width,
		Height:    height,
		Archetype: archetype,
		tiles:     tiles,
		rng:       rng,
	}

	generate, ok := generators[archetype.Kind]
	if !ok {
		return nil, telemetry.Fail(span, fmt.Errorf("%w: no generator for archetype %d", ErrNotImplemented, archetype.Kind))
	}

	rooms, err := generate(m)
	if err != nil {
		return nil, telemetry.Fail(span, fmt.Errorf("generate %s map: %w", archetype.Name(), err))
	}
	m.Rooms = rooms

	span.SetAttributes(
		attribute.String("map.archetype", archetype.Name()),
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.room_count", len(rooms)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	logger.Debug("map generated",
		"archetype", archetype.Name(),
		"width", width,
		"height", height,
		"rooms", len(rooms),
	)

	return m, nil
}

// InBounds reports whether (x, y) is on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

func (m *Map) checkBounds(x, y int) error {
	if !m.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d map", ErrOutOfBounds, x, y, m.Width, m.Height)
	}
	return nil
}

// Tile returns a copy of the cell state at (x, y).
func (m *Map) Tile(x, y int) (Tile, error) {
	if err := m.checkBounds(x, y); err != nil {
		return Tile{}, err
	}
	return m.tiles[y][x], nil
}

// Kind returns the tile kind at (x, y).
func (m *Map) Kind(x, y int) (TileKind, error) {
	if err := m.checkBounds(x, y); err != nil {
		return TileKind{}, err
	}
	return m.tiles[y][x].Kind, nil
}

// SetKind changes the tile kind at (x, y). The explored flag is kept.
func (m *Map) SetKind(x, y int, kind TileKind) error {
	if err := m.checkBounds(x, y); err != nil {
		return err
	}
	if kind.IsZero() {
		return fmt.Errorf("%w: zero tile kind at (%d,%d)", ErrUnknownTileKind, x, y)
	}
	m.tiles[y][x].Kind = kind
	return nil
}

// BlocksPassage reports whether the tile at (x, y) stops movement.
// Off-map cells block.
func (m *Map) BlocksPassage(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.tiles[y][x].Kind.BlocksPassage()
}

// BlocksSight reports whether the tile at (x, y) stops line of sight.
// Off-map cells block.
func (m *Map) BlocksSight(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.tiles[y][x].Kind.BlocksSight()
}

// IsExplored reports whether (x, y) has ever been seen. Off-map cells never are.
func (m *Map) IsExplored(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.tiles[y][x].Explored
}

// MarkExplored records that (x, y) has been seen. The flag is never cleared.
func (m *Map) MarkExplored(x, y int) error {
	if err := m.checkBounds(x, y); err != nil {
		return err
	}
	m.tiles[y][x].Explored = true
	return nil
}

// ExploredCount returns how many cells have been seen.
func (m *Map) ExploredCount() int {
	n := 0
	for y := range m.tiles {
		for x := range m.tiles[y] {
			if m.tiles[y][x].Explored {
				n++
			}
		}
	}
	return n
}

// StartStairs returns where arrivals on this map are placed.
func (m *Map) StartStairs() (Point, error) {
	if !m.hasStairs {
		return Point{}, fmt.Errorf("%w: %s map has no start stairs", ErrMapGenerationFailed, m.Archetype.Name())
	}
	return m.stairs, nil
}

// placeStairs turns (x, y) into the start stairs.
func (m *Map) placeStairs(x, y int) error {
	if err := m.SetKind(x, y, MustTile(TileStairs)); err != nil {
		return err
	}
	m.stairs = Point{X: x, Y: y}
	m.hasStairs = true
	return nil
}

// OpenDoor turns a closed door at (x, y) into an open one.
func (m *Map) OpenDoor(x, y int) error {
	return m.swapKind(x, y, TileDoorClosed, TileDoorOpen)
}

// CloseDoor turns an open door at (x, y) into a closed one.
func (m *Map) CloseDoor(x, y int) error {
	return m.swapKind(x, y, TileDoorOpen, TileDoorClosed)
}

func (m *Map) swapKind(x, y int, from, to TileKey) error {
	kind, err := m.Kind(x, y)
	if err != nil {
		return err
	}
	if kind.Key() != from {
		return fmt.Errorf("no %s at (%d,%d): found %s", from, x, y, kind.Key())
	}
	return m.SetKind(x, y, MustTile(to))
}

// RoomAt returns the index of the room whose floor contains (x, y), or -1.
func (m *Map) RoomAt(x, y int) int {
	for i, room := range m.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// carveHorizontal sets (x1..x2, y) to kind, endpoints included.
func (m *Map) carveHorizontal(x1, x2, y int, kind TileKind) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if m.InBounds(x, y) {
			m.tiles[y][x].Kind = kind
		}
	}
}

// carveVertical sets (x, y1..y2) to kind, endpoints included.
func (m *Map) carveVertical(y1, y2, x int, kind TileKind) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if m.InBounds(x, y) {
			m.tiles[y][x].Kind = kind
		}
	}
}

// carveCorridor joins two points with an L-shaped corridor. On heads the
// horizontal leg runs first along from's row, otherwise the vertical leg
// runs first along from's column.
func (m *Map) carveCorridor(fromX, fromY, toX, toY int, kind TileKind) {
	if m.rng.Coin() {
		m.carveHorizontal(fromX, toX, fromY, kind)
		m.carveVertical(fromY, toY, toX, kind)
	} else {
		m.carveVertical(fromY, toY, fromX, kind)
		m.carveHorizontal(fromX, toX, toY, kind)
	}
}
