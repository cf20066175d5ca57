package world

import (
	"fmt"

	"github.com/samdwyer/roguewarts/internal/logger"
)

// minRoomSide is the smallest room span that still leaves one floor cell.
const minRoomSide = 2

// Generator carves an archetype's layout into a freshly allocated map and
// returns the rooms it placed, in placement order. Generators that place the
// start stairs do so through Map.placeStairs.
type Generator func(m *Map) ([]Rect, error)

// generators is the closed set of layout strategies, one per archetype.
var generators = map[ArchetypeKind]Generator{
	Classrooms:  generateClassrooms,
	Classrooms2: generateClassroomRing,
	Dungeon:     generatePartitioned,
	Dungeon2:    generateRoomsAndCorridors,
	Cave:        generateCave,
	Wood:        generateCave,
	Labyrinth:   generateLabyrinth,
	Special:     generateFromFile,
}

// Normalize checks p against a width x height map and returns the
// parameters generation will actually use. A minimum larger than the
// maximum is swapped and logged rather than rejected.
func (p GenParams) Normalize(width, height int) (GenParams, error) {
	if p.MaxRooms <= 0 {
		// No room can ever be accepted, so there is nowhere to put the stairs.
		return p, fmt.Errorf("%w: %w: max rooms %d", ErrInvalidGenerationParams, ErrMapGenerationFailed, p.MaxRooms)
	}
	if p.RoomMinSize > p.RoomMaxSize {
		logger.Warning("room size limits reversed, swapping",
			"min", p.RoomMinSize,
			"max", p.RoomMaxSize,
		)
		p.RoomMinSize, p.RoomMaxSize = p.RoomMaxSize, p.RoomMinSize
	}
	if p.RoomMinSize < minRoomSide {
		return p, fmt.Errorf("%w: room min size %d below %d", ErrInvalidGenerationParams, p.RoomMinSize, minRoomSide)
	}
	if p.RoomMaxSize >= min(width, height) {
		return p, fmt.Errorf("%w: room max size %d does not fit a %dx%d map",
			ErrInvalidGenerationParams, p.RoomMaxSize, width, height)
	}
	return p, nil
}

// roomParams returns the normalized room limits of m's archetype.
func (m *Map) roomParams() (GenParams, error) {
	if m.Archetype.Params == nil {
		return GenParams{}, fmt.Errorf("%w: %s archetype has no room limits",
			ErrInvalidGenerationParams, m.Archetype.Name())
	}
	return m.Archetype.Params.Normalize(m.Width, m.Height)
}

// floorKind resolves the archetype's floor tile.
func (m *Map) floorKind() (TileKind, error) {
	return LookupTile(m.Archetype.Floor)
}

// placeStairsInRoom puts the start stairs on a random floor cell of room.
func (m *Map) placeStairsInRoom(room Rect) error {
	x := m.rng.Int(room.X1+1, room.X2-1)
	y := m.rng.Int(room.Y1+1, room.Y2-1)
	return m.placeStairs(x, y)
}

// generateFromFile is the external-data archetype. The loader does not exist yet.
func generateFromFile(m *Map) ([]Rect, error) {
	return nil, fmt.Errorf("%w: loading level %d from file", ErrNotImplemented, m.Archetype.Depth)
}
