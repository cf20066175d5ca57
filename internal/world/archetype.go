package world

import "fmt"

// Default map dimensions.
const (
	DefaultWidth  = 200
	DefaultHeight = 100
)

// DefaultRoomLimits are the room limits the dungeon archetypes start from.
var DefaultRoomLimits = GenParams{MaxRooms: 50, RoomMinSize: 10, RoomMaxSize: 30}

// ArchetypeKind selects the layout family and generation strategy of a map.
type ArchetypeKind int

const (
	// Classrooms are rooms side by side along a central hallway.
	Classrooms ArchetypeKind = iota
	// Classrooms2 are rooms around a hallway ring with an empty hole in the middle.
	Classrooms2
	// Dungeon packs rooms side by side (binary space partition).
	Dungeon
	// Dungeon2 is the standard roguelike rooms-and-corridors dungeon.
	Dungeon2
	// Cave is an organic cave cut from rock.
	Cave
	// Wood is a cave layout cut from trees.
	Wood
	// Labyrinth is a maze of corridors.
	Labyrinth
	// Special maps come from external data files.
	Special
)

// String returns the archetype name.
func (k ArchetypeKind) String() string {
	switch k {
	case Classrooms:
		return "classrooms"
	case Classrooms2:
		return "classrooms2"
	case Dungeon:
		return "dungeon"
	case Dungeon2:
		return "dungeon2"
	case Cave:
		return "cave"
	case Wood:
		return "wood"
	case Labyrinth:
		return "labyrinth"
	case Special:
		return "special"
	default:
		return "unknown"
	}
}

// ParseArchetypeKind is the inverse of ArchetypeKind.String.
func ParseArchetypeKind(name string) (ArchetypeKind, error) {
	for k := Classrooms; k <= Special; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown archetype %q", name)
}

// GenParams bounds room-based generation.
type GenParams struct {
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int
}

// Archetype describes how to build one map.
type Archetype struct {
	Kind       ArchetypeKind
	Background TileKey    // kind every cell starts as
	Floor      TileKey    // kind carved for rooms and corridors
	Params     *GenParams // nil for archetypes that do not place random rooms
	Depth      int        // level number, used by Special maps
}

// Name returns the archetype name.
func (a Archetype) Name() string {
	return a.Kind.String()
}

// ArchetypeFor returns the catalog entry for kind. Params is a fresh copy.
func ArchetypeFor(kind ArchetypeKind) Archetype {
	a := Archetype{Kind: kind, Floor: TileFloor}
	switch kind {
	case Classrooms, Classrooms2:
		a.Background = TileAir
	case Dungeon, Dungeon2:
		a.Background = TileRock
		p := DefaultRoomLimits
		a.Params = &p
	case Cave, Special:
		a.Background = TileRock
	case Wood:
		a.Background = TileTree
	case Labyrinth:
		a.Background = TileWall
	default:
		a.Background = TileUnknown
	}
	return a
}
