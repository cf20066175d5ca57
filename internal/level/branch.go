// Package level ties maps to levels, places entities on them and connects
// levels into the world graph.
package level

import (
	"errors"
	"fmt"

	"github.com/samdwyer/roguewarts/internal/world"
)

var (
	// ErrInvalidLevelTransition is returned for travel to a level that is
	// unknown or not connected to the traveller's level, or when the
	// traveller is not on stairs.
	ErrInvalidLevelTransition = errors.New("invalid level transition")

	// ErrStairsBlocked is returned alongside ErrInvalidLevelTransition when
	// something blocking already stands on the arrival stairs.
	ErrStairsBlocked = errors.New("stairs blocked")

	// ErrUnknownBranch is returned for a branch outside the known set.
	ErrUnknownBranch = errors.New("unknown branch")
)

// Branch is a themed group of levels and the map archetypes they may use.
type Branch struct {
	Name       string
	Archetypes []world.ArchetypeKind
}

// The branches of the world.
var (
	Classrooms = Branch{Name: "classrooms", Archetypes: []world.ArchetypeKind{world.Classrooms, world.Classrooms2}}
	Dungeons   = Branch{Name: "dungeons", Archetypes: []world.ArchetypeKind{world.Dungeon, world.Dungeon2}}
	Woods      = Branch{Name: "woods", Archetypes: []world.ArchetypeKind{world.Wood}}
	FromFile   = Branch{Name: "from_file", Archetypes: []world.ArchetypeKind{world.Special}}
)

// Depth thresholds for archetype selection.
const (
	upperClassroomDepth = 5  // classrooms at this depth and above use the ring layout
	deepDungeonDepth    = -5 // dungeons at this depth and below use the standard layout
	labyrinthDepth      = 10 // any level deeper or higher than this is a labyrinth
)

// SelectArchetype picks the map archetype for a level of branch at depth.
// The rules apply in order and later ones override earlier ones: the
// branch rule, then labyrinths past |depth| 10, then the debug override,
// which always gives the standard dungeon.
func SelectArchetype(branch Branch, depth int, debug bool) (world.Archetype, error) {
	var slot int
	switch branch.Name {
	case Classrooms.Name:
		if depth >= upperClassroomDepth {
			slot = 1
		}
	case Dungeons.Name:
		if depth <= deepDungeonDepth {
			slot = 1
		}
	case Woods.Name, FromFile.Name:
	default:
		return world.Archetype{}, fmt.Errorf("%w: %q", ErrUnknownBranch, branch.Name)
	}
	if slot >= len(branch.Archetypes) {
		return world.Archetype{}, fmt.Errorf("%w: %q has no archetype for depth %d", ErrUnknownBranch, branch.Name, depth)
	}
	kind := branch.Archetypes[slot]

	if depth > labyrinthDepth || depth < -labyrinthDepth {
		kind = world.Labyrinth
	}
	if debug {
		kind = world.Dungeon2
	}

	arch := world.ArchetypeFor(kind)
	arch.Depth = depth
	return arch, nil
}

// Branches lists every branch of the world.
var Branches = []Branch{Classrooms, Dungeons, Woods, FromFile}

// BranchByName returns the branch called name.
func BranchByName(name string) (Branch, error) {
	for _, b := range Branches {
		if b.Name == name {
			return b, nil
		}
	}
	return Branch{}, fmt.Errorf("%w: %q", ErrUnknownBranch, name)
}
