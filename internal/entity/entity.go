// Package entity provides the things that stand on a level: the player and monsters.
package entity

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/roguewarts/internal/world"
)

// Host is the level an entity currently stands on.
type Host interface {
	// IsBlocked reports whether (x, y) can not be entered.
	IsBlocked(x, y int) bool
	// Map returns the level's tile map.
	Map() *world.Map
	// Remove takes e off the level.
	Remove(e *Entity)
}

// MoveResult is the outcome of a move request.
type MoveResult int

const (
	// MoveOK means the entity moved.
	MoveOK MoveResult = iota
	// MoveBlocked means a tile or a blocking entity is in the way.
	MoveBlocked
	// MoveOutOfBounds means the target is off the map.
	MoveOutOfBounds
	// MoveNoLevel means the entity is not on any level.
	MoveNoLevel
)

// String returns a short description of the result.
func (r MoveResult) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveBlocked:
		return "blocked"
	case MoveOutOfBounds:
		return "out of bounds"
	case MoveNoLevel:
		return "no level"
	default:
		return "unknown"
	}
}

// Entity is anything with a position on a level.
type Entity struct {
	ID             uuid.UUID
	Name           string
	X, Y           int
	Glyph          rune
	Color          tcell.Color
	BlocksMovement bool
	Level          Host // nil while between levels
}

// New creates an entity that is not on a level yet.
func New(name string, glyph rune, color tcell.Color, blocks bool) *Entity {
	return &Entity{
		ID:             uuid.New(),
		Name:           name,
		Glyph:          glyph,
		Color:          color,
		BlocksMovement: blocks,
	}
}

// Move steps the entity by (dx, dy). The position only changes when the
// result is MoveOK. A zero step always succeeds.
func (e *Entity) Move(dx, dy int) MoveResult {
	if e.Level == nil {
		return MoveNoLevel
	}
	if dx == 0 && dy == 0 {
		return MoveOK
	}

	nx, ny := e.X+dx, e.Y+dy
	if !e.Level.Map().InBounds(nx, ny) {
		return MoveOutOfBounds
	}
	if e.Level.IsBlocked(nx, ny) {
		return MoveBlocked
	}

	e.X, e.Y = nx, ny
	return MoveOK
}

// Distance returns the Euclidean distance from the entity to (x, y).
func (e *Entity) Distance(x, y int) float64 {
	return math.Hypot(float64(x-e.X), float64(y-e.Y))
}
