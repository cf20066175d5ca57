package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguewarts/internal/world"
)

// DefaultFOVRadius is how far a player sees unless configured otherwise.
const DefaultFOVRadius = 15

// FOV is a player's sight settings and what it currently sees.
type FOV struct {
	Radius     int
	LightWalls bool
	Algorithm  world.FOVAlgorithm
	Visible    world.PointSet
}

// DefaultFOV returns the standard sight settings: radius 15, walls lit.
func DefaultFOV() FOV {
	return FOV{
		Radius:     DefaultFOVRadius,
		LightWalls: true,
		Algorithm:  world.FOVBasic,
		Visible:    world.NewPointSet(),
	}
}

// Player is the entity a person controls.
type Player struct {
	Entity
	FOV FOV
}

// NewPlayer creates a player that is not on a level yet.
func NewPlayer(name string, fov FOV) *Player {
	if fov.Visible.Size() == 0 {
		fov.Visible = world.NewPointSet()
	}
	return &Player{
		Entity: *New(name, '@', tcell.ColorWhite, true),
		FOV:    fov,
	}
}

// Move steps the player and, if it moved, recomputes what it sees.
func (p *Player) Move(dx, dy int) MoveResult {
	result := p.Entity.Move(dx, dy)
	if result == MoveOK {
		// The origin is on the map after a successful move.
		_ = p.UpdateFOV()
	}
	return result
}

// UpdateFOV recomputes the visible set from the current position and marks
// every visible cell explored. Off a level the visible set is emptied.
func (p *Player) UpdateFOV() error {
	if p.Level == nil {
		p.FOV.Visible = world.NewPointSet()
		return nil
	}
	m := p.Level.Map()
	visible, err := world.ComputeFOV(m, p.X, p.Y, p.FOV.Radius, p.FOV.LightWalls, p.FOV.Algorithm)
	if err != nil {
		return err
	}
	p.FOV.Visible = visible
	world.Reveal(m, visible)
	return nil
}

// Sees reports whether (x, y) is in the player's current view.
func (p *Player) Sees(x, y int) bool {
	return p.FOV.Visible.Has(world.Point{X: x, Y: y})
}
