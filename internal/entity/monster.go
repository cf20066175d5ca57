package entity

import (
	"github.com/samdwyer/roguewarts/internal/gamedata"
)

// Monster is a creature spawned from a monster definition. Monsters do not act yet.
type Monster struct {
	Entity
	Def  *gamedata.MonsterDef
	Dead bool
}

// NewMonster creates a monster at the given position, not yet on a level.
func NewMonster(def *gamedata.MonsterDef, x, y int) *Monster {
	m := &Monster{
		Entity: *New(def.Name, def.GlyphRune(), def.TCellColor(), def.Blocks),
		Def:    def,
	}
	m.X, m.Y = x, y
	return m
}

// Kill marks the monster dead and takes it off its level.
func (m *Monster) Kill() {
	if m.Dead {
		return
	}
	m.Dead = true
	if m.Level != nil {
		m.Level.Remove(&m.Entity)
	}
}
