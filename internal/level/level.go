package level

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguewarts/internal/entity"
	"github.com/samdwyer/roguewarts/internal/gamedata"
	"github.com/samdwyer/roguewarts/internal/logger"
	"github.com/samdwyer/roguewarts/internal/telemetry"
	"github.com/samdwyer/roguewarts/internal/world"
)

// MaxRoomMonsters is how many monsters PlaceMonsters puts in one room at most.
const MaxRoomMonsters = 3

// Options controls how levels are built.
type Options struct {
	Width  int  // map width, 0 for world.DefaultWidth
	Height int  // map height, 0 for world.DefaultHeight
	Debug  bool // build every level as a standard dungeon
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = world.DefaultWidth
	}
	if h <= 0 {
		h = world.DefaultHeight
	}
	return w, h
}

// Level is one floor of the world: a map plus whatever stands on it.
type Level struct {
	ID     int // depth; negative below ground
	Name   string
	Branch Branch

	m        *world.Map
	entities []*entity.Entity
	ids      mapset.Set[uuid.UUID]
	players  map[uuid.UUID]*entity.Player
}

// New builds a level and its map. A generation failure is returned as is
// and no level is created.
func New(ctx context.Context, id int, name string, branch Branch, rng *world.Rand, opts Options) (*Level, error) {
	arch, err := SelectArchetype(branch, id, opts.Debug)
	if err != nil {
		return nil, err
	}

	w, h := opts.size()
	m, err := world.NewMap(ctx, w, h, arch, rng)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}

	logger.Debug("level built", "level", name, "depth", id, "branch", branch.Name, "archetype", arch.Name())

	return &Level{
		ID:      id,
		Name:    name,
		Branch:  branch,
		m:       m,
		ids:     mapset.New[uuid.UUID](),
		players: make(map[uuid.UUID]*entity.Player),
	}, nil
}

// Map returns the level's tile map.
func (l *Level) Map() *world.Map {
	return l.m
}

// IsBlocked reports whether (x, y) can not be entered: off the map, a tile
// that blocks passage, or a blocking entity standing there.
func (l *Level) IsBlocked(x, y int) bool {
	if l.m.BlocksPassage(x, y) {
		return true
	}
	for _, e := range l.entities {
		if e.BlocksMovement && e.X == x && e.Y == y {
			return true
		}
	}
	return false
}

// Add puts e on the level. Adding an entity twice is a no-op.
func (l *Level) Add(e *entity.Entity) {
	if l.ids.Has(e.ID) {
		return
	}
	l.ids.Put(e.ID)
	l.entities = append(l.entities, e)
	e.Level = l
}

// AddPlayer puts p on the level and records it as present.
func (l *Level) AddPlayer(p *entity.Player) {
	l.Add(&p.Entity)
	l.players[p.ID] = p
}

// Remove takes e off the level. Unknown entities are ignored.
func (l *Level) Remove(e *entity.Entity) {
	if !l.ids.Has(e.ID) {
		return
	}
	l.ids.Remove(e.ID)
	l.entities = slices.DeleteFunc(l.entities, func(o *entity.Entity) bool { return o.ID == e.ID })
	delete(l.players, e.ID)
	if e.Level == l {
		e.Level = nil
	}
}

// Entities returns everything on the level in the order it arrived.
func (l *Level) Entities() []*entity.Entity {
	return slices.Clone(l.entities)
}

// Players returns the players present, in arrival order.
func (l *Level) Players() []*entity.Player {
	var players []*entity.Player
	for _, e := range l.entities {
		if p, ok := l.players[e.ID]; ok {
			players = append(players, p)
		}
	}
	return players
}

// EntityAt returns the first entity at (x, y), or nil.
func (l *Level) EntityAt(x, y int) *entity.Entity {
	for _, e := range l.entities {
		if e.X == x && e.Y == y {
			return e
		}
	}
	return nil
}

// PlaceMonsters spawns up to maxPerRoom monsters in every room, picked by
// weight from registry and put on free floor cells. The start stairs stay
// clear. It returns the monsters placed.
func (l *Level) PlaceMonsters(ctx context.Context, registry *gamedata.MonsterRegistry, rng *world.Rand, maxPerRoom int) []*entity.Monster {
	_, span := telemetry.Tracer("level").Start(ctx, "level.place_monsters")
	defer span.End()

	stairs, stairsErr := l.m.StartStairs()
	var placed []*entity.Monster

	for _, room := range l.m.Rooms {
		count := rng.Int(0, maxPerRoom)
		for range count {
			x := rng.Int(room.X1+1, room.X2-1)
			y := rng.Int(room.Y1+1, room.Y2-1)

			if stairsErr == nil && stairs == (world.Point{X: x, Y: y}) {
				continue
			}
			if l.IsBlocked(x, y) || l.EntityAt(x, y) != nil {
				continue
			}

			def := registry.SpawnRandom(rng)
			if def == nil {
				return placed
			}
			monster := entity.NewMonster(def, x, y)
			l.Add(&monster.Entity)
			placed = append(placed, monster)
		}
	}

	span.SetAttributes(
		attribute.String("level.name", l.Name),
		attribute.Int("level.monsters", len(placed)),
	)
	logger.Debug("monsters placed", "level", l.Name, "count", len(placed))
	return placed
}
