package level

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguewarts/internal/entity"
	"github.com/samdwyer/roguewarts/internal/gamedata"
	"github.com/samdwyer/roguewarts/internal/logger"
	"github.com/samdwyer/roguewarts/internal/telemetry"
	"github.com/samdwyer/roguewarts/internal/world"
)

// EntryLevel is where every new game starts.
const EntryLevel = "init"

// GraphOptions configures world construction.
type GraphOptions struct {
	Seed     int64 // 0 derives the seed from the wall clock
	Level    Options
	FOV      entity.FOV // a zero Radius means DefaultFOVRadius
	Monsters *gamedata.MonsterRegistry // nil leaves the levels empty
}

// Graph is the world: named levels and the stairs between them.
type Graph struct {
	Seed    int64
	Players []*entity.Player

	rng    *world.Rand
	fov    entity.FOV
	levels map[string][]*Level // name -> [level, neighbours...]
	order  []string
}

// levelPlan is one level of the starting world.
type levelPlan struct {
	depth  int
	name   string
	branch Branch
}

var startingLevels = []levelPlan{
	{0, EntryLevel, Dungeons},
	{1, "1st floor", Classrooms},
	{-1, "1st dung", Dungeons},
}

// NewGraph builds the starting world. The entry level links to every other
// level and each of those links back only to the entry level. All levels
// draw from one random stream in build order, so a seed reproduces the world.
func NewGraph(ctx context.Context, opts GraphOptions) (*Graph, error) {
	ctx, span := telemetry.Tracer("level").Start(ctx, "world.init")
	defer span.End()

	startTime := time.Now()
	rng := world.NewRand(opts.Seed)
	logger.Info("building world", "seed", rng.Seed())

	fov := opts.FOV
	if fov.Radius == 0 {
		fov.Radius = entity.DefaultFOVRadius
	}

	g := &Graph{
		Seed:   rng.Seed(),
		rng:    rng,
		fov:    fov,
		levels: make(map[string][]*Level),
	}

	built := make([]*Level, 0, len(startingLevels))
	for _, plan := range startingLevels {
		lvl, err := New(ctx, plan.depth, plan.name, plan.branch, rng, opts.Level)
		if err != nil {
			return nil, telemetry.Fail(span, fmt.Errorf("build world: %w", err))
		}
		built = append(built, lvl)
		g.order = append(g.order, lvl.Name)
	}

	entry := built[0]
	g.levels[entry.Name] = built
	for _, lvl := range built[1:] {
		g.levels[lvl.Name] = []*Level{lvl, entry}
	}

	if opts.Monsters != nil {
		for _, lvl := range built {
			lvl.PlaceMonsters(ctx, opts.Monsters, rng, MaxRoomMonsters)
		}
	}

	span.SetAttributes(
		attribute.Int64("world.seed", g.Seed),
		attribute.Int("world.levels", len(built)),
		attribute.Int64("world.init_ms", time.Since(startTime).Milliseconds()),
	)
	return g, nil
}

// Levels returns the level names in build order.
func (g *Graph) Levels() []string {
	return slices.Clone(g.order)
}

// Level returns the level called name.
func (g *Graph) Level(name string) (*Level, error) {
	list, ok := g.levels[name]
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("%w: no level %q", ErrInvalidLevelTransition, name)
	}
	return list[0], nil
}

// Neighbors returns the levels reachable by stairs from the level called name.
func (g *Graph) Neighbors(name string) ([]*Level, error) {
	list, ok := g.levels[name]
	if !ok || len(list) == 0 {
		return nil, fmt.Errorf("%w: no level %q", ErrInvalidLevelTransition, name)
	}
	return slices.Clone(list[1:]), nil
}

// Connected reports whether every level can be reached from the entry level.
func (g *Graph) Connected() bool {
	if _, ok := g.levels[EntryLevel]; !ok {
		return false
	}
	seen := map[string]bool{EntryLevel: true}
	queue := []string{EntryLevel}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		for _, next := range g.levels[name][1:] {
			if !seen[next.Name] {
				seen[next.Name] = true
				queue = append(queue, next.Name)
			}
		}
	}
	return len(seen) == len(g.levels)
}

// NewGame creates a player called name on the entry level's start stairs.
func (g *Graph) NewGame(ctx context.Context, name string) (*entity.Player, error) {
	_, span := telemetry.Tracer("level").Start(ctx, "world.new_game")
	defer span.End()

	entry, err := g.Level(EntryLevel)
	if err != nil {
		return nil, err
	}
	stairs, err := entry.Map().StartStairs()
	if err != nil {
		return nil, err
	}

	fov := g.fov
	fov.Visible = world.NewPointSet()
	p := entity.NewPlayer(name, fov)
	p.X, p.Y = stairs.X, stairs.Y
	entry.AddPlayer(p)
	if err := p.UpdateFOV(); err != nil {
		return nil, err
	}
	g.Players = append(g.Players, p)

	span.SetAttributes(
		attribute.String("player.name", name),
		attribute.Int("player.x", p.X),
		attribute.Int("player.y", p.Y),
	)
	return p, nil
}

// Travel takes p by stairs to the level called name. p must stand on a
// stairs tile and name must be a neighbour of p's level. Travel fails with
// ErrStairsBlocked when a blocking entity stands on the target's start
// stairs. On arrival p is on those stairs and its view is recomputed.
func (g *Graph) Travel(ctx context.Context, p *entity.Player, name string) error {
	_, span := telemetry.Tracer("level").Start(ctx, "level.travel")
	defer span.End()

	from, ok := p.Level.(*Level)
	if !ok || from == nil {
		return fmt.Errorf("%w: %s is not on a level", ErrInvalidLevelTransition, p.Name)
	}
	kind, err := from.Map().Kind(p.X, p.Y)
	if err != nil || kind.Key() != world.TileStairs {
		return fmt.Errorf("%w: %s is not on stairs", ErrInvalidLevelTransition, p.Name)
	}

	neighbours, err := g.Neighbors(from.Name)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(neighbours, func(l *Level) bool { return l.Name == name })
	if idx < 0 {
		return telemetry.Fail(span, fmt.Errorf("%w: %q does not lead to %q", ErrInvalidLevelTransition, from.Name, name))
	}
	to := neighbours[idx]

	stairs, err := to.Map().StartStairs()
	if err != nil {
		return err
	}
	if to.IsBlocked(stairs.X, stairs.Y) {
		return telemetry.Fail(span, fmt.Errorf("%w: %w on %q", ErrInvalidLevelTransition, ErrStairsBlocked, to.Name))
	}

	from.Remove(&p.Entity)
	p.X, p.Y = stairs.X, stairs.Y
	to.AddPlayer(p)
	if err := p.UpdateFOV(); err != nil {
		return err
	}

	span.SetAttributes(
		attribute.String("level.from", from.Name),
		attribute.String("level.to", to.Name),
	)
	logger.Debug("level travel", "player", p.Name, "from", from.Name, "to", to.Name)
	return nil
}
