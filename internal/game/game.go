package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguewarts/internal/config"
	"github.com/samdwyer/roguewarts/internal/entity"
	"github.com/samdwyer/roguewarts/internal/gamedata"
	"github.com/samdwyer/roguewarts/internal/level"
	"github.com/samdwyer/roguewarts/internal/logger"
	"github.com/samdwyer/roguewarts/internal/telemetry"
	"github.com/samdwyer/roguewarts/internal/ui"
	"github.com/samdwyer/roguewarts/internal/world"
)

// PlayerName is the name given to the player's character.
const PlayerName = "hero"

type delta struct{ dx, dy int }

var moveKeys = map[tcell.Key]delta{
	tcell.KeyUp:    {0, -1},
	tcell.KeyDown:  {0, 1},
	tcell.KeyLeft:  {-1, 0},
	tcell.KeyRight: {1, 0},
}

var moveRunes = map[rune]delta{
	'h': {-1, 0},
	'j': {0, 1},
	'k': {0, -1},
	'l': {1, 0},
	'y': {-1, -1},
	'u': {1, -1},
	'b': {-1, 1},
	'n': {1, 1},
}

// Game holds the entire game state.
type Game struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	world    *level.Graph
	player   *entity.Player
	messages *MessageLog
	state    State
	turns    int
}

// New creates a game drawing on the real terminal.
func New(cfg *config.Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := NewWithScreen(cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game drawing on screen.
func NewWithScreen(cfg *config.Config, screen *ui.Screen) (*Game, error) {
	messages, err := NewMessageLog(cfg.Language)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		messages: messages,
		state:    StatePlaying,
	}, nil
}

// Init builds the world and puts the player on the entry level.
func (g *Game) Init(ctx context.Context) error {
	ctx, span := telemetry.Tracer("game").Start(ctx, "game.init")
	defer span.End()

	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return fmt.Errorf("load monsters: %w", err)
	}

	g.world, err = level.NewGraph(ctx, graphOptions(g.cfg, monsters))
	if err != nil {
		return err
	}
	g.player, err = g.world.NewGame(ctx, PlayerName)
	if err != nil {
		return err
	}
	g.messages.Add("WELCOME", g.player.Name)

	span.SetAttributes(
		attribute.Int64("world.seed", g.world.Seed),
		attribute.Int("player.start_x", g.player.X),
		attribute.Int("player.start_y", g.player.Y),
	)
	logger.Info("game started", "seed", g.world.Seed, "level", g.Level().Name)
	return nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	if g.world == nil {
		if err := g.Init(ctx); err != nil {
			return err
		}
	}

	for g.state == StatePlaying {
		g.Render()

		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventKey:
			g.HandleKey(ctx, ev)
		case *tcell.EventResize:
			g.screen.Sync()
		case nil:
			// Screen finalized.
			return nil
		}
	}

	logger.Info("game over", "turns", g.turns)
	return nil
}

// Render draws the player's level and the status line.
func (g *Game) Render() {
	g.renderer.Render(g.Level(), g.player, g.status())
}

func (g *Game) status() string {
	lvl := g.Level()
	line := g.messages.T("STATUS", lvl.Name, lvl.ID, g.player.X, g.player.Y)
	if msg := g.messages.Last(); msg != "" {
		line += "  " + msg
	}
	return line
}

// HandleKey applies one key press.
func (g *Game) HandleKey(ctx context.Context, ev *tcell.EventKey) TurnResult {
	result := g.dispatch(ctx, ev)
	switch result {
	case TookTurn:
		g.turns++
	case Exit:
		g.state = StateQuit
	}
	return result
}

func (g *Game) dispatch(ctx context.Context, ev *tcell.EventKey) TurnResult {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Exit
	case tcell.KeyRune:
		r := ev.Rune()
		if d, ok := moveRunes[r]; ok {
			return g.tryMove(d.dx, d.dy)
		}
		switch r {
		case 'q', 'Q':
			return Exit
		case '<':
			return g.takeStairs(ctx, true)
		case '>':
			return g.takeStairs(ctx, false)
		case 'o':
			return g.useDoor(true)
		case 'c':
			return g.useDoor(false)
		}
	default:
		if d, ok := moveKeys[ev.Key()]; ok {
			return g.tryMove(d.dx, d.dy)
		}
	}
	return NoTurn
}

// tryMove attempts to move the player by the given delta.
func (g *Game) tryMove(dx, dy int) TurnResult {
	switch g.player.Move(dx, dy) {
	case entity.MoveOK:
		return TookTurn
	case entity.MoveBlocked:
		if e := g.Level().EntityAt(g.player.X+dx, g.player.Y+dy); e != nil && e.BlocksMovement {
			g.messages.Add("BLOCKED_BY", e.Name)
		}
	}
	return NoTurn
}

// takeStairs travels to the nearest connected level above or below.
func (g *Game) takeStairs(ctx context.Context, up bool) TurnResult {
	lvl := g.Level()
	kind, err := lvl.Map().Kind(g.player.X, g.player.Y)
	if err != nil || kind.Key() != world.TileStairs {
		g.messages.Add("NOT_ON_STAIRS")
		return NoTurn
	}

	neighbours, err := g.world.Neighbors(lvl.Name)
	if err != nil {
		logger.Error("level missing from world", "level", lvl.Name, "error", err)
		return NoTurn
	}
	var target *level.Level
	for _, n := range neighbours {
		switch {
		case up && n.ID > lvl.ID && (target == nil || n.ID < target.ID):
			target = n
		case !up && n.ID < lvl.ID && (target == nil || n.ID > target.ID):
			target = n
		}
	}
	if target == nil {
		if up {
			g.messages.Add("NO_WAY_UP")
		} else {
			g.messages.Add("NO_WAY_DOWN")
		}
		return NoTurn
	}

	if err := g.world.Travel(ctx, g.player, target.Name); err != nil {
		switch {
		case errors.Is(err, level.ErrStairsBlocked):
			g.messages.Add("STAIRS_BLOCKED")
		case !errors.Is(err, level.ErrInvalidLevelTransition):
			logger.Error("travel failed", "to", target.Name, "error", err)
		}
		return NoTurn
	}
	g.messages.Add("ARRIVED", target.Name)
	return TookTurn
}

// useDoor opens or closes the first suitable door next to the player.
// A door with something standing in it stays open.
func (g *Game) useDoor(open bool) TurnResult {
	lvl := g.Level()
	m := lvl.Map()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := g.player.X+dx, g.player.Y+dy
			var err error
			if open {
				err = m.OpenDoor(x, y)
			} else if lvl.EntityAt(x, y) == nil {
				err = m.CloseDoor(x, y)
			} else {
				continue
			}
			if err != nil {
				continue
			}
			_ = g.player.UpdateFOV()
			if open {
				g.messages.Add("DOOR_OPENED")
			} else {
				g.messages.Add("DOOR_CLOSED")
			}
			return TookTurn
		}
	}
	verb := "close"
	if open {
		verb = "open"
	}
	g.messages.Add("NO_DOOR", g.messages.T(verb))
	return NoTurn
}

// Level returns the level the player is on.
func (g *Game) Level() *level.Level {
	lvl, _ := g.player.Level.(*level.Level)
	return lvl
}

// Player returns the player's character.
func (g *Game) Player() *entity.Player { return g.player }

// World returns the level graph.
func (g *Game) World() *level.Graph { return g.world }

// Messages returns the message log.
func (g *Game) Messages() *MessageLog { return g.messages }

// State returns the loop state.
func (g *Game) State() State { return g.state }

// Turns returns how many turns have passed.
func (g *Game) Turns() int { return g.turns }

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
