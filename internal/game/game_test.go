package game

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguewarts/internal/config"
	"github.com/samdwyer/roguewarts/internal/entity"
	"github.com/samdwyer/roguewarts/internal/level"
	"github.com/samdwyer/roguewarts/internal/ui"
	"github.com/samdwyer/roguewarts/internal/world"
)

func newTestGame(t *testing.T, lang string) *Game {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Seed = 2024
	cfg.Map.Width, cfg.Map.Height = 80, 50
	cfg.Language = lang

	screen, err := ui.NewScreenFrom(tcell.NewSimulationScreen("UTF-8"))
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewWithScreen(cfg, screen)
	if err != nil {
		t.Fatalf("NewWithScreen error: %v", err)
	}
	t.Cleanup(g.Close)
	if err := g.Init(context.Background()); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	return g
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestInitPlacesPlayerOnStairs(t *testing.T) {
	g := newTestGame(t, "en")

	if g.Level().Name != level.EntryLevel {
		t.Errorf("player starts on %q", g.Level().Name)
	}
	stairs, _ := g.Level().Map().StartStairs()
	if g.Player().X != stairs.X || g.Player().Y != stairs.Y {
		t.Errorf("player at (%d,%d), stairs at %v", g.Player().X, g.Player().Y, stairs)
	}
	if g.Messages().Last() != "Welcome to Roguewarts, hero." {
		t.Errorf("welcome = %q", g.Messages().Last())
	}
	if g.World().Seed != 2024 {
		t.Errorf("seed = %d", g.World().Seed)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
	} {
		g := newTestGame(t, "en")
		if got := g.HandleKey(context.Background(), ev); got != Exit {
			t.Errorf("HandleKey = %v, want exit", got)
		}
		if g.State() != StateQuit {
			t.Errorf("state = %v", g.State())
		}
	}
}

func TestMoveTakesTurn(t *testing.T) {
	g := newTestGame(t, "en")
	p := g.Player()

	for r, d := range moveRunes {
		if g.Level().IsBlocked(p.X+d.dx, p.Y+d.dy) {
			continue
		}
		x, y := p.X, p.Y
		if got := g.HandleKey(context.Background(), key(r)); got != TookTurn {
			t.Fatalf("move %q = %v", r, got)
		}
		if p.X != x+d.dx || p.Y != y+d.dy {
			t.Errorf("player at (%d,%d) after %q", p.X, p.Y, r)
		}
		if g.Turns() != 1 {
			t.Errorf("turns = %d", g.Turns())
		}
		return
	}
	t.Skip("no free cell around the start")
}

func TestArrowKeysMove(t *testing.T) {
	g := newTestGame(t, "en")
	p := g.Player()
	for k, d := range moveKeys {
		if g.Level().IsBlocked(p.X+d.dx, p.Y+d.dy) {
			continue
		}
		if got := g.HandleKey(context.Background(), tcell.NewEventKey(k, 0, tcell.ModNone)); got != TookTurn {
			t.Errorf("arrow move = %v", got)
		}
		return
	}
	t.Skip("no free orthogonal cell around the start")
}

func TestMoveIntoWallTakesNoTurn(t *testing.T) {
	g := newTestGame(t, "en")
	p := g.Player()
	m := g.Level().Map()

	for r, d := range moveRunes {
		if !m.BlocksPassage(p.X+d.dx, p.Y+d.dy) {
			continue
		}
		x, y := p.X, p.Y
		if got := g.HandleKey(context.Background(), key(r)); got != NoTurn {
			t.Errorf("move into wall = %v", got)
		}
		if p.X != x || p.Y != y || g.Turns() != 0 {
			t.Error("blocked move changed the game")
		}
		return
	}
	t.Skip("start is surrounded by open floor")
}

func TestStairsTravel(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, "en")

	if got := g.HandleKey(ctx, key('>')); got != TookTurn {
		t.Fatalf("'>' from init = %v", got)
	}
	if g.Level().Name != "1st dung" {
		t.Fatalf("went down to %q", g.Level().Name)
	}
	if g.Messages().Last() != "You arrive at 1st dung." {
		t.Errorf("message = %q", g.Messages().Last())
	}

	if got := g.HandleKey(ctx, key('>')); got != NoTurn {
		t.Errorf("'>' from the bottom = %v", got)
	}
	if g.Messages().Last() != "These stairs do not lead down." {
		t.Errorf("message = %q", g.Messages().Last())
	}

	if got := g.HandleKey(ctx, key('<')); got != TookTurn || g.Level().Name != level.EntryLevel {
		t.Fatalf("'<' back = %v on %q", got, g.Level().Name)
	}
	if got := g.HandleKey(ctx, key('<')); got != TookTurn || g.Level().Name != "1st floor" {
		t.Fatalf("'<' up = %v on %q", got, g.Level().Name)
	}
	if g.Turns() != 3 {
		t.Errorf("turns = %d", g.Turns())
	}
}

func TestStairsBlockedAtArrival(t *testing.T) {
	g := newTestGame(t, "en")
	dung, err := g.World().Level("1st dung")
	if err != nil {
		t.Fatal(err)
	}
	stairs, _ := dung.Map().StartStairs()
	troll := entity.New("troll", 'T', tcell.ColorGreen, true)
	troll.X, troll.Y = stairs.X, stairs.Y
	dung.Add(troll)

	if got := g.HandleKey(context.Background(), key('>')); got != NoTurn {
		t.Errorf("'>' onto a troll = %v", got)
	}
	if g.Messages().Last() != "Something blocks the way at the other end." {
		t.Errorf("message = %q", g.Messages().Last())
	}
	if g.Level().Name != level.EntryLevel || g.Turns() != 0 {
		t.Error("blocked travel changed the game")
	}
}

func TestStairsNeedStairs(t *testing.T) {
	g := newTestGame(t, "en")
	p := g.Player()

	moved := false
	for r, d := range moveRunes {
		if !g.Level().IsBlocked(p.X+d.dx, p.Y+d.dy) {
			g.HandleKey(context.Background(), key(r))
			moved = true
			break
		}
	}
	if !moved {
		t.Skip("no free cell around the start")
	}

	if got := g.HandleKey(context.Background(), key('>')); got != NoTurn {
		t.Errorf("'>' off the stairs = %v", got)
	}
	if g.Messages().Last() != "There are no stairs here." {
		t.Errorf("message = %q", g.Messages().Last())
	}
	if g.Level().Name != level.EntryLevel {
		t.Error("player left the level")
	}
}

func TestDoors(t *testing.T) {
	ctx := context.Background()
	g := newTestGame(t, "en")
	if got := g.HandleKey(ctx, key('<')); got != TookTurn {
		t.Fatalf("could not reach the classrooms: %v", got)
	}
	lvl := g.Level()
	m := lvl.Map()
	p := g.Player()

	// Stand next to the first closed door.
	var door world.Point
	placed := false
	for y := 0; y < m.Height && !placed; y++ {
		for x := 0; x < m.Width && !placed; x++ {
			kind, _ := m.Kind(x, y)
			if kind.Key() != world.TileDoorClosed {
				continue
			}
			for _, d := range moveRunes {
				nx, ny := x+d.dx, y+d.dy
				if !lvl.IsBlocked(nx, ny) {
					door = world.Point{X: x, Y: y}
					p.X, p.Y = nx, ny
					placed = true
					break
				}
			}
		}
	}
	if !placed {
		t.Fatal("classrooms have no reachable door")
	}

	if got := g.HandleKey(ctx, key('o')); got != TookTurn {
		t.Fatalf("open = %v", got)
	}
	if g.Messages().Last() != "You open the door." {
		t.Errorf("message = %q", g.Messages().Last())
	}

	if got := g.HandleKey(ctx, key('c')); got != TookTurn {
		t.Fatalf("close = %v", got)
	}
	for g.HandleKey(ctx, key('c')) == TookTurn {
	}
	if !strings.HasPrefix(g.Messages().Last(), "There is no door to close") {
		t.Errorf("message = %q", g.Messages().Last())
	}
	if kind, _ := m.Kind(door.X, door.Y); kind.Key() != world.TileDoorClosed {
		t.Errorf("door %v left %s", door, kind.Key())
	}
}

func TestSpanishMessages(t *testing.T) {
	g := newTestGame(t, "es")
	if g.Messages().Last() != "Bienvenido a Roguewarts, hero." {
		t.Errorf("welcome = %q", g.Messages().Last())
	}
	g.HandleKey(context.Background(), key('o'))
	if !strings.Contains(g.Messages().Last(), "abrir") {
		t.Errorf("message = %q", g.Messages().Last())
	}
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	log, err := NewMessageLog("tlh")
	if err != nil {
		t.Fatal(err)
	}
	if got := log.T("NOT_ON_STAIRS"); got != "There are no stairs here." {
		t.Errorf("T = %q", got)
	}
}

func TestMessageLogLimit(t *testing.T) {
	log, err := NewMessageLog("en")
	if err != nil {
		t.Fatal(err)
	}
	for range maxMessages + 10 {
		log.Add("DOOR_OPENED")
	}
	if log.Len() != maxMessages {
		t.Errorf("Len = %d", log.Len())
	}
}

func TestRenderStatus(t *testing.T) {
	g := newTestGame(t, "en")
	g.Render()
	if !strings.HasPrefix(g.status(), "init (depth 0)") {
		t.Errorf("status = %q", g.status())
	}
}

func TestStateStrings(t *testing.T) {
	if StatePlaying.String() != "playing" || StateQuit.String() != "quit" || State(9).String() != "unknown" {
		t.Error("State.String")
	}
	if NoTurn.String() != "no_turn" || TookTurn.String() != "took_turn" || Exit.String() != "exit" {
		t.Error("TurnResult.String")
	}
}
