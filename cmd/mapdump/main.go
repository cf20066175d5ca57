// Command mapdump generates a single level and prints it to the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/samdwyer/roguewarts/internal/config"
	"github.com/samdwyer/roguewarts/internal/entity"
	"github.com/samdwyer/roguewarts/internal/gamedata"
	"github.com/samdwyer/roguewarts/internal/level"
	"github.com/samdwyer/roguewarts/internal/world"
)

const defaultTermWidth = 80

func main() {
	seed := flag.Int64("seed", 0, "Generation seed (0 for a random one)")
	branchName := flag.String("branch", level.Dungeons.Name, "Branch: classrooms, dungeons, woods, from_file")
	depth := flag.Int("depth", 0, "Level depth; negative is below ground")
	width := flag.Int("width", world.DefaultWidth, "Map width")
	height := flag.Int("height", world.DefaultHeight, "Map height")
	debug := flag.Bool("debug", false, "Force the standard dungeon layout")
	monsters := flag.Bool("monsters", false, "Place monsters")
	full := flag.Bool("full", false, "Print the whole width instead of cropping to the terminal")
	mono := flag.Bool("mono", false, "Disable colour")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Note: .env file not loaded: %v\n", err)
	}
	if *mono {
		color.Disable()
	}

	branch, err := level.BranchByName(*branchName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()
	rng := world.NewRand(*seed)
	lvl, err := level.New(ctx, *depth, fmt.Sprintf("%s %d", branch.Name, *depth), branch, rng,
		level.Options{Width: *width, Height: *height, Debug: *debug})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating level: %v\n", err)
		os.Exit(1)
	}
	if *monsters {
		lvl.PlaceMonsters(ctx, gamedata.MustLoadMonsterRegistry(), rng, level.MaxRoomMonsters)
	}

	cols := lvl.Map().Width
	if !*full {
		cols = min(cols, terminalWidth())
	}

	m := lvl.Map()
	fmt.Printf("seed %d  %s  archetype %s  %dx%d  rooms %d\n",
		rng.Seed(), lvl.Name, m.Archetype.Name(), m.Width, m.Height, len(m.Rooms))
	fmt.Print(render(lvl, cols))
	printLegend(m)
}

// terminalWidth returns the width of stdout, or a default when it is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultTermWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultTermWidth
	}
	return w
}

// render draws the first cols columns of lvl with entities on top.
func render(lvl *level.Level, cols int) string {
	m := lvl.Map()
	occupants := make(map[world.Point]*entity.Entity)
	for _, e := range lvl.Entities() {
		occupants[world.Point{X: e.X, Y: e.Y}] = e
	}

	var sb strings.Builder
	for y := 0; y < m.Height; y++ {
		for x := 0; x < cols; x++ {
			if e, ok := occupants[world.Point{X: x, Y: y}]; ok {
				sb.WriteString(paint(e.Color).Sprint(string(e.Glyph)))
				continue
			}
			kind, err := m.Kind(x, y)
			if err != nil {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteString(paint(kind.Color()).Sprint(string(kind.Glyph())))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func paint(c tcell.Color) color.RGBColor {
	r, g, b := c.RGB()
	if r < 0 {
		return color.RGB(255, 255, 255)
	}
	return color.RGB(uint8(r), uint8(g), uint8(b))
}

func printLegend(m *world.Map) {
	counts := make(map[world.TileKey]int)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if kind, err := m.Kind(x, y); err == nil {
				counts[kind.Key()]++
			}
		}
	}
	for _, key := range world.TileKeys() {
		n := counts[key]
		if n == 0 {
			continue
		}
		kind := world.MustTile(key)
		fmt.Printf("%s %-12s %d\n", paint(kind.Color()).Sprint(string(kind.Glyph())), kind.Name(), n)
	}
}
