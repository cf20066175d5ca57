package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguewarts/internal/entity"
	"github.com/samdwyer/roguewarts/internal/level"
)

// statusLines is how many rows at the bottom are kept for text.
const statusLines = 1

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Camera returns the first map coordinate shown on an axis of length view
// so that center sits mid-screen without showing past the map edge.
func Camera(center, view, size int) int {
	if size <= view {
		return 0
	}
	off := center - view/2
	if off < 0 {
		return 0
	}
	if off > size-view {
		return size - view
	}
	return off
}

// Render draws the part of lvl around p, then the status line.
// Cells p sees are drawn in full colour, explored cells dimmed and the rest
// left blank. Entities only show up where p can see them.
func (r *Renderer) Render(lvl *level.Level, p *entity.Player, status string) {
	r.screen.Clear()

	w, h := r.screen.Size()
	viewH := max(h-statusLines, 0)
	m := lvl.Map()
	offX := Camera(p.X, w, m.Width)
	offY := Camera(p.Y, viewH, m.Height)

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < w; sx++ {
			mx, my := sx+offX, sy+offY
			kind, err := m.Kind(mx, my)
			if err != nil {
				continue
			}
			var style tcell.Style
			switch {
			case p.Sees(mx, my):
				style = tcell.StyleDefault.Foreground(kind.Color())
			case m.IsExplored(mx, my):
				style = tcell.StyleDefault.Foreground(kind.DimColor())
			default:
				continue
			}
			r.screen.SetContent(sx, sy, kind.Glyph(), style)
		}
	}

	for _, e := range lvl.Entities() {
		if e.ID == p.ID || !p.Sees(e.X, e.Y) {
			continue
		}
		r.drawEntity(e, offX, offY, w, viewH, tcell.StyleDefault.Foreground(e.Color))
	}
	r.drawEntity(&p.Entity, offX, offY, w, viewH, tcell.StyleDefault.Foreground(p.Color).Bold(true))

	if h > 0 {
		r.RenderMessage(status, h-1)
	}
	r.screen.Show()
}

func (r *Renderer) drawEntity(e *entity.Entity, offX, offY, w, h int, style tcell.Style) {
	sx, sy := e.X-offX, e.Y-offY
	if sx < 0 || sy < 0 || sx >= w || sy >= h {
		return
	}
	r.screen.SetContent(sx, sy, e.Glyph, style)
}

// RenderMessage displays a message on row y, cut at the screen edge.
func (r *Renderer) RenderMessage(msg string, y int) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
