package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// TileDef defines a kind of map tile loaded from JSON.
type TileDef struct {
	ID            string `json:"id"`            // Lookup key (e.g., "wall")
	Name          string `json:"name"`          // Display name (e.g., "closed door")
	Glyph         string `json:"glyph"`         // Single character for rendering
	Color         string `json:"color"`         // Hex color when in view
	DimColor      string `json:"dimColor"`      // Hex color when explored but out of view
	BlocksPassage bool   `json:"blocksPassage"` // Players and monsters cannot enter
	BlocksSight   bool   `json:"blocksSight"`   // Line of sight stops here
}

// GlyphRune returns the glyph as a rune for rendering.
func (t *TileDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(t.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// TCellColor returns the in-view color, white if the hex code is bad.
func (t *TileDef) TCellColor() tcell.Color {
	return ColorOr(t.Color, tcell.ColorWhite)
}

// TCellDimColor returns the out-of-view color. Tiles without one get
// ColorDefault so the renderer can dim the main color instead.
func (t *TileDef) TCellDimColor() tcell.Color {
	if t.DimColor == "" {
		return tcell.ColorDefault
	}
	return ColorOr(t.DimColor, tcell.ColorDefault)
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// Validate rejects empty and duplicate tile ids.
func (f *TilesFile) Validate() error {
	if len(f.Tiles) == 0 {
		return errors.New("no tiles defined")
	}
	seen := make(map[string]bool, len(f.Tiles))
	for _, t := range f.Tiles {
		if t.ID == "" {
			return errors.New("tile with empty id")
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate tile id %q", t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// LoadTiles loads tile definitions from the embedded tiles.json file.
func LoadTiles() ([]TileDef, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}

// MustLoadTiles loads tile definitions, panicking on error.
func MustLoadTiles() []TileDef {
	tiles, err := LoadTiles()
	if err != nil {
		panic(err)
	}
	return tiles
}
