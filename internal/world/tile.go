// Package world provides tile maps, procedural level generation and field of view.
package world

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguewarts/internal/gamedata"
)

// TileKey names a tile kind in the catalog.
type TileKey string

// Tile kinds the generators place themselves.
const (
	TileAir        TileKey = "air"
	TileRock       TileKey = "rock"
	TileWall       TileKey = "wall"
	TileTree       TileKey = "tree"
	TileWindow     TileKey = "window"
	TileFloor      TileKey = "floor"
	TileStall      TileKey = "stall"
	TileDesk       TileKey = "desk"
	TileDoorOpen   TileKey = "door_open"
	TileDoorClosed TileKey = "door_closed"
	TileWater      TileKey = "water"
	TileStairs     TileKey = "stairs"
	TileUnknown    TileKey = "unknown"
)

// TileKind is an immutable tile type. Kinds are comparable with ==.
type TileKind struct {
	key           TileKey
	name          string
	glyph         rune
	color         tcell.Color
	dimColor      tcell.Color
	blocksPassage bool
	blocksSight   bool
}

// Key returns the catalog key.
func (k TileKind) Key() TileKey { return k.key }

// Name returns the display name.
func (k TileKind) Name() string { return k.name }

// Glyph returns the display character.
func (k TileKind) Glyph() rune { return k.glyph }

// Color returns the color used while the tile is in view.
func (k TileKind) Color() tcell.Color { return k.color }

// DimColor returns the color for remembered tiles, or tcell.ColorDefault
// if the kind has none.
func (k TileKind) DimColor() tcell.Color { return k.dimColor }

// BlocksPassage reports whether actors may not enter the tile.
func (k TileKind) BlocksPassage() bool { return k.blocksPassage }

// BlocksSight reports whether the tile stops line of sight.
func (k TileKind) BlocksSight() bool { return k.blocksSight }

// IsZero reports whether k is the zero value rather than a catalog kind.
func (k TileKind) IsZero() bool { return k.key == "" }

// catalog is built once from the embedded tile data and never modified.
var catalog = sync.OnceValue(func() map[TileKey]TileKind {
	defs := gamedata.MustLoadTiles()
	kinds := make(map[TileKey]TileKind, len(defs))
	for i := range defs {
		def := &defs[i]
		kinds[TileKey(def.ID)] = TileKind{
			key:           TileKey(def.ID),
			name:          def.Name,
			glyph:         def.GlyphRune(),
			color:         def.TCellColor(),
			dimColor:      def.TCellDimColor(),
			blocksPassage: def.BlocksPassage,
			blocksSight:   def.BlocksSight,
		}
	}
	return kinds
})

// LookupTile returns the tile kind registered under key.
func LookupTile(key TileKey) (TileKind, error) {
	kind, ok := catalog()[key]
	if !ok {
		return TileKind{}, fmt.Errorf("%w: %q", ErrUnknownTileKind, key)
	}
	return kind, nil
}

// MustTile is LookupTile for keys named in code. It panics on unknown keys.
func MustTile(key TileKey) TileKind {
	kind, err := LookupTile(key)
	if err != nil {
		panic(err)
	}
	return kind
}

// TileKeys returns every registered key in sorted order.
func TileKeys() []TileKey {
	kinds := catalog()
	keys := make([]TileKey, 0, len(kinds))
	for k := range kinds {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Tile is the per-cell state of a map.
type Tile struct {
	Kind     TileKind
	Explored bool // shared by every observer
}
