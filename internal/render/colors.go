package render

import "squad-tactics/internal/gamemap"

// TileSet holds the glyphs used to draw one battlefield's terrain.
// Emoji carry their own colors, so remembered tiles get distinct glyphs
// instead of a dimmed foreground.
type TileSet struct {
	Wall     string
	Floor    string
	Special  string
	DimWall  string
	DimFloor string
}

// TileThemes are the terrain looks a mission can be drawn with.
var TileThemes = map[string]TileSet{
	"farmland": {
		Wall:     "🌳",
		Floor:    "🟫",
		Special:  "🟨",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
	"urban": {
		Wall:     "🧱",
		Floor:    "⬛",
		Special:  "🟨",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
	"crash": {
		Wall:     "🪨",
		Floor:    "🟫",
		Special:  "🟪",
		DimWall:  "🌑",
		DimFloor: "🔲",
	},
}

// DefaultTheme is used when a theme name is unknown.
const DefaultTheme = "crash"

// Theme looks up a tile set by name, falling back to DefaultTheme.
func Theme(name string) TileSet {
	if t, ok := TileThemes[name]; ok {
		return t
	}
	return TileThemes[DefaultTheme]
}

// Glyph picks the glyph for a tile seen now (visible) or only remembered.
func (t TileSet) Glyph(kind gamemap.TileKind, visible bool) string {
	if !visible {
		if kind == gamemap.TileWall {
			return t.DimWall
		}
		return t.DimFloor
	}
	switch kind {
	case gamemap.TileWall:
		return t.Wall
	case gamemap.TileSpecialFloor:
		return t.Special
	}
	return t.Floor
}
