package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	TileSpecialFloor // landing zone / craft hull floor, plays like floor
)

// Tile is one map cell. Tiles never change during a mission.
type Tile struct {
	Kind     TileKind
	Walkable bool
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true}
}

// MakeSpecialFloor returns a marked floor tile.
func MakeSpecialFloor() Tile {
	return Tile{Kind: TileSpecialFloor, Walkable: true}
}

// Transparent reports whether sight passes through the tile.
func (t Tile) Transparent() bool {
	return t.Kind != TileWall
}
