// Package generate builds mission sites: BSP rooms joined by corridors,
// a landing zone for the squad and a crash site for the aliens.
package generate

import (
	"math/rand"

	"squad-tactics/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Config drives procedural generation for one mission site.
type Config struct {
	MapWidth, MapHeight int
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	CorridorStyle       CorridorStyle
	CoverChance         float64 // per room, chance of a wall pillar inside rooms of 5x5 or more
	Rand                *rand.Rand
}

// DefaultConfig is the site used when no scenario file is given.
func DefaultConfig(rng *rand.Rand) *Config {
	return &Config{
		MapWidth:      48,
		MapHeight:     28,
		MinLeafSize:   7,
		MaxLeafSize:   16,
		MinRoomSize:   4,
		RoomPadding:   1,
		CorridorStyle: CorridorLShaped,
		CoverChance:   0.5,
		Rand:          rng,
	}
}

// Site is a generated map with its two key rooms.
type Site struct {
	Map         *gamemap.GameMap
	LandingZone gamemap.Rect // first room, where soldiers deploy
	CrashSite   gamemap.Rect // last room, floored with SpecialFloor
}

type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

func (l *bspLeaf) leaf() bool { return l.left == nil && l.right == nil }

// split divides the leaf in two, returning false when it is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if !l.leaf() {
		return false
	}
	horizontal := cfg.Rand.Intn(2) == 0
	switch {
	case l.W > l.H && float64(l.W)/float64(l.H) >= 1.25:
		horizontal = false
	case l.H > l.W && float64(l.H)/float64(l.W) >= 1.25:
		horizontal = true
	}

	size := l.W
	if horizontal {
		size = l.H
	}
	lo, hi := cfg.MinLeafSize, size-cfg.MinLeafSize
	if size <= cfg.MinLeafSize*2 || lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if horizontal {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// carveRooms places one room in every terminal leaf.
func (l *bspLeaf) carveRooms(gmap *gamemap.GameMap, cfg *Config) {
	if !l.leaf() {
		if l.left != nil {
			l.left.carveRooms(gmap, cfg)
		}
		if l.right != nil {
			l.right.carveRooms(gmap, cfg)
		}
		return
	}
	pad, minSize := cfg.RoomPadding, cfg.MinRoomSize
	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)

	rw := min(minSize+cfg.Rand.Intn(max(1, availW-minSize+1)), l.W-2*pad)
	rh := min(minSize+cfg.Rand.Intn(max(1, availH-minSize+1)), l.H-2*pad)
	rw, rh = max(rw, 3), max(rh, 3)

	rx := max(l.X+pad+cfg.Rand.Intn(max(1, l.W-rw-2*pad+1)), 1)
	ry := max(l.Y+pad+cfg.Rand.Intn(max(1, l.H-rh-2*pad+1)), 1)
	// keep a one-tile wall border around the map
	if rx+rw >= gmap.Width {
		rw = gmap.Width - rx - 1
	}
	if ry+rh >= gmap.Height {
		rh = gmap.Height - ry - 1
	}
	if rw < 3 || rh < 3 {
		return
	}

	room := gamemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	gmap.Rooms = append(gmap.Rooms, room)
}

// anyRoom returns a room from this subtree, preferring the left side.
func (l *bspLeaf) anyRoom() *gamemap.Rect {
	if l.room != nil {
		return l.room
	}
	if l.left != nil {
		if r := l.left.anyRoom(); r != nil {
			return r
		}
	}
	if l.right != nil {
		return l.right.anyRoom()
	}
	return nil
}

// connect joins the two halves of every split with a corridor.
func (l *bspLeaf) connect(gmap *gamemap.GameMap, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connect(gmap, cfg)
	l.right.connect(gmap, cfg)

	a, b := l.left.anyRoom(), l.right.anyRoom()
	if a == nil || b == nil {
		return
	}
	ax, ay := a.Center()
	bx, by := b.Center()
	carveCorridor(gmap, ax, ay, bx, by, cfg)
}

// Generate builds a site. Soldiers land in the first room and the crash
// site is the last; with a single room both are the same rectangle.
func Generate(cfg *Config) *Site {
	gmap := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	root := &bspLeaf{W: cfg.MapWidth, H: cfg.MapHeight}

	leaves := []*bspLeaf{root}
	for grew := true; grew; {
		grew = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if !leaf.leaf() {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize || cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					grew = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.carveRooms(gmap, cfg)
	root.connect(gmap, cfg)

	site := &Site{Map: gmap}
	if len(gmap.Rooms) == 0 {
		// degenerate config: open a single room in the middle
		room := gamemap.Rect{X1: 1, Y1: 1, X2: cfg.MapWidth - 2, Y2: cfg.MapHeight - 2}
		for y := room.Y1; y <= room.Y2; y++ {
			for x := room.X1; x <= room.X2; x++ {
				gmap.Set(x, y, gamemap.MakeFloor())
			}
		}
		gmap.Rooms = append(gmap.Rooms, room)
	}
	site.LandingZone = gmap.Rooms[0]
	site.CrashSite = gmap.Rooms[len(gmap.Rooms)-1]

	if len(gmap.Rooms) > 1 {
		r := site.CrashSite
		for y := r.Y1; y <= r.Y2; y++ {
			for x := r.X1; x <= r.X2; x++ {
				gmap.Set(x, y, gamemap.MakeSpecialFloor())
			}
		}
	}
	placeCover(gmap, site, cfg)
	return site
}

// placeCover drops single wall pillars strictly inside larger rooms,
// away from room centres, so rooms stay connected around them.
func placeCover(gmap *gamemap.GameMap, site *Site, cfg *Config) {
	if cfg.CoverChance <= 0 {
		return
	}
	for _, r := range gmap.Rooms {
		if r == site.LandingZone || r.X2-r.X1 < 4 || r.Y2-r.Y1 < 4 {
			continue
		}
		if cfg.Rand.Float64() >= cfg.CoverChance {
			continue
		}
		cx, cy := r.Center()
		x := r.X1 + 1 + cfg.Rand.Intn(r.X2-r.X1-1)
		y := r.Y1 + 1 + cfg.Rand.Intn(r.Y2-r.Y1-1)
		if x == cx || y == cy {
			continue
		}
		gmap.Set(x, y, gamemap.MakeWall())
	}
}
