package generate

import (
	"math/rand"
	"testing"

	"squad-tactics/internal/gamemap"
)

// walkableSegment reports whether every tile of an axis-aligned segment
// is walkable.
func walkableSegment(gmap *gamemap.GameMap, x1, y1, x2, y2 int) bool {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if !gmap.IsWalkable(x, y) {
				return false
			}
		}
	}
	return true
}

func TestCarveSegment(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
	}{
		{"row", 3, 5, 8, 5},
		{"row reversed", 8, 5, 3, 5},
		{"column", 4, 2, 4, 9},
		{"column reversed", 4, 9, 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gmap := gamemap.New(20, 20)
			carveSegment(gmap, tt.x1, tt.y1, tt.x2, tt.y2)
			if !walkableSegment(gmap, tt.x1, tt.y1, tt.x2, tt.y2) {
				t.Error("segment not fully carved")
			}
		})
	}

	gmap := gamemap.New(20, 20)
	carveSegment(gmap, 3, 5, 8, 5)
	if gmap.IsWalkable(2, 5) || gmap.IsWalkable(9, 5) || gmap.IsWalkable(5, 6) {
		t.Error("carving leaked outside the segment")
	}
}

func TestCarveSegmentKeepsSpecialFloor(t *testing.T) {
	gmap := gamemap.New(10, 10)
	gmap.Set(4, 4, gamemap.MakeSpecialFloor())
	carveSegment(gmap, 1, 4, 8, 4)
	if gmap.At(4, 4).Kind != gamemap.TileSpecialFloor {
		t.Error("corridor overwrote special floor")
	}
}

func TestCorridorStyles(t *testing.T) {
	tests := []struct {
		name  string
		style CorridorStyle
		check func(g *gamemap.GameMap) bool
	}{
		{"straight", CorridorStraight, func(g *gamemap.GameMap) bool {
			return walkableSegment(g, 2, 2, 10, 2) && walkableSegment(g, 10, 2, 10, 8)
		}},
		{"z-shaped", CorridorZShaped, func(g *gamemap.GameMap) bool {
			return walkableSegment(g, 2, 2, 2, 5) && walkableSegment(g, 2, 5, 10, 5) && walkableSegment(g, 10, 5, 10, 8)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gmap := gamemap.New(20, 20)
			carveCorridor(gmap, 2, 2, 10, 8, &Config{CorridorStyle: tt.style, Rand: rand.New(rand.NewSource(0))})
			if !tt.check(gmap) {
				t.Error("corridor segments missing")
			}
		})
	}
}

func TestCorridorLShapedConnectsEndpoints(t *testing.T) {
	// both random branches get exercised across seeds
	for seed := range 10 {
		gmap := gamemap.New(20, 20)
		carveCorridor(gmap, 2, 2, 10, 8, &Config{
			CorridorStyle: CorridorLShaped,
			Rand:          rand.New(rand.NewSource(int64(seed))),
		})
		if !gmap.IsWalkable(2, 2) || !gmap.IsWalkable(10, 8) {
			t.Errorf("seed %d: endpoints not carved", seed)
		}
		if len(gmap.FindPath(gamemap.Point{X: 2, Y: 2}, gamemap.Point{X: 10, Y: 8}, nil)) == 0 {
			t.Errorf("seed %d: endpoints not connected", seed)
		}
	}
}
