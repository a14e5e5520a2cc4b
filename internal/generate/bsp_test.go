package generate

import (
	"math/rand"
	"testing"

	"squad-tactics/internal/gamemap"
)

func defaultTestConfig(seed int64) *Config {
	cfg := DefaultConfig(rand.New(rand.NewSource(seed)))
	cfg.MapWidth, cfg.MapHeight = 60, 30
	cfg.MinLeafSize, cfg.MaxLeafSize = 8, 20
	return cfg
}

// TestGenerateAllRoomsConnected flood-fills from the landing zone and
// expects to reach every walkable tile.
func TestGenerateAllRoomsConnected(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		site := Generate(defaultTestConfig(seed))
		gmap := site.Map

		sx, sy := site.LandingZone.Center()
		if !gmap.IsWalkable(sx, sy) {
			t.Fatalf("seed=%d: landing zone centre (%d,%d) is not walkable", seed, sx, sy)
		}

		visited := make([][]bool, gmap.Height)
		for y := range visited {
			visited[y] = make([]bool, gmap.Width)
		}
		queue := []gamemap.Point{{X: sx, Y: sy}}
		visited[sy][sx] = true
		dirs := []gamemap.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, d := range dirs {
				nx, ny := cur.X+d.X, cur.Y+d.Y
				if !gmap.IsWalkable(nx, ny) || visited[ny][nx] {
					continue
				}
				visited[ny][nx] = true
				queue = append(queue, gamemap.Point{X: nx, Y: ny})
			}
		}

		for y := 0; y < gmap.Height; y++ {
			for x := 0; x < gmap.Width; x++ {
				if gmap.IsWalkable(x, y) && !visited[y][x] {
					t.Errorf("seed=%d: unreachable floor tile at (%d,%d)", seed, x, y)
				}
			}
		}
	}
}

func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rooms := Generate(defaultTestConfig(seed)).Map.Rooms
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				if overlaps(rooms[i], rooms[j]) {
					t.Errorf("seed=%d: room %d %v overlaps room %d %v", seed, i, rooms[i], j, rooms[j])
				}
			}
		}
	}
}

func TestGenerateKeepsBorderWalls(t *testing.T) {
	site := Generate(defaultTestConfig(3))
	gmap := site.Map
	for x := 0; x < gmap.Width; x++ {
		if gmap.IsWalkable(x, 0) || gmap.IsWalkable(x, gmap.Height-1) {
			t.Fatalf("border column %d is open", x)
		}
	}
	for y := 0; y < gmap.Height; y++ {
		if gmap.IsWalkable(0, y) || gmap.IsWalkable(gmap.Width-1, y) {
			t.Fatalf("border row %d is open", y)
		}
	}
}

func TestGenerateMarksCrashSite(t *testing.T) {
	site := Generate(defaultTestConfig(5))
	if len(site.Map.Rooms) < 2 {
		t.Skip("seed produced a single room")
	}
	if site.LandingZone == site.CrashSite {
		t.Fatal("landing zone and crash site should differ")
	}
	cx, cy := site.CrashSite.Center()
	if site.Map.At(cx, cy).Kind != gamemap.TileSpecialFloor {
		t.Error("crash site centre should be special floor")
	}
	lx, ly := site.LandingZone.Center()
	if site.Map.At(lx, ly).Kind != gamemap.TileFloor {
		t.Error("landing zone should be plain floor")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(defaultTestConfig(11)).Map
	b := Generate(defaultTestConfig(11)).Map
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("tile (%d,%d) differs for the same seed", x, y)
			}
		}
	}
}

func overlaps(a, b gamemap.Rect) bool {
	return a.X1 <= b.X2 && a.X2 >= b.X1 && a.Y1 <= b.Y2 && a.Y2 >= b.Y1
}
