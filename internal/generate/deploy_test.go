package generate

import (
	"math/rand"
	"testing"

	"squad-tactics/internal/gamemap"
)

func TestDeployDistinctWalkableTiles(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		site := Generate(defaultTestConfig(seed))
		d, err := Deploy(site, 4, 6, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed=%d: %v", seed, err)
		}
		if len(d.Soldiers) != 4 || len(d.Aliens) != 6 {
			t.Fatalf("seed=%d: got %d soldiers, %d aliens", seed, len(d.Soldiers), len(d.Aliens))
		}
		seen := make(map[gamemap.Point]bool)
		for _, p := range append(append([]gamemap.Point{}, d.Soldiers...), d.Aliens...) {
			if !site.Map.IsWalkable(p.X, p.Y) {
				t.Errorf("seed=%d: %v is not walkable", seed, p)
			}
			if seen[p] {
				t.Errorf("seed=%d: %v used twice", seed, p)
			}
			seen[p] = true
		}
		for _, p := range d.Soldiers {
			if !inside(site.LandingZone, p) {
				t.Errorf("seed=%d: soldier at %v outside the landing zone", seed, p)
			}
		}
	}
}

func TestDeploySpillsOver(t *testing.T) {
	gmap := gamemap.New(10, 10)
	small := gamemap.Rect{X1: 1, Y1: 1, X2: 2, Y2: 1}
	big := gamemap.Rect{X1: 1, Y1: 4, X2: 8, Y2: 8}
	for _, r := range []gamemap.Rect{small, big} {
		for y := r.Y1; y <= r.Y2; y++ {
			for x := r.X1; x <= r.X2; x++ {
				gmap.Set(x, y, gamemap.MakeFloor())
			}
		}
		gmap.Rooms = append(gmap.Rooms, r)
	}
	site := &Site{Map: gmap, LandingZone: small, CrashSite: big}

	d, err := Deploy(site, 3, 1, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if !inside(big, d.Soldiers[2]) {
		t.Errorf("third soldier %v should spill into the next room", d.Soldiers[2])
	}
}

func TestDeployFailsWhenFull(t *testing.T) {
	gmap := gamemap.New(5, 5)
	r := gamemap.Rect{X1: 1, Y1: 1, X2: 2, Y2: 1}
	gmap.Set(1, 1, gamemap.MakeFloor())
	gmap.Set(2, 1, gamemap.MakeFloor())
	gmap.Rooms = []gamemap.Rect{r}
	site := &Site{Map: gmap, LandingZone: r, CrashSite: r}

	if _, err := Deploy(site, 2, 1, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected an error when the map has no room for everyone")
	}
}

func inside(r gamemap.Rect, p gamemap.Point) bool {
	return p.X >= r.X1 && p.X <= r.X2 && p.Y >= r.Y1 && p.Y <= r.Y2
}
