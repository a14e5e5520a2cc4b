package generate

import (
	"fmt"
	"math/rand"

	"squad-tactics/internal/gamemap"
)

// Deployment lists the starting tiles for both sides.
type Deployment struct {
	Soldiers []gamemap.Point
	Aliens   []gamemap.Point
}

// Deploy picks distinct walkable start tiles: soldiers in the landing
// zone, aliens from the crash site outward through the other rooms.
// Rooms that fill up spill over into the next room in the list.
func Deploy(site *Site, soldiers, aliens int, rng *rand.Rand) (Deployment, error) {
	taken := make(map[gamemap.Point]bool)
	var d Deployment

	squadRooms := []gamemap.Rect{site.LandingZone}
	for _, r := range site.Map.Rooms {
		if r != site.LandingZone {
			squadRooms = append(squadRooms, r)
		}
	}
	for range soldiers {
		p, ok := pickFree(site.Map, squadRooms, rng, taken)
		if !ok {
			return Deployment{}, fmt.Errorf("no room left for soldier %d of %d", len(d.Soldiers)+1, soldiers)
		}
		d.Soldiers = append(d.Soldiers, p)
	}

	// aliens rotate over every room except the landing zone, crash site first
	var alienRooms []gamemap.Rect
	if site.CrashSite != site.LandingZone {
		alienRooms = append(alienRooms, site.CrashSite)
	}
	for _, r := range site.Map.Rooms {
		if r != site.LandingZone && r != site.CrashSite {
			alienRooms = append(alienRooms, r)
		}
	}
	if len(alienRooms) == 0 {
		alienRooms = []gamemap.Rect{site.LandingZone}
	}
	for i := range aliens {
		k := i % len(alienRooms)
		rooms := make([]gamemap.Rect, 0, len(alienRooms))
		rooms = append(rooms, alienRooms[k:]...)
		rooms = append(rooms, alienRooms[:k]...)
		p, ok := pickFree(site.Map, rooms, rng, taken)
		if !ok {
			return Deployment{}, fmt.Errorf("no room left for alien %d of %d", i+1, aliens)
		}
		d.Aliens = append(d.Aliens, p)
	}
	return d, nil
}

// pickFree tries random tiles in each room in turn, then scans it, and
// claims the first walkable untaken tile.
func pickFree(gmap *gamemap.GameMap, rooms []gamemap.Rect, rng *rand.Rand, taken map[gamemap.Point]bool) (gamemap.Point, bool) {
	const attempts = 20
	free := func(p gamemap.Point) bool {
		return gmap.IsWalkable(p.X, p.Y) && !taken[p]
	}
	for _, r := range rooms {
		for range attempts {
			p := gamemap.Point{
				X: r.X1 + rng.Intn(r.X2-r.X1+1),
				Y: r.Y1 + rng.Intn(r.Y2-r.Y1+1),
			}
			if free(p) {
				taken[p] = true
				return p, true
			}
		}
		for y := r.Y1; y <= r.Y2; y++ {
			for x := r.X1; x <= r.X2; x++ {
				if p := (gamemap.Point{X: x, Y: y}); free(p) {
					taken[p] = true
					return p, true
				}
			}
		}
	}
	return gamemap.Point{}, false
}
