package generate

import "squad-tactics/internal/gamemap"

// carveCorridor digs a tunnel from (x1,y1) to (x2,y2) in the configured
// style. Every style ends up with both endpoints on floor.
func carveCorridor(gmap *gamemap.GameMap, x1, y1, x2, y2 int, cfg *Config) {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		mid := (y1 + y2) / 2
		carveSegment(gmap, x1, y1, x1, mid)
		carveSegment(gmap, x1, mid, x2, mid)
		carveSegment(gmap, x2, mid, x2, y2)
	case CorridorStraight:
		carveSegment(gmap, x1, y1, x2, y1)
		carveSegment(gmap, x2, y1, x2, y2)
	default:
		if cfg.Rand.Intn(2) == 0 {
			carveSegment(gmap, x1, y1, x2, y1)
			carveSegment(gmap, x2, y1, x2, y2)
		} else {
			carveSegment(gmap, x1, y1, x1, y2)
			carveSegment(gmap, x1, y2, x2, y2)
		}
	}
}

// carveSegment floors an axis-aligned segment, endpoints included, in
// either direction. Tiles already floored keep their kind.
func carveSegment(gmap *gamemap.GameMap, x1, y1, x2, y2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			if gmap.InBounds(x, y) && !gmap.IsWalkable(x, y) {
				gmap.Set(x, y, gamemap.MakeFloor())
			}
		}
	}
}
