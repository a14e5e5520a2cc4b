package gamemap

// Line returns the Bresenham cells from (x1,y1) to (x2,y2), both
// endpoints included.
func Line(x1, y1, x2, y2 int) []Point {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	pts := make([]Point, 0, max(dx, -dy)+1)
	x, y := x1, y1
	for {
		pts = append(pts, Point{x, y})
		if x == x2 && y == y2 {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// HasLineOfSight walks the Bresenham line between the two tiles and
// reports false if any intermediate tile is opaque. The endpoints are
// not tested, so a unit standing in a doorway can still be seen.
// Out-of-bounds endpoints are blocked.
func (m *GameMap) HasLineOfSight(x1, y1, x2, y2 int) bool {
	if !m.InBounds(x1, y1) || !m.InBounds(x2, y2) {
		return false
	}
	pts := Line(x1, y1, x2, y2)
	for _, p := range pts[1 : len(pts)-1] {
		if !m.IsTransparent(p.X, p.Y) {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
