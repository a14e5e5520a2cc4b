package gamemap

// neighbours in the order path search expands them: orthogonal first so
// straight corridors yield straight paths.
var neighbours = [8]Point{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// FindPath returns the shortest 8-way walkable path from `from` to `to`,
// excluding the start tile. blocked may veto extra tiles (occupied ones);
// it is not consulted for the start tile. Returns nil when unreachable.
func (m *GameMap) FindPath(from, to Point, blocked func(x, y int) bool) []Point {
	if from == to || !m.IsWalkable(to.X, to.Y) {
		return nil
	}
	prev := make(map[Point]Point)
	seen := map[Point]bool{from: true}
	queue := []Point{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			break
		}
		for _, d := range neighbours {
			next := Point{cur.X + d.X, cur.Y + d.Y}
			if seen[next] || !m.IsWalkable(next.X, next.Y) {
				continue
			}
			if blocked != nil && blocked(next.X, next.Y) {
				continue
			}
			seen[next] = true
			prev[next] = cur
			queue = append(queue, next)
		}
	}
	if !seen[to] {
		return nil
	}

	var path []Point
	for p := to; p != from; p = prev[p] {
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Adjacent reports whether a and b are distinct 8-way neighbours.
func Adjacent(a, b Point) bool {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	return dx <= 1 && dy <= 1 && (dx|dy) != 0
}
