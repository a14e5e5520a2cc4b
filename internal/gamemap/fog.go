package gamemap

// FogLayer is one faction's view of the map. Visible is rebuilt from
// scratch on every visibility pass; Explored is only ever set.
type FogLayer struct {
	Width, Height int
	Visible       [][]bool
	Explored      [][]bool
}

// NewFogLayer creates an unexplored layer sized to the map.
func NewFogLayer(width, height int) *FogLayer {
	return &FogLayer{
		Width:    width,
		Height:   height,
		Visible:  makeGrid(width, height),
		Explored: makeGrid(width, height),
	}
}

// Reset clears every Visible flag. Explored is untouched.
func (f *FogLayer) Reset() {
	for y := range f.Visible {
		clear(f.Visible[y])
	}
}

// Mark sets (x, y) visible and explored. Out-of-bounds marks are ignored.
func (f *FogLayer) Mark(x, y int) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Visible[y][x] = true
	f.Explored[y][x] = true
}

// IsVisible reports whether (x, y) is currently visible.
func (f *FogLayer) IsVisible(x, y int) bool {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return false
	}
	return f.Visible[y][x]
}

// IsExplored reports whether (x, y) has ever been seen.
func (f *FogLayer) IsExplored(x, y int) bool {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return false
	}
	return f.Explored[y][x]
}

// VisibleCount returns how many tiles are currently visible.
func (f *FogLayer) VisibleCount() int {
	n := 0
	for _, row := range f.Visible {
		for _, v := range row {
			if v {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy for handing to the presentation layer.
func (f *FogLayer) Clone() *FogLayer {
	c := NewFogLayer(f.Width, f.Height)
	for y := range f.Visible {
		copy(c.Visible[y], f.Visible[y])
		copy(c.Explored[y], f.Explored[y])
	}
	return c
}

func makeGrid(width, height int) [][]bool {
	g := make([][]bool, height)
	for y := range g {
		g[y] = make([]bool, width)
	}
	return g
}
