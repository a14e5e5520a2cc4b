package system

import (
	"testing"

	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/unit"
)

func TestSightIncludesOwnTileAndStopsAtRange(t *testing.T) {
	w := openWorld(31, 31, nil)
	s := w.CreateUnit(unit.Player, trooper, rifle, 15, 15)
	v := NewVisibility(w)

	if !v.Sees(s, 15, 15) {
		t.Error("unit must see its own tile")
	}
	if !v.Sees(s, 25, 15) {
		t.Error("tile 10 east should be visible")
	}
	if v.Sees(s, 26, 15) {
		t.Error("tile 11 east is beyond vision range")
	}
}

func TestWallStopsRayInclusive(t *testing.T) {
	w := openWorld(31, 31, nil)
	w.Map.Set(18, 15, gamemap.MakeWall())
	s := w.CreateUnit(unit.Player, trooper, rifle, 15, 15)
	v := NewVisibility(w)

	if !v.Sees(s, 18, 15) {
		t.Error("the blocking wall itself should be visible")
	}
	if v.Sees(s, 19, 15) {
		t.Error("tile directly behind the wall should be hidden")
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	w := openWorld(31, 31, nil)
	w.Map.Set(17, 14, gamemap.MakeWall())
	w.CreateUnit(unit.Player, trooper, rifle, 15, 15)
	w.CreateUnit(unit.Player, trooper, rifle, 5, 20)
	v := NewVisibility(w)

	v.Recompute(unit.Player)
	first := w.Fog(unit.Player).Clone()
	v.Recompute(unit.Player)
	second := w.Fog(unit.Player)

	for y := range 31 {
		for x := range 31 {
			if first.IsVisible(x, y) != second.IsVisible(x, y) {
				t.Fatalf("visibility of (%d,%d) changed between recomputes", x, y)
			}
		}
	}
}

func TestExploredOnlyGrows(t *testing.T) {
	w := openWorld(40, 10, nil)
	s := w.CreateUnit(unit.Player, trooper, rifle, 2, 5)
	v := NewVisibility(w)

	v.Recompute(unit.Player)
	before := w.Fog(unit.Player).Clone()

	w.Place(s, 35, 5)
	v.Recompute(unit.Player)
	fog := w.Fog(unit.Player)

	if fog.IsVisible(2, 5) {
		t.Error("old position should no longer be visible")
	}
	for y := range 10 {
		for x := range 40 {
			if before.IsExplored(x, y) && !fog.IsExplored(x, y) {
				t.Fatalf("(%d,%d) lost its explored flag", x, y)
			}
		}
	}
}

func TestSeenBy(t *testing.T) {
	w := openWorld(31, 31, nil)
	w.CreateUnit(unit.Player, trooper, rifle, 2, 2)
	near := w.CreateUnit(unit.Alien, drone, plasma, 6, 2)
	far := w.CreateUnit(unit.Alien, drone, plasma, 28, 28)
	v := NewVisibility(w)
	v.RecomputeAll()

	if !v.SeenBy(unit.Player, near) {
		t.Error("near alien should be seen")
	}
	if v.SeenBy(unit.Player, far) {
		t.Error("far alien should be hidden")
	}
}
