package system

import (
	"testing"

	"squad-tactics/internal/event"
	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/unit"
)

func TestAlienAttacksVisibleSoldierInRange(t *testing.T) {
	w := openWorld(12, 12, nil)
	w.CreateUnit(unit.Player, trooper, rifle, 2, 9)
	near := w.CreateUnit(unit.Player, trooper, rifle, 5, 6)
	a := w.CreateUnit(unit.Alien, drone, plasma, 5, 3)
	a.TU = 0

	act := ActivateAlien(w, a)
	if act.Action != ActAttack || act.Target != near.ID {
		t.Fatalf("activation = %+v; want attack on nearest soldier %d", act, near.ID)
	}
	if a.TU != 60-12 {
		t.Errorf("alien TU = %d; want reset then one shot (48)", a.TU)
	}
	if got := w.Events.Count(event.KindHit) + w.Events.Count(event.KindMiss); got != 1 {
		t.Errorf("attack events = %d; want 1", got)
	}
}

func TestAlienAdvancesDiagonallyWhenOutOfRange(t *testing.T) {
	w := openWorld(12, 12, nil)
	s := w.CreateUnit(unit.Player, trooper, rifle, 8, 8)
	s.TU = 0
	a := w.CreateUnit(unit.Alien, drone, plasma, 2, 2)

	act := ActivateAlien(w, a)
	if act.Action != ActMove || act.Step != (gamemap.Point{X: 3, Y: 3}) {
		t.Fatalf("activation = %+v; want diagonal step to (3,3)", act)
	}
	if a.TU != 56 || !a.Alerted {
		t.Errorf("alien tu=%d alerted=%v; want 56/true", a.TU, a.Alerted)
	}
}

func TestAlienSidestepsBlockedDiagonal(t *testing.T) {
	w := openWorld(12, 12, nil)
	w.CreateUnit(unit.Player, trooper, rifle, 9, 5).TU = 0
	w.Map.Set(3, 3, gamemap.MakeWall())
	a := w.CreateUnit(unit.Alien, drone, plasma, 2, 2)

	act := ActivateAlien(w, a)
	if act.Action != ActMove || act.Step != (gamemap.Point{X: 3, Y: 2}) {
		t.Fatalf("activation = %+v; want x-axis step to (3,2)", act)
	}
}

func TestAlienIdlesWithoutTarget(t *testing.T) {
	w := openWorld(40, 5, nil)
	w.CreateUnit(unit.Player, trooper, rifle, 38, 2)
	a := w.CreateUnit(unit.Alien, drone, plasma, 1, 2)
	a.TU = 3

	act := ActivateAlien(w, a)
	if act.Action != ActIdle {
		t.Fatalf("activation = %+v; want idle", act)
	}
	if a.TU != a.MaxTU || a.X != 1 {
		t.Error("idle alien should keep its reset TU and position")
	}
}

func TestAlertedAlienHuntsLastKnown(t *testing.T) {
	w := openWorld(40, 5, nil)
	w.CreateUnit(unit.Player, trooper, rifle, 38, 2)
	a := w.CreateUnit(unit.Alien, drone, plasma, 1, 2)
	a.Alert(3, 2)

	act := ActivateAlien(w, a)
	if act.Action != ActMove || a.X != 2 {
		t.Fatalf("activation = %+v; want step east", act)
	}
	ActivateAlien(w, a)
	if a.X != 3 || a.HasLastKnown {
		t.Errorf("alien at x=%d hasLastKnown=%v; want 3/false", a.X, a.HasLastKnown)
	}
	if act := ActivateAlien(w, a); act.Action != ActIdle {
		t.Errorf("alien with spent lead should idle, got %+v", act)
	}
}

func TestAlienReloadsEmptyClip(t *testing.T) {
	w := openWorld(12, 12, nil)
	w.CreateUnit(unit.Player, trooper, rifle, 5, 6)
	a := w.CreateUnit(unit.Alien, drone, plasma, 5, 3)
	a.Ammo = 0

	act := ActivateAlien(w, a)
	if act.Action != ActReload || a.Ammo != plasma.ClipSize {
		t.Fatalf("activation = %+v ammo=%d; want reload", act, a.Ammo)
	}
	// floor(60 * 15 / 100) = 9
	if a.TU != 51 {
		t.Errorf("alien TU = %d; want 51", a.TU)
	}
}
