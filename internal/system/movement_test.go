package system

import (
	"errors"
	"testing"

	"squad-tactics/internal/event"
	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/rules"
	"squad-tactics/internal/unit"
	"squad-tactics/internal/world"
)

func TestMoveAlongSpendsPerStep(t *testing.T) {
	w := openWorld(10, 10, nil)
	s := w.CreateUnit(unit.Player, trooper, rifle, 1, 1)

	path := []gamemap.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 3}}
	res, err := MoveAlong(w, s, path)
	if err != nil {
		t.Fatalf("legal move rejected: %v", err)
	}
	if res.Steps != 3 || res.Truncated {
		t.Errorf("result = %+v; want 3 full steps", res)
	}
	if s.X != 4 || s.Y != 3 || s.TU != 58-12 {
		t.Errorf("unit at (%d,%d) tu=%d; want (4,3) tu=46", s.X, s.Y, s.TU)
	}
	if got := w.Events.Count(event.KindUnitMoved); got != 3 {
		t.Errorf("UnitMoved events = %d; want 3", got)
	}
	if !w.Fog(unit.Player).IsVisible(4, 3) {
		t.Error("mover's fog not refreshed")
	}
}

func TestMoveRejections(t *testing.T) {
	tests := []struct {
		name  string
		path  []gamemap.Point
		setup func(w *world.World, s *unit.Unit)
		want  error
	}{
		{"empty path", nil, nil, rules.ErrIllegalMove},
		{"gap in path", []gamemap.Point{{X: 2, Y: 1}, {X: 4, Y: 1}}, nil, rules.ErrIllegalMove},
		{"first step not adjacent", []gamemap.Point{{X: 3, Y: 1}}, nil, rules.ErrIllegalMove},
		{"into wall", []gamemap.Point{{X: 2, Y: 1}}, func(w *world.World, _ *unit.Unit) {
			w.Map.Set(2, 1, gamemap.MakeWall())
		}, rules.ErrIllegalMove},
		{"through occupied tile", []gamemap.Point{{X: 2, Y: 1}, {X: 3, Y: 1}}, func(w *world.World, _ *unit.Unit) {
			w.CreateUnit(unit.Player, trooper, rifle, 2, 1)
		}, rules.ErrIllegalMove},
		{"out of bounds", []gamemap.Point{{X: 0, Y: 0}, {X: -1, Y: 0}}, nil, rules.ErrIllegalMove},
		// 3 tiles cost 12 against 10 TU
		{"too expensive", []gamemap.Point{{X: 2, Y: 1}, {X: 3, Y: 1}, {X: 4, Y: 1}}, func(_ *world.World, s *unit.Unit) {
			s.TU = 10
		}, rules.ErrInsufficientTimeUnits},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := openWorld(10, 10, nil)
			s := w.CreateUnit(unit.Player, trooper, rifle, 1, 1)
			if tt.setup != nil {
				tt.setup(w, s)
			}
			tu := s.TU

			_, err := MoveAlong(w, s, tt.path)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v; want %v", err, tt.want)
			}
			if s.X != 1 || s.Y != 1 || s.TU != tu {
				t.Error("rejected move mutated the unit")
			}
			if w.Events.Len() != 0 {
				t.Error("rejected move emitted events")
			}
		})
	}
}

func TestMoveDeterministicForSeed(t *testing.T) {
	run := func() []event.Event {
		w := openWorld(20, 5, nil)
		s := w.CreateUnit(unit.Player, trooper, rifle, 1, 2)
		w.CreateUnit(unit.Alien, drone, plasma, 8, 2)
		w.CreateUnit(unit.Alien, drone, plasma, 9, 1)
		path := []gamemap.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 2}, {X: 5, Y: 2}}
		if _, err := MoveAlong(w, s, path); err != nil {
			t.Fatal(err)
		}
		return w.Events.All()
	}
	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("event counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("event %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
