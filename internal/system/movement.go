package system

import (
	"fmt"

	"squad-tactics/internal/event"
	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/rules"
	"squad-tactics/internal/unit"
	"squad-tactics/internal/world"
)

// MoveResult describes how far a requested move got.
type MoveResult struct {
	Steps         int
	ReactionShots int
	Truncated     bool // the mover died before finishing the path
}

// CheckPath validates a whole path for u before any step is taken: each
// tile must neighbour the previous one, be walkable and be free, and the
// unit must afford every step.
func CheckPath(w *world.World, u *unit.Unit, path []gamemap.Point) error {
	if u == nil || !u.Alive() {
		return fmt.Errorf("mover: %w", rules.ErrInvalidUnit)
	}
	if len(path) == 0 {
		return fmt.Errorf("empty path: %w", rules.ErrIllegalMove)
	}
	prev := gamemap.Point{X: u.X, Y: u.Y}
	for i, p := range path {
		if !gamemap.Adjacent(prev, p) {
			return fmt.Errorf("step %d (%d,%d) not adjacent to (%d,%d): %w", i, p.X, p.Y, prev.X, prev.Y, rules.ErrIllegalMove)
		}
		if !w.Map.IsWalkable(p.X, p.Y) {
			return fmt.Errorf("step %d (%d,%d) is not walkable: %w", i, p.X, p.Y, rules.ErrIllegalMove)
		}
		if other := w.UnitAt(p.X, p.Y); other != nil && other != u {
			return fmt.Errorf("step %d (%d,%d) occupied by %s: %w", i, p.X, p.Y, other, rules.ErrIllegalMove)
		}
		prev = p
	}
	if cost := unit.MoveCost(w.Rules, len(path)); !u.CanAfford(cost) {
		return fmt.Errorf("%s needs %d TU for %d tiles, has %d: %w", u, cost, len(path), u.TU, rules.ErrInsufficientTimeUnits)
	}
	return nil
}

// Step moves u one tile, then refreshes its faction's sight and lets the
// opposing faction react. Position and TU are updated before any
// reaction check reads them.
func Step(w *world.World, u *unit.Unit, p gamemap.Point) ReactionResult {
	cost := unit.MoveCost(w.Rules, 1)
	if err := u.Spend(cost); err != nil {
		rules.Assert(false, "step after validated path: %v", err)
	}
	w.Place(u, p.X, p.Y)
	w.Emit(event.Event{Kind: event.KindUnitMoved, Actor: u.ID, X: p.X, Y: p.Y})
	NewVisibility(w).Recompute(u.Faction)
	return ReactionFire(w, u, cost)
}

// MoveAlong validates path and walks it step by step. Reaction fire
// runs after every step; a mover killed on the way stops where it fell.
func MoveAlong(w *world.World, u *unit.Unit, path []gamemap.Point) (MoveResult, error) {
	if err := CheckPath(w, u, path); err != nil {
		return MoveResult{}, err
	}
	var res MoveResult
	for _, p := range path {
		rr := Step(w, u, p)
		res.Steps++
		res.ReactionShots += rr.Shots
		if rr.MoverKilled || !u.Alive() {
			res.Truncated = res.Steps < len(path)
			break
		}
	}
	return res, nil
}
