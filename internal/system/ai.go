package system

import (
	"errors"

	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/rules"
	"squad-tactics/internal/unit"
	"squad-tactics/internal/world"
)

// ActionKind is what an alien did with its activation.
type ActionKind uint8

const (
	ActIdle ActionKind = iota
	ActAttack
	ActMove
	ActReload
)

// Activation records one alien decision cycle.
type Activation struct {
	Alien    unit.ID
	Action   ActionKind
	Target   unit.ID       // attacked soldier
	Step     gamemap.Point // tile moved onto
	Attack   AttackResult
	Reaction ReactionResult
}

// ActivateAlien runs one decision cycle: attack a visible soldier in
// range, otherwise take one greedy step toward a known target, otherwise
// idle without spending TU.
func ActivateAlien(w *world.World, a *unit.Unit) Activation {
	act := Activation{Alien: a.ID}
	if !a.Alive() {
		return act
	}
	a.ResetTU()
	vis := NewVisibility(w)
	vis.Recompute(unit.Alien)

	visible := visibleSoldiers(w, vis, a)
	if len(visible) > 0 {
		a.Alert(visible[0].X, visible[0].Y)
	}

	if a.Weapon.UsesAmmo() && a.Ammo == 0 {
		if err := Reload(w, a); err == nil {
			act.Action = ActReload
			return act
		}
	}

	for _, s := range visible {
		if Distance(a, s) > a.Weapon.Range {
			break // sorted nearest first
		}
		res, err := ResolveAttack(w, a, s, AttackOptions{})
		if err == nil {
			act.Action, act.Target, act.Attack = ActAttack, s.ID, res
			return act
		}
		if !errors.Is(err, rules.ErrInvalidTarget) {
			break
		}
	}

	tx, ty, ok := alienGoal(a, visible)
	if !ok || !a.CanAfford(unit.MoveCost(w.Rules, 1)) {
		return act
	}
	p, ok := greedyStep(w, a, tx, ty)
	if !ok {
		return act
	}
	act.Action, act.Step = ActMove, p
	act.Reaction = Step(w, a, p)
	if a.Alive() && a.HasLastKnown && a.X == a.LastKnownX && a.Y == a.LastKnownY && len(visible) == 0 {
		a.HasLastKnown = false
	}
	w.Log.Debug().Str("alien", a.String()).Int("x", p.X).Int("y", p.Y).Msg("alien advanced")
	return act
}

// visibleSoldiers returns living soldiers the alien sees, nearest first;
// ties keep roster order.
func visibleSoldiers(w *world.World, vis *Visibility, a *unit.Unit) []*unit.Unit {
	var out []*unit.Unit
	for _, s := range w.Living(unit.Player) {
		if vis.Sees(a, s.X, s.Y) {
			out = append(out, s)
		}
	}
	// insertion sort keeps equal distances in roster order
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && Distance(a, out[j]) < Distance(a, out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// alienGoal picks where the alien heads: the nearest visible soldier,
// else the last position it was alerted to.
func alienGoal(a *unit.Unit, visible []*unit.Unit) (int, int, bool) {
	if len(visible) > 0 {
		return visible[0].X, visible[0].Y, true
	}
	if a.Alerted && a.HasLastKnown {
		if a.X == a.LastKnownX && a.Y == a.LastKnownY {
			a.HasLastKnown = false
			return 0, 0, false
		}
		return a.LastKnownX, a.LastKnownY, true
	}
	return 0, 0, false
}

// greedyStep tries the diagonal toward (tx, ty) first, then each single
// axis, refusing walls and occupied tiles.
func greedyStep(w *world.World, a *unit.Unit, tx, ty int) (gamemap.Point, bool) {
	sx, sy := sign(tx-a.X), sign(ty-a.Y)
	candidates := []gamemap.Point{
		{X: a.X + sx, Y: a.Y + sy},
		{X: a.X + sx, Y: a.Y},
		{X: a.X, Y: a.Y + sy},
	}
	for _, p := range candidates {
		if p.X == a.X && p.Y == a.Y {
			continue
		}
		if w.Map.IsWalkable(p.X, p.Y) && !w.Occupied(p.X, p.Y) {
			return p, true
		}
	}
	return gamemap.Point{}, false
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
