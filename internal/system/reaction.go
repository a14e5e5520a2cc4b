package system

import (
	"squad-tactics/internal/event"
	"squad-tactics/internal/unit"
	"squad-tactics/internal/world"
)

// ReactionResult summarises one reaction-fire pass.
type ReactionResult struct {
	Shots       int
	MoverKilled bool
}

// ReactionChance is the probability that observer snap-fires at a mover
// that just spent tuSpent TU on one step. The raw formula easily exceeds
// 1 for ordinary stats, so the result is clamped to [0,1].
func ReactionChance(observer, mover *unit.Unit, tuSpent int, scale float64) float64 {
	num := float64(observer.Reactions * observer.TU)
	den := float64(mover.Reactions*tuSpent + 100)
	p := num / den * scale
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// ReactionFire runs one interrupt pass after mover has completed a
// single tile-step costing tuSpent. Every living opponent is considered
// in creation order; the pass ends early if the mover dies.
func ReactionFire(w *world.World, mover *unit.Unit, tuSpent int) ReactionResult {
	var res ReactionResult
	vis := NewVisibility(w)

	for _, obs := range w.Living(mover.Faction.Opponent()) {
		if !mover.Alive() {
			break
		}
		if !obs.Alive() {
			continue
		}
		if !vis.Sees(obs, mover.X, mover.Y) {
			continue
		}
		if obs.Faction == unit.Alien {
			obs.Alert(mover.X, mover.Y)
		}

		d := unit.DoctrineFor(obs.Faction, w.Rules)
		if obs.TU < d.MinReactionTU() || !obs.CanAfford(obs.AttackCost()) {
			continue
		}

		chance := ReactionChance(obs, mover, tuSpent, d.ReactionScale())
		roll := w.RNG.Float64()
		w.Log.Debug().
			Str("observer", obs.String()).
			Str("mover", mover.String()).
			Float64("chance", chance).
			Float64("roll", roll).
			Msg("reaction check")
		if roll >= chance {
			continue
		}

		out, err := ResolveAttack(w, obs, mover, AttackOptions{
			AccuracyMultiplier: d.SnapMultiplier(obs.Weapon),
			Reaction:           true,
		})
		if err != nil {
			w.Log.Debug().Err(err).Str("observer", obs.String()).Msg("snap shot not possible")
			continue
		}
		res.Shots++
		w.Emit(event.Event{Kind: event.KindReactionFired, Actor: obs.ID, Target: mover.ID, Hit: out.Hit})
		if out.Killed {
			res.MoverKilled = true
			break
		}
	}
	return res
}
