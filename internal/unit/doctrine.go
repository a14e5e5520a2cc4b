package unit

import "squad-tactics/internal/rules"

// Doctrine supplies the faction-specific combat behaviour so the
// resolvers never branch on faction tags themselves.
type Doctrine interface {
	// ReactionScale multiplies the raw reaction chance.
	ReactionScale() float64
	// SnapMultiplier scales accuracy for a reaction snap shot.
	SnapMultiplier(w Weapon) float64
	// MinReactionTU is the TU an observer must hold to react at all.
	MinReactionTU() int
	// RangePenalty is subtracted from effective accuracy at distance d.
	RangePenalty(w Weapon, d float64) float64
}

// DoctrineFor returns the doctrine of faction f under rule set r.
func DoctrineFor(f Faction, r rules.Rules) Doctrine {
	if f == Alien {
		return alienDoctrine{r}
	}
	return soldierDoctrine{r}
}

type soldierDoctrine struct{ r rules.Rules }

func (d soldierDoctrine) ReactionScale() float64 { return d.r.SoldierReactionScale }

func (d soldierDoctrine) SnapMultiplier(w Weapon) float64 {
	return w.SnapAccuracy * d.r.SoldierSnapFactor
}

func (d soldierDoctrine) MinReactionTU() int { return d.r.SoldierMinReactionTU }

func (d soldierDoctrine) RangePenalty(w Weapon, dist float64) float64 {
	if w.IsMelee {
		return 0
	}
	beyond := dist - float64(d.r.RangePenaltyFreeTiles)
	if beyond <= 0 {
		return 0
	}
	return beyond * d.r.RangePenaltyPerTile
}

type alienDoctrine struct{ r rules.Rules }

func (d alienDoctrine) ReactionScale() float64 { return d.r.AlienReactionScale }

func (d alienDoctrine) SnapMultiplier(Weapon) float64 { return d.r.AlienSnapMultiplier }

func (d alienDoctrine) MinReactionTU() int { return d.r.AlienMinReactionTU }

// Aliens fire without range falloff.
func (d alienDoctrine) RangePenalty(Weapon, float64) float64 { return 0 }
