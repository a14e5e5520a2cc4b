package system

import (
	"fmt"
	"math"

	"squad-tactics/internal/event"
	"squad-tactics/internal/rules"
	"squad-tactics/internal/unit"
	"squad-tactics/internal/world"
)

// AttackOptions modify a single attack.
type AttackOptions struct {
	// AccuracyMultiplier scales effective accuracy. Zero means a
	// deliberate shot (1.0).
	AccuracyMultiplier float64
	Reaction           bool
}

// AttackResult holds the outcome of one resolved attack.
type AttackResult struct {
	Hit     bool
	Damage  int
	Killed  bool
	Roll    float64 // uniform [0,100)
	Chance  float64 // effective accuracy the roll was compared to
	TUSpent int
}

// Distance is the Euclidean tile distance between two units.
func Distance(a, b *unit.Unit) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// EffectiveAccuracy is the hit chance (0-100 scale, may fall outside it)
// of attacker firing at a target dist tiles away.
func EffectiveAccuracy(r rules.Rules, attacker *unit.Unit, dist, multiplier float64) float64 {
	d := unit.DoctrineFor(attacker.Faction, r)
	base := float64(attacker.Accuracy) * float64(attacker.Weapon.BaseAccuracy) / 100
	return base*multiplier - d.RangePenalty(attacker.Weapon, dist)
}

// CheckAttack validates an attack without mutating anything.
func CheckAttack(w *world.World, attacker, target *unit.Unit) error {
	if attacker == nil || !attacker.Alive() {
		return fmt.Errorf("attacker: %w", rules.ErrInvalidUnit)
	}
	if target == nil || !target.Alive() {
		return fmt.Errorf("target dead or missing: %w", rules.ErrInvalidTarget)
	}
	if target.Faction == attacker.Faction {
		return fmt.Errorf("%s is friendly: %w", target, rules.ErrInvalidTarget)
	}
	if dist := Distance(attacker, target); dist > attacker.Weapon.Range {
		return fmt.Errorf("%s at %.1f tiles, %s reaches %.1f: %w",
			target, dist, attacker.Weapon.Name, attacker.Weapon.Range, rules.ErrInvalidTarget)
	}
	if !w.Map.HasLineOfSight(attacker.X, attacker.Y, target.X, target.Y) {
		return fmt.Errorf("no line of sight to %s: %w", target, rules.ErrInvalidTarget)
	}
	if attacker.Weapon.UsesAmmo() && attacker.Ammo == 0 {
		return fmt.Errorf("%s: %w", attacker.Weapon.Name, rules.ErrOutOfAmmo)
	}
	if cost := attacker.AttackCost(); !attacker.CanAfford(cost) {
		return fmt.Errorf("%s needs %d TU to fire, has %d: %w", attacker, cost, attacker.TU, rules.ErrInsufficientTimeUnits)
	}
	return nil
}

// ResolveAttack fires the attacker's weapon at target. A rejected attack
// returns an error and changes nothing. A lethal hit buries the target,
// which runs the world's death hooks before ResolveAttack returns.
func ResolveAttack(w *world.World, attacker, target *unit.Unit, opts AttackOptions) (AttackResult, error) {
	if err := CheckAttack(w, attacker, target); err != nil {
		return AttackResult{}, err
	}

	cost := attacker.AttackCost()
	if err := attacker.Spend(cost); err != nil {
		return AttackResult{}, err
	}
	if attacker.Weapon.UsesAmmo() {
		attacker.Ammo--
	}

	mult := opts.AccuracyMultiplier
	if mult == 0 {
		mult = 1
	}
	wpn := attacker.Weapon
	res := AttackResult{
		Chance:  EffectiveAccuracy(w.Rules, attacker, Distance(attacker, target), mult),
		Roll:    w.RNG.Float64() * 100,
		TUSpent: cost,
	}
	res.Hit = res.Roll < res.Chance

	w.Log.Debug().
		Str("attacker", attacker.String()).
		Str("target", target.String()).
		Float64("chance", res.Chance).
		Float64("roll", res.Roll).
		Bool("reaction", opts.Reaction).
		Msg("attack roll")

	if target.Faction == unit.Alien {
		target.Alert(attacker.X, attacker.Y)
	}

	if !res.Hit {
		w.Emit(event.Event{Kind: event.KindMiss, Actor: attacker.ID, Target: target.ID})
		return res, nil
	}

	res.Damage = wpn.DamageMin
	if spread := wpn.DamageMax - wpn.DamageMin; spread > 0 {
		res.Damage += w.RNG.Intn(spread + 1)
	}
	res.Killed = target.TakeDamage(res.Damage)
	w.Emit(event.Event{Kind: event.KindHit, Actor: attacker.ID, Target: target.ID, Damage: res.Damage, Hit: true})

	if res.Killed {
		NewVisibility(w).Recompute(target.Faction)
		w.Bury(target)
	}
	return res, nil
}

// Reload refills the unit's clip.
func Reload(w *world.World, u *unit.Unit) error {
	if u == nil || !u.Alive() {
		return fmt.Errorf("reload: %w", rules.ErrInvalidUnit)
	}
	if !u.Weapon.UsesAmmo() || u.Ammo == u.Weapon.ClipSize {
		return fmt.Errorf("%s: %w", u.Weapon.Name, rules.ErrNothingToReload)
	}
	if err := u.Spend(u.ReloadCost(w.Rules)); err != nil {
		return err
	}
	u.Ammo = u.Weapon.ClipSize
	w.Emit(event.Event{Kind: event.KindReloaded, Actor: u.ID})
	return nil
}
