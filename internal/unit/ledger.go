package unit

import (
	"fmt"

	"squad-tactics/internal/rules"
)

// MoveCost is the TU price of walking the given number of tiles.
func MoveCost(r rules.Rules, tiles int) int {
	return tiles * r.TUPerTile
}

// AttackCost is the TU price of one attack with the unit's weapon.
func (u *Unit) AttackCost() int {
	return u.MaxTU * u.Weapon.ActionCostPercent / 100
}

// ReloadCost is the TU price of a reload.
func (u *Unit) ReloadCost(r rules.Rules) int {
	return u.MaxTU * r.ReloadCostPercent / 100
}

// CanAfford reports whether cost fits in the unit's current TU.
func (u *Unit) CanAfford(cost int) bool {
	return cost <= u.TU
}

// Spend deducts cost TU. If the unit cannot afford it, nothing changes
// and ErrInsufficientTimeUnits is returned.
func (u *Unit) Spend(cost int) error {
	rules.Assert(cost >= 0, "negative TU cost %d", cost)
	if !u.CanAfford(cost) {
		return fmt.Errorf("%s needs %d TU, has %d: %w", u, cost, u.TU, rules.ErrInsufficientTimeUnits)
	}
	u.TU -= cost
	u.check()
	return nil
}

// ResetTU refills the unit's time units.
func (u *Unit) ResetTU() {
	u.TU = u.MaxTU
}
