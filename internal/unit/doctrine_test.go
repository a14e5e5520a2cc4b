package unit

import (
	"math"
	"testing"

	"squad-tactics/internal/rules"
)

func TestDoctrineScales(t *testing.T) {
	r := rules.Default()
	cases := []struct {
		name      string
		faction   Faction
		wantScale float64
		wantSnap  float64
		wantMinTU int
	}{
		{"soldier", Player, 0.25, 0.9 * 0.6, 0},
		{"alien", Alien, 0.30, 0.5, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := DoctrineFor(tc.faction, r)
			if d.ReactionScale() != tc.wantScale {
				t.Errorf("ReactionScale = %g; want %g", d.ReactionScale(), tc.wantScale)
			}
			if math.Abs(d.SnapMultiplier(rifle)-tc.wantSnap) > 1e-9 {
				t.Errorf("SnapMultiplier = %g; want %g", d.SnapMultiplier(rifle), tc.wantSnap)
			}
			if d.MinReactionTU() != tc.wantMinTU {
				t.Errorf("MinReactionTU = %d; want %d", d.MinReactionTU(), tc.wantMinTU)
			}
		})
	}
}

func TestSoldierRangePenalty(t *testing.T) {
	d := DoctrineFor(Player, rules.Default())
	cases := []struct {
		dist float64
		want float64
	}{
		{3, 0},
		{5, 0},
		{8, 6},
		{15, 20},
	}
	for _, c := range cases {
		if got := d.RangePenalty(rifle, c.dist); got != c.want {
			t.Errorf("RangePenalty(%g) = %g; want %g", c.dist, got, c.want)
		}
	}
	knife := Weapon{Name: "Knife", Range: 1.5, IsMelee: true}
	if got := d.RangePenalty(knife, 10); got != 0 {
		t.Errorf("melee penalty = %g; want 0", got)
	}
}

func TestAlienHasNoRangePenalty(t *testing.T) {
	d := DoctrineFor(Alien, rules.Default())
	if got := d.RangePenalty(rifle, 14); got != 0 {
		t.Errorf("alien RangePenalty = %g; want 0", got)
	}
}
