package assets

import "squad-tactics/internal/unit"

// Weapons is the stock weapon table, keyed by the ids scenario files use.
var Weapons = map[string]unit.Weapon{
	"rifle": {
		Name: "Rifle", Range: 15, BaseAccuracy: 60, DamageMin: 20, DamageMax: 40,
		ActionCostPercent: 25, SnapAccuracy: 0.9, ClipSize: 20,
	},
	"sniper": {
		Name: "Sniper Rifle", Range: 22, BaseAccuracy: 90, DamageMin: 30, DamageMax: 45,
		ActionCostPercent: 40, SnapAccuracy: 0.5, ClipSize: 5,
	},
	"cannon": {
		Name: "Heavy Cannon", Range: 12, BaseAccuracy: 55, DamageMin: 35, DamageMax: 60,
		ActionCostPercent: 33, SnapAccuracy: 0.7, ClipSize: 6,
	},
	"pistol": {
		Name: "Pistol", Range: 9, BaseAccuracy: 65, DamageMin: 12, DamageMax: 26,
		ActionCostPercent: 18, SnapAccuracy: 1.0, ClipSize: 12,
	},
	"knife": {
		Name: "Combat Knife", Range: 1.5, BaseAccuracy: 85, DamageMin: 10, DamageMax: 20,
		ActionCostPercent: 12, SnapAccuracy: 1.0, IsMelee: true,
	},
	"plasma_pistol": {
		Name: "Plasma Pistol", Range: 10, BaseAccuracy: 65, DamageMin: 20, DamageMax: 40,
		ActionCostPercent: 20, SnapAccuracy: 0.8, ClipSize: 26,
	},
	"plasma_rifle": {
		Name: "Plasma Rifle", Range: 14, BaseAccuracy: 70, DamageMin: 30, DamageMax: 50,
		ActionCostPercent: 25, SnapAccuracy: 0.8, ClipSize: 28,
	},
	"heavy_plasma": {
		Name: "Heavy Plasma", Range: 14, BaseAccuracy: 75, DamageMin: 40, DamageMax: 65,
		ActionCostPercent: 30, SnapAccuracy: 0.6, ClipSize: 35,
	},
	"claws": {
		Name: "Claws", Range: 1.5, BaseAccuracy: 90, DamageMin: 25, DamageMax: 45,
		ActionCostPercent: 15, SnapAccuracy: 1.0, IsMelee: true,
	},
}

// Weapon returns the stock weapon with the given id.
func Weapon(id string) (unit.Weapon, bool) {
	w, ok := Weapons[id]
	return w, ok
}
