package unit

// Weapon describes an attack a unit can make.
type Weapon struct {
	Name              string
	Range             float64 // Euclidean, tiles
	BaseAccuracy      int     // 0-100
	DamageMin         int
	DamageMax         int
	ActionCostPercent int     // attack cost as a percentage of max TU
	SnapAccuracy      float64 // 0..1, soldiers' reaction-shot quality
	ClipSize          int     // 0 = no ammunition tracked
	IsMelee           bool
}

// UsesAmmo reports whether the weapon draws from a clip.
func (w Weapon) UsesAmmo() bool { return w.ClipSize > 0 }
