package rules

import "fmt"

// Rules holds the numeric contracts of the combat engine.
type Rules struct {
	TUPerTile         int     // TU spent per tile of movement
	VisionRange       int     // sight radius in tiles
	RayStepDegrees    float64 // angular step between visibility rays
	ReloadCostPercent int     // reload cost as a percentage of max TU

	// Soldiers' ranged weapons lose RangePenaltyPerTile accuracy points
	// for every tile beyond RangePenaltyFreeTiles.
	RangePenaltyFreeTiles int
	RangePenaltyPerTile   float64

	AlienReactionScale   float64
	SoldierReactionScale float64
	AlienSnapMultiplier  float64
	SoldierSnapFactor    float64 // multiplied with the weapon's SnapAccuracy
	AlienMinReactionTU   int
	SoldierMinReactionTU int
}

// Default returns the documented rule set.
func Default() Rules {
	return Rules{
		TUPerTile:             4,
		VisionRange:           10,
		RayStepDegrees:        2,
		ReloadCostPercent:     15,
		RangePenaltyFreeTiles: 5,
		RangePenaltyPerTile:   2,
		AlienReactionScale:    0.30,
		SoldierReactionScale:  0.25,
		AlienSnapMultiplier:   0.5,
		SoldierSnapFactor:     0.6,
		AlienMinReactionTU:    15,
		SoldierMinReactionTU:  0,
	}
}

// Validate reports the first rule value that would break the engine.
func (r Rules) Validate() error {
	switch {
	case r.TUPerTile <= 0:
		return fmt.Errorf("tuPerTile must be positive, got %d", r.TUPerTile)
	case r.VisionRange <= 0:
		return fmt.Errorf("visionRange must be positive, got %d", r.VisionRange)
	case r.RayStepDegrees <= 0 || r.RayStepDegrees > 90:
		return fmt.Errorf("rayStepDegrees must be in (0, 90], got %g", r.RayStepDegrees)
	case r.ReloadCostPercent < 0 || r.ReloadCostPercent > 100:
		return fmt.Errorf("reloadCostPercent must be in [0, 100], got %d", r.ReloadCostPercent)
	case r.RangePenaltyFreeTiles < 0 || r.RangePenaltyPerTile < 0:
		return fmt.Errorf("range penalty values must not be negative")
	case r.AlienReactionScale < 0 || r.SoldierReactionScale < 0:
		return fmt.Errorf("reaction scales must not be negative")
	case r.AlienSnapMultiplier < 0 || r.SoldierSnapFactor < 0:
		return fmt.Errorf("snap multipliers must not be negative")
	case r.AlienMinReactionTU < 0 || r.SoldierMinReactionTU < 0:
		return fmt.Errorf("reaction TU thresholds must not be negative")
	}
	return nil
}
