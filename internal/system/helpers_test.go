package system

import (
	"math/rand"

	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/rules"
	"squad-tactics/internal/unit"
	"squad-tactics/internal/world"

	"github.com/rs/zerolog"
)

// scriptedSource replays fixed Float64 values so tests can force hits,
// misses and reaction checks. Once exhausted it keeps returning 0.99.
type scriptedSource struct {
	vals []float64
	i    int
}

func (s *scriptedSource) Int63() int64 {
	v := 0.99
	if s.i < len(s.vals) {
		v = s.vals[s.i]
		s.i++
	}
	return int64(v * (1 << 63))
}

func (s *scriptedSource) Seed(int64) {}

func scripted(vals ...float64) *rand.Rand {
	return rand.New(&scriptedSource{vals: vals})
}

// openWorld builds an all-floor map. A nil rng means seed 1.
func openWorld(w, h int, rng *rand.Rand) *world.World {
	gmap := gamemap.New(w, h)
	for y := range h {
		for x := range w {
			gmap.Set(x, y, gamemap.MakeFloor())
		}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return world.New(gmap, rules.Default(), rng, zerolog.Nop())
}

var (
	rifle = unit.Weapon{
		Name: "Rifle", Range: 15, BaseAccuracy: 100, DamageMin: 5, DamageMax: 5,
		ActionCostPercent: 25, SnapAccuracy: 0.9, ClipSize: 20,
	}
	plasma = unit.Weapon{
		Name: "Plasma", Range: 4, BaseAccuracy: 100, DamageMin: 50, DamageMax: 50,
		ActionCostPercent: 20, ClipSize: 6,
	}
	trooper = unit.Stats{Name: "Trooper", MaxHP: 30, MaxTU: 58, Accuracy: 70, Reactions: 45}
	drone   = unit.Stats{Name: "Drone", MaxHP: 20, MaxTU: 60, Accuracy: 80, Reactions: 54}
)
