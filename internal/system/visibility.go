package system

import (
	"math"

	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/unit"
	"squad-tactics/internal/world"
)

// Visibility computes what units and factions can see. It holds no
// state of its own; fog lives in the world.
type Visibility struct {
	w *world.World
}

// NewVisibility returns the visibility service for w.
func NewVisibility(w *world.World) *Visibility {
	return &Visibility{w: w}
}

// Sight casts rays from the unit's tile every RayStepDegrees out to
// VisionRange. A ray stops at the first opaque tile, which is itself
// seen. The unit's own tile is always included.
func (v *Visibility) Sight(u *unit.Unit) []gamemap.Point {
	gmap := v.w.Map
	r := v.w.Rules
	seen := map[gamemap.Point]bool{{X: u.X, Y: u.Y}: true}
	pts := []gamemap.Point{{X: u.X, Y: u.Y}}

	rays := int(math.Ceil(360 / r.RayStepDegrees))
	for i := range rays {
		rad := float64(i) * r.RayStepDegrees * math.Pi / 180
		cos, sin := math.Cos(rad), math.Sin(rad)
		for step := 1; step <= r.VisionRange; step++ {
			x := u.X + int(math.Round(cos*float64(step)))
			y := u.Y + int(math.Round(sin*float64(step)))
			if !gmap.InBounds(x, y) {
				break
			}
			p := gamemap.Point{X: x, Y: y}
			if !seen[p] {
				seen[p] = true
				pts = append(pts, p)
			}
			if !gmap.IsTransparent(x, y) {
				break
			}
		}
	}
	return pts
}

// Sees reports whether (x, y) is in the observer's sight.
func (v *Visibility) Sees(observer *unit.Unit, x, y int) bool {
	for _, p := range v.Sight(observer) {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// Recompute rebuilds faction f's visible layer from scratch as the union
// of every living member's sight. Explored only grows.
func (v *Visibility) Recompute(f unit.Faction) {
	fog := v.w.Fog(f)
	fog.Reset()
	for _, u := range v.w.Living(f) {
		for _, p := range v.Sight(u) {
			fog.Mark(p.X, p.Y)
		}
	}
	v.w.Log.Debug().
		Str("faction", f.String()).
		Int("visible", fog.VisibleCount()).
		Msg("visibility recomputed")
}

// RecomputeAll rebuilds both factions' layers.
func (v *Visibility) RecomputeAll() {
	for _, f := range unit.Factions {
		v.Recompute(f)
	}
}

// SeenBy reports whether u stands on a tile faction f currently sees.
func (v *Visibility) SeenBy(f unit.Faction, u *unit.Unit) bool {
	return v.w.Fog(f).IsVisible(u.X, u.Y)
}
