package world

import (
	"math/rand"

	"squad-tactics/internal/event"
	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/rules"
	"squad-tactics/internal/unit"

	"github.com/rs/zerolog"
)

// World is the mission context handed to every rules component: the
// map, both rosters, per-faction fog, the injected RNG and the event
// stream. Nothing in the core keeps package-level state.
type World struct {
	Map    *gamemap.GameMap
	Rules  rules.Rules
	RNG    *rand.Rand
	Events *event.Log
	Log    zerolog.Logger

	// Turn is stamped on every emitted event.
	Turn int

	nextID  unit.ID
	units   []*unit.Unit // creation order, dead units included
	byID    map[unit.ID]*unit.Unit
	fog     [2]*gamemap.FogLayer
	onDeath []func(*unit.Unit)
}

// New creates an empty World on gmap.
func New(gmap *gamemap.GameMap, r rules.Rules, rng *rand.Rand, logger zerolog.Logger) *World {
	w := &World{
		Map:    gmap,
		Rules:  r,
		RNG:    rng,
		Events: event.NewLog(logger),
		Log:    logger,
		Turn:   1,
		nextID: 1,
		byID:   make(map[unit.ID]*unit.Unit),
	}
	for _, f := range unit.Factions {
		w.fog[f] = gamemap.NewFogLayer(gmap.Width, gmap.Height)
	}
	return w
}

// CreateUnit mints a unit at (x, y). The tile must be walkable and free.
func (w *World) CreateUnit(f unit.Faction, s unit.Stats, wpn unit.Weapon, x, y int) *unit.Unit {
	rules.Assert(w.Map.IsWalkable(x, y), "spawn %s at unwalkable (%d,%d)", s.Name, x, y)
	rules.Assert(w.UnitAt(x, y) == nil, "spawn %s on occupied (%d,%d)", s.Name, x, y)
	u := unit.New(w.nextID, f, s, wpn, x, y)
	w.nextID++
	w.units = append(w.units, u)
	w.byID[u.ID] = u
	return u
}

// Unit returns the unit with the given id, dead or alive, or nil.
func (w *World) Unit(id unit.ID) *unit.Unit {
	return w.byID[id]
}

// Alive reports whether id names a living unit.
func (w *World) Alive(id unit.ID) bool {
	u := w.byID[id]
	return u != nil && u.Alive()
}

// Living returns the living units of faction f in creation order.
func (w *World) Living(f unit.Faction) []*unit.Unit {
	var out []*unit.Unit
	for _, u := range w.units {
		if u.Faction == f && u.Alive() {
			out = append(out, u)
		}
	}
	return out
}

// LivingCount returns how many units of f are alive.
func (w *World) LivingCount(f unit.Faction) int {
	n := 0
	for _, u := range w.units {
		if u.Faction == f && u.Alive() {
			n++
		}
	}
	return n
}

// All returns every unit ever created, in creation order.
func (w *World) All() []*unit.Unit {
	out := make([]*unit.Unit, len(w.units))
	copy(out, w.units)
	return out
}

// UnitAt returns the living unit standing on (x, y), or nil.
func (w *World) UnitAt(x, y int) *unit.Unit {
	for _, u := range w.units {
		if u.Alive() && u.X == x && u.Y == y {
			return u
		}
	}
	return nil
}

// Occupied reports whether a living unit stands on (x, y).
func (w *World) Occupied(x, y int) bool {
	return w.UnitAt(x, y) != nil
}

// Place moves u onto (x, y). Callers validate first; a bad target is a
// defect, not a rejection.
func (w *World) Place(u *unit.Unit, x, y int) {
	rules.Assert(w.Map.IsWalkable(x, y), "%s placed on unwalkable (%d,%d)", u, x, y)
	if other := w.UnitAt(x, y); other != nil && other != u {
		rules.Assert(false, "%s placed on %s at (%d,%d)", u, other, x, y)
	}
	u.X, u.Y = x, y
}

// Fog returns faction f's fog layer.
func (w *World) Fog(f unit.Faction) *gamemap.FogLayer {
	return w.fog[f]
}

// Emit stamps e with the current turn and appends it to the stream.
func (w *World) Emit(e event.Event) {
	e.Turn = w.Turn
	w.Events.Append(e)
}

// OnDeath registers fn to run, on the same call stack, whenever a unit
// dies. The turn controller uses it for the victory/defeat check.
func (w *World) OnDeath(fn func(*unit.Unit)) {
	w.onDeath = append(w.onDeath, fn)
}

// Bury announces the death of u. Its tile is released at once because
// Living and UnitAt only ever see units with HP left.
func (w *World) Bury(u *unit.Unit) {
	rules.Assert(!u.Alive(), "bury called on living %s", u)
	w.Log.Info().Str("unit", u.String()).Str("faction", u.Faction.String()).Msg("unit killed")
	w.Emit(event.Event{Kind: event.KindUnitDied, Actor: u.ID, X: u.X, Y: u.Y})
	for _, fn := range w.onDeath {
		fn(u)
	}
}
