package scenario

import (
	"fmt"
	"math/rand"

	"squad-tactics/assets"
	"squad-tactics/internal/generate"
	"squad-tactics/internal/rules"
	"squad-tactics/internal/unit"
	"squad-tactics/internal/world"

	"github.com/rs/zerolog"
)

// RandomOptions sizes a generated mission.
type RandomOptions struct {
	Soldiers int
	Aliens   int
}

// DefaultRandom is a four-soldier squad against six aliens.
var DefaultRandom = RandomOptions{Soldiers: 4, Aliens: 6}

// Random generates a crash-site mission: a BSP map, the squad in the
// landing zone with stock soldier templates in order, and aliens drawn
// at random from the alien templates.
func Random(r rules.Rules, rng *rand.Rand, logger zerolog.Logger, opts RandomOptions) (*Setup, error) {
	site := generate.Generate(generate.DefaultConfig(rng))
	dep, err := generate.Deploy(site, opts.Soldiers, opts.Aliens, rng)
	if err != nil {
		return nil, fmt.Errorf("deploy: %w", err)
	}

	w := world.New(site.Map, r, rng, logger)
	setup := &Setup{
		Name:     "Operation " + assets.OperationNames[rng.Intn(len(assets.OperationNames))],
		Briefing: assets.LoreOpening,
		Theme:    "crash",
		World:    w,
		Glyphs:   make(map[unit.ID]string),
	}

	for i, p := range dep.Soldiers {
		def := assets.Soldiers[i%len(assets.Soldiers)]
		stats := def.Stats
		stats.Name = assets.Callsigns[i%len(assets.Callsigns)]
		wpn, ok := assets.Weapon(def.Weapon)
		if !ok {
			return nil, fmt.Errorf("soldier template %q: unknown weapon %q", def.ID, def.Weapon)
		}
		u := w.CreateUnit(unit.Player, stats, wpn, p.X, p.Y)
		setup.Glyphs[u.ID] = def.Emoji
	}
	for _, p := range dep.Aliens {
		def := assets.Aliens[rng.Intn(len(assets.Aliens))]
		wpn, ok := assets.Weapon(def.Weapon)
		if !ok {
			return nil, fmt.Errorf("alien template %q: unknown weapon %q", def.ID, def.Weapon)
		}
		u := w.CreateUnit(unit.Alien, def.Stats, wpn, p.X, p.Y)
		setup.Glyphs[u.ID] = def.Emoji
	}

	logger.Info().
		Str("mission", setup.Name).
		Int("rooms", len(site.Map.Rooms)).
		Int("soldiers", len(dep.Soldiers)).
		Int("aliens", len(dep.Aliens)).
		Msg("generated mission")
	return setup, nil
}
