package scenario

import (
	"math/rand"

	"squad-tactics/internal/rules"

	"github.com/rs/zerolog"
)

// Source returns a function that sets up a fresh mission on every call:
// the scenario file at path rebuilt each time, or a generated crash site
// when path is empty. All missions draw from rng.
func Source(path string, r rules.Rules, rng *rand.Rand, logger zerolog.Logger) (func() (*Setup, error), error) {
	if path == "" {
		return func() (*Setup, error) {
			return Random(r, rng, logger, DefaultRandom)
		}, nil
	}
	sc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return func() (*Setup, error) {
		return sc.Build(r, rng, logger)
	}, nil
}
