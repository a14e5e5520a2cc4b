package rules

import (
	"errors"
	"fmt"
)

// Rejections returned by intents and resolvers. None of them leave a
// mutation behind; callers compare with errors.Is.
var (
	ErrInvalidTarget          = errors.New("invalid target")
	ErrInsufficientTimeUnits  = errors.New("insufficient time units")
	ErrIllegalMove            = errors.New("illegal move")
	ErrActionDuringWrongPhase = errors.New("action during wrong phase")
	ErrOutOfAmmo              = errors.New("out of ammo")
	ErrNothingToReload        = errors.New("nothing to reload")
	ErrInvalidUnit            = errors.New("invalid unit")
)

// Assert panics when cond is false. Used for core invariants (TU and HP
// bounds, grid bounds) whose violation is a programming defect.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}
