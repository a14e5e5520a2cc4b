package event

import (
	"fmt"

	"squad-tactics/internal/unit"
)

// Kind identifies an event type.
type Kind uint8

const (
	KindHit Kind = iota
	KindMiss
	KindReactionFired
	KindUnitDied
	KindPhaseChanged
	KindMissionEnded
	KindUnitMoved
	KindReloaded
)

var kindNames = [...]string{
	KindHit:           "hit",
	KindMiss:          "miss",
	KindReactionFired: "reaction_fired",
	KindUnitDied:      "unit_died",
	KindPhaseChanged:  "phase_changed",
	KindMissionEnded:  "mission_ended",
	KindUnitMoved:     "unit_moved",
	KindReloaded:      "reloaded",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Phase mirrors the turn state machine for consumers that must not
// import the mission package.
type Phase uint8

const (
	PhasePlayerTurn Phase = iota
	PhaseAlienTurn
	PhaseVictory
	PhaseDefeat
)

func (p Phase) String() string {
	switch p {
	case PhasePlayerTurn:
		return "player turn"
	case PhaseAlienTurn:
		return "alien turn"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Terminal reports whether the phase ends the mission.
func (p Phase) Terminal() bool { return p == PhaseVictory || p == PhaseDefeat }

// Event is one state change produced by the core. Fields not relevant to
// a kind are left zero.
type Event struct {
	Kind   Kind
	Turn   int
	Actor  unit.ID // attacker, observer, mover, reloader or victim
	Target unit.ID // attack target or reacted-to mover
	Damage int
	Hit    bool
	X, Y   int // position after a move
	Phase  Phase
}

func (e Event) String() string {
	switch e.Kind {
	case KindHit:
		return fmt.Sprintf("turn %d: %d hits %d for %d", e.Turn, e.Actor, e.Target, e.Damage)
	case KindMiss:
		return fmt.Sprintf("turn %d: %d misses %d", e.Turn, e.Actor, e.Target)
	case KindReactionFired:
		return fmt.Sprintf("turn %d: %d reacts to %d (hit=%v)", e.Turn, e.Actor, e.Target, e.Hit)
	case KindUnitDied:
		return fmt.Sprintf("turn %d: %d dies", e.Turn, e.Actor)
	case KindPhaseChanged:
		return fmt.Sprintf("turn %d: %s", e.Turn, e.Phase)
	case KindMissionEnded:
		return fmt.Sprintf("turn %d: mission ended in %s", e.Turn, e.Phase)
	case KindUnitMoved:
		return fmt.Sprintf("turn %d: %d moves to (%d,%d)", e.Turn, e.Actor, e.X, e.Y)
	case KindReloaded:
		return fmt.Sprintf("turn %d: %d reloads", e.Turn, e.Actor)
	}
	return e.Kind.String()
}
