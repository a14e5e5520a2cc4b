// Package mission is the turn controller: it owns the phase state
// machine, accepts player intents and drives the alien phase.
package mission

import (
	"fmt"

	"squad-tactics/internal/event"
	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/rules"
	"squad-tactics/internal/system"
	"squad-tactics/internal/unit"
	"squad-tactics/internal/world"
)

// Turn is the current phase and turn number.
type Turn struct {
	Phase  event.Phase
	Number int
}

// UnitView is a read-only copy of a unit for presentation.
type UnitView struct {
	ID       unit.ID
	Name     string
	Faction  unit.Faction
	X, Y     int
	HP       int
	MaxHP    int
	TU       int
	MaxTU    int
	Ammo     int
	ClipSize int
	Weapon   string
	Alive    bool
	Seen     bool // in the squad's current view; living soldiers always are
}

// Mission runs one squad-vs-aliens engagement.
type Mission struct {
	w        *world.World
	vis      *system.Visibility
	phase    event.Phase
	selected unit.ID
}

// New starts a mission on w in the player phase of turn 1 with every
// soldier at full TU and both factions' fog computed.
func New(w *world.World) *Mission {
	m := &Mission{
		w:     w,
		vis:   system.NewVisibility(w),
		phase: event.PhasePlayerTurn,
	}
	w.Turn = 1
	for _, s := range w.Living(unit.Player) {
		s.ResetTU()
	}
	m.vis.RecomputeAll()
	w.OnDeath(func(*unit.Unit) { m.checkOutcome() })
	w.Log.Info().
		Int("soldiers", w.LivingCount(unit.Player)).
		Int("aliens", w.LivingCount(unit.Alien)).
		Msg("mission started")
	m.checkOutcome()
	return m
}

// World exposes the mission context to hosts that need the map.
func (m *Mission) World() *world.World { return m.w }

// Turn reports the current phase and turn number.
func (m *Mission) Turn() Turn {
	return Turn{Phase: m.phase, Number: m.w.Turn}
}

// Over reports whether the mission reached Victory or Defeat.
func (m *Mission) Over() bool { return m.phase.Terminal() }

// Selected returns the selected soldier, or unit.NilID.
func (m *Mission) Selected() unit.ID { return m.selected }

// Select marks a living soldier as the acting unit.
func (m *Mission) Select(id unit.ID) error {
	s, err := m.soldier(id)
	if err != nil {
		return err
	}
	m.selected = s.ID
	return nil
}

// RequestMove walks soldier id along path. Steps run one at a time with
// reaction fire after each; a soldier killed on the way stops there and
// the request still succeeds.
func (m *Mission) RequestMove(id unit.ID, path []gamemap.Point) error {
	s, err := m.soldier(id)
	if err != nil {
		return fmt.Errorf("move: %w", err)
	}
	m.selected = s.ID
	res, err := system.MoveAlong(m.w, s, path)
	if err != nil {
		return fmt.Errorf("move %s: %w", s, err)
	}
	if res.Truncated {
		m.w.Log.Info().Str("unit", s.String()).Int("steps", res.Steps).Msg("move cut short")
	}
	m.dropDeadSelection()
	return nil
}

// RequestAttack fires soldier id at target.
func (m *Mission) RequestAttack(id, target unit.ID) error {
	s, err := m.soldier(id)
	if err != nil {
		return fmt.Errorf("attack: %w", err)
	}
	m.selected = s.ID
	t := m.w.Unit(target)
	if t == nil {
		return fmt.Errorf("attack: unknown target %d: %w", target, rules.ErrInvalidTarget)
	}
	if _, err := system.ResolveAttack(m.w, s, t, system.AttackOptions{}); err != nil {
		return fmt.Errorf("attack %s: %w", t, err)
	}
	return nil
}

// RequestReload refills soldier id's clip.
func (m *Mission) RequestReload(id unit.ID) error {
	s, err := m.soldier(id)
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	m.selected = s.ID
	if err := system.Reload(m.w, s); err != nil {
		return fmt.Errorf("reload %s: %w", s, err)
	}
	return nil
}

// RequestEndTurn hands control to the aliens, runs every activation and,
// unless the mission ended meanwhile, opens the next player turn.
func (m *Mission) RequestEndTurn() error {
	if err := m.requirePlayerTurn(); err != nil {
		return fmt.Errorf("end turn: %w", err)
	}
	m.selected = unit.NilID
	m.setPhase(event.PhaseAlienTurn)

	queue := m.w.Living(unit.Alien)
	for _, a := range queue {
		a.ResetTU()
	}
	for _, a := range queue {
		if m.Over() {
			return nil
		}
		if !a.Alive() {
			continue
		}
		act := system.ActivateAlien(m.w, a)
		m.w.Log.Debug().Str("alien", a.String()).Uint8("action", uint8(act.Action)).Msg("alien activated")
	}
	if m.Over() {
		return nil
	}

	for _, s := range m.w.Living(unit.Player) {
		s.ResetTU()
	}
	m.w.Turn++
	m.vis.RecomputeAll()
	m.setPhase(event.PhasePlayerTurn)
	return nil
}

// Snapshot copies every unit, dead ones included, in creation order.
func (m *Mission) Snapshot() []UnitView {
	all := m.w.All()
	out := make([]UnitView, 0, len(all))
	for _, u := range all {
		out = append(out, UnitView{
			ID: u.ID, Name: u.Name, Faction: u.Faction,
			X: u.X, Y: u.Y,
			HP: u.HP, MaxHP: u.MaxHP,
			TU: u.TU, MaxTU: u.MaxTU,
			Ammo: u.Ammo, ClipSize: u.Weapon.ClipSize,
			Weapon: u.Weapon.Name,
			Alive:  u.Alive(),
			Seen:   (u.Faction == unit.Player && u.Alive()) || m.vis.SeenBy(unit.Player, u),
		})
	}
	return out
}

// Fog returns a copy of faction f's visible and explored grids.
func (m *Mission) Fog(f unit.Faction) *gamemap.FogLayer {
	return m.w.Fog(f).Clone()
}

// Events is the mission's event stream.
func (m *Mission) Events() *event.Log { return m.w.Events }

// Drain returns events appended since the previous Drain.
func (m *Mission) Drain() []event.Event { return m.w.Events.Drain() }

func (m *Mission) requirePlayerTurn() error {
	if m.phase != event.PhasePlayerTurn {
		return fmt.Errorf("phase is %s: %w", m.phase, rules.ErrActionDuringWrongPhase)
	}
	return nil
}

// soldier resolves id to a living soldier during the player phase.
func (m *Mission) soldier(id unit.ID) (*unit.Unit, error) {
	if err := m.requirePlayerTurn(); err != nil {
		return nil, err
	}
	u := m.w.Unit(id)
	if u == nil || !u.Alive() || u.Faction != unit.Player {
		return nil, fmt.Errorf("unit %d is not a living soldier: %w", id, rules.ErrInvalidUnit)
	}
	return u, nil
}

func (m *Mission) dropDeadSelection() {
	if m.selected != unit.NilID && !m.w.Alive(m.selected) {
		m.selected = unit.NilID
	}
}

func (m *Mission) setPhase(p event.Phase) {
	rules.Assert(!m.phase.Terminal(), "phase change from terminal %s to %s", m.phase, p)
	m.phase = p
	m.w.Emit(event.Event{Kind: event.KindPhaseChanged, Phase: p})
	m.w.Log.Info().Int("turn", m.w.Turn).Str("phase", p.String()).Msg("phase changed")
}

// checkOutcome runs on every death, on the stack of the killing shot.
func (m *Mission) checkOutcome() {
	if m.phase.Terminal() {
		return
	}
	var end event.Phase
	switch {
	case m.w.LivingCount(unit.Alien) == 0:
		end = event.PhaseVictory
	case m.w.LivingCount(unit.Player) == 0:
		end = event.PhaseDefeat
	default:
		return
	}
	m.selected = unit.NilID
	m.setPhase(end)
	m.w.Emit(event.Event{Kind: event.KindMissionEnded, Phase: end})
}
