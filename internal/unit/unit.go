package unit

import (
	"fmt"

	"squad-tactics/internal/rules"
)

// ID uniquely identifies a unit within a mission.
type ID uint64

// NilID is the zero value; no valid unit has this ID.
const NilID ID = 0

// Faction is the side a unit fights for.
type Faction uint8

const (
	Player Faction = iota
	Alien
)

// Factions lists both sides in a fixed order.
var Factions = [2]Faction{Player, Alien}

// Opponent returns the other faction.
func (f Faction) Opponent() Faction {
	if f == Player {
		return Alien
	}
	return Player
}

func (f Faction) String() string {
	switch f {
	case Player:
		return "player"
	case Alien:
		return "alien"
	}
	return fmt.Sprintf("faction(%d)", uint8(f))
}

// Stats are the template values a unit is created from.
type Stats struct {
	Name      string
	MaxHP     int
	MaxTU     int
	Accuracy  int // 0-100
	Reactions int
}

// Unit is a soldier or an alien on the battlefield.
type Unit struct {
	ID        ID
	Name      string
	Faction   Faction
	X, Y      int
	HP, MaxHP int
	TU, MaxTU int
	Accuracy  int
	Reactions int
	Weapon    Weapon
	Ammo      int

	// Alien memory: set once the alien has spotted or been shot by a
	// soldier. LastKnown is where that soldier was last seen.
	Alerted      bool
	HasLastKnown bool
	LastKnownX   int
	LastKnownY   int
}

// New builds a unit at full HP, TU and ammo.
func New(id ID, f Faction, s Stats, w Weapon, x, y int) *Unit {
	rules.Assert(s.MaxHP > 0 && s.MaxTU > 0, "unit %q needs positive maxHP and maxTU", s.Name)
	return &Unit{
		ID:        id,
		Name:      s.Name,
		Faction:   f,
		X:         x,
		Y:         y,
		HP:        s.MaxHP,
		MaxHP:     s.MaxHP,
		TU:        s.MaxTU,
		MaxTU:     s.MaxTU,
		Accuracy:  s.Accuracy,
		Reactions: s.Reactions,
		Weapon:    w,
		Ammo:      w.ClipSize,
	}
}

// Alive reports whether the unit still has hit points.
func (u *Unit) Alive() bool { return u.HP > 0 }

// TakeDamage lowers HP, clamped at zero, and reports whether the unit died.
func (u *Unit) TakeDamage(dmg int) bool {
	rules.Assert(dmg >= 0, "negative damage %d on %s", dmg, u.Name)
	u.HP -= dmg
	if u.HP < 0 {
		u.HP = 0
	}
	u.check()
	return u.HP == 0
}

// Alert marks an alien as aware of a soldier standing at (x, y).
func (u *Unit) Alert(x, y int) {
	u.Alerted = true
	u.HasLastKnown = true
	u.LastKnownX, u.LastKnownY = x, y
}

// check asserts the resource invariants.
func (u *Unit) check() {
	rules.Assert(u.TU >= 0 && u.TU <= u.MaxTU, "%s tu=%d outside [0,%d]", u.Name, u.TU, u.MaxTU)
	rules.Assert(u.HP >= 0 && u.HP <= u.MaxHP, "%s hp=%d outside [0,%d]", u.Name, u.HP, u.MaxHP)
}

func (u *Unit) String() string {
	return fmt.Sprintf("%s#%d", u.Name, u.ID)
}
