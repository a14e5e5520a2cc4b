package archive

import (
	"encoding/json"
	"fmt"
	"time"

	"squad-tactics/internal/event"
	"squad-tactics/internal/unit"
	"squad-tactics/internal/world"

	"github.com/vmihailenco/msgpack/v5"
	"gorm.io/datatypes"
)

// Outcome labels stored for missions that never reached a terminal phase.
const OutcomeAbandoned = "abandoned"

// Debrief is the stored summary of one finished or abandoned mission.
type Debrief struct {
	ID               uint   `gorm:"primaryKey"`
	Mission          string `gorm:"index"`
	Commander        string
	Seed             int64
	Outcome          string `gorm:"index"`
	Turns            int
	Shots            int
	Hits             int
	ReactionShots    int
	AliensKilled     int
	SoldiersLost     int
	SoldiersDeployed int
	AliensDeployed   int
	RunID            string         `gorm:"uniqueIndex"`
	Casualties       datatypes.JSON // []Casualty
	Replay           []byte         // msgpack-encoded []event.Event
	CreatedAt        time.Time
}

// Casualty is one unit lost during the mission.
type Casualty struct {
	Name    string `json:"name"`
	Faction string `json:"faction"`
	Turn    int    `json:"turn"`
}

// Tally builds a debrief from a mission's full event stream.
func Tally(name string, seed int64, w *world.World, events []event.Event) (Debrief, error) {
	d := Debrief{
		Mission: name,
		Seed:    seed,
		Outcome: OutcomeAbandoned,
		Turns:   w.Turn,
	}
	for _, u := range w.All() {
		if u.Faction == unit.Player {
			d.SoldiersDeployed++
		} else {
			d.AliensDeployed++
		}
	}
	var lost []Casualty
	for _, e := range events {
		switch e.Kind {
		case event.KindHit:
			d.Shots++
			d.Hits++
		case event.KindMiss:
			d.Shots++
		case event.KindReactionFired:
			d.ReactionShots++
		case event.KindUnitDied:
			c := Casualty{Faction: unit.Alien.String(), Turn: e.Turn}
			if u := w.Unit(e.Actor); u != nil {
				c.Name, c.Faction = u.Name, u.Faction.String()
			}
			if c.Faction == unit.Player.String() {
				d.SoldiersLost++
			} else {
				d.AliensKilled++
			}
			lost = append(lost, c)
		case event.KindMissionEnded:
			d.Outcome = e.Phase.String()
		}
		if e.Turn > d.Turns {
			d.Turns = e.Turn
		}
	}
	if len(lost) > 0 {
		data, err := json.Marshal(lost)
		if err != nil {
			return d, fmt.Errorf("encode casualties: %w", err)
		}
		d.Casualties = data
	}
	return d, nil
}

// CasualtyList decodes the stored casualties.
func (d Debrief) CasualtyList() ([]Casualty, error) {
	if len(d.Casualties) == 0 {
		return nil, nil
	}
	var out []Casualty
	if err := json.Unmarshal(d.Casualties, &out); err != nil {
		return nil, fmt.Errorf("decode casualties: %w", err)
	}
	return out, nil
}

// AttachReplay stores the event stream so the mission can be replayed.
func (d *Debrief) AttachReplay(events []event.Event) error {
	b, err := msgpack.Marshal(events)
	if err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	d.Replay = b
	return nil
}

// Events decodes the stored replay.
func (d Debrief) Events() ([]event.Event, error) {
	if len(d.Replay) == 0 {
		return nil, nil
	}
	var out []event.Event
	if err := msgpack.Unmarshal(d.Replay, &out); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	return out, nil
}

// Accuracy is hits over shots, zero when nothing was fired.
func (d Debrief) Accuracy() float64 {
	if d.Shots == 0 {
		return 0
	}
	return float64(d.Hits) / float64(d.Shots)
}
