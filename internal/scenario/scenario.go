// Package scenario turns YAML mission files, or a generated site, into a
// ready world: map, rosters and unit glyphs.
package scenario

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"squad-tactics/assets"
	"squad-tactics/internal/gamemap"
	"squad-tactics/internal/rules"
	"squad-tactics/internal/unit"
	"squad-tactics/internal/world"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Map legend.
const (
	charWall    = '#'
	charFloor   = '.'
	charSpecial = '+'
	charSoldier = 'S'
	charAlien   = 'A'
)

// WeaponSpec is a weapon entry in a scenario file.
type WeaponSpec struct {
	Name              string  `yaml:"name"`
	Range             float64 `yaml:"range"`
	BaseAccuracy      int     `yaml:"base_accuracy"`
	DamageMin         int     `yaml:"damage_min"`
	DamageMax         int     `yaml:"damage_max"`
	ActionCostPercent int     `yaml:"action_cost_percent"`
	SnapAccuracy      float64 `yaml:"snap_accuracy"`
	ClipSize          int     `yaml:"clip_size"`
	Melee             bool    `yaml:"melee"`
}

func (ws WeaponSpec) validate() error {
	switch {
	case ws.Range <= 0:
		return fmt.Errorf("range must be positive")
	case ws.DamageMin < 0 || ws.DamageMax < ws.DamageMin:
		return fmt.Errorf("bad damage %d-%d", ws.DamageMin, ws.DamageMax)
	case ws.ActionCostPercent < 0 || ws.ActionCostPercent > 100:
		return fmt.Errorf("action_cost_percent %d outside 0-100", ws.ActionCostPercent)
	case ws.BaseAccuracy < 0 || ws.BaseAccuracy > 100:
		return fmt.Errorf("base_accuracy %d outside 0-100", ws.BaseAccuracy)
	case ws.SnapAccuracy < 0 || ws.SnapAccuracy > 1:
		return fmt.Errorf("snap_accuracy %g outside 0-1", ws.SnapAccuracy)
	case ws.ClipSize < 0:
		return fmt.Errorf("negative clip_size %d", ws.ClipSize)
	}
	return nil
}

// UnitSpec is one roster entry. Template supplies defaults that the
// explicit fields override; units without a position take the next
// S or A marker on the map.
type UnitSpec struct {
	Template  string `yaml:"template"`
	Name      string `yaml:"name"`
	Glyph     string `yaml:"glyph"`
	Weapon    string `yaml:"weapon"`
	MaxHP     int    `yaml:"max_hp"`
	MaxTU     int    `yaml:"max_tu"`
	Accuracy  int    `yaml:"accuracy"`
	Reactions int    `yaml:"reactions"`
	At        []int  `yaml:"at,flow"`
}

// Scenario is a parsed mission file.
type Scenario struct {
	Name     string                `yaml:"name"`
	Briefing string                `yaml:"briefing"`
	Theme    string                `yaml:"theme"`
	Map      string                `yaml:"map"`
	Weapons  map[string]WeaponSpec `yaml:"weapons"`
	Soldiers []UnitSpec            `yaml:"soldiers"`
	Aliens   []UnitSpec            `yaml:"aliens"`
}

// Setup is a world ready for mission.New plus what hosts need to draw it.
type Setup struct {
	Name     string
	Briefing string
	Theme    string
	World    *world.World
	Glyphs   map[unit.ID]string
}

// Parse decodes a scenario file.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if strings.TrimSpace(s.Map) == "" {
		return nil, fmt.Errorf("scenario %q has no map", s.Name)
	}
	if len(s.Soldiers) == 0 || len(s.Aliens) == 0 {
		return nil, fmt.Errorf("scenario %q needs at least one soldier and one alien", s.Name)
	}
	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// ParseMap reads the ASCII map and returns it with the soldier and alien
// markers in reading order. Rows must all be the same width.
func ParseMap(text string) (*gamemap.GameMap, []gamemap.Point, []gamemap.Point, error) {
	var rows []string
	for _, line := range strings.Split(strings.Trim(text, "\n"), "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) == 0 {
		return nil, nil, nil, fmt.Errorf("empty map")
	}
	width := len(rows[0])
	gmap := gamemap.New(width, len(rows))
	var soldiers, aliens []gamemap.Point

	for y, row := range rows {
		if len(row) != width {
			return nil, nil, nil, fmt.Errorf("map row %d is %d wide, want %d", y, len(row), width)
		}
		for x, c := range []byte(row) {
			switch c {
			case charWall:
			case charFloor:
				gmap.Set(x, y, gamemap.MakeFloor())
			case charSpecial:
				gmap.Set(x, y, gamemap.MakeSpecialFloor())
			case charSoldier:
				gmap.Set(x, y, gamemap.MakeFloor())
				soldiers = append(soldiers, gamemap.Point{X: x, Y: y})
			case charAlien:
				gmap.Set(x, y, gamemap.MakeFloor())
				aliens = append(aliens, gamemap.Point{X: x, Y: y})
			default:
				return nil, nil, nil, fmt.Errorf("map (%d,%d): unknown tile %q", x, y, c)
			}
		}
	}
	return gmap, soldiers, aliens, nil
}

// Build creates the world for s.
func (s *Scenario) Build(r rules.Rules, rng *rand.Rand, logger zerolog.Logger) (*Setup, error) {
	gmap, sMarks, aMarks, err := ParseMap(s.Map)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	w := world.New(gmap, r, rng, logger)
	setup := &Setup{Name: s.Name, Briefing: s.Briefing, Theme: s.Theme, World: w, Glyphs: make(map[unit.ID]string)}

	sides := []struct {
		faction unit.Faction
		entries []UnitSpec
		marks   []gamemap.Point
	}{
		{unit.Player, s.Soldiers, sMarks},
		{unit.Alien, s.Aliens, aMarks},
	}
	for _, side := range sides {
		next := 0
		for i, entry := range side.entries {
			def, wpn, err := s.resolve(side.faction, entry)
			if err != nil {
				return nil, fmt.Errorf("scenario %q %s %d: %w", s.Name, side.faction, i+1, err)
			}
			var p gamemap.Point
			switch {
			case len(entry.At) == 2:
				p = gamemap.Point{X: entry.At[0], Y: entry.At[1]}
			case len(entry.At) != 0:
				return nil, fmt.Errorf("scenario %q %s %d: at needs [x, y]", s.Name, side.faction, i+1)
			case next < len(side.marks):
				p = side.marks[next]
				next++
			default:
				return nil, fmt.Errorf("scenario %q %s %d: no position and no map marker left", s.Name, side.faction, i+1)
			}
			if !gmap.IsWalkable(p.X, p.Y) || w.Occupied(p.X, p.Y) {
				return nil, fmt.Errorf("scenario %q %s %d: cannot stand on (%d,%d)", s.Name, side.faction, i+1, p.X, p.Y)
			}
			u := w.CreateUnit(side.faction, def.Stats, wpn, p.X, p.Y)
			setup.Glyphs[u.ID] = def.Emoji
		}
	}
	return setup, nil
}

// resolve merges a roster entry over its template.
func (s *Scenario) resolve(f unit.Faction, entry UnitSpec) (assets.UnitDef, unit.Weapon, error) {
	var def assets.UnitDef
	if entry.Template != "" {
		var ok bool
		if f == unit.Player {
			def, ok = assets.SoldierByID(entry.Template)
		} else {
			def, ok = assets.AlienByID(entry.Template)
		}
		if !ok {
			return def, unit.Weapon{}, fmt.Errorf("unknown template %q", entry.Template)
		}
	}
	if entry.Name != "" {
		def.Stats.Name = entry.Name
	}
	if entry.Glyph != "" {
		def.Emoji = entry.Glyph
	}
	if def.Emoji == "" {
		def.Emoji = assets.GlyphUnknown
	}
	if entry.Weapon != "" {
		def.Weapon = entry.Weapon
	}
	if entry.MaxHP != 0 {
		def.Stats.MaxHP = entry.MaxHP
	}
	if entry.MaxTU != 0 {
		def.Stats.MaxTU = entry.MaxTU
	}
	if entry.Accuracy != 0 {
		def.Stats.Accuracy = entry.Accuracy
	}
	if entry.Reactions != 0 {
		def.Stats.Reactions = entry.Reactions
	}
	if def.Stats.Name == "" || def.Stats.MaxHP <= 0 || def.Stats.MaxTU <= 0 {
		return def, unit.Weapon{}, fmt.Errorf("unit needs a name, max_hp and max_tu (or a template)")
	}

	wpn, err := s.weapon(def.Weapon)
	return def, wpn, err
}

// weapon looks id up in the scenario's own table, then the stock armory.
func (s *Scenario) weapon(id string) (unit.Weapon, error) {
	if ws, ok := s.Weapons[id]; ok {
		if err := ws.validate(); err != nil {
			return unit.Weapon{}, fmt.Errorf("weapon %q: %w", id, err)
		}
		name := ws.Name
		if name == "" {
			name = id
		}
		return unit.Weapon{
			Name: name, Range: ws.Range, BaseAccuracy: ws.BaseAccuracy,
			DamageMin: ws.DamageMin, DamageMax: ws.DamageMax,
			ActionCostPercent: ws.ActionCostPercent, SnapAccuracy: ws.SnapAccuracy,
			ClipSize: ws.ClipSize, IsMelee: ws.Melee,
		}, nil
	}
	if wpn, ok := assets.Weapon(id); ok {
		return wpn, nil
	}
	return unit.Weapon{}, fmt.Errorf("unknown weapon %q", id)
}
