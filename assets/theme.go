package assets

import "squad-tactics/internal/unit"

// Emoji constants used as unit glyphs.
const (
	GlyphRookie     = "🪖"
	GlyphSniper     = "🎯"
	GlyphHeavy      = "💂"
	GlyphMedic      = "🧑"
	GlyphSectoid    = "👽"
	GlyphFloater    = "🛸"
	GlyphMuton      = "👾"
	GlyphChryssalid = "🦂"
	GlyphCorpse     = "💀"
	GlyphUnknown    = "❓"
)

// UnitDef is a named unit template: stats, weapon and how it is drawn.
type UnitDef struct {
	ID     string
	Name   string
	Emoji  string
	Lore   string // one-liner for the briefing and the kill log
	Stats  unit.Stats
	Weapon string // key into Weapons
}

// Soldiers is the ordered list of soldier templates.
var Soldiers = []UnitDef{
	{
		ID:     "rookie",
		Name:   "Rookie",
		Emoji:  GlyphRookie,
		Lore:   "Six weeks of training and a rifle that mostly points forward",
		Stats:  unit.Stats{Name: "Rookie", MaxHP: 30, MaxTU: 58, Accuracy: 55, Reactions: 45},
		Weapon: "rifle",
	},
	{
		ID:     "sniper",
		Name:   "Sniper",
		Emoji:  GlyphSniper,
		Lore:   "Patient, quiet and deeply unwilling to walk",
		Stats:  unit.Stats{Name: "Sniper", MaxHP: 26, MaxTU: 52, Accuracy: 72, Reactions: 60},
		Weapon: "sniper",
	},
	{
		ID:     "heavy",
		Name:   "Heavy",
		Emoji:  GlyphHeavy,
		Lore:   "Carries the squad's ammunition and most of its opinions",
		Stats:  unit.Stats{Name: "Heavy", MaxHP: 40, MaxTU: 50, Accuracy: 48, Reactions: 35},
		Weapon: "cannon",
	},
	{
		ID:     "scout",
		Name:   "Scout",
		Emoji:  GlyphMedic,
		Lore:   "First through the door, last to stop talking about it",
		Stats:  unit.Stats{Name: "Scout", MaxHP: 28, MaxTU: 64, Accuracy: 50, Reactions: 55},
		Weapon: "pistol",
	},
}

// Aliens is the ordered list of alien templates.
var Aliens = []UnitDef{
	{
		ID:     "sectoid",
		Name:   "Sectoid",
		Emoji:  GlyphSectoid,
		Lore:   "Grey, small and much better at this than it looks",
		Stats:  unit.Stats{Name: "Sectoid", MaxHP: 22, MaxTU: 54, Accuracy: 60, Reactions: 63},
		Weapon: "plasma_pistol",
	},
	{
		ID:     "floater",
		Name:   "Floater",
		Emoji:  GlyphFloater,
		Lore:   "A torso, a jet pack and a grudge",
		Stats:  unit.Stats{Name: "Floater", MaxHP: 32, MaxTU: 60, Accuracy: 52, Reactions: 50},
		Weapon: "plasma_rifle",
	},
	{
		ID:     "muton",
		Name:   "Muton",
		Emoji:  GlyphMuton,
		Lore:   "Bred for war and disappointed by peace",
		Stats:  unit.Stats{Name: "Muton", MaxHP: 55, MaxTU: 56, Accuracy: 62, Reactions: 40},
		Weapon: "heavy_plasma",
	},
	{
		ID:     "chryssalid",
		Name:   "Chryssalid",
		Emoji:  GlyphChryssalid,
		Lore:   "Fast, armoured and never carrying a gun",
		Stats:  unit.Stats{Name: "Chryssalid", MaxHP: 45, MaxTU: 80, Accuracy: 70, Reactions: 70},
		Weapon: "claws",
	},
}

// SoldierByID returns the soldier template with the given id.
func SoldierByID(id string) (UnitDef, bool) { return findDef(Soldiers, id) }

// AlienByID returns the alien template with the given id.
func AlienByID(id string) (UnitDef, bool) { return findDef(Aliens, id) }

func findDef(defs []UnitDef, id string) (UnitDef, bool) {
	for _, d := range defs {
		if d.ID == id {
			return d, true
		}
	}
	return UnitDef{}, false
}
