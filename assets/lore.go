package assets

// Callsigns are handed out to soldiers in roster order.
var Callsigns = []string{
	"Ash", "Birch", "Cole", "Dane", "Esko", "Faye", "Grim", "Hale",
	"Iris", "Jett", "Kade", "Lux", "Moss", "Nova", "Oak", "Pike",
}

// OperationNames are combined with the seed to title generated missions.
var OperationNames = []string{
	"Broken Lantern", "Cold Harvest", "Silent Meridian", "Grey Orchard",
	"Hollow Crown", "Iron Tide", "Last Ember", "Pale Horizon",
}

// LoreOpening is shown before the first turn of a mission.
const LoreOpening = `A scout craft came down hard in the farmland east of the
river. Local contact lost an hour ago. Your squad has landed
at the edge of the field. Find the crew. Nobody goes home
until the site is clear.
Press any key to begin...`

// AlienLore holds a one-liner for the kill log, keyed by glyph emoji.
var AlienLore = map[string]string{
	GlyphSectoid:    "Sectoid down. Its eyes stay open.",
	GlyphFloater:    "The Floater drops like a stone. The jet pack keeps humming.",
	GlyphMuton:      "The Muton falls without a sound. It took a lot of rounds.",
	GlyphChryssalid: "The Chryssalid twitches once and stops.",
}
