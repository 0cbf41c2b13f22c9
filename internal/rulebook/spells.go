package rulebook

import "github.com/arcanenexus/arcane-nexus/internal/entities"

func spell(name string, level int, school, desc, rng string) *entities.LibraryItem {
	return &entities.LibraryItem{
		Category:    entities.CategorySpells,
		Name:        name,
		Level:       level,
		School:      school,
		Description: desc,
		Range:       rng,
		Components:  "V, S",
		Duration:    "Instant",
	}
}

// genreSpells holds the non-Fantasy caster spell lists. Fantasy casters
// look up real SRD spells instead.
var genreSpells = map[entities.GameGenre]map[string][]*entities.LibraryItem{
	entities.GenreSciFi: {
		"Technomancer": {
			spell("Data Spike", 0, "Hacking", "Launch a spike of code at a target, dealing 1d10 necrotic damage.", "120 ft"),
			spell("System Shock", 0, "Electric", "Touch a target to deliver 1d8 lightning damage. Target cannot take reactions.", "Touch"),
			spell("Light Protocol", 0, "Utility", "Emit bright light from your palm or device.", "Self"),
			spell("Firewall", 1, "Defense", "Create a barrier of hard-light code. +5 AC until start of next turn.", "Self"),
			spell("Logic Bomb", 1, "Explosive", "Create a digital explosion dealing 3d8 thunder damage.", "150 ft"),
			spell("Override", 1, "Control", "Force a robotic/cybernetic target to make a WIS save or obey a command.", "60 ft"),
			spell("Identify Tech", 1, "Divination", "Analyze the properties of a technological item.", "Touch"),
		},
		"Medic": {
			spell("Stabilize", 0, "Medical", "Stop a dying creature from bleeding on.", "Touch"),
			spell("Scan Vitals", 0, "Divination", "Know the current HP and ailments of a target.", "30 ft"),
			spell("Nanite Repair", 1, "Healing", "Inject nanites to heal 1d8 + Mod HP.", "Touch"),
			spell("Stim Pack", 1, "Buff", "Target gains temporary HP equal to your Mod + 5.", "Touch"),
			spell("Purge Toxin", 1, "Medical", "Cure one disease or neutralize one poison.", "Touch"),
			spell("Adrenaline Surge", 1, "Buff", "Target adds 1d4 to attacks and saves for 1 minute.", "30 ft"),
		},
	},
	entities.GenrePostApocalypse: {
		"Psyker": {
			spell("Mind Sliver", 0, "Psionic", "1d6 Psychic damage and -1d4 to next save.", "60 ft"),
			spell("Telekinetic Shove", 0, "Force", "Push a target 5ft away. STR save.", "30 ft"),
			spell("Mental Message", 0, "Telepathy", "Send a short message to a creature's mind.", "120 ft"),
			spell("Psionic Blast", 1, "Psychic", "3d6 Psychic damage in a cone. DEX save.", "15 ft Cone"),
			spell("Inertial Barrier", 1, "Defense", "Gain 10 Temp HP and resistance to Force damage.", "Self"),
			spell("Mind Control", 1, "Enchantment", "Target must make WIS save or be charmed.", "30 ft"),
		},
		"Doctor": {
			spell("Cauterize", 0, "Medical", "Stop bleeding on a target.", "Touch"),
			spell("Rad Sense", 0, "Divination", "Detect radiation sources.", "Self"),
			spell("Field Dressing", 1, "Healing", "Heal 1d8 + Mod HP.", "Touch"),
			spell("Rad-Away", 1, "Restoration", "Reduce radiation levels/poison in target.", "Touch"),
			spell("Combat Stims", 1, "Buff", "Target gains advantage on next STR check.", "Touch"),
		},
	},
	entities.GenreCyberpunk: {
		"Technomancer": {
			spell("Short Circuit", 0, "Electric", "1d8 Lightning damage, advantage vs metal armor.", "60 ft"),
			spell("Glitch", 0, "Illusion", "Create a minor visual or auditory hologram.", "30 ft"),
			spell("Ping", 0, "Divination", "Highlight enemy locations within 30ft.", "Self"),
			spell("Crash", 1, "Disruption", "Target robot/cyborg takes 3d8 thunder damage. CON save.", "Touch"),
			spell("Invisibility Cloak", 1, "Stealth", "Bend light to become invisible for 1 hour.", "Touch"),
			spell("Haste Protocol", 1, "Buff", "Double speed and +2 AC for 1 minute.", "30 ft"),
		},
		"Medic": {
			spell("Bio-Monitor", 0, "Divination", "Check target health status.", "Touch"),
			spell("Pain Killer", 0, "Abjuration", "Target gains resistance to next damage source.", "Touch"),
			spell("Trauma Patch", 1, "Healing", "Heal 1d8 + Mod HP.", "Touch"),
			spell("Defib", 1, "Necromancy", "Revive a creature that died within 1 minute. (Costly)", "Touch"),
		},
	},
}

// GenreSpellList returns the local spell list for a non-Fantasy caster class
func GenreSpellList(genre entities.GameGenre, class string) []*entities.LibraryItem {
	classes, ok := genreSpells[genre]
	if !ok {
		return nil
	}
	return classes[class]
}
