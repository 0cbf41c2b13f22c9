// Package rulebook holds the static creation tables for each genre:
// races, classes, backgrounds, skill lists, and starting gear.
package rulebook

import (
	"strings"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

// RaceInfo describes a playable race and its ability bonuses
type RaceInfo struct {
	Name        string
	Description string
	Bonuses     map[entities.Attribute]int
}

// CasterKind selects how a caster learns spells
type CasterKind string

const (
	CasterWizard   CasterKind = "Wizard"
	CasterPrepared CasterKind = "Prepared"
)

// ClassInfo describes a playable class
type ClassInfo struct {
	Name          string
	Role          string
	PrimaryStat   entities.Attribute
	Feature       string
	HitDie        int
	Armor         string
	Weapons       []string
	IsCaster      bool
	CasterKind    CasterKind
	CantripsKnown int
	SRDClass      string // for spell lookups against the SRD API
}

// BackgroundInfo describes a background and the skills it grants
type BackgroundInfo struct {
	Name        string
	Description string
	Skills      []string
}

// GenreConfig bundles the creation tables for one genre
type GenreConfig struct {
	Races       []*RaceInfo
	Classes     []*ClassInfo
	Backgrounds []*BackgroundInfo
	ClassSkills map[string][]string
}

// Race returns the race entry with the given name, or nil
func (g *GenreConfig) Race(name string) *RaceInfo {
	for _, r := range g.Races {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Class returns the class entry with the given name, or nil
func (g *GenreConfig) Class(name string) *ClassInfo {
	for _, c := range g.Classes {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Background returns the background entry with the given name, or nil
func (g *GenreConfig) Background(name string) *BackgroundInfo {
	for _, b := range g.Backgrounds {
		if b.Name == name {
			return b
		}
	}
	return nil
}

var fantasyConfig = &GenreConfig{
	Races: []*RaceInfo{
		{Name: "Human", Description: "Versatile and ambitious.", Bonuses: map[entities.Attribute]int{
			entities.AttributeStrength: 1, entities.AttributeDexterity: 1, entities.AttributeConstitution: 1,
			entities.AttributeIntelligence: 1, entities.AttributeWisdom: 1, entities.AttributeCharisma: 1,
		}},
		{Name: "Elf", Description: "Graceful and magical.", Bonuses: map[entities.Attribute]int{entities.AttributeDexterity: 2}},
		{Name: "Dwarf", Description: "Bold and hardy.", Bonuses: map[entities.Attribute]int{entities.AttributeConstitution: 2}},
		{Name: "Halfling", Description: "Small and brave.", Bonuses: map[entities.Attribute]int{entities.AttributeDexterity: 2}},
	},
	Classes: []*ClassInfo{
		{Name: "Fighter", Role: "Frontline warrior", PrimaryStat: entities.AttributeStrength, Feature: "Fighting Style",
			HitDie: 10, Armor: "Chain Mail", Weapons: []string{"Longsword", "Shield"}},
		{Name: "Rogue", Role: "Stealthy trickster", PrimaryStat: entities.AttributeDexterity, Feature: "Sneak Attack",
			HitDie: 8, Armor: "Leather Armor", Weapons: []string{"Dagger", "Shortbow"}},
		{Name: "Wizard", Role: "Arcane spellcaster", PrimaryStat: entities.AttributeIntelligence, Feature: "Spellcasting",
			HitDie: 6, Armor: "None", Weapons: []string{"Quarterstaff"},
			IsCaster: true, CasterKind: CasterWizard, CantripsKnown: 3, SRDClass: "Wizard"},
		{Name: "Cleric", Role: "Divine healer", PrimaryStat: entities.AttributeWisdom, Feature: "Divine Domain",
			HitDie: 8, Armor: "Scale Mail", Weapons: []string{"Mace"},
			IsCaster: true, CasterKind: CasterPrepared, CantripsKnown: 3, SRDClass: "Cleric"},
	},
	Backgrounds: []*BackgroundInfo{
		{Name: "Soldier", Description: "You served in an army.", Skills: []string{"Athletics", "Intimidation"}},
		{Name: "Acolyte", Description: "You served in a temple.", Skills: []string{"Religion", "Insight"}},
		{Name: "Criminal", Description: "You have a history of breaking the law.", Skills: []string{"Deception", "Stealth"}},
		{Name: "Folk Hero", Description: "You saved your village.", Skills: []string{"Animal Handling", "Survival"}},
	},
	ClassSkills: map[string][]string{
		"Fighter": {"Acrobatics", "Animal Handling", "Athletics", "History", "Insight", "Intimidation", "Perception", "Survival"},
		"Rogue":   {"Acrobatics", "Athletics", "Deception", "Insight", "Intimidation", "Investigation", "Perception", "Performance", "Persuasion", "Sleight of Hand", "Stealth"},
		"Wizard":  {"Arcana", "History", "Insight", "Investigation", "Medicine", "Religion"},
		"Cleric":  {"History", "Insight", "Medicine", "Persuasion", "Religion"},
	},
}

var scifiConfig = &GenreConfig{
	Races: []*RaceInfo{
		{Name: "Human", Description: "Versatile explorers.", Bonuses: map[entities.Attribute]int{
			entities.AttributeStrength: 1, entities.AttributeDexterity: 1, entities.AttributeConstitution: 1,
			entities.AttributeIntelligence: 1, entities.AttributeWisdom: 1, entities.AttributeCharisma: 1,
		}},
		{Name: "Android", Description: "Synthetic lifeform, logical.", Bonuses: map[entities.Attribute]int{entities.AttributeIntelligence: 2, entities.AttributeConstitution: 1}},
		{Name: "Cyborg", Description: "Enhanced organism.", Bonuses: map[entities.Attribute]int{entities.AttributeStrength: 1, entities.AttributeConstitution: 2}},
		{Name: "Alien", Description: "Strange visitor from the stars.", Bonuses: map[entities.Attribute]int{entities.AttributeWisdom: 2}},
	},
	Classes: []*ClassInfo{
		{Name: "Soldier", Role: "Elite Trooper", PrimaryStat: entities.AttributeStrength, Feature: "Combat Training",
			HitDie: 10, Armor: "Plasteel Armor", Weapons: []string{"Pulse Rifle", "Combat Knife"}},
		{Name: "Operative", Role: "Covert Agent", PrimaryStat: entities.AttributeDexterity, Feature: "Tech Stealth",
			HitDie: 8, Armor: "Mesh Suit", Weapons: []string{"Silenced Pistol", "Mono-Blade"}},
		{Name: "Technomancer", Role: "Code Weaver", PrimaryStat: entities.AttributeIntelligence, Feature: "Hacking",
			HitDie: 6, Armor: "None", Weapons: []string{"Datapad"},
			IsCaster: true, CasterKind: CasterWizard, CantripsKnown: 3, SRDClass: "Wizard"},
		{Name: "Medic", Role: "Field Surgeon", PrimaryStat: entities.AttributeWisdom, Feature: "Advanced Aid",
			HitDie: 8, Armor: "Hazmat Suit", Weapons: []string{"Med-Pistol"},
			IsCaster: true, CasterKind: CasterPrepared, CantripsKnown: 3, SRDClass: "Cleric"},
	},
	Backgrounds: []*BackgroundInfo{
		{Name: "Pilot", Description: "Ace of the skies/void.", Skills: []string{"Survival", "Perception"}},
		{Name: "Hacker", Description: "Information broker.", Skills: []string{"Investigation", "Deception"}},
		{Name: "Mercenary", Description: "Gun for hire.", Skills: []string{"Athletics", "Intimidation"}},
		{Name: "Scientist", Description: "Researcher of the unknown.", Skills: []string{"Arcana", "Medicine"}},
	},
	ClassSkills: map[string][]string{
		"Soldier":      {"Athletics", "Intimidation", "Survival", "Perception"},
		"Operative":    {"Stealth", "Deception", "Investigation", "Acrobatics"},
		"Technomancer": {"Arcana", "History", "Investigation", "Medicine"},
		"Medic":        {"Medicine", "Insight", "Survival", "Nature"},
	},
}

var postApocalypseConfig = &GenreConfig{
	Races: []*RaceInfo{
		{Name: "Survivor", Description: "Standard human.", Bonuses: map[entities.Attribute]int{entities.AttributeConstitution: 1, entities.AttributeDexterity: 1, entities.AttributeWisdom: 1}},
		{Name: "Mutant", Description: "Changed by radiation.", Bonuses: map[entities.Attribute]int{entities.AttributeStrength: 2, entities.AttributeConstitution: 1}},
		{Name: "Synth", Description: "Old world robotics.", Bonuses: map[entities.Attribute]int{entities.AttributeIntelligence: 2}},
		{Name: "Ghoul", Description: "Irradiated but immune.", Bonuses: map[entities.Attribute]int{entities.AttributeConstitution: 2, entities.AttributeWisdom: 1}},
	},
	Classes: []*ClassInfo{
		{Name: "Marauder", Role: "Wasteland Warrior", PrimaryStat: entities.AttributeStrength, Feature: "Brutality",
			HitDie: 10, Armor: "Scrap Plate", Weapons: []string{"Sledgehammer", "Shotgun"}},
		{Name: "Scavenger", Role: "Stealthy Looter", PrimaryStat: entities.AttributeDexterity, Feature: "Scrounge",
			HitDie: 8, Armor: "Leather Jacket", Weapons: []string{"Knife", "Crossbow"}},
		{Name: "Psyker", Role: "Mind-Warper", PrimaryStat: entities.AttributeIntelligence, Feature: "Psionics",
			HitDie: 6, Armor: "Rags", Weapons: []string{"Focus Crystal"},
			IsCaster: true, CasterKind: CasterWizard, CantripsKnown: 3, SRDClass: "Sorcerer"},
		{Name: "Doctor", Role: "Wasteland Healer", PrimaryStat: entities.AttributeWisdom, Feature: "Triage",
			HitDie: 8, Armor: "Reinforced Coat", Weapons: []string{"Scalpel"},
			IsCaster: true, CasterKind: CasterPrepared, CantripsKnown: 3, SRDClass: "Druid"},
	},
	Backgrounds: []*BackgroundInfo{
		{Name: "Drifter", Description: "Wanderer of the wastes.", Skills: []string{"Survival", "Perception"}},
		{Name: "Raider", Description: "Takes what they want.", Skills: []string{"Intimidation", "Athletics"}},
		{Name: "Vault Dweller", Description: "Sheltered from the fall.", Skills: []string{"History", "Insight"}},
		{Name: "Mechanic", Description: "Fixer of junk.", Skills: []string{"Investigation", "Arcana"}},
	},
	ClassSkills: map[string][]string{
		"Marauder":  {"Athletics", "Intimidation", "Survival"},
		"Scavenger": {"Stealth", "Sleight of Hand", "Survival", "Perception"},
		"Psyker":    {"Arcana", "Insight", "Intimidation"},
		"Doctor":    {"Medicine", "Nature", "Insight"},
	},
}

// ConfigForGenre returns the creation tables for a genre.
// Cyberpunk shares the Sci-Fi tables; unknown genres fall back to Fantasy.
func ConfigForGenre(genre entities.GameGenre) *GenreConfig {
	switch genre {
	case entities.GenreFantasy:
		return fantasyConfig
	case entities.GenreSciFi, entities.GenreCyberpunk:
		return scifiConfig
	case entities.GenrePostApocalypse:
		return postApocalypseConfig
	default:
		return fantasyConfig
	}
}

// CalculateHP returns level 1 hit points for a class: hit die plus CON modifier
func CalculateHP(class *ClassInfo, conScore int) int {
	if class == nil {
		return 10
	}
	return class.HitDie + entities.AbilityModifier(conScore)
}

// CalculateAC derives armor class from the class's starting armor tier
func CalculateAC(class *ClassInfo, dexScore int) int {
	dexMod := entities.AbilityModifier(dexScore)
	if class == nil {
		return 10
	}

	armor := class.Armor
	switch {
	case strings.Contains(armor, "None"), strings.Contains(armor, "Rags"):
		return 10 + dexMod
	case strings.Contains(armor, "Leather"), strings.Contains(armor, "Mesh"):
		return 11 + dexMod
	case strings.Contains(armor, "Chain"), strings.Contains(armor, "Plasteel"), strings.Contains(armor, "Plate"):
		return 16
	case strings.Contains(armor, "Scale"), strings.Contains(armor, "Coat"), strings.Contains(armor, "Hazmat"):
		if dexMod > 2 {
			dexMod = 2
		}
		return 14 + dexMod
	default:
		return 10 + dexMod
	}
}
