package rulebook

import (
	"fmt"

	"github.com/arcanenexus/arcane-nexus/internal/dice"
	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

var trinkets = map[entities.GameGenre][]string{
	entities.GenreFantasy:        {"A mummified goblin hand", "A crystal that glows faintly", "A piece of an old map", "A key to a forgotten tower", "A stone with a rune"},
	entities.GenreSciFi:          {"A datachip with corrupted files", "A strange alien coin", "A photo of a planet that doesn't exist", "A broken communicator"},
	entities.GenrePostApocalypse: {"A pristine pre-war soda can", "A geiger counter that clicks randomly", "A locket with no photo", "Matches that never light"},
	entities.GenreCyberpunk:      {"A retro memory stick", "Neon shoelaces", "A corporate ID badge", "A glitching holographic photo"},
	entities.GenreEpicWar:        {"A medal from a lost battle", "A letter to home", "A dented canteen", "Shell casing from a tank"},
	entities.GenreEldritchHorror: {"A bone whistle", "A page of mad scribbles", "A vial of black ichor", "A doll with one eye"},
	entities.GenreSteampunk:      {"A brass gear that spins alone", "A monocle with a cracked lens", "A tiny clockwork bird", "A blueprint for a steam engine"},
	entities.GenreWestern:        {"A loaded die", "A sheriff's badge with a bullet hole", "A harmonica", "A map to a gold mine"},
}

// Trinkets returns the trinket table for a genre,
// falling back to the Fantasy table
func Trinkets(genre entities.GameGenre) []string {
	if list, ok := trinkets[genre]; ok {
		return list
	}
	return trinkets[entities.GenreFantasy]
}

// RollStartingMoney rolls genre-appropriate starting wealth and returns
// it formatted with the genre's currency, e.g. "120 gp" or "900 Credits"
func RollStartingMoney(roller dice.Roller, genre entities.GameGenre) (string, error) {
	var (
		count, sides, multiplier int
		currency                 string
	)

	switch genre {
	case entities.GenreFantasy:
		count, sides, multiplier, currency = 5, 4, 10, "gp"
	case entities.GenreSciFi:
		count, sides, multiplier, currency = 4, 6, 100, "Credits"
	case entities.GenreCyberpunk:
		count, sides, multiplier, currency = 4, 6, 100, "Eddies"
	case entities.GenrePostApocalypse:
		count, sides, multiplier, currency = 3, 20, 1, "Caps"
	case entities.GenreSteampunk:
		count, sides, multiplier, currency = 4, 6, 5, "Sovereigns"
	case entities.GenreWestern:
		count, sides, multiplier, currency = 3, 6, 10, "Dollars"
	case entities.GenreEpicWar:
		return "0 Requisition", nil
	default:
		return "100 Gold", nil
	}

	result, err := roller.Roll(count, sides, 0)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %s", result.Total*multiplier, currency), nil
}
