package rulebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanenexus/arcane-nexus/internal/dice"
	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

// fixedRoller returns a constant value for every die
type fixedRoller struct {
	value int
}

func (r *fixedRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls := make([]int, count)
	total := bonus
	for i := range rolls {
		rolls[i] = r.value
		total += r.value
	}
	return &dice.RollResult{Total: total, Rolls: rolls, Bonus: bonus, Count: count, Sides: sides, RawTotal: total - bonus}, nil
}

func (r *fixedRoller) RollWithAdvantage(sides, bonus int) (*dice.RollResult, error) {
	return r.Roll(1, sides, bonus)
}

func (r *fixedRoller) RollWithDisadvantage(sides, bonus int) (*dice.RollResult, error) {
	return r.Roll(1, sides, bonus)
}

func TestConfigForGenre(t *testing.T) {
	assert.Same(t, fantasyConfig, ConfigForGenre(entities.GenreFantasy))
	assert.Same(t, scifiConfig, ConfigForGenre(entities.GenreSciFi))
	assert.Same(t, scifiConfig, ConfigForGenre(entities.GenreCyberpunk), "cyberpunk shares the sci-fi tables")
	assert.Same(t, postApocalypseConfig, ConfigForGenre(entities.GenrePostApocalypse))
	assert.Same(t, fantasyConfig, ConfigForGenre(entities.GenreWestern), "unknown genres fall back to fantasy")
}

func TestGenreConfigLookups(t *testing.T) {
	cfg := ConfigForGenre(entities.GenreFantasy)

	race := cfg.Race("Elf")
	require.NotNil(t, race)
	assert.Equal(t, 2, race.Bonuses[entities.AttributeDexterity])

	class := cfg.Class("Wizard")
	require.NotNil(t, class)
	assert.True(t, class.IsCaster)
	assert.Equal(t, 6, class.HitDie)

	assert.Nil(t, cfg.Race("Android"))
	assert.NotNil(t, cfg.Background("Soldier"))
	assert.Nil(t, cfg.Background("Pilot"))
}

func TestCalculateHP(t *testing.T) {
	fighter := ConfigForGenre(entities.GenreFantasy).Class("Fighter")
	require.NotNil(t, fighter)

	assert.Equal(t, 12, CalculateHP(fighter, 14)) // d10 + 2
	assert.Equal(t, 9, CalculateHP(fighter, 8))   // d10 - 1
	assert.Equal(t, 10, CalculateHP(nil, 14))
}

func TestCalculateAC(t *testing.T) {
	cfg := ConfigForGenre(entities.GenreFantasy)

	wizard := cfg.Class("Wizard") // no armor
	assert.Equal(t, 12, CalculateAC(wizard, 14))

	rogue := cfg.Class("Rogue") // leather
	assert.Equal(t, 13, CalculateAC(rogue, 14))

	fighter := cfg.Class("Fighter") // chain mail ignores dex
	assert.Equal(t, 16, CalculateAC(fighter, 20))

	cleric := cfg.Class("Cleric") // scale mail caps dex at +2
	assert.Equal(t, 16, CalculateAC(cleric, 18))
	assert.Equal(t, 15, CalculateAC(cleric, 12))

	assert.Equal(t, 10, CalculateAC(nil, 14))
}

func TestRollStartingMoney(t *testing.T) {
	roller := &fixedRoller{value: 3}

	money, err := RollStartingMoney(roller, entities.GenreFantasy)
	require.NoError(t, err)
	assert.Equal(t, "150 gp", money) // 5d4 at 3 each, x10

	money, err = RollStartingMoney(roller, entities.GenreSciFi)
	require.NoError(t, err)
	assert.Equal(t, "1200 Credits", money) // 4d6 at 3 each, x100

	money, err = RollStartingMoney(roller, entities.GenreEpicWar)
	require.NoError(t, err)
	assert.Equal(t, "0 Requisition", money)

	money, err = RollStartingMoney(roller, entities.GenreEldritchHorror)
	require.NoError(t, err)
	assert.Equal(t, "100 Gold", money)
}

func TestTrinkets(t *testing.T) {
	assert.NotEmpty(t, Trinkets(entities.GenreCyberpunk))
	assert.Equal(t, Trinkets(entities.GenreFantasy), Trinkets(entities.GameGenre("Unknown")))
}

func TestGenreSpellList(t *testing.T) {
	spells := GenreSpellList(entities.GenreSciFi, "Technomancer")
	assert.NotEmpty(t, spells)

	assert.Empty(t, GenreSpellList(entities.GenreSciFi, "Soldier"))
}
