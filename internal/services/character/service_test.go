package character

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcanenexus/arcane-nexus/internal/dice"
	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/characters"
	"github.com/arcanenexus/arcane-nexus/internal/uuid"
)

// scriptedRoller replays canned rolls in order
type scriptedRoller struct {
	rolls [][]int
	calls int
}

func (r *scriptedRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls := r.rolls[r.calls%len(r.rolls)]
	r.calls++

	total := bonus
	for _, roll := range rolls {
		total += roll
	}
	return &dice.RollResult{Total: total, Rolls: rolls, Bonus: bonus, Count: count, Sides: sides, RawTotal: total - bonus}, nil
}

func (r *scriptedRoller) RollWithAdvantage(sides, bonus int) (*dice.RollResult, error) {
	return r.Roll(1, sides, bonus)
}

func (r *scriptedRoller) RollWithDisadvantage(sides, bonus int) (*dice.RollResult, error) {
	return r.Roll(1, sides, bonus)
}

type ServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    characters.Repository
	roller  *scriptedRoller
	service Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	uuidGen := uuid.NewGoogleUUIDGenerator()
	s.repo = characters.NewInMemoryRepository(&characters.InMemoryRepoConfig{UUIDGenerator: uuidGen})
	s.roller = &scriptedRoller{rolls: [][]int{{3, 3, 3, 3}}}
	s.service = NewService(&ServiceConfig{
		Repository:    s.repo,
		Roller:        s.roller,
		UUIDGenerator: uuidGen,
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) createFighter() *entities.Character {
	char, err := s.service.Create(s.ctx, &CreateInput{
		OwnerID:    "owner",
		Name:       "Borin",
		Genre:      entities.GenreFantasy,
		Race:       "Dwarf",
		Class:      "Fighter",
		Background: "Soldier",
		AssignedStats: map[entities.Attribute]int{
			entities.AttributeStrength:     15,
			entities.AttributeDexterity:    12,
			entities.AttributeConstitution: 14,
		},
		ClassSkills: []string{"Perception", "Survival"},
		Concept:     "A gruff veteran",
		Desire:      "Redemption",
		Flaw:        "Stubborn",
		Money:       "50 gp",
		Extras:      []string{"Torch"},
	})
	s.Require().NoError(err)
	return char
}

func (s *ServiceTestSuite) TestCreate() {
	char := s.createFighter()

	s.Equal("Borin", char.Name)
	s.Equal("Dwarf", char.Race)
	s.Equal("Fighter", char.Class)
	s.Equal(1, char.Level)

	// Dwarf adds +2 CON; unassigned stats default to 8
	s.Equal(16, char.Stats[entities.AttributeConstitution])
	s.Equal(15, char.Stats[entities.AttributeStrength])
	s.Equal(8, char.Stats[entities.AttributeIntelligence])

	// Fighter d10 + CON mod 3
	s.Equal(13, char.HP.Max)
	s.Equal(char.HP.Max, char.HP.Current)
	// Chain mail
	s.Equal(16, char.AC)

	// Background skills come first, then the chosen class skills
	s.Equal([]string{"Athletics", "Intimidation", "Perception", "Survival"}, char.Skills)

	s.Nil(char.Spells, "fighters do not cast")
	s.Contains(char.Notes, "Concept: A gruff veteran")
	s.Contains(char.Notes, "Genre: Fantasy")
}

func (s *ServiceTestSuite) TestCreate_InventoryOrder() {
	char := s.createFighter()

	names := make([]string, 0, len(char.Inventory))
	for _, item := range char.Inventory {
		names = append(names, item.Name)
	}
	s.Equal([]string{"Longsword", "Shield", "Chain Mail", "Wealth: 50 gp", "Torch", "Soldier Kit"}, names)

	s.True(char.Inventory[0].Equipped, "class weapons start equipped")
	s.True(char.Inventory[2].Equipped, "armor starts equipped")
	s.False(char.Inventory[3].Equipped)
}

func (s *ServiceTestSuite) TestCreate_DefaultsNameAndRollsMoney() {
	char, err := s.service.Create(s.ctx, &CreateInput{
		OwnerID:    "owner",
		Genre:      entities.GenreFantasy,
		Race:       "Elf",
		Class:      "Wizard",
		Background: "Acolyte",
		Cantrips:   []string{"Fire Bolt"},
	})
	s.Require().NoError(err)

	s.Equal("Unnamed Hero", char.Name)
	// 5d4 scripted at 3 each, x10
	s.findItem(char, "Wealth: 120 gp")
	s.Require().NotNil(char.Spells)
	s.Equal([]string{"Fire Bolt"}, char.Spells.Cantrips)
}

func (s *ServiceTestSuite) findItem(char *entities.Character, name string) *entities.InventoryItem {
	for _, item := range char.Inventory {
		if item.Name == name {
			return item
		}
	}
	s.Require().Failf("item not found", "no inventory entry named %q", name)
	return nil
}

func (s *ServiceTestSuite) TestCreate_UnknownRace() {
	_, err := s.service.Create(s.ctx, &CreateInput{
		OwnerID:    "owner",
		Genre:      entities.GenreFantasy,
		Race:       "Android",
		Class:      "Fighter",
		Background: "Soldier",
	})
	s.Error(err)
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestMergeSkills() {
	// Duplicates with the background collapse; choices cap at two
	merged := mergeSkills(
		[]string{"Athletics", "Intimidation"},
		[]string{"Athletics", "Perception", "Survival", "History"},
		[]string{"Athletics", "Perception", "Survival", "History"},
	)
	s.Equal([]string{"Athletics", "Intimidation", "Perception", "Survival"}, merged)

	// Choices outside the offered list are skipped
	merged = mergeSkills(nil, []string{"Stealth", "Arcana"}, []string{"Arcana"})
	s.Equal([]string{"Arcana"}, merged)
}

func (s *ServiceTestSuite) TestGet_WrongOwner() {
	char := s.createFighter()

	_, err := s.service.Get(s.ctx, "someone-else", char.ID)
	s.Error(err)
	s.True(apperrors.IsPermissionDenied(err))
}

func (s *ServiceTestSuite) TestRollAbilityScores_DropsLowest() {
	s.roller.rolls = [][]int{{6, 5, 4, 1}}

	scores, err := s.service.RollAbilityScores(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(scores, 6)
	for _, score := range scores {
		s.Equal(15, score)
	}
}

func (s *ServiceTestSuite) TestToggleEquip() {
	char := s.createFighter()
	sword := s.findItem(char, "Longsword")

	updated, err := s.service.ToggleEquip(s.ctx, "owner", char.ID, sword.ID)
	s.Require().NoError(err)
	s.False(s.findItem(updated, "Longsword").Equipped)

	updated, err = s.service.ToggleEquip(s.ctx, "owner", char.ID, sword.ID)
	s.Require().NoError(err)
	s.True(s.findItem(updated, "Longsword").Equipped)
}

func (s *ServiceTestSuite) TestAdjustQuantity_FlooredAtZero() {
	char := s.createFighter()
	torch := s.findItem(char, "Torch")

	updated, err := s.service.AdjustQuantity(s.ctx, "owner", char.ID, torch.ID, -5)
	s.Require().NoError(err)
	s.Equal(0, s.findItem(updated, "Torch").Quantity)

	// A zero quantity reads as 1 before the delta applies
	updated, err = s.service.AdjustQuantity(s.ctx, "owner", char.ID, torch.ID, 3)
	s.Require().NoError(err)
	s.Equal(4, s.findItem(updated, "Torch").Quantity)
}

func (s *ServiceTestSuite) TestCreationOptions() {
	options, err := s.service.CreationOptions(s.ctx, entities.GenreFantasy)
	s.Require().NoError(err)
	s.Equal(entities.GenreFantasy, options.Genre)
	s.NotEmpty(options.Races)
	s.NotEmpty(options.Backgrounds)
	s.NotEmpty(options.Trinkets)

	var fighter *ClassOption
	for _, class := range options.Classes {
		if class.Name == "Fighter" {
			fighter = class
		}
	}
	s.Require().NotNil(fighter)
	s.Equal(10, fighter.HitDie)
	s.Contains(fighter.Skills, "Perception")
}

func (s *ServiceTestSuite) TestCreationOptions_UnknownGenreFallsBack() {
	options, err := s.service.CreationOptions(s.ctx, entities.GameGenre("Noir"))
	s.Require().NoError(err)
	s.Equal(entities.GenreFantasy, options.Genre)

	names := make([]string, 0, len(options.Races))
	for _, race := range options.Races {
		names = append(names, race.Name)
	}
	s.Contains(names, "Elf")
}

func (s *ServiceTestSuite) TestDiscardItem_QuestProtection() {
	char := s.createFighter()

	withKey, err := s.service.AddItem(s.ctx, "owner", char.ID, "Rusty Key")
	s.Require().NoError(err)
	key := s.findItem(withKey, "Rusty Key")

	_, err = s.service.DiscardItem(s.ctx, "owner", char.ID, key.ID, false)
	s.Error(err)
	s.True(apperrors.IsFailedPrecondition(err))

	// The GM can override the lock
	updated, err := s.service.DiscardItem(s.ctx, "owner", char.ID, key.ID, true)
	s.Require().NoError(err)
	s.Nil(updated.FindItem(key.ID))
}

func (s *ServiceTestSuite) TestTransferItem() {
	char := s.createFighter()
	torch := s.findItem(char, "Torch")

	updated, notice, err := s.service.TransferItem(s.ctx, "owner", char.ID, torch.ID, "Lyra")
	s.Require().NoError(err)
	s.Equal("Borin transferred Torch to Lyra.", notice)
	s.Nil(updated.FindItem(torch.ID))
}

func (s *ServiceTestSuite) TestRandomConcept_NoGateway() {
	_, err := s.service.RandomConcept(s.ctx, entities.GenreFantasy)
	s.Error(err)
	s.True(apperrors.IsFailedPrecondition(err))
}

func (s *ServiceTestSuite) TestDelete() {
	char := s.createFighter()

	s.Require().NoError(s.service.Delete(s.ctx, "owner", char.ID))

	_, err := s.service.Get(s.ctx, "owner", char.ID)
	s.True(apperrors.IsNotFound(err))
}
