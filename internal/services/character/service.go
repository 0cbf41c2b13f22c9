package character

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/arcanenexus/arcane-nexus/internal/clients/genai"
	"github.com/arcanenexus/arcane-nexus/internal/dice"
	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/characters"
	"github.com/arcanenexus/arcane-nexus/internal/rulebook"
	"github.com/arcanenexus/arcane-nexus/internal/uuid"
)

const maxClassSkills = 2

// CreateInput is the wizard output used to build a level 1 character.
// AssignedStats hold the raw assigned scores before racial bonuses.
type CreateInput struct {
	OwnerID       string
	Name          string
	Genre         entities.GameGenre
	Race          string
	Class         string
	Background    string
	AssignedStats map[entities.Attribute]int
	ClassSkills   []string
	Cantrips      []string
	Level1Spells  []string
	Appearance    *entities.AppearanceDetails
	Concept       string
	Desire        string
	Flaw          string
	Money         string // rolled when empty
	Extras        []string
	AvatarURL     string
}

// RaceOption is a wizard pick-list entry for a race
type RaceOption struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Bonuses     map[entities.Attribute]int `json:"bonuses"`
}

// ClassOption is a wizard pick-list entry for a class
type ClassOption struct {
	Name        string             `json:"name"`
	Role        string             `json:"role"`
	PrimaryStat entities.Attribute `json:"primary_stat"`
	Feature     string             `json:"feature"`
	HitDie      int                `json:"hit_die"`
	IsCaster    bool               `json:"is_caster"`
	Skills      []string           `json:"skills"`
}

// BackgroundOption is a wizard pick-list entry for a background
type BackgroundOption struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

// CreationOptions are the wizard's pick lists for a genre
type CreationOptions struct {
	Genre       entities.GameGenre  `json:"genre"`
	Races       []*RaceOption       `json:"races"`
	Classes     []*ClassOption      `json:"classes"`
	Backgrounds []*BackgroundOption `json:"backgrounds"`
	Trinkets    []string            `json:"trinkets"`
}

// Service manages character sheets
type Service interface {
	// Create builds and stores a level 1 character from wizard input
	Create(ctx context.Context, input *CreateInput) (*entities.Character, error)

	// Get retrieves an owned character
	Get(ctx context.Context, ownerID, id string) (*entities.Character, error)

	// List retrieves all characters for an owner
	List(ctx context.Context, ownerID string) ([]*entities.Character, error)

	// Update saves sheet edits to an owned character
	Update(ctx context.Context, ownerID string, character *entities.Character) (*entities.Character, error)

	// Delete removes an owned character
	Delete(ctx context.Context, ownerID, id string) error

	// RandomConcept asks the gateway for a genre-constrained character idea
	RandomConcept(ctx context.Context, genre entities.GameGenre) (*entities.CharacterConcept, error)

	// GenerateAvatar asks the gateway for a portrait data URL
	GenerateAvatar(ctx context.Context, description, race, class string) (string, error)

	// RollAbilityScores rolls six scores, 4d6 drop lowest each
	RollAbilityScores(ctx context.Context) ([]int, error)

	// CreationOptions lists the wizard's races, classes, backgrounds
	// and trinkets for a genre
	CreationOptions(ctx context.Context, genre entities.GameGenre) (*CreationOptions, error)

	// ToggleEquip flips an item's equipped state
	ToggleEquip(ctx context.Context, ownerID, characterID, itemID string) (*entities.Character, error)

	// AdjustQuantity changes an item's quantity, floored at zero
	AdjustQuantity(ctx context.Context, ownerID, characterID, itemID string, delta int) (*entities.Character, error)

	// AddItem appends a new unequipped item to the inventory
	AddItem(ctx context.Context, ownerID, characterID, name string) (*entities.Character, error)

	// DiscardItem removes an item. Quest items are blocked unless the
	// caller is acting as the GM.
	DiscardItem(ctx context.Context, ownerID, characterID, itemID string, asGM bool) (*entities.Character, error)

	// TransferItem removes an item and returns a transfer notice for
	// the session transcript
	TransferItem(ctx context.Context, ownerID, characterID, itemID, target string) (*entities.Character, string, error)
}

type service struct {
	repository characters.Repository
	gateway    genai.Client
	roller     dice.Roller
	uuidGen    uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    characters.Repository
	Gateway       genai.Client // optional, concept/avatar generation disabled if nil
	Roller        dice.Roller
	UUIDGenerator uuid.Generator
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Roller == nil {
		panic("roller is required")
	}
	if cfg.UUIDGenerator == nil {
		panic("uuid generator is required")
	}

	return &service{
		repository: cfg.Repository,
		gateway:    cfg.Gateway,
		roller:     cfg.Roller,
		uuidGen:    cfg.UUIDGenerator,
	}
}

func (s *service) Create(ctx context.Context, input *CreateInput) (*entities.Character, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, apperrors.InvalidArgument("owner ID is required")
	}

	genre := input.Genre
	if !genre.Valid() {
		genre = entities.GenreFantasy
	}
	config := rulebook.ConfigForGenre(genre)

	race := config.Race(input.Race)
	if race == nil {
		return nil, apperrors.InvalidArgumentf("unknown race %q for genre %s", input.Race, genre)
	}
	class := config.Class(input.Class)
	if class == nil {
		return nil, apperrors.InvalidArgumentf("unknown class %q for genre %s", input.Class, genre)
	}
	background := config.Background(input.Background)
	if background == nil {
		return nil, apperrors.InvalidArgumentf("unknown background %q for genre %s", input.Background, genre)
	}

	name := input.Name
	if name == "" {
		name = "Unnamed Hero"
	}

	stats := make(map[entities.Attribute]int, len(entities.Attributes))
	for _, attr := range entities.Attributes {
		assigned, ok := input.AssignedStats[attr]
		if !ok {
			assigned = 8
		}
		stats[attr] = assigned + race.Bonuses[attr]
	}

	hp := rulebook.CalculateHP(class, stats[entities.AttributeConstitution])
	ac := rulebook.CalculateAC(class, stats[entities.AttributeDexterity])
	skills := mergeSkills(background.Skills, input.ClassSkills, config.ClassSkills[class.Name])

	money := input.Money
	if money == "" {
		rolled, err := rulebook.RollStartingMoney(s.roller, genre)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to roll starting money")
		}
		money = rolled
	}

	character := &entities.Character{
		ID:         s.uuidGen.New(),
		OwnerID:    input.OwnerID,
		Name:       name,
		Race:       race.Name,
		Class:      class.Name,
		Level:      1,
		HP:         entities.HitPoints{Current: hp, Max: hp},
		AC:         ac,
		Stats:      stats,
		Skills:     skills,
		Inventory:  s.buildInventory(class, background, money, input.Extras),
		Notes:      fmt.Sprintf("Concept: %s\nDesire: %s\nFlaw: %s\n\nGenre: %s", input.Concept, input.Desire, input.Flaw, genre),
		AvatarURL:  input.AvatarURL,
		Appearance: input.Appearance,
		Genre:      genre,
	}
	if class.IsCaster {
		character.Spells = &entities.SpellList{
			Cantrips: input.Cantrips,
			Level1:   input.Level1Spells,
		}
	}

	if err := s.repository.Create(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

// buildInventory assembles the starting pack: class weapons and armor
// equipped, the wealth entry, backpack extras, and the background kit.
func (s *service) buildInventory(class *rulebook.ClassInfo, background *rulebook.BackgroundInfo, money string, extras []string) []*entities.InventoryItem {
	var inventory []*entities.InventoryItem

	for _, weapon := range class.Weapons {
		inventory = append(inventory, &entities.InventoryItem{
			ID:       s.uuidGen.New(),
			Name:     weapon,
			Equipped: true,
			Quantity: 1,
		})
	}
	if class.Armor != "" && class.Armor != "None" {
		inventory = append(inventory, &entities.InventoryItem{
			ID:       s.uuidGen.New(),
			Name:     class.Armor,
			Equipped: true,
			Quantity: 1,
		})
	}
	if money != "" {
		inventory = append(inventory, &entities.InventoryItem{
			ID:       s.uuidGen.New(),
			Name:     fmt.Sprintf("Wealth: %s", money),
			Quantity: 1,
		})
	}
	for _, extra := range extras {
		inventory = append(inventory, &entities.InventoryItem{
			ID:       s.uuidGen.New(),
			Name:     extra,
			Quantity: 1,
		})
	}
	inventory = append(inventory, &entities.InventoryItem{
		ID:       s.uuidGen.New(),
		Name:     fmt.Sprintf("%s Kit", background.Name),
		Quantity: 1,
	})
	return inventory
}

// mergeSkills unions background skills with up to maxClassSkills chosen
// class skills, skipping choices the class does not offer.
func mergeSkills(backgroundSkills, chosen, available []string) []string {
	seen := make(map[string]bool, len(backgroundSkills)+maxClassSkills)
	skills := make([]string, 0, len(backgroundSkills)+maxClassSkills)
	for _, skill := range backgroundSkills {
		if !seen[skill] {
			seen[skill] = true
			skills = append(skills, skill)
		}
	}

	offered := make(map[string]bool, len(available))
	for _, skill := range available {
		offered[skill] = true
	}

	taken := 0
	for _, skill := range chosen {
		if taken >= maxClassSkills {
			break
		}
		if len(available) > 0 && !offered[skill] {
			continue
		}
		if !seen[skill] {
			seen[skill] = true
			skills = append(skills, skill)
			taken++
		}
	}
	return skills
}

func (s *service) Get(ctx context.Context, ownerID, id string) (*entities.Character, error) {
	return s.getOwned(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID is required")
	}
	list, err := s.repository.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (s *service) Update(ctx context.Context, ownerID string, character *entities.Character) (*entities.Character, error) {
	if character == nil {
		return nil, apperrors.InvalidArgument("character is required")
	}
	existing, err := s.getOwned(ctx, ownerID, character.ID)
	if err != nil {
		return nil, err
	}

	character.OwnerID = existing.OwnerID
	character.CreatedAt = existing.CreatedAt
	if err := s.repository.Update(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.getOwned(ctx, ownerID, id); err != nil {
		return err
	}
	return s.repository.Delete(ctx, id)
}

func (s *service) RandomConcept(ctx context.Context, genre entities.GameGenre) (*entities.CharacterConcept, error) {
	if s.gateway == nil {
		return nil, apperrors.FailedPrecondition("character generation is not available")
	}
	return s.gateway.GenerateRandomCharacter(ctx, genre)
}

func (s *service) GenerateAvatar(ctx context.Context, description, race, class string) (string, error) {
	if s.gateway == nil {
		return "", apperrors.FailedPrecondition("avatar generation is not available")
	}
	return s.gateway.GenerateAvatarImage(ctx, description, race, class)
}

func (s *service) RollAbilityScores(_ context.Context) ([]int, error) {
	scores := make([]int, 0, len(entities.Attributes))
	for range entities.Attributes {
		result, err := s.roller.Roll(4, 6, 0)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to roll ability score")
		}
		lowest := result.Rolls[0]
		for _, roll := range result.Rolls[1:] {
			if roll < lowest {
				lowest = roll
			}
		}
		scores = append(scores, result.Total-lowest)
	}
	return scores, nil
}

func (s *service) CreationOptions(_ context.Context, genre entities.GameGenre) (*CreationOptions, error) {
	if !genre.Valid() {
		genre = entities.GenreFantasy
	}
	cfg := rulebook.ConfigForGenre(genre)

	options := &CreationOptions{
		Genre:       genre,
		Races:       make([]*RaceOption, 0, len(cfg.Races)),
		Classes:     make([]*ClassOption, 0, len(cfg.Classes)),
		Backgrounds: make([]*BackgroundOption, 0, len(cfg.Backgrounds)),
		Trinkets:    rulebook.Trinkets(genre),
	}
	for _, race := range cfg.Races {
		options.Races = append(options.Races, &RaceOption{
			Name:        race.Name,
			Description: race.Description,
			Bonuses:     race.Bonuses,
		})
	}
	for _, class := range cfg.Classes {
		options.Classes = append(options.Classes, &ClassOption{
			Name:        class.Name,
			Role:        class.Role,
			PrimaryStat: class.PrimaryStat,
			Feature:     class.Feature,
			HitDie:      class.HitDie,
			IsCaster:    class.IsCaster,
			Skills:      cfg.ClassSkills[class.Name],
		})
	}
	for _, background := range cfg.Backgrounds {
		options.Backgrounds = append(options.Backgrounds, &BackgroundOption{
			Name:        background.Name,
			Description: background.Description,
			Skills:      background.Skills,
		})
	}
	return options, nil
}

func (s *service) ToggleEquip(ctx context.Context, ownerID, characterID, itemID string) (*entities.Character, error) {
	character, err := s.getOwned(ctx, ownerID, characterID)
	if err != nil {
		return nil, err
	}
	item := character.FindItem(itemID)
	if item == nil {
		return nil, apperrors.NotFoundf("item %s not found", itemID)
	}
	item.Equipped = !item.Equipped

	if err := s.repository.Update(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

func (s *service) AdjustQuantity(ctx context.Context, ownerID, characterID, itemID string, delta int) (*entities.Character, error) {
	character, err := s.getOwned(ctx, ownerID, characterID)
	if err != nil {
		return nil, err
	}
	item := character.FindItem(itemID)
	if item == nil {
		return nil, apperrors.NotFoundf("item %s not found", itemID)
	}

	quantity := item.Quantity
	if quantity == 0 {
		quantity = 1
	}
	quantity += delta
	if quantity < 0 {
		quantity = 0
	}
	item.Quantity = quantity

	if err := s.repository.Update(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

func (s *service) AddItem(ctx context.Context, ownerID, characterID, name string) (*entities.Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.InvalidArgument("item name is required")
	}
	character, err := s.getOwned(ctx, ownerID, characterID)
	if err != nil {
		return nil, err
	}
	character.AddItem(s.uuidGen.New(), name)

	if err := s.repository.Update(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

func (s *service) DiscardItem(ctx context.Context, ownerID, characterID, itemID string, asGM bool) (*entities.Character, error) {
	character, err := s.getOwned(ctx, ownerID, characterID)
	if err != nil {
		return nil, err
	}
	item := character.FindItem(itemID)
	if item == nil {
		return nil, apperrors.NotFoundf("item %s not found", itemID)
	}
	if item.QuestLocked() && !asGM {
		return nil, apperrors.FailedPreconditionf("cannot discard quest item %s", item.Name)
	}
	removeItemByID(character, itemID)

	if err := s.repository.Update(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

func (s *service) TransferItem(ctx context.Context, ownerID, characterID, itemID, target string) (*entities.Character, string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, "", apperrors.InvalidArgument("transfer target is required")
	}
	character, err := s.getOwned(ctx, ownerID, characterID)
	if err != nil {
		return nil, "", err
	}
	item := character.FindItem(itemID)
	if item == nil {
		return nil, "", apperrors.NotFoundf("item %s not found", itemID)
	}

	itemName := item.Name
	removeItemByID(character, itemID)
	if err := s.repository.Update(ctx, character); err != nil {
		return nil, "", err
	}

	notice := fmt.Sprintf("%s transferred %s to %s.", character.Name, itemName, target)
	return character, notice, nil
}

func (s *service) getOwned(ctx context.Context, ownerID, id string) (*entities.Character, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID is required")
	}
	character, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if character.OwnerID != ownerID {
		return nil, apperrors.PermissionDeniedf("character %s does not belong to %s", id, ownerID).
			WithMeta("character_id", id)
	}
	return character, nil
}

func removeItemByID(character *entities.Character, itemID string) {
	filtered := character.Inventory[:0]
	for _, item := range character.Inventory {
		if item.ID != itemID {
			filtered = append(filtered, item)
		}
	}
	character.Inventory = filtered
}
