package library

import (
	"context"
	"strings"

	"github.com/arcanenexus/arcane-nexus/internal/clients/dnd5e"
	"github.com/arcanenexus/arcane-nexus/internal/clients/genai"
	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/rulebook"
)

// SearchResult carries library matches and whether they came from the
// generative fallback rather than the reference API.
type SearchResult struct {
	Items       []*entities.LibraryItem
	AIGenerated bool
}

// Service serves the reference library: SRD lookups first, generative
// fallback for anything the SRD does not know.
type Service interface {
	// Search looks a category up in the reference API. On a miss or
	// API failure with a non-empty query, the gateway invents an entry.
	Search(ctx context.Context, category entities.LibraryCategory, query string) (*SearchResult, error)

	// ClassSpells lists spell options for a caster class. Fantasy
	// casters read the SRD; other genres use the local lists.
	ClassSpells(ctx context.Context, genre entities.GameGenre, class, query string) ([]*entities.LibraryItem, error)

	// Generative GM tools
	GenerateQuest(ctx context.Context, level int, theme string, genre entities.GameGenre) (*entities.Quest, error)
	GenerateNPC(ctx context.Context, description string, genre entities.GameGenre) (*entities.GeneratedNPC, error)
	GenerateMonster(ctx context.Context, description, cr string, genre entities.GameGenre) (*entities.LibraryItem, error)
	GenerateSpell(ctx context.Context, description, level string, genre entities.GameGenre) (*entities.LibraryItem, error)
	GenerateItem(ctx context.Context, description, itemType string, genre entities.GameGenre) (*entities.LibraryItem, error)
	GenerateSkill(ctx context.Context, description, attribute string, genre entities.GameGenre) (*entities.LibraryItem, error)
	GenerateStory(ctx context.Context, prompt string, length genai.StoryLength, genre entities.GameGenre) (*entities.Story, error)
}

type service struct {
	reference dnd5e.Client
	gateway   genai.Client
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	ReferenceClient dnd5e.Client
	Gateway         genai.Client // optional, SRD-only library if nil
}

// NewService creates a new library service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.ReferenceClient == nil {
		panic("reference client is required")
	}

	return &service{
		reference: cfg.ReferenceClient,
		gateway:   cfg.Gateway,
	}
}

func (s *service) Search(ctx context.Context, category entities.LibraryCategory, query string) (*SearchResult, error) {
	items, err := s.searchReference(category, query)
	if err != nil {
		log.Warn().Err(err).Str("category", string(category)).Msg("reference lookup failed")
		items = nil
	}
	if len(items) > 0 {
		return &SearchResult{Items: items}, nil
	}

	// Only invent an entry for a specific query; browsing an empty
	// category should not conjure content
	if strings.TrimSpace(query) == "" || s.gateway == nil {
		return &SearchResult{Items: []*entities.LibraryItem{}}, nil
	}

	generated, err := s.gateway.GenerateLibraryEntry(ctx, category, query)
	if err != nil {
		log.Warn().Err(err).Str("category", string(category)).Str("query", query).Msg("library generation failed")
		return &SearchResult{Items: []*entities.LibraryItem{}}, nil
	}
	return &SearchResult{Items: []*entities.LibraryItem{generated}, AIGenerated: true}, nil
}

func (s *service) searchReference(category entities.LibraryCategory, query string) ([]*entities.LibraryItem, error) {
	switch category {
	case entities.CategorySpells:
		return s.reference.SearchSpells(query, "")
	case entities.CategoryMonsters:
		return s.reference.SearchMonsters(query)
	case entities.CategoryWeapons:
		return s.reference.SearchWeapons(query)
	case entities.CategoryArmor:
		return s.reference.SearchArmor(query)
	case entities.CategoryClasses:
		return s.reference.SearchClasses(query)
	case entities.CategoryRaces:
		return s.reference.SearchRaces(query)
	default:
		// Skills and custom categories have no SRD listing
		return nil, nil
	}
}

func (s *service) ClassSpells(ctx context.Context, genre entities.GameGenre, class, query string) ([]*entities.LibraryItem, error) {
	if class == "" {
		return nil, apperrors.InvalidArgument("class is required")
	}

	if genre != entities.GenreFantasy {
		local := rulebook.GenreSpellList(genre, class)
		if query == "" {
			return local, nil
		}
		lower := strings.ToLower(query)
		filtered := make([]*entities.LibraryItem, 0, len(local))
		for _, spell := range local {
			if strings.Contains(strings.ToLower(spell.Name), lower) ||
				strings.Contains(strings.ToLower(spell.Description), lower) {
				filtered = append(filtered, spell)
			}
		}
		return filtered, nil
	}

	srdClass := "Wizard"
	if info := rulebook.ConfigForGenre(genre).Class(class); info != nil && info.SRDClass != "" {
		srdClass = info.SRDClass
	}
	return s.reference.SearchSpells(query, srdClass)
}

func (s *service) GenerateQuest(ctx context.Context, level int, theme string, genre entities.GameGenre) (*entities.Quest, error) {
	if err := s.requireGateway(); err != nil {
		return nil, err
	}
	return s.gateway.GenerateQuest(ctx, level, theme, genre)
}

func (s *service) GenerateNPC(ctx context.Context, description string, genre entities.GameGenre) (*entities.GeneratedNPC, error) {
	if err := s.requireGateway(); err != nil {
		return nil, err
	}
	return s.gateway.GenerateNPC(ctx, description, genre)
}

func (s *service) GenerateMonster(ctx context.Context, description, cr string, genre entities.GameGenre) (*entities.LibraryItem, error) {
	if err := s.requireGateway(); err != nil {
		return nil, err
	}
	return s.gateway.GenerateMonster(ctx, description, cr, genre)
}

func (s *service) GenerateSpell(ctx context.Context, description, level string, genre entities.GameGenre) (*entities.LibraryItem, error) {
	if err := s.requireGateway(); err != nil {
		return nil, err
	}
	return s.gateway.GenerateSpell(ctx, description, level, genre)
}

func (s *service) GenerateItem(ctx context.Context, description, itemType string, genre entities.GameGenre) (*entities.LibraryItem, error) {
	if err := s.requireGateway(); err != nil {
		return nil, err
	}
	return s.gateway.GenerateItem(ctx, description, itemType, genre)
}

func (s *service) GenerateSkill(ctx context.Context, description, attribute string, genre entities.GameGenre) (*entities.LibraryItem, error) {
	if err := s.requireGateway(); err != nil {
		return nil, err
	}
	return s.gateway.GenerateSkill(ctx, description, attribute, genre)
}

func (s *service) GenerateStory(ctx context.Context, prompt string, length genai.StoryLength, genre entities.GameGenre) (*entities.Story, error) {
	if err := s.requireGateway(); err != nil {
		return nil, err
	}
	return s.gateway.GenerateStory(ctx, prompt, length, genre)
}

func (s *service) requireGateway() error {
	if s.gateway == nil {
		return apperrors.FailedPrecondition("content generation is not available")
	}
	return nil
}
