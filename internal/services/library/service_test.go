package library

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcanenexus/arcane-nexus/internal/clients/dnd5e"
	"github.com/arcanenexus/arcane-nexus/internal/clients/genai"
	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
)

// mockReference scripts the reference API per category
type mockReference struct {
	spells   func(query, class string) ([]*entities.LibraryItem, error)
	monsters func(query string) ([]*entities.LibraryItem, error)
}

func (m *mockReference) SearchSpells(query, class string) ([]*entities.LibraryItem, error) {
	if m.spells == nil {
		return nil, nil
	}
	return m.spells(query, class)
}

func (m *mockReference) SearchMonsters(query string) ([]*entities.LibraryItem, error) {
	if m.monsters == nil {
		return nil, nil
	}
	return m.monsters(query)
}

func (m *mockReference) SearchWeapons(query string) ([]*entities.LibraryItem, error) {
	return nil, nil
}

func (m *mockReference) SearchArmor(query string) ([]*entities.LibraryItem, error) {
	return nil, nil
}

func (m *mockReference) SearchClasses(query string) ([]*entities.LibraryItem, error) {
	return nil, nil
}

func (m *mockReference) SearchRaces(query string) ([]*entities.LibraryItem, error) {
	return nil, nil
}

var _ dnd5e.Client = (*mockReference)(nil)

// mockGateway stubs only the generative calls the library reaches for;
// the embedded interface panics on anything unexpected
type mockGateway struct {
	genai.Client
	libraryEntryFunc func(ctx context.Context, category entities.LibraryCategory, name string) (*entities.LibraryItem, error)
	questFunc        func(ctx context.Context, level int, theme string, genre entities.GameGenre) (*entities.Quest, error)
}

func (m *mockGateway) GenerateLibraryEntry(ctx context.Context, category entities.LibraryCategory, name string) (*entities.LibraryItem, error) {
	if m.libraryEntryFunc == nil {
		return nil, errors.New("not stubbed")
	}
	return m.libraryEntryFunc(ctx, category, name)
}

func (m *mockGateway) GenerateQuest(ctx context.Context, level int, theme string, genre entities.GameGenre) (*entities.Quest, error) {
	if m.questFunc == nil {
		return nil, errors.New("not stubbed")
	}
	return m.questFunc(ctx, level, theme, genre)
}

type ServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	reference *mockReference
	gateway   *mockGateway
	service   Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.reference = &mockReference{}
	s.gateway = &mockGateway{}
	s.service = NewService(&ServiceConfig{
		ReferenceClient: s.reference,
		Gateway:         s.gateway,
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestSearch_ReferenceHit() {
	s.reference.monsters = func(query string) ([]*entities.LibraryItem, error) {
		s.Equal("goblin", query)
		return []*entities.LibraryItem{{Name: "Goblin", Category: entities.CategoryMonsters}}, nil
	}

	result, err := s.service.Search(s.ctx, entities.CategoryMonsters, "goblin")
	s.Require().NoError(err)
	s.False(result.AIGenerated)
	s.Require().Len(result.Items, 1)
	s.Equal("Goblin", result.Items[0].Name)
}

func (s *ServiceTestSuite) TestSearch_MissFallsBackToGateway() {
	s.reference.monsters = func(query string) ([]*entities.LibraryItem, error) {
		return nil, nil
	}
	s.gateway.libraryEntryFunc = func(ctx context.Context, category entities.LibraryCategory, name string) (*entities.LibraryItem, error) {
		s.Equal(entities.CategoryMonsters, category)
		s.Equal("chrono wyrm", name)
		return &entities.LibraryItem{Name: "Chrono Wyrm"}, nil
	}

	result, err := s.service.Search(s.ctx, entities.CategoryMonsters, "chrono wyrm")
	s.Require().NoError(err)
	s.True(result.AIGenerated)
	s.Require().Len(result.Items, 1)
	s.Equal("Chrono Wyrm", result.Items[0].Name)
}

func (s *ServiceTestSuite) TestSearch_ReferenceFailureFallsBack() {
	s.reference.monsters = func(query string) ([]*entities.LibraryItem, error) {
		return nil, errors.New("upstream 503")
	}
	s.gateway.libraryEntryFunc = func(ctx context.Context, category entities.LibraryCategory, name string) (*entities.LibraryItem, error) {
		return &entities.LibraryItem{Name: "Chrono Wyrm"}, nil
	}

	result, err := s.service.Search(s.ctx, entities.CategoryMonsters, "chrono wyrm")
	s.Require().NoError(err)
	s.True(result.AIGenerated)
	s.Len(result.Items, 1)
}

func (s *ServiceTestSuite) TestSearch_EmptyQueryNeverGenerates() {
	s.reference.monsters = func(query string) ([]*entities.LibraryItem, error) {
		return nil, nil
	}
	s.gateway.libraryEntryFunc = func(ctx context.Context, category entities.LibraryCategory, name string) (*entities.LibraryItem, error) {
		s.FailNow("browsing should not reach the gateway")
		return nil, nil
	}

	result, err := s.service.Search(s.ctx, entities.CategoryMonsters, "  ")
	s.Require().NoError(err)
	s.False(result.AIGenerated)
	s.Empty(result.Items)
}

func (s *ServiceTestSuite) TestSearch_GatewayFailureIsSilent() {
	s.gateway.libraryEntryFunc = func(ctx context.Context, category entities.LibraryCategory, name string) (*entities.LibraryItem, error) {
		return nil, errors.New("model overloaded")
	}

	result, err := s.service.Search(s.ctx, entities.CategoryMonsters, "chrono wyrm")
	s.Require().NoError(err)
	s.False(result.AIGenerated)
	s.Empty(result.Items)
}

func (s *ServiceTestSuite) TestClassSpells_FantasyReadsSRD() {
	var gotClass string
	s.reference.spells = func(query, class string) ([]*entities.LibraryItem, error) {
		gotClass = class
		return []*entities.LibraryItem{{Name: "Fireball"}}, nil
	}

	items, err := s.service.ClassSpells(s.ctx, entities.GenreFantasy, "Wizard", "fire")
	s.Require().NoError(err)
	s.Equal("Wizard", gotClass)
	s.Len(items, 1)
}

func (s *ServiceTestSuite) TestClassSpells_OtherGenresUseLocalList() {
	s.reference.spells = func(query, class string) ([]*entities.LibraryItem, error) {
		s.FailNow("non-fantasy casters never hit the reference API")
		return nil, nil
	}

	items, err := s.service.ClassSpells(s.ctx, entities.GenreSciFi, "Technomancer", "")
	s.Require().NoError(err)
	s.NotEmpty(items)
}

func (s *ServiceTestSuite) TestClassSpells_FiltersLocalList() {
	all, err := s.service.ClassSpells(s.ctx, entities.GenreSciFi, "Technomancer", "")
	s.Require().NoError(err)
	s.Require().NotEmpty(all)

	filtered, err := s.service.ClassSpells(s.ctx, entities.GenreSciFi, "Technomancer", all[0].Name)
	s.Require().NoError(err)
	s.Require().NotEmpty(filtered)
	s.Equal(all[0].Name, filtered[0].Name)

	none, err := s.service.ClassSpells(s.ctx, entities.GenreSciFi, "Technomancer", "zzzz-no-such-spell")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *ServiceTestSuite) TestClassSpells_RequiresClass() {
	_, err := s.service.ClassSpells(s.ctx, entities.GenreFantasy, "", "")
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestGenerateQuest() {
	s.gateway.questFunc = func(ctx context.Context, level int, theme string, genre entities.GameGenre) (*entities.Quest, error) {
		s.Equal(3, level)
		s.Equal("revenge", theme)
		return &entities.Quest{Title: "Blood for the Harbor"}, nil
	}

	quest, err := s.service.GenerateQuest(s.ctx, 3, "revenge", entities.GenreFantasy)
	s.Require().NoError(err)
	s.Equal("Blood for the Harbor", quest.Title)
}

func (s *ServiceTestSuite) TestGenerate_WithoutGateway() {
	svc := NewService(&ServiceConfig{ReferenceClient: s.reference})

	_, err := svc.GenerateQuest(s.ctx, 1, "theme", entities.GenreFantasy)
	s.True(apperrors.IsFailedPrecondition(err))

	_, err = svc.GenerateStory(s.ctx, "a heist", genai.StoryShort, entities.GenreCyberpunk)
	s.True(apperrors.IsFailedPrecondition(err))
}
