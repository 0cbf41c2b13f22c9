package campaign

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/campaigns"
	"github.com/arcanenexus/arcane-nexus/internal/uuid"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.service = NewService(&ServiceConfig{
		Repository: campaigns.NewInMemoryRepository(&campaigns.InMemoryRepoConfig{
			UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
		}),
		UUIDGenerator: uuid.NewGoogleUUIDGenerator(),
	})
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestCreate() {
	created, err := s.service.Create(s.ctx, &CreateInput{
		Title:      "The Sunken Spire",
		HostName:   "Mira",
		HostAvatar: "https://example.com/mira.png",
		Genre:      entities.GenreFantasy,
		Date:       "2026-09-12",
		Time:       "19:30",
		MaxPlayers: 4,
	})
	s.Require().NoError(err)
	s.NotEmpty(created.ID)
	s.Equal("No description provided.", created.Description)

	// The host occupies the first seat under a reserved ID
	s.Require().Len(created.RegisteredPlayers, 1)
	s.Equal("host", created.RegisteredPlayers[0].ID)
	s.Equal("Mira", created.RegisteredPlayers[0].Name)
}

func (s *ServiceTestSuite) TestCreate_Validation() {
	_, err := s.service.Create(s.ctx, &CreateInput{
		HostName: "Mira", Date: "2026-09-12", Time: "19:30",
	})
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.service.Create(s.ctx, &CreateInput{
		Title: "The Sunken Spire", Date: "2026-09-12", Time: "19:30",
	})
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.service.Create(s.ctx, &CreateInput{
		Title: "The Sunken Spire", HostName: "Mira",
	})
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.service.Create(s.ctx, nil)
	s.True(apperrors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestCreate_Defaults() {
	created, err := s.service.Create(s.ctx, &CreateInput{
		Title:      "Starless Run",
		HostName:   "Kex",
		Genre:      entities.GameGenre("western"),
		Date:       "2026-09-12",
		Time:       "21:00",
		MaxPlayers: 0,
	})
	s.Require().NoError(err)
	s.Equal(entities.GenreFantasy, created.Genre, "unrecognized genres fall back")
	s.Equal(1, created.MaxPlayers)
}

func (s *ServiceTestSuite) TestList_SortedByDateThenTime() {
	for _, c := range []struct{ title, date, time string }{
		{"Late Show", "2026-09-14", "22:00"},
		{"Matinee", "2026-09-14", "14:00"},
		{"Opener", "2026-09-10", "19:00"},
	} {
		_, err := s.service.Create(s.ctx, &CreateInput{
			Title: c.title, HostName: "Mira", Date: c.date, Time: c.time,
		})
		s.Require().NoError(err)
	}

	list, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("Opener", list[0].Title)
	s.Equal("Matinee", list[1].Title)
	s.Equal("Late Show", list[2].Title)
}

func (s *ServiceTestSuite) TestJoin() {
	created, err := s.service.Create(s.ctx, &CreateInput{
		Title: "The Sunken Spire", HostName: "Mira",
		Date: "2026-09-12", Time: "19:30", MaxPlayers: 3,
	})
	s.Require().NoError(err)

	joined, err := s.service.Join(s.ctx, created.ID, &entities.CampaignPlayer{ID: "local", Name: "Borin"})
	s.Require().NoError(err)
	s.Len(joined.RegisteredPlayers, 2)

	fetched, err := s.service.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Len(fetched.RegisteredPlayers, 2)
}

func (s *ServiceTestSuite) TestJoin_Duplicate() {
	created, err := s.service.Create(s.ctx, &CreateInput{
		Title: "The Sunken Spire", HostName: "Mira",
		Date: "2026-09-12", Time: "19:30", MaxPlayers: 3,
	})
	s.Require().NoError(err)

	_, err = s.service.Join(s.ctx, created.ID, &entities.CampaignPlayer{ID: "local", Name: "Borin"})
	s.Require().NoError(err)

	_, err = s.service.Join(s.ctx, created.ID, &entities.CampaignPlayer{ID: "local", Name: "Borin"})
	s.True(apperrors.IsAlreadyExists(err))
}

func (s *ServiceTestSuite) TestJoin_Full() {
	created, err := s.service.Create(s.ctx, &CreateInput{
		Title: "The Sunken Spire", HostName: "Mira",
		Date: "2026-09-12", Time: "19:30", MaxPlayers: 2,
	})
	s.Require().NoError(err)

	_, err = s.service.Join(s.ctx, created.ID, &entities.CampaignPlayer{Name: "Borin"})
	s.Require().NoError(err)

	_, err = s.service.Join(s.ctx, created.ID, &entities.CampaignPlayer{Name: "Lyra"})
	s.True(apperrors.IsFailedPrecondition(err))
}

func (s *ServiceTestSuite) TestJoin_Validation() {
	_, err := s.service.Join(s.ctx, "some-id", nil)
	s.True(apperrors.IsInvalidArgument(err))

	_, err = s.service.Join(s.ctx, "ghost", &entities.CampaignPlayer{Name: "Borin"})
	s.True(apperrors.IsNotFound(err))
}

func (s *ServiceTestSuite) TestSeedDemo() {
	s.Require().NoError(s.service.SeedDemo(s.ctx))

	list, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("The Whispering Shadows", list[0].Title)
	s.Equal("Neon Nights Heist", list[1].Title)

	// Seeding again leaves the board alone
	s.Require().NoError(s.service.SeedDemo(s.ctx))
	list, err = s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 2)
}

func (s *ServiceTestSuite) TestSeedDemo_SkipsNonEmptyBoard() {
	_, err := s.service.Create(s.ctx, &CreateInput{
		Title: "Homebrew Night", HostName: "Mira",
		Date: "2026-09-12", Time: "19:30",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.SeedDemo(s.ctx))
	list, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 1)
}
