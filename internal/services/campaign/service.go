package campaign

import (
	"context"
	"sort"
	"strings"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/campaigns"
	"github.com/arcanenexus/arcane-nexus/internal/uuid"
)

// CreateInput describes a new scheduled campaign
type CreateInput struct {
	Title       string
	HostName    string
	HostAvatar  string
	Description string
	Genre       entities.GameGenre
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	MaxPlayers  int
	AIEnabled   bool
}

// Service manages the scheduled campaign board
type Service interface {
	// Create schedules a campaign with the host pre-registered
	Create(ctx context.Context, input *CreateInput) (*entities.ScheduledCampaign, error)

	// Get retrieves a campaign
	Get(ctx context.Context, id string) (*entities.ScheduledCampaign, error)

	// List retrieves the board sorted by date then time
	List(ctx context.Context) ([]*entities.ScheduledCampaign, error)

	// Join registers a player on a campaign
	Join(ctx context.Context, campaignID string, player *entities.CampaignPlayer) (*entities.ScheduledCampaign, error)

	// SeedDemo installs demo campaigns on an empty board
	SeedDemo(ctx context.Context) error
}

type service struct {
	repository campaigns.Repository
	uuidGen    uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    campaigns.Repository
	UUIDGenerator uuid.Generator
}

// NewService creates a new campaign service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.UUIDGenerator == nil {
		panic("uuid generator is required")
	}

	return &service{
		repository: cfg.Repository,
		uuidGen:    cfg.UUIDGenerator,
	}
}

func (s *service) Create(ctx context.Context, input *CreateInput) (*entities.ScheduledCampaign, error) {
	if input == nil {
		return nil, apperrors.InvalidArgument("input is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.InvalidArgument("title is required")
	}
	if strings.TrimSpace(input.HostName) == "" {
		return nil, apperrors.InvalidArgument("host name is required")
	}
	if input.Date == "" || input.Time == "" {
		return nil, apperrors.InvalidArgument("date and time are required")
	}

	genre := input.Genre
	if !genre.Valid() {
		genre = entities.GenreFantasy
	}
	maxPlayers := input.MaxPlayers
	if maxPlayers < 1 {
		maxPlayers = 1
	}
	description := input.Description
	if description == "" {
		description = "No description provided."
	}

	campaign := &entities.ScheduledCampaign{
		ID:          s.uuidGen.New(),
		Title:       input.Title,
		HostName:    input.HostName,
		Description: description,
		Genre:       genre,
		Date:        input.Date,
		Time:        input.Time,
		MaxPlayers:  maxPlayers,
		AIEnabled:   input.AIEnabled,
		RegisteredPlayers: []*entities.CampaignPlayer{{
			ID:     "host",
			Name:   input.HostName,
			Avatar: input.HostAvatar,
		}},
	}
	if err := s.repository.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *service) Get(ctx context.Context, id string) (*entities.ScheduledCampaign, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("campaign ID is required")
	}
	return s.repository.Get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*entities.ScheduledCampaign, error) {
	list, err := s.repository.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].Time < list[j].Time
	})
	return list, nil
}

func (s *service) Join(ctx context.Context, campaignID string, player *entities.CampaignPlayer) (*entities.ScheduledCampaign, error) {
	if player == nil || strings.TrimSpace(player.Name) == "" {
		return nil, apperrors.InvalidArgument("player name is required")
	}
	campaign, err := s.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if player.ID == "" {
		player.ID = s.uuidGen.New()
	}
	if err := campaign.AddPlayer(player); err != nil {
		return nil, err
	}
	if err := s.repository.Update(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

// SeedDemo fills an empty board with sample listings so a fresh
// install has something to browse
func (s *service) SeedDemo(ctx context.Context) error {
	existing, err := s.repository.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	demos := []*entities.ScheduledCampaign{
		{
			ID:          s.uuidGen.New(),
			Title:       "The Whispering Shadows",
			HostName:    "GrandMasterDM",
			Description: "An investigation into the disappearance of the town mayor turns into a cosmic nightmare.",
			Genre:       entities.GenreEldritchHorror,
			Date:        "2025-10-31",
			Time:        "20:00",
			MaxPlayers:  5,
			AIEnabled:   true,
			RegisteredPlayers: []*entities.CampaignPlayer{
				{ID: "npc1", Name: "Alice"},
				{ID: "npc2", Name: "Bob"},
			},
		},
		{
			ID:                s.uuidGen.New(),
			Title:             "Neon Nights Heist",
			HostName:          "CyberPunk_2099",
			Description:       "High stakes corporate extraction. Bring your best netrunning gear.",
			Genre:             entities.GenreCyberpunk,
			Date:              "2025-11-02",
			Time:              "18:00",
			MaxPlayers:        4,
			AIEnabled:         true,
			RegisteredPlayers: []*entities.CampaignPlayer{},
		},
	}
	for _, demo := range demos {
		if err := s.repository.Create(ctx, demo); err != nil {
			return err
		}
	}
	return nil
}
