package campaigns

import (
	"context"
	"sync"
	"time"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/uuid"
)

// InMemoryRepoConfig holds configuration for the in-memory repository
type InMemoryRepoConfig struct {
	UUIDGenerator uuid.Generator
}

type inMemoryRepo struct {
	mu            sync.RWMutex
	campaigns     map[string]*entities.ScheduledCampaign
	order         []string
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory campaign repository
func NewInMemoryRepository(cfg *InMemoryRepoConfig) Repository {
	if cfg == nil || cfg.UUIDGenerator == nil {
		panic("uuid generator is required")
	}

	return &inMemoryRepo{
		campaigns:     make(map[string]*entities.ScheduledCampaign),
		uuidGenerator: cfg.UUIDGenerator,
	}
}

func copyCampaign(c *entities.ScheduledCampaign) *entities.ScheduledCampaign {
	copied := *c
	copied.RegisteredPlayers = make([]*entities.CampaignPlayer, len(c.RegisteredPlayers))
	for i, p := range c.RegisteredPlayers {
		player := *p
		copied.RegisteredPlayers[i] = &player
	}
	return &copied
}

func (r *inMemoryRepo) Create(ctx context.Context, campaign *entities.ScheduledCampaign) error {
	if campaign == nil {
		return apperrors.InvalidArgument("campaign cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if campaign.ID == "" {
		campaign.ID = r.uuidGenerator.New()
	}

	if _, exists := r.campaigns[campaign.ID]; exists {
		return apperrors.AlreadyExistsf("campaign %s already exists", campaign.ID)
	}

	campaign.CreatedAt = time.Now()
	r.campaigns[campaign.ID] = copyCampaign(campaign)
	r.order = append(r.order, campaign.ID)
	return nil
}

func (r *inMemoryRepo) Get(ctx context.Context, id string) (*entities.ScheduledCampaign, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("campaign ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	campaign, ok := r.campaigns[id]
	if !ok {
		return nil, apperrors.NotFoundf("campaign %s not found", id)
	}
	return copyCampaign(campaign), nil
}

func (r *inMemoryRepo) Update(ctx context.Context, campaign *entities.ScheduledCampaign) error {
	if campaign == nil {
		return apperrors.InvalidArgument("campaign cannot be nil")
	}
	if campaign.ID == "" {
		return apperrors.InvalidArgument("campaign ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.campaigns[campaign.ID]
	if !ok {
		return apperrors.NotFoundf("campaign %s not found", campaign.ID)
	}

	campaign.CreatedAt = existing.CreatedAt
	r.campaigns[campaign.ID] = copyCampaign(campaign)
	return nil
}

func (r *inMemoryRepo) List(ctx context.Context) ([]*entities.ScheduledCampaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	campaigns := make([]*entities.ScheduledCampaign, 0, len(r.order))
	for _, id := range r.order {
		if campaign, ok := r.campaigns[id]; ok {
			campaigns = append(campaigns, copyCampaign(campaign))
		}
	}
	return campaigns, nil
}
