package campaigns

import (
	"context"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

// Repository defines the interface for scheduled campaign storage.
// Campaigns are never removed from the board.
type Repository interface {
	// Create stores a new campaign
	Create(ctx context.Context, campaign *entities.ScheduledCampaign) error

	// Get retrieves a campaign by ID
	Get(ctx context.Context, id string) (*entities.ScheduledCampaign, error)

	// Update saves changes to an existing campaign
	Update(ctx context.Context, campaign *entities.ScheduledCampaign) error

	// List retrieves all campaigns
	List(ctx context.Context) ([]*entities.ScheduledCampaign, error)
}
