package profiles

import (
	"context"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

// Repository defines the interface for user profile storage.
// Each owner has at most one profile record.
type Repository interface {
	// Get retrieves the profile for an owner
	Get(ctx context.Context, ownerID string) (*entities.UserProfile, error)

	// Set stores or replaces the profile for an owner
	Set(ctx context.Context, ownerID string, profile *entities.UserProfile) error
}
