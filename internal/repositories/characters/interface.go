package characters

import (
	"context"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

// Repository defines the interface for character storage
type Repository interface {
	// Create stores a new character
	Create(ctx context.Context, character *entities.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*entities.Character, error)

	// GetByOwner retrieves all characters for an owner
	GetByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error)

	// Update saves changes to an existing character
	Update(ctx context.Context, character *entities.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}
