package gamestates

import (
	"context"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

// Repository defines the interface for game session storage
type Repository interface {
	// Create stores a new game state
	Create(ctx context.Context, state *entities.GameState) error

	// Get retrieves a game state by ID
	Get(ctx context.Context, id string) (*entities.GameState, error)

	// GetByOwner retrieves all game states for an owner
	GetByOwner(ctx context.Context, ownerID string) ([]*entities.GameState, error)

	// Update saves changes to an existing game state.
	// Concurrent updates are last-write-wins.
	Update(ctx context.Context, state *entities.GameState) error

	// Delete removes a game state
	Delete(ctx context.Context, id string) error
}
