package friends

import (
	"context"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

// Repository defines the interface for friend list storage.
// The list is small and read-modify-written as a unit.
type Repository interface {
	// List retrieves the friend list for an owner.
	// An owner with no stored list gets an empty slice, not an error.
	List(ctx context.Context, ownerID string) ([]*entities.Friend, error)

	// Save replaces the friend list for an owner
	Save(ctx context.Context, ownerID string, list []*entities.Friend) error
}
