package notifications

import (
	"context"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
)

// Repository defines the interface for notification storage.
// Notifications are kept newest-first as a single list per owner.
type Repository interface {
	// List retrieves all notifications for an owner, newest first.
	// An owner with nothing stored gets an empty slice, not an error.
	List(ctx context.Context, ownerID string) ([]*entities.AppNotification, error)

	// Save replaces the notification list for an owner
	Save(ctx context.Context, ownerID string, list []*entities.AppNotification) error
}
