package notifications

import (
	"context"
	"sync"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
)

type inMemoryRepo struct {
	mu    sync.RWMutex
	lists map[string][]*entities.AppNotification
}

// NewInMemoryRepository creates a new in-memory notification repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepo{
		lists: make(map[string][]*entities.AppNotification),
	}
}

func copyList(list []*entities.AppNotification) []*entities.AppNotification {
	copied := make([]*entities.AppNotification, len(list))
	for i, n := range list {
		notification := *n
		copied[i] = &notification
	}
	return copied
}

func (r *inMemoryRepo) List(ctx context.Context, ownerID string) ([]*entities.AppNotification, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyList(r.lists[ownerID]), nil
}

func (r *inMemoryRepo) Save(ctx context.Context, ownerID string, list []*entities.AppNotification) error {
	if ownerID == "" {
		return apperrors.InvalidArgument("owner ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lists[ownerID] = copyList(list)
	return nil
}
