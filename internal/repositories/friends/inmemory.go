package friends

import (
	"context"
	"sync"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
)

type inMemoryRepo struct {
	mu    sync.RWMutex
	lists map[string][]*entities.Friend
}

// NewInMemoryRepository creates a new in-memory friend list repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepo{
		lists: make(map[string][]*entities.Friend),
	}
}

func copyList(list []*entities.Friend) []*entities.Friend {
	copied := make([]*entities.Friend, len(list))
	for i, f := range list {
		friend := *f
		copied[i] = &friend
	}
	return copied
}

func (r *inMemoryRepo) List(ctx context.Context, ownerID string) ([]*entities.Friend, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyList(r.lists[ownerID]), nil
}

func (r *inMemoryRepo) Save(ctx context.Context, ownerID string, list []*entities.Friend) error {
	if ownerID == "" {
		return apperrors.InvalidArgument("owner ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lists[ownerID] = copyList(list)
	return nil
}
