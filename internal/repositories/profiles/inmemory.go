package profiles

import (
	"context"
	"sync"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
)

type inMemoryRepo struct {
	mu       sync.RWMutex
	profiles map[string]*entities.UserProfile
}

// NewInMemoryRepository creates a new in-memory profile repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepo{
		profiles: make(map[string]*entities.UserProfile),
	}
}

func (r *inMemoryRepo) Get(ctx context.Context, ownerID string) (*entities.UserProfile, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[ownerID]
	if !ok {
		return nil, apperrors.NotFoundf("profile for %s not found", ownerID)
	}

	copied := *profile
	copied.PlayStyles = append([]string(nil), profile.PlayStyles...)
	return &copied, nil
}

func (r *inMemoryRepo) Set(ctx context.Context, ownerID string, profile *entities.UserProfile) error {
	if ownerID == "" {
		return apperrors.InvalidArgument("owner ID cannot be empty")
	}
	if profile == nil {
		return apperrors.InvalidArgument("profile cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *profile
	copied.PlayStyles = append([]string(nil), profile.PlayStyles...)
	r.profiles[ownerID] = &copied
	return nil
}
