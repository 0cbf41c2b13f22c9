package gamestates

import (
	"context"
	"encoding/json"
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
	states        map[string]*entities.GameState
	byOwner       map[string][]string
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory game state repository
func NewInMemoryRepository(cfg *InMemoryRepoConfig) Repository {
	if cfg == nil || cfg.UUIDGenerator == nil {
		panic("uuid generator is required")
	}

	return &inMemoryRepo{
		states:        make(map[string]*entities.GameState),
		byOwner:       make(map[string][]string),
		uuidGenerator: cfg.UUIDGenerator,
	}
}

// copyState round-trips through JSON. The transcript and map nest deeply
// enough that field-by-field copying is not worth maintaining.
func copyState(s *entities.GameState) *entities.GameState {
	payload, err := json.Marshal(s)
	if err != nil {
		return s
	}
	var copied entities.GameState
	if err := json.Unmarshal(payload, &copied); err != nil {
		return s
	}
	return &copied
}

func (r *inMemoryRepo) Create(ctx context.Context, state *entities.GameState) error {
	if state == nil {
		return apperrors.InvalidArgument("game state cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if state.ID == "" {
		state.ID = r.uuidGenerator.New()
	}

	if _, exists := r.states[state.ID]; exists {
		return apperrors.AlreadyExistsf("game state %s already exists", state.ID)
	}

	now := time.Now()
	state.CreatedAt = now
	state.UpdatedAt = now

	r.states[state.ID] = copyState(state)
	r.byOwner[state.OwnerID] = append(r.byOwner[state.OwnerID], state.ID)
	return nil
}

func (r *inMemoryRepo) Get(ctx context.Context, id string) (*entities.GameState, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("game state ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[id]
	if !ok {
		return nil, apperrors.NotFoundf("game state %s not found", id)
	}
	return copyState(state), nil
}

func (r *inMemoryRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entities.GameState, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byOwner[ownerID]
	states := make([]*entities.GameState, 0, len(ids))
	for _, id := range ids {
		if state, ok := r.states[id]; ok {
			states = append(states, copyState(state))
		}
	}
	return states, nil
}

func (r *inMemoryRepo) Update(ctx context.Context, state *entities.GameState) error {
	if state == nil {
		return apperrors.InvalidArgument("game state cannot be nil")
	}
	if state.ID == "" {
		return apperrors.InvalidArgument("game state ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.states[state.ID]
	if !ok {
		return apperrors.NotFoundf("game state %s not found", state.ID)
	}

	state.CreatedAt = existing.CreatedAt
	state.UpdatedAt = time.Now()
	r.states[state.ID] = copyState(state)
	return nil
}

func (r *inMemoryRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidArgument("game state ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.states[id]
	if !ok {
		return apperrors.NotFoundf("game state %s not found", id)
	}

	delete(r.states, id)

	ids := r.byOwner[state.OwnerID]
	for i, sid := range ids {
		if sid == id {
			r.byOwner[state.OwnerID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}
