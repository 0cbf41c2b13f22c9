package characters

import (
	"context"
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

// inMemoryRepo implements Repository with a map, for tests and for
// running without Redis
type inMemoryRepo struct {
	mu            sync.RWMutex
	characters    map[string]*entities.Character
	byOwner       map[string][]string
	uuidGenerator uuid.Generator
}

// NewInMemoryRepository creates a new in-memory character repository
func NewInMemoryRepository(cfg *InMemoryRepoConfig) Repository {
	if cfg == nil || cfg.UUIDGenerator == nil {
		panic("uuid generator is required")
	}

	return &inMemoryRepo{
		characters:    make(map[string]*entities.Character),
		byOwner:       make(map[string][]string),
		uuidGenerator: cfg.UUIDGenerator,
	}
}

// copyCharacter returns a detached copy so callers cannot mutate stored state
func copyCharacter(c *entities.Character) *entities.Character {
	copied := *c

	if c.Stats != nil {
		copied.Stats = make(map[entities.Attribute]int, len(c.Stats))
		for k, v := range c.Stats {
			copied.Stats[k] = v
		}
	}

	copied.Skills = append([]string(nil), c.Skills...)

	if c.Inventory != nil {
		copied.Inventory = make([]*entities.InventoryItem, len(c.Inventory))
		for i, item := range c.Inventory {
			itemCopy := *item
			copied.Inventory[i] = &itemCopy
		}
	}

	if c.Appearance != nil {
		appearance := *c.Appearance
		copied.Appearance = &appearance
	}

	if c.Spells != nil {
		copied.Spells = &entities.SpellList{
			Cantrips: append([]string(nil), c.Spells.Cantrips...),
			Level1:   append([]string(nil), c.Spells.Level1...),
		}
	}

	return &copied
}

func (r *inMemoryRepo) Create(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if character.ID == "" {
		character.ID = r.uuidGenerator.New()
	}

	if _, exists := r.characters[character.ID]; exists {
		return apperrors.AlreadyExistsf("character %s already exists", character.ID)
	}

	now := time.Now()
	character.CreatedAt = now
	character.UpdatedAt = now

	r.characters[character.ID] = copyCharacter(character)
	r.byOwner[character.OwnerID] = append(r.byOwner[character.OwnerID], character.ID)
	return nil
}

func (r *inMemoryRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("character ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	character, ok := r.characters[id]
	if !ok {
		return nil, apperrors.NotFoundf("character %s not found", id)
	}
	return copyCharacter(character), nil
}

func (r *inMemoryRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byOwner[ownerID]
	characters := make([]*entities.Character, 0, len(ids))
	for _, id := range ids {
		if character, ok := r.characters[id]; ok {
			characters = append(characters, copyCharacter(character))
		}
	}
	return characters, nil
}

func (r *inMemoryRepo) Update(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}
	if character.ID == "" {
		return apperrors.InvalidArgument("character ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.characters[character.ID]
	if !ok {
		return apperrors.NotFoundf("character %s not found", character.ID)
	}

	character.CreatedAt = existing.CreatedAt
	character.UpdatedAt = time.Now()
	r.characters[character.ID] = copyCharacter(character)
	return nil
}

func (r *inMemoryRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidArgument("character ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	character, ok := r.characters[id]
	if !ok {
		return apperrors.NotFoundf("character %s not found", id)
	}

	delete(r.characters, id)

	ids := r.byOwner[character.OwnerID]
	for i, cid := range ids {
		if cid == id {
			r.byOwner[character.OwnerID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}
