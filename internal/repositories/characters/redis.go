package characters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/uuid"
)

// characterData is the storage representation of a character
type characterData struct {
	ID         string                       `json:"id"`
	OwnerID    string                       `json:"owner_id"`
	Name       string                       `json:"name"`
	Race       string                       `json:"race"`
	Class      string                       `json:"class"`
	Level      int                          `json:"level"`
	HP         entities.HitPoints           `json:"hp"`
	AC         int                          `json:"ac"`
	Stats      map[entities.Attribute]int   `json:"stats"`
	Skills     []string                     `json:"skills"`
	Inventory  json.RawMessage              `json:"inventory"`
	Notes      string                       `json:"notes"`
	AvatarURL  string                       `json:"avatar_url,omitempty"`
	Appearance *entities.AppearanceDetails  `json:"appearance,omitempty"`
	Spells     *entities.SpellList          `json:"spells,omitempty"`
	Genre      entities.GameGenre           `json:"genre,omitempty"`
	CreatedAt  time.Time                    `json:"created_at"`
	UpdatedAt  time.Time                    `json:"updated_at"`
}

// toData converts an entity to its storage form
func toData(c *entities.Character) (*characterData, error) {
	inventory, err := json.Marshal(c.Inventory)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize inventory: %w", err)
	}

	return &characterData{
		ID:         c.ID,
		OwnerID:    c.OwnerID,
		Name:       c.Name,
		Race:       c.Race,
		Class:      c.Class,
		Level:      c.Level,
		HP:         c.HP,
		AC:         c.AC,
		Stats:      c.Stats,
		Skills:     c.Skills,
		Inventory:  inventory,
		Notes:      c.Notes,
		AvatarURL:  c.AvatarURL,
		Appearance: c.Appearance,
		Spells:     c.Spells,
		Genre:      c.Genre,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}, nil
}

// fromData converts storage form back to an entity, migrating legacy
// inventory shapes on the way out
func fromData(d *characterData) (*entities.Character, error) {
	inventory, err := decodeInventory(d.Inventory)
	if err != nil {
		return nil, err
	}

	return &entities.Character{
		ID:         d.ID,
		OwnerID:    d.OwnerID,
		Name:       d.Name,
		Race:       d.Race,
		Class:      d.Class,
		Level:      d.Level,
		HP:         d.HP,
		AC:         d.AC,
		Stats:      d.Stats,
		Skills:     d.Skills,
		Inventory:  inventory,
		Notes:      d.Notes,
		AvatarURL:  d.AvatarURL,
		Appearance: d.Appearance,
		Spells:     d.Spells,
		Genre:      d.Genre,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

// decodeInventory handles both the current object shape and the legacy
// string-array shape. Legacy entries become quantity-1 unequipped items;
// names that suggest quest items get flagged.
func decodeInventory(raw json.RawMessage) ([]*entities.InventoryItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var items []*entities.InventoryItem
	if err := json.Unmarshal(raw, &items); err == nil {
		return items, nil
	}

	var legacy []string
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, fmt.Errorf("unrecognized inventory shape: %w", err)
	}

	items = make([]*entities.InventoryItem, 0, len(legacy))
	for i, name := range legacy {
		items = append(items, &entities.InventoryItem{
			ID:          fmt.Sprintf("legacy-%d", i),
			Name:        name,
			Equipped:    false,
			Quantity:    1,
			IsQuestItem: entities.InferQuestItem(name),
		})
	}
	return items, nil
}

func characterKey(id string) string {
	return fmt.Sprintf("character:%s", id)
}

func ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

// redisRepo implements Repository using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("cfg is required")
	}
	if cfg.Client == nil {
		panic("redis client is required")
	}
	if cfg.UUIDGenerator == nil {
		panic("uuid generator is required")
	}

	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}

	if character.ID == "" {
		character.ID = r.uuidGenerator.New()
	}

	now := time.Now()
	character.CreatedAt = now
	character.UpdatedAt = now

	data, err := toData(character)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize character")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize character")
	}

	exists, err := r.client.Exists(ctx, characterKey(character.ID)).Result()
	if err != nil {
		return apperrors.Wrap(err, "failed to check character existence")
	}
	if exists > 0 {
		return apperrors.AlreadyExistsf("character %s already exists", character.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, characterKey(character.ID), string(payload), 0)
	pipe.SAdd(ctx, ownerCharactersKey(character.OwnerID), character.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to store character")
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("character ID cannot be empty")
	}

	payload, err := r.client.Get(ctx, characterKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("character %s not found", id).
				WithMeta("character_id", id)
		}
		return nil, apperrors.Wrap(err, "failed to get character")
	}

	var data characterData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, apperrors.Wrap(err, "failed to deserialize character")
	}

	character, err := fromData(&data)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to convert character")
	}
	return character, nil
}

// GetByOwner retrieves all characters for an owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entities.Character, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list owner characters")
	}

	characters := make([]*entities.Character, 0, len(ids))
	for _, id := range ids {
		character, err := r.Get(ctx, id)
		if err != nil {
			// Index can outlive a deleted record; skip stale entries
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		characters = append(characters, character)
	}

	return characters, nil
}

// Update saves changes to an existing character
func (r *redisRepo) Update(ctx context.Context, character *entities.Character) error {
	if character == nil {
		return apperrors.InvalidArgument("character cannot be nil")
	}
	if character.ID == "" {
		return apperrors.InvalidArgument("character ID cannot be empty")
	}

	existing, err := r.Get(ctx, character.ID)
	if err != nil {
		return err
	}

	// Preserve creation time from the stored record
	character.CreatedAt = existing.CreatedAt
	character.UpdatedAt = time.Now()

	data, err := toData(character)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize character")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize character")
	}

	if err := r.client.Set(ctx, characterKey(character.ID), string(payload), 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to update character")
	}

	return nil
}

// Delete removes a character
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidArgument("character ID cannot be empty")
	}

	character, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, characterKey(id))
	pipe.SRem(ctx, ownerCharactersKey(character.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to delete character")
	}

	return nil
}
