package gamestates

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

func gameStateKey(id string) string {
	return fmt.Sprintf("gamestate:%s", id)
}

func ownerGameStatesKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:gamestates", ownerID)
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// NewRedisRepository creates a new Redis-backed game state repository
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

func (r *redisRepo) Create(ctx context.Context, state *entities.GameState) error {
	if state == nil {
		return apperrors.InvalidArgument("game state cannot be nil")
	}

	if state.ID == "" {
		state.ID = r.uuidGenerator.New()
	}

	now := time.Now()
	state.CreatedAt = now
	state.UpdatedAt = now

	payload, err := json.Marshal(state)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize game state")
	}

	exists, err := r.client.Exists(ctx, gameStateKey(state.ID)).Result()
	if err != nil {
		return apperrors.Wrap(err, "failed to check game state existence")
	}
	if exists > 0 {
		return apperrors.AlreadyExistsf("game state %s already exists", state.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameStateKey(state.ID), payload, 0)
	pipe.SAdd(ctx, ownerGameStatesKey(state.OwnerID), state.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to store game state")
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.GameState, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("game state ID cannot be empty")
	}

	payload, err := r.client.Get(ctx, gameStateKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("game state %s not found", id)
		}
		return nil, apperrors.Wrap(err, "failed to get game state")
	}

	var state entities.GameState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return nil, apperrors.Wrap(err, "failed to deserialize game state")
	}
	return &state, nil
}

func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*entities.GameState, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, ownerGameStatesKey(ownerID)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list owner game states")
	}

	states := make([]*entities.GameState, 0, len(ids))
	for _, id := range ids {
		state, err := r.Get(ctx, id)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		states = append(states, state)
	}
	return states, nil
}

func (r *redisRepo) Update(ctx context.Context, state *entities.GameState) error {
	if state == nil {
		return apperrors.InvalidArgument("game state cannot be nil")
	}
	if state.ID == "" {
		return apperrors.InvalidArgument("game state ID cannot be empty")
	}

	existing, err := r.Get(ctx, state.ID)
	if err != nil {
		return err
	}

	state.CreatedAt = existing.CreatedAt
	state.UpdatedAt = time.Now()

	payload, err := json.Marshal(state)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize game state")
	}

	if err := r.client.Set(ctx, gameStateKey(state.ID), payload, 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to update game state")
	}
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidArgument("game state ID cannot be empty")
	}

	state, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, gameStateKey(id))
	pipe.SRem(ctx, ownerGameStatesKey(state.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to delete game state")
	}
	return nil
}
