package friends

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
)

func friendsKey(ownerID string) string {
	return fmt.Sprintf("friends:%s", ownerID)
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed friend list repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: cfg.Client}
}

func (r *redisRepo) List(ctx context.Context, ownerID string) ([]*entities.Friend, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID cannot be empty")
	}

	payload, err := r.client.Get(ctx, friendsKey(ownerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return []*entities.Friend{}, nil
		}
		return nil, apperrors.Wrap(err, "failed to get friend list")
	}

	var list []*entities.Friend
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		return nil, apperrors.Wrap(err, "failed to deserialize friend list")
	}
	return list, nil
}

func (r *redisRepo) Save(ctx context.Context, ownerID string, list []*entities.Friend) error {
	if ownerID == "" {
		return apperrors.InvalidArgument("owner ID cannot be empty")
	}

	payload, err := json.Marshal(list)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize friend list")
	}

	if err := r.client.Set(ctx, friendsKey(ownerID), payload, 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to store friend list")
	}
	return nil
}
