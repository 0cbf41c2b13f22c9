package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
)

func notificationsKey(ownerID string) string {
	return fmt.Sprintf("notifications:%s", ownerID)
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed notification repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: cfg.Client}
}

func (r *redisRepo) List(ctx context.Context, ownerID string) ([]*entities.AppNotification, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID cannot be empty")
	}

	payload, err := r.client.Get(ctx, notificationsKey(ownerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return []*entities.AppNotification{}, nil
		}
		return nil, apperrors.Wrap(err, "failed to get notifications")
	}

	var list []*entities.AppNotification
	if err := json.Unmarshal([]byte(payload), &list); err != nil {
		return nil, apperrors.Wrap(err, "failed to deserialize notifications")
	}
	return list, nil
}

func (r *redisRepo) Save(ctx context.Context, ownerID string, list []*entities.AppNotification) error {
	if ownerID == "" {
		return apperrors.InvalidArgument("owner ID cannot be empty")
	}

	payload, err := json.Marshal(list)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize notifications")
	}

	if err := r.client.Set(ctx, notificationsKey(ownerID), payload, 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to store notifications")
	}
	return nil
}
