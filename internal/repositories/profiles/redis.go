package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
)

func profileKey(ownerID string) string {
	return fmt.Sprintf("profile:%s", ownerID)
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

type redisRepo struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed profile repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}
	return &redisRepo{client: cfg.Client}
}

// Get retrieves the profile for an owner. Records written before the
// profile object existed hold a bare username string; those are migrated
// to a full profile with the joined date set to now.
func (r *redisRepo) Get(ctx context.Context, ownerID string) (*entities.UserProfile, error) {
	if ownerID == "" {
		return nil, apperrors.InvalidArgument("owner ID cannot be empty")
	}

	payload, err := r.client.Get(ctx, profileKey(ownerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("profile for %s not found", ownerID)
		}
		return nil, apperrors.Wrap(err, "failed to get profile")
	}

	var profile entities.UserProfile
	if err := json.Unmarshal([]byte(payload), &profile); err == nil && profile.Username != "" {
		return &profile, nil
	}

	// Legacy shape: a bare username string
	var username string
	if err := json.Unmarshal([]byte(payload), &username); err == nil && username != "" {
		return &entities.UserProfile{
			Username: username,
			JoinedAt: time.Now(),
		}, nil
	}

	return nil, apperrors.Internalf("unrecognized profile shape for %s", ownerID)
}

// Set stores or replaces the profile for an owner
func (r *redisRepo) Set(ctx context.Context, ownerID string, profile *entities.UserProfile) error {
	if ownerID == "" {
		return apperrors.InvalidArgument("owner ID cannot be empty")
	}
	if profile == nil {
		return apperrors.InvalidArgument("profile cannot be nil")
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize profile")
	}

	if err := r.client.Set(ctx, profileKey(ownerID), payload, 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to store profile")
	}
	return nil
}
