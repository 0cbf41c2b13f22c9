package campaigns

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

const campaignIndexKey = "campaigns:index"

func campaignKey(id string) string {
	return fmt.Sprintf("campaign:%s", id)
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

// NewRedisRepository creates a new Redis-backed campaign repository
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

func (r *redisRepo) Create(ctx context.Context, campaign *entities.ScheduledCampaign) error {
	if campaign == nil {
		return apperrors.InvalidArgument("campaign cannot be nil")
	}

	if campaign.ID == "" {
		campaign.ID = r.uuidGenerator.New()
	}
	campaign.CreatedAt = time.Now()

	payload, err := json.Marshal(campaign)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize campaign")
	}

	exists, err := r.client.Exists(ctx, campaignKey(campaign.ID)).Result()
	if err != nil {
		return apperrors.Wrap(err, "failed to check campaign existence")
	}
	if exists > 0 {
		return apperrors.AlreadyExistsf("campaign %s already exists", campaign.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, campaignKey(campaign.ID), payload, 0)
	pipe.SAdd(ctx, campaignIndexKey, campaign.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "failed to store campaign")
	}
	return nil
}

func (r *redisRepo) Get(ctx context.Context, id string) (*entities.ScheduledCampaign, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("campaign ID cannot be empty")
	}

	payload, err := r.client.Get(ctx, campaignKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("campaign %s not found", id)
		}
		return nil, apperrors.Wrap(err, "failed to get campaign")
	}

	var campaign entities.ScheduledCampaign
	if err := json.Unmarshal([]byte(payload), &campaign); err != nil {
		return nil, apperrors.Wrap(err, "failed to deserialize campaign")
	}
	return &campaign, nil
}

func (r *redisRepo) Update(ctx context.Context, campaign *entities.ScheduledCampaign) error {
	if campaign == nil {
		return apperrors.InvalidArgument("campaign cannot be nil")
	}
	if campaign.ID == "" {
		return apperrors.InvalidArgument("campaign ID cannot be empty")
	}

	existing, err := r.Get(ctx, campaign.ID)
	if err != nil {
		return err
	}
	campaign.CreatedAt = existing.CreatedAt

	payload, err := json.Marshal(campaign)
	if err != nil {
		return apperrors.Wrap(err, "failed to serialize campaign")
	}

	if err := r.client.Set(ctx, campaignKey(campaign.ID), payload, 0).Err(); err != nil {
		return apperrors.Wrap(err, "failed to update campaign")
	}
	return nil
}

func (r *redisRepo) List(ctx context.Context) ([]*entities.ScheduledCampaign, error) {
	ids, err := r.client.SMembers(ctx, campaignIndexKey).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list campaigns")
	}

	campaigns := make([]*entities.ScheduledCampaign, 0, len(ids))
	for _, id := range ids {
		campaign, err := r.Get(ctx, id)
		if err != nil {
			if apperrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, nil
}
