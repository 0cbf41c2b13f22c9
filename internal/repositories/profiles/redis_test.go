package profiles

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient *redis.Client
	mock       redismock.ClientMock
	repo       Repository
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.repo = NewRedisRepository(&RedisRepoConfig{Client: s.mockClient})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) TestGet() {
	profile := &entities.UserProfile{
		Username:   "wanderer",
		Bio:        "Here for the dice",
		PlayStyles: []string{"Roleplay"},
		JoinedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
	payload, err := json.Marshal(profile)
	s.Require().NoError(err)

	s.mock.ExpectGet("profile:owner-id").SetVal(string(payload))

	got, err := s.repo.Get(context.Background(), "owner-id")
	s.Require().NoError(err)
	s.Equal(profile, got)
}

func (s *RedisRepoTestSuite) TestGet_MigratesBareUsername() {
	// Records from before the profile object existed hold just the name
	s.mock.ExpectGet("profile:owner-id").SetVal(`"wanderer"`)

	got, err := s.repo.Get(context.Background(), "owner-id")
	s.Require().NoError(err)
	s.Equal("wanderer", got.Username)
	s.False(got.JoinedAt.IsZero())
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("profile:owner-id").RedisNil()

	_, err := s.repo.Get(context.Background(), "owner-id")
	s.Error(err)
	s.True(apperrors.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestSet() {
	profile := &entities.UserProfile{
		Username: "wanderer",
		JoinedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	payload, err := json.Marshal(profile)
	s.Require().NoError(err)

	// The repository hands the marshaled bytes to Set, so the
	// expectation must carry the same type
	s.mock.ExpectSet("profile:owner-id", payload, 0).SetVal("OK")

	s.NoError(s.repo.Set(context.Background(), "owner-id", profile))
}

func (s *RedisRepoTestSuite) TestSet_NilProfile() {
	s.Error(s.repo.Set(context.Background(), "owner-id", nil))
}
