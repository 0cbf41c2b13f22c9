package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	"github.com/arcanenexus/arcane-nexus/internal/services/game"
)

// stubGameService serves a fixed state; the embedded interface panics
// on anything the test does not expect to be called
type stubGameService struct {
	game.Service
	state *entities.GameState
}

func (s *stubGameService) Get(ctx context.Context, ownerID, id string) (*entities.GameState, error) {
	return s.state, nil
}

func TestGetSession_FiltersOutOfBoundsTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)

	state := &entities.GameState{
		ID: "session-1",
		Map: &entities.BattleMapState{
			ImageURL:   "https://example.com/map.png",
			GridWidth:  8,
			GridHeight: 8,
			Tokens: []*entities.Token{
				{ID: "hero", Kind: entities.TokenKindPlayer, X: 2, Y: 2},
				{ID: "stray", Kind: entities.TokenKindEnemy, X: 50, Y: 50},
			},
		},
	}

	router := gin.New()
	NewGameHandler(&stubGameService{state: state}).RegisterRoutes(router.Group("/api/v1"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/session-1", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got entities.GameState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Map)
	require.Len(t, got.Map.Tokens, 1)
	assert.Equal(t, "hero", got.Map.Tokens[0].ID)

	// The stored state keeps the stray token for later correction
	assert.Len(t, state.Map.Tokens, 2)
}
