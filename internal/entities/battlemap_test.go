package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleTokens(t *testing.T) {
	m := &BattleMapState{
		GridWidth:  8,
		GridHeight: 8,
		Tokens: []*Token{
			{ID: "hero", X: 2, Y: 2},
			{ID: "ghost", X: 50, Y: 50},
			{ID: "edge", X: 7, Y: 0},
			{ID: "negative", X: -1, Y: 3},
		},
	}

	visible := m.VisibleTokens()
	require.Len(t, visible, 2)
	assert.Equal(t, "hero", visible[0].ID)
	assert.Equal(t, "edge", visible[1].ID)
}

func TestGameStateForClient(t *testing.T) {
	state := &GameState{
		ID: "session-1",
		Map: &BattleMapState{
			GridWidth:  8,
			GridHeight: 8,
			Tokens: []*Token{
				{ID: "hero", X: 2, Y: 2},
				{ID: "stray", X: 50, Y: 50},
			},
		},
	}

	served := state.ForClient()
	require.Len(t, served.Map.Tokens, 1)
	assert.Equal(t, "hero", served.Map.Tokens[0].ID)

	// The stored state keeps the stray token untouched
	require.Len(t, state.Map.Tokens, 2)
	assert.Equal(t, 50, state.Map.Tokens[1].X)
}

func TestGameStateForClient_NoMap(t *testing.T) {
	state := &GameState{ID: "session-1"}
	assert.Same(t, state, state.ForClient())
}
