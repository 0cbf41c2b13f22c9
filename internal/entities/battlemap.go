package entities

// TokenKind identifies what a map token represents
type TokenKind string

const (
	TokenKindPlayer TokenKind = "player"
	TokenKindEnemy  TokenKind = "enemy"
)

// Token is a piece on the tactical map. Position is mutated in place;
// the ID matches the character or player it represents when applicable.
type Token struct {
	ID     string    `json:"id"`
	Kind   TokenKind `json:"kind"`
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar,omitempty"`
	Color  string    `json:"color,omitempty"`
}

// BattleMapState is the current tactical map. It is replaced wholesale
// when a new scene calls for a map.
type BattleMapState struct {
	ImageURL   string   `json:"image_url"`
	GridWidth  int      `json:"grid_width"`
	GridHeight int      `json:"grid_height"`
	Tokens     []*Token `json:"tokens"`
}

// VisibleTokens returns tokens within the grid bounds. Out-of-range
// tokens are filtered, not corrected; they stay in storage untouched.
func (m *BattleMapState) VisibleTokens() []*Token {
	visible := make([]*Token, 0, len(m.Tokens))
	for _, t := range m.Tokens {
		if t.X >= 0 && t.X < m.GridWidth && t.Y >= 0 && t.Y < m.GridHeight {
			visible = append(visible, t)
		}
	}
	return visible
}

// FindToken returns the token with the given ID, or nil
func (m *BattleMapState) FindToken(id string) *Token {
	for _, t := range m.Tokens {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// SceneType classifies a narrated scene for map purposes
type SceneType string

const (
	SceneTypeCombat      SceneType = "combat"
	SceneTypeExploration SceneType = "exploration"
	SceneTypeSocial      SceneType = "social"
	SceneTypeRest        SceneType = "rest"
)

// MapAnalysis is the gateway's judgement of whether a scene needs a map
type MapAnalysis struct {
	NeedsMap       bool      `json:"needs_map"`
	SceneType      SceneType `json:"scene_type"`
	MapDescription string    `json:"map_description,omitempty"`
	GridWidth      int       `json:"grid_width,omitempty"`
	GridHeight     int       `json:"grid_height,omitempty"`
}
