package entities

import "time"

// TurnState gates what the player may do next.
// There is no turn hand-off protocol; sessions simulate a single
// player's seat and ownership never moves.
type TurnState string

const (
	// TurnWaiting means another participant holds the turn
	TurnWaiting TurnState = "waiting_for_turn"

	// TurnFree means the player may act freely
	TurnFree TurnState = "my_turn_free"

	// TurnRollRequired means the narrator asked for a roll and
	// free-text input is gated until one is submitted
	TurnRollRequired TurnState = "my_turn_roll_required"
)

// GameState is a running game session: transcript, map, and turn gate
type GameState struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"owner_id"`
	CharacterID   string          `json:"character_id"`
	Genre         GameGenre       `json:"genre"`
	AIEnabled     bool            `json:"ai_enabled"`
	VoiceEnabled  bool            `json:"voice_enabled"`
	LocationName  string          `json:"location_name"`
	SceneImageURL string          `json:"scene_image_url,omitempty"`
	Transcript    []*ChatMessage  `json:"transcript"`
	Turn          TurnState       `json:"turn"`
	Map           *BattleMapState `json:"map,omitempty"`
	SavedNotes    []*ChatMessage  `json:"saved_notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AppendMessage adds a message to the transcript
func (g *GameState) AppendMessage(msg *ChatMessage) {
	g.Transcript = append(g.Transcript, msg)
}

// SaveNote copies a transcript message by value into the saved notes.
// Later edits to the transcript never touch the copy.
func (g *GameState) SaveNote(msg *ChatMessage) {
	copied := *msg
	g.SavedNotes = append(g.SavedNotes, &copied)
}

// ForClient returns a serve-shape copy whose map carries only
// in-bounds tokens. Stored positions stay untouched.
func (g *GameState) ForClient() *GameState {
	if g == nil || g.Map == nil {
		return g
	}
	served := *g
	battleMap := *g.Map
	battleMap.Tokens = g.Map.VisibleTokens()
	served.Map = &battleMap
	return &served
}

// DeleteNote removes a saved note by message ID
func (g *GameState) DeleteNote(id string) bool {
	for i, note := range g.SavedNotes {
		if note.ID == id {
			g.SavedNotes = append(g.SavedNotes[:i], g.SavedNotes[i+1:]...)
			return true
		}
	}
	return false
}
