package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/services/game"
)

// GameHandler serves the session and turn loop endpoints
type GameHandler struct {
	games game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(games game.Service) *GameHandler {
	if games == nil {
		panic("game service is required")
	}
	return &GameHandler{games: games}
}

// RegisterRoutes registers session routes on the router group
func (h *GameHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/sessions", h.create)
	group.GET("/sessions", h.list)
	group.GET("/sessions/:id", h.get)
	group.POST("/sessions/:id/start", h.start)
	group.POST("/sessions/:id/messages", h.submitMessage)
	group.POST("/sessions/:id/roll", h.submitRoll)
	group.POST("/sessions/:id/system", h.postSystem)
	group.POST("/sessions/:id/tokens/:tokenID/move", h.moveToken)
	group.POST("/sessions/:id/notes", h.saveNote)
	group.DELETE("/sessions/:id/notes/:noteID", h.deleteNote)
}

type createSessionRequest struct {
	CharacterID  string             `json:"character_id"`
	Genre        entities.GameGenre `json:"genre"`
	AIEnabled    bool               `json:"ai_enabled"`
	VoiceEnabled bool               `json:"voice_enabled"`
}

func (h *GameHandler) create(c *gin.Context) {
	var req createSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	state, err := h.games.CreateSession(c.Request.Context(), &game.CreateSessionInput{
		OwnerID:      ownerID(c),
		CharacterID:  req.CharacterID,
		Genre:        req.Genre,
		AIEnabled:    req.AIEnabled,
		VoiceEnabled: req.VoiceEnabled,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state.ForClient())
}

func (h *GameHandler) list(c *gin.Context) {
	states, err := h.games.List(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	served := make([]*entities.GameState, len(states))
	for i, state := range states {
		served[i] = state.ForClient()
	}
	c.JSON(http.StatusOK, served)
}

func (h *GameHandler) get(c *gin.Context) {
	state, err := h.games.Get(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state.ForClient())
}

func (h *GameHandler) start(c *gin.Context) {
	state, err := h.games.StartSession(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state.ForClient())
}

type submitMessageRequest struct {
	Text string `json:"text"`
}

// turnResponse carries the updated session and, when voice mode is
// on, the synthesized narration. Speech serializes as base64.
type turnResponse struct {
	State  *entities.GameState `json:"state"`
	Speech []byte              `json:"speech,omitempty"`
}

func (h *GameHandler) submitMessage(c *gin.Context) {
	var req submitMessageRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.games.SubmitMessage(c.Request.Context(), ownerID(c), c.Param("id"), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, turnResponse{State: result.State.ForClient(), Speech: result.Speech})
}

func (h *GameHandler) submitRoll(c *gin.Context) {
	result, err := h.games.SubmitRoll(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, turnResponse{State: result.State.ForClient(), Speech: result.Speech})
}

type postSystemRequest struct {
	Content string `json:"content"`
}

func (h *GameHandler) postSystem(c *gin.Context) {
	var req postSystemRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Content == "" {
		respondError(c, apperrors.InvalidArgument("content is required"))
		return
	}

	state, err := h.games.PostSystemMessage(c.Request.Context(), ownerID(c), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state.ForClient())
}

type moveTokenRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (h *GameHandler) moveToken(c *gin.Context) {
	var req moveTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	state, err := h.games.MoveToken(c.Request.Context(), ownerID(c), c.Param("id"), c.Param("tokenID"), req.X, req.Y)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state.ForClient())
}

type saveNoteRequest struct {
	MessageID string `json:"message_id"`
}

func (h *GameHandler) saveNote(c *gin.Context) {
	var req saveNoteRequest
	if !bindJSON(c, &req) {
		return
	}

	state, err := h.games.SaveNote(c.Request.Context(), ownerID(c), c.Param("id"), req.MessageID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state.ForClient())
}

func (h *GameHandler) deleteNote(c *gin.Context) {
	state, err := h.games.DeleteNote(c.Request.Context(), ownerID(c), c.Param("id"), c.Param("noteID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state.ForClient())
}
