package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	"github.com/arcanenexus/arcane-nexus/internal/services/character"
	"github.com/arcanenexus/arcane-nexus/internal/services/game"
)

// CharacterHandler serves the character wizard and sheet operations
type CharacterHandler struct {
	characters character.Service
	games      game.Service
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(characters character.Service, games game.Service) *CharacterHandler {
	if characters == nil {
		panic("character service is required")
	}
	if games == nil {
		panic("game service is required")
	}
	return &CharacterHandler{characters: characters, games: games}
}

// RegisterRoutes registers character routes on the router group
func (h *CharacterHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/characters", h.create)
	group.GET("/characters", h.list)
	group.GET("/characters/:id", h.get)
	group.PUT("/characters/:id", h.update)
	group.DELETE("/characters/:id", h.remove)

	group.GET("/characters/options", h.creationOptions)
	group.POST("/characters/generate", h.randomConcept)
	group.POST("/characters/avatar", h.generateAvatar)
	group.POST("/characters/roll-scores", h.rollScores)

	group.POST("/characters/:id/items", h.addItem)
	group.POST("/characters/:id/items/:itemID/equip", h.toggleEquip)
	group.POST("/characters/:id/items/:itemID/quantity", h.adjustQuantity)
	group.POST("/characters/:id/items/:itemID/transfer", h.transferItem)
	group.DELETE("/characters/:id/items/:itemID", h.discardItem)
}

type createCharacterRequest struct {
	Name         string                     `json:"name"`
	Genre        entities.GameGenre         `json:"genre"`
	Race         string                     `json:"race"`
	Class        string                     `json:"class"`
	Background   string                     `json:"background"`
	Stats        map[entities.Attribute]int `json:"stats"`
	ClassSkills  []string                   `json:"class_skills"`
	Cantrips     []string                   `json:"cantrips"`
	Level1Spells []string                   `json:"level1_spells"`
	Appearance   *entities.AppearanceDetails `json:"appearance"`
	Concept      string                     `json:"concept"`
	Desire       string                     `json:"desire"`
	Flaw         string                     `json:"flaw"`
	Money        string                     `json:"money"`
	Extras       []string                   `json:"extras"`
	AvatarURL    string                     `json:"avatar_url"`
}

func (h *CharacterHandler) create(c *gin.Context) {
	var req createCharacterRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.characters.Create(c.Request.Context(), &character.CreateInput{
		OwnerID:       ownerID(c),
		Name:          req.Name,
		Genre:         req.Genre,
		Race:          req.Race,
		Class:         req.Class,
		Background:    req.Background,
		AssignedStats: req.Stats,
		ClassSkills:   req.ClassSkills,
		Cantrips:      req.Cantrips,
		Level1Spells:  req.Level1Spells,
		Appearance:    req.Appearance,
		Concept:       req.Concept,
		Desire:        req.Desire,
		Flaw:          req.Flaw,
		Money:         req.Money,
		Extras:        req.Extras,
		AvatarURL:     req.AvatarURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CharacterHandler) list(c *gin.Context) {
	list, err := h.characters.List(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CharacterHandler) get(c *gin.Context) {
	char, err := h.characters.Get(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

func (h *CharacterHandler) update(c *gin.Context) {
	var char entities.Character
	if !bindJSON(c, &char) {
		return
	}
	char.ID = c.Param("id")

	updated, err := h.characters.Update(c.Request.Context(), ownerID(c), &char)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CharacterHandler) remove(c *gin.Context) {
	if err := h.characters.Delete(c.Request.Context(), ownerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type randomConceptRequest struct {
	Genre entities.GameGenre `json:"genre"`
}

func (h *CharacterHandler) randomConcept(c *gin.Context) {
	var req randomConceptRequest
	if !bindJSON(c, &req) {
		return
	}

	concept, err := h.characters.RandomConcept(c.Request.Context(), req.Genre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, concept)
}

type generateAvatarRequest struct {
	Description string `json:"description"`
	Race        string `json:"race"`
	Class       string `json:"class"`
}

func (h *CharacterHandler) generateAvatar(c *gin.Context) {
	var req generateAvatarRequest
	if !bindJSON(c, &req) {
		return
	}

	url, err := h.characters.GenerateAvatar(c.Request.Context(), req.Description, req.Race, req.Class)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"avatar_url": url})
}

func (h *CharacterHandler) rollScores(c *gin.Context) {
	scores, err := h.characters.RollAbilityScores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scores": scores})
}

func (h *CharacterHandler) creationOptions(c *gin.Context) {
	options, err := h.characters.CreationOptions(c.Request.Context(), entities.GameGenre(c.Query("genre")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}

type addItemRequest struct {
	Name string `json:"name"`
}

func (h *CharacterHandler) addItem(c *gin.Context) {
	var req addItemRequest
	if !bindJSON(c, &req) {
		return
	}

	char, err := h.characters.AddItem(c.Request.Context(), ownerID(c), c.Param("id"), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

func (h *CharacterHandler) toggleEquip(c *gin.Context) {
	char, err := h.characters.ToggleEquip(c.Request.Context(), ownerID(c), c.Param("id"), c.Param("itemID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

type adjustQuantityRequest struct {
	Delta int `json:"delta"`
}

func (h *CharacterHandler) adjustQuantity(c *gin.Context) {
	var req adjustQuantityRequest
	if !bindJSON(c, &req) {
		return
	}

	char, err := h.characters.AdjustQuantity(c.Request.Context(), ownerID(c), c.Param("id"), c.Param("itemID"), req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

func (h *CharacterHandler) discardItem(c *gin.Context) {
	asGM := c.Query("as_gm") == "true"

	char, err := h.characters.DiscardItem(c.Request.Context(), ownerID(c), c.Param("id"), c.Param("itemID"), asGM)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, char)
}

type transferItemRequest struct {
	Target    string `json:"target"`
	SessionID string `json:"session_id"`
}

func (h *CharacterHandler) transferItem(c *gin.Context) {
	var req transferItemRequest
	if !bindJSON(c, &req) {
		return
	}

	owner := ownerID(c)
	char, notice, err := h.characters.TransferItem(c.Request.Context(), owner, c.Param("id"), c.Param("itemID"), req.Target)
	if err != nil {
		respondError(c, err)
		return
	}

	// The transcript line is best effort; the item is already gone.
	if req.SessionID != "" {
		if _, err := h.games.PostSystemMessage(c.Request.Context(), owner, req.SessionID, notice); err != nil {
			log.Warn().Err(err).Str("session_id", req.SessionID).Msg("failed to post transfer notice")
		}
	}

	c.JSON(http.StatusOK, gin.H{"character": char, "notice": notice})
}
