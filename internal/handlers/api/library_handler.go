package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcanenexus/arcane-nexus/internal/clients/genai"
	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/services/library"
)

// LibraryHandler serves reference search and the generative GM tools
type LibraryHandler struct {
	library library.Service
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(libraryService library.Service) *LibraryHandler {
	if libraryService == nil {
		panic("library service is required")
	}
	return &LibraryHandler{library: libraryService}
}

// RegisterRoutes registers library routes on the router group
func (h *LibraryHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/library/search", h.search)
	group.GET("/library/class-spells", h.classSpells)

	group.POST("/library/quest", h.generateQuest)
	group.POST("/library/npc", h.generateNPC)
	group.POST("/library/monster", h.generateMonster)
	group.POST("/library/spell", h.generateSpell)
	group.POST("/library/item", h.generateItem)
	group.POST("/library/skill", h.generateSkill)
	group.POST("/library/story", h.generateStory)
}

func (h *LibraryHandler) search(c *gin.Context) {
	category := entities.LibraryCategory(c.Query("category"))
	if category == "" {
		respondError(c, apperrors.InvalidArgument("category is required"))
		return
	}

	result, err := h.library.Search(c.Request.Context(), category, c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *LibraryHandler) classSpells(c *gin.Context) {
	genre := entities.GameGenre(c.Query("genre"))
	if genre == "" {
		genre = entities.GenreFantasy
	}

	items, err := h.library.ClassSpells(c.Request.Context(), genre, c.Query("class"), c.Query("query"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type generateQuestRequest struct {
	Level int                `json:"level"`
	Theme string             `json:"theme"`
	Genre entities.GameGenre `json:"genre"`
}

func (h *LibraryHandler) generateQuest(c *gin.Context) {
	var req generateQuestRequest
	if !bindJSON(c, &req) {
		return
	}

	quest, err := h.library.GenerateQuest(c.Request.Context(), req.Level, req.Theme, req.Genre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, quest)
}

type generateNPCRequest struct {
	Description string             `json:"description"`
	Genre       entities.GameGenre `json:"genre"`
}

func (h *LibraryHandler) generateNPC(c *gin.Context) {
	var req generateNPCRequest
	if !bindJSON(c, &req) {
		return
	}

	npc, err := h.library.GenerateNPC(c.Request.Context(), req.Description, req.Genre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, npc)
}

type generateMonsterRequest struct {
	Description string             `json:"description"`
	CR          string             `json:"cr"`
	Genre       entities.GameGenre `json:"genre"`
}

func (h *LibraryHandler) generateMonster(c *gin.Context) {
	var req generateMonsterRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.library.GenerateMonster(c.Request.Context(), req.Description, req.CR, req.Genre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type generateSpellRequest struct {
	Description string             `json:"description"`
	Level       string             `json:"level"`
	Genre       entities.GameGenre `json:"genre"`
}

func (h *LibraryHandler) generateSpell(c *gin.Context) {
	var req generateSpellRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.library.GenerateSpell(c.Request.Context(), req.Description, req.Level, req.Genre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type generateItemRequest struct {
	Description string             `json:"description"`
	Type        string             `json:"type"`
	Genre       entities.GameGenre `json:"genre"`
}

func (h *LibraryHandler) generateItem(c *gin.Context) {
	var req generateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.library.GenerateItem(c.Request.Context(), req.Description, req.Type, req.Genre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type generateSkillRequest struct {
	Description string             `json:"description"`
	Attribute   string             `json:"attribute"`
	Genre       entities.GameGenre `json:"genre"`
}

func (h *LibraryHandler) generateSkill(c *gin.Context) {
	var req generateSkillRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.library.GenerateSkill(c.Request.Context(), req.Description, req.Attribute, req.Genre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type generateStoryRequest struct {
	Prompt string             `json:"prompt"`
	Length string             `json:"length"`
	Genre  entities.GameGenre `json:"genre"`
}

func (h *LibraryHandler) generateStory(c *gin.Context) {
	var req generateStoryRequest
	if !bindJSON(c, &req) {
		return
	}

	length := genai.StoryLength(req.Length)
	switch length {
	case genai.StoryIntro, genai.StoryShort, genai.StoryLong:
	case "":
		length = genai.StoryShort
	default:
		respondError(c, apperrors.InvalidArgumentf("unknown story length %q", req.Length))
		return
	}

	story, err := h.library.GenerateStory(c.Request.Context(), req.Prompt, length, req.Genre)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, story)
}
