package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	"github.com/arcanenexus/arcane-nexus/internal/services/campaign"
	"github.com/arcanenexus/arcane-nexus/internal/services/social"
)

// CampaignHandler serves the lobby board endpoints
type CampaignHandler struct {
	campaigns campaign.Service
	social    social.Service
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaigns campaign.Service, socialService social.Service) *CampaignHandler {
	if campaigns == nil {
		panic("campaign service is required")
	}
	if socialService == nil {
		panic("social service is required")
	}
	return &CampaignHandler{campaigns: campaigns, social: socialService}
}

// RegisterRoutes registers campaign routes on the router group
func (h *CampaignHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/campaigns", h.list)
	group.POST("/campaigns", h.create)
	group.GET("/campaigns/:id", h.get)
	group.POST("/campaigns/:id/join", h.join)
}

func (h *CampaignHandler) list(c *gin.Context) {
	list, err := h.campaigns.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createCampaignRequest struct {
	Title       string             `json:"title"`
	HostName    string             `json:"host_name"`
	HostAvatar  string             `json:"host_avatar"`
	Description string             `json:"description"`
	Genre       entities.GameGenre `json:"genre"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	MaxPlayers  int                `json:"max_players"`
	AIEnabled   bool               `json:"ai_enabled"`
	Invites     []string           `json:"invites"`
}

func (h *CampaignHandler) create(c *gin.Context) {
	var req createCampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.campaigns.Create(c.Request.Context(), &campaign.CreateInput{
		Title:       req.Title,
		HostName:    req.HostName,
		HostAvatar:  req.HostAvatar,
		Description: req.Description,
		Genre:       req.Genre,
		Date:        req.Date,
		Time:        req.Time,
		MaxPlayers:  req.MaxPlayers,
		AIEnabled:   req.AIEnabled,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	// Invitations ride along with creation. A failed notification
	// does not unwind the campaign.
	owner := ownerID(c)
	for _, name := range req.Invites {
		if err := h.social.InviteToCampaign(c.Request.Context(), owner, name, created.Title); err != nil {
			log.Warn().Err(err).Str("friend", name).Msg("failed to send campaign invite")
		}
	}

	c.JSON(http.StatusCreated, created)
}

func (h *CampaignHandler) get(c *gin.Context) {
	found, err := h.campaigns.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

type joinCampaignRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (h *CampaignHandler) join(c *gin.Context) {
	var req joinCampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	joined, err := h.campaigns.Join(c.Request.Context(), c.Param("id"), &entities.CampaignPlayer{
		ID:     ownerID(c),
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, joined)
}
