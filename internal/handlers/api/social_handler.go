package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/services/social"
)

// SocialHandler serves the friend list and notification endpoints
type SocialHandler struct {
	social social.Service
}

// NewSocialHandler creates a new social handler
func NewSocialHandler(socialService social.Service) *SocialHandler {
	if socialService == nil {
		panic("social service is required")
	}
	return &SocialHandler{social: socialService}
}

// RegisterRoutes registers social routes on the router group
func (h *SocialHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/friends", h.listFriends)
	group.POST("/friends", h.sendRequest)
	group.POST("/friends/simulate", h.simulateIncoming)
	group.POST("/friends/:id/accept", h.acceptRequest)
	group.POST("/friends/:id/decline", h.declineRequest)

	group.GET("/notifications", h.listNotifications)
	group.GET("/notifications/unread-count", h.unreadCount)
	group.POST("/notifications/:id/read", h.markRead)
	group.DELETE("/notifications", h.clearNotifications)
}

func (h *SocialHandler) listFriends(c *gin.Context) {
	list, err := h.social.ListFriends(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type sendRequestRequest struct {
	Name string `json:"name"`
}

func (h *SocialHandler) sendRequest(c *gin.Context) {
	var req sendRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Name == "" {
		respondError(c, apperrors.InvalidArgument("name is required"))
		return
	}

	friend, err := h.social.SendRequest(c.Request.Context(), ownerID(c), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, friend)
}

func (h *SocialHandler) simulateIncoming(c *gin.Context) {
	friend, err := h.social.SimulateIncoming(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, friend)
}

func (h *SocialHandler) acceptRequest(c *gin.Context) {
	if err := h.social.AcceptRequest(c.Request.Context(), ownerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SocialHandler) declineRequest(c *gin.Context) {
	if err := h.social.DeclineRequest(c.Request.Context(), ownerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SocialHandler) listNotifications(c *gin.Context) {
	list, err := h.social.ListNotifications(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SocialHandler) unreadCount(c *gin.Context) {
	count, err := h.social.UnreadCount(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *SocialHandler) markRead(c *gin.Context) {
	if err := h.social.MarkRead(c.Request.Context(), ownerID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SocialHandler) clearNotifications(c *gin.Context) {
	if err := h.social.ClearNotifications(c.Request.Context(), ownerID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
