package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arcanenexus/arcane-nexus/internal/entities"
	apperrors "github.com/arcanenexus/arcane-nexus/internal/errors"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/profiles"
)

// ProfileHandler serves the per-user profile record. Profiles are a
// plain keyed document, so the handler talks to the repository
// directly.
type ProfileHandler struct {
	profiles profiles.Repository
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(repo profiles.Repository) *ProfileHandler {
	if repo == nil {
		panic("profile repository is required")
	}
	return &ProfileHandler{profiles: repo}
}

// RegisterRoutes registers profile routes on the router group
func (h *ProfileHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/profile", h.get)
	group.PUT("/profile", h.put)
}

func (h *ProfileHandler) get(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), ownerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type putProfileRequest struct {
	Username   string   `json:"username"`
	AvatarURL  string   `json:"avatar_url"`
	Bio        string   `json:"bio"`
	PlayStyles []string `json:"play_styles"`
	Location   string   `json:"location"`
}

func (h *ProfileHandler) put(c *gin.Context) {
	var req putProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Username == "" {
		respondError(c, apperrors.InvalidArgument("username is required"))
		return
	}

	owner := ownerID(c)

	// JoinedAt survives edits; only a first save stamps it.
	joinedAt := time.Now().UTC()
	if existing, err := h.profiles.Get(c.Request.Context(), owner); err == nil && !existing.JoinedAt.IsZero() {
		joinedAt = existing.JoinedAt
	}

	profile := &entities.UserProfile{
		Username:   req.Username,
		AvatarURL:  req.AvatarURL,
		Bio:        req.Bio,
		PlayStyles: req.PlayStyles,
		Location:   req.Location,
		JoinedAt:   joinedAt,
	}
	if err := h.profiles.Set(c.Request.Context(), owner, profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
