package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arcanenexus/arcane-nexus/internal/repositories/profiles"
	"github.com/arcanenexus/arcane-nexus/internal/services/campaign"
	"github.com/arcanenexus/arcane-nexus/internal/services/character"
	"github.com/arcanenexus/arcane-nexus/internal/services/game"
	"github.com/arcanenexus/arcane-nexus/internal/services/library"
	"github.com/arcanenexus/arcane-nexus/internal/services/social"
)

// RouterConfig holds the dependencies for the HTTP surface
type RouterConfig struct {
	AllowedOrigins []string

	ProfileRepository profiles.Repository
	CharacterService  character.Service
	GameService       game.Service
	SocialService     social.Service
	CampaignService   campaign.Service
	LibraryService    library.Service
}

// NewRouter assembles the gin engine with middleware and all routes
func NewRouter(cfg *RouterConfig) *gin.Engine {
	if cfg == nil {
		panic("cfg is required")
	}

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(RequestLogger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	if corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", ownerHeader}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	NewProfileHandler(cfg.ProfileRepository).RegisterRoutes(v1)
	NewCharacterHandler(cfg.CharacterService, cfg.GameService).RegisterRoutes(v1)
	NewGameHandler(cfg.GameService).RegisterRoutes(v1)
	NewSocialHandler(cfg.SocialService).RegisterRoutes(v1)
	NewCampaignHandler(cfg.CampaignService, cfg.SocialService).RegisterRoutes(v1)
	NewLibraryHandler(cfg.LibraryService).RegisterRoutes(v1)

	return router
}
