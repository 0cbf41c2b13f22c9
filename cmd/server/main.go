package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/arcanenexus/arcane-nexus/internal/clients/dnd5e"
	"github.com/arcanenexus/arcane-nexus/internal/clients/genai"
	"github.com/arcanenexus/arcane-nexus/internal/config"
	"github.com/arcanenexus/arcane-nexus/internal/dice"
	"github.com/arcanenexus/arcane-nexus/internal/handlers/api"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/campaigns"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/characters"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/friends"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/gamestates"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/notifications"
	"github.com/arcanenexus/arcane-nexus/internal/repositories/profiles"
	"github.com/arcanenexus/arcane-nexus/internal/services/campaign"
	"github.com/arcanenexus/arcane-nexus/internal/services/character"
	"github.com/arcanenexus/arcane-nexus/internal/services/game"
	"github.com/arcanenexus/arcane-nexus/internal/services/library"
	"github.com/arcanenexus/arcane-nexus/internal/services/social"
	"github.com/arcanenexus/arcane-nexus/internal/uuid"
)

var log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Str("component", "server").Logger()

// repositories bundles one implementation of every store
type repositories struct {
	profiles      profiles.Repository
	characters    characters.Repository
	gamestates    gamestates.Repository
	friends       friends.Repository
	notifications notifications.Repository
	campaigns     campaigns.Repository
}

// buildRepositories connects to Redis when a URL is configured and
// reachable, and falls back to in-memory stores otherwise.
func buildRepositories(redisURL string, uuidGen uuid.Generator) *repositories {
	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Warn().Err(err).Msg("failed to parse Redis URL, falling back to in-memory repositories")
		} else {
			client := redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to connect to Redis, falling back to in-memory repositories")
			} else {
				log.Info().Str("url", redisURL).Msg("using Redis for persistence")
				return &repositories{
					profiles:      profiles.NewRedisRepository(&profiles.RedisRepoConfig{Client: client}),
					characters:    characters.NewRedisRepository(&characters.RedisRepoConfig{Client: client, UUIDGenerator: uuidGen}),
					gamestates:    gamestates.NewRedisRepository(&gamestates.RedisRepoConfig{Client: client, UUIDGenerator: uuidGen}),
					friends:       friends.NewRedisRepository(&friends.RedisRepoConfig{Client: client}),
					notifications: notifications.NewRedisRepository(&notifications.RedisRepoConfig{Client: client}),
					campaigns:     campaigns.NewRedisRepository(&campaigns.RedisRepoConfig{Client: client, UUIDGenerator: uuidGen}),
				}
			}
		}
	} else {
		log.Info().Msg("no REDIS_URL configured")
	}

	log.Info().Msg("using in-memory repositories")
	return &repositories{
		profiles:      profiles.NewInMemoryRepository(),
		characters:    characters.NewInMemoryRepository(&characters.InMemoryRepoConfig{UUIDGenerator: uuidGen}),
		gamestates:    gamestates.NewInMemoryRepository(&gamestates.InMemoryRepoConfig{UUIDGenerator: uuidGen}),
		friends:       friends.NewInMemoryRepository(),
		notifications: notifications.NewInMemoryRepository(),
		campaigns:     campaigns.NewInMemoryRepository(&campaigns.InMemoryRepoConfig{UUIDGenerator: uuidGen}),
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	uuidGen := uuid.NewGoogleUUIDGenerator()
	roller := dice.NewRandomRoller()

	repos := buildRepositories(cfg.Redis.URL, uuidGen)

	gateway, err := genai.New(&genai.Config{
		APIKey:     cfg.OpenAI.APIKey,
		BaseURL:    cfg.OpenAI.BaseURL,
		TextModel:  cfg.OpenAI.TextModel,
		ImageModel: cfg.OpenAI.ImageModel,
		TTSModel:   cfg.OpenAI.TTSModel,
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create generative gateway")
	}

	reference, err := dnd5e.New(&dnd5e.Config{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    cfg.DND5E.BaseURL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create reference data client")
	}

	characterService := character.NewService(&character.ServiceConfig{
		Repository:    repos.characters,
		Gateway:       gateway,
		Roller:        roller,
		UUIDGenerator: uuidGen,
	})
	gameService := game.NewService(&game.ServiceConfig{
		SessionRepository:   repos.gamestates,
		CharacterRepository: repos.characters,
		Gateway:             gateway,
		Roller:              roller,
		UUIDGenerator:       uuidGen,
	})
	socialService := social.NewService(&social.ServiceConfig{
		FriendRepository:       repos.friends,
		NotificationRepository: repos.notifications,
		UUIDGenerator:          uuidGen,
		AcceptDelay:            cfg.Social.AcceptDelay,
	})
	campaignService := campaign.NewService(&campaign.ServiceConfig{
		Repository:    repos.campaigns,
		UUIDGenerator: uuidGen,
	})
	libraryService := library.NewService(&library.ServiceConfig{
		ReferenceClient: reference,
		Gateway:         gateway,
	})

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := campaignService.SeedDemo(seedCtx); err != nil {
		log.Warn().Err(err).Msg("failed to seed demo campaigns")
	}
	seedCancel()

	router := api.NewRouter(&api.RouterConfig{
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		ProfileRepository: repos.profiles,
		CharacterService:  characterService,
		GameService:       gameService,
		SocialService:     socialService,
		CampaignService:   campaignService,
		LibraryService:    libraryService,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 3 * time.Minute, // generation endpoints block on the model
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
