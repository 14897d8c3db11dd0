package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/liquidglass/portfolio-api/internal/api"
	"github.com/liquidglass/portfolio-api/internal/core/domain"
	"github.com/liquidglass/portfolio-api/internal/core/ports"
	"github.com/liquidglass/portfolio-api/internal/core/service"
	"github.com/liquidglass/portfolio-api/internal/infrastructure/config"
	"github.com/liquidglass/portfolio-api/internal/infrastructure/content"
	mongodb "github.com/liquidglass/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/liquidglass/portfolio-api/internal/infrastructure/db/redis"
	"github.com/liquidglass/portfolio-api/internal/infrastructure/mail"
	"github.com/liquidglass/portfolio-api/internal/infrastructure/ratelimit"
	"github.com/liquidglass/portfolio-api/internal/infrastructure/themestore"
	"github.com/liquidglass/portfolio-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title Portfolio API
// @version 1.0
// @description Backend for the liquid-glass portfolio site: contact pipeline, theme state, content catalogs.
// @BasePath /
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps := api.Deps{JWTSecret: cfg.JWTSecret, Log: log}

	// Redis is optional: when configured it backs both the rate limiter and
	// the theme store, otherwise in-process equivalents are used.
	var limiter ports.RateLimiter
	var themeStore ports.ThemeStore
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer client.Close()

		rl := redisdb.NewRateLimiter(client, cfg.RateLimit.Max, cfg.RateLimit.Window, log)
		limiter = rl
		deps.Limiter = rl
		deps.Redis = client
		themeStore = redisdb.NewThemeStore(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("using redis rate limiter and theme store")
	} else {
		mem := ratelimit.NewMemory(cfg.RateLimit.Max, cfg.RateLimit.Window)
		mem.StartSweeper(ctx)
		limiter = mem
		deps.Limiter = mem
		themeStore = themestore.NewFile(config.ThemeStateFile)
		log.Info().Msg("using in-memory rate limiter and file theme store")
	}

	// Mongo is optional: when configured the content catalogs are seeded into
	// it and served from there, otherwise the built-in catalogs are served
	// directly.
	var repo ports.ContentRepository = content.NewMemory()
	if cfg.Mongo.URI != "" {
		client, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error().Err(err).Msg("mongodb disconnect failed")
			}
		}()

		contentRepo := mongodb.NewContentRepository(db)
		if err := contentRepo.Seed(ctx, domain.DefaultProjects(), domain.DefaultSkills(), domain.DefaultExperience()); err != nil {
			log.Fatal().Err(err).Msg("failed to seed content catalogs")
		}
		repo = contentRepo
		deps.Mongo = db
		log.Info().Str("database", cfg.Mongo.Database).Msg("serving content from mongodb")
	}

	// A nil mailer keeps the contact endpoint up but reporting the provider
	// as unconfigured.
	var mailer ports.Mailer
	if cfg.Contact.ResendAPIKey != "" {
		mailer = mail.NewResend(cfg.Contact.ResendAPIKey)
	} else {
		log.Warn().Msg("RESEND_API_KEY not set; contact submissions will be rejected")
	}

	themes := service.NewThemeManager(themeStore, 0, log)
	if err := themes.Initialize(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize theme manager")
	}

	deps.Contact = service.NewContactService(limiter, mailer, cfg.Contact.Recipient, log)
	deps.Themes = themes
	deps.Portfolio = service.NewPortfolioService(repo, log)
	deps.Auth = service.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecret, 0)

	e := api.NewRouter(deps)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
