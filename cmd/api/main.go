// Package main is the entry point for the JobMatch API.
package main

import (
	"context"

	_ "github.com/jobmatch/jobmatch-api/docs"
	"github.com/jobmatch/jobmatch-api/internal/api"
	"github.com/jobmatch/jobmatch-api/internal/core/ports"
	"github.com/jobmatch/jobmatch-api/internal/infrastructure/assistant"
	"github.com/jobmatch/jobmatch-api/internal/infrastructure/config"
	"github.com/jobmatch/jobmatch-api/internal/infrastructure/db/postgres"
	"github.com/jobmatch/jobmatch-api/internal/infrastructure/db/redis"
	"github.com/jobmatch/jobmatch-api/internal/infrastructure/storage"
	"github.com/jobmatch/jobmatch-api/pkg/logger"
)

// @title JobMatch API
// @version 1.0
// @description Job board backend: accounts, profiles, postings, applications, resources and an assistant.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token from /login.
func main() {
	cfg := config.Load()

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log := logger.Get()

	ctx := context.Background()

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	files, err := storage.NewLocalStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload store init failed")
	}

	var assistantBackend ports.Assistant
	if cfg.Gemini.APIKey != "" {
		backend, err := assistant.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Warn().Err(err).Msg("assistant backend unavailable, canned replies only")
		} else {
			assistantBackend = backend
		}
	} else {
		log.Info().Msg("no assistant API key configured, canned replies only")
	}

	e := api.NewRouter(cfg, pool, rdb, files, assistantBackend, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting jobmatch api")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
