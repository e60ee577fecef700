package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/devtrail/bootcamp-api/internal/api"
	"github.com/devtrail/bootcamp-api/internal/core/service"
	mongodb "github.com/devtrail/bootcamp-api/internal/infrastructure/db/mongo"
	redisdb "github.com/devtrail/bootcamp-api/internal/infrastructure/db/redis"
	"github.com/devtrail/bootcamp-api/internal/infrastructure/queue"
	"github.com/devtrail/bootcamp-api/internal/pkg/config"
	"github.com/devtrail/bootcamp-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// Background aggregate recomputes, sharded per bootcamp.
	statsService := service.NewStatsService(
		mongodb.NewBootcampRepository(db),
		mongodb.NewCourseRepository(db),
		mongodb.NewReviewRepository(db),
		log,
	)
	dispatcher := queue.NewDispatcher(0, statsService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		DB:    db,
		Redis: rdb,
		Cfg:   cfg,
		Log:   log,
		Stats: dispatcher,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
