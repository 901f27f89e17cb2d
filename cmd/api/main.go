// @title        DentalDiagnose API
// @version      1.0
// @description  Dental imaging clinical workflow backend.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/batoolShene/DentalDiagnose/internal/api"
	"github.com/batoolShene/DentalDiagnose/internal/core/service"
	"github.com/batoolShene/DentalDiagnose/internal/infrastructure/db/postgres"
	redisinfra "github.com/batoolShene/DentalDiagnose/internal/infrastructure/db/redis"
	"github.com/batoolShene/DentalDiagnose/internal/pkg/config"
	"github.com/batoolShene/DentalDiagnose/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN()})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("schema migration failed")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := os.MkdirAll(cfg.Model.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Model.Dir).Msg("model dir unavailable")
	}

	seeder := service.NewAuthService(
		postgres.NewAuthRepository(db),
		postgres.NewActivityRepository(db),
		cfg.JWTSecret, time.Hour, log,
	)
	if err := seeder.SeedInitialUsers(ctx); err != nil {
		log.Fatal().Err(err).Msg("initial user seeding failed")
	}

	e, err := api.NewRouter(cfg, db, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
