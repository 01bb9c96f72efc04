package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/imovelhub/imoveis-api/internal/api"
	"github.com/imovelhub/imoveis-api/internal/bootstrap"
	"github.com/imovelhub/imoveis-api/internal/core/service"
	mongodb "github.com/imovelhub/imoveis-api/internal/infrastructure/db/mongo"
	redisdb "github.com/imovelhub/imoveis-api/internal/infrastructure/db/redis"
	"github.com/imovelhub/imoveis-api/internal/pkg/config"
	"github.com/imovelhub/imoveis-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Imoveis API
// @version         1.0
// @description     Real-estate listings backend: users, listings, favorites and scheduled visits.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger needs the config, so config errors go straight to stderr.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
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
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// Repositories
	userRepo := mongodb.NewUserRepository(db)
	realEstateRepo := mongodb.NewRealEstateRepository(db)
	favoriteRepo := mongodb.NewFavoriteRepository(db)
	visitRepo := mongodb.NewVisitRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := realEstateRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("real estate index creation failed")
	}

	// Services
	throttle := redisdb.NewLoginThrottle(rdb)
	userService := service.NewUserService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)
	realEstateService := service.NewRealEstateService(realEstateRepo, log)
	favoriteService := service.NewFavoriteService(favoriteRepo, realEstateRepo, log)
	visitService := service.NewVisitService(visitRepo, realEstateRepo, log)

	bootstrap.New(userRepo, realEstateRepo, favoriteRepo, visitRepo, log).Run(ctx, cfg.Bootstrap)

	e := api.NewRouter(db, rdb, userRepo, api.Services{
		Users:       userService,
		RealEstates: realEstateService,
		Favorites:   favoriteService,
		Visits:      visitService,
	}, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
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
