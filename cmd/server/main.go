package main // Entry point package

import (
	"github.com/joho/godotenv"    // Optional .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework
	"go.uber.org/zap"             // Structured logging

	"github.com/jobname/recommender/internal/config"     // Internal config loader
	"github.com/jobname/recommender/internal/handler"    // HTTP handlers
	"github.com/jobname/recommender/internal/logger"     // zap logger construction
	"github.com/jobname/recommender/internal/repository" // Dataset loader and lookup table
	"github.com/jobname/recommender/internal/router"     // Route registration
)

// serviceName appears in the liveness message.
const serviceName = "JobName App"

func main() {
	_ = godotenv.Load() // a missing .env file is not an error

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()

	// The dataset is loaded once, before the listener binds.  Any problem
	// with the file is fatal: the service never serves with partial or
	// absent data.
	repo, err := repository.LoadFile(cfg.DataPath)
	if err != nil {
		log.Fatal("failed to load dataset", zap.String("path", cfg.DataPath), zap.Error(err))
	}
	log.Info("dataset loaded", zap.String("path", cfg.DataPath), zap.Int("entries", repo.Size()))

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, log,
		&handler.HealthHandler{Service: serviceName},
		&handler.PredictHandler{Repo: repo},
	)

	addr := cfg.Addr()
	log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
