package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"goamb/adapters/battery"
	"goamb/adapters/memory"
	"goamb/adapters/postgres"
	"goamb/adapters/rng"
	"goamb/app"
	"goamb/internal"
	"goamb/internal/config"
	"goamb/ports"
	"goamb/ui"
)

func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	logger := internal.DefaultLogger

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	results, cleanup, err := buildResultRepository(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize result storage: %v", err)
		os.Exit(1)
	}
	defer cleanup()

	service := app.NewAmbiguityService(
		battery.NewAmbiguityReferee(rng.NewAdapter()),
		results,
	)
	server := ui.NewServer(service, cfg.Params())

	addr := ":" + cfg.Server.Port
	logger.Info("ambiguity test API listening on %s", addr)
	if err := http.ListenAndServe(addr, server); err != nil {
		logger.Error("server stopped: %v", err)
		os.Exit(1)
	}
}

// buildResultRepository wires postgres persistence when DATABASE_URL is
// set and falls back to in-memory storage otherwise.
func buildResultRepository(cfg *config.Config, logger *internal.Logger) (ports.ResultRepository, func(), error) {
	if cfg.Database.URL == "" {
		logger.Warn("DATABASE_URL not set; results are kept in memory only")
		return memory.NewResultRepository(), func() {}, nil
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}

	repo := postgres.NewResultRepository(db)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}

	logger.Info("result persistence enabled")
	return repo, func() { db.Close() }, nil
}
