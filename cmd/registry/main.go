package main

import (
	"log/slog"
	"os"

	"github.com/innovate-hub/registry/internal/api"
	"github.com/innovate-hub/registry/internal/catalog"
	"github.com/innovate-hub/registry/internal/config"
	"github.com/innovate-hub/registry/internal/database"
	"github.com/innovate-hub/registry/internal/shared"
)

func main() {
	shared.LoadConfig() // nolint:errcheck // a missing .env file is fine in production
	shared.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("could not load configuration", "err", err)
		os.Exit(1)
	}

	db, err := database.NewConnection(
		cfg.PostgresHost,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresDB,
		cfg.PostgresPort,
	)
	if err != nil {
		slog.Error("could not connect to database", "err", err)
		os.Exit(1)
	}

	e := api.BuildRouter(db, catalog.Default())

	slog.Info("starting server", "bindAddr", cfg.BindAddr)
	if err := e.Start(cfg.BindAddr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
