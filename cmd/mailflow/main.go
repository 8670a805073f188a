package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/mailflow/internal/api"
	"github.com/dmitrymomot/mailflow/internal/dispatch"
	"github.com/dmitrymomot/mailflow/internal/mailer"
	"github.com/dmitrymomot/mailflow/internal/store"
	"github.com/dmitrymomot/mailflow/pkg/config"
	"github.com/dmitrymomot/mailflow/pkg/httpserver"
	"github.com/dmitrymomot/mailflow/pkg/logger"
)

type appConfig struct {
	Logger logger.Config
	Server httpserver.Config
	Mailer mailer.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(cfg.Logger, os.Stdout, slog.String("service", "mailflow"))

	st := store.NewMemory()
	if err := st.Seed(); err != nil {
		log.Error("failed to seed store", logger.Error(err))
		os.Exit(1)
	}

	sender, err := mailer.NewFromConfig(cfg.Mailer, log)
	if err != nil {
		log.Error("failed to configure delivery gateway", logger.Error(err))
		os.Exit(1)
	}

	d := dispatch.New(st, sender, log)
	router := api.NewRouter(st, d, log)

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server terminated", logger.Error(err))
		os.Exit(1)
	}
}
