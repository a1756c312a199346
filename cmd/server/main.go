package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/fave-tweets/internal/app"
	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/handler"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/server"
	"github.com/MKhiriev/fave-tweets/internal/store"
	"github.com/MKhiriev/fave-tweets/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("fave-tweets-server", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("fave-tweets-server", cfg.App.LogLevel)
	if err = cfg.RequireCredentials(); err != nil {
		log.Fatal().Err(err).Msg("missing credentials")
	}
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("postgres", store.IsPostgresDSN(cfg.Storage.DB.DSN)).
		Bool("redis_lock", cfg.Lock.RedisAddress != "").
		Msg("received configs")

	application, err := app.NewApp(context.Background(), cfg, app.Options{BuildInfo: buildInfo}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initialising application")
	}
	defer application.Close()

	handlers, err := handler.NewHandlers(application.Services, *cfg, application.Metrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, application.Workers(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
