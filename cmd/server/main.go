package main

import (
	"context"
	"fmt"

	"github.com/adushkin/userdir/internal/config"
	handlerhttp "github.com/adushkin/userdir/internal/handler/http"
	"github.com/adushkin/userdir/internal/logger"
	"github.com/adushkin/userdir/internal/metrics"
	"github.com/adushkin/userdir/internal/server"
	"github.com/adushkin/userdir/internal/service"
	"github.com/adushkin/userdir/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("userdir-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	directory := store.NewUserDirectory(log)
	if !cfg.Directory.DisableSeed {
		directory.Seed(context.Background())
	}

	registry := metrics.NewRegistry()
	registry.SetUsersTotal(directory.Len())

	services := service.NewServices(directory, registry, log)
	handler := handlerhttp.NewHandler(services, registry, cfg.App, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
