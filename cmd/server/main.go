package main

import (
	"context"
	"fmt"

	"github.com/Elayaraja1609/TodoApplication/internal/adapter"
	"github.com/Elayaraja1609/TodoApplication/internal/config"
	"github.com/Elayaraja1609/TodoApplication/internal/handler"
	"github.com/Elayaraja1609/TodoApplication/internal/logger"
	"github.com/Elayaraja1609/TodoApplication/internal/server"
	"github.com/Elayaraja1609/TodoApplication/internal/service"
	"github.com/Elayaraja1609/TodoApplication/internal/store"
	"github.com/Elayaraja1609/TodoApplication/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("todo-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	storages := store.NewStorages(db, log)
	pushSender := adapter.NewPushAdapter(cfg.Push, log)
	services := service.NewServices(storages, cfg, pushSender, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(services, cfg.Workers, log).Run()

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
