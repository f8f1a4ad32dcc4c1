package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/koafy/setter-console/internal/client"
	"github.com/koafy/setter-console/internal/config"
	"github.com/koafy/setter-console/internal/logger"
	"github.com/koafy/setter-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	cfg, err := config.GetConsoleConfig()
	if err != nil {
		logger.NewLogger("setter-console").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewFileLogger("setter-console", cfg.Log.File)
	logger.SetLevel(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var app client.Client
	app, err = client.NewApp(ctx, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init console app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("console run error")
	}
}

func printBuildInfo(build models.BuildInfo) {
	fmt.Printf("Build version: %s\n", build.Version)
	fmt.Printf("Build date: %s\n", build.Date)
	fmt.Printf("Build commit: %s\n", build.Commit)
}
