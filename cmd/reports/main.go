package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dafibh/fortuna/fortuna-reports/internal/cli"
	"github.com/dafibh/fortuna/fortuna-reports/internal/config"
	"github.com/dafibh/fortuna/fortuna-reports/internal/repository"
	"github.com/dafibh/fortuna/fortuna-reports/internal/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var version = "dev"

func main() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := cli.NewApp(version, connect)
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func connect(ctx context.Context) (*cli.Services, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	repos, cleanup, err := repository.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return &cli.Services{
		Reports: service.NewReportService(repos.Transactions, repos.Categories),
		Months:  service.NewMonthService(repos.Transactions),
	}, cleanup, nil
}
