package main

import (
	"flag"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"

	"github.com/arhyth/bankxterm"
)

func main() {
	cfp := flag.String("config", "teller.yml", "path to configuration file")
	flag.Parse()

	bootlog := zerolog.New(os.Stderr).With().Timestamp().Logger()
	cfg, err := bankxterm.LoadConfig(*cfp)
	if err != nil {
		bootlog.Fatal().Err(err).Str("path", *cfp).Msg("error loading config file")
	}

	logger, logcl, err := bankxterm.NewLogger(cfg)
	if err != nil {
		bootlog.Fatal().Err(err).Msg("error opening log output")
	}
	defer logcl.Close()

	node, err := snowflake.NewNode(cfg.Node)
	if err != nil {
		logger.Fatal().Err(err).Int64("node", cfg.Node).Msg("error creating ID node")
	}
	savings := bankxterm.NewSavingsAccount(node.Generate(), cfg.SavingsOpening())
	current := bankxterm.NewCurrentAccount(node.Generate(), cfg.CurrentOpening())
	repo := bankxterm.NewMemoryRepository(savings, current)

	svc, err := bankxterm.NewService(repo, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting service")
	}
	validated := bankxterm.NewValidationMiddleware(repo)(svc)

	logger.Info().
		Str("savings", savings.ID().String()).
		Str("current", current.ID().String()).
		Msg("accounts opened")

	console := bankxterm.NewConsole(validated, os.Stdin, os.Stdout, bankxterm.NewClearer(os.Stdout), cfg.Statement.Dir, logger)
	if err = console.Run(); err != nil {
		logger.Error().Err(err).Msg("console stopped")
	}
}
