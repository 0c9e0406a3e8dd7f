package main

import (
	"github.com/apex/log"
	"github.com/kantodex/pokedash/internal/database"
	"github.com/kantodex/pokedash/internal/models"
	"github.com/lrstanley/chix"
	"github.com/lrstanley/clix"
)

var (
	cli    = &clix.CLI[models.Flags]{}
	logger log.Interface
	db     *database.DB
	cfg    *models.Config
)

func main() {
	ctx := setup()

	if cli.Flags.IngestOnly {
		logger.Info("ingest-only run complete")
		db.Close()
		return
	}

	logger.Infof("Starting HTTP server on %s:%d", cfg.HTTP.ListeningAddr, cfg.HTTP.Port)
	if err := chix.RunContext(ctx, httpServer(ctx)); err != nil {
		db.Close()
	}
}
