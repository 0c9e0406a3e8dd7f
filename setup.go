package main

import (
	"context"

	"github.com/apex/log"
	"github.com/kantodex/pokedash/internal/database"
	"github.com/kantodex/pokedash/internal/ingest"
	"github.com/kantodex/pokedash/internal/utils"
)

func setup() context.Context {
	cli.Parse()
	logger = cli.Logger

	ctx := log.NewContext(context.Background(), logger)
	cfg = utils.Setup(ctx, cli.Flags.Mode)

	if cli.Flags.CSVPath != "" {
		cfg.Dataset.CSVPath = cli.Flags.CSVPath
	}

	db = database.New(ctx, &cfg.Database)
	ctx = database.NewContext(ctx, db)

	database.Migrate(ctx)

	if shouldIngest(ctx) {
		if err := ingest.Run(ctx, cfg.Dataset.CSVPath); err != nil {
			logger.WithError(err).Fatal("failed to load dataset")
		}
	}

	return ctx
}

// shouldIngest decides whether the relation gets replaced on this start:
// always for ingest-only runs and refresh-on-startup configs, otherwise
// only when the relation is still empty.
func shouldIngest(ctx context.Context) bool {
	if cli.Flags.IngestOnly || cfg.Dataset.RefreshOnStartup {
		return true
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pokemon").Scan(&count); err != nil {
		logger.WithError(err).Fatal("failed to count stored rows")
		return false
	}

	return count == 0
}
