package database

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"github.com/apex/log"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/kantodex/pokedash/internal/models"
)

// DB wraps the shared handle with the dialect it was opened for, so the
// query layer can rebind placeholders for postgres.
type DB struct {
	*sql.DB
	Dialect string
}

func New(ctx context.Context, cfg *models.DatabaseConfig) *DB {
	logger := log.FromContext(ctx)
	var db *sql.DB

	switch cfg.DBType {
	case "postgres":
		poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString)
		if err != nil {
			logger.WithError(err).Fatal("failed to parse connection string")
			return nil
		}
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to postgres")
			return nil
		}
		db = stdlib.OpenDBFromPool(pool)

		break
	case "mysql":
		var err error
		db, err = sql.Open("mysql", cfg.ConnectionString)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to mysql")
			return nil
		}
		break
	case "sqlite":
		var err error
		db, err = sql.Open(cfg.DBType, cfg.ConnectionString)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to sqlite")
			return nil
		}
		break
	default:
		return nil
	}

	return &DB{DB: db, Dialect: cfg.DBType}
}

const schema = `
CREATE TABLE IF NOT EXISTS pokemon (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	type1 TEXT NOT NULL,
	type2 TEXT,
	hp INTEGER NOT NULL,
	attack INTEGER NOT NULL,
	defense INTEGER NOT NULL,
	sp_atk INTEGER NOT NULL,
	sp_def INTEGER NOT NULL,
	speed INTEGER NOT NULL,
	generation INTEGER NOT NULL,
	legendary BOOLEAN NOT NULL
)`

func Migrate(ctx context.Context) {
	logger := log.FromContext(ctx)
	logger.Info("initiating database schema migration")
	db := FromContext(ctx)
	if db == nil {
		logger.Fatal("failed to get database from context")
		return
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		logger.WithError(err).Fatal("failed to create schema")
	}
	logger.Info("database schema migration complete")
}

// Rebind converts ? placeholders to the $N form postgres expects. The
// sqlite and mysql drivers take ? as-is.
func (db *DB) Rebind(query string) string {
	if db.Dialect != "postgres" {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
