package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/kantodex/pokedash/internal/database"
	"github.com/kantodex/pokedash/internal/models"
)

// Replace swaps the pokemon relation wholesale for the given records,
// inside a single transaction. Ids are assigned by file order so loading
// the same file twice produces identical contents.
func Replace(ctx context.Context, pokemons []models.Pokemon) error {
	db := database.FromContext(ctx)
	if db == nil {
		return errors.New("database missing from context")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM pokemon"); err != nil {
		tx.Rollback()
		return fmt.Errorf("clearing pokemon relation: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, db.Rebind(`INSERT INTO pokemon
		(id, name, type1, type2, hp, attack, defense, sp_atk, sp_def, speed, generation, legendary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range pokemons {
		var type2 any
		if p.Type2 != "" {
			type2 = p.Type2
		}

		_, err := stmt.ExecContext(ctx, i+1, p.Name, p.Type1, type2,
			p.HP, p.Attack, p.Defense, p.SpAtk, p.SpDef, p.Speed,
			p.Generation, p.Legendary)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing ingest: %w", err)
	}

	return nil
}

// Run loads the CSV at path and replaces the stored relation with it.
func Run(ctx context.Context, path string) error {
	logger := log.FromContext(ctx)
	logger.WithField("path", path).Info("loading dataset")

	pokemons, err := ReadFile(path)
	if err != nil {
		return err
	}

	if err := Replace(ctx, pokemons); err != nil {
		return err
	}

	logger.WithField("rows", len(pokemons)).Info("dataset loaded")
	return nil
}
