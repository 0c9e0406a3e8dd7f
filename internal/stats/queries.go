// Package stats exposes the fixed exploratory queries over the pokemon
// relation. Every call re-executes its statement against the store; there
// is no caching layer.
package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/kantodex/pokedash/internal/database"
)

// TypeCount is one bar of a type distribution.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// RankedPokemon is one entry of the top-totals ranking.
type RankedPokemon struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// TypePairCount counts a primary/secondary type combination. Type2 is
// empty for single-typed Pokémon.
type TypePairCount struct {
	Type1 string `json:"type1"`
	Type2 string `json:"type2"`
	Count int    `json:"count"`
}

// NullCheckRow is a row with a missing value in one of the checked
// columns. With the shipped schema only type2 is nullable, but the query
// checks the same columns the exploration does.
type NullCheckRow struct {
	Name   string  `json:"name"`
	Type1  string  `json:"type1"`
	Type2  *string `json:"type2"`
	HP     int     `json:"hp"`
	Attack int     `json:"attack"`
}

// ScatterPoint feeds the attack/defense scatter, split by primary type.
type ScatterPoint struct {
	Name    string `json:"name"`
	Type1   string `json:"type1"`
	Attack  int    `json:"attack"`
	Defense int    `json:"defense"`
}

var errNoDatabase = errors.New("database missing from context")

// NullCheck returns the rows with a NULL in any of name, type1, type2,
// hp or attack.
func NullCheck(ctx context.Context) ([]NullCheckRow, error) {
	db := database.FromContext(ctx)
	if db == nil {
		return nil, errNoDatabase
	}

	rows, err := db.QueryContext(ctx, `SELECT name, type1, type2, hp, attack FROM pokemon
		WHERE name IS NULL OR type1 IS NULL OR type2 IS NULL OR hp IS NULL OR attack IS NULL`)
	if err != nil {
		return nil, fmt.Errorf("running null check: %w", err)
	}
	defer rows.Close()

	var checked []NullCheckRow
	for rows.Next() {
		var row NullCheckRow
		if err := rows.Scan(&row.Name, &row.Type1, &row.Type2, &row.HP, &row.Attack); err != nil {
			return nil, fmt.Errorf("scanning null check row: %w", err)
		}
		checked = append(checked, row)
	}

	return checked, rows.Err()
}

// DistinctCount returns the total row count and the count of distinct
// rows over the dataset columns, the duplicate probe of the exploration.
func DistinctCount(ctx context.Context) (total, distinct int, err error) {
	db := database.FromContext(ctx)
	if db == nil {
		return 0, 0, errNoDatabase
	}

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pokemon").Scan(&total); err != nil {
		return 0, 0, fmt.Errorf("counting rows: %w", err)
	}

	err = db.QueryRowContext(ctx, `SELECT COUNT(*) FROM (
		SELECT DISTINCT name, type1, type2, hp, attack, defense, sp_atk, sp_def, speed, generation, legendary
		FROM pokemon) AS uniq`).Scan(&distinct)
	if err != nil {
		return 0, 0, fmt.Errorf("counting distinct rows: %w", err)
	}

	return total, distinct, nil
}

// TypeCounts groups the full relation by primary type.
func TypeCounts(ctx context.Context) ([]TypeCount, error) {
	return typeCounts(ctx, `SELECT type1, COUNT(*) AS count FROM pokemon
		GROUP BY type1 ORDER BY type1`)
}

// TypeCountsByGeneration groups one generation by primary type. A
// generation with no rows yields an empty result, not an error.
func TypeCountsByGeneration(ctx context.Context, generation int) ([]TypeCount, error) {
	return typeCounts(ctx, `SELECT type1, COUNT(*) AS count FROM pokemon
		WHERE generation = ? GROUP BY type1 ORDER BY type1`, generation)
}

func typeCounts(ctx context.Context, query string, args ...any) ([]TypeCount, error) {
	db := database.FromContext(ctx)
	if db == nil {
		return nil, errNoDatabase
	}

	rows, err := db.QueryContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("counting types: %w", err)
	}
	defer rows.Close()

	var counts []TypeCount
	for rows.Next() {
		var tc TypeCount
		if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
			return nil, fmt.Errorf("scanning type count: %w", err)
		}
		counts = append(counts, tc)
	}

	return counts, rows.Err()
}

// TopTotals ranks by the derived stat total, strongest first, capped at
// ten rows.
func TopTotals(ctx context.Context) ([]RankedPokemon, error) {
	db := database.FromContext(ctx)
	if db == nil {
		return nil, errNoDatabase
	}

	rows, err := db.QueryContext(ctx, `SELECT name,
		hp + attack + defense + sp_atk + sp_def + speed AS total
		FROM pokemon ORDER BY total DESC LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("ranking totals: %w", err)
	}
	defer rows.Close()

	var ranked []RankedPokemon
	for rows.Next() {
		var rp RankedPokemon
		if err := rows.Scan(&rp.Name, &rp.Total); err != nil {
			return nil, fmt.Errorf("scanning ranked row: %w", err)
		}
		ranked = append(ranked, rp)
	}

	return ranked, rows.Err()
}

// TypePairCounts counts primary/secondary type combinations, most common
// first, capped at ten rows.
func TypePairCounts(ctx context.Context) ([]TypePairCount, error) {
	db := database.FromContext(ctx)
	if db == nil {
		return nil, errNoDatabase
	}

	rows, err := db.QueryContext(ctx, `SELECT type1, COALESCE(type2, '') AS type2, COUNT(*) AS count
		FROM pokemon GROUP BY type1, type2 ORDER BY count DESC, type1, type2 LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("counting type pairs: %w", err)
	}
	defer rows.Close()

	var pairs []TypePairCount
	for rows.Next() {
		var pc TypePairCount
		if err := rows.Scan(&pc.Type1, &pc.Type2, &pc.Count); err != nil {
			return nil, fmt.Errorf("scanning type pair: %w", err)
		}
		pairs = append(pairs, pc)
	}

	return pairs, rows.Err()
}

// ScatterPoints returns attack and defense for every row, tagged with the
// primary type.
func ScatterPoints(ctx context.Context) ([]ScatterPoint, error) {
	db := database.FromContext(ctx)
	if db == nil {
		return nil, errNoDatabase
	}

	rows, err := db.QueryContext(ctx, "SELECT name, type1, attack, defense FROM pokemon ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("selecting scatter points: %w", err)
	}
	defer rows.Close()

	var points []ScatterPoint
	for rows.Next() {
		var sp ScatterPoint
		if err := rows.Scan(&sp.Name, &sp.Type1, &sp.Attack, &sp.Defense); err != nil {
			return nil, fmt.Errorf("scanning scatter point: %w", err)
		}
		points = append(points, sp)
	}

	return points, rows.Err()
}
