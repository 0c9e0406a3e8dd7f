package stats

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Report aggregates the exploratory queries into one inspection result.
// Cleaning stays inspection-only: duplicates and nulls are reported, the
// stored relation is never rewritten.
type Report struct {
	TotalRows    int             `json:"total_rows"`
	DistinctRows int             `json:"distinct_rows"`
	NullRows     []NullCheckRow  `json:"null_rows"`
	TypeCounts   []TypeCount     `json:"type_counts"`
	TopTotals    []RankedPokemon `json:"top_totals"`
	TypePairs    []TypePairCount `json:"type_pairs"`
}

// BuildReport runs the independent read-only queries through a bounded
// errgroup and collects the results.
func BuildReport(ctx context.Context) (*Report, error) {
	report := &Report{}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(4)

	eg.Go(func() error {
		total, distinct, err := DistinctCount(ctx)
		if err != nil {
			return err
		}
		report.TotalRows = total
		report.DistinctRows = distinct
		return nil
	})

	eg.Go(func() error {
		rows, err := NullCheck(ctx)
		if err != nil {
			return err
		}
		report.NullRows = rows
		return nil
	})

	eg.Go(func() error {
		counts, err := TypeCounts(ctx)
		if err != nil {
			return err
		}
		report.TypeCounts = counts
		return nil
	})

	eg.Go(func() error {
		ranked, err := TopTotals(ctx)
		if err != nil {
			return err
		}
		report.TopTotals = ranked
		return nil
	})

	eg.Go(func() error {
		pairs, err := TypePairCounts(ctx)
		if err != nil {
			return err
		}
		report.TypePairs = pairs
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}
