package geo

import (
	"context"
	"fmt"

	"github.com/USA-RedDragon/geodist-server/internal/units"
	"golang.org/x/sync/errgroup"
)

type Pair struct {
	From Coordinate `json:"from"`
	To   Coordinate `json:"to"`
}

// BatchDistance computes the distance of every pair concurrently. Each
// goroutine writes only its own output slot. A limit of zero or less leaves
// concurrency unbounded.
func BatchDistance(ctx context.Context, pairs []Pair, strategy Strategy, unit units.Unit, limit int) ([]float64, error) {
	if _, err := linearFactor(unit); err != nil {
		return nil, err
	}

	results := make([]float64, len(pairs))
	errGrp, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		errGrp.SetLimit(limit)
	}

	for i, pair := range pairs {
		errGrp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			dist, err := Compute(strategy, pair.From, pair.To, unit)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			results[i] = dist
			return nil
		})
	}

	if err := errGrp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
