package sheet

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RunAll evaluates sheets concurrently and returns their results in input
// order. The first failure cancels the remaining evaluations.
func (e *Evaluator) RunAll(ctx context.Context, sheets []*Sheet) ([][]Result, error) {
	results := make([][]Result, len(sheets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, s := range sheets {
		g.Go(func() error {
			res, err := e.Run(gctx, s)
			if err != nil {
				return fmt.Errorf("sheet %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.logger.InfoContext(ctx, "batch evaluated", "sheets", len(sheets))
	return results, nil
}
