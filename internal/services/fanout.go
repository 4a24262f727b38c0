package services

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fanOut runs fn over items with at most workers concurrent calls and returns
// the results in input order. fn absorbs its own failures.
func fanOut[T any, R any](ctx context.Context, items []T, workers int, fn func(context.Context, T) R) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, item := range items {
		g.Go(func() error {
			results[i] = fn(ctx, item)
			return nil
		})
	}
	_ = g.Wait()

	return results
}
