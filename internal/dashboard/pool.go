package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// outcome is one task's result or error; tasks never share state.
type outcome[R any] struct {
	Value R
	Err   error
}

// fanOut runs fn over items with at most workers in flight and returns
// once every task has finished. Results are index-aligned with items;
// completion order is unspecified. A failing or panicking task only
// affects its own outcome.
func fanOut[T, R any](ctx context.Context, items []T, workers int, fn func(context.Context, T) (R, error)) []outcome[R] {
	out := make([]outcome[R], len(items))
	if len(items) == 0 {
		return out
	}
	if workers <= 0 || workers > len(items) {
		workers = len(items)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range items {
		g.Go(func() error {
			// Errors stay on the card; the group never short-circuits.
			out[i] = runTask(ctx, items[i], fn)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func runTask[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (o outcome[R]) {
	defer func() {
		if p := recover(); p != nil {
			o = outcome[R]{Err: fmt.Errorf("task panicked: %v", p)}
		}
	}()
	v, err := fn(ctx, item)
	return outcome[R]{Value: v, Err: err}
}
