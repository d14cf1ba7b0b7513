package resource

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Join runs the sibling fetches of one screen concurrently and returns once
// all of them have finished. The first error wins. Siblings are not cancelled
// when one fails.
func Join(ctx context.Context, fetches ...func(context.Context) error) error {
	var g errgroup.Group
	for _, fetch := range fetches {
		g.Go(func() error { return fetch(ctx) })
	}
	return g.Wait()
}
