// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls the worker pool.
type Config struct {
	Threads int // worker goroutines; <= 0 means runtime.NumCPU()
}

func (c Config) limit() int {
	if c.Threads <= 0 {
		return runtime.NumCPU()
	}
	return c.Threads
}

// VisitFunc scores one item. keep=false drops the item from the output.
type VisitFunc[T, U any] func(T) (keep bool, out U, err error)

// Visit applies visit to every item and returns the kept outputs in input
// order. The first error cancels the remaining work and is returned;
// cancellation of ctx is returned as ctx.Err().
func Visit[T, U any](ctx context.Context, cfg Config, items []T, visit VisitFunc[T, U]) ([]U, error) {
	type slot struct {
		keep bool
		out  U
	}
	slots := make([]slot, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.limit())
	for i := range items {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			keep, out, err := visit(items[i])
			if err != nil {
				return err
			}
			slots[i] = slot{keep: keep, out: out}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]U, 0, len(items))
	for _, s := range slots {
		if s.keep {
			out = append(out, s.out)
		}
	}
	return out, nil
}

// Map is Visit keeping every output.
func Map[T, U any](ctx context.Context, cfg Config, items []T, fn func(T) (U, error)) ([]U, error) {
	return Visit(ctx, cfg, items, func(t T) (bool, U, error) {
		u, err := fn(t)
		return true, u, err
	})
}
