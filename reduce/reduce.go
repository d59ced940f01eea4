// Package reduce computes reductions over an index range, typically
// producing a tuple that holds several results at once, such as
// the sum, the sum of squares and the maximum of a field.
//
// The same kernel can be evaluated inline on the calling goroutine or
// spread across a bounded group of worker goroutines. The index range
// is cut into fixed-size chunks; each chunk is folded into a private
// accumulator and the partial results are combined in chunk order. The
// result therefore depends only on the chunk size, never on the number
// of workers or on how they were scheduled.
package reduce

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the number of indexes folded by a single
// task when no ChunkSize option is given.
const DefaultChunkSize = 1024

type config struct {
	workers   int
	chunkSize int
}

// Option configures a call to For.
type Option func(*config)

// Workers sets the maximum number of goroutines evaluating the kernel.
// A value of one or less evaluates the kernel on the calling goroutine.
// The default is runtime.GOMAXPROCS(0).
func Workers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// Sequential evaluates the kernel on the calling goroutine.
// It is equivalent to Workers(1).
func Sequential() Option {
	return Workers(1)
}

// ChunkSize sets the number of consecutive indexes folded
// into each partial result. Values less than one select
// DefaultChunkSize.
func ChunkSize(n int) Option {
	return func(c *config) {
		c.chunkSize = n
	}
}

// For folds kernel(i) for every i in [0, n) using op and returns the
// result. If n is not positive it returns op.Identity().
//
// The kernel may be called concurrently from several goroutines, so
// any state it shares must be safe for concurrent use; values it
// returns are owned by the reduction. The only error returned is that
// of ctx, if it is done before every chunk has been folded.
func For[T any](ctx context.Context, n int, op Op[T], kernel func(i int) T, opts ...Option) (T, error) {
	cfg := config{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.chunkSize < 1 {
		cfg.chunkSize = DefaultChunkSize
	}
	if n <= 0 {
		return op.Identity(), nil
	}
	nchunks := 1 + (n-1)/cfg.chunkSize
	if cfg.workers <= 1 || nchunks == 1 {
		return sequential(ctx, n, nchunks, cfg.chunkSize, op, kernel)
	}

	partial := make([]T, nchunks)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for c := range nchunks {
		lo, hi := bounds(c, cfg.chunkSize, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partial[c] = fold(lo, hi, op, kernel)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return *new(T), fmt.Errorf("reduction over %d indexes not completed: %w", n, err)
	}
	acc := op.Identity()
	for _, p := range partial {
		acc = op.Combine(acc, p)
	}
	return acc, nil
}

func sequential[T any](ctx context.Context, n, nchunks, chunkSize int, op Op[T], kernel func(i int) T) (T, error) {
	acc := op.Identity()
	for c := range nchunks {
		if err := ctx.Err(); err != nil {
			return *new(T), fmt.Errorf("reduction over %d indexes not completed: %w", n, err)
		}
		lo, hi := bounds(c, chunkSize, n)
		acc = op.Combine(acc, fold(lo, hi, op, kernel))
	}
	return acc, nil
}

// fold reduces kernel(i) for i in [lo, hi).
func fold[T any](lo, hi int, op Op[T], kernel func(i int) T) T {
	acc := op.Identity()
	for i := lo; i < hi; i++ {
		acc = op.Combine(acc, kernel(i))
	}
	return acc
}

// bounds returns the index range of the given chunk. The chunk must
// start below n, so neither computation overflows.
func bounds(chunk, chunkSize, n int) (lo, hi int) {
	lo = chunk * chunkSize
	return lo, lo + min(chunkSize, n-lo)
}
