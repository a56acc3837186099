package workspace

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bucketsort/bucketarray"
	"github.com/hupe1980/bucketsort/resource"
)

// ErrStop may be returned by an attempt to end Run early without an error,
// typically because a solution was found.
var ErrStop = errors.New("workspace: stop")

// AttemptFunc runs one solve attempt on a dedicated set.
type AttemptFunc[S bucketarray.KeyStorage, V any] func(ctx context.Context, attempt int, set *Set[S, V]) error

// Run executes attempts 0..n-1 in parallel, at most rc.Config().MaxWorkers at
// a time, each on its own set from pool. Attempt starts are paced by the
// controller's attempt rate limit. The first error cancels the remaining
// attempts and is returned; ErrStop cancels them and Run returns nil.
func Run[S bucketarray.KeyStorage, V any](ctx context.Context, pool *Pool[S, V], n int, fn AttemptFunc[S, V]) error {
	rc := pool.rc

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(int(rc.Config().MaxWorkers))

	for attempt := range n {
		if gctx.Err() != nil {
			break
		}
		if err := rc.WaitAttempt(gctx); err != nil {
			break
		}

		g.Go(func() error {
			return runAttempt(gctx, rc, pool, attempt, fn)
		})
	}

	err := g.Wait()
	if errors.Is(err, ErrStop) {
		return nil
	}
	if err != nil {
		return err
	}
	return ctx.Err()
}

func runAttempt[S bucketarray.KeyStorage, V any](ctx context.Context, rc *resource.Controller, pool *Pool[S, V], attempt int, fn AttemptFunc[S, V]) (err error) {
	if err := rc.AcquireWorker(ctx); err != nil {
		return err
	}
	defer rc.ReleaseWorker()

	set, err := pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := pool.Release(set); rerr != nil && err == nil {
			err = rerr
		}
	}()

	pool.logger.DebugContext(ctx, "attempt started", "attempt", attempt, "set", set.id)
	return fn(ctx, attempt, set)
}
