package pipe

import (
	"context"
	"iter"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/core"
	"github.com/ib-77/railway/pkg/rop/solo"
	"github.com/ib-77/railway/pkg/rop/try"
)

const defaultTraceBuffer = 0

// AsyncStep is a Step that resolves later.
type AsyncStep[T any] func(ctx context.Context, in rop.Result[T]) *core.Future[T]

// Async is the asynchronous Sync. Steps still run one at a time, in order:
// a step starts only once the previous one resolved with an Ok.
type Async[T any] struct {
	init  func(ctx context.Context) *core.Future[T]
	steps []AsyncStep[T]
	// settled is set when init is a literal Result, not work to start
	settled bool
}

func NewAsync[T any](init rop.Result[T]) *Async[T] {
	init = normalize(context.Background(), init)
	return &Async[T]{
		init:    func(context.Context) *core.Future[T] { return core.Resolved(init) },
		settled: true,
	}
}

func AsyncOf[T any](value T) *Async[T] {
	return NewAsync(rop.Ok(value))
}

// AsyncFromFunc starts a pipe from produce, called at the start of every run.
func AsyncFromFunc[T any](produce func(ctx context.Context) *core.Future[T]) *Async[T] {
	return &Async[T]{init: produce}
}

func (p *Async[T]) Then(step AsyncStep[T]) *Async[T] {
	p.steps = append(p.steps, step)
	return p
}

// ThenSync appends a synchronous step. It runs on the pipe's goroutine.
func (p *Async[T]) ThenSync(step Step[T]) *Async[T] {
	return p.Then(func(ctx context.Context, in rop.Result[T]) *core.Future[T] {
		return core.Resolved(step(ctx, in))
	})
}

// ThenChan appends a step delivering its Result on a channel. A channel
// closed without a value ends the run with an Error tagged rop.TagNoResult.
func (p *Async[T]) ThenChan(step func(ctx context.Context, in rop.Result[T]) <-chan rop.Result[T]) *Async[T] {
	return p.Then(func(ctx context.Context, in rop.Result[T]) *core.Future[T] {
		return core.FromChan(step(ctx, in))
	})
}

func (p *Async[T]) Map(fn func(ctx context.Context, v T) T) *Async[T] {
	return p.ThenSync(func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.Map(ctx, in, fn)
	})
}

// Try appends a step run with try.Async.
func (p *Async[T]) Try(fn func(ctx context.Context, v T) (T, error)) *Async[T] {
	return p.Then(func(ctx context.Context, in rop.Result[T]) *core.Future[T] {
		return try.Async(ctx, func(ctx context.Context) (T, error) {
			return fn(ctx, in.Data())
		})
	})
}

func (p *Async[T]) Len() int {
	return len(p.steps)
}

// Execute replays the chain on a new goroutine. A panicking step is raised
// again by the Future's Await. Cancelling ctx while a step is pending ends
// the run with an Error tagged rop.TagAborted.
func (p *Async[T]) Execute(ctx context.Context) *core.Future[T] {
	return core.Go(func() rop.Result[T] {
		return p.walk(ctx, func(rop.Result[T]) bool { return true })
	})
}

// Steps replays the chain like Execute, yielding the initial Result and then
// the Result of each step. The sequence ends after the first Error, after the
// last step, or with an aborted Error once ctx is done. The steps run on a
// goroutine of their own; a panic there is raised again in the consumer once
// the Results produced before it have been yielded. Breaking out of the loop
// cancels the context seen by the steps.
func (p *Async[T]) Steps(ctx context.Context) iter.Seq[rop.Result[T]] {
	return func(yield func(rop.Result[T]) bool) {
		runCtx, cancelRun := context.WithCancel(ctx)
		defer cancelRun()
		// stop is only cancelled by the consumer, so an aborted Result is
		// still delivered when ctx finishes
		stop, cancelStop := context.WithCancel(context.Background())
		defer cancelStop()

		out := make(chan rop.Result[T], core.GetTraceBuffer(ctx, defaultTraceBuffer))
		run := core.Go(func() rop.Result[T] {
			defer close(out)
			return p.walk(runCtx, func(r rop.Result[T]) bool {
				return core.Send(stop, out, r)
			})
		})

		for r := range out {
			if !yield(r) {
				return
			}
		}
		run.Await()
	}
}

func (p *Async[T]) walk(ctx context.Context, yield func(rop.Result[T]) bool) rop.Result[T] {
	steps := p.steps[:len(p.steps):len(p.steps)]

	var current rop.Result[T]
	if p.settled {
		current = normalize(ctx, core.Drive(ctx, p.init(ctx)))
	} else {
		current = normalize(ctx, p.await(ctx, p.init))
	}
	if !yield(current) || current.IsError() {
		return current
	}

	for _, step := range steps {
		in := current
		current = normalize(ctx, p.await(ctx, func(ctx context.Context) *core.Future[T] {
			return step(ctx, in)
		}))
		if !yield(current) || current.IsError() {
			return current
		}
	}
	return current
}

// await does not start work once ctx is done.
func (p *Async[T]) await(ctx context.Context, start func(ctx context.Context) *core.Future[T]) rop.Result[T] {
	if err := ctx.Err(); err != nil {
		return core.AbortedResult[T](err, rop.WithContext(ctx))
	}
	return core.Drive(ctx, start(ctx))
}
