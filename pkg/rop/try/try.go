package try

import (
	"context"

	"github.com/zeebo/errs"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/core"
)

// Panic is the class of errors built from recovered non-error panic values.
var Panic = errs.Class("panic")

type Func[T any] func(ctx context.Context) (T, error)

type ResultFunc[T any] func(ctx context.Context) rop.Result[T]

type CatchFunc[T any] func(ctx context.Context, err error) rop.Result[T]

type config[T any] struct {
	catch CatchFunc[T]
}

type Option[T any] func(*config[T])

// Catch replaces the default handling of failures, which is an untagged,
// unlogged Error carrying the failure.
func Catch[T any](catch CatchFunc[T]) Option[T] {
	return func(c *config[T]) {
		c.catch = catch
	}
}

// Sync calls fn and returns Ok with its value. A returned error or a panic
// is passed to the catch handler.
func Sync[T any](ctx context.Context, fn Func[T], opts ...Option[T]) rop.Result[T] {
	return run(ctx, fromFunc(fn), opts)
}

// SyncResult calls fn and returns its Result as is. A panic is passed to the
// catch handler.
func SyncResult[T any](ctx context.Context, fn ResultFunc[T], opts ...Option[T]) rop.Result[T] {
	return run(ctx, fromResultFunc(fn), opts)
}

// Async is Sync running on its own goroutine. If ctx is done before fn
// returns, the Future resolves with an Error tagged rop.TagAborted and the
// catch handler is skipped.
func Async[T any](ctx context.Context, fn Func[T], opts ...Option[T]) *core.Future[T] {
	return async(ctx, fromFunc(fn), opts)
}

func AsyncResult[T any](ctx context.Context, fn ResultFunc[T], opts ...Option[T]) *core.Future[T] {
	return async(ctx, fromResultFunc(fn), opts)
}

func run[T any](ctx context.Context, fn attempt[T], opts []Option[T]) rop.Result[T] {
	r, err := call(ctx, fn)
	if err != nil {
		return catch(ctx, err, opts)
	}
	return r
}

func async[T any](ctx context.Context, fn attempt[T], opts []Option[T]) *core.Future[T] {
	if err := ctx.Err(); err != nil {
		return core.Resolved(core.AbortedResult[T](err, rop.WithContext(ctx)))
	}

	done := make(chan outcome[T], 1)

	go func() {
		r, err := call(ctx, fn)
		done <- outcome[T]{r: r, err: err}
	}()

	return core.Go(func() rop.Result[T] {
		return race(ctx, done, opts)
	})
}

// race waits for the call or for ctx. A call that already returned wins
// over cancellation.
func race[T any](ctx context.Context, done <-chan outcome[T], opts []Option[T]) rop.Result[T] {
	select {
	case o := <-done:
		return o.settle(ctx, opts)
	case <-ctx.Done():
		select {
		case o := <-done:
			return o.settle(ctx, opts)
		default:
		}
		return core.AbortedResult[T](ctx.Err(), rop.WithContext(ctx))
	}
}

type outcome[T any] struct {
	r   rop.Result[T]
	err error
}

func (o outcome[T]) settle(ctx context.Context, opts []Option[T]) rop.Result[T] {
	if o.err == nil {
		return o.r
	}
	if ctx.Err() != nil && rop.IsCancellationError(o.err) {
		return core.AbortedResult[T](ctx.Err(), rop.WithContext(ctx))
	}
	return catch(ctx, o.err, opts)
}

// attempt separates what fn threw from the Result it produced.
type attempt[T any] func(ctx context.Context) (rop.Result[T], error)

func fromFunc[T any](fn Func[T]) attempt[T] {
	return func(ctx context.Context) (rop.Result[T], error) {
		v, err := fn(ctx)
		if err != nil {
			return rop.Result[T]{}, err
		}
		return rop.Ok(v, rop.WithContext(ctx)), nil
	}
}

func fromResultFunc[T any](fn ResultFunc[T]) attempt[T] {
	return func(ctx context.Context) (rop.Result[T], error) {
		r := fn(ctx)
		if !r.IsValid() {
			return rop.OkEmpty[T](rop.WithContext(ctx)), nil
		}
		return r, nil
	}
}

func call[T any](ctx context.Context, fn attempt[T]) (r rop.Result[T], err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fromPanic(v)
		}
	}()

	return fn(ctx)
}
