package pipe

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/core"
)

// Via continues p with a step changing the data type. The returned pipe
// starts from a full run of p followed by fn; an Error from p is recast to
// U without calling fn. Steps of the new pipe only trace from there.
func Via[T, U any](p *Sync[T], fn func(ctx context.Context, in rop.Result[T]) rop.Result[U]) *Sync[U] {
	return FromFunc(func(ctx context.Context) rop.Result[U] {
		r := p.Execute(ctx)
		if r.IsError() {
			return rop.Recast[U](r)
		}
		return fn(ctx, r)
	})
}

// AsyncVia is Via for Async pipes.
func AsyncVia[T, U any](p *Async[T], fn func(ctx context.Context, in rop.Result[T]) *core.Future[U]) *Async[U] {
	return AsyncFromFunc(func(ctx context.Context) *core.Future[U] {
		r := core.Drive(ctx, p.Execute(ctx))
		if r.IsError() {
			return core.Resolved(rop.Recast[U](r))
		}
		return fn(ctx, r)
	})
}
