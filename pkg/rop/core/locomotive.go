package core

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

// Drive waits for step and returns its Result. When ctx finishes first the
// Result is an aborted Error. A nil step counts as resolving without a value.
func Drive[T any](ctx context.Context, step *Future[T]) rop.Result[T] {
	if step == nil {
		return noResult[T](rop.WithContext(ctx))
	}

	if r, ok := step.AwaitContext(ctx); ok {
		return r
	}
	return AbortedResult[T](ctx.Err(), rop.WithContext(ctx))
}
