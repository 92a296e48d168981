package try

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

func catch[T any](ctx context.Context, err error, opts []Option[T]) rop.Result[T] {
	c := config[T]{}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	if c.catch == nil {
		return rop.Error[T](err, rop.WithLog(false))
	}

	r := c.catch(ctx, err)
	if r.IsValid() {
		return r
	}
	return rop.Error[T](err, rop.WithContext(ctx))
}

func fromPanic(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return Panic.New("%v", v)
}
