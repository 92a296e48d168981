package match

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

type Handler[T any] func(ctx context.Context, r rop.Result[T]) rop.Result[T]

// Cases maps match keys ("ok", "error", "ok:<tag>", "error:<tag>") to handlers.
type Cases[T any] map[string]Handler[T]

func Key(status rop.Status, tag string) string {
	if tag == "" {
		return status.String()
	}
	return status.String() + ":" + tag
}

// Match runs the handler registered for r and returns its Result. A tagged r
// looks up "status:tag" before "status". Without a handler r comes back as is.
func Match[T any](ctx context.Context, r rop.Result[T], cases Cases[T]) rop.Result[T] {
	out, _ := Fold(ctx, r, cases)
	return out
}

// Fold is Match that also reports whether a handler ran.
func Fold[T any](ctx context.Context, r rop.Result[T], cases Cases[T]) (rop.Result[T], bool) {
	h := lookup(r, cases)
	if h == nil {
		return r, false
	}

	out := h(ctx, r)
	if out.IsError() {
		return out, true
	}
	return rop.OkFromWith(out, []rop.Option{rop.WithContext(ctx)}), true
}

func lookup[T any](r rop.Result[T], cases Cases[T]) Handler[T] {
	if !r.IsValid() || len(cases) == 0 {
		return nil
	}

	if r.HasTag() {
		if h, ok := cases[r.Key()]; ok && h != nil {
			return h
		}
	}

	if h, ok := cases[r.Status().String()]; ok && h != nil {
		return h
	}
	return nil
}

// Value adapts a handler producing a plain value. The value is wrapped as Ok.
func Value[T any](fn func(ctx context.Context, r rop.Result[T]) T) Handler[T] {
	return func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return rop.Ok(fn(ctx, r), rop.WithContext(ctx))
	}
}
