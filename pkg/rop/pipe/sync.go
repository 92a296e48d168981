package pipe

import (
	"context"
	"iter"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/match"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Step receives the Result of the previous step, always an Ok.
type Step[T any] func(ctx context.Context, in rop.Result[T]) rop.Result[T]

// Sync is a replayable chain of steps over an initial Result.
type Sync[T any] struct {
	init  func(ctx context.Context) rop.Result[T]
	steps []Step[T]
}

// NewSync starts a pipe from init. An invalid init counts as an Ok without data.
func NewSync[T any](init rop.Result[T]) *Sync[T] {
	init = normalize(context.Background(), init)
	return &Sync[T]{
		init: func(context.Context) rop.Result[T] { return init },
	}
}

func Of[T any](value T) *Sync[T] {
	return NewSync(rop.Ok(value))
}

// FromFunc starts a pipe from produce, called at the start of every run.
func FromFunc[T any](produce func(ctx context.Context) rop.Result[T]) *Sync[T] {
	return &Sync[T]{
		init: func(ctx context.Context) rop.Result[T] { return normalize(ctx, produce(ctx)) },
	}
}

// Then appends step and returns p.
func (p *Sync[T]) Then(step Step[T]) *Sync[T] {
	p.steps = append(p.steps, step)
	return p
}

func (p *Sync[T]) Map(fn func(ctx context.Context, v T) T) *Sync[T] {
	return p.Then(func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.Map(ctx, in, fn)
	})
}

// Try appends a step whose error or panic becomes an Error, see try.Sync.
func (p *Sync[T]) Try(fn func(ctx context.Context, v T) (T, error)) *Sync[T] {
	return p.Then(func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.Try(ctx, in, fn)
	})
}

func (p *Sync[T]) Tee(fn func(ctx context.Context, v T)) *Sync[T] {
	return p.Then(func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.Tee(ctx, in, func(ctx context.Context, r rop.Result[T]) {
			fn(ctx, r.Data())
		})
	})
}

func (p *Sync[T]) Validate(validate func(ctx context.Context, v T) (bool, string)) *Sync[T] {
	return p.Then(func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return solo.AndValidate(ctx, in, validate)
	})
}

func (p *Sync[T]) Match(cases match.Cases[T]) *Sync[T] {
	return p.Then(func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
		return match.Match(ctx, in, cases)
	})
}

func (p *Sync[T]) Len() int {
	return len(p.steps)
}

// Execute runs the whole chain from the initial Result and returns the last
// Result: the first Error, or the Ok of the last step. Every call replays
// every step.
func (p *Sync[T]) Execute(ctx context.Context) rop.Result[T] {
	return p.walk(ctx, func(rop.Result[T]) bool { return true })
}

// Steps replays the chain like Execute, yielding the initial Result and then
// the Result of each step. The sequence ends after the first Error.
func (p *Sync[T]) Steps(ctx context.Context) iter.Seq[rop.Result[T]] {
	return func(yield func(rop.Result[T]) bool) {
		p.walk(ctx, yield)
	}
}

func (p *Sync[T]) walk(ctx context.Context, yield func(rop.Result[T]) bool) rop.Result[T] {
	steps := p.steps[:len(p.steps):len(p.steps)]

	current := p.init(ctx)
	if !yield(current) || current.IsError() {
		return current
	}

	for _, step := range steps {
		current = normalize(ctx, step(ctx, current))
		if !yield(current) || current.IsError() {
			return current
		}
	}
	return current
}

// normalize keeps Results and turns an invalid one into an Ok without data.
func normalize[T any](ctx context.Context, r rop.Result[T]) rop.Result[T] {
	if r.IsValid() {
		return r
	}
	return rop.OkFromWith(r, []rop.Option{rop.WithContext(ctx)})
}
