package core

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

// Future is a Result that becomes available later. It resolves exactly once.
type Future[T any] struct {
	done     chan struct{}
	result   rop.Result[T]
	panicked bool
	panicV   any
}

// Go runs produce on a new goroutine. A panic in produce is kept by the
// Future and raised again by Await.
func Go[T any](produce func() rop.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if v := recover(); v != nil {
				f.panicked = true
				f.panicV = v
			}
		}()
		f.result = produce()
	}()

	return f
}

func Resolved[T any](r rop.Result[T]) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), result: r}
	close(f.done)
	return f
}

// FromChan resolves with the first value received from ch. A closed ch
// resolves with an Error tagged rop.TagNoResult.
func FromChan[T any](ch <-chan rop.Result[T]) *Future[T] {
	return Go(func() rop.Result[T] {
		r, ok := <-ch
		if !ok {
			return noResult[T]()
		}
		return r
	})
}

func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until f resolves.
func (f *Future[T]) Await() rop.Result[T] {
	<-f.done
	if f.panicked {
		panic(f.panicV)
	}
	return f.result
}

// AwaitContext is Await bounded by ctx. The second result is false when ctx
// finished before f resolved; a Future that already resolved always wins.
func (f *Future[T]) AwaitContext(ctx context.Context) (rop.Result[T], bool) {
	select {
	case <-f.done:
		return f.Await(), true
	case <-ctx.Done():
		select {
		case <-f.done:
			return f.Await(), true
		default:
			return rop.Result[T]{}, false
		}
	}
}
