package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Status uint8

const (
	statusNone Status = iota
	StatusOk
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusError:
		return "error"
	default:
		return "invalid"
	}
}

// Reserved tags for Errors produced by the library itself.
const (
	TagAborted  = "aborted"
	TagNoResult = "no_result"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	data      T
	err       error
	tag       string
	status    Status
	hasData   bool
}

func Ok[T any](data T, opts ...Option) Result[T] {
	return build(StatusOk, data, true, nil, opts)
}

func OkEmpty[T any](opts ...Option) Result[T] {
	var zero T
	return build(StatusOk, zero, false, nil, opts)
}

func Error[T any](err error, opts ...Option) Result[T] {
	var zero T
	return build(StatusError, zero, false, err, opts)
}

func ErrorWithData[T any](data T, err error, opts ...Option) Result[T] {
	return build(StatusError, data, true, err, opts)
}

func build[T any](status Status, data T, hasData bool, err error, opts []Option) Result[T] {
	o := collect(opts)

	r := Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		data:      data,
		err:       err,
		tag:       o.tag,
		status:    status,
		hasData:   hasData,
	}

	o.logger.emit(o.ctx, r, o.log)
	return r
}

// Recast moves r to another data type. Data is dropped, everything else is kept.
func Recast[Out, In any](from Result[In]) Result[Out] {
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		tag:       from.tag,
		status:    from.status,
	}
}

func (r Result[T]) Status() Status {
	return r.status
}

// Data returns the payload or the zero value of T when there is none.
func (r Result[T]) Data() T {
	return r.data
}

func (r Result[T]) Value() (T, bool) {
	return r.data, r.hasData
}

func (r Result[T]) HasData() bool {
	return r.hasData
}

func (r Result[T]) Tag() string {
	return r.tag
}

func (r Result[T]) HasTag() bool {
	return r.tag != ""
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsOk() bool {
	return r.status == StatusOk
}

func (r Result[T]) IsError() bool {
	return r.status == StatusError
}

// IsValid reports whether r was built by a constructor.
func (r Result[T]) IsValid() bool {
	return r.status == StatusOk || r.status == StatusError
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Key is the match key of r: "status:tag" when tagged, "status" otherwise.
func (r Result[T]) Key() string {
	if r.tag == "" {
		return r.status.String()
	}
	return r.status.String() + ":" + r.tag
}

func (r Result[T]) String() string {
	var b []byte
	b = append(b, r.Key()...)
	if r.hasData {
		b = fmt.Appendf(b, "(%v)", r.data)
	}
	if r.err != nil {
		b = fmt.Appendf(b, ": %v", r.err)
	}
	return string(b)
}

func (r Result[T]) sealed() {}
