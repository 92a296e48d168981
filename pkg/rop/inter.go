package rop

import (
	"time"

	"github.com/google/uuid"
)

// Any is implemented by every Result[T], whatever T is. It cannot be
// implemented outside this package.
type Any interface {
	// Status returns StatusOk or StatusError
	Status() Status
	// Tag returns the tag, empty when untagged
	Tag() string
	// Key returns the match key
	Key() string
	// Err returns the error cause, if any
	Err() error
	// HasData reports whether a payload is present
	HasData() bool
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
	Id() uuid.UUID

	sealed()
}

var _ Any = Result[struct{}]{}

// IsResult reports whether v is a Result built by one of the constructors.
func IsResult(v any) bool {
	s := statusOf(v)
	return s == StatusOk || s == StatusError
}

func IsOk(v any) bool {
	return statusOf(v) == StatusOk
}

func IsError(v any) bool {
	return statusOf(v) == StatusError
}

// statusOf accepts anything. A nil *Result[T] also implements Any, so nil
// pointers are filtered out before Status is called.
func statusOf(v any) Status {
	if IsNil(v) {
		return statusNone
	}
	r, ok := v.(Any)
	if !ok {
		return statusNone
	}
	return r.Status()
}
