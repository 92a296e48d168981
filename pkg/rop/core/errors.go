package core

import (
	"github.com/zeebo/errs"

	"github.com/ib-77/railway/pkg/rop"
)

var (
	// NoResult is the class of errors for futures that resolve without a value.
	NoResult = errs.Class("no result")
	// Aborted is the class of errors for work halted by its context.
	Aborted = errs.Class("operation aborted")
)

func noResult[T any](opts ...rop.Option) rop.Result[T] {
	return rop.Error[T](NoResult.New("future resolved without a value"),
		append(opts, rop.WithTag(rop.TagNoResult))...)
}

// AbortedResult is the Error reported when ctx stops an operation.
func AbortedResult[T any](cause error, opts ...rop.Option) rop.Result[T] {
	return rop.Error[T](Aborted.Wrap(cause), append(opts, rop.WithTag(rop.TagAborted))...)
}
