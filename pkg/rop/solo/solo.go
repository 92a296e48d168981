package solo

import (
	"context"
	"errors"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/try"
)

func Succeed[T any](ctx context.Context, input T) rop.Result[T] {
	return rop.Ok(input, rop.WithContext(ctx))
}

func Fail[T any](ctx context.Context, err error, tag string) rop.Result[T] {
	return rop.Error[T](err, rop.WithContext(ctx), rop.WithTag(tag))
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(ctx, input), validate)
}

// AndValidate fails an Ok input whose data does not pass validate. The Error
// keeps the data and carries errMsg as its cause.
func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsOk() {
		if isValid, errMsg := validate(ctx, input.Data()); !isValid {
			return rop.ErrorWithData(input.Data(), errors.New(errMsg),
				rop.WithContext(ctx), rop.WithTag(input.Tag()))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T]) rop.Result[T] {

			if current.IsError() {
				e := rop.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return current
			}

			return rop.Error[T](err, rop.WithContext(ctx))
		},
		inputsF...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsOk() {
		return onSuccess(ctx, input.Data())
	}
	return rop.Recast[Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsOk() {
		return rop.Ok(onSuccess(ctx, input.Data()), rop.WithContext(ctx), rop.WithTag(input.Tag()))
	}
	return rop.Recast[Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsOk() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input rop.Result[T],
	condition func(ctx context.Context, r rop.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsOk() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsOk() {
		onSuccess(ctx, input.Data())
	} else if input.IsError() {
		onError(ctx, input)
	}

	return input
}

// Try calls onTryExecute with the data of an Ok input, see try.Sync.
func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsOk() {
		return try.Sync(ctx, func(ctx context.Context) (Out, error) {
			return onTryExecute(ctx, input.Data())
		})
	}
	return rop.Recast[Out](input)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {
	if input.IsOk() {
		if err := maybeErr(ctx, input.Data()); err != nil {
			return rop.Error[T](err, rop.WithContext(ctx))
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, r rop.Result[In]) Out) Out {

	if input.IsOk() {
		return onSuccess(ctx, input.Data())
	}
	return onError(ctx, input)
}

func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsOk() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsError() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
