package solo

import (
	"context"
	"errors"
	"testing"

	"github.com/ib-77/railway/pkg/rop"
)

// helper validators for int values that ignore prior result and validate captured value
func validateNonNegative(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v < 0 {
			return rop.Error[int](errors.New("negative"))
		}
		return rop.Ok(v)
	}
}

func validateEven(v int) func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
	return func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		if v%2 != 0 {
			return rop.Error[int](errors.New("odd"))
		}
		return rop.Ok(v)
	}
}

func passThrough[T any]() func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
	return func(ctx context.Context, in rop.Result[T]) rop.Result[T] { return in }
}

func TestValidateAll_AllSuccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := 10 // non-negative, even

	res := ValidateAll[int](ctx, rop.Ok(v), true, validateNonNegative(v), validateEven(v))

	if !res.IsOk() {
		t.Fatalf("expected ok, got error: %v", res.Err())
	}
	if res.Data() != v {
		t.Fatalf("expected data %d, got %d", v, res.Data())
	}
}

func TestValidateAll_FailBreakOnFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -1 // fails non-negative and odd

	executed := 0
	v1 := func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		executed++
		return validateNonNegative(v)(ctx, in)
	}
	v2 := func(ctx context.Context, in rop.Result[int]) rop.Result[int] {
		executed++
		return validateEven(v)(ctx, in)
	}

	res := ValidateAll[int](ctx, rop.Ok(v), true, v1, v2)

	if res.IsOk() {
		t.Fatalf("expected error, got ok: %v", res.Data())
	}
	if executed != 1 {
		t.Fatalf("expected only first validator to execute, got %d", executed)
	}
	if res.Err() == nil || res.Err().Error() != "negative" {
		t.Fatalf("expected 'negative' error, got: %v", res.Err())
	}
}

func TestValidateAll_AccumulateErrors_NoBreak(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v := -3 // negative and odd

	res := ValidateAll[int](ctx, rop.Ok(v), false, validateNonNegative(v), validateNonNegative(v), validateEven(v))

	if res.IsOk() {
		t.Fatalf("expected error, got ok: %v", res.Data())
	}

	errs := rop.GetErrors(res.Err())
	if len(errs) != 3 {
		t.Fatalf("expected 3 accumulated errors, got %d", len(errs))
	}
	if errs[0].Error() != "negative" || errs[1].Error() != "negative" || errs[2].Error() != "odd" {
		t.Fatalf("expected errors ['negative', 'negative', 'odd'], got ['%s','%s','%s']",
			errs[0].Error(), errs[1].Error(), errs[2].Error())
	}
}

func TestValidateAll_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel before running

	res := ValidateAll[int](ctx, rop.Ok(42), false, validateNonNegative(42), validateEven(42))

	// Join short-circuits and returns input unchanged
	if !res.IsOk() || res.Data() != 42 {
		t.Fatalf("expected original value 42, got %v", res)
	}
}

func TestJoin_NoFunctions(t *testing.T) {
	t.Parallel()

	in := rop.Ok(7)
	res := Join(context.Background(), in, true, passThrough[int]())
	if res.Id() != in.Id() {
		t.Fatalf("expected input back, got %v", res)
	}
}

func TestSwitch_RecastsError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	called := false
	in := rop.Error[int](errors.New("bad"), rop.WithTag("E"))

	out := Switch(ctx, in, func(ctx context.Context, r int) rop.Result[string] {
		called = true
		return rop.Ok("x")
	})

	if called {
		t.Fatalf("onSuccess should not be called for an error")
	}
	if !out.IsError() || out.Tag() != "E" || out.Err().Error() != "bad" {
		t.Fatalf("expected recast error, got %v", out)
	}
}

func TestMap_KeepsTag(t *testing.T) {
	t.Parallel()

	out := Map(context.Background(), rop.Ok(2, rop.WithTag("T")), func(_ context.Context, v int) int { return v * 3 })
	if !out.IsOk() || out.Data() != 6 || out.Tag() != "T" {
		t.Fatalf("expected ok:T(6), got %v", out)
	}
}

func TestTry_Error(t *testing.T) {
	t.Parallel()

	out := Try(context.Background(), rop.Ok(1), func(_ context.Context, v int) (string, error) {
		return "", errors.New("try-error")
	})
	if !out.IsError() || out.Err().Error() != "try-error" {
		t.Fatalf("expected 'try-error', got %v", out)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	positive := func(_ context.Context, v int) (bool, string) { return v > 0, "not positive" }

	if r := Validate(context.Background(), 3, positive); !r.IsOk() {
		t.Fatalf("expected ok, got %v", r)
	}
	if r := Validate(context.Background(), -3, positive); !r.IsError() || r.Err().Error() != "not positive" {
		t.Fatalf("expected 'not positive', got %v", r)
	}
}

func TestTees(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	okCalls, errCalls, condCalls := 0, 0, 0

	onOk := func(context.Context, int) { okCalls++ }
	onErr := func(context.Context, rop.Result[int]) { errCalls++ }

	DoubleTee(ctx, rop.Ok(1), onOk, onErr)
	DoubleTee(ctx, rop.Error[int](nil), onOk, onErr)
	Tee(ctx, rop.Error[int](nil), func(context.Context, rop.Result[int]) { okCalls++ })
	TeeIf(ctx, rop.Ok(1),
		func(_ context.Context, r rop.Result[int]) bool { return r.Data() > 0 },
		func(context.Context, rop.Result[int]) { condCalls++ })

	if okCalls != 1 || errCalls != 1 || condCalls != 1 {
		t.Fatalf("unexpected calls ok=%d err=%d cond=%d", okCalls, errCalls, condCalls)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	onOk := func(_ context.Context, v int) string { return "ok" }
	onErr := func(_ context.Context, r rop.Result[int]) string { return r.Key() }

	if got := Finally(ctx, rop.Ok(1), onOk, onErr); got != "ok" {
		t.Fatalf("expected ok, got %s", got)
	}
	if got := Finally(ctx, Fail[int](ctx, nil, "E"), onOk, onErr); got != "error:E" {
		t.Fatalf("expected error:E, got %s", got)
	}
}

func TestFailOnError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	in := Succeed(ctx, 1)
	if r := FailOnError(ctx, in, func(context.Context, int) error { return nil }); r.Id() != in.Id() {
		t.Fatalf("expected input back, got %v", r)
	}
	if r := FailOnError(ctx, in, func(context.Context, int) error { return errors.New("x") }); !r.IsError() {
		t.Fatalf("expected error, got %v", r)
	}
}
