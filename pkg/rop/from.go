package rop

// OkFrom returns r as an Ok.
//
// An Ok without a tag argument comes back unchanged. Otherwise a new Ok is
// built from r's data: the given tag replaces r's tag (an empty one removes
// it), no tag argument keeps r's. An invalid r yields an Ok without data.
func OkFrom[T any](r Result[T], tag ...string) Result[T] {
	return from(StatusOk, r, tag, nil)
}

// ErrorFrom is the Error counterpart of OkFrom. The cause of an Error input
// is kept.
func ErrorFrom[T any](r Result[T], tag ...string) Result[T] {
	return from(StatusError, r, tag, nil)
}

// OkFromUnlessError returns an Error unchanged and OkFrom(r, tag...) otherwise.
func OkFromUnlessError[T any](r Result[T], tag ...string) Result[T] {
	if r.IsError() {
		return r
	}
	return OkFrom(r, tag...)
}

// ErrorFromUnlessOk returns an Ok unchanged and ErrorFrom(r, tag...) otherwise.
func ErrorFromUnlessOk[T any](r Result[T], tag ...string) Result[T] {
	if r.IsOk() {
		return r
	}
	return ErrorFrom(r, tag...)
}

// OkFromWith and ErrorFromWith are OkFrom and ErrorFrom taking options for
// the Result they build, if any.
func OkFromWith[T any](r Result[T], opts []Option, tag ...string) Result[T] {
	return from(StatusOk, r, tag, opts)
}

func ErrorFromWith[T any](r Result[T], opts []Option, tag ...string) Result[T] {
	return from(StatusError, r, tag, opts)
}

func from[T any](status Status, r Result[T], tag []string, opts []Option) Result[T] {
	newTag, override := tagOption(tag)
	if r.status == status && !override {
		return r
	}

	if !override {
		newTag = r.tag
	}
	opts = append(opts[:len(opts):len(opts)], WithTag(newTag))

	var err error
	if status == StatusError {
		err = r.err
	}

	return build(status, r.data, r.hasData, err, opts)
}
