// Package match dispatches a Result to a handler chosen by its status and tag.
//
// Keys are "ok", "error", "ok:<tag>" and "error:<tag>". The most specific key
// wins: a tagged Result uses its "status:tag" handler when there is one and
// falls back to the bare status otherwise. When nothing matches the Result is
// returned unchanged, which is not a failure.
//
// Handler Results are normalized with rop.OkFromUnlessError: Errors and Oks
// pass through and an invalid zero Result becomes an Ok without data.
package match
