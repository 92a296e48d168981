// Package try turns failing calls into Results.
//
// A call fails when it returns a non-nil error or panics. Failures go through
// a catch handler (by default an untagged Error carrying the failure, never
// logged), everything else becomes Ok. A Result returned by SyncResult or
// AsyncResult callbacks is kept as is.
//
// Async and AsyncResult run the call on a goroutine and return a
// core.Future. The context is checked before the call starts and watched
// while it runs: a cancelled context resolves the Future with an Error tagged
// rop.TagAborted, whatever the catch handler would say. The call itself is not
// interrupted; its outcome is discarded.
//
// None of the functions panic, and every Future resolves.
package try
