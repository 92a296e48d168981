// Package pipe builds replayable chains of steps over a Result.
//
// A pipe records an initial Result and a list of steps. Nothing runs while it
// is being built; Then and the other builder methods append a step and return
// the same pipe. Execute runs the chain from the initial Result: each step
// receives the previous Ok, and the first Error ends the run and becomes its
// outcome. Steps is the same run seen one Result at a time, starting with the
// initial Result and ending with the first Error.
//
// Every Execute and every Steps call replays all the steps. Nothing is cached
// between runs, so steps with side effects see them once per run.
//
// Steps are not protected against panics. A panicking step unwinds
// Sync.Execute and Sync.Steps, is raised again by the Future of
// Async.Execute, and is raised again in the consumer of Async.Steps. Use the
// Try adapters, or the try package, for calls that may fail that way.
//
// Sync runs on the caller's goroutine. Async runs its steps one after the
// other on a goroutine of its own. Once the context is done no further step
// or producer is started and a pending one is no longer waited for: the run
// ends with an Error tagged rop.TagAborted. A Result that is already settled,
// such as the literal initial Result of NewAsync or AsyncOf, is kept.
package pipe
