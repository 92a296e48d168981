// Package rop defines Result[T], a value that is either an Ok or an Error.
//
// Both variants carry optional data of type T and an optional tag, a string
// used to tell apart Results of the same status. Errors also carry an
// optional error cause. Results are built only by the constructors (Ok,
// OkEmpty, Error, ErrorWithData) and by the normalization helpers (OkFrom,
// ErrorFrom, OkFromUnlessError, ErrorFromUnlessOk); the zero Result is not
// valid and is rejected by IsOk, IsError and IsResult.
//
// Construction can be logged through a Logger, an explicit configuration
// object passed with WithLogger or carried by a context (NewContext). Logging
// is asynchronous and never affects the Result being built.
package rop
