// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions are the building blocks behind the step
// adapters of the pipe package.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/ValidateAll: fail Ok values that do not pass a check
// - Switch: move from Result[In] to Result[Out]
// - Map: transform the data of an Ok
// - Try: call a function (Out, error) and convert the error to an Error
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
// - Join: fold several result functions into one
//
// Errors always pass through untouched; Switch, Map and Try recast them to
// the output type.
package solo
