// Package core contains the asynchronous plumbing shared by the try and pipe
// packages: Future values, the Drive helper that waits on a step while
// watching the context, Send, and context carried options. It does
// not define business logic.
package core
