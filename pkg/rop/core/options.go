package core

import "context"

type OptionKey string

const (
	TraceOptionKey OptionKey = "trace_options"
)

type TraceOptions struct {
	Buffer int
}

// WithTraceBuffer sets the channel buffer used by asynchronous step traces.
func WithTraceBuffer(ctx context.Context, size int) context.Context {
	return context.WithValue(ctx, TraceOptionKey, TraceOptions{Buffer: size})
}

func GetTraceBuffer(ctx context.Context, defaultBuffer int) int {
	options, ok := ctx.Value(TraceOptionKey).(TraceOptions)
	if ok && options.Buffer >= 0 {
		return options.Buffer
	}
	return defaultBuffer
}
