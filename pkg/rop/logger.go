package rop

import (
	"context"
	"sync/atomic"
)

// Handler receives every Result whose construction is logged.
type Handler func(ctx context.Context, r Any)

// Logger is the logging configuration shared by the code that builds Results.
// Both flags start disabled and no handler is set. A nil *Logger never logs.
type Logger struct {
	logOk    atomic.Bool
	logError atomic.Bool
	handler  atomic.Pointer[Handler]
}

type LoggerOption func(*Logger)

func LogOk(enabled bool) LoggerOption {
	return func(l *Logger) {
		l.logOk.Store(enabled)
	}
}

func LogError(enabled bool) LoggerOption {
	return func(l *Logger) {
		l.logError.Store(enabled)
	}
}

func LogHandler(h Handler) LoggerOption {
	return func(l *Logger) {
		l.SetHandler(h)
	}
}

func NewLogger(opts ...LoggerOption) *Logger {
	l := &Logger{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Logger) SetLogOk(enabled bool) {
	l.logOk.Store(enabled)
}

func (l *Logger) SetLogError(enabled bool) {
	l.logError.Store(enabled)
}

func (l *Logger) SetHandler(h Handler) {
	if h == nil {
		l.handler.Store(nil)
		return
	}
	l.handler.Store(&h)
}

func (l *Logger) enabled(status Status, override *bool) bool {
	if override != nil {
		return *override
	}
	switch status {
	case StatusOk:
		return l.logOk.Load()
	case StatusError:
		return l.logError.Load()
	default:
		return false
	}
}

// emit hands r to the handler on its own goroutine. Whatever the handler
// does, including panicking, never reaches the constructor.
func (l *Logger) emit(ctx context.Context, r Any, override *bool) {
	if l == nil || !l.enabled(r.Status(), override) {
		return
	}

	h := l.handler.Load()
	if h == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	go func() {
		defer func() {
			_ = recover()
		}()
		(*h)(ctx, r)
	}()
}

type loggerKey struct{}

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFrom returns the logger stored by NewContext, or nil.
func LoggerFrom(ctx context.Context) *Logger {
	if ctx == nil {
		return nil
	}
	l, _ := ctx.Value(loggerKey{}).(*Logger)
	return l
}
