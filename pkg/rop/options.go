package rop

import "context"

type options struct {
	ctx    context.Context
	logger *Logger
	log    *bool
	tag    string
}

// Option configures a single Result construction.
type Option func(*options)

// WithTag sets the tag. An empty tag means no tag.
func WithTag(tag string) Option {
	return func(o *options) {
		o.tag = tag
	}
}

// WithLog overrides the logger's per-status flag for this construction.
func WithLog(enabled bool) Option {
	return func(o *options) {
		o.log = &enabled
	}
}

func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithContext takes the logger from ctx (see NewContext) unless WithLogger
// is also given. ctx is handed to the log handler.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

func collect(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.ctx == nil {
		o.ctx = context.Background()
	} else if o.logger == nil {
		o.logger = LoggerFrom(o.ctx)
	}
	return o
}

// tagOption turns the variadic tag of the From helpers into options.
// The second result is false when no tag was given.
func tagOption(tag []string) (string, bool) {
	if len(tag) == 0 {
		return "", false
	}
	return tag[0], true
}
