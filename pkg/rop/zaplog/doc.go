// Package zaplog connects rop.Logger to go.uber.org/zap.
package zaplog
