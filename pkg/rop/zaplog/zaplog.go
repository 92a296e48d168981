package zaplog

import (
	"context"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/railway/pkg/rop"
)

const (
	msgOk    = "result ok"
	msgError = "result error"
)

// Handler returns a rop.Handler writing each Result to logger. Oks are logged
// at info level and Errors at warn level.
func Handler(logger *zap.Logger) rop.Handler {
	return func(_ context.Context, r rop.Any) {
		fields := Fields(r)
		if r.Status() == rop.StatusError {
			logger.Warn(msgError, fields...)
			return
		}
		logger.Info(msgOk, fields...)
	}
}

func Fields(r rop.Any) []zapcore.Field {
	fields := []zapcore.Field{
		zap.Stringer("status", r.Status()),
		zap.String("id", r.Id().String()),
		zap.Time("created_at", r.CreatedAt()),
		zap.Bool("has_data", r.HasData()),
	}
	if r.Tag() != "" {
		fields = append(fields, zap.String("tag", r.Tag()))
	}
	if err := r.Err(); err != nil {
		fields = append(fields, zap.Error(err))
	}
	return fields
}

// NewLogger builds a rop.Logger writing to logger with the given flags.
func NewLogger(logger *zap.Logger, logOk, logError bool) *rop.Logger {
	return rop.NewLogger(
		rop.LogOk(logOk),
		rop.LogError(logError),
		rop.LogHandler(Handler(logger)),
	)
}

func insideContainer() bool {
	return os.Getenv("GO_ENVIRONMENT") == "production"
}

// New returns the default zap logger: production configuration when
// GO_ENVIRONMENT is "production", a colored development one otherwise.
func New(opts ...zap.Option) *zap.Logger {
	var logCfg zap.Config
	if insideContainer() {
		logCfg = zap.NewProductionConfig()
	} else {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	logger, err := logCfg.Build(opts...)
	if err != nil {
		log.Panicf("could not create logger: %v", err)
	}

	return logger
}
