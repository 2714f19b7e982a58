package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LoggerConfig struct {
	Debug bool
}

// NewLogger builds a JSON production logger. Debug lowers the level to
// debug and adds stack traces to warnings.
func NewLogger(cfg *LoggerConfig, options ...zap.Option) (*zap.Logger, error) {
	if cfg == nil {
		cfg = &LoggerConfig{}
	}

	c := zap.NewProductionConfig()
	c.EncoderConfig.TimeKey = "timestamp"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	mergedOptions := append([]zap.Option{zap.WithCaller(true)}, options...)
	if cfg.Debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		c.Development = true
		mergedOptions = append(mergedOptions, zap.AddStacktrace(zap.WarnLevel))
	}

	return c.Build(mergedOptions...)
}
