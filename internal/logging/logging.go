package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// wraps a sugared zap logger so callers don't import zap directly
type Logger struct {
	*zap.SugaredLogger
}

func NewLogger(verbose bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		// fall back to a no-op logger rather than failing startup
		return &Logger{zap.NewNop().Sugar()}
	}
	return &Logger{logger.Sugar()}
}

// logger that discards everything, for tests
func NewNop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
