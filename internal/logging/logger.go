package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.SugaredLogger

// Options selects the zap preset and the minimum level
type Options struct {
	// Env "production" selects the production preset, anything else development
	Env string
	// Level overrides the preset level ("debug", "info", "warn", "error"); empty keeps it
	Level string
}

// Init builds the global JSON logger
func Init(opts Options) error {
	config := zap.NewDevelopmentConfig()
	if opts.Env == "production" {
		config = zap.NewProductionConfig()
	}
	config.Encoding = "json"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if opts.Level != "" {
		level, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		config.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := config.Build(zap.Fields(zap.String("service", "flightdeck")))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	SetLogger(logger)
	return nil
}

// SetLogger replaces the global logger; tests install an observer core with it
func SetLogger(logger *zap.Logger) {
	globalLogger = logger.Sugar()
}

// GetLogger returns the global logger, a no-op one before Init
func GetLogger() *zap.SugaredLogger {
	if globalLogger == nil {
		globalLogger = zap.NewNop().Sugar()
	}
	return globalLogger
}

// Close flushes buffered entries
func Close() error {
	if globalLogger == nil {
		return nil
	}
	return globalLogger.Sync()
}

func Info(message string, fields ...interface{}) {
	GetLogger().Infow(message, fields...)
}

func Debug(message string, fields ...interface{}) {
	GetLogger().Debugw(message, fields...)
}

func Warn(message string, fields ...interface{}) {
	GetLogger().Warnw(message, fields...)
}

func Error(message string, fields ...interface{}) {
	GetLogger().Errorw(message, fields...)
}

// Fatal logs and exits with status 1
func Fatal(message string, fields ...interface{}) {
	GetLogger().Fatalw(message, fields...)
	os.Exit(1)
}

// WithRequest scopes a logger to one request
func WithRequest(requestID string, endpoint string) *zap.SugaredLogger {
	return GetLogger().With(
		"request_id", requestID,
		"endpoint", endpoint,
	)
}
