package internallogger

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption adjusts the zap configuration before the adapter is built.
type LoggerOption func(*zap.Config, *zapcore.Level, *int)

// ZapLoggerAdapter implements types.Logger on top of zap, with dynamically
// attachable sinks.
type ZapLoggerAdapter struct {
	logger        *zap.Logger
	atomicLevel   zap.AtomicLevel
	callerDepth   int
	mu            sync.Mutex
	sinks         map[string]zapcore.Core
	baseCore      zapcore.Core
	initialFields []zap.Field
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	config := zap.NewProductionConfig()
	level := zapcore.InfoLevel
	callerDepth := 3 // Default caller depth

	for _, option := range options {
		option(&config, &level, &callerDepth)
	}

	atomicLevel := zap.NewAtomicLevelAt(level)
	baseCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(standardEncoderConfig()),
		zapcore.Lock(os.Stdout),
		atomicLevel,
	)

	initialFields := make([]zap.Field, 0, len(config.InitialFields))
	for key, value := range config.InitialFields {
		initialFields = append(initialFields, zap.Any(key, value))
	}

	z := &ZapLoggerAdapter{
		atomicLevel:   atomicLevel,
		callerDepth:   callerDepth,
		sinks:         make(map[string]zapcore.Core),
		baseCore:      baseCore,
		initialFields: initialFields,
	}
	z.rebuildLocked()
	return z
}

// rebuildLocked recreates the zap logger from the base core plus all sinks.
// Callers must hold mu, except during construction.
func (z *ZapLoggerAdapter) rebuildLocked() {
	cores := make([]zapcore.Core, 0, len(z.sinks)+1)
	cores = append(cores, z.baseCore)
	for _, core := range z.sinks {
		cores = append(cores, core)
	}
	z.logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(z.callerDepth)).
		With(z.initialFields...)
}

func standardEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.RFC3339Nano))
	}
	return cfg
}
