package log

import (
	"context"
	"fmt"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logger used by usecases and repositories.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}

type logger struct {
	zap *otelzap.Logger
}

var (
	mu     sync.RWMutex
	global Logger = &logger{zap: otelzap.New(zap.NewNop())}
)

// SetupLogger builds the production otelzap logger.
func SetupLogger() *otelzap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		l = zap.NewExample()
	}

	return otelzap.New(l, otelzap.WithMinLevel(zapcore.InfoLevel), otelzap.WithTraceIDField(true))
}

// Setup builds a development logger, used by tests and local runs.
func Setup() *otelzap.Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		l = zap.NewNop()
	}
	return otelzap.New(l)
}

func Init(l *otelzap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = New(l)
}

func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func New(l *otelzap.Logger) Logger {
	return &logger{zap: l}
}

func (l *logger) Debug(ctx context.Context, msg string, args ...any) {
	l.zap.Ctx(ctx).Debug(msg, fields(args)...)
}

func (l *logger) Info(ctx context.Context, msg string, args ...any) {
	l.zap.Ctx(ctx).Info(msg, fields(args)...)
}

func (l *logger) Warn(ctx context.Context, msg string, args ...any) {
	l.zap.Ctx(ctx).Warn(msg, fields(args)...)
}

func (l *logger) Error(ctx context.Context, msg string, args ...any) {
	l.zap.Ctx(ctx).Error(msg, fields(args)...)
}

// fields turns loose arguments into zap fields. Errors become the "error"
// field, ready-made zap fields pass through, everything else is positional.
func fields(args []any) []zapcore.Field {
	out := make([]zapcore.Field, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case zapcore.Field:
			out = append(out, v)
		case error:
			out = append(out, zap.Error(v))
		default:
			out = append(out, zap.Any(fmt.Sprintf("arg%d", i), v))
		}
	}
	return out
}
