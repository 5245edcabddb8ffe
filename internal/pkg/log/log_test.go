package log

import (
	"context"
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(otelzap.New(zap.New(core)))

	l.Error(context.Background(), "error accept booking", errors.New("boom"), "booking-1", zap.Int("quantity", 2))

	entries := logs.All()
	assert.Len(t, entries, 1)
	ctxMap := entries[0].ContextMap()
	assert.Equal(t, "boom", ctxMap["error"])
	assert.Equal(t, "booking-1", ctxMap["arg1"])
	assert.Equal(t, int64(2), ctxMap["quantity"])
}

func TestInitReplacesGlobal(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Init(otelzap.New(zap.New(core)))

	GetLogger().Info(context.Background(), "hello")

	assert.Equal(t, 1, logs.Len())
}

func TestWatermillAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	adapter := NewWatermillAdapter(zap.New(core)).With(watermill.LogFields{"topic": "payment_confirmed"})

	adapter.Error("handler failed", errors.New("boom"), watermill.LogFields{"message_uuid": "1"})

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "payment_confirmed", entries[0].ContextMap()["topic"])
	assert.Equal(t, "1", entries[0].ContextMap()["message_uuid"])
}
