package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"bogus":   LevelInfo,
		"":        LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerWritesKeyValuesAndTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(&buf), LevelInfo)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.WarnContext(ctx, "season summary failed", "season", "2024-25", "error", errors.New("boom"))
	logger.Debug("dropped below level")

	var line map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "season summary failed", line["msg"])
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "2024-25", line["season"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", line["trace_id"])
	assert.Equal(t, "00f067aa0ba902b7", line["span_id"])
}

func TestZapFieldsOddArgs(t *testing.T) {
	fields := zapFields([]any{"season", "2024-25", 42, "x", "dangling"})
	require.Len(t, fields, 3)
	assert.Equal(t, "season", fields[0].Key)
	assert.Equal(t, "arg", fields[1].Key)
	assert.Equal(t, "dangling", fields[2].Key)
}

func TestDefaultNeverNil(t *testing.T) {
	SetDefault(nil)
	assert.NotNil(t, Default())
	var nilLogger *Logger
	nilLogger.Info("ignored")
	assert.NoError(t, nilLogger.Sync())
}
