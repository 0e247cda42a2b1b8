package observability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestIsQuietAccessLog(t *testing.T) {
	assert.True(t, isQuietAccessLog("http_request", []any{"http_path", "/healthz"}))
	assert.True(t, isQuietAccessLog("http_request", []any{"http_method", "GET", "http_path", "/openapi.yaml"}))
	assert.False(t, isQuietAccessLog("http_request", []any{"http_path", "/v1/table"}))
	assert.False(t, isQuietAccessLog("recompute season failed", []any{"http_path", "/healthz"}))
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"season_id", "season-2025-2026", "attempt", 2, 7, "x", "payload"})
	require.Len(t, attrs, 4)

	assert.Equal(t, "season_id", attrs[0].Key)
	assert.Equal(t, "season-2025-2026", attrs[0].Value.AsString())
	assert.Equal(t, "attempt", attrs[1].Key)
	assert.Equal(t, int64(2), attrs[1].Value.AsInt64())
	assert.Equal(t, "arg_2", attrs[2].Key)
	assert.Equal(t, "payload", attrs[3].Key)
	assert.Equal(t, otellog.KindEmpty, attrs[3].Value.Kind())
}

func TestLogValue(t *testing.T) {
	v := logValue(map[string]any{"goals": 11, "clean_sheet": true}, 0)
	require.Equal(t, otellog.KindMap, v.Kind())
	assert.Len(t, v.AsMap(), 2)

	assert.Equal(t, "boom", logValue(errors.New("boom"), 0).AsString())
	assert.Equal(t, otellog.KindSlice, logValue([]int{1, 2, 3}, 0).Kind())
	assert.Equal(t, 1.5, logValue(float32(1.5), 0).AsFloat64())

	var nilPtr *int
	assert.Equal(t, otellog.KindEmpty, logValue(nilPtr, 0).Kind())
}

func TestSeverityOf(t *testing.T) {
	assert.Equal(t, otellog.SeverityDebug, severityOf(zapcore.DebugLevel))
	assert.Equal(t, otellog.SeverityWarn, severityOf(zapcore.WarnLevel))
	assert.Equal(t, otellog.SeverityError, severityOf(zapcore.ErrorLevel))
	assert.Equal(t, otellog.SeverityFatal, severityOf(zapcore.FatalLevel))
}
