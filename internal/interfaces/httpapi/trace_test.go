package httpapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHandlerSpan(t *testing.T) {
	tests := map[string]bool{
		"httpapi.Handler.GetTable":    true,
		"httpapi.Handler.SaveReferee": true,
		"httpapi.Handler.":            false,
		"httpapi.RequestLogging":      false,
		"httpapi.writeError":          false,
		"usecase.MatchService.Create": false,
	}
	for name, want := range tests {
		assert.Equal(t, want, isHandlerSpan(name), name)
	}
}

func TestStartSpan_NoParentIsNoop(t *testing.T) {
	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.GetTable")
	defer span.End()

	assert.Equal(t, ctx, got)
	assert.False(t, span.SpanContext().IsValid())
}

func TestShouldTraceRequest(t *testing.T) {
	for _, path := range []string{"/healthz", "/health", "/livez", "/readyz", " /HEALTHZ "} {
		assert.False(t, shouldTraceRequest(path), path)
	}
	for _, path := range []string{"/v1/table", "/v1/matches/live", "/", "/docs"} {
		assert.True(t, shouldTraceRequest(path), path)
	}
}
