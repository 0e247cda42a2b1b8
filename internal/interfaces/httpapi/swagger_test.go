package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/football-league/internal/platform/logging"
	"github.com/stretchr/testify/assert"
)

func TestDocsRoutes(t *testing.T) {
	h := NewHandler(Services{}, logging.NewNop())
	router := NewRouter(h, logging.NewNop(), RouterConfig{SwaggerEnabled: true})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, openAPIPath, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi: 3.0.3")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "url: '/openapi.yaml'")
}

func TestDocsRoutes_Disabled(t *testing.T) {
	router := NewRouter(NewHandler(Services{}, logging.NewNop()), logging.NewNop(), RouterConfig{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, openAPIPath, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
