package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"

	return newEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewEcho_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/nowhere", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
	assert.Equal(t, "req-42", body.Meta.RequestID)
}

func TestNewEcho_RecoversFromPanics(t *testing.T) {
	e := newTestEcho()
	e.GET("/boom", func(echo.Context) error {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}
