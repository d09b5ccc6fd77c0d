package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{name: "reuses client id", header: "client-id-1", wantReuse: true},
		{name: "generates when missing", header: ""},
		{name: "replaces oversized id", header: strings.Repeat("x", maxInboundRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, ctxID)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			if tt.wantReuse {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestAccessLogMiddleware(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	t.Run("logs completed request", func(t *testing.T) {
		var buf bytes.Buffer
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/products?page=1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetPath("/api/products")

		handler := NewAccessLogMiddleware(newBufferedLogger(&buf), cfg).Handle(func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})
		require.NoError(t, handler(c))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "HTTP request", record["msg"])
		assert.Equal(t, "INFO", record["level"])
		assert.Equal(t, "/api/products", record["route"])
		assert.Equal(t, "page=1", record["query"])
		assert.EqualValues(t, http.StatusOK, record["status"])
	})

	t.Run("handler error is rendered before logging", func(t *testing.T) {
		var buf bytes.Buffer
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/orders/1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewAccessLogMiddleware(newBufferedLogger(&buf), cfg).Handle(func(echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound, "missing")
		})
		require.NoError(t, handler(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "WARN", record["level"])
		assert.EqualValues(t, http.StatusNotFound, record["status"])
	})

	t.Run("skips health probe", func(t *testing.T) {
		var buf bytes.Buffer
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := NewAccessLogMiddleware(newBufferedLogger(&buf), cfg).Handle(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		assert.Zero(t, buf.Len())
	})
}
