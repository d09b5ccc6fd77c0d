package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"storefront/config"
	"storefront/internal/delivery/api/validator"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{Store: &config.StoreConfig{DefaultPageSize: 12, MaxPageSize: 100}}
}

func newTestContext(t *testing.T, method, target string, body any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader *bytes.Reader
	if raw, ok := body.(string); ok {
		reader = bytes.NewReader([]byte(raw))
	} else if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

// withPathParams sets route parameters the way the router would.
func withPathParams(c echo.Context, pairs ...string) {
	var names, values []string
	for i := 0; i+1 < len(pairs); i += 2 {
		names = append(names, pairs[i])
		values = append(values, pairs[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
}

// authenticateAs mimics the auth middleware.
func authenticateAs(c echo.Context, userID uuid.UUID, roles ...entity.Role) {
	c.Set("userID", userID)
	c.Set("roles", entity.Roles(roles))
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()

	envelope := struct {
		Data any `json:"data"`
	}{Data: v}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var body errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	require.Equal(t, want, rec.Code, "body: %s", rec.Body.String())
}
