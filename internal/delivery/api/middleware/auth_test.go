package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	mockService "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(m *mockService.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "MISSING_TOKEN",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN_FORMAT",
		},
		{
			name:   "token rejected",
			header: "Bearer expired",
			setup: func(m *mockService.MockTokenService) {
				m.On("ValidateAccessToken", "expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "token without subject",
			header: "Bearer anonymous",
			setup: func(m *mockService.MockTokenService) {
				m.On("ValidateAccessToken", "anonymous").Return(&service.Claims{}, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockService.MockTokenService) {
				m.On("ValidateAccessToken", "good").Return(&service.Claims{
					UserID: userID,
					Roles:  []string{"CUSTOMER", "UNKNOWN"},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			mw := NewAuthMiddleware(tokenSvc)
			c, rec := newAuthContext(tt.header)

			var actor any
			handler := mw.Authenticate(func(c echo.Context) error {
				actor, _ = GetActor(c)

				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))
				assert.Nil(t, actor)

				return
			}

			gotID, ok := GetUserID(c)
			require.True(t, ok)
			assert.Equal(t, userID, gotID)
			roles, ok := GetRoles(c)
			require.True(t, ok)
			assert.Equal(t, entity.Roles{entity.RoleCustomer}, roles)
			ctxUserID, ok := deliverycontext.GetUserIDFromContext(c.Request().Context())
			require.True(t, ok)
			assert.Equal(t, userID, ctxUserID)
			assert.NotNil(t, actor)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	mw := NewAuthMiddleware(mockService.NewMockTokenService(t))
	next := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("admin passes", func(t *testing.T) {
		c, rec := newAuthContext("")
		c.Set(contextKeyUserID, uuid.New())
		c.Set(contextKeyRoles, entity.Roles{entity.RoleAdmin})

		require.NoError(t, mw.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		c, rec := newAuthContext("")
		c.Set(contextKeyUserID, uuid.New())
		c.Set(contextKeyRoles, entity.Roles{entity.RoleCustomer})

		require.NoError(t, mw.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
	})

	t.Run("missing roles", func(t *testing.T) {
		c, rec := newAuthContext("")

		require.NoError(t, mw.RequireRole(entity.RoleAdmin)(next)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
