package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AuthUC: authUC}), authUC
}

func TestAuthHandler_Register(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	user := &entity.User{ID: uuid.New(), FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Role: entity.RoleCustomer, Enabled: true}

	authUC.On("Register", mock.Anything, &usecase.RegisterInput{
		FirstName: "Asha",
		LastName:  "Rao",
		Email:     "asha@example.com",
		Password:  "s3cret!",
	}).Return(&usecase.AuthOutput{AccessToken: "access", RefreshToken: "refresh", User: user}, nil).Once()

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", map[string]string{
		"firstName": "Asha",
		"lastName":  "Rao",
		"email":     "asha@example.com",
		"password":  "s3cret!",
	})

	require.NoError(t, h.Register(c))
	assertStatus(t, rec, http.StatusCreated)

	var got AuthView
	decodeData(t, rec, &got)
	assert.Equal(t, "access", got.AccessToken)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.Equal(t, "Bearer", got.TokenType)
	require.NotNil(t, got.User)
	assert.Equal(t, "CUSTOMER", got.User.Role)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_ValidationFailed(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", map[string]string{
		"firstName": "Asha",
		"lastName":  "Rao",
		"email":     "not-an-email",
		"password":  "s3cret!",
	})

	require.NoError(t, h.Register(c))
	assertStatus(t, rec, http.StatusBadRequest)

	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Contains(t, rec.Body.String(), `"field":"email"`)
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", `{"email":`)

	require.NoError(t, h.Register(c))
	assertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	authUC.On("Login", mock.Anything, &usecase.LoginInput{Email: "asha@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials).Once()

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "asha@example.com",
		"password": "wrong",
	})

	require.NoError(t, h.Login(c))
	assertStatus(t, rec, http.StatusUnauthorized)
	assert.Equal(t, "INVALID_CREDENTIALS", decodeError(t, rec).Error.Code)
}

func TestAuthHandler_Logout(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	authUC.On("Logout", mock.Anything, "refresh").Return(nil).Once()

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/logout", map[string]string{"refreshToken": "refresh"})

	require.NoError(t, h.Logout(c))
	assertStatus(t, rec, http.StatusOK)
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		c, rec := newTestContext(t, http.MethodGet, "/api/auth/me", nil)

		require.NoError(t, h.Me(c))
		assertStatus(t, rec, http.StatusUnauthorized)
	})

	t.Run("returns the profile", func(t *testing.T) {
		h, authUC := newTestAuthHandler(t)
		userID := uuid.New()
		authUC.On("GetCurrentUser", mock.Anything, userID).
			Return(&entity.User{ID: userID, Email: "asha@example.com", Role: entity.RoleAdmin}, nil).Once()

		c, rec := newTestContext(t, http.MethodGet, "/api/auth/me", nil)
		authenticateAs(c, userID, entity.RoleAdmin)

		require.NoError(t, h.Me(c))
		assertStatus(t, rec, http.StatusOK)

		var got UserView
		decodeData(t, rec, &got)
		assert.Equal(t, userID, got.ID)
		assert.Equal(t, "ADMIN", got.Role)
	})
}
