package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestPage(t *testing.T) {
	c, rec := newContext()
	page := entity.NewPage([]int{7, 8}, 5, entity.PageRequest{Page: 2, Size: 2})

	require.NoError(t, Page(c, page, strconv.Itoa))

	var body struct {
		Data PageResponse[string] `json:"data"`
		Meta MetaInfo             `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-1", body.Meta.RequestID)
	assert.Equal(t, PageResponse[string]{
		Content:       []string{"7", "8"},
		TotalElements: 5,
		TotalPages:    3,
		Size:          2,
		Number:        2,
		First:         false,
		Last:          true,
	}, body.Data)
}

func TestHandleAppError(t *testing.T) {
	t.Run("client error keeps details", func(t *testing.T) {
		c, rec := newContext()
		err := errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("quantity must be positive"), "failed to add to cart")

		require.NoError(t, HandleAppError(c, err))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "quantity must be positive", body.Error.Details)
	})

	t.Run("forbidden drops details", func(t *testing.T) {
		c, rec := newContext()

		require.NoError(t, HandleAppError(c, domainerrors.ErrForbidden.WithDetails("admin only")))

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Nil(t, body.Error.Details)
	})

	t.Run("server errors are passed on", func(t *testing.T) {
		c, rec := newContext()

		err := HandleAppError(c, domainerrors.ErrOrderNumberExhausted.WrapMessage("retries"))

		assert.ErrorIs(t, err, domainerrors.ErrOrderNumberExhausted)
		assert.Zero(t, rec.Body.Len())
	})
}
