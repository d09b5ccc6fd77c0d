package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCartHandler(t *testing.T) (*CartHandler, *mockUsecase.MockCartUsecase) {
	cartUC := mockUsecase.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: cartUC}), cartUC
}

func sampleCart(userID uuid.UUID) *entity.Cart {
	gpu := &entity.Product{ID: uuid.New(), Name: "RTX 4090", Price: decimal.NewFromInt(1000), StockQuantity: 3, ImageURLs: []string{"https://img/gpu.png"}}
	ram := &entity.Product{ID: uuid.New(), Name: "DDR5 32GB", Price: decimal.RequireFromString("124.50"), StockQuantity: 10}

	return &entity.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items: []*entity.CartItem{
			{ID: uuid.New(), ProductID: gpu.ID, Product: gpu, Quantity: 2},
			{ID: uuid.New(), ProductID: ram.ID, Product: ram, Quantity: 1},
		},
	}
}

func TestCartHandler_GetCart(t *testing.T) {
	h, cartUC := newTestCartHandler(t)
	userID := uuid.New()
	cartUC.On("GetCart", mock.Anything, userID).Return(sampleCart(userID), nil).Once()

	c, rec := newTestContext(t, http.MethodGet, "/api/cart", nil)
	authenticateAs(c, userID, entity.RoleCustomer)

	require.NoError(t, h.GetCart(c))
	assertStatus(t, rec, http.StatusOK)

	var got CartView
	decodeData(t, rec, &got)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "2000.00", got.Items[0].Subtotal)
	assert.Equal(t, "https://img/gpu.png", got.Items[0].ProductImage)
	assert.Equal(t, "124.50", got.Items[1].Price)
	assert.Equal(t, "2124.50", got.Total)
	assert.Equal(t, 3, got.ItemCount)
}

func TestCartHandler_AddToCart(t *testing.T) {
	t.Run("insufficient stock", func(t *testing.T) {
		h, cartUC := newTestCartHandler(t)
		userID, productID := uuid.New(), uuid.New()
		cartUC.On("AddToCart", mock.Anything, userID, &usecase.AddToCartInput{ProductID: productID, Quantity: 5}).
			Return(nil, domainerrors.ErrInsufficientStock.WithDetails("only 3 units available")).Once()

		c, rec := newTestContext(t, http.MethodPost, "/api/cart/items", map[string]any{
			"productId": productID.String(),
			"quantity":  5,
		})
		authenticateAs(c, userID, entity.RoleCustomer)

		require.NoError(t, h.AddToCart(c))
		assertStatus(t, rec, http.StatusBadRequest)
		body := decodeError(t, rec)
		assert.Equal(t, "INSUFFICIENT_STOCK", body.Error.Code)
		assert.Equal(t, "only 3 units available", body.Error.Details)
	})

	t.Run("zero quantity is rejected before the usecase", func(t *testing.T) {
		h, _ := newTestCartHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/cart/items", map[string]any{
			"productId": uuid.NewString(),
			"quantity":  0,
		})
		authenticateAs(c, uuid.New(), entity.RoleCustomer)

		require.NoError(t, h.AddToCart(c))
		assertStatus(t, rec, http.StatusBadRequest)
		assert.Contains(t, rec.Body.String(), `"field":"quantity"`)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		h, _ := newTestCartHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/cart/items", map[string]any{})

		require.NoError(t, h.AddToCart(c))
		assertStatus(t, rec, http.StatusUnauthorized)
	})
}

func TestCartHandler_UpdateCartItem(t *testing.T) {
	t.Run("passes the quantity through", func(t *testing.T) {
		h, cartUC := newTestCartHandler(t)
		userID, itemID := uuid.New(), uuid.New()
		cartUC.On("UpdateCartItem", mock.Anything, userID, itemID, 0).
			Return(&entity.Cart{ID: uuid.New(), UserID: userID}, nil).Once()

		c, rec := newTestContext(t, http.MethodPut, "/api/cart/items/"+itemID.String()+"?quantity=0", nil)
		withPathParams(c, "itemId", itemID.String())
		authenticateAs(c, userID, entity.RoleCustomer)

		require.NoError(t, h.UpdateCartItem(c))
		assertStatus(t, rec, http.StatusOK)

		var got CartView
		decodeData(t, rec, &got)
		assert.Empty(t, got.Items)
		assert.Equal(t, "0.00", got.Total)
	})

	t.Run("missing quantity", func(t *testing.T) {
		h, _ := newTestCartHandler(t)
		itemID := uuid.New()
		c, rec := newTestContext(t, http.MethodPut, "/api/cart/items/"+itemID.String(), nil)
		withPathParams(c, "itemId", itemID.String())
		authenticateAs(c, uuid.New(), entity.RoleCustomer)

		require.NoError(t, h.UpdateCartItem(c))
		assertStatus(t, rec, http.StatusBadRequest)
	})
}
