package usecase

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCartUsecase struct {
	mock.Mock
}

func NewMockCartUsecase(t *testing.T) *MockCartUsecase {
	m := &MockCartUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCartUsecase) cart(args mock.Arguments) (*entity.Cart, error) {
	cart, _ := args.Get(0).(*entity.Cart)

	return cart, args.Error(1)
}

func (m *MockCartUsecase) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return m.cart(m.Called(ctx, userID))
}

func (m *MockCartUsecase) AddToCart(ctx context.Context, userID uuid.UUID, input *usecase.AddToCartInput) (*entity.Cart, error) {
	return m.cart(m.Called(ctx, userID, input))
}

func (m *MockCartUsecase) UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.Cart, error) {
	return m.cart(m.Called(ctx, userID, itemID, quantity))
}

func (m *MockCartUsecase) RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error) {
	return m.cart(m.Called(ctx, userID, itemID))
}

func (m *MockCartUsecase) ClearCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return m.cart(m.Called(ctx, userID))
}
