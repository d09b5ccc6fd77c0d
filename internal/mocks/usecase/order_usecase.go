package usecase

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockOrderUsecase struct {
	mock.Mock
}

func NewMockOrderUsecase(t *testing.T) *MockOrderUsecase {
	m := &MockOrderUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderUsecase) order(args mock.Arguments) (*entity.Order, error) {
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderUsecase) CreateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	return m.order(m.Called(ctx, userID, input))
}

func (m *MockOrderUsecase) ListUserOrders(ctx context.Context, userID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	args := m.Called(ctx, userID, page)
	orders, _ := args.Get(0).(*entity.Page[*entity.Order])

	return orders, args.Error(1)
}

func (m *MockOrderUsecase) GetUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	return m.order(m.Called(ctx, userID, orderID))
}

func (m *MockOrderUsecase) GetUserOrderByNumber(ctx context.Context, userID uuid.UUID, orderNumber string) (*entity.Order, error) {
	return m.order(m.Called(ctx, userID, orderNumber))
}

func (m *MockOrderUsecase) GetReceiptQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	args := m.Called(ctx, userID, orderID)
	png, _ := args.Get(0).([]byte)

	return png, args.Error(1)
}
