package repository

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/analytics"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository(t *testing.T) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderRepository) FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderRepository) FindOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	args := m.Called(ctx, orderNumber)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, filter repository.OrderFilter, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	args := m.Called(ctx, filter, page)
	result, _ := args.Get(0).(*entity.Page[*entity.Order])

	return result, args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderFulfilment(ctx context.Context, order *entity.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) CountOrders(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	count, _ := args.Get(0).(int64)

	return count, args.Error(1)
}

func (m *MockOrderRepository) CountOrdersByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	args := m.Called(ctx)
	counts, _ := args.Get(0).(map[entity.OrderStatus]int64)

	return counts, args.Error(1)
}

func (m *MockOrderRepository) SumPaidRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	sum, _ := args.Get(0).(decimal.Decimal)

	return sum, args.Error(1)
}

func (m *MockOrderRepository) FindOrderSnapshotsSince(ctx context.Context, since time.Time) ([]analytics.OrderSnapshot, error) {
	args := m.Called(ctx, since)
	snapshots, _ := args.Get(0).([]analytics.OrderSnapshot)

	return snapshots, args.Error(1)
}

func (m *MockOrderRepository) FindPaidSaleLines(ctx context.Context) ([]analytics.SaleLine, error) {
	args := m.Called(ctx)
	lines, _ := args.Get(0).([]analytics.SaleLine)

	return lines, args.Error(1)
}
