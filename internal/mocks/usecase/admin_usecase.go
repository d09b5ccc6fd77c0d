package usecase

import (
	"context"
	"testing"

	"storefront/internal/domain/analytics"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockAdminUsecase struct {
	mock.Mock
}

func NewMockAdminUsecase(t *testing.T) *MockAdminUsecase {
	m := &MockAdminUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAdminUsecase) orderPage(args mock.Arguments) (*entity.Page[*entity.Order], error) {
	page, _ := args.Get(0).(*entity.Page[*entity.Order])

	return page, args.Error(1)
}

func (m *MockAdminUsecase) GetDashboardStats(ctx context.Context, actor usecase.Actor) (*analytics.DashboardStats, error) {
	args := m.Called(ctx, actor)
	stats, _ := args.Get(0).(*analytics.DashboardStats)

	return stats, args.Error(1)
}

func (m *MockAdminUsecase) ListOrders(ctx context.Context, actor usecase.Actor, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	return m.orderPage(m.Called(ctx, actor, page))
}

func (m *MockAdminUsecase) ListOrdersByStatus(ctx context.Context, actor usecase.Actor, status string, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	return m.orderPage(m.Called(ctx, actor, status, page))
}

func (m *MockAdminUsecase) SearchOrders(ctx context.Context, actor usecase.Actor, keyword string, page entity.PageRequest) (*entity.Page[*entity.Order], error) {
	return m.orderPage(m.Called(ctx, actor, keyword, page))
}

func (m *MockAdminUsecase) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	args := m.Called(ctx, actor, orderID)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockAdminUsecase) UpdateOrderStatus(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	args := m.Called(ctx, actor, orderID, input)
	order, _ := args.Get(0).(*entity.Order)

	return order, args.Error(1)
}

func (m *MockAdminUsecase) ListUsers(ctx context.Context, actor usecase.Actor, page entity.PageRequest) (*entity.Page[*entity.UserSummary], error) {
	args := m.Called(ctx, actor, page)
	users, _ := args.Get(0).(*entity.Page[*entity.UserSummary])

	return users, args.Error(1)
}
