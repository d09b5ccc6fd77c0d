package usecase

import (
	"context"

	"storefront/internal/domain/analytics"
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateOrderStatusInput changes an order's status. Nil fields leave the stored value untouched.
type UpdateOrderStatusInput struct {
	Status         string
	TrackingNumber *string
	Notes          *string
}

// AdminUsecase defines the admin console operations. Every call fails with a forbidden error
// unless the actor is an administrator.
type AdminUsecase interface {
	GetDashboardStats(ctx context.Context, actor Actor) (*analytics.DashboardStats, error)

	ListOrders(ctx context.Context, actor Actor, page entity.PageRequest) (*entity.Page[*entity.Order], error)
	ListOrdersByStatus(ctx context.Context, actor Actor, status string, page entity.PageRequest) (*entity.Page[*entity.Order], error)
	SearchOrders(ctx context.Context, actor Actor, keyword string, page entity.PageRequest) (*entity.Page[*entity.Order], error)
	GetOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, actor Actor, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)

	ListUsers(ctx context.Context, actor Actor, page entity.PageRequest) (*entity.Page[*entity.UserSummary], error)
}
