package repository

import (
	"context"
	"time"

	"storefront/internal/domain/analytics"
	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNumberConflict is returned when the generated order number is already taken.
	// The failed insert is rolled back to a savepoint so the surrounding transaction stays usable.
	ErrOrderNumberConflict = errors.New("order number already exists")
)

// OrderFilter narrows admin order listings. Zero fields do not filter.
type OrderFilter struct {
	UserID  *uuid.UUID
	Status  entity.OrderStatus
	Keyword string // Case-insensitive substring over order number, customer name and email.
}

// OrderRepository defines the persistence operations of orders and the reads behind the dashboard.
type OrderRepository interface {
	// CreateOrder inserts the order and its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID loads an order with items, addresses and owner.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByIDForUpdate loads an order and locks its row until the transaction ends.
	FindOrderByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByNumber loads an order with items, addresses and owner by its order number.
	FindOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)

	// ListOrders returns one page of orders matching filter.
	ListOrders(ctx context.Context, filter OrderFilter, page entity.PageRequest) (*entity.Page[*entity.Order], error)

	// UpdateOrderFulfilment saves status, tracking number, notes and the shipped/delivered stamps.
	UpdateOrderFulfilment(ctx context.Context, order *entity.Order) error

	// CountOrders returns the number of orders.
	CountOrders(ctx context.Context) (int64, error)

	// CountOrdersByStatus returns order counts keyed by status. Absent statuses are omitted.
	CountOrdersByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error)

	// SumPaidRevenue sums totals of PAID orders.
	SumPaidRevenue(ctx context.Context) (decimal.Decimal, error)

	// FindOrderSnapshotsSince returns lightweight rows of orders created at or after since.
	FindOrderSnapshotsSince(ctx context.Context, since time.Time) ([]analytics.OrderSnapshot, error)

	// FindPaidSaleLines returns one row per item of every PAID order with its product category.
	FindPaidSaleLines(ctx context.Context) ([]analytics.SaleLine, error)
}
