package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput is a postal address entered at checkout.
type AddressInput struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// CreateOrderInput defines the checkout request.
type CreateOrderInput struct {
	ShippingAddress AddressInput
	PaymentMethod   string
	ShippingMethod  string // "express" or anything else for standard.
	Notes           string
}

// OrderUsecase covers checkout and the customer's view of their own orders.
// Orders owned by someone else are reported as not found.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)
	ListUserOrders(ctx context.Context, userID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Order], error)
	GetUserOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	GetUserOrderByNumber(ctx context.Context, userID uuid.UUID, orderNumber string) (*entity.Order, error)

	// GetReceiptQR renders the order's receipt QR code as PNG.
	GetReceiptQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)
}
