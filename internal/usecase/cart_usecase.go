package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AddToCartInput selects a product and how many units to add.
type AddToCartInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CartUsecase manages the caller's cart. Every operation returns the cart as it is afterwards.
type CartUsecase interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	AddToCart(ctx context.Context, userID uuid.UUID, input *AddToCartInput) (*entity.Cart, error)

	// UpdateCartItem sets a line's quantity; a quantity of zero or less removes the line.
	UpdateCartItem(ctx context.Context, userID, itemID uuid.UUID, quantity int) (*entity.Cart, error)
	RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) (*entity.Cart, error)
	ClearCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
}
