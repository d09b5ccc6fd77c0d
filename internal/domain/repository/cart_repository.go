package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a user has no cart.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart line does not exist.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the persistence operations of shopping carts.
type CartRepository interface {
	// CreateCart persists an empty cart for a user.
	CreateCart(ctx context.Context, cart *entity.Cart) error

	// FindCartByUserID loads the user's cart with items and their products, oldest line first.
	FindCartByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItemQuantity inserts a (cart, product) line or atomically increments its quantity.
	AddItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error

	// UpdateItemQuantity sets the quantity of a line owned by cartID.
	UpdateItemQuantity(ctx context.Context, cartID, itemID uuid.UUID, quantity int) error

	// DeleteItem removes a line owned by cartID.
	DeleteItem(ctx context.Context, cartID, itemID uuid.UUID) error

	// ClearItems removes every line of the cart.
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}
