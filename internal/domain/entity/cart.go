package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the per-user staging area for products before checkout. One cart exists per user
// for the lifetime of the account; it is emptied, never deleted.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []*CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is one product line of a cart. (CartID, ProductID) is unique.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID uuid.UUID
	Product   *Product // Loaded product, used for pricing and display.
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Subtotal is the current unit price times quantity. It is zero when the product is not loaded.
func (i *CartItem) Subtotal() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}

	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Total sums line subtotals at current prices.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}

	return total
}

// ItemCount sums quantities across lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// FindItem returns the line with the given id.
func (c *Cart) FindItem(itemID uuid.UUID) (*CartItem, bool) {
	for _, item := range c.Items {
		if item.ID == itemID {
			return item, true
		}
	}

	return nil, false
}
