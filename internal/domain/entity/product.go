package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductType classifies hardware in the catalog.
type ProductType string

const (
	ProductTypeServer          ProductType = "SERVER"
	ProductTypeDesktopComputer ProductType = "DESKTOP_COMPUTER"
	ProductTypeLaptop          ProductType = "LAPTOP"
	ProductTypeWorkstation     ProductType = "WORKSTATION"
	ProductTypeComponent       ProductType = "COMPONENT"
)

// ProductTypes lists every declared product type in display order.
var ProductTypes = []ProductType{
	ProductTypeServer,
	ProductTypeDesktopComputer,
	ProductTypeLaptop,
	ProductTypeWorkstation,
	ProductTypeComponent,
}

// IsValid checks if the ProductType is a declared value.
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeServer, ProductTypeDesktopComputer, ProductTypeLaptop, ProductTypeWorkstation, ProductTypeComponent:
		return true
	default:
		return false
	}
}

// Product is a sellable catalog item. Inactive products are hidden from listings but stay
// resolvable by ID so past orders can still display them.
type Product struct {
	ID             uuid.UUID         // The Global Unique Identifier (GUID) for the product.
	Name           string            // Display name.
	Description    string            // Long description.
	Price          decimal.Decimal   // Current unit price, two fractional digits.
	StockQuantity  int               // Units on hand, never negative.
	Brand          string            // Manufacturer brand.
	Model          string            // Manufacturer model designation.
	Type           ProductType       // Hardware classification.
	ImageURLs      []string          // Ordered gallery, first entry is the cover image.
	Specifications map[string]string // Free-form key/value technical specs.
	CategoryID     *uuid.UUID        // Optional owning category.
	Category       *Category         // Loaded category, nil when absent or not preloaded.
	Active         bool              // Soft-delete marker.
	Featured       bool              // Shown on the storefront landing page.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasStock reports whether quantity units can be taken from current stock.
func (p *Product) HasStock(quantity int) bool {
	return quantity <= p.StockQuantity
}
