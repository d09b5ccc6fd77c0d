package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name           string
	Description    string
	Price          decimal.Decimal
	StockQuantity  int
	Brand          string
	Model          string
	Type           entity.ProductType
	ImageURLs      []string
	Specifications map[string]string
	CategoryID     *uuid.UUID
	Featured       bool
	Active         *bool // nil keeps the current value; new products default to active.
}

// ProductUsecase defines catalog reads and the admin-only product writes.
type ProductUsecase interface {
	ListProducts(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Product], error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	SearchProducts(ctx context.Context, keyword string, page entity.PageRequest) (*entity.Page[*entity.Product], error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Product], error)
	ListByType(ctx context.Context, productType string, page entity.PageRequest) (*entity.Page[*entity.Product], error)
	ListFeatured(ctx context.Context) ([]*entity.Product, error)
	ListBrands(ctx context.Context) ([]string, error)

	CreateProduct(ctx context.Context, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)

	// DeleteProduct hides the product from listings by marking it inactive.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}
