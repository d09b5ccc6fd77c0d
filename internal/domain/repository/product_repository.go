package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows catalog listings. Zero fields do not filter.
type ProductFilter struct {
	ActiveOnly bool
	Keyword    string // Case-insensitive substring over name, description and brand.
	CategoryID *uuid.UUID
	Type       entity.ProductType
	Featured   *bool
}

// ProductRepository defines the persistence operations of the catalog.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// UpdateProduct saves every mutable field of the product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID resolves a product regardless of its active flag.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts returns one page of products matching filter.
	ListProducts(ctx context.Context, filter ProductFilter, page entity.PageRequest) (*entity.Page[*entity.Product], error)

	// FindFeaturedProducts returns every active featured product, newest first.
	FindFeaturedProducts(ctx context.Context) ([]*entity.Product, error)

	// FindBrands returns distinct non-empty brands of active products, sorted.
	FindBrands(ctx context.Context) ([]string, error)

	// CountProducts returns the number of products, active or not.
	CountProducts(ctx context.Context) (int64, error)
}
