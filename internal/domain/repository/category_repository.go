package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the persistence operations of the category tree.
type CategoryRepository interface {
	// CreateCategory persists a new category. A duplicate name yields ErrCategoryAlreadyExists.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// UpdateCategory saves every mutable field of the category.
	UpdateCategory(ctx context.Context, category *entity.Category) error

	// FindCategoryByID resolves a category regardless of its active flag.
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindCategoryByName resolves a category by its unique name.
	FindCategoryByName(ctx context.Context, name string) (*entity.Category, error)

	// FindCategories returns categories ordered by name. activeOnly hides soft-deleted rows.
	FindCategories(ctx context.Context, activeOnly bool) ([]*entity.Category, error)

	// FindRootCategories returns active categories without a parent.
	FindRootCategories(ctx context.Context) ([]*entity.Category, error)

	// FindSubcategories returns the active direct children of parentID.
	FindSubcategories(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error)
}
