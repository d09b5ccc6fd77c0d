package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Name        string
	Description string
	ImageURL    string
	ParentID    *uuid.UUID
	Active      *bool
}

// CategoryUsecase defines category reads and the admin-only category writes.
type CategoryUsecase interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	ListRootCategories(ctx context.Context) ([]*entity.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	ListSubcategories(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error)
	GetCategoryTree(ctx context.Context) ([]*entity.CategoryNode, error)

	CreateCategory(ctx context.Context, input *CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, input *CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
