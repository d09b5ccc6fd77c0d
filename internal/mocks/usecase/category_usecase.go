package usecase

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCategoryUsecase struct {
	mock.Mock
}

func NewMockCategoryUsecase(t *testing.T) *MockCategoryUsecase {
	m := &MockCategoryUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCategoryUsecase) categories(args mock.Arguments) ([]*entity.Category, error) {
	categories, _ := args.Get(0).([]*entity.Category)

	return categories, args.Error(1)
}

func (m *MockCategoryUsecase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return m.categories(m.Called(ctx))
}

func (m *MockCategoryUsecase) ListRootCategories(ctx context.Context) ([]*entity.Category, error) {
	return m.categories(m.Called(ctx))
}

func (m *MockCategoryUsecase) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *MockCategoryUsecase) ListSubcategories(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error) {
	return m.categories(m.Called(ctx, parentID))
}

func (m *MockCategoryUsecase) GetCategoryTree(ctx context.Context) ([]*entity.CategoryNode, error) {
	args := m.Called(ctx)
	tree, _ := args.Get(0).([]*entity.CategoryNode)

	return tree, args.Error(1)
}

func (m *MockCategoryUsecase) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, input)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *MockCategoryUsecase) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	args := m.Called(ctx, id, input)
	category, _ := args.Get(0).(*entity.Category)

	return category, args.Error(1)
}

func (m *MockCategoryUsecase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
