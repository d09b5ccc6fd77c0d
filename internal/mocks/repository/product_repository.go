package repository

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t *testing.T) *MockProductRepository {
	m := &MockProductRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, filter repository.ProductFilter, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	args := m.Called(ctx, filter, page)
	result, _ := args.Get(0).(*entity.Page[*entity.Product])

	return result, args.Error(1)
}

func (m *MockProductRepository) FindFeaturedProducts(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductRepository) FindBrands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	brands, _ := args.Get(0).([]string)

	return brands, args.Error(1)
}

func (m *MockProductRepository) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	count, _ := args.Get(0).(int64)

	return count, args.Error(1)
}
