package usecase

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockProductUsecase struct {
	mock.Mock
}

func NewMockProductUsecase(t *testing.T) *MockProductUsecase {
	m := &MockProductUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockProductUsecase) productPage(args mock.Arguments) (*entity.Page[*entity.Product], error) {
	page, _ := args.Get(0).(*entity.Page[*entity.Product])

	return page, args.Error(1)
}

func (m *MockProductUsecase) ListProducts(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	return m.productPage(m.Called(ctx, page))
}

func (m *MockProductUsecase) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductUsecase) SearchProducts(ctx context.Context, keyword string, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	return m.productPage(m.Called(ctx, keyword, page))
}

func (m *MockProductUsecase) ListByCategory(ctx context.Context, categoryID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	return m.productPage(m.Called(ctx, categoryID, page))
}

func (m *MockProductUsecase) ListByType(ctx context.Context, productType string, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	return m.productPage(m.Called(ctx, productType, page))
}

func (m *MockProductUsecase) ListFeatured(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]*entity.Product)

	return products, args.Error(1)
}

func (m *MockProductUsecase) ListBrands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	brands, _ := args.Get(0).([]string)

	return brands, args.Error(1)
}

func (m *MockProductUsecase) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, input)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductUsecase) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	args := m.Called(ctx, id, input)
	product, _ := args.Get(0).(*entity.Product)

	return product, args.Error(1)
}

func (m *MockProductUsecase) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
