package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductService(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository, *mockRepo.MockCategoryRepository) {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	svc := NewProductService(ProductServiceParams{
		TxManager: mockRepo.NewFakeTransactionManager(&mockRepo.StubRepositoryFactory{
			Products:   productRepo,
			Categories: categoryRepo,
		}),
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		Logger:       discardLogger(),
	})

	return svc, productRepo, categoryRepo
}

func createTestCategoryService(t *testing.T) (usecase.CategoryUsecase, *mockRepo.MockCategoryRepository) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)

	svc := NewCategoryService(CategoryServiceParams{
		TxManager:    mockRepo.NewFakeTransactionManager(&mockRepo.StubRepositoryFactory{Categories: categoryRepo}),
		CategoryRepo: categoryRepo,
		Logger:       discardLogger(),
	})

	return svc, categoryRepo
}

func TestProductService_ListFilters(t *testing.T) {
	svc, productRepo, _ := createTestProductService(t)
	ctx := context.Background()
	page := entity.PageRequest{Page: 0, Size: 12, SortBy: "price", Direction: entity.SortAsc}
	empty := entity.NewPage([]*entity.Product{}, 0, page)
	categoryID := uuid.New()

	productRepo.On("ListProducts", ctx, repository.ProductFilter{ActiveOnly: true}, page).Return(empty, nil).Once()
	productRepo.On("ListProducts", ctx, repository.ProductFilter{ActiveOnly: true, Keyword: "xeon"}, page).Return(empty, nil).Once()
	productRepo.On("ListProducts", ctx, repository.ProductFilter{ActiveOnly: true, CategoryID: &categoryID}, page).Return(empty, nil).Once()
	productRepo.On("ListProducts", ctx, repository.ProductFilter{ActiveOnly: true, Type: entity.ProductTypeLaptop}, page).Return(empty, nil).Once()

	_, err := svc.ListProducts(ctx, page)
	require.NoError(t, err)
	_, err = svc.SearchProducts(ctx, "  xeon ", page)
	require.NoError(t, err)
	_, err = svc.ListByCategory(ctx, categoryID, page)
	require.NoError(t, err)
	_, err = svc.ListByType(ctx, "laptop", page)
	require.NoError(t, err)
}

func TestProductService_ListByType_Unknown(t *testing.T) {
	svc, _, _ := createTestProductService(t)

	_, err := svc.ListByType(context.Background(), "TABLET", entity.PageRequest{Size: 12})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_CreateProduct_Validation(t *testing.T) {
	valid := func() *usecase.ProductInput {
		return &usecase.ProductInput{
			Name:          "ThinkPad P15",
			Price:         decimal.RequireFromString("3899.99"),
			StockQuantity: 3,
			Type:          entity.ProductTypeLaptop,
		}
	}

	tests := []struct {
		name   string
		mutate func(in *usecase.ProductInput)
	}{
		{name: "blank name", mutate: func(in *usecase.ProductInput) { in.Name = " " }},
		{name: "negative price", mutate: func(in *usecase.ProductInput) { in.Price = decimal.NewFromInt(-1) }},
		{name: "negative stock", mutate: func(in *usecase.ProductInput) { in.StockQuantity = -1 }},
		{name: "unknown type", mutate: func(in *usecase.ProductInput) { in.Type = "TABLET" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := createTestProductService(t)
			input := valid()
			tt.mutate(input)

			_, err := svc.CreateProduct(context.Background(), input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	svc, productRepo, categoryRepo := createTestProductService(t)
	ctx := context.Background()
	categoryID := uuid.New()
	productID := uuid.New()

	categoryRepo.On("FindCategoryByID", ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	productRepo.On("CreateProduct", ctx, mock.MatchedBy(func(p *entity.Product) bool {
		return p.Active && p.Price.StringFixed(2) == "10.13" && *p.CategoryID == categoryID
	})).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Product).ID = productID }).
		Return(nil)
	productRepo.On("FindProductByID", ctx, productID).Return(&entity.Product{ID: productID, Active: true}, nil)

	product, err := svc.CreateProduct(ctx, &usecase.ProductInput{
		Name:       "Cable",
		Price:      decimal.RequireFromString("10.125"),
		Type:       entity.ProductTypeComponent,
		CategoryID: &categoryID,
	})

	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
}

func TestProductService_CreateProduct_UnknownCategory(t *testing.T) {
	svc, productRepo, categoryRepo := createTestProductService(t)
	categoryID := uuid.New()

	categoryRepo.On("FindCategoryByID", mock.Anything, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := svc.CreateProduct(context.Background(), &usecase.ProductInput{
		Name:       "Cable",
		Type:       entity.ProductTypeComponent,
		CategoryID: &categoryID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	productRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestProductService_DeleteProduct_Deactivates(t *testing.T) {
	svc, productRepo, _ := createTestProductService(t)
	productID := uuid.New()

	productRepo.On("FindProductByID", mock.Anything, productID).Return(&entity.Product{ID: productID, Active: true}, nil)
	productRepo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == productID && !p.Active
	})).Return(nil)

	require.NoError(t, svc.DeleteProduct(context.Background(), productID))
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	svc, productRepo, _ := createTestProductService(t)
	productID := uuid.New()
	productRepo.On("FindProductByID", mock.Anything, productID).Return(nil, repository.ErrProductNotFound)

	_, err := svc.GetProduct(context.Background(), productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCategoryService_UpdateCategory_Parent(t *testing.T) {
	rootID, childID, grandchildID := uuid.New(), uuid.New(), uuid.New()
	all := []*entity.Category{
		{ID: rootID, Name: "Computers", Active: true},
		{ID: childID, Name: "Laptops", ParentID: &rootID, Active: true},
		{ID: grandchildID, Name: "Gaming Laptops", ParentID: &childID, Active: true},
	}

	tests := []struct {
		name     string
		id       uuid.UUID
		parentID uuid.UUID
		wantErr  error
	}{
		{name: "own parent", id: rootID, parentID: rootID, wantErr: domainerrors.ErrCategoryCycle},
		{name: "descendant as parent", id: rootID, parentID: grandchildID, wantErr: domainerrors.ErrCategoryCycle},
		{name: "missing parent", id: childID, parentID: uuid.New(), wantErr: domainerrors.ErrCategoryNotFound},
		{name: "valid move", id: grandchildID, parentID: rootID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, categoryRepo := createTestCategoryService(t)
			current := &entity.Category{ID: tt.id, Name: "current", Active: true}
			categoryRepo.On("FindCategoryByID", mock.Anything, tt.id).Return(current, nil)
			categoryRepo.On("FindCategories", mock.Anything, false).Return(all, nil).Maybe()
			if tt.wantErr == nil {
				categoryRepo.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c *entity.Category) bool {
					return c.ParentID != nil && *c.ParentID == tt.parentID
				})).Return(nil)
			}

			parentID := tt.parentID
			updated, err := svc.UpdateCategory(context.Background(), tt.id, &usecase.CategoryInput{Name: "Renamed", ParentID: &parentID})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				categoryRepo.AssertNotCalled(t, "UpdateCategory", mock.Anything, mock.Anything)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Renamed", updated.Name)
		})
	}
}

func TestCategoryService_GetCategoryTree(t *testing.T) {
	svc, categoryRepo := createTestCategoryService(t)
	rootID, childID := uuid.New(), uuid.New()

	categoryRepo.On("FindCategories", mock.Anything, true).Return([]*entity.Category{
		{ID: rootID, Name: "Computers", Active: true},
		{ID: childID, Name: "Laptops", ParentID: &rootID, Active: true},
	}, nil)

	tree, err := svc.GetCategoryTree(context.Background())

	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, rootID, tree[0].Category.ID)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, childID, tree[0].Children[0].Category.ID)
}

func TestCategoryService_DeleteCategory_Deactivates(t *testing.T) {
	svc, categoryRepo := createTestCategoryService(t)
	id := uuid.New()

	categoryRepo.On("FindCategoryByID", mock.Anything, id).Return(&entity.Category{ID: id, Active: true}, nil)
	categoryRepo.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c *entity.Category) bool { return !c.Active })).Return(nil)

	assert.NoError(t, svc.DeleteCategory(context.Background(), id))
}

func TestSeedService_SeedCatalog(t *testing.T) {
	newSeedService := func(t *testing.T) (usecase.SeedUsecase, *mockRepo.MockProductRepository, *mockRepo.MockCategoryRepository) {
		productRepo := mockRepo.NewMockProductRepository(t)
		categoryRepo := mockRepo.NewMockCategoryRepository(t)
		svc := NewSeedService(SeedServiceParams{
			TxManager: mockRepo.NewFakeTransactionManager(&mockRepo.StubRepositoryFactory{
				Products:   productRepo,
				Categories: categoryRepo,
			}),
			Logger: discardLogger(),
		})

		return svc, productRepo, categoryRepo
	}

	t.Run("skips populated catalog", func(t *testing.T) {
		svc, productRepo, categoryRepo := newSeedService(t)
		productRepo.On("CountProducts", mock.Anything).Return(int64(3), nil)
		categoryRepo.On("FindCategories", mock.Anything, false).Return([]*entity.Category{}, nil)

		result, err := svc.SeedCatalog(context.Background())

		require.NoError(t, err)
		assert.True(t, result.Skipped)
		productRepo.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})

	t.Run("seeds empty catalog", func(t *testing.T) {
		svc, productRepo, categoryRepo := newSeedService(t)
		productRepo.On("CountProducts", mock.Anything).Return(int64(0), nil)
		categoryRepo.On("FindCategories", mock.Anything, false).Return([]*entity.Category{}, nil)
		categoryRepo.On("CreateCategory", mock.Anything, mock.AnythingOfType("*entity.Category")).
			Run(func(args mock.Arguments) { args.Get(1).(*entity.Category).ID = uuid.New() }).
			Return(nil)
		productRepo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Active && p.CategoryID != nil && len(p.ImageURLs) == 1
		})).Return(nil)

		result, err := svc.SeedCatalog(context.Background())

		require.NoError(t, err)
		assert.False(t, result.Skipped)
		assert.Equal(t, 4, result.Categories)
		assert.Equal(t, 12, result.Products)
		productRepo.AssertNumberOfCalls(t, "CreateProduct", 12)
	})
}
