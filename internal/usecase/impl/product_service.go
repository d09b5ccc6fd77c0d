package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewProductService creates the catalog product service.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) ListProducts(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	return srv.list(ctx, repository.ProductFilter{ActiveOnly: true}, page)
}

// GetProduct resolves a product by id, including inactive ones.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		return nil, translateProductError(err)
	}

	return product, nil
}

func (srv *productService) SearchProducts(ctx context.Context, keyword string, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	return srv.list(ctx, repository.ProductFilter{ActiveOnly: true, Keyword: strings.TrimSpace(keyword)}, page)
}

func (srv *productService) ListByCategory(ctx context.Context, categoryID uuid.UUID, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	return srv.list(ctx, repository.ProductFilter{ActiveOnly: true, CategoryID: &categoryID}, page)
}

func (srv *productService) ListByType(ctx context.Context, productType string, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	parsed := entity.ProductType(strings.ToUpper(strings.TrimSpace(productType)))
	if !parsed.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown product type: " + productType)
	}

	return srv.list(ctx, repository.ProductFilter{ActiveOnly: true, Type: parsed}, page)
}

func (srv *productService) ListFeatured(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindFeaturedProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return products, nil
}

func (srv *productService) ListBrands(ctx context.Context) ([]string, error) {
	brands, err := srv.productRepo.FindBrands(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

func (srv *productService) list(ctx context.Context, filter repository.ProductFilter, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	products, err := srv.productRepo.ListProducts(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateProduct adds a product to the catalog. New products are active unless stated otherwise.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{Active: true}
	applyProductInput(product, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := ensureCategoryExists(ctx, repoFactory.NewCategoryRepository(), product.CategoryID); err != nil {
			return err
		}

		return repoFactory.NewProductRepository().CreateProduct(ctx, product)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("name", product.Name))

	return srv.GetProduct(ctx, product.ID)
}

// UpdateProduct replaces the writable fields of a product.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindProductByID(ctx, id)
		if err != nil {
			return translateProductError(err)
		}
		applyProductInput(product, input)

		if err := ensureCategoryExists(ctx, repoFactory.NewCategoryRepository(), product.CategoryID); err != nil {
			return err
		}

		return productRepo.UpdateProduct(ctx, product)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}
	srv.log(ctx).Info("Product updated", slog.Any("productID", id))

	return srv.GetProduct(ctx, id)
}

// DeleteProduct soft-deletes a product. Orders keep referencing it.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindProductByID(ctx, id)
		if err != nil {
			return translateProductError(err)
		}
		product.Active = false

		return productRepo.UpdateProduct(ctx, product)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete product")
	}
	srv.log(ctx).Info("Product deactivated", slog.Any("productID", id))

	return nil
}

func validateProductInput(input *usecase.ProductInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	case input.Price.IsNegative():
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	case input.StockQuantity < 0:
		return domainerrors.ErrValidationFailed.WithDetails("stock quantity must not be negative")
	case !input.Type.IsValid():
		return domainerrors.ErrValidationFailed.WithDetails("unknown product type: " + string(input.Type))
	}

	return nil
}

func applyProductInput(product *entity.Product, input *usecase.ProductInput) {
	product.Name = strings.TrimSpace(input.Name)
	product.Description = input.Description
	product.Price = input.Price.Round(2)
	product.StockQuantity = input.StockQuantity
	product.Brand = strings.TrimSpace(input.Brand)
	product.Model = strings.TrimSpace(input.Model)
	product.Type = input.Type
	product.ImageURLs = input.ImageURLs
	product.Specifications = input.Specifications
	product.CategoryID = input.CategoryID
	product.Category = nil
	product.Featured = input.Featured
	if input.Active != nil {
		product.Active = *input.Active
	}
}

func ensureCategoryExists(ctx context.Context, categoryRepo repository.CategoryRepository, categoryID *uuid.UUID) error {
	if categoryID == nil {
		return nil
	}
	if _, err := categoryRepo.FindCategoryByID(ctx, *categoryID); err != nil {
		return translateCategoryError(err)
	}

	return nil
}

func translateProductError(err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound.WrapMessage(err.Error())
	}

	return errors.Wrap(err, "failed to find product")
}

func translateCategoryError(err error) error {
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return domainerrors.ErrCategoryNotFound.WrapMessage(err.Error())
	}

	return errors.Wrap(err, "failed to find category")
}
