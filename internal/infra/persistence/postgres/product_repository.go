package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var productSortColumns = sortColumns{
	columns: map[string]string{
		"id":            "id",
		"name":          "name",
		"price":         "price",
		"brand":         "brand",
		"stockQuantity": "stock_quantity",
		"createdAt":     "created_at",
	},
	fallback: "createdAt",
	tieBreak: "id",
}

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct persists a new product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("Category").Create(productM).Error; err != nil {
		return productWriteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// UpdateProduct saves every mutable field of the product, including zero values.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{ID: product.ID}).
		Select(
			"name", "description", "price", "stock_quantity", "brand", "model", "type",
			"image_urls", "specifications", "category_id", "active", "featured", "updated_at",
		).
		Updates(productM)
	if result.Error != nil {
		return productWriteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID resolves a product regardless of its active flag.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// ListProducts returns one page of products matching filter.
func (repo *productRepository) ListProducts(ctx context.Context, filter repository.ProductFilter, page entity.PageRequest) (*entity.Page[*entity.Product], error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}
	if filter.Keyword != "" {
		pattern := containsPattern(filter.Keyword)
		query = query.Where(
			"(LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(brand) LIKE ?)",
			pattern, pattern, pattern,
		)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	rows, total, err := findPage[model.ProductModel](query, page, productSortColumns, "Category")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, len(rows))
	for i, m := range rows {
		products[i] = toProductDomain(m)
	}

	return entity.NewPage(products, total, page), nil
}

// FindFeaturedProducts returns every active featured product, newest first.
func (repo *productRepository) FindFeaturedProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Where("active = ? AND featured = ?", true, true).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	products := make([]*entity.Product, len(productModels))
	for i, m := range productModels {
		products[i] = toProductDomain(m)
	}

	return products, nil
}

// FindBrands returns distinct non-empty brands of active products, sorted.
func (repo *productRepository) FindBrands(ctx context.Context) ([]string, error) {
	brands := []string{}

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("active = ? AND brand <> ''", true).
		Distinct("brand").
		Order("brand ASC").
		Pluck("brand", &brands).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// CountProducts returns the number of products, active or not.
func (repo *productRepository) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

func productWriteError(err error, details string) error {
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrCategoryNotFound.WrapMessage("product category does not exist")
	}
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("stock quantity cannot be negative")
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := []string(data.ImageURLs)
	if images == nil {
		images = []string{}
	}
	specs := data.Specifications.Data()
	if specs == nil {
		specs = map[string]string{}
	}

	return &entity.Product{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		StockQuantity:  data.StockQuantity,
		Brand:          data.Brand,
		Model:          data.Model,
		Type:           entity.ProductType(data.Type),
		ImageURLs:      images,
		Specifications: specs,
		CategoryID:     data.CategoryID,
		Category:       toCategoryDomain(data.Category),
		Active:         data.Active,
		Featured:       data.Featured,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	images := data.ImageURLs
	if images == nil {
		images = []string{}
	}
	specs := data.Specifications
	if specs == nil {
		specs = map[string]string{}
	}

	return &model.ProductModel{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		StockQuantity:  data.StockQuantity,
		Brand:          data.Brand,
		Model:          data.Model,
		Type:           string(data.Type),
		ImageURLs:      datatypes.JSONSlice[string](images),
		Specifications: datatypes.NewJSONType(specs),
		CategoryID:     data.CategoryID,
		Active:         data.Active,
		Featured:       data.Featured,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
