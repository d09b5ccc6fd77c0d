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
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// CreateCategory persists a new category.
func (repo *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return categoryWriteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// UpdateCategory saves every mutable field of the category, including zero values.
func (repo *categoryRepository) UpdateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)
	categoryM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CategoryModel{ID: category.ID}).
		Select("name", "description", "image_url", "parent_id", "active", "updated_at").
		Updates(categoryM)
	if result.Error != nil {
		return categoryWriteError(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// FindCategoryByID resolves a category regardless of its active flag.
func (repo *categoryRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by ID")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindCategoryByName resolves a category by its unique name.
func (repo *categoryRepository) FindCategoryByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by name")
	}

	return toCategoryDomain(&categoryM), nil
}

// FindCategories returns categories ordered by name.
func (repo *categoryRepository) FindCategories(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	query := repo.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	return repo.findAll(query, "failed to list categories")
}

// FindRootCategories returns active categories without a parent.
func (repo *categoryRepository) FindRootCategories(ctx context.Context) ([]*entity.Category, error) {
	return repo.findAll(
		repo.db.WithContext(ctx).Where("active = ? AND parent_id IS NULL", true),
		"failed to list root categories",
	)
}

// FindSubcategories returns the active direct children of parentID.
func (repo *categoryRepository) FindSubcategories(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error) {
	return repo.findAll(
		repo.db.WithContext(ctx).Where("active = ? AND parent_id = ?", true, parentID),
		"failed to list subcategories",
	)
}

func (repo *categoryRepository) findAll(query *gorm.DB, failure string) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := query.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, failure)
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, m := range categoryModels {
		categories[i] = toCategoryDomain(m)
	}

	return categories, nil
}

func categoryWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrCategoryAlreadyExists.WrapMessage("category name already exists")
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrCategoryNotFound.WrapMessage("parent category does not exist")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		ParentID:    data.ParentID,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		ParentID:    data.ParentID,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
