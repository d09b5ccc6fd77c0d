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

type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService creates the category service.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindCategories(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) ListRootCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindRootCategories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list root categories")
	}

	return categories, nil
}

// GetCategory resolves a category by id, including inactive ones.
func (srv *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, translateCategoryError(err)
	}

	return category, nil
}

func (srv *categoryService) ListSubcategories(ctx context.Context, parentID uuid.UUID) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindSubcategories(ctx, parentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories")
	}

	return categories, nil
}

// GetCategoryTree materializes the active categories as a forest.
func (srv *categoryService) GetCategoryTree(ctx context.Context) ([]*entity.CategoryNode, error) {
	categories, err := srv.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return entity.NewCategoryIndex(categories).Tree(), nil
}

func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	category := &entity.Category{Active: true}
	applyCategoryInput(category, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		// A new category has no descendants, so only the parent's existence matters.
		if err := ensureCategoryExists(ctx, categoryRepo, category.ParentID); err != nil {
			return err
		}

		return categoryRepo.CreateCategory(ctx, category)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}
	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.String("name", category.Name))

	return category, nil
}

// UpdateCategory replaces the writable fields. Re-parenting is rejected when it would make the
// category its own ancestor.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	var updated *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		category, err := categoryRepo.FindCategoryByID(ctx, id)
		if err != nil {
			return translateCategoryError(err)
		}

		if input.ParentID != nil {
			if err := srv.checkParent(ctx, categoryRepo, id, *input.ParentID); err != nil {
				return err
			}
		}

		applyCategoryInput(category, input)
		if err := categoryRepo.UpdateCategory(ctx, category); err != nil {
			return err
		}
		updated = category

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}
	srv.log(ctx).Info("Category updated", slog.Any("categoryID", id))

	return updated, nil
}

func (srv *categoryService) checkParent(ctx context.Context, categoryRepo repository.CategoryRepository, id, parentID uuid.UUID) error {
	if id == parentID {
		return domainerrors.ErrCategoryCycle.WrapMessage("category cannot be its own parent")
	}

	all, err := categoryRepo.FindCategories(ctx, false)
	if err != nil {
		return errors.Wrap(err, "failed to load categories for cycle check")
	}

	parents := make(map[uuid.UUID]*uuid.UUID, len(all))
	for _, c := range all {
		parents[c.ID] = c.ParentID
	}
	if _, ok := parents[parentID]; !ok {
		return domainerrors.ErrCategoryNotFound.WrapMessage("parent category")
	}

	lookup := func(categoryID uuid.UUID) (*uuid.UUID, bool) {
		parent, ok := parents[categoryID]

		return parent, ok
	}
	if entity.CreatesCycle(id, parentID, lookup) {
		return domainerrors.ErrCategoryCycle.WrapMessage("parent is a descendant of the category")
	}

	return nil
}

// DeleteCategory soft-deletes a category. Its products keep their category reference.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.NewCategoryRepository()

		category, err := categoryRepo.FindCategoryByID(ctx, id)
		if err != nil {
			return translateCategoryError(err)
		}
		category.Active = false

		return categoryRepo.UpdateCategory(ctx, category)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}
	srv.log(ctx).Info("Category deactivated", slog.Any("categoryID", id))

	return nil
}

func applyCategoryInput(category *entity.Category, input *usecase.CategoryInput) {
	category.Name = strings.TrimSpace(input.Name)
	category.Description = input.Description
	category.ImageURL = input.ImageURL
	category.ParentID = input.ParentID
	if input.Active != nil {
		category.Active = *input.Active
	}
}
