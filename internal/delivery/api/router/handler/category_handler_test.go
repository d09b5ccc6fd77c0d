package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestCategoryHandler(t *testing.T) (*CategoryHandler, *mockUsecase.MockCategoryUsecase) {
	categoryUC := mockUsecase.NewMockCategoryUsecase(t)

	return NewCategoryHandler(CategoryHandlerParams{CategoryUC: categoryUC}), categoryUC
}

func TestCategoryHandler_GetCategoryTree(t *testing.T) {
	h, categoryUC := newTestCategoryHandler(t)
	rootID := uuid.New()
	tree := []*entity.CategoryNode{{
		Category: &entity.Category{ID: rootID, Name: "Components", Active: true},
		Children: []*entity.CategoryNode{
			{Category: &entity.Category{ID: uuid.New(), Name: "GPUs", ParentID: &rootID, Active: true}},
		},
	}}
	categoryUC.On("GetCategoryTree", mock.Anything).Return(tree, nil).Once()

	c, rec := newTestContext(t, http.MethodGet, "/api/categories/tree", nil)

	require.NoError(t, h.GetCategoryTree(c))
	assertStatus(t, rec, http.StatusOK)

	var got []CategoryNodeView
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Components", got[0].Name)
	require.Len(t, got[0].Children, 1)
	assert.Equal(t, "GPUs", got[0].Children[0].Name)
	assert.Equal(t, &rootID, got[0].Children[0].ParentID)
	assert.Empty(t, got[0].Children[0].Children)
}

func TestCategoryHandler_UpdateCategory_Cycle(t *testing.T) {
	h, categoryUC := newTestCategoryHandler(t)
	id := uuid.New()
	categoryUC.On("UpdateCategory", mock.Anything, id, &usecase.CategoryInput{Name: "GPUs", ParentID: &id}).
		Return(nil, domainerrors.ErrCategoryCycle).Once()

	c, rec := newTestContext(t, http.MethodPut, "/api/categories/"+id.String(), map[string]any{
		"name":     "GPUs",
		"parentId": id.String(),
	})
	withPathParams(c, "id", id.String())

	require.NoError(t, h.UpdateCategory(c))
	assertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "CATEGORY_CYCLE", decodeError(t, rec).Error.Code)
}

func TestCategoryHandler_CreateCategory_Duplicate(t *testing.T) {
	h, categoryUC := newTestCategoryHandler(t)
	categoryUC.On("CreateCategory", mock.Anything, &usecase.CategoryInput{Name: "Laptops"}).
		Return(nil, domainerrors.ErrCategoryAlreadyExists).Once()

	c, rec := newTestContext(t, http.MethodPost, "/api/categories", map[string]any{"name": "Laptops"})

	require.NoError(t, h.CreateCategory(c))
	assertStatus(t, rec, http.StatusConflict)
}

func TestCategoryHandler_ListSubcategories(t *testing.T) {
	h, categoryUC := newTestCategoryHandler(t)
	parentID := uuid.New()
	categoryUC.On("ListSubcategories", mock.Anything, parentID).Return([]*entity.Category{}, nil).Once()

	c, rec := newTestContext(t, http.MethodGet, "/api/categories/"+parentID.String()+"/subcategories", nil)
	withPathParams(c, "id", parentID.String())

	require.NoError(t, h.ListSubcategories(c))
	assertStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}
