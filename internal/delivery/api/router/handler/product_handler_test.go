package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestProductHandler(t *testing.T) (*ProductHandler, *mockUsecase.MockProductUsecase) {
	productUC := mockUsecase.NewMockProductUsecase(t)

	return NewProductHandler(ProductHandlerParams{ProductUC: productUC, Config: testConfig()}), productUC
}

func TestProductHandler_ListProducts_Paging(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  entity.PageRequest
	}{
		{
			name:  "defaults",
			query: "",
			want:  entity.PageRequest{Page: 0, Size: 12, SortBy: "createdAt", Direction: "ASC"},
		},
		{
			name:  "explicit",
			query: "?page=2&size=5&sortBy=price&direction=desc",
			want:  entity.PageRequest{Page: 2, Size: 5, SortBy: "price", Direction: "DESC"},
		},
		{
			name:  "size is capped",
			query: "?size=1000",
			want:  entity.PageRequest{Page: 0, Size: 100, SortBy: "createdAt", Direction: "ASC"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, productUC := newTestProductHandler(t)
			products := []*entity.Product{{ID: uuid.New(), Name: "Rack Server", Price: decimal.NewFromInt(1000), Type: entity.ProductTypeServer}}
			productUC.On("ListProducts", mock.Anything, tt.want).
				Return(entity.NewPage(products, 30, tt.want), nil).Once()

			c, rec := newTestContext(t, http.MethodGet, "/api/products"+tt.query, nil)

			require.NoError(t, h.ListProducts(c))
			assertStatus(t, rec, http.StatusOK)

			var got struct {
				Content       []ProductView `json:"content"`
				TotalElements int64         `json:"totalElements"`
				Number        int           `json:"number"`
				Size          int           `json:"size"`
			}
			decodeData(t, rec, &got)
			require.Len(t, got.Content, 1)
			assert.Equal(t, "1000.00", got.Content[0].Price)
			assert.Equal(t, int64(30), got.TotalElements)
			assert.Equal(t, tt.want.Page, got.Number)
			assert.Equal(t, tt.want.Size, got.Size)
		})
	}
}

func TestProductHandler_ListProducts_InvalidPaging(t *testing.T) {
	for _, query := range []string{"?page=-1", "?page=abc", "?size=0", "?direction=sideways"} {
		t.Run(query, func(t *testing.T) {
			h, _ := newTestProductHandler(t)
			c, rec := newTestContext(t, http.MethodGet, "/api/products"+query, nil)

			require.NoError(t, h.ListProducts(c))
			assertStatus(t, rec, http.StatusBadRequest)
			assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
		})
	}
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		h, _ := newTestProductHandler(t)
		c, rec := newTestContext(t, http.MethodGet, "/api/products/nope", nil)
		withPathParams(c, "id", "nope")

		require.NoError(t, h.GetProduct(c))
		assertStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("not found", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		id := uuid.New()
		productUC.On("GetProduct", mock.Anything, id).
			Return(nil, domainerrors.ErrProductNotFound.WrapMessage("find product")).Once()

		c, rec := newTestContext(t, http.MethodGet, "/api/products/"+id.String(), nil)
		withPathParams(c, "id", id.String())

		require.NoError(t, h.GetProduct(c))
		assertStatus(t, rec, http.StatusNotFound)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeError(t, rec).Error.Code)
	})

	t.Run("unexpected failure goes to the central handler", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		id := uuid.New()
		productUC.On("GetProduct", mock.Anything, id).Return(nil, errors.New("connection refused")).Once()

		c, _ := newTestContext(t, http.MethodGet, "/api/products/"+id.String(), nil)
		withPathParams(c, "id", id.String())

		assert.Error(t, h.GetProduct(c))
	})
}

func TestProductHandler_SearchProducts_RequiresKeyword(t *testing.T) {
	h, _ := newTestProductHandler(t)
	c, rec := newTestContext(t, http.MethodGet, "/api/products/search?keyword=%20", nil)

	require.NoError(t, h.SearchProducts(c))
	assertStatus(t, rec, http.StatusBadRequest)
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Run("maps the request", func(t *testing.T) {
		h, productUC := newTestProductHandler(t)
		categoryID := uuid.New()
		productUC.On("CreateProduct", mock.Anything, mock.MatchedBy(func(in *usecase.ProductInput) bool {
			return in.Name == "ThinkStation P620" &&
				in.Price.Equal(decimal.RequireFromString("2499.99")) &&
				in.Type == entity.ProductTypeWorkstation &&
				in.CategoryID != nil && *in.CategoryID == categoryID &&
				in.Specifications["cpu"] == "Threadripper" &&
				in.Active == nil
		})).Return(&entity.Product{
			ID:    uuid.New(),
			Name:  "ThinkStation P620",
			Price: decimal.RequireFromString("2499.99"),
			Type:  entity.ProductTypeWorkstation,
		}, nil).Once()

		c, rec := newTestContext(t, http.MethodPost, "/api/products", map[string]any{
			"name":           "ThinkStation P620",
			"price":          "2499.99",
			"stockQuantity":  4,
			"type":           "WORKSTATION",
			"categoryId":     categoryID.String(),
			"specifications": map[string]string{"cpu": "Threadripper"},
		})

		require.NoError(t, h.CreateProduct(c))
		assertStatus(t, rec, http.StatusCreated)

		var got ProductView
		decodeData(t, rec, &got)
		assert.Equal(t, "2499.99", got.Price)
		assert.Equal(t, []string{}, got.ImageURLs)
	})

	t.Run("unknown type", func(t *testing.T) {
		h, _ := newTestProductHandler(t)
		c, rec := newTestContext(t, http.MethodPost, "/api/products", map[string]any{
			"name":  "Mystery Box",
			"price": 10,
			"type":  "TOASTER",
		})

		require.NoError(t, h.CreateProduct(c))
		assertStatus(t, rec, http.StatusBadRequest)
		assert.Contains(t, rec.Body.String(), `"field":"type"`)
	})
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	h, productUC := newTestProductHandler(t)
	id := uuid.New()
	productUC.On("DeleteProduct", mock.Anything, id).Return(nil).Once()

	c, rec := newTestContext(t, http.MethodDelete, "/api/products/"+id.String(), nil)
	withPathParams(c, "id", id.String())

	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
