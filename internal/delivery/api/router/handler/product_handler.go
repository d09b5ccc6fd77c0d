package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProductHandler serves catalog reads and the admin product writes.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	pages     pageParser
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		pages:     newPageParser(params.Config),
		logger:    params.Logger,
	}
}

// ProductRequest represents the request body for creating or replacing a product.
type ProductRequest struct {
	Name           string            `json:"name" validate:"required,max=200"`
	Description    string            `json:"description" validate:"max=5000"`
	Price          decimal.Decimal   `json:"price"`
	StockQuantity  int               `json:"stockQuantity" validate:"gte=0"`
	Brand          string            `json:"brand" validate:"max=100"`
	Model          string            `json:"model" validate:"max=100"`
	Type           string            `json:"type" validate:"required,oneof=SERVER DESKTOP_COMPUTER LAPTOP WORKSTATION COMPONENT"`
	ImageURLs      []string          `json:"imageUrls" validate:"omitempty,dive,url"`
	Specifications map[string]string `json:"specifications"`
	CategoryID     *uuid.UUID        `json:"categoryId"`
	Featured       bool              `json:"featured"`
	Active         *bool             `json:"active"`
}

func (r *ProductRequest) toInput() *usecase.ProductInput {
	return &usecase.ProductInput{
		Name:           r.Name,
		Description:    r.Description,
		Price:          r.Price,
		StockQuantity:  r.StockQuantity,
		Brand:          r.Brand,
		Model:          r.Model,
		Type:           entity.ProductType(r.Type),
		ImageURLs:      r.ImageURLs,
		Specifications: r.Specifications,
		CategoryID:     r.CategoryID,
		Featured:       r.Featured,
		Active:         r.Active,
	}
}

// ListProducts lists active products.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	page, err := h.pages.parse(c, productPageDefaults)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, products, newProductView)
}

// GetProduct returns a product by id, including inactive ones.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductView(product))
}

// SearchProducts matches the keyword against name, description and brand.
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	keyword := strings.TrimSpace(c.QueryParam("keyword"))
	if keyword == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "keyword is required")
	}

	page, err := h.pages.parse(c, productPageDefaults)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.SearchProducts(c.Request().Context(), keyword, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, products, newProductView)
}

// ListByCategory lists the active products of one category.
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	categoryID, err := parseIDParam(c, "categoryId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.pages.parse(c, productPageDefaults)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListByCategory(c.Request().Context(), categoryID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, products, newProductView)
}

// ListByType lists the active products of one hardware type.
func (h *ProductHandler) ListByType(c echo.Context) error {
	page, err := h.pages.parse(c, productPageDefaults)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	products, err := h.productUC.ListByType(c.Request().Context(), c.Param("type"), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, products, newProductView)
}

// ListFeatured lists active featured products.
func (h *ProductHandler) ListFeatured(c echo.Context) error {
	products, err := h.productUC.ListFeatured(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductViews(products))
}

// ListBrands lists the distinct brands of active products.
func (h *ProductHandler) ListBrands(c echo.Context) error {
	brands, err := h.productUC.ListBrands(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if brands == nil {
		brands = []string{}
	}

	return response.Success(c, http.StatusOK, brands)
}

// CreateProduct handles product creation.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newProductView(product))
}

// UpdateProduct replaces a product's writable fields.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newProductView(product))
}

// DeleteProduct soft-deletes a product.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
