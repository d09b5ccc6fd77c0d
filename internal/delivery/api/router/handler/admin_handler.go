package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// AdminHandler serves the admin console: dashboard, order management and users.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	pages   pageParser
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		pages:   newPageParser(params.Config),
		logger:  params.Logger,
	}
}

// UpdateOrderStatusRequest represents the request body for an order status change.
type UpdateOrderStatusRequest struct {
	Status         string  `json:"status" validate:"required"`
	TrackingNumber *string `json:"trackingNumber" validate:"omitempty,max=100"`
	Notes          *string `json:"notes" validate:"omitempty,max=1000"`
}

func (h *AdminHandler) GetDashboardStats(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	stats, err := h.adminUC.GetDashboardStats(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDashboardStatsView(stats))
}

func (h *AdminHandler) ListOrders(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, err := h.pages.parse(c, orderPageDefaults)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.adminUC.ListOrders(c.Request().Context(), actor, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, orders, newOrderView)
}

func (h *AdminHandler) ListOrdersByStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, err := h.pages.parse(c, orderPageDefaults)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.adminUC.ListOrdersByStatus(c.Request().Context(), actor, c.Param("status"), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, orders, newOrderView)
}

// SearchOrders matches the keyword against the order number and the customer's email or name.
func (h *AdminHandler) SearchOrders(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	keyword := strings.TrimSpace(c.QueryParam("keyword"))
	if keyword == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "keyword is required")
	}

	page, err := h.pages.parse(c, orderPageDefaults)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.adminUC.SearchOrders(c.Request().Context(), actor, keyword, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, orders, newOrderView)
}

func (h *AdminHandler) GetOrder(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.adminUC.GetOrder(c.Request().Context(), actor, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}

func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	order, err := h.adminUC.UpdateOrderStatus(c.Request().Context(), actor, orderID, &usecase.UpdateOrderStatusInput{
		Status:         req.Status,
		TrackingNumber: req.TrackingNumber,
		Notes:          req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}

// ListUsers pages through the users along with their order counts.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, err := h.pages.parse(c, userPageDefaults)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	users, err := h.adminUC.ListUsers(c.Request().Context(), actor, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, users, newUserSummaryView)
}
