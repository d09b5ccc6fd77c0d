package handler

import (
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// OrderHandler serves checkout and the customer's own orders.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	pages   pageParser
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		pages:   newPageParser(params.Config),
		logger:  params.Logger,
	}
}

// ShippingAddressRequest is the postal address entered at checkout.
type ShippingAddressRequest struct {
	Street     string `json:"street" validate:"required,max=255"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,max=100"`
}

// CreateOrderRequest represents the checkout request body.
type CreateOrderRequest struct {
	ShippingAddress ShippingAddressRequest `json:"shippingAddress"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"required"`
	ShippingMethod  string                 `json:"shippingMethod" validate:"omitempty,max=20"`
	Notes           string                 `json:"notes" validate:"max=1000"`
}

// CreateOrder places an order from the caller's cart.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), userID, &usecase.CreateOrderInput{
		ShippingAddress: usecase.AddressInput{
			Street:     req.ShippingAddress.Street,
			City:       req.ShippingAddress.City,
			State:      req.ShippingAddress.State,
			PostalCode: req.ShippingAddress.PostalCode,
			Country:    req.ShippingAddress.Country,
		},
		PaymentMethod:  req.PaymentMethod,
		ShippingMethod: req.ShippingMethod,
		Notes:          req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOrderView(order))
}

// ListOrders pages through the caller's orders, newest first by default.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page, err := h.pages.parse(c, orderPageDefaults)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.orderUC.ListUserOrders(c.Request().Context(), userID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, orders, newOrderView)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetUserOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}

func (h *OrderHandler) GetOrderByNumber(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	order, err := h.orderUC.GetUserOrderByNumber(c.Request().Context(), userID, c.Param("orderNumber"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderView(order))
}

// GetReceiptQR renders the order's receipt QR code as a PNG image.
func (h *OrderHandler) GetReceiptQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.orderUC.GetReceiptQR(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
