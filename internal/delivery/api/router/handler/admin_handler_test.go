package handler

import (
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/analytics"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAdminHandler(t *testing.T) (*AdminHandler, *mockUsecase.MockAdminUsecase) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)

	return NewAdminHandler(AdminHandlerParams{AdminUC: adminUC, Config: testConfig()}), adminUC
}

func TestAdminHandler_GetDashboardStats(t *testing.T) {
	h, adminUC := newTestAdminHandler(t)
	adminID := uuid.New()
	actor := usecase.Actor{UserID: adminID, Roles: entity.Roles{entity.RoleAdmin}}
	productID := uuid.New()

	adminUC.On("GetDashboardStats", mock.Anything, actor).Return(&analytics.DashboardStats{
		TotalProducts:  12,
		TotalOrders:    3,
		TotalUsers:     2,
		TotalRevenue:   decimal.RequireFromString("3149"),
		RevenueToday:   decimal.Zero,
		OrdersByStatus: map[entity.OrderStatus]int64{entity.OrderStatusPending: 3},
		DailySales: []analytics.DailySales{
			{Date: time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC), Label: "Mar 18", Orders: 3, Revenue: decimal.RequireFromString("3149")},
		},
		TopProducts: []analytics.ProductSales{
			{ProductID: productID, ProductName: "RTX 4090", QuantitySold: 2, TotalRevenue: decimal.NewFromInt(2000)},
		},
		SalesByCategory: map[string]decimal.Decimal{"Uncategorized": decimal.RequireFromString("3149")},
	}, nil).Once()

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/dashboard/stats", nil)
	authenticateAs(c, adminID, entity.RoleAdmin)

	require.NoError(t, h.GetDashboardStats(c))
	assertStatus(t, rec, http.StatusOK)

	var got DashboardStatsView
	decodeData(t, rec, &got)
	assert.Equal(t, "3149.00", got.TotalRevenue)
	assert.Equal(t, "0.00", got.RevenueToday)
	assert.Len(t, got.OrdersByStatus, len(entity.OrderStatuses))
	assert.Equal(t, int64(3), got.OrdersByStatus["PENDING"])
	assert.Equal(t, int64(0), got.OrdersByStatus["CANCELLED"])
	require.Len(t, got.DailySales, 1)
	assert.Equal(t, "2026-03-18", got.DailySales[0].Date)
	assert.Equal(t, "Mar 18", got.DailySales[0].Label)
	require.Len(t, got.TopProducts, 1)
	assert.Equal(t, "2000.00", got.TopProducts[0].TotalRevenue)
	assert.Equal(t, "3149.00", got.SalesByCategory["Uncategorized"])
}

func TestAdminHandler_Forbidden(t *testing.T) {
	h, adminUC := newTestAdminHandler(t)
	customerID := uuid.New()
	actor := usecase.Actor{UserID: customerID, Roles: entity.Roles{entity.RoleCustomer}}
	adminUC.On("GetDashboardStats", mock.Anything, actor).Return(nil, domainerrors.ErrForbidden).Once()

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/dashboard/stats", nil)
	authenticateAs(c, customerID, entity.RoleCustomer)

	require.NoError(t, h.GetDashboardStats(c))
	assertStatus(t, rec, http.StatusForbidden)
	assert.Nil(t, decodeError(t, rec).Error.Details)
}

func TestAdminHandler_UpdateOrderStatus(t *testing.T) {
	h, adminUC := newTestAdminHandler(t)
	adminID, orderID := uuid.New(), uuid.New()
	actor := usecase.Actor{UserID: adminID, Roles: entity.Roles{entity.RoleAdmin}}
	tracking := "TRK-123"
	shippedAt := time.Date(2026, 3, 18, 15, 30, 0, 0, time.UTC)

	adminUC.On("UpdateOrderStatus", mock.Anything, actor, orderID, &usecase.UpdateOrderStatusInput{
		Status:         "SHIPPED",
		TrackingNumber: &tracking,
	}).Return(&entity.Order{
		ID:             orderID,
		OrderNumber:    "ORD-1-ABCD",
		Status:         entity.OrderStatusShipped,
		TrackingNumber: tracking,
		ShippedAt:      &shippedAt,
		User:           &entity.User{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com"},
	}, nil).Once()

	c, rec := newTestContext(t, http.MethodPut, "/api/admin/orders/"+orderID.String()+"/status", map[string]any{
		"status":         "SHIPPED",
		"trackingNumber": tracking,
	})
	withPathParams(c, "id", orderID.String())
	authenticateAs(c, adminID, entity.RoleAdmin)

	require.NoError(t, h.UpdateOrderStatus(c))
	assertStatus(t, rec, http.StatusOK)

	var got OrderView
	decodeData(t, rec, &got)
	assert.Equal(t, "SHIPPED", got.Status)
	assert.Equal(t, "TRK-123", got.TrackingNumber)
	assert.Equal(t, "Asha Rao", got.CustomerName)
	require.NotNil(t, got.ShippedAt)
	assert.True(t, shippedAt.Equal(*got.ShippedAt))
}

func TestAdminHandler_UpdateOrderStatus_InvalidStatus(t *testing.T) {
	h, adminUC := newTestAdminHandler(t)
	adminID, orderID := uuid.New(), uuid.New()
	adminUC.On("UpdateOrderStatus", mock.Anything, mock.Anything, orderID, mock.Anything).
		Return(nil, domainerrors.ErrInvalidOrderStatus.WithDetails("LOST")).Once()

	c, rec := newTestContext(t, http.MethodPut, "/api/admin/orders/"+orderID.String()+"/status", map[string]any{"status": "LOST"})
	withPathParams(c, "id", orderID.String())
	authenticateAs(c, adminID, entity.RoleAdmin)

	require.NoError(t, h.UpdateOrderStatus(c))
	assertStatus(t, rec, http.StatusBadRequest)
	assert.Equal(t, "INVALID_ORDER_STATUS", decodeError(t, rec).Error.Code)
}

func TestAdminHandler_ListOrdersByStatus(t *testing.T) {
	h, adminUC := newTestAdminHandler(t)
	adminID := uuid.New()
	want := entity.PageRequest{Size: 10, SortBy: "createdAt", Direction: entity.SortDesc}
	adminUC.On("ListOrdersByStatus", mock.Anything, mock.Anything, "processing", want).
		Return(entity.NewPage[*entity.Order](nil, 0, want), nil).Once()

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/orders/status/processing?size=10", nil)
	withPathParams(c, "status", "processing")
	authenticateAs(c, adminID, entity.RoleAdmin)

	require.NoError(t, h.ListOrdersByStatus(c))
	assertStatus(t, rec, http.StatusOK)
	assert.Contains(t, rec.Body.String(), `"content":[]`)
}

func TestAdminHandler_ListUsers(t *testing.T) {
	h, adminUC := newTestAdminHandler(t)
	adminID := uuid.New()
	want := entity.PageRequest{Size: 12, SortBy: "email", Direction: entity.SortAsc}
	summaries := []*entity.UserSummary{
		{User: &entity.User{ID: uuid.New(), Email: "asha@example.com", Role: entity.RoleCustomer}, TotalOrders: 4},
	}
	adminUC.On("ListUsers", mock.Anything, mock.Anything, want).Return(entity.NewPage(summaries, 1, want), nil).Once()

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/users?sortBy=email&direction=asc", nil)
	authenticateAs(c, adminID, entity.RoleAdmin)

	require.NoError(t, h.ListUsers(c))
	assertStatus(t, rec, http.StatusOK)

	var got struct {
		Content []UserSummaryView `json:"content"`
	}
	decodeData(t, rec, &got)
	require.Len(t, got.Content, 1)
	assert.Equal(t, int64(4), got.Content[0].TotalOrders)
	assert.Equal(t, "asha@example.com", got.Content[0].Email)
}
