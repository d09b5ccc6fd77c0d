// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	categoryHandler *handler.CategoryHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		productHandler:  params.ProductHandler,
		categoryHandler: params.CategoryHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	requireAdmin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Catalog reads are public, writes need the admin role
	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/search", r.productHandler.SearchProducts)
		productsGroup.GET("/featured", r.productHandler.ListFeatured)
		productsGroup.GET("/brands", r.productHandler.ListBrands)
		productsGroup.GET("/category/:categoryId", r.productHandler.ListByCategory)
		productsGroup.GET("/type/:type", r.productHandler.ListByType)
		productsGroup.GET("/:id", r.productHandler.GetProduct)

		productsGroup.POST("", r.productHandler.CreateProduct, r.authMiddleware.Authenticate, requireAdmin)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, r.authMiddleware.Authenticate, requireAdmin)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, r.authMiddleware.Authenticate, requireAdmin)
	}

	categoriesGroup := api.Group("/categories")
	{
		categoriesGroup.GET("", r.categoryHandler.ListCategories)
		categoriesGroup.GET("/root", r.categoryHandler.ListRootCategories)
		categoriesGroup.GET("/tree", r.categoryHandler.GetCategoryTree)
		categoriesGroup.GET("/:id", r.categoryHandler.GetCategory)
		categoriesGroup.GET("/:id/subcategories", r.categoryHandler.ListSubcategories)

		categoriesGroup.POST("", r.categoryHandler.CreateCategory, r.authMiddleware.Authenticate, requireAdmin)
		categoriesGroup.PUT("/:id", r.categoryHandler.UpdateCategory, r.authMiddleware.Authenticate, requireAdmin)
		categoriesGroup.DELETE("/:id", r.categoryHandler.DeleteCategory, r.authMiddleware.Authenticate, requireAdmin)
	}

	// Cart routes require authentication
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddToCart)
		cartGroup.PUT("/items/:itemId", r.cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:itemId", r.cartHandler.RemoveCartItem)
	}

	// Order routes require authentication
	ordersGroup := api.Group("/orders")
	ordersGroup.Use(r.authMiddleware.Authenticate)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/number/:orderNumber", r.orderHandler.GetOrderByNumber)
		ordersGroup.GET("/:id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:id/receipt-qr", r.orderHandler.GetReceiptQR)
	}

	// Admin routes require authentication and the "ADMIN" role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	adminGroup.Use(requireAdmin)                  // Then, check for the role
	{
		adminGroup.GET("/dashboard/stats", r.adminHandler.GetDashboardStats)

		adminGroup.GET("/orders", r.adminHandler.ListOrders)
		adminGroup.GET("/orders/search", r.adminHandler.SearchOrders)
		adminGroup.GET("/orders/status/:status", r.adminHandler.ListOrdersByStatus)
		adminGroup.GET("/orders/:id", r.adminHandler.GetOrder)
		adminGroup.PUT("/orders/:id/status", r.adminHandler.UpdateOrderStatus)

		adminGroup.GET("/users", r.adminHandler.ListUsers)
	}
}
