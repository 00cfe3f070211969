// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marquee/internal/delivery/http/middleware"
	"marquee/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	CartHandler        *handler.CartHandler
	OrderHandler       *handler.OrderHandler
	EntitlementHandler *handler.EntitlementHandler
	CatalogHandler     *handler.CatalogHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	cartHandler        *handler.CartHandler
	orderHandler       *handler.OrderHandler
	entitlementHandler *handler.EntitlementHandler
	catalogHandler     *handler.CatalogHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		cartHandler:        params.CartHandler,
		orderHandler:       params.OrderHandler,
		entitlementHandler: params.EntitlementHandler,
		catalogHandler:     params.CatalogHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/sessions", r.authHandler.ListSessions, r.authMiddleware.Authenticate)
	}

	// Catalog browsing is public
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/movies", r.catalogHandler.ListMovies)
		catalogGroup.GET("/movies/:movieID", r.catalogHandler.GetMovie)
		catalogGroup.GET("/products/:productID", r.catalogHandler.GetProduct)
	}

	// Catalog administration requires the admin role
	adminGroup := e.Group("/admin/catalog")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.POST("/movies", r.catalogHandler.CreateMovie)
		adminGroup.PUT("/movies/:movieID", r.catalogHandler.UpdateMovie)
		adminGroup.DELETE("/movies/:movieID", r.catalogHandler.DeleteMovie)
		adminGroup.POST("/movies/:movieID/products", r.catalogHandler.CreateProduct)
		adminGroup.PUT("/products/:productID", r.catalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:productID", r.catalogHandler.DeleteProduct)
	}

	// Cart routes work for anonymous visitors and logged-in users alike.
	// A visitor carries the cart in a session cookie; once logged in the
	// session cart is merged into the user's cart on first touch.
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.AuthenticateOptional)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:productID", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productID", r.cartHandler.RemoveItem)
	}

	// Checkout and order history require authentication
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.PlaceOrder)
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:orderID", r.orderHandler.GetOrder)
	}

	// Playback entitlement routes
	entitlementGroup := e.Group("/entitlements")
	entitlementGroup.Use(r.authMiddleware.Authenticate)
	{
		entitlementGroup.GET("/movies", r.entitlementHandler.ListActiveMovies)
		entitlementGroup.GET("/movies/:movieID", r.entitlementHandler.CanWatch)
		entitlementGroup.GET("/movies/:movieID/purchases", r.entitlementHandler.ListActivePurchases)
	}
}
