package handler

import (
	"log/slog"
	"net/http"

	"marquee/internal/delivery/http/middleware"
	"marquee/internal/delivery/http/response"
	"marquee/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// PlaceOrder converts the caller's cart into an order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "NOT_LOGGED_IN", "Authentication required")
	}

	order, err := h.uc.PlaceOrder(c.Request().Context(), principal.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// GetOrder returns a single order owned by the caller.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "NOT_LOGGED_IN", "Authentication required")
	}

	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order ID format")
	}

	order, err := h.uc.GetOrder(c.Request().Context(), principal.UserID, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order retrieved successfully")
}

// ListOrders returns the caller's order history, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "NOT_LOGGED_IN", "Authentication required")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), principal.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}
