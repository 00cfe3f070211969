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

// EntitlementHandler holds dependencies for playback entitlement handlers.
type EntitlementHandler struct {
	uc     usecase.EntitlementUsecase
	logger *slog.Logger
}

// NewEntitlementHandler is the constructor for EntitlementHandler, injected by Fx.
func NewEntitlementHandler(uc usecase.EntitlementUsecase, logger *slog.Logger) *EntitlementHandler {
	return &EntitlementHandler{
		uc:     uc,
		logger: logger,
	}
}

// CanWatch reports whether the caller may watch the movie right now.
func (h *EntitlementHandler) CanWatch(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "NOT_LOGGED_IN", "Authentication required")
	}

	movieID, err := uuid.Parse(c.Param("movieID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid movie ID format")
	}

	decision, err := h.uc.CanWatch(c.Request().Context(), principal, movieID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, decision, "Watch decision computed")
}

// ListActivePurchases returns the caller's active purchases for one movie.
func (h *EntitlementHandler) ListActivePurchases(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "NOT_LOGGED_IN", "Authentication required")
	}

	movieID, err := uuid.Parse(c.Param("movieID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid movie ID format")
	}

	purchases, err := h.uc.ListActivePurchases(c.Request().Context(), principal.UserID, movieID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchases, "Active purchases retrieved successfully")
}

// ListActiveMovies returns the movies the caller can currently watch.
func (h *EntitlementHandler) ListActiveMovies(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "NOT_LOGGED_IN", "Authentication required")
	}

	movies, err := h.uc.ListActiveMovies(c.Request().Context(), principal.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Active movies retrieved successfully")
}
