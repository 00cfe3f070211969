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

// CatalogHandler holds dependencies for catalog browsing and administration.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

type movieRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ReleaseYear int    `json:"release_year" validate:"required,gte=1888"`
}

type productRequest struct {
	Name      string `json:"name" validate:"required"`
	BuyPrice  int64  `json:"buy_price" validate:"gte=0"`
	RentPrice int64  `json:"rent_price" validate:"gte=0"`
}

// ListMovies returns the whole catalog.
func (h *CatalogHandler) ListMovies(c echo.Context) error {
	movies, err := h.uc.ListMovies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movies, "Movies retrieved successfully")
}

// GetMovie returns a movie with its products.
func (h *CatalogHandler) GetMovie(c echo.Context) error {
	movieID, err := uuid.Parse(c.Param("movieID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid movie ID format")
	}

	movie, products, err := h.uc.GetMovie(c.Request().Context(), movieID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"movie":    movie,
		"products": products,
	}, "Movie retrieved successfully")
}

// GetProduct returns a single sellable product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID format")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// CreateMovie adds a movie to the catalog. Admin only.
func (h *CatalogHandler) CreateMovie(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "NOT_LOGGED_IN", "Authentication required")
	}

	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid movie input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	movie, err := h.uc.CreateMovie(c.Request().Context(), principal, usecase.CreateMovieInput{
		Title:       req.Title,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, movie, "Movie created successfully")
}

// UpdateMovie rewrites a movie's metadata. Admin only.
func (h *CatalogHandler) UpdateMovie(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "NOT_LOGGED_IN", "Authentication required")
	}

	movieID, err := uuid.Parse(c.Param("movieID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid movie ID format")
	}

	var req movieRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid movie input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	movie, err := h.uc.UpdateMovie(c.Request().Context(), principal, usecase.UpdateMovieInput{
		MovieID:     movieID,
		Title:       req.Title,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movie, "Movie updated successfully")
}

// DeleteMovie removes a movie and its products. Admin only.
func (h *CatalogHandler) DeleteMovie(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "NOT_LOGGED_IN", "Authentication required")
	}

	movieID, err := uuid.Parse(c.Param("movieID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid movie ID format")
	}

	if err := h.uc.DeleteMovie(c.Request().Context(), principal, movieID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Movie deleted successfully")
}

// CreateProduct attaches a sellable product to a movie. Admin only.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "NOT_LOGGED_IN", "Authentication required")
	}

	movieID, err := uuid.Parse(c.Param("movieID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid movie ID format")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), principal, usecase.CreateProductInput{
		MovieID:   movieID,
		Name:      req.Name,
		BuyPrice:  req.BuyPrice,
		RentPrice: req.RentPrice,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct rewrites a product's offer. Admin only.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "NOT_LOGGED_IN", "Authentication required")
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID format")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), principal, usecase.UpdateProductInput{
		ProductID: productID,
		Name:      req.Name,
		BuyPrice:  req.BuyPrice,
		RentPrice: req.RentPrice,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes a product from the catalog. Admin only.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return response.Unauthorized(c, "NOT_LOGGED_IN", "Authentication required")
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID format")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), principal, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
