package handler

import (
	"log/slog"
	"net/http"

	"marquee/internal/delivery/http/middleware"
	"marquee/internal/delivery/http/response"
	"marquee/internal/domain/entity"
	"marquee/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// cartCookieName carries the anonymous session's cart identifier.
const cartCookieName = "cart_id"

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Kind      string `json:"kind" validate:"required"`
}

type updateItemRequest struct {
	Kind     *string `json:"kind"`
	Selected *bool   `json:"selected"`
}

// GetCart returns the caller's effective cart with derived totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	summary, err := h.uc.GetCart(c.Request().Context(), h.cartRef(c))
	if err != nil {
		return errors.WithStack(err)
	}

	h.syncCartCookie(c, summary)

	return response.Success(c, http.StatusOK, summary, "Cart retrieved successfully")
}

// AddItem adds a product to the caller's effective cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID format")
	}

	kind, err := entity.ParsePurchaseKind(req.Kind)
	if err != nil {
		return errors.WithStack(err)
	}

	summary, err := h.uc.AddItem(c.Request().Context(), h.cartRef(c), usecase.AddItemInput{
		ProductID: productID,
		Kind:      kind,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.syncCartCookie(c, summary)

	return response.Success(c, http.StatusCreated, summary, "Item added to cart")
}

// UpdateItem changes the kind or selection of an existing cart item.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID format")
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	input := usecase.UpdateItemInput{
		ProductID: productID,
		Selected:  req.Selected,
	}
	if req.Kind != nil {
		kind, err := entity.ParsePurchaseKind(*req.Kind)
		if err != nil {
			return errors.WithStack(err)
		}
		input.Kind = &kind
	}

	summary, err := h.uc.UpdateItem(c.Request().Context(), h.cartRef(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.syncCartCookie(c, summary)

	return response.Success(c, http.StatusOK, summary, "Cart item updated")
}

// RemoveItem removes a product from the caller's effective cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID format")
	}

	summary, err := h.uc.RemoveItem(c.Request().Context(), h.cartRef(c), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	h.syncCartCookie(c, summary)

	return response.Success(c, http.StatusOK, summary, "Cart item removed")
}

// cartRef builds the cart reference from the optional principal and the
// session cart cookie. A cookie that fails to parse counts as no cart.
func (h *CartHandler) cartRef(c echo.Context) usecase.CartRef {
	var ref usecase.CartRef

	if principal, ok := middleware.PrincipalFrom(c); ok {
		ref.Principal = &principal
	}

	if cookie, err := c.Cookie(cartCookieName); err == nil {
		if id, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
			ref.SessionCartID = &id
		}
	}

	return ref
}

// syncCartCookie keeps the session cookie pointing at the effective cart.
// Once the cart has an owner the user record is the source of truth and
// the cookie is dropped.
func (h *CartHandler) syncCartCookie(c echo.Context, summary *usecase.CartSummary) {
	if summary.OwnerID != nil {
		c.SetCookie(&http.Cookie{
			Name:     cartCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		return
	}

	c.SetCookie(&http.Cookie{
		Name:     cartCookieName,
		Value:    summary.CartID.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
