// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "marquee/internal/delivery/context"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveEffectiveCart merges or adopts the session cart against the
// principal's cart inside a single transaction.
func (srv *cartService) ResolveEffectiveCart(ctx context.Context, ref usecase.CartRef) (*entity.Cart, error) {
	var cart *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resolved, err := srv.resolveCart(ctx, repoFactory, ref)
		if err != nil {
			return err
		}
		cart = resolved

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to resolve effective cart", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve effective cart")
	}
	srv.log(ctx).Debug("Resolved effective cart", slog.Any("cart_id", cart.ID))

	return cart, nil
}

// GetCart resolves the effective cart and returns it with derived totals.
func (srv *cartService) GetCart(ctx context.Context, ref usecase.CartRef) (*usecase.CartSummary, error) {
	var summary *usecase.CartSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cart, err := srv.resolveCart(ctx, repoFactory, ref)
		if err != nil {
			return err
		}

		summary, err = srv.buildSummary(ctx, repoFactory, cart.ID)

		return err
	})

	if err != nil {
		srv.log(ctx).Error("Failed to get cart", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get cart")
	}

	return summary, nil
}

// AddItem adds a product to the effective cart. Adding the same product
// with the same kind fails, while a different kind replaces the old item.
func (srv *cartService) AddItem(ctx context.Context, ref usecase.CartRef, input usecase.AddItemInput) (*usecase.CartSummary, error) {
	srv.log(ctx).Debug("Adding cart item", slog.Any("product_id", input.ProductID), slog.String("kind", string(input.Kind)))

	var summary *usecase.CartSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		catalogRepo := repoFactory.CatalogRepo()

		cart, err := srv.resolveCart(ctx, repoFactory, ref)
		if err != nil {
			return err
		}

		// 1. The product must exist before it can enter a cart.
		if _, err := catalogRepo.FindProductByID(ctx, input.ProductID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("product not found")
			}

			return errors.Wrap(err, "failed to find product")
		}

		// 2. At most one item per product. Same kind is a duplicate,
		// a different kind replaces the existing item.
		if existing := cart.FindItem(input.ProductID); existing != nil {
			if existing.Kind == input.Kind {
				return domainerrors.ErrAlreadyExists.WrapMessage("product already in cart with the same kind")
			}
			if err := cartRepo.DeleteCartItem(ctx, cart.ID, input.ProductID); err != nil {
				return errors.Wrap(err, "failed to replace cart item")
			}
		}

		item := &entity.CartItem{
			ID:        uuid.New(),
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Kind:      input.Kind,
			Selected:  true,
		}
		if err := cartRepo.CreateCartItem(ctx, item); err != nil {
			return errors.Wrap(err, "failed to create cart item")
		}

		summary, err = srv.buildSummary(ctx, repoFactory, cart.ID)

		return err
	})

	if err != nil {
		srv.log(ctx).Error("Failed to add cart item", slog.Any("error", err), slog.Any("product_id", input.ProductID))

		return nil, errors.Wrap(err, "failed to add cart item")
	}
	srv.log(ctx).Debug("Cart item added", slog.Any("cart_id", summary.CartID), slog.Any("product_id", input.ProductID))

	return summary, nil
}

// UpdateItem changes the kind or selection of an existing cart item.
func (srv *cartService) UpdateItem(ctx context.Context, ref usecase.CartRef, input usecase.UpdateItemInput) (*usecase.CartSummary, error) {
	var summary *usecase.CartSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := srv.resolveCart(ctx, repoFactory, ref)
		if err != nil {
			return err
		}

		item := cart.FindItem(input.ProductID)
		if item == nil {
			return domainerrors.ErrNotFound.WrapMessage("cart item not found")
		}

		if input.Kind != nil {
			item.Kind = *input.Kind
		}
		if input.Selected != nil {
			item.Selected = *input.Selected
		}

		if err := cartRepo.UpdateCartItem(ctx, item); err != nil {
			return errors.Wrap(err, "failed to update cart item")
		}

		summary, err = srv.buildSummary(ctx, repoFactory, cart.ID)

		return err
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update cart item", slog.Any("error", err), slog.Any("product_id", input.ProductID))

		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return summary, nil
}

// RemoveItem removes a product from the effective cart.
func (srv *cartService) RemoveItem(ctx context.Context, ref usecase.CartRef, productID uuid.UUID) (*usecase.CartSummary, error) {
	var summary *usecase.CartSummary

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, err := srv.resolveCart(ctx, repoFactory, ref)
		if err != nil {
			return err
		}

		if cart.FindItem(productID) == nil {
			return domainerrors.ErrNotFound.WrapMessage("cart item not found")
		}

		if err := cartRepo.DeleteCartItem(ctx, cart.ID, productID); err != nil {
			return errors.Wrap(err, "failed to delete cart item")
		}

		summary, err = srv.buildSummary(ctx, repoFactory, cart.ID)

		return err
	})

	if err != nil {
		srv.log(ctx).Error("Failed to remove cart item", slog.Any("error", err), slog.Any("product_id", productID))

		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return summary, nil
}

// resolveCart is the cart reconciliation state machine. It runs inside the
// caller's transaction so merge and mutation stay atomic.
func (srv *cartService) resolveCart(ctx context.Context, repoFactory repository.RepositoryFactory, ref usecase.CartRef) (*entity.Cart, error) {
	cartRepo := repoFactory.CartRepo()

	// 1. Load the session cart if the client presented one. A stale
	// identifier is treated the same as no session cart.
	var sessionCart *entity.Cart
	if ref.SessionCartID != nil {
		found, err := cartRepo.FindCartByID(ctx, *ref.SessionCartID)
		if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(err, "failed to find session cart")
		}
		sessionCart = found
	}

	// 2. Anonymous visitor: use the session cart as-is, unless it already
	// belongs to some user. A stale cookie must never leak a user's cart
	// into an anonymous session, so start over with a fresh one.
	if ref.Principal == nil {
		if sessionCart != nil && sessionCart.OwnerID == nil {
			return sessionCart, nil
		}

		return srv.createCart(ctx, cartRepo, nil)
	}

	userID := ref.Principal.UserID

	userCart, err := cartRepo.FindCartByOwnerID(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find user cart")
	}

	// 3. A session cart owned by a different user is off limits for the
	// same privacy reason as above. Fall back to the user's own cart.
	if sessionCart != nil && sessionCart.OwnerID != nil && *sessionCart.OwnerID != userID {
		sessionCart = nil
	}

	// 4. No usable session cart: the user's cart, created lazily.
	if sessionCart == nil {
		if userCart != nil {
			return userCart, nil
		}

		return srv.createCart(ctx, cartRepo, &userID)
	}

	// 5. The session cart is already this user's cart.
	if sessionCart.IsOwnedBy(userID) {
		return sessionCart, nil
	}

	// 6. Anonymous session cart and the user has none: adopt it.
	if userCart == nil {
		if err := cartRepo.ClaimCart(ctx, sessionCart.ID, userID); err != nil {
			return nil, errors.Wrap(err, "failed to claim session cart")
		}
		sessionCart.OwnerID = &userID

		return sessionCart, nil
	}

	// 7. Both carts exist: merge. The user's cart always wins on product
	// conflicts, session items are only additive. The session cart is
	// deleted once drained.
	for i := range sessionCart.Items {
		sessionItem := &sessionCart.Items[i]
		if userCart.FindItem(sessionItem.ProductID) != nil {
			continue
		}

		moved := &entity.CartItem{
			ID:        uuid.New(),
			CartID:    userCart.ID,
			ProductID: sessionItem.ProductID,
			Kind:      sessionItem.Kind,
			Selected:  sessionItem.Selected,
		}
		if err := cartRepo.CreateCartItem(ctx, moved); err != nil {
			return nil, errors.Wrap(err, "failed to move session cart item")
		}
		userCart.Items = append(userCart.Items, *moved)
	}

	if err := cartRepo.DeleteCart(ctx, sessionCart.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete merged session cart")
	}

	return userCart, nil
}

// createCart persists a fresh empty cart for the given owner, or an
// ownerless cart when ownerID is nil.
func (srv *cartService) createCart(ctx context.Context, cartRepo repository.CartRepository, ownerID *uuid.UUID) (*entity.Cart, error) {
	cart := &entity.Cart{
		ID:      uuid.New(),
		OwnerID: ownerID,
	}
	if err := cartRepo.CreateCart(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	return cart, nil
}

// buildSummary re-reads the cart and derives totals from current product
// prices. Totals are never cached in rows.
func (srv *cartService) buildSummary(ctx context.Context, repoFactory repository.RepositoryFactory, cartID uuid.UUID) (*usecase.CartSummary, error) {
	cartRepo := repoFactory.CartRepo()
	catalogRepo := repoFactory.CatalogRepo()

	cart, err := cartRepo.FindCartByID(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload cart")
	}

	productIDs := make([]uuid.UUID, 0, len(cart.Items))
	for i := range cart.Items {
		productIDs = append(productIDs, cart.Items[i].ProductID)
	}

	products, err := catalogRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}
	productByID := make(map[uuid.UUID]*entity.Product, len(products))
	movieIDs := make([]uuid.UUID, 0, len(products))
	for _, product := range products {
		productByID[product.ID] = product
		movieIDs = append(movieIDs, product.MovieID)
	}

	movies, err := catalogRepo.FindMoviesByIDs(ctx, movieIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart movies")
	}
	movieByID := make(map[uuid.UUID]*entity.Movie, len(movies))
	for _, movie := range movies {
		movieByID[movie.ID] = movie
	}

	summary := &usecase.CartSummary{
		CartID:  cart.ID,
		OwnerID: cart.OwnerID,
		Lines:   make([]usecase.CartLine, 0, len(cart.Items)),
	}
	for i := range cart.Items {
		item := cart.Items[i]

		product, ok := productByID[item.ProductID]
		if !ok {
			// The product was removed from the catalog after it entered
			// the cart. Skip the line rather than fail the whole read.
			continue
		}

		price := product.PriceFor(item.Kind)
		summary.Lines = append(summary.Lines, usecase.CartLine{
			Item:    item,
			Product: product,
			Movie:   movieByID[product.MovieID],
			Price:   price,
		})
		summary.Total += price
		if item.Selected {
			summary.SelectedTotal += price
		}
	}

	return summary, nil
}
