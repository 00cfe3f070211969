package impl

import (
	"context"
	"log/slog"

	deliverycontext "marquee/internal/delivery/context"
	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	"marquee/internal/domain/service"
	"marquee/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// entitlementService implements the EntitlementUsecase interface.
type entitlementService struct {
	txManager repository.TransactionManager
	clock     service.Clock
	logger    *slog.Logger
}

// EntitlementServiceParams holds dependencies for entitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	return &entitlementService{
		txManager: params.TxManager,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CanWatch reports whether the principal may watch the movie right now.
// Never having purchased the movie means no access, not an error.
func (srv *entitlementService) CanWatch(ctx context.Context, principal entity.Principal, movieID uuid.UUID) (*usecase.WatchDecision, error) {
	// Admins bypass entitlement entirely.
	if principal.IsAdmin() {
		return &usecase.WatchDecision{Allowed: true}, nil
	}

	var decision *usecase.WatchDecision

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purchases, err := repoFactory.PurchaseRepo().FindPurchasesByUserAndMovie(ctx, principal.UserID, movieID)
		if err != nil {
			return errors.Wrap(err, "failed to find purchases")
		}

		decision = srv.decide(purchases)

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to check watch entitlement", slog.Any("error", err), slog.Any("movie_id", movieID))

		return nil, errors.Wrap(err, "failed to check watch entitlement")
	}
	srv.log(ctx).Debug("Watch entitlement checked",
		slog.Any("user_id", principal.UserID), slog.Any("movie_id", movieID), slog.Bool("allowed", decision.Allowed))

	return decision, nil
}

// decide folds a purchase set into a single watch decision. A permanent
// purchase wins over any rental. When only rentals grant access, the
// latest expiry among the active ones is reported.
func (srv *entitlementService) decide(purchases []*entity.Purchase) *usecase.WatchDecision {
	now := srv.clock.Now()
	decision := &usecase.WatchDecision{}

	for _, purchase := range purchases {
		if !purchase.IsActive(now) {
			continue
		}
		decision.Allowed = true

		if purchase.Kind == entity.PurchaseKindBuy {
			decision.ExpiresAt = nil

			return decision
		}

		expiry := purchase.ExpiresAt()
		if decision.ExpiresAt == nil || expiry.After(*decision.ExpiresAt) {
			decision.ExpiresAt = expiry
		}
	}

	return decision
}

// ListActivePurchases returns the user's active purchases for one movie.
// Zero purchase rows is reported as not found. An all-expired history
// yields an empty list instead.
func (srv *entitlementService) ListActivePurchases(ctx context.Context, userID, movieID uuid.UUID) ([]*entity.Purchase, error) {
	var active []*entity.Purchase

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purchases, err := repoFactory.PurchaseRepo().FindPurchasesByUserAndMovie(ctx, userID, movieID)
		if err != nil {
			return errors.Wrap(err, "failed to find purchases")
		}
		if len(purchases) == 0 {
			return domainerrors.ErrNotFound.WrapMessage("no purchases for this movie")
		}

		now := srv.clock.Now()
		active = make([]*entity.Purchase, 0, len(purchases))
		for _, purchase := range purchases {
			if purchase.IsActive(now) {
				active = append(active, purchase)
			}
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list active purchases", slog.Any("error", err), slog.Any("movie_id", movieID))

		return nil, errors.Wrap(err, "failed to list active purchases")
	}

	return active, nil
}

// ListActiveMovies returns one movie per distinct title the user can
// currently watch.
func (srv *entitlementService) ListActiveMovies(ctx context.Context, userID uuid.UUID) ([]*entity.Movie, error) {
	var movies []*entity.Movie

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		purchaseRepo := repoFactory.PurchaseRepo()
		catalogRepo := repoFactory.CatalogRepo()

		purchases, err := purchaseRepo.FindPurchasesByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find purchases")
		}

		// Deduplicate by movie: bought and rented copies of the same
		// title collapse into one reference.
		now := srv.clock.Now()
		seen := make(map[uuid.UUID]struct{}, len(purchases))
		movieIDs := make([]uuid.UUID, 0, len(purchases))
		for _, purchase := range purchases {
			if !purchase.IsActive(now) {
				continue
			}
			if _, ok := seen[purchase.MovieID]; ok {
				continue
			}
			seen[purchase.MovieID] = struct{}{}
			movieIDs = append(movieIDs, purchase.MovieID)
		}

		movies, err = catalogRepo.FindMoviesByIDs(ctx, movieIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load movies")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to list active movies", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to list active movies")
	}

	return movies, nil
}
