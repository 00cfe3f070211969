package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marquee/internal/domain/entity"
	domainerrors "marquee/internal/domain/errors"
	"marquee/internal/domain/repository"
	mockRepo "marquee/internal/mocks/repository"
	mockSvc "marquee/internal/mocks/service"
	"marquee/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// entitlementServiceFixtures holds all test dependencies for entitlement service tests.
type entitlementServiceFixtures struct {
	service   usecase.EntitlementUsecase
	txManager *mockRepo.MockTransactionManager
	clock     *mockSvc.MockClock
}

func createTestEntitlementService(t *testing.T) entitlementServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	clock := mockSvc.NewMockClock(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewEntitlementService(EntitlementServiceParams{
		TxManager: txManager,
		Clock:     clock,
		Logger:    logger,
	})

	return entitlementServiceFixtures{
		service:   svc,
		txManager: txManager,
		clock:     clock,
	}
}

func rentalPurchase(userID, movieID uuid.UUID, purchasedAt time.Time, duration time.Duration) *entity.Purchase {
	return &entity.Purchase{
		ID:           uuid.New(),
		UserID:       userID,
		MovieID:      movieID,
		Kind:         entity.PurchaseKindRent,
		RentDuration: &duration,
		PurchasedAt:  purchasedAt,
	}
}

func expectPurchasesForMovie(t *testing.T, fx entitlementServiceFixtures, ctx context.Context, userID, movieID uuid.UUID, purchases []*entity.Purchase, result error) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)

			mockPurchaseRepo.EXPECT().
				FindPurchasesByUserAndMovie(ctx, userID, movieID).
				Return(purchases, nil)

			_ = fn(mockFactory)
		}).
		Return(result)
}

func TestEntitlementService_CanWatch_RentalActiveUntilExpiryInstant(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()
	purchasedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 48 * time.Hour
	purchase := rentalPurchase(userID, movieID, purchasedAt, window)
	principal := entity.Principal{UserID: userID, Role: entity.RoleUser}

	// One nanosecond before expiry the rental still grants playback.
	fx.clock.EXPECT().Now().Return(purchasedAt.Add(window - time.Nanosecond)).Once()

	expectPurchasesForMovie(t, fx, ctx, userID, movieID, []*entity.Purchase{purchase}, nil)

	decision, err := fx.service.CanWatch(ctx, principal, movieID)

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	require.NotNil(t, decision.ExpiresAt)
	assert.Equal(t, purchasedAt.Add(window), *decision.ExpiresAt)
}

func TestEntitlementService_CanWatch_RentalInactiveAtExpiryInstant(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()
	purchasedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 48 * time.Hour
	purchase := rentalPurchase(userID, movieID, purchasedAt, window)
	principal := entity.Principal{UserID: userID, Role: entity.RoleUser}

	// At exactly purchasedAt plus the window the rental is already over.
	fx.clock.EXPECT().Now().Return(purchasedAt.Add(window)).Once()

	expectPurchasesForMovie(t, fx, ctx, userID, movieID, []*entity.Purchase{purchase}, nil)

	decision, err := fx.service.CanWatch(ctx, principal, movieID)

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Nil(t, decision.ExpiresAt)
}

func TestEntitlementService_CanWatch_PurchaseNeverExpires(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()
	purchasedAt := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	purchase := &entity.Purchase{
		ID:          uuid.New(),
		UserID:      userID,
		MovieID:     movieID,
		Kind:        entity.PurchaseKindBuy,
		PurchasedAt: purchasedAt,
	}
	principal := entity.Principal{UserID: userID, Role: entity.RoleUser}

	fx.clock.EXPECT().Now().Return(purchasedAt.AddDate(5, 0, 0)).Once()

	expectPurchasesForMovie(t, fx, ctx, userID, movieID, []*entity.Purchase{purchase}, nil)

	decision, err := fx.service.CanWatch(ctx, principal, movieID)

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Nil(t, decision.ExpiresAt)
}

func TestEntitlementService_CanWatch_PurchaseWinsOverRental(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	principal := entity.Principal{UserID: userID, Role: entity.RoleUser}

	purchases := []*entity.Purchase{
		rentalPurchase(userID, movieID, now.Add(-time.Hour), 48*time.Hour),
		{
			ID:          uuid.New(),
			UserID:      userID,
			MovieID:     movieID,
			Kind:        entity.PurchaseKindBuy,
			PurchasedAt: now.Add(-time.Minute),
		},
	}

	fx.clock.EXPECT().Now().Return(now).Once()

	expectPurchasesForMovie(t, fx, ctx, userID, movieID, purchases, nil)

	decision, err := fx.service.CanWatch(ctx, principal, movieID)

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	// An owned copy has no expiry, whatever rentals sit next to it.
	assert.Nil(t, decision.ExpiresAt)
}

func TestEntitlementService_CanWatch_LatestRentalExpiryReported(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	principal := entity.Principal{UserID: userID, Role: entity.RoleUser}

	early := rentalPurchase(userID, movieID, now.Add(-40*time.Hour), 48*time.Hour)
	late := rentalPurchase(userID, movieID, now.Add(-time.Hour), 48*time.Hour)

	fx.clock.EXPECT().Now().Return(now).Once()

	expectPurchasesForMovie(t, fx, ctx, userID, movieID, []*entity.Purchase{early, late}, nil)

	decision, err := fx.service.CanWatch(ctx, principal, movieID)

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	require.NotNil(t, decision.ExpiresAt)
	assert.Equal(t, late.PurchasedAt.Add(48*time.Hour), *decision.ExpiresAt)
}

func TestEntitlementService_CanWatch_NoPurchases(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()
	principal := entity.Principal{UserID: userID, Role: entity.RoleUser}

	fx.clock.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Once()

	expectPurchasesForMovie(t, fx, ctx, userID, movieID, []*entity.Purchase{}, nil)

	// Never having bought the movie is a clean denial, not an error.
	decision, err := fx.service.CanWatch(ctx, principal, movieID)

	require.NoError(t, err)
	assert.False(t, decision.Allowed)
}

func TestEntitlementService_CanWatch_AdminBypass(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	principal := entity.Principal{UserID: uuid.New(), Role: entity.RoleAdmin}

	// No transaction and no purchase lookup for admins.
	decision, err := fx.service.CanWatch(ctx, principal, uuid.New())

	require.NoError(t, err)
	assert.True(t, decision.Allowed)
	assert.Nil(t, decision.ExpiresAt)
}

func TestEntitlementService_ListActivePurchases_NoHistory(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()

	expectPurchasesForMovie(t, fx, ctx, userID, movieID, []*entity.Purchase{},
		domainerrors.ErrNotFound.WrapMessage("no purchases for this movie"))

	active, err := fx.service.ListActivePurchases(ctx, userID, movieID)

	assert.Error(t, err)
	assert.Nil(t, active)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestEntitlementService_ListActivePurchases_AllExpired(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	expired := rentalPurchase(userID, movieID, now.Add(-100*time.Hour), 48*time.Hour)

	fx.clock.EXPECT().Now().Return(now).Once()

	expectPurchasesForMovie(t, fx, ctx, userID, movieID, []*entity.Purchase{expired}, nil)

	// Expired history is an empty list, distinct from no history at all.
	active, err := fx.service.ListActivePurchases(ctx, userID, movieID)

	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestEntitlementService_ListActivePurchases_FiltersExpired(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	movieID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	expired := rentalPurchase(userID, movieID, now.Add(-100*time.Hour), 48*time.Hour)
	live := rentalPurchase(userID, movieID, now.Add(-time.Hour), 48*time.Hour)

	fx.clock.EXPECT().Now().Return(now).Once()

	expectPurchasesForMovie(t, fx, ctx, userID, movieID, []*entity.Purchase{expired, live}, nil)

	active, err := fx.service.ListActivePurchases(ctx, userID, movieID)

	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, live.ID, active[0].ID)
}

func TestEntitlementService_ListActiveMovies_DeduplicatesByMovie(t *testing.T) {
	fx := createTestEntitlementService(t)

	ctx := context.Background()
	userID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	movieA := &entity.Movie{ID: uuid.New(), Title: "Movie A"}
	movieB := &entity.Movie{ID: uuid.New(), Title: "Movie B"}

	purchases := []*entity.Purchase{
		// Movie A is both owned and rented. It must appear once.
		{ID: uuid.New(), UserID: userID, MovieID: movieA.ID, Kind: entity.PurchaseKindBuy, PurchasedAt: now.Add(-time.Hour)},
		rentalPurchase(userID, movieA.ID, now.Add(-time.Hour), 48*time.Hour),
		rentalPurchase(userID, movieB.ID, now.Add(-time.Hour), 48*time.Hour),
		// An expired rental of a third movie contributes nothing.
		rentalPurchase(userID, uuid.New(), now.Add(-100*time.Hour), 48*time.Hour),
	}

	fx.clock.EXPECT().Now().Return(now).Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().PurchaseRepo().Return(mockPurchaseRepo)
			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockPurchaseRepo.EXPECT().
				FindPurchasesByUserID(ctx, userID).
				Return(purchases, nil)

			mockCatalogRepo.EXPECT().
				FindMoviesByIDs(ctx, []uuid.UUID{movieA.ID, movieB.ID}).
				Return([]*entity.Movie{movieA, movieB}, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	movies, err := fx.service.ListActiveMovies(ctx, userID)

	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, movieA.ID, movies[0].ID)
	assert.Equal(t, movieB.ID, movies[1].ID)
}
