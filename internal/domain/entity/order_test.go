package entity

import (
	"testing"
	"time"

	domainerrors "marquee/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchase_IsActive_RentalBoundary(t *testing.T) {
	purchasedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 48 * time.Hour
	purchase := &Purchase{
		Kind:         PurchaseKindRent,
		RentDuration: &window,
		PurchasedAt:  purchasedAt,
	}

	assert.True(t, purchase.IsActive(purchasedAt))
	assert.True(t, purchase.IsActive(purchasedAt.Add(window-time.Nanosecond)))
	// The expiry instant itself is already outside the window.
	assert.False(t, purchase.IsActive(purchasedAt.Add(window)))
	assert.False(t, purchase.IsActive(purchasedAt.Add(window+time.Hour)))
}

func TestPurchase_IsActive_PurchaseNeverExpires(t *testing.T) {
	purchase := &Purchase{
		Kind:        PurchaseKindBuy,
		PurchasedAt: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, purchase.IsActive(purchase.PurchasedAt.AddDate(10, 0, 0)))
}

func TestPurchase_IsActive_RentalWithoutDuration(t *testing.T) {
	purchase := &Purchase{
		Kind:        PurchaseKindRent,
		PurchasedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	// A rental row missing its duration grants nothing.
	assert.False(t, purchase.IsActive(purchase.PurchasedAt))
}

func TestPurchase_ExpiresAt(t *testing.T) {
	purchasedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	window := 48 * time.Hour

	rental := &Purchase{Kind: PurchaseKindRent, RentDuration: &window, PurchasedAt: purchasedAt}
	expiry := rental.ExpiresAt()
	require.NotNil(t, expiry)
	assert.Equal(t, purchasedAt.Add(window), *expiry)

	bought := &Purchase{Kind: PurchaseKindBuy, PurchasedAt: purchasedAt}
	assert.Nil(t, bought.ExpiresAt())
}

func TestParsePurchaseKind(t *testing.T) {
	kind, err := ParsePurchaseKind("BUY")
	assert.NoError(t, err)
	assert.Equal(t, PurchaseKindBuy, kind)

	kind, err = ParsePurchaseKind("RENT")
	assert.NoError(t, err)
	assert.Equal(t, PurchaseKindRent, kind)

	_, err = ParsePurchaseKind("LEASE")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBadRequest))

	// Kinds are case sensitive on the wire.
	_, err = ParsePurchaseKind("buy")
	assert.Error(t, err)
}
