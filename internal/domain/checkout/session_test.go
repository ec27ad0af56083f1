//go:build unit

package checkout_test

import (
	"testing"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/checkout"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(checkout.Session{}, checkout.DeliveryInfo{}),
}

func cartLines() []checkout.CartLine {
	return []checkout.CartLine{
		{MenuItemID: uuid.New(), Name: "Margherita", UnitPriceCents: 1000, Quantity: 2},
	}
}

func mustDelivery(t *testing.T) checkout.DeliveryInfo {
	t.Helper()
	info, err := checkout.NewDeliveryInfo("Jamie", "5 Flour St", "Beirut", "1107", "70123456", "")
	require.NoError(t, err)
	return info
}

func TestNewSession(t *testing.T) {
	t.Run("non-empty cart starts in awaiting delivery info", func(t *testing.T) {
		userID := uuid.New()
		s, err := checkout.NewSession(&userID, cartLines(), 399)
		require.NoError(t, err)
		assert.Equal(t, checkout.StateAwaitingDeliveryInfo, s.State())
		assert.Equal(t, int64(2000), s.SubtotalCents())
		assert.Equal(t, int64(2399), s.PayableCents())
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		_, err := checkout.NewSession(nil, nil, 399)
		require.ErrorIs(t, err, checkout.ErrEmptyCart)
	})

	t.Run("zero quantity line is rejected", func(t *testing.T) {
		lines := cartLines()
		lines[0].Quantity = 0
		_, err := checkout.NewSession(nil, lines, 399)
		require.ErrorIs(t, err, checkout.ErrBadQuantity)
	})
}

func TestSessionLifecycle(t *testing.T) {
	t.Run("authenticated buyer ends in spin offered", func(t *testing.T) {
		userID := uuid.New()
		s, err := checkout.NewSession(&userID, cartLines(), 399)
		require.NoError(t, err)

		require.NoError(t, s.SubmitDelivery(mustDelivery(t)))
		assert.True(t, s.IsAwaitingPayment())

		orderID := uuid.New()
		require.NoError(t, s.MarkPaid(orderID))
		require.NotNil(t, s.OrderID())
		assert.Equal(t, orderID, *s.OrderID())

		require.NoError(t, s.Finish())
		assert.Equal(t, checkout.StateSpinOffered, s.State())
	})

	t.Run("guest ends in done", func(t *testing.T) {
		s, err := checkout.NewSession(nil, cartLines(), 399)
		require.NoError(t, err)

		require.NoError(t, s.SubmitDelivery(mustDelivery(t)))
		require.NoError(t, s.MarkPaid(uuid.New()))
		require.NoError(t, s.Finish())
		assert.Equal(t, checkout.StateDone, s.State())
	})

	t.Run("paying before delivery info fails without moving the state", func(t *testing.T) {
		s, err := checkout.NewSession(nil, cartLines(), 399)
		require.NoError(t, err)

		err = s.MarkPaid(uuid.New())
		require.ErrorIs(t, err, checkout.ErrNotPayable)
		assert.Equal(t, checkout.StateAwaitingDeliveryInfo, s.State())
		assert.Nil(t, s.OrderID())
	})

	t.Run("double payment is rejected", func(t *testing.T) {
		s, err := checkout.NewSession(nil, cartLines(), 399)
		require.NoError(t, err)
		require.NoError(t, s.SubmitDelivery(mustDelivery(t)))
		require.NoError(t, s.MarkPaid(uuid.New()))

		require.ErrorIs(t, s.MarkPaid(uuid.New()), checkout.ErrNotPayable)
	})
}

func TestReconstructSession(t *testing.T) {
	userID := uuid.New()
	original, err := checkout.NewSession(&userID, cartLines(), 399)
	require.NoError(t, err)
	require.NoError(t, original.SubmitDelivery(mustDelivery(t)))

	rebuilt := checkout.ReconstructSession(
		original.ID(),
		original.UserID(),
		original.GuestToken(),
		original.State(),
		original.Lines(),
		original.Delivery(),
		original.DeliveryFeeCents(),
		original.OrderID(),
		original.CreatedAt(),
		original.UpdatedAt(),
	)

	if diff := cmp.Diff(original, rebuilt, cmpOpts...); diff != "" {
		t.Errorf("Session mismatch (-want +got):\n%s", diff)
	}
}

func TestSessionOwnership(t *testing.T) {
	t.Run("account session is owned by its account only", func(t *testing.T) {
		userID := uuid.New()
		s, err := checkout.NewSession(&userID, cartLines(), 399)
		require.NoError(t, err)

		other := uuid.New()
		assert.True(t, s.OwnedBy(&userID, uuid.Nil))
		assert.False(t, s.OwnedBy(&other, uuid.Nil))
		assert.False(t, s.OwnedBy(nil, s.GuestToken()), "guest token must not unlock an account session")
	})

	t.Run("guest session is owned by the token holder", func(t *testing.T) {
		s, err := checkout.NewSession(nil, cartLines(), 399)
		require.NoError(t, err)

		assert.True(t, s.OwnedBy(nil, s.GuestToken()))
		assert.False(t, s.OwnedBy(nil, uuid.New()))
	})
}
