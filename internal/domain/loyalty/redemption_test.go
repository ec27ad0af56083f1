//go:build unit

package loyalty_test

import (
	"testing"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/loyalty"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedemptionCap(t *testing.T) {
	cases := []struct {
		name         string
		requested    int64
		balance      int64
		payableCents int64
		want         int64
	}{
		{name: "request below both limits passes through", requested: 200, balance: 500, payableCents: 1399, want: 200},
		{name: "balance caps the request", requested: 1000, balance: 500, payableCents: 1399, want: 500},
		{name: "payable total caps the request", requested: 5000, balance: 5000, payableCents: 1399, want: 1399},
		{name: "tightest of the three wins", requested: 300, balance: 500, payableCents: 250, want: 250},
		{name: "zero balance yields zero", requested: 100, balance: 0, payableCents: 1399, want: 0},
		{name: "negative balance never yields negative cap", requested: 100, balance: -50, payableCents: 1399, want: 0},
		{name: "free order yields zero", requested: 100, balance: 500, payableCents: 0, want: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, loyalty.RedemptionCap(c.requested, c.balance, c.payableCents))
		})
	}

	t.Run("checkout scenario: 500 balance, $13.99 payable, 1000 requested", func(t *testing.T) {
		applied := loyalty.RedemptionCap(1000, 500, 1399)
		require.Equal(t, int64(500), applied)
		assert.Equal(t, int64(500), loyalty.DiscountCents(applied)) // $5.00
		assert.Equal(t, int64(899), 1399-loyalty.DiscountCents(applied))
	})
}

func TestMonetaryValueCents(t *testing.T) {
	assert.Equal(t, int64(500), loyalty.MonetaryValueCents(500))
	assert.Equal(t, int64(0), loyalty.MonetaryValueCents(0))
	assert.Equal(t, int64(0), loyalty.MonetaryValueCents(-300))
}

func TestTransactionConstructors(t *testing.T) {
	accountID := uuid.New()
	orderID := uuid.New()

	t.Run("earned requires positive points", func(t *testing.T) {
		tx, err := loyalty.NewEarned(accountID, 100, "welcome bonus")
		require.NoError(t, err)
		assert.Equal(t, int64(100), tx.Amount())
		assert.Equal(t, loyalty.KindEarned, tx.Kind())

		_, err = loyalty.NewEarned(accountID, 0, "nothing")
		require.ErrorIs(t, err, loyalty.ErrNonPositivePoints)
	})

	t.Run("redeemed flips the sign", func(t *testing.T) {
		tx, err := loyalty.NewRedeemed(accountID, 500, "points redeemed at checkout", &orderID)
		require.NoError(t, err)
		assert.Equal(t, int64(-500), tx.Amount())
		assert.Equal(t, loyalty.KindRedeemed, tx.Kind())
		require.NotNil(t, tx.OrderID())
		assert.Equal(t, orderID, *tx.OrderID())
	})

	t.Run("wheel spin accepts zero points", func(t *testing.T) {
		tx, err := loyalty.NewWheelSpin(accountID, 0, "Try Again", orderID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), tx.Amount())
		assert.Equal(t, loyalty.KindWheelSpin, tx.Kind())
	})

	t.Run("wheel spin rejects negative points", func(t *testing.T) {
		_, err := loyalty.NewWheelSpin(accountID, -10, "bogus", orderID)
		require.ErrorIs(t, err, loyalty.ErrNonPositivePoints)
	})

	t.Run("admin adjustment keeps the sign as given", func(t *testing.T) {
		tx, err := loyalty.NewAdminAdjustment(accountID, -250, "fraud rollback")
		require.NoError(t, err)
		assert.Equal(t, int64(-250), tx.Amount())

		_, err = loyalty.NewAdminAdjustment(accountID, 0, "noop")
		require.ErrorIs(t, err, loyalty.ErrZeroAdjustment)
	})

	t.Run("description is required", func(t *testing.T) {
		_, err := loyalty.NewEarned(accountID, 10, "")
		require.ErrorIs(t, err, loyalty.ErrMissingDescription)
	})
}
