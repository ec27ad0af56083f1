//go:build unit

package checkout_test

import (
	"testing"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	type tc struct {
		name  string
		from  checkout.State
		event checkout.Event
		want  checkout.State
		ok    bool
	}

	legal := []tc{
		{name: "cart to delivery info", from: checkout.StateCart, event: checkout.EventStartCheckout, want: checkout.StateAwaitingDeliveryInfo, ok: true},
		{name: "delivery info to payment", from: checkout.StateAwaitingDeliveryInfo, event: checkout.EventDeliverySubmit, want: checkout.StateAwaitingPayment, ok: true},
		{name: "payment to paid", from: checkout.StateAwaitingPayment, event: checkout.EventPaymentCaptured, want: checkout.StatePaid, ok: true},
		{name: "paid to spin offered", from: checkout.StatePaid, event: checkout.EventSpinOffered, want: checkout.StateSpinOffered, ok: true},
		{name: "paid straight to done (guest)", from: checkout.StatePaid, event: checkout.EventFinished, want: checkout.StateDone, ok: true},
		{name: "spin offered to done", from: checkout.StateSpinOffered, event: checkout.EventFinished, want: checkout.StateDone, ok: true},
	}

	illegal := []tc{
		{name: "cannot pay from cart", from: checkout.StateCart, event: checkout.EventPaymentCaptured},
		{name: "cannot skip delivery info", from: checkout.StateAwaitingDeliveryInfo, event: checkout.EventPaymentCaptured},
		{name: "cannot pay twice", from: checkout.StatePaid, event: checkout.EventPaymentCaptured},
		{name: "done is terminal", from: checkout.StateDone, event: checkout.EventFinished},
		{name: "spin offer only after paid", from: checkout.StateAwaitingPayment, event: checkout.EventSpinOffered},
	}

	for _, c := range legal {
		t.Run(c.name, func(t *testing.T) {
			got, err := checkout.Transition(c.from, c.event)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	for _, c := range illegal {
		t.Run(c.name, func(t *testing.T) {
			got, err := checkout.Transition(c.from, c.event)
			require.ErrorIs(t, err, checkout.ErrInvalidTransition)
			assert.Equal(t, c.from, got, "failed transition must not move the state")
		})
	}
}

func TestDeliveryInfo(t *testing.T) {
	type form struct {
		name, street, city, postal, phone, notes string
	}
	valid := form{name: "Jamie", street: "5 Flour St", city: "Beirut", postal: "1107", phone: "70123456", notes: ""}

	cases := []struct {
		name   string
		mutate func(*form)
		errIs  error
	}{
		{name: "valid form", mutate: func(*form) {}},
		{name: "notes optional", mutate: func(f *form) { f.notes = "ring the bell" }},
		{name: "missing name", mutate: func(f *form) { f.name = "  " }, errIs: checkout.ErrMissingName},
		{name: "missing street", mutate: func(f *form) { f.street = "" }, errIs: checkout.ErrMissingStreet},
		{name: "missing city", mutate: func(f *form) { f.city = "" }, errIs: checkout.ErrMissingCity},
		{name: "missing postal code", mutate: func(f *form) { f.postal = "" }, errIs: checkout.ErrMissingPostalCode},
		{name: "missing phone", mutate: func(f *form) { f.phone = "" }, errIs: checkout.ErrInvalidPhone},
		{name: "phone shorter than six characters", mutate: func(f *form) { f.phone = "12345" }, errIs: checkout.ErrInvalidPhone},
		{name: "phone of exactly six characters", mutate: func(f *form) { f.phone = "123456" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := valid
			c.mutate(&f)

			info, err := checkout.NewDeliveryInfo(f.name, f.street, f.city, f.postal, f.phone, f.notes)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.False(t, info.IsZero())
			} else {
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, info.IsZero())
			}
		})
	}
}
