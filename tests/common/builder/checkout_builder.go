//go:build unit || e2e

package builder

import (
	"time"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/checkout"
	reqdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/request"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	ID               uuid.UUID
	UserID           *uuid.UUID
	GuestToken       uuid.UUID
	State            checkout.State
	Lines            []checkout.CartLine
	Delivery         checkout.DeliveryInfo
	DeliveryFeeCents int64
	OrderID          *uuid.UUID
}

func NewCheckoutBuilder() *CheckoutBuilder {
	userID := uuid.New()
	delivery, _ := checkout.NewDeliveryInfo(
		"Ada Lovelace", "12 Rue de la Pizza", "Beirut", "1100", "+96170000000", "",
	)
	return &CheckoutBuilder{
		ID:         uuid.New(),
		UserID:     &userID,
		GuestToken: uuid.New(),
		State:      checkout.StateAwaitingPayment,
		Lines: []checkout.CartLine{
			{MenuItemID: uuid.New(), Name: "Margherita", UnitPriceCents: 1200, Quantity: 2},
		},
		Delivery:         delivery,
		DeliveryFeeCents: 399,
	}
}

func (b *CheckoutBuilder) BuildDomain() *checkout.Session {
	now := time.Now()
	return checkout.ReconstructSession(
		b.ID, b.UserID, b.GuestToken, b.State, b.Lines, b.Delivery,
		b.DeliveryFeeCents, b.OrderID, now, now,
	)
}

func (b *CheckoutBuilder) BuildStartDTO() reqdto.StartCheckoutRequest {
	items := make([]reqdto.CheckoutLineRequest, 0, len(b.Lines))
	for _, l := range b.Lines {
		items = append(items, reqdto.CheckoutLineRequest{
			MenuItemID: l.MenuItemID,
			Quantity:   int32(l.Quantity),
		})
	}
	return reqdto.StartCheckoutRequest{Items: items}
}

func (b *CheckoutBuilder) BuildDeliveryDTO() reqdto.SubmitDeliveryRequest {
	return reqdto.SubmitDeliveryRequest{
		Name:       "Ada Lovelace",
		Phone:      "+96170000000",
		Street:     "12 Rue de la Pizza",
		City:       "Beirut",
		PostalCode: "1100",
	}
}

// Fluent builder methods
func (b *CheckoutBuilder) AsGuest() *CheckoutBuilder {
	b.UserID = nil
	return b
}

func (b *CheckoutBuilder) WithUserID(id uuid.UUID) *CheckoutBuilder {
	b.UserID = &id
	return b
}

func (b *CheckoutBuilder) WithState(state checkout.State) *CheckoutBuilder {
	b.State = state
	return b
}

func (b *CheckoutBuilder) WithLines(lines []checkout.CartLine) *CheckoutBuilder {
	b.Lines = lines
	return b
}

func (b *CheckoutBuilder) WithOrderID(id uuid.UUID) *CheckoutBuilder {
	b.OrderID = &id
	return b
}
