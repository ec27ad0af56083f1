package order

import (
	"time"

	"github.com/google/uuid"
)

// LineItem captures the quantity and unit price of one menu item at order
// time. The price is copied, not referenced live, so historical orders stay
// accurate when menu prices change.
type LineItem struct {
	menuItemID     uuid.UUID
	name           string
	unitPriceCents int64
	quantity       int
}

func NewLineItem(menuItemID uuid.UUID, name string, unitPriceCents int64, quantity int) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return LineItem{}, ErrNegativeAmount
	}
	return LineItem{
		menuItemID:     menuItemID,
		name:           name,
		unitPriceCents: unitPriceCents,
		quantity:       quantity,
	}, nil
}

func (li LineItem) MenuItemID() uuid.UUID { return li.menuItemID }
func (li LineItem) Name() string          { return li.name }
func (li LineItem) UnitPriceCents() int64 { return li.unitPriceCents }
func (li LineItem) Quantity() int         { return li.quantity }
func (li LineItem) TotalCents() int64     { return li.unitPriceCents * int64(li.quantity) }

// Order is a purchase event. The owning account is nullable (guest checkout
// is permitted); pendingSpin is true only for orders owned by an account and
// is flipped to false exactly once, when the order's spin is consumed.
type Order struct {
	id               uuid.UUID
	userID           *uuid.UUID
	items            []LineItem
	subtotalCents    int64
	deliveryFeeCents int64
	discountCents    int64
	totalCents       int64
	status           Status
	pendingSpin      bool
	createdAt        time.Time
}

// NewPaid builds an order at payment confirmation time. The spin entitlement
// is granted iff the buyer is an authenticated account.
func NewPaid(userID *uuid.UUID, items []LineItem, deliveryFeeCents int64) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if deliveryFeeCents < 0 {
		return nil, ErrNegativeAmount
	}

	var subtotal int64
	for _, li := range items {
		subtotal += li.TotalCents()
	}

	return &Order{
		id:               uuid.New(),
		userID:           userID,
		items:            items,
		subtotalCents:    subtotal,
		deliveryFeeCents: deliveryFeeCents,
		totalCents:       subtotal + deliveryFeeCents,
		status:           StatusPaid,
		pendingSpin:      userID != nil,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	userID *uuid.UUID,
	items []LineItem,
	subtotalCents, deliveryFeeCents, discountCents, totalCents int64,
	status Status,
	pendingSpin bool,
	createdAt time.Time,
) *Order {
	return &Order{
		id:               id,
		userID:           userID,
		items:            items,
		subtotalCents:    subtotalCents,
		deliveryFeeCents: deliveryFeeCents,
		discountCents:    discountCents,
		totalCents:       totalCents,
		status:           status,
		pendingSpin:      pendingSpin,
		createdAt:        createdAt,
	}
}

// PayableCents is the amount a redemption can discount against: everything
// the buyer would otherwise pay.
func (o *Order) PayableCents() int64 {
	return o.subtotalCents + o.deliveryFeeCents
}

// ApplyDiscount records a redemption discount, flooring the total at zero.
func (o *Order) ApplyDiscount(discountCents int64) error {
	if discountCents < 0 {
		return ErrNegativeAmount
	}
	o.discountCents = discountCents
	total := o.PayableCents() - discountCents
	if total < 0 {
		total = 0
	}
	o.totalCents = total
	return nil
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) UserID() *uuid.UUID      { return o.userID }
func (o *Order) Items() []LineItem       { return o.items }
func (o *Order) SubtotalCents() int64    { return o.subtotalCents }
func (o *Order) DeliveryFeeCents() int64 { return o.deliveryFeeCents }
func (o *Order) DiscountCents() int64    { return o.discountCents }
func (o *Order) TotalCents() int64       { return o.totalCents }
func (o *Order) Status() Status          { return o.status }
func (o *Order) PendingSpin() bool       { return o.pendingSpin }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
