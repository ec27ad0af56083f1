package checkout

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCart   = errors.New("cart is empty")
	ErrBadQuantity = errors.New("cart item quantity must be positive")
	ErrNotPayable  = errors.New("checkout is not awaiting payment")
)

// CartLine is one menu item in the cart with its unit price captured when
// the checkout started.
type CartLine struct {
	MenuItemID     uuid.UUID
	Name           string
	UnitPriceCents int64
	Quantity       int
}

func (l CartLine) TotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// Session is a server-side checkout in progress. Guests hold it through an
// opaque token; authenticated buyers through their account.
type Session struct {
	id               uuid.UUID
	userID           *uuid.UUID
	guestToken       uuid.UUID
	state            State
	lines            []CartLine
	delivery         DeliveryInfo
	deliveryFeeCents int64
	orderID          *uuid.UUID
	createdAt        time.Time
	updatedAt        time.Time
}

// NewSession starts a checkout from a non-empty cart, applying the
// CART → AWAITING_DELIVERY_INFO transition.
func NewSession(userID *uuid.UUID, lines []CartLine, deliveryFeeCents int64) (*Session, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	for _, l := range lines {
		if l.Quantity <= 0 {
			return nil, ErrBadQuantity
		}
	}

	state, err := Transition(StateCart, EventStartCheckout)
	if err != nil {
		return nil, err
	}

	return &Session{
		id:               uuid.New(),
		userID:           userID,
		guestToken:       uuid.New(),
		state:            state,
		lines:            lines,
		deliveryFeeCents: deliveryFeeCents,
	}, nil
}

func ReconstructSession(
	id uuid.UUID,
	userID *uuid.UUID,
	guestToken uuid.UUID,
	state State,
	lines []CartLine,
	delivery DeliveryInfo,
	deliveryFeeCents int64,
	orderID *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		id:               id,
		userID:           userID,
		guestToken:       guestToken,
		state:            state,
		lines:            lines,
		delivery:         delivery,
		deliveryFeeCents: deliveryFeeCents,
		orderID:          orderID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// SubmitDelivery applies AWAITING_DELIVERY_INFO → AWAITING_PAYMENT. A
// validation failure leaves the session unchanged.
func (s *Session) SubmitDelivery(info DeliveryInfo) error {
	next, err := Transition(s.state, EventDeliverySubmit)
	if err != nil {
		return err
	}
	s.delivery = info
	s.state = next
	return nil
}

// MarkPaid applies AWAITING_PAYMENT → PAID and ties the committed order to
// the session.
func (s *Session) MarkPaid(orderID uuid.UUID) error {
	next, err := Transition(s.state, EventPaymentCaptured)
	if err != nil {
		return ErrNotPayable
	}
	s.orderID = &orderID
	s.state = next
	return nil
}

// Finish moves a paid session to its terminal shape: SPIN_OFFERED for an
// authenticated buyer, DONE for a guest.
func (s *Session) Finish() error {
	event := EventFinished
	if s.userID != nil {
		event = EventSpinOffered
	}
	next, err := Transition(s.state, event)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Session) SubtotalCents() int64 {
	var subtotal int64
	for _, l := range s.lines {
		subtotal += l.TotalCents()
	}
	return subtotal
}

func (s *Session) PayableCents() int64 {
	return s.SubtotalCents() + s.deliveryFeeCents
}

func (s *Session) IsAwaitingPayment() bool {
	return s.state == StateAwaitingPayment
}

// OwnedBy reports whether the caller may act on this session: the owning
// account, or for guest sessions the holder of the guest token.
func (s *Session) OwnedBy(userID *uuid.UUID, guestToken uuid.UUID) bool {
	if s.userID != nil {
		return userID != nil && *userID == *s.userID
	}
	return guestToken == s.guestToken
}

func (s *Session) ID() uuid.UUID           { return s.id }
func (s *Session) UserID() *uuid.UUID      { return s.userID }
func (s *Session) GuestToken() uuid.UUID   { return s.guestToken }
func (s *Session) State() State            { return s.state }
func (s *Session) Lines() []CartLine       { return s.lines }
func (s *Session) Delivery() DeliveryInfo  { return s.delivery }
func (s *Session) DeliveryFeeCents() int64 { return s.deliveryFeeCents }
func (s *Session) OrderID() *uuid.UUID     { return s.orderID }
func (s *Session) CreatedAt() time.Time    { return s.createdAt }
func (s *Session) UpdatedAt() time.Time    { return s.updatedAt }
