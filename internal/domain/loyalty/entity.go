package loyalty

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is an immutable ledger entry. Corrections are made with
// offsetting entries, never by mutating or deleting an existing row.
type Transaction struct {
	id          uuid.UUID
	accountID   uuid.UUID
	amount      int64 // signed: positive = earned, negative = spent
	kind        Kind
	description string
	orderID     *uuid.UUID
	createdAt   time.Time
}

func NewEarned(accountID uuid.UUID, points int64, description string) (*Transaction, error) {
	if points <= 0 {
		return nil, ErrNonPositivePoints
	}
	return newTransaction(accountID, points, KindEarned, description, nil)
}

// NewRedeemed records spending points against an order. The amount is the
// already-clamped point count; the sign flip happens here.
func NewRedeemed(accountID uuid.UUID, points int64, description string, orderID *uuid.UUID) (*Transaction, error) {
	if points <= 0 {
		return nil, ErrNonPositivePoints
	}
	return newTransaction(accountID, -points, KindRedeemed, description, orderID)
}

// NewWheelSpin accepts zero points: a "Try Again" draw still writes a
// zero-amount row, which is what the daily spin lock detects.
func NewWheelSpin(accountID uuid.UUID, points int64, label string, orderID uuid.UUID) (*Transaction, error) {
	if points < 0 {
		return nil, ErrNonPositivePoints
	}
	return newTransaction(accountID, points, KindWheelSpin, label, &orderID)
}

// NewAdminAdjustment applies the signed amount as given. No clamping: an
// administrator may drive a balance negative deliberately.
func NewAdminAdjustment(accountID uuid.UUID, signedPoints int64, reason string) (*Transaction, error) {
	if signedPoints == 0 {
		return nil, ErrZeroAdjustment
	}
	return newTransaction(accountID, signedPoints, KindAdminAdjustment, reason, nil)
}

func newTransaction(accountID uuid.UUID, amount int64, kind Kind, description string, orderID *uuid.UUID) (*Transaction, error) {
	if description == "" {
		return nil, ErrMissingDescription
	}
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return &Transaction{
		id:          uuid.New(),
		accountID:   accountID,
		amount:      amount,
		kind:        kind,
		description: description,
		orderID:     orderID,
	}, nil
}

func ReconstructTransaction(
	id, accountID uuid.UUID,
	amount int64,
	kind Kind,
	description string,
	orderID *uuid.UUID,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		id:          id,
		accountID:   accountID,
		amount:      amount,
		kind:        kind,
		description: description,
		orderID:     orderID,
		createdAt:   createdAt,
	}
}

func (t *Transaction) ID() uuid.UUID        { return t.id }
func (t *Transaction) AccountID() uuid.UUID { return t.accountID }
func (t *Transaction) Amount() int64        { return t.amount }
func (t *Transaction) Kind() Kind           { return t.kind }
func (t *Transaction) Description() string  { return t.description }
func (t *Transaction) OrderID() *uuid.UUID  { return t.orderID }
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }
