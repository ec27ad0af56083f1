package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/checkout"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/db"

	"github.com/google/uuid"
)

// Cart lines and the delivery form ride along as JSONB: a session is a
// single-owner working document, never queried line by line.

type cartLineRecord struct {
	MenuItemID     uuid.UUID `json:"menu_item_id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
}

type deliveryRecord struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	Notes      string `json:"notes"`
}

type CheckoutRepository struct{}

func NewCheckoutRepository() *CheckoutRepository {
	return &CheckoutRepository{}
}

func (r *CheckoutRepository) Create(ctx context.Context, tx db.DBTX, s *checkout.Session) (uuid.UUID, error) {
	lines, delivery, err := encodeSession(s)
	if err != nil {
		return uuid.Nil, err
	}

	const query = `
		INSERT INTO checkout_sessions (id, user_id, guest_token, state, lines, delivery, delivery_fee_cents, order_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err = tx.QueryRow(ctx, query,
		s.ID(),
		s.UserID(),
		s.GuestToken(),
		s.State().String(),
		lines,
		delivery,
		s.DeliveryFeeCents(),
		s.OrderID(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create checkout session", err)
	}

	return id, nil
}

func (r *CheckoutRepository) Update(ctx context.Context, tx db.DBTX, s *checkout.Session) error {
	lines, delivery, err := encodeSession(s)
	if err != nil {
		return err
	}

	const query = `
		UPDATE checkout_sessions
		SET state = $2, lines = $3, delivery = $4, order_id = $5, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, s.ID(), s.State().String(), lines, delivery, s.OrderID())
	if err != nil {
		return infra.WrapRepoErr("failed to update checkout session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("checkout session not found", errNoRowsUpdated, infra.KindNotFound)
	}
	return nil
}

func (r *CheckoutRepository) CompleteSpinOffered(ctx context.Context, tx db.DBTX, orderID uuid.UUID) error {
	const query = `
		UPDATE checkout_sessions
		SET state = 'done', updated_at = now()
		WHERE order_id = $1 AND state = 'spin_offered'`

	if _, err := tx.Exec(ctx, query, orderID); err != nil {
		return infra.WrapRepoErr("failed to complete checkout session", err)
	}
	return nil
}

// FindSession reconstructs the domain session; used by command-side reads.
func FindSession(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*checkout.Session, error) {
	const query = `
		SELECT id, user_id, guest_token, state, lines, delivery, delivery_fee_cents, order_id, created_at, updated_at
		FROM checkout_sessions
		WHERE id = $1`

	var (
		sessionID        uuid.UUID
		userID           *uuid.UUID
		guestToken       uuid.UUID
		stateRaw         string
		linesRaw         []byte
		deliveryRaw      []byte
		deliveryFeeCents int64
		orderID          *uuid.UUID
		createdAt        time.Time
		updatedAt        time.Time
	)
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&sessionID, &userID, &guestToken, &stateRaw, &linesRaw, &deliveryRaw,
		&deliveryFeeCents, &orderID, &createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("checkout session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find checkout session", err)
	}

	state, err := checkout.NewState(stateRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt checkout state", err)
	}

	var lineRecords []cartLineRecord
	if err := json.Unmarshal(linesRaw, &lineRecords); err != nil {
		return nil, infra.WrapRepoErr("corrupt checkout lines", err)
	}
	lines := make([]checkout.CartLine, 0, len(lineRecords))
	for _, lr := range lineRecords {
		lines = append(lines, checkout.CartLine{
			MenuItemID:     lr.MenuItemID,
			Name:           lr.Name,
			UnitPriceCents: lr.UnitPriceCents,
			Quantity:       lr.Quantity,
		})
	}

	var delivery checkout.DeliveryInfo
	if len(deliveryRaw) > 0 {
		var dr deliveryRecord
		if err := json.Unmarshal(deliveryRaw, &dr); err != nil {
			return nil, infra.WrapRepoErr("corrupt delivery info", err)
		}
		delivery, err = checkout.NewDeliveryInfo(dr.Name, dr.Street, dr.City, dr.PostalCode, dr.Phone, dr.Notes)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt delivery info", err)
		}
	}

	return checkout.ReconstructSession(
		sessionID, userID, guestToken, state, lines, delivery,
		deliveryFeeCents, orderID, createdAt, updatedAt,
	), nil
}

func encodeSession(s *checkout.Session) ([]byte, []byte, error) {
	lineRecords := make([]cartLineRecord, 0, len(s.Lines()))
	for _, l := range s.Lines() {
		lineRecords = append(lineRecords, cartLineRecord{
			MenuItemID:     l.MenuItemID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       l.Quantity,
		})
	}
	lines, err := json.Marshal(lineRecords)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to encode cart lines", err)
	}

	var delivery []byte
	if !s.Delivery().IsZero() {
		d := s.Delivery()
		delivery, err = json.Marshal(deliveryRecord{
			Name:       d.Name(),
			Street:     d.Street(),
			City:       d.City(),
			PostalCode: d.PostalCode(),
			Phone:      d.Phone(),
			Notes:      d.Notes(),
		})
		if err != nil {
			return nil, nil, infra.WrapRepoErr("failed to encode delivery info", err)
		}
	}

	return lines, delivery, nil
}
