package readstore

import (
	"context"

	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/repository"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CheckoutReadStore struct {
	pool *pgxpool.Pool
}

func NewCheckoutReadStore(pool *pgxpool.Pool) *CheckoutReadStore {
	return &CheckoutReadStore{pool: pool}
}

func (r *CheckoutReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CheckoutView, *uuid.UUID, uuid.UUID, error) {
	session, err := repository.FindSession(ctx, r.pool, id)
	if err != nil {
		return nil, nil, uuid.Nil, err
	}

	lines := make([]queries.OrderItemView, 0, len(session.Lines()))
	for _, l := range session.Lines() {
		lines = append(lines, queries.OrderItemView{
			MenuItemID:     l.MenuItemID,
			Name:           l.Name,
			UnitPriceCents: l.UnitPriceCents,
			Quantity:       int32(l.Quantity),
		})
	}

	view := &queries.CheckoutView{
		ID:               session.ID(),
		State:            session.State().String(),
		Lines:            lines,
		SubtotalCents:    session.SubtotalCents(),
		DeliveryFeeCents: session.DeliveryFeeCents(),
		PayableCents:     session.PayableCents(),
		OrderID:          session.OrderID(),
		CreatedAt:        session.CreatedAt(),
		UpdatedAt:        session.UpdatedAt(),
	}
	return view, session.UserID(), session.GuestToken(), nil
}
