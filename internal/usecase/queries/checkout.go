package queries

import (
	"context"

	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCheckoutNotFound = errs.New("checkout session not found")

type CheckoutReadStore interface {
	// FindByID also returns the owning user id (nil for guests) and the
	// guest token so the query layer can enforce ownership.
	FindByID(ctx context.Context, id uuid.UUID) (*CheckoutView, *uuid.UUID, uuid.UUID, error)
}

type CheckoutQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actor *uuid.UUID, guestToken uuid.UUID) (*CheckoutView, error)
}

type checkoutQueriesImpl struct {
	store CheckoutReadStore
}

func NewCheckoutQueries(store CheckoutReadStore) CheckoutQueries {
	return &checkoutQueriesImpl{store: store}
}

func (q *checkoutQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actor *uuid.UUID, guestToken uuid.UUID) (*CheckoutView, error) {
	view, ownerID, ownerToken, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCheckoutNotFound
		}
		return nil, errs.Wrap(err, "failed to find checkout session")
	}

	if ownerID != nil {
		if actor == nil || *actor != *ownerID {
			return nil, ErrCheckoutNotFound
		}
	} else if guestToken != ownerToken {
		// A session is never exposed to a caller who cannot prove
		// ownership. Not-found hides its existence.
		return nil, ErrCheckoutNotFound
	}

	return view, nil
}
