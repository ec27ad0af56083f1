package queries

import (
	"context"

	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrForbidden     = errs.New("not allowed to view this order")
)

const defaultListLimit = 50

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*OrderListItem, error)
	FindAll(ctx context.Context, limit int32) ([]*OrderListItem, error)
}

type OrderQueries interface {
	// GetByID enforces ownership: customers see their own orders only.
	GetByID(ctx context.Context, actor uuid.UUID, isAdmin bool, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*OrderListItem, error)
	ListAll(ctx context.Context, limit int) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, isAdmin bool, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, errs.Wrap(err, "failed to find order")
	}

	if !isAdmin {
		if view.UserID == nil || *view.UserID != actor {
			return nil, ErrForbidden
		}
	}

	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*OrderListItem, error) {
	return q.store.FindByUserID(ctx, userID, clampLimit(limit))
}

func (q *orderQueriesImpl) ListAll(ctx context.Context, limit int) ([]*OrderListItem, error) {
	return q.store.FindAll(ctx, clampLimit(limit))
}

func clampLimit(limit int) int32 {
	if limit <= 0 || limit > 200 {
		return defaultListLimit
	}
	return int32(limit)
}
