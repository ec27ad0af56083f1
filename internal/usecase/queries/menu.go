package queries

import (
	"context"

	"github.com/google/uuid"
)

type MenuReadStore interface {
	ListCategoriesWithItems(ctx context.Context, includeUnavailable bool) ([]*CategoryView, error)
	FindItemByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
}

type MenuQueries interface {
	// ListMenu returns the storefront menu: categories in display order,
	// available items only.
	ListMenu(ctx context.Context) ([]*CategoryView, error)
	// ListMenuAdmin includes unavailable items for the back office.
	ListMenuAdmin(ctx context.Context) ([]*CategoryView, error)
	GetItem(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
}

type menuQueriesImpl struct {
	store MenuReadStore
}

func NewMenuQueries(store MenuReadStore) MenuQueries {
	return &menuQueriesImpl{store: store}
}

func (q *menuQueriesImpl) ListMenu(ctx context.Context) ([]*CategoryView, error) {
	return q.store.ListCategoriesWithItems(ctx, false)
}

func (q *menuQueriesImpl) ListMenuAdmin(ctx context.Context) ([]*CategoryView, error) {
	return q.store.ListCategoriesWithItems(ctx, true)
}

func (q *menuQueriesImpl) GetItem(ctx context.Context, id uuid.UUID) (*MenuItemView, error) {
	return q.store.FindItemByID(ctx, id)
}
