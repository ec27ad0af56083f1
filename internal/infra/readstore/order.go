package readstore

import (
	"context"

	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderReadStore struct {
	pool *pgxpool.Pool
}

func NewOrderReadStore(pool *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{pool: pool}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	const query = `
		SELECT id, user_id, subtotal_cents, delivery_fee_cents, discount_cents, total_cents, status, pending_spin, created_at
		FROM orders
		WHERE id = $1`

	var view queries.OrderView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.UserID, &view.SubtotalCents, &view.DeliveryFeeCents,
		&view.DiscountCents, &view.TotalCents, &view.Status, &view.PendingSpin, &view.CreatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	const itemQuery = `
		SELECT menu_item_id, name, unit_price_cents, quantity
		FROM order_items
		WHERE order_id = $1
		ORDER BY name`

	rows, err := r.pool.Query(ctx, itemQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	view.Items = []queries.OrderItemView{}
	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.UnitPriceCents, &item.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		view.Items = append(view.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order items", err)
	}

	return &view, nil
}

func (r *OrderReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	const query = `
		SELECT id, user_id, total_cents, status, pending_spin, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	return r.list(ctx, query, userID, limit)
}

func (r *OrderReadStore) FindAll(ctx context.Context, limit int32) ([]*queries.OrderListItem, error) {
	const query = `
		SELECT id, user_id, total_cents, status, pending_spin, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1`

	return r.list(ctx, query, limit)
}

func (r *OrderReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.OrderListItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	items := []*queries.OrderListItem{}
	for rows.Next() {
		var item queries.OrderListItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.TotalCents, &item.Status, &item.PendingSpin, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read orders", err)
	}
	return items, nil
}
