package repository

import (
	"context"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/order"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/db"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	const orderQuery = `
		INSERT INTO orders (id, user_id, subtotal_cents, delivery_fee_cents, discount_cents, total_cents, status, pending_spin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, orderQuery,
		o.ID(),
		o.UserID(),
		o.SubtotalCents(),
		o.DeliveryFeeCents(),
		o.DiscountCents(),
		o.TotalCents(),
		o.Status().String(),
		o.PendingSpin(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	const itemQuery = `
		INSERT INTO order_items (order_id, menu_item_id, name, unit_price_cents, quantity)
		VALUES ($1, $2, $3, $4, $5)`

	for _, li := range o.Items() {
		if _, err := tx.Exec(ctx, itemQuery, id, li.MenuItemID(), li.Name(), li.UnitPriceCents(), li.Quantity()); err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order item", err)
		}
	}

	return id, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, orderID uuid.UUID, status order.Status) error {
	const query = `UPDATE orders SET status = $2 WHERE id = $1`

	tag, err := tx.Exec(ctx, query, orderID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", errNoRowsUpdated, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) ApplyDiscount(ctx context.Context, tx db.DBTX, orderID uuid.UUID, discountCents int64) error {
	const query = `
		UPDATE orders
		SET discount_cents = $2,
		    total_cents = GREATEST(subtotal_cents + delivery_fee_cents - $2, 0)
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, orderID, discountCents)
	if err != nil {
		return infra.WrapRepoErr("failed to apply order discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", errNoRowsUpdated, infra.KindNotFound)
	}
	return nil
}

// ConsumePendingSpin is conditional on the flag still being set, so two
// concurrent spins can never both claim the same entitlement.
func (r *OrderRepository) ConsumePendingSpin(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (bool, error) {
	const query = `
		UPDATE orders SET pending_spin = false
		WHERE id = $1 AND pending_spin = true`

	tag, err := tx.Exec(ctx, query, orderID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume pending spin", err)
	}
	return tag.RowsAffected() > 0, nil
}
