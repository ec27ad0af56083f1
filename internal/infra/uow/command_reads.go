package uow

import (
	"context"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/checkout"
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/order"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/db"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/repository"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads serves the command side's validation reads. Bound to the pool
// outside a transaction and to the live transaction inside one.
type commandReads struct {
	dbtx db.DBTX
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, email, role, password_hash, is_active, last_login
		FROM users
		WHERE email = $1`

	var s shared.UserSnapshot
	err := r.dbtx.QueryRow(ctx, query, email).Scan(
		&s.ID, &s.Email, &s.Role, &s.PasswordHash, &s.IsActive, &s.LastLogin,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &s, nil
}

func (r *commandReads) CheckoutSessionByID(ctx context.Context, id uuid.UUID) (*checkout.Session, error) {
	return repository.FindSession(ctx, r.dbtx, id)
}

func (r *commandReads) MenuItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*shared.MenuItemSnapshot, error) {
	const query = `
		SELECT id, name, price_cents, available
		FROM menu_items
		WHERE id = ANY($1)`

	rows, err := r.dbtx.Query(ctx, query, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find menu items", err)
	}
	defer rows.Close()

	var snapshots []*shared.MenuItemSnapshot
	for rows.Next() {
		var s shared.MenuItemSnapshot
		if err := rows.Scan(&s.ID, &s.Name, &s.PriceCents, &s.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item", err)
		}
		snapshots = append(snapshots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read menu items", err)
	}
	return snapshots, nil
}

func (r *commandReads) OrderStatusByID(ctx context.Context, id uuid.UUID) (order.Status, error) {
	const query = `SELECT status FROM orders WHERE id = $1`

	var raw string
	if err := r.dbtx.QueryRow(ctx, query, id).Scan(&raw); err != nil {
		if infra.IsNoRows(err) {
			return "", infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to read order status", err)
	}

	status, err := order.NewStatus(raw)
	if err != nil {
		return "", infra.WrapRepoErr("corrupt order status", err)
	}
	return status, nil
}

func (r *commandReads) TodaySpinExists(ctx context.Context, accountID uuid.UUID) (bool, error) {
	return repository.NewLedgerRepository().TodaySpinExists(ctx, r.dbtx, accountID)
}

func (r *commandReads) OldestPendingSpinOrderID(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error) {
	const query = `
		SELECT id FROM orders
		WHERE user_id = $1 AND pending_spin
		ORDER BY created_at
		LIMIT 1`

	var id uuid.UUID
	err := r.dbtx.QueryRow(ctx, query, userID).Scan(&id)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find pending spin", err)
	}
	return &id, nil
}

func (r *commandReads) Balance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	const query = `
		SELECT COALESCE(
			(SELECT balance FROM loyalty_accounts WHERE user_id = $1),
			0
		)`

	var balance int64
	if err := r.dbtx.QueryRow(ctx, query, accountID).Scan(&balance); err != nil {
		return 0, infra.WrapRepoErr("failed to read balance", err)
	}
	return balance, nil
}
