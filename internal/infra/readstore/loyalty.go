package readstore

import (
	"context"

	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LoyaltyReadStore struct {
	pool *pgxpool.Pool
}

func NewLoyaltyReadStore(pool *pgxpool.Pool) *LoyaltyReadStore {
	return &LoyaltyReadStore{pool: pool}
}

// Balance reads the cached account balance. An account that never earned a
// point has no row yet; that reads as zero, not as an error.
func (r *LoyaltyReadStore) Balance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	const query = `
		SELECT COALESCE(
			(SELECT balance FROM loyalty_accounts WHERE user_id = $1),
			0
		)`

	var balance int64
	if err := r.pool.QueryRow(ctx, query, accountID).Scan(&balance); err != nil {
		return 0, infra.WrapRepoErr("failed to read balance", err)
	}
	return balance, nil
}

func (r *LoyaltyReadStore) History(ctx context.Context, accountID uuid.UUID, limit int32) ([]*queries.TransactionView, error) {
	const query = `
		SELECT id, account_id, amount, kind, description, order_id, created_at
		FROM point_transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger entries", err)
	}
	defer rows.Close()

	views := []*queries.TransactionView{}
	for rows.Next() {
		var v queries.TransactionView
		if err := rows.Scan(&v.ID, &v.AccountID, &v.Amount, &v.Kind, &v.Description, &v.OrderID, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ledger entry", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ledger entries", err)
	}
	return views, nil
}
