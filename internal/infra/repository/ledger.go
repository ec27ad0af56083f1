package repository

import (
	"context"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/loyalty"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/db"

	"github.com/google/uuid"
)

// LedgerRepository persists point transactions. The ledger is append-only;
// the cached balance on loyalty_accounts moves in the same transaction as
// every insert, so the two can never drift.
type LedgerRepository struct{}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

func (r *LedgerRepository) Append(ctx context.Context, tx db.DBTX, t *loyalty.Transaction) (uuid.UUID, error) {
	const insertQuery = `
		INSERT INTO point_transactions (id, account_id, amount, kind, description, order_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, insertQuery,
		t.ID(),
		t.AccountID(),
		t.Amount(),
		t.Kind().String(),
		t.Description(),
		t.OrderID(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to append ledger entry", err)
	}

	const balanceQuery = `
		UPDATE loyalty_accounts SET balance = balance + $2, updated_at = now()
		WHERE user_id = $1`

	tag, err := tx.Exec(ctx, balanceQuery, t.AccountID(), t.Amount())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to move cached balance", err)
	}
	if tag.RowsAffected() == 0 {
		return uuid.Nil, infra.WrapRepoErr("loyalty account missing", errNoRowsUpdated, infra.KindNotFound)
	}

	return id, nil
}

// LockAccount takes the account row lock every balance-changing path goes
// through, creating the row on first use.
func (r *LedgerRepository) LockAccount(ctx context.Context, tx db.DBTX, accountID uuid.UUID) (int64, error) {
	const upsertQuery = `
		INSERT INTO loyalty_accounts (user_id, balance)
		VALUES ($1, 0)
		ON CONFLICT (user_id) DO NOTHING`

	if _, err := tx.Exec(ctx, upsertQuery, accountID); err != nil {
		return 0, infra.WrapRepoErr("failed to ensure loyalty account", err)
	}

	const lockQuery = `
		SELECT balance FROM loyalty_accounts
		WHERE user_id = $1
		FOR UPDATE`

	var balance int64
	if err := tx.QueryRow(ctx, lockQuery, accountID).Scan(&balance); err != nil {
		return 0, infra.WrapRepoErr("failed to lock loyalty account", err)
	}

	return balance, nil
}

// TodaySpinExists uses the database date so "today" is decided in one place
// for every request.
func (r *LedgerRepository) TodaySpinExists(ctx context.Context, tx db.DBTX, accountID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM point_transactions
			WHERE account_id = $1
			  AND kind = 'wheel_spin'
			  AND created_at::date = CURRENT_DATE
		)`

	var exists bool
	if err := tx.QueryRow(ctx, query, accountID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check today's spin", err)
	}
	return exists, nil
}
