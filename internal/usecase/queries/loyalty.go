package queries

import (
	"context"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/loyalty"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/errs"

	"github.com/google/uuid"
)

type LoyaltyReadStore interface {
	// Balance returns 0 for an account with no ledger rows.
	Balance(ctx context.Context, accountID uuid.UUID) (int64, error)
	History(ctx context.Context, accountID uuid.UUID, limit int32) ([]*TransactionView, error)
}

type LoyaltyQueries interface {
	GetBalance(ctx context.Context, accountID uuid.UUID) (*BalanceView, error)
	// GetHistory returns the account's ledger, newest first.
	GetHistory(ctx context.Context, accountID uuid.UUID, limit int) ([]*TransactionView, error)
}

type loyaltyQueriesImpl struct {
	store LoyaltyReadStore
}

func NewLoyaltyQueries(store LoyaltyReadStore) LoyaltyQueries {
	return &loyaltyQueriesImpl{store: store}
}

func (q *loyaltyQueriesImpl) GetBalance(ctx context.Context, accountID uuid.UUID) (*BalanceView, error) {
	balance, err := q.store.Balance(ctx, accountID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read balance")
	}
	return &BalanceView{
		AccountID:  accountID,
		Balance:    balance,
		ValueCents: loyalty.MonetaryValueCents(balance),
	}, nil
}

func (q *loyaltyQueriesImpl) GetHistory(ctx context.Context, accountID uuid.UUID, limit int) ([]*TransactionView, error) {
	return q.store.History(ctx, accountID, clampLimit(limit))
}
