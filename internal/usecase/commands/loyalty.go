package commands

import (
	"context"
	"errors"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/loyalty"
	reqdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/request"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/errs"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAlreadySpunToday = errs.New("already spun today")
	ErrNoPendingSpin    = errs.New("no pending spin")
	ErrSpinFailed       = errs.New("spin could not be recorded")
	ErrAdjustInvalid    = errs.New("invalid balance adjustment")
	ErrEarnInvalid      = errs.New("invalid point grant")
)

type SpinResult struct {
	Points     int64
	Label      string
	Won        bool
	NewBalance int64
}

type LoyaltyCommands interface {
	// Spin consumes the oldest pending entitlement and records the draw.
	// Eligibility order matters: a spin already taken today is reported
	// before a missing entitlement.
	Spin(ctx context.Context, userID uuid.UUID) (*SpinResult, error)
	// EarnPoints credits an account outside the wheel path, e.g. a
	// promotional grant. Points must be positive.
	EarnPoints(ctx context.Context, accountID uuid.UUID, points int64, description string) (uuid.UUID, error)
	AdjustPoints(ctx context.Context, req reqdto.AdjustPointsRequest) (uuid.UUID, error)
}

type loyaltyCommandsImpl struct {
	uow    shared.UnitOfWork
	drawer PrizeDrawer
}

func NewLoyaltyCommands(uow shared.UnitOfWork, drawer PrizeDrawer) LoyaltyCommands {
	return &loyaltyCommandsImpl{
		uow:    uow,
		drawer: drawer,
	}
}

func (l *loyaltyCommandsImpl) Spin(ctx context.Context, userID uuid.UUID) (*SpinResult, error) {
	reads := l.uow.CommandReads()

	spun, err := reads.TodaySpinExists(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrSpinFailed)
	}
	if spun {
		return nil, ErrAlreadySpunToday
	}

	orderID, err := reads.OldestPendingSpinOrderID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrSpinFailed)
	}
	if orderID == nil {
		return nil, ErrNoPendingSpin
	}

	prize := l.drawer.Spin()

	var result SpinResult
	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		consumed, consumeErr := tx.Orders().ConsumePendingSpin(ctx, tx.DB(), *orderID)
		if consumeErr != nil {
			return consumeErr
		}
		if !consumed {
			// Lost the race for this entitlement.
			return ErrNoPendingSpin
		}

		balance, lockErr := tx.Ledger().LockAccount(ctx, tx.DB(), userID)
		if lockErr != nil {
			return lockErr
		}

		// Re-check under the lock. A rollback here also restores the
		// entitlement consumed above.
		again, checkErr := tx.Ledger().TodaySpinExists(ctx, tx.DB(), userID)
		if checkErr != nil {
			return checkErr
		}
		if again {
			return ErrAlreadySpunToday
		}

		t, domainErr := loyalty.NewWheelSpin(userID, prize.Points, prize.Label, *orderID)
		if domainErr != nil {
			return domainErr
		}
		if _, appendErr := tx.Ledger().Append(ctx, tx.DB(), t); appendErr != nil {
			return appendErr
		}

		if sessErr := tx.Checkouts().CompleteSpinOffered(ctx, tx.DB(), *orderID); sessErr != nil {
			return sessErr
		}

		result = SpinResult{
			Points:     prize.Points,
			Label:      prize.Label,
			Won:        prize.Won(),
			NewBalance: balance + prize.Points,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadySpunToday) || errors.Is(err, ErrNoPendingSpin) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrSpinFailed)
	}

	return &result, nil
}

func (l *loyaltyCommandsImpl) EarnPoints(ctx context.Context, accountID uuid.UUID, points int64, description string) (uuid.UUID, error) {
	t, err := loyalty.NewEarned(accountID, points, description)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrEarnInvalid)
	}

	var txID uuid.UUID
	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, lockErr := tx.Ledger().LockAccount(ctx, tx.DB(), accountID); lockErr != nil {
			return lockErr
		}
		id, appendErr := tx.Ledger().Append(ctx, tx.DB(), t)
		if appendErr != nil {
			return appendErr
		}
		txID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to grant points")
	}

	return txID, nil
}

func (l *loyaltyCommandsImpl) AdjustPoints(ctx context.Context, req reqdto.AdjustPointsRequest) (uuid.UUID, error) {
	t, err := loyalty.NewAdminAdjustment(req.UserID, req.Points, req.Description)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAdjustInvalid)
	}

	var txID uuid.UUID
	err = l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, lockErr := tx.Ledger().LockAccount(ctx, tx.DB(), req.UserID); lockErr != nil {
			return lockErr
		}
		id, appendErr := tx.Ledger().Append(ctx, tx.DB(), t)
		if appendErr != nil {
			return appendErr
		}
		txID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to adjust balance")
	}

	return txID, nil
}
