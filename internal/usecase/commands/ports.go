package commands

import (
	"context"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/wheel"

	"github.com/google/uuid"
)

// PaymentGateway captures a payment for a checkout session. The session id
// doubles as the gateway reference so a retried capture is recognizable.
type PaymentGateway interface {
	Charge(ctx context.Context, amountCents int64, reference uuid.UUID) error
}

// PrizeDrawer abstracts the wheel so command tests can pin the outcome.
type PrizeDrawer interface {
	Spin() wheel.Prize
}
