package payment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Simulator stands in for a card processor. Every capture succeeds; the log
// line is the audit trail until a real gateway is wired in.
type Simulator struct{}

func NewSimulator() *Simulator {
	return &Simulator{}
}

func (s *Simulator) Charge(ctx context.Context, amountCents int64, reference uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	slog.Info("payment captured", "reference", reference, "amount_cents", amountCents)
	return nil
}
