package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/order"
	reqdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/request"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/clock"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/errs"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrStatusTransition  = errs.New("illegal order status transition")
	ErrInvalidStatusName = errs.New("unknown order status")
)

type OrderCommands interface {
	// UpdateStatus moves an order through the back-office lifecycle,
	// rejecting transitions the status machine forbids.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, req reqdto.UpdateOrderStatusRequest) error
}

type orderCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, clk clock.Clock) OrderCommands {
	return &orderCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

func (o *orderCommandsImpl) UpdateStatus(ctx context.Context, orderID uuid.UUID, req reqdto.UpdateOrderStatusRequest) error {
	next, err := order.NewStatus(req.Status)
	if err != nil {
		return ErrInvalidStatusName
	}

	err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, readErr := tx.Reads().OrderStatusByID(ctx, orderID)
		if readErr != nil {
			return readErr
		}
		if !current.CanTransitionTo(next) {
			return ErrStatusTransition
		}
		if updateErr := tx.Orders().UpdateStatus(ctx, tx.DB(), orderID, next); updateErr != nil {
			return updateErr
		}

		payload, encErr := json.Marshal(map[string]any{
			"order_id": orderID,
			"status":   next.String(),
		})
		if encErr != nil {
			slog.Warn("failed to encode status payload", "order_id", orderID, "error", encErr.Error())
			return nil
		}
		if jobErr := tx.Notifications().CreateJob(ctx, tx.DB(), "email", "order_status", payload, o.clock.Now()); jobErr != nil {
			slog.Warn("failed to enqueue status notification", "order_id", orderID, "error", jobErr.Error())
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrStatusTransition) {
			return ErrStatusTransition
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrOrderNotFound
		}
		return errs.Wrap(err, "failed to update order status")
	}
	return nil
}
