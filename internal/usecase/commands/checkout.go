package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/checkout"
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/loyalty"
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/order"
	reqdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/request"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/clock"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/config"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/errs"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCheckoutNotFound    = errs.New("checkout session not found")
	ErrCheckoutForbidden   = errs.New("checkout session belongs to someone else")
	ErrMenuItemUnavailable = errs.New("menu item unavailable")
	ErrCheckoutConflict    = errs.New("checkout session is not in the right state")
	ErrDeliveryInvalid     = errs.New("invalid delivery details")
	ErrPaymentFailed       = errs.New("payment capture failed")
)

type StartCheckoutResult struct {
	SessionID  uuid.UUID
	GuestToken uuid.UUID
}

type PayResult struct {
	OrderID        uuid.UUID
	SubtotalCents  int64
	DeliveryCents  int64
	RedeemedPoints int64
	DiscountCents  int64
	TotalCents     int64
	SpinOffered    bool
}

type CheckoutCommands interface {
	Start(ctx context.Context, req reqdto.StartCheckoutRequest, userID *uuid.UUID) (*StartCheckoutResult, error)
	SubmitDelivery(ctx context.Context, sessionID uuid.UUID, actor *uuid.UUID, guestToken uuid.UUID, req reqdto.SubmitDeliveryRequest) error
	Pay(ctx context.Context, sessionID uuid.UUID, actor *uuid.UUID, guestToken uuid.UUID, req reqdto.PayRequest) (*PayResult, error)
}

type checkoutCommandsImpl struct {
	uow     shared.UnitOfWork
	gateway PaymentGateway
	clock   clock.Clock
	cfg     config.CheckoutConfig
}

func NewCheckoutCommands(uow shared.UnitOfWork, gateway PaymentGateway, clk clock.Clock, cfg config.CheckoutConfig) CheckoutCommands {
	return &checkoutCommandsImpl{
		uow:     uow,
		gateway: gateway,
		clock:   clk,
		cfg:     cfg,
	}
}

func (c *checkoutCommandsImpl) Start(ctx context.Context, req reqdto.StartCheckoutRequest, userID *uuid.UUID) (*StartCheckoutResult, error) {
	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, line := range req.Items {
		ids = append(ids, line.MenuItemID)
	}

	snapshots, err := c.uow.CommandReads().MenuItemsByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load menu items")
	}
	byID := make(map[uuid.UUID]*shared.MenuItemSnapshot, len(snapshots))
	for _, s := range snapshots {
		byID[s.ID] = s
	}

	lines := make([]checkout.CartLine, 0, len(req.Items))
	for _, line := range req.Items {
		item, ok := byID[line.MenuItemID]
		if !ok || !item.Available {
			return nil, ErrMenuItemUnavailable
		}
		lines = append(lines, checkout.CartLine{
			MenuItemID:     item.ID,
			Name:           item.Name,
			UnitPriceCents: item.PriceCents,
			Quantity:       int(line.Quantity),
		})
	}

	session, err := checkout.NewSession(userID, lines, c.cfg.DeliveryFeeCents)
	if err != nil {
		return nil, errs.Wrap(err, "failed to start checkout")
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Checkouts().Create(ctx, tx.DB(), session)
		return createErr
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to persist checkout session")
	}

	return &StartCheckoutResult{
		SessionID:  session.ID(),
		GuestToken: session.GuestToken(),
	}, nil
}

func (c *checkoutCommandsImpl) SubmitDelivery(ctx context.Context, sessionID uuid.UUID, actor *uuid.UUID, guestToken uuid.UUID, req reqdto.SubmitDeliveryRequest) error {
	session, err := c.loadOwnedSession(ctx, sessionID, actor, guestToken)
	if err != nil {
		return err
	}

	info, err := req.ToDomain()
	if err != nil {
		return errs.Mark(err, ErrDeliveryInvalid)
	}

	if err := session.SubmitDelivery(info); err != nil {
		return errs.Mark(err, ErrCheckoutConflict)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Checkouts().Update(ctx, tx.DB(), session)
	})
	if err != nil {
		return errs.Wrap(err, "failed to save delivery info")
	}
	return nil
}

// Pay captures the payment and commits the order. A redemption request is
// settled in a second transaction after the order exists: if that
// transaction fails the order stands paid at full price and no points move.
func (c *checkoutCommandsImpl) Pay(ctx context.Context, sessionID uuid.UUID, actor *uuid.UUID, guestToken uuid.UUID, req reqdto.PayRequest) (*PayResult, error) {
	session, err := c.loadOwnedSession(ctx, sessionID, actor, guestToken)
	if err != nil {
		return nil, err
	}
	if !session.IsAwaitingPayment() {
		return nil, ErrCheckoutConflict
	}

	payable := session.PayableCents()
	plannedPoints := c.planRedemption(ctx, session, req.RedeemPoints, payable)

	chargeCents := payable - loyalty.DiscountCents(plannedPoints)
	// Cash is accepted on the spot; only card goes through the gateway.
	if req.Method != "cash" {
		if err := c.gateway.Charge(ctx, chargeCents, session.ID()); err != nil {
			return nil, errs.Mark(err, ErrPaymentFailed)
		}
	}

	newOrder, err := c.buildOrder(session)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		orderID, createErr := tx.Orders().Create(ctx, tx.DB(), newOrder)
		if createErr != nil {
			return createErr
		}
		if markErr := session.MarkPaid(orderID); markErr != nil {
			return markErr
		}
		if finishErr := session.Finish(); finishErr != nil {
			return finishErr
		}
		return tx.Checkouts().Update(ctx, tx.DB(), session)
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to commit order")
	}

	appliedPoints := c.applyRedemption(ctx, session, newOrder.ID(), plannedPoints, payable)
	discount := loyalty.DiscountCents(appliedPoints)

	c.enqueueConfirmation(ctx, newOrder)

	return &PayResult{
		OrderID:        newOrder.ID(),
		SubtotalCents:  session.SubtotalCents(),
		DeliveryCents:  session.DeliveryFeeCents(),
		RedeemedPoints: appliedPoints,
		DiscountCents:  discount,
		TotalCents:     payable - discount,
		SpinOffered:    session.State() == checkout.StateSpinOffered,
	}, nil
}

func (c *checkoutCommandsImpl) loadOwnedSession(ctx context.Context, sessionID uuid.UUID, actor *uuid.UUID, guestToken uuid.UUID) (*checkout.Session, error) {
	session, err := c.uow.CommandReads().CheckoutSessionByID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCheckoutNotFound
		}
		return nil, errs.Wrap(err, "failed to load checkout session")
	}
	if !session.OwnedBy(actor, guestToken) {
		return nil, ErrCheckoutForbidden
	}
	return session, nil
}

func (c *checkoutCommandsImpl) buildOrder(session *checkout.Session) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(session.Lines()))
	for _, l := range session.Lines() {
		li, err := order.NewLineItem(l.MenuItemID, l.Name, l.UnitPriceCents, l.Quantity)
		if err != nil {
			return nil, errs.Wrap(err, "invalid cart line")
		}
		items = append(items, li)
	}
	o, err := order.NewPaid(session.UserID(), items, session.DeliveryFeeCents())
	if err != nil {
		return nil, errs.Wrap(err, "failed to build order")
	}
	return o, nil
}

// planRedemption does a provisional clamp against the current balance so the
// gateway charge matches the expected total. The binding clamp happens under
// the account lock in applyRedemption.
func (c *checkoutCommandsImpl) planRedemption(ctx context.Context, session *checkout.Session, requested, payableCents int64) int64 {
	if requested <= 0 || session.UserID() == nil {
		return 0
	}
	balance, err := c.uow.CommandReads().Balance(ctx, *session.UserID())
	if err != nil {
		slog.Warn("balance read failed, skipping redemption", "session_id", session.ID(), "error", err.Error())
		return 0
	}
	return loyalty.RedemptionCap(requested, balance, payableCents)
}

func (c *checkoutCommandsImpl) applyRedemption(ctx context.Context, session *checkout.Session, orderID uuid.UUID, plannedPoints, payableCents int64) int64 {
	if plannedPoints <= 0 {
		return 0
	}
	accountID := *session.UserID()

	var applied int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		balance, lockErr := tx.Ledger().LockAccount(ctx, tx.DB(), accountID)
		if lockErr != nil {
			return lockErr
		}
		points := loyalty.RedemptionCap(plannedPoints, balance, payableCents)
		if points <= 0 {
			return nil
		}
		t, domainErr := loyalty.NewRedeemed(accountID, points, "Points redeemed at checkout", &orderID)
		if domainErr != nil {
			return domainErr
		}
		if _, appendErr := tx.Ledger().Append(ctx, tx.DB(), t); appendErr != nil {
			return appendErr
		}
		if discErr := tx.Orders().ApplyDiscount(ctx, tx.DB(), orderID, loyalty.DiscountCents(points)); discErr != nil {
			return discErr
		}
		applied = points
		return nil
	})
	if err != nil {
		// The order stays paid at full price; no points were deducted.
		slog.Warn("redemption failed after payment", "order_id", orderID, "error", err.Error())
		return 0
	}
	return applied
}

// enqueueConfirmation writes the confirmation outbox row after the order has
// committed, so a notification failure can never take the order down with it.
func (c *checkoutCommandsImpl) enqueueConfirmation(ctx context.Context, o *order.Order) {
	payload, err := json.Marshal(map[string]any{
		"order_id":    o.ID(),
		"total_cents": o.TotalCents(),
	})
	if err != nil {
		slog.Warn("failed to encode confirmation payload", "order_id", o.ID(), "error", err.Error())
		return
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().CreateJob(ctx, tx.DB(), "email", "order_confirmation", payload, c.clock.Now())
	})
	if err != nil {
		slog.Warn("failed to enqueue order confirmation", "order_id", o.ID(), "error", err.Error())
	}
}
