//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/checkout"
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/loyalty"
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/order"
	reqdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/request"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/db"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/clock"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/config"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/errs"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/commands"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/shared"
	"github.com/kevinmatta11/pizzetna-sub000/tests/common/builder"
	commandsmock "github.com/kevinmatta11/pizzetna-sub000/tests/mock/commands"
	sharedmock "github.com/kevinmatta11/pizzetna-sub000/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	reads         *sharedmock.MockCommandReads
	tx            *sharedmock.MockTx
	orders        *sharedmock.MockOrderRepository
	ledger        *sharedmock.MockLedgerRepository
	checkouts     *sharedmock.MockCheckoutRepository
	notifications *sharedmock.MockNotificationRepository
	gateway       *commandsmock.MockPaymentGateway
	commands      commands.CheckoutCommands
}

func (s *CheckoutCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.orders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.ledger = sharedmock.NewMockLedgerRepository(s.ctrl)
	s.checkouts = sharedmock.NewMockCheckoutRepository(s.ctrl)
	s.notifications = sharedmock.NewMockNotificationRepository(s.ctrl)
	s.gateway = commandsmock.NewMockPaymentGateway(s.ctrl)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()
	s.tx.EXPECT().Orders().Return(s.orders).AnyTimes()
	s.tx.EXPECT().Ledger().Return(s.ledger).AnyTimes()
	s.tx.EXPECT().Checkouts().Return(s.checkouts).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifications).AnyTimes()
	s.tx.EXPECT().DB().Return(db.DBTX(nil)).AnyTimes()

	s.commands = commands.NewCheckoutCommands(
		s.uow, s.gateway,
		clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
		config.CheckoutConfig{DeliveryFeeCents: 399},
	)
}

func (s *CheckoutCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCheckoutCommandsSuite(t *testing.T) {
	suite.Run(t, new(CheckoutCommandsTestSuite))
}

func (s *CheckoutCommandsTestSuite) TestStart_SnapshotsMenuPrices() {
	userID := uuid.New()
	item := builder.NewMenuItemBuilder()

	s.reads.EXPECT().MenuItemsByIDs(gomock.Any(), []uuid.UUID{item.ID}).
		Return([]*shared.MenuItemSnapshot{item.BuildSnapshot()}, nil)
	s.checkouts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, sess *checkout.Session) (uuid.UUID, error) {
			s.Equal(checkout.StateAwaitingDeliveryInfo, sess.State())
			s.Require().Len(sess.Lines(), 1)
			s.Equal(item.PriceCents, sess.Lines()[0].UnitPriceCents)
			return sess.ID(), nil
		},
	)

	result, err := s.commands.Start(context.Background(), reqdto.StartCheckoutRequest{
		Items: []reqdto.CheckoutLineRequest{{MenuItemID: item.ID, Quantity: 2}},
	}, &userID)

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, result.SessionID)
	s.NotEqual(uuid.Nil, result.GuestToken)
}

func (s *CheckoutCommandsTestSuite) TestStart_RejectsUnavailableItem() {
	item := builder.NewMenuItemBuilder().AsUnavailable()

	s.reads.EXPECT().MenuItemsByIDs(gomock.Any(), gomock.Any()).
		Return([]*shared.MenuItemSnapshot{item.BuildSnapshot()}, nil)

	result, err := s.commands.Start(context.Background(), reqdto.StartCheckoutRequest{
		Items: []reqdto.CheckoutLineRequest{{MenuItemID: item.ID, Quantity: 1}},
	}, nil)

	s.Nil(result)
	s.ErrorIs(err, commands.ErrMenuItemUnavailable)
}

func (s *CheckoutCommandsTestSuite) TestStart_RejectsUnknownItem() {
	s.reads.EXPECT().MenuItemsByIDs(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	result, err := s.commands.Start(context.Background(), reqdto.StartCheckoutRequest{
		Items: []reqdto.CheckoutLineRequest{{MenuItemID: uuid.New(), Quantity: 1}},
	}, nil)

	s.Nil(result)
	s.ErrorIs(err, commands.ErrMenuItemUnavailable)
}

func (s *CheckoutCommandsTestSuite) TestSubmitDelivery_MovesToAwaitingPayment() {
	b := builder.NewCheckoutBuilder().WithState(checkout.StateAwaitingDeliveryInfo)
	session := b.BuildDomain()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)
	s.checkouts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, sess *checkout.Session) error {
			s.Equal(checkout.StateAwaitingPayment, sess.State())
			return nil
		},
	)

	err := s.commands.SubmitDelivery(context.Background(), b.ID, b.UserID, uuid.Nil, b.BuildDeliveryDTO())
	s.NoError(err)
}

func (s *CheckoutCommandsTestSuite) TestSubmitDelivery_InvalidFormIsNotAConflict() {
	b := builder.NewCheckoutBuilder().WithState(checkout.StateAwaitingDeliveryInfo)
	session := b.BuildDomain()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)

	form := b.BuildDeliveryDTO()
	form.Phone = "12345"

	err := s.commands.SubmitDelivery(context.Background(), b.ID, b.UserID, uuid.Nil, form)
	s.ErrorIs(err, commands.ErrDeliveryInvalid)
	s.ErrorIs(err, checkout.ErrInvalidPhone)
	s.NotErrorIs(err, commands.ErrCheckoutConflict)
	s.Equal(checkout.StateAwaitingDeliveryInfo, session.State())
}

func (s *CheckoutCommandsTestSuite) TestSubmitDelivery_WhitespaceNameRejected() {
	b := builder.NewCheckoutBuilder().WithState(checkout.StateAwaitingDeliveryInfo)
	session := b.BuildDomain()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)

	form := b.BuildDeliveryDTO()
	form.Name = "   "

	err := s.commands.SubmitDelivery(context.Background(), b.ID, b.UserID, uuid.Nil, form)
	s.ErrorIs(err, commands.ErrDeliveryInvalid)
	s.ErrorIs(err, checkout.ErrMissingName)
}

func (s *CheckoutCommandsTestSuite) TestSubmitDelivery_WrongStateConflicts() {
	b := builder.NewCheckoutBuilder().WithState(checkout.StateDone)
	session := b.BuildDomain()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)

	err := s.commands.SubmitDelivery(context.Background(), b.ID, b.UserID, uuid.Nil, b.BuildDeliveryDTO())
	s.ErrorIs(err, commands.ErrCheckoutConflict)
}

func (s *CheckoutCommandsTestSuite) TestSubmitDelivery_OtherUserForbidden() {
	b := builder.NewCheckoutBuilder().WithState(checkout.StateAwaitingDeliveryInfo)
	session := b.BuildDomain()
	stranger := uuid.New()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)

	err := s.commands.SubmitDelivery(context.Background(), b.ID, &stranger, uuid.Nil, b.BuildDeliveryDTO())
	s.ErrorIs(err, commands.ErrCheckoutForbidden)
}

func (s *CheckoutCommandsTestSuite) TestPay_FullPriceNoRedemption() {
	b := builder.NewCheckoutBuilder()
	session := b.BuildDomain()
	payable := session.PayableCents()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)
	s.gateway.EXPECT().Charge(gomock.Any(), payable, b.ID).Return(nil)
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
			s.Equal(payable, o.TotalCents())
			s.True(o.PendingSpin())
			return o.ID(), nil
		},
	)
	s.checkouts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "order_confirmation", gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.commands.Pay(context.Background(), b.ID, b.UserID, uuid.Nil, reqdto.PayRequest{})

	s.Require().NoError(err)
	s.Equal(int64(0), result.RedeemedPoints)
	s.Equal(payable, result.TotalCents)
	s.True(result.SpinOffered)
}

func (s *CheckoutCommandsTestSuite) TestPay_RedemptionClampedToBalance() {
	b := builder.NewCheckoutBuilder()
	session := b.BuildDomain()
	payable := session.PayableCents() // 2799

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)
	// Requested 10000 points, balance holds only 500.
	s.reads.EXPECT().Balance(gomock.Any(), *b.UserID).Return(int64(500), nil)
	s.gateway.EXPECT().Charge(gomock.Any(), payable-500, b.ID).Return(nil)

	var orderID uuid.UUID
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
			orderID = o.ID()
			return o.ID(), nil
		},
	)
	s.checkouts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	s.ledger.EXPECT().LockAccount(gomock.Any(), gomock.Any(), *b.UserID).Return(int64(500), nil)
	s.ledger.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, t *loyalty.Transaction) (uuid.UUID, error) {
			s.Equal(int64(-500), t.Amount())
			s.Equal(loyalty.KindRedeemed, t.Kind())
			return t.ID(), nil
		},
	)
	s.orders.EXPECT().ApplyDiscount(gomock.Any(), gomock.Any(), gomock.Any(), int64(500)).DoAndReturn(
		func(_ context.Context, _ db.DBTX, id uuid.UUID, _ int64) error {
			s.Equal(orderID, id)
			return nil
		},
	)
	s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "order_confirmation", gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.commands.Pay(context.Background(), b.ID, b.UserID, uuid.Nil, reqdto.PayRequest{RedeemPoints: 10000})

	s.Require().NoError(err)
	s.Equal(int64(500), result.RedeemedPoints)
	s.Equal(int64(500), result.DiscountCents)
	s.Equal(payable-500, result.TotalCents)
}

func (s *CheckoutCommandsTestSuite) TestPay_BalanceShrankBetweenPlanAndApply() {
	b := builder.NewCheckoutBuilder()
	session := b.BuildDomain()
	payable := session.PayableCents()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)
	s.reads.EXPECT().Balance(gomock.Any(), *b.UserID).Return(int64(500), nil)
	// The charge was computed against the planned 500 points.
	s.gateway.EXPECT().Charge(gomock.Any(), payable-500, b.ID).Return(nil)

	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
			return o.ID(), nil
		},
	)
	s.checkouts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// Under the lock only 200 points remain; the binding clamp shrinks
	// the redemption rather than failing the order.
	s.ledger.EXPECT().LockAccount(gomock.Any(), gomock.Any(), *b.UserID).Return(int64(200), nil)
	s.ledger.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, t *loyalty.Transaction) (uuid.UUID, error) {
			s.Equal(int64(-200), t.Amount())
			return t.ID(), nil
		},
	)
	s.orders.EXPECT().ApplyDiscount(gomock.Any(), gomock.Any(), gomock.Any(), int64(200)).Return(nil)
	s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.commands.Pay(context.Background(), b.ID, b.UserID, uuid.Nil, reqdto.PayRequest{RedeemPoints: 500})

	s.Require().NoError(err)
	s.Equal(int64(200), result.RedeemedPoints)
	s.Equal(payable-200, result.TotalCents)
}

func (s *CheckoutCommandsTestSuite) TestPay_RedemptionFailureLeavesOrderPaidFullPrice() {
	b := builder.NewCheckoutBuilder()
	session := b.BuildDomain()
	payable := session.PayableCents()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)
	s.reads.EXPECT().Balance(gomock.Any(), *b.UserID).Return(int64(300), nil)
	s.gateway.EXPECT().Charge(gomock.Any(), payable-300, b.ID).Return(nil)

	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
			return o.ID(), nil
		},
	)
	s.checkouts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	s.ledger.EXPECT().LockAccount(gomock.Any(), gomock.Any(), *b.UserID).Return(int64(0), errs.New("lock timeout"))
	s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.commands.Pay(context.Background(), b.ID, b.UserID, uuid.Nil, reqdto.PayRequest{RedeemPoints: 300})

	s.Require().NoError(err)
	s.Equal(int64(0), result.RedeemedPoints)
	s.Equal(payable, result.TotalCents)
}

func (s *CheckoutCommandsTestSuite) TestPay_GuestGetsNoSpinAndNoRedemption() {
	b := builder.NewCheckoutBuilder().AsGuest()
	session := b.BuildDomain()
	payable := session.PayableCents()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)
	// No Balance read: a guest redemption request is ignored outright.
	s.gateway.EXPECT().Charge(gomock.Any(), payable, b.ID).Return(nil)
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
			s.False(o.PendingSpin())
			return o.ID(), nil
		},
	)
	s.checkouts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.commands.Pay(context.Background(), b.ID, nil, b.GuestToken, reqdto.PayRequest{RedeemPoints: 400})

	s.Require().NoError(err)
	s.Equal(int64(0), result.RedeemedPoints)
	s.False(result.SpinOffered)
}

func (s *CheckoutCommandsTestSuite) TestPay_CashSkipsTheGateway() {
	b := builder.NewCheckoutBuilder()
	session := b.BuildDomain()
	payable := session.PayableCents()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)
	// No Charge expectation: cash never touches the gateway.
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
			return o.ID(), nil
		},
	)
	s.checkouts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	result, err := s.commands.Pay(context.Background(), b.ID, b.UserID, uuid.Nil, reqdto.PayRequest{Method: "cash"})

	s.Require().NoError(err)
	s.Equal(payable, result.TotalCents)
	s.True(result.SpinOffered)
}

func (s *CheckoutCommandsTestSuite) TestPay_DeclinedChargeCommitsNothing() {
	b := builder.NewCheckoutBuilder()
	session := b.BuildDomain()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)
	s.gateway.EXPECT().Charge(gomock.Any(), gomock.Any(), b.ID).Return(errs.New("card declined"))

	result, err := s.commands.Pay(context.Background(), b.ID, b.UserID, uuid.Nil, reqdto.PayRequest{})

	s.Nil(result)
	s.ErrorIs(err, commands.ErrPaymentFailed)
}

func (s *CheckoutCommandsTestSuite) TestPay_WrongStateConflicts() {
	b := builder.NewCheckoutBuilder().WithState(checkout.StateAwaitingDeliveryInfo)
	session := b.BuildDomain()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)

	result, err := s.commands.Pay(context.Background(), b.ID, b.UserID, uuid.Nil, reqdto.PayRequest{})

	s.Nil(result)
	s.ErrorIs(err, commands.ErrCheckoutConflict)
}

func (s *CheckoutCommandsTestSuite) TestPay_NotificationFailureDoesNotFailOrder() {
	b := builder.NewCheckoutBuilder()
	session := b.BuildDomain()
	payable := session.PayableCents()

	s.reads.EXPECT().CheckoutSessionByID(gomock.Any(), b.ID).Return(session, nil)
	s.gateway.EXPECT().Charge(gomock.Any(), payable, b.ID).Return(nil)
	s.orders.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, o *order.Order) (uuid.UUID, error) {
			return o.ID(), nil
		},
	)
	s.checkouts.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errs.New("outbox unavailable"))

	result, err := s.commands.Pay(context.Background(), b.ID, b.UserID, uuid.Nil, reqdto.PayRequest{})

	s.Require().NoError(err)
	s.Equal(payable, result.TotalCents)
}
