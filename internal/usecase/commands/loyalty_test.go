//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/loyalty"
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/wheel"
	reqdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/request"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/db"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/commands"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/shared"
	commandsmock "github.com/kevinmatta11/pizzetna-sub000/tests/mock/commands"
	sharedmock "github.com/kevinmatta11/pizzetna-sub000/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoyaltyCommandsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	uow       *sharedmock.MockUnitOfWork
	reads     *sharedmock.MockCommandReads
	tx        *sharedmock.MockTx
	orders    *sharedmock.MockOrderRepository
	ledger    *sharedmock.MockLedgerRepository
	checkouts *sharedmock.MockCheckoutRepository
	drawer    *commandsmock.MockPrizeDrawer
	commands  commands.LoyaltyCommands
}

func (s *LoyaltyCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.orders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.ledger = sharedmock.NewMockLedgerRepository(s.ctrl)
	s.checkouts = sharedmock.NewMockCheckoutRepository(s.ctrl)
	s.drawer = commandsmock.NewMockPrizeDrawer(s.ctrl)

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()
	s.tx.EXPECT().Orders().Return(s.orders).AnyTimes()
	s.tx.EXPECT().Ledger().Return(s.ledger).AnyTimes()
	s.tx.EXPECT().Checkouts().Return(s.checkouts).AnyTimes()
	s.tx.EXPECT().DB().Return(db.DBTX(nil)).AnyTimes()

	s.commands = commands.NewLoyaltyCommands(s.uow, s.drawer)
}

func (s *LoyaltyCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLoyaltyCommandsSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyCommandsTestSuite))
}

func (s *LoyaltyCommandsTestSuite) TestSpin_WinningDraw() {
	userID := uuid.New()
	orderID := uuid.New()

	s.reads.EXPECT().TodaySpinExists(gomock.Any(), userID).Return(false, nil)
	s.reads.EXPECT().OldestPendingSpinOrderID(gomock.Any(), userID).Return(&orderID, nil)
	s.drawer.EXPECT().Spin().Return(wheel.Prize{Points: 300, Label: "Won 300 points"})

	s.orders.EXPECT().ConsumePendingSpin(gomock.Any(), gomock.Any(), orderID).Return(true, nil)
	s.ledger.EXPECT().LockAccount(gomock.Any(), gomock.Any(), userID).Return(int64(250), nil)
	s.ledger.EXPECT().TodaySpinExists(gomock.Any(), gomock.Any(), userID).Return(false, nil)
	s.ledger.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, t *loyalty.Transaction) (uuid.UUID, error) {
			s.Equal(int64(300), t.Amount())
			s.Equal(loyalty.KindWheelSpin, t.Kind())
			s.Require().NotNil(t.OrderID())
			s.Equal(orderID, *t.OrderID())
			return t.ID(), nil
		},
	)
	s.checkouts.EXPECT().CompleteSpinOffered(gomock.Any(), gomock.Any(), orderID).Return(nil)

	result, err := s.commands.Spin(context.Background(), userID)

	s.Require().NoError(err)
	s.Equal(int64(300), result.Points)
	s.True(result.Won)
	s.Equal(int64(550), result.NewBalance)
}

func (s *LoyaltyCommandsTestSuite) TestSpin_TryAgainStillWritesLedgerRow() {
	userID := uuid.New()
	orderID := uuid.New()

	s.reads.EXPECT().TodaySpinExists(gomock.Any(), userID).Return(false, nil)
	s.reads.EXPECT().OldestPendingSpinOrderID(gomock.Any(), userID).Return(&orderID, nil)
	s.drawer.EXPECT().Spin().Return(wheel.Prize{Points: 0, Label: "Try Again"})

	s.orders.EXPECT().ConsumePendingSpin(gomock.Any(), gomock.Any(), orderID).Return(true, nil)
	s.ledger.EXPECT().LockAccount(gomock.Any(), gomock.Any(), userID).Return(int64(120), nil)
	s.ledger.EXPECT().TodaySpinExists(gomock.Any(), gomock.Any(), userID).Return(false, nil)
	s.ledger.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, t *loyalty.Transaction) (uuid.UUID, error) {
			s.Equal(int64(0), t.Amount())
			s.Equal(loyalty.KindWheelSpin, t.Kind())
			return t.ID(), nil
		},
	)
	s.checkouts.EXPECT().CompleteSpinOffered(gomock.Any(), gomock.Any(), orderID).Return(nil)

	result, err := s.commands.Spin(context.Background(), userID)

	s.Require().NoError(err)
	s.Equal(int64(0), result.Points)
	s.False(result.Won)
	s.Equal(int64(120), result.NewBalance)
}

func (s *LoyaltyCommandsTestSuite) TestSpin_AlreadySpunTodayWinsOverMissingEntitlement() {
	userID := uuid.New()

	// The daily gate is checked before the entitlement lookup, so an
	// account with neither gets the already-spun answer.
	s.reads.EXPECT().TodaySpinExists(gomock.Any(), userID).Return(true, nil)

	result, err := s.commands.Spin(context.Background(), userID)

	s.Nil(result)
	s.ErrorIs(err, commands.ErrAlreadySpunToday)
}

func (s *LoyaltyCommandsTestSuite) TestSpin_NoPendingEntitlement() {
	userID := uuid.New()

	s.reads.EXPECT().TodaySpinExists(gomock.Any(), userID).Return(false, nil)
	s.reads.EXPECT().OldestPendingSpinOrderID(gomock.Any(), userID).Return(nil, nil)

	result, err := s.commands.Spin(context.Background(), userID)

	s.Nil(result)
	s.ErrorIs(err, commands.ErrNoPendingSpin)
}

func (s *LoyaltyCommandsTestSuite) TestSpin_LostConsumptionRace() {
	userID := uuid.New()
	orderID := uuid.New()

	s.reads.EXPECT().TodaySpinExists(gomock.Any(), userID).Return(false, nil)
	s.reads.EXPECT().OldestPendingSpinOrderID(gomock.Any(), userID).Return(&orderID, nil)
	s.drawer.EXPECT().Spin().Return(wheel.Prize{Points: 50, Label: "Won 50 points"})

	// Another request consumed the same entitlement first.
	s.orders.EXPECT().ConsumePendingSpin(gomock.Any(), gomock.Any(), orderID).Return(false, nil)

	result, err := s.commands.Spin(context.Background(), userID)

	s.Nil(result)
	s.ErrorIs(err, commands.ErrNoPendingSpin)
}

func (s *LoyaltyCommandsTestSuite) TestSpin_RecheckUnderLockDeniesSecondSpin() {
	userID := uuid.New()
	orderID := uuid.New()

	s.reads.EXPECT().TodaySpinExists(gomock.Any(), userID).Return(false, nil)
	s.reads.EXPECT().OldestPendingSpinOrderID(gomock.Any(), userID).Return(&orderID, nil)
	s.drawer.EXPECT().Spin().Return(wheel.Prize{Points: 100, Label: "Won 100 points"})

	s.orders.EXPECT().ConsumePendingSpin(gomock.Any(), gomock.Any(), orderID).Return(true, nil)
	s.ledger.EXPECT().LockAccount(gomock.Any(), gomock.Any(), userID).Return(int64(0), nil)
	// A concurrent spin committed between the first check and the lock.
	s.ledger.EXPECT().TodaySpinExists(gomock.Any(), gomock.Any(), userID).Return(true, nil)

	result, err := s.commands.Spin(context.Background(), userID)

	s.Nil(result)
	s.ErrorIs(err, commands.ErrAlreadySpunToday)
}

func (s *LoyaltyCommandsTestSuite) TestEarnPoints_AppendsEarnedRowUnderAccountLock() {
	accountID := uuid.New()

	s.ledger.EXPECT().LockAccount(gomock.Any(), gomock.Any(), accountID).Return(int64(0), nil)
	s.ledger.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, t *loyalty.Transaction) (uuid.UUID, error) {
			s.Equal(int64(150), t.Amount())
			s.Equal(loyalty.KindEarned, t.Kind())
			s.Equal("Welcome bonus", t.Description())
			return t.ID(), nil
		},
	)

	id, err := s.commands.EarnPoints(context.Background(), accountID, 150, "Welcome bonus")

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, id)
}

func (s *LoyaltyCommandsTestSuite) TestEarnPoints_RejectsNonPositiveAmount() {
	id, err := s.commands.EarnPoints(context.Background(), uuid.New(), 0, "noop")

	s.Equal(uuid.Nil, id)
	s.ErrorIs(err, commands.ErrEarnInvalid)
	s.ErrorIs(err, loyalty.ErrNonPositivePoints)
}

func (s *LoyaltyCommandsTestSuite) TestAdjustPoints_AppendsUnderAccountLock() {
	userID := uuid.New()

	s.ledger.EXPECT().LockAccount(gomock.Any(), gomock.Any(), userID).Return(int64(40), nil)
	s.ledger.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ db.DBTX, t *loyalty.Transaction) (uuid.UUID, error) {
			s.Equal(int64(-25), t.Amount())
			s.Equal(loyalty.KindAdminAdjustment, t.Kind())
			return t.ID(), nil
		},
	)

	id, err := s.commands.AdjustPoints(context.Background(), reqdto.AdjustPointsRequest{
		UserID:      userID,
		Points:      -25,
		Description: "Chargeback correction",
	})

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, id)
}

func (s *LoyaltyCommandsTestSuite) TestAdjustPoints_RejectsZeroAmount() {
	id, err := s.commands.AdjustPoints(context.Background(), reqdto.AdjustPointsRequest{
		UserID:      uuid.New(),
		Points:      0,
		Description: "noop",
	})

	s.Equal(uuid.Nil, id)
	s.ErrorIs(err, commands.ErrAdjustInvalid)
}
