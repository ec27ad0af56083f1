//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/order"
	reqdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/request"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/db"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/clock"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/commands"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/shared"
	sharedmock "github.com/kevinmatta11/pizzetna-sub000/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderCommandsTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	reads         *sharedmock.MockCommandReads
	tx            *sharedmock.MockTx
	orders        *sharedmock.MockOrderRepository
	notifications *sharedmock.MockNotificationRepository
	commands      commands.OrderCommands
}

func (s *OrderCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.orders = sharedmock.NewMockOrderRepository(s.ctrl)
	s.notifications = sharedmock.NewMockNotificationRepository(s.ctrl)

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Orders().Return(s.orders).AnyTimes()
	s.tx.EXPECT().Notifications().Return(s.notifications).AnyTimes()
	s.tx.EXPECT().DB().Return(db.DBTX(nil)).AnyTimes()

	s.commands = commands.NewOrderCommands(
		s.uow, clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)),
	)
}

func (s *OrderCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrderCommandsSuite(t *testing.T) {
	suite.Run(t, new(OrderCommandsTestSuite))
}

func (s *OrderCommandsTestSuite) TestUpdateStatus_ValidTransition() {
	orderID := uuid.New()

	s.reads.EXPECT().OrderStatusByID(gomock.Any(), orderID).Return(order.StatusPaid, nil)
	s.orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), orderID, order.StatusProcessing).Return(nil)
	s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "email", "order_status", gomock.Any(), gomock.Any()).Return(nil)

	err := s.commands.UpdateStatus(context.Background(), orderID, reqdto.UpdateOrderStatusRequest{
		Status: "processing",
	})
	s.NoError(err)
}

func (s *OrderCommandsTestSuite) TestUpdateStatus_IllegalTransition() {
	orderID := uuid.New()

	s.reads.EXPECT().OrderStatusByID(gomock.Any(), orderID).Return(order.StatusCompleted, nil)

	err := s.commands.UpdateStatus(context.Background(), orderID, reqdto.UpdateOrderStatusRequest{
		Status: "processing",
	})
	s.ErrorIs(err, commands.ErrStatusTransition)
}

func (s *OrderCommandsTestSuite) TestUpdateStatus_UnknownStatusName() {
	err := s.commands.UpdateStatus(context.Background(), uuid.New(), reqdto.UpdateOrderStatusRequest{
		Status: "teleported",
	})
	s.ErrorIs(err, commands.ErrInvalidStatusName)
}

func (s *OrderCommandsTestSuite) TestUpdateStatus_OrderNotFound() {
	orderID := uuid.New()

	s.reads.EXPECT().OrderStatusByID(gomock.Any(), orderID).
		Return(order.Status(""), infra.WrapRepoErr("select order", nil, infra.KindNotFound))

	err := s.commands.UpdateStatus(context.Background(), orderID, reqdto.UpdateOrderStatusRequest{
		Status: "processing",
	})
	s.ErrorIs(err, commands.ErrOrderNotFound)
}

func (s *OrderCommandsTestSuite) TestUpdateStatus_NotificationFailureDoesNotFail() {
	orderID := uuid.New()

	s.reads.EXPECT().OrderStatusByID(gomock.Any(), orderID).Return(order.StatusProcessing, nil)
	s.orders.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), orderID, order.StatusCompleted).Return(nil)
	s.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(infra.WrapRepoErr("insert job", nil, infra.KindDBFailure))

	err := s.commands.UpdateStatus(context.Background(), orderID, reqdto.UpdateOrderStatusRequest{
		Status: "completed",
	})
	s.NoError(err)
}
