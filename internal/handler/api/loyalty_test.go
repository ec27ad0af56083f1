//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/kevinmatta11/pizzetna-sub000/internal/handler/api"
	resdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/response"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/commands"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/queries"
	"github.com/kevinmatta11/pizzetna-sub000/tests/common/httptest"
	commandsmock "github.com/kevinmatta11/pizzetna-sub000/tests/mock/commands"
	queriesmock "github.com/kevinmatta11/pizzetna-sub000/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoyaltyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLoyaltyCommands
	mockQueries  *queriesmock.MockLoyaltyQueries
	handler      *api.LoyaltyHandler
	userID       uuid.UUID
}

func (s *LoyaltyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLoyaltyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLoyaltyQueries(s.mockCtrl)
	s.handler = api.NewLoyaltyHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: Authorization header marks the request
	// as the suite's fixed user.
	authed := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", s.userID)
			}
			next(c)
		}
	}
	s.router.POST("/api/loyalty/spin", authed(s.handler.Spin))
	s.router.GET("/api/loyalty/balance", authed(s.handler.Balance))
	s.router.GET("/api/loyalty/history", authed(s.handler.History))
}

func (s *LoyaltyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoyaltyHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyHandlerTestSuite))
}

func (s *LoyaltyHandlerTestSuite) TestSpin() {
	url := "/api/loyalty/spin"

	s.Run("success: returns the draw result", func() {
		s.mockCommands.EXPECT().Spin(gomock.Any(), s.userID).
			Return(&commands.SpinResult{Points: 300, Label: "300 points", Won: true, NewBalance: 550}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.SpinResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(300), response.Points)
		s.True(response.Won)
		s.Equal(int64(550), response.NewBalance)
	})

	s.Run("success: a losing draw still returns 200", func() {
		s.mockCommands.EXPECT().Spin(gomock.Any(), s.userID).
			Return(&commands.SpinResult{Points: 0, Label: "Try Again", Won: false, NewBalance: 120}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.SpinResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Won)
		s.Equal(int64(0), response.Points)
	})

	s.Run("error: 409 ALREADY_SPUN_TODAY", func() {
		s.mockCommands.EXPECT().Spin(gomock.Any(), s.userID).
			Return(nil, commands.ErrAlreadySpunToday).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "ALREADY_SPUN_TODAY")
	})

	s.Run("error: 422 NO_PENDING_SPIN", func() {
		s.mockCommands.EXPECT().Spin(gomock.Any(), s.userID).
			Return(nil, commands.ErrNoPendingSpin).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, "NO_PENDING_SPIN")
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().Spin(gomock.Any(), s.userID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *LoyaltyHandlerTestSuite) TestBalance() {
	url := "/api/loyalty/balance"

	s.Run("success: returns balance with monetary value", func() {
		s.mockQueries.EXPECT().GetBalance(gomock.Any(), s.userID).
			Return(&queries.BalanceView{AccountID: s.userID, Balance: 450, ValueCents: 450}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.BalanceView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(450), response.Balance)
		s.Equal(int64(450), response.ValueCents)
	})

	s.Run("error: 401 without authentication", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})
}

func (s *LoyaltyHandlerTestSuite) TestHistory() {
	url := "/api/loyalty/history"

	s.Run("success: passes the limit through", func() {
		s.mockQueries.EXPECT().GetHistory(gomock.Any(), s.userID, 5).
			Return([]*queries.TransactionView{
				{ID: uuid.New(), AccountID: s.userID, Amount: 300, Kind: "wheel_spin"},
				{ID: uuid.New(), AccountID: s.userID, Amount: -100, Kind: "redeemed"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=5", nil, "bearer-token")

		var response []*queries.TransactionView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: defaults to no limit", func() {
		s.mockQueries.EXPECT().GetHistory(gomock.Any(), s.userID, 0).
			Return([]*queries.TransactionView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
