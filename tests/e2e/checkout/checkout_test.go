//go:build e2e

package checkout_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/request"
	resdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/response"
	"github.com/kevinmatta11/pizzetna-sub000/internal/handler/middleware"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/queries"
	"github.com/kevinmatta11/pizzetna-sub000/tests/common/authtest"
	"github.com/kevinmatta11/pizzetna-sub000/tests/common/dbtest"
	"github.com/kevinmatta11/pizzetna-sub000/tests/common/httptest"
	"github.com/kevinmatta11/pizzetna-sub000/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	checkoutURL = "/api/checkout"
	spinURL     = "/api/loyalty/spin"
	balanceURL  = "/api/loyalty/balance"
)

type checkoutSuite struct {
	e2e.SharedSuite
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(checkoutSuite))
}

func (s *checkoutSuite) startSession(token string, itemID uuid.UUID, quantity int32) resdto.StartCheckoutResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, request.StartCheckoutRequest{
		Items: []request.CheckoutLineRequest{{MenuItemID: itemID, Quantity: quantity}},
	}, token)

	var started resdto.StartCheckoutResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &started)
	return started
}

func deliveryForm() request.SubmitDeliveryRequest {
	return request.SubmitDeliveryRequest{
		Name:       "Ada Lovelace",
		Phone:      "+96170000000",
		Street:     "12 Rue de la Pizza",
		City:       "Beirut",
		PostalCode: "1100",
	}
}

func (s *checkoutSuite) ledgerSum(accountID uuid.UUID) int64 {
	var sum int64
	err := s.DB.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(amount), 0) FROM point_transactions WHERE account_id = $1", accountID).Scan(&sum)
	require.NoError(s.T(), err)
	return sum
}

func (s *checkoutSuite) TestAuthenticatedPurchase() {
	s.Run("full flow: checkout, pay, spin once", func() {
		userID := dbtest.CreateTestUser(s.T(), s.DB, "buyer@example.com", "customer")
		token := authtest.LoginUser(s.T(), s.Router, "buyer@example.com", "password123")
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, "Margherita", 1200, true)

		started := s.startSession(token, itemID, 2)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			checkoutURL+"/"+started.SessionID.String()+"/delivery", deliveryForm(), token)
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			checkoutURL+"/"+started.SessionID.String()+"/pay", request.PayRequest{}, token)

		var paid resdto.PayResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &paid)
		s.Equal(int64(2400), paid.SubtotalCents)
		s.Equal(int64(2400+399), paid.TotalCents)
		s.True(paid.SpinOffered)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, spinURL, nil, token)

		var spin resdto.SpinResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &spin)
		s.GreaterOrEqual(spin.Points, int64(0))
		s.Equal(spin.Points, spin.NewBalance)

		// Every draw writes a ledger row, so a second spin the same day
		// is refused even after a losing draw.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, spinURL, nil, token)
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "ALREADY_SPUN_TODAY")

		// The cached balance never drifts from the ledger.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, balanceURL, nil, token)
		var balance queries.BalanceView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &balance)
		s.Equal(spin.NewBalance, balance.Balance)
		s.Equal(s.ledgerSum(userID), balance.Balance)
	})

	s.Run("spin without a paid order is refused", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "idle@example.com", "customer")
		token := authtest.LoginUser(s.T(), s.Router, "idle@example.com", "password123")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, spinURL, nil, token)
		httptest.AssertErrorCode(s.T(), w, http.StatusUnprocessableEntity, "NO_PENDING_SPIN")
	})

	s.Run("paying twice conflicts", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "eager@example.com", "customer")
		token := authtest.LoginUser(s.T(), s.Router, "eager@example.com", "password123")
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, "Margherita", 1200, true)

		started := s.startSession(token, itemID, 1)
		payURL := checkoutURL + "/" + started.SessionID.String() + "/pay"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			checkoutURL+"/"+started.SessionID.String()+"/delivery", deliveryForm(), token)
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, payURL, request.PayRequest{}, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, payURL, request.PayRequest{}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "")
	})
}

func (s *checkoutSuite) TestGuestCheckout() {
	s.Run("guest pays with the session token and gets no spin", func() {
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, "Quattro Formaggi", 1500, true)

		started := s.startSession("", itemID, 1)
		guestHeader := map[string]string{middleware.GuestTokenHeader: started.GuestToken.String()}

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPut,
			checkoutURL+"/"+started.SessionID.String()+"/delivery", deliveryForm(), "", guestHeader)
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost,
			checkoutURL+"/"+started.SessionID.String()+"/pay", request.PayRequest{}, "", guestHeader)

		var paid resdto.PayResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &paid)
		s.Equal(int64(1500+399), paid.TotalCents)
		s.False(paid.SpinOffered)
	})

	s.Run("short phone number is a validation error, not a conflict", func() {
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, "Capricciosa", 1600, true)

		started := s.startSession("", itemID, 1)
		guestHeader := map[string]string{middleware.GuestTokenHeader: started.GuestToken.String()}

		form := deliveryForm()
		form.Phone = "12345"

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPut,
			checkoutURL+"/"+started.SessionID.String()+"/delivery", form, "", guestHeader)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "phone number must be at least 6 characters")

		// The session is untouched and accepts a corrected form.
		w = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPut,
			checkoutURL+"/"+started.SessionID.String()+"/delivery", deliveryForm(), "", guestHeader)
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())
	})

	s.Run("wrong guest token is forbidden", func() {
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, "Diavola", 1400, true)

		started := s.startSession("", itemID, 1)
		wrongHeader := map[string]string{middleware.GuestTokenHeader: uuid.New().String()}

		w := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPut,
			checkoutURL+"/"+started.SessionID.String()+"/delivery", deliveryForm(), "", wrongHeader)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
	})

	s.Run("unavailable item cannot enter a cart", func() {
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, "Seasonal Special", 1800, false)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, request.StartCheckoutRequest{
			Items: []request.CheckoutLineRequest{{MenuItemID: itemID, Quantity: 1}},
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "unavailable")
	})
}

func (s *checkoutSuite) TestRedemption() {
	s.Run("points discount the payable amount and the ledger records it", func() {
		userID := dbtest.CreateTestUser(s.T(), s.DB, "saver@example.com", "customer")
		token := authtest.LoginUser(s.T(), s.Router, "saver@example.com", "password123")
		itemID := dbtest.CreateTestMenuItem(s.T(), s.DB, "Margherita", 1200, true)

		ctx := context.Background()
		_, err := s.DB.Exec(ctx,
			"INSERT INTO loyalty_accounts (user_id, balance) VALUES ($1, 500)", userID)
		require.NoError(s.T(), err)
		_, err = s.DB.Exec(ctx,
			"INSERT INTO point_transactions (id, account_id, amount, kind, description) VALUES ($1, $2, 500, 'earned', 'Signup bonus')",
			uuid.New(), userID)
		require.NoError(s.T(), err)

		started := s.startSession(token, itemID, 1)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			checkoutURL+"/"+started.SessionID.String()+"/delivery", deliveryForm(), token)
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())

		// Ask for more than the balance holds; the clamp settles at 500.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			checkoutURL+"/"+started.SessionID.String()+"/pay", request.PayRequest{RedeemPoints: 9999}, token)

		var paid resdto.PayResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &paid)
		s.Equal(int64(500), paid.RedeemedPoints)
		s.Equal(int64(500), paid.DiscountCents)
		s.Equal(int64(1200+399-500), paid.TotalCents)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, balanceURL, nil, token)
		var balance queries.BalanceView
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &balance)
		s.Equal(int64(0), balance.Balance)
		s.Equal(s.ledgerSum(userID), balance.Balance)
	})
}
