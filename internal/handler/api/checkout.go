package api

import (
	"errors"
	"net/http"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/checkout"
	reqdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/request"
	resdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/response"
	"github.com/kevinmatta11/pizzetna-sub000/internal/handler/middleware"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/commands"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
	checkoutQueries  queries.CheckoutQueries
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands, checkoutQueries queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
		checkoutQueries:  checkoutQueries,
	}
}

// @Summary Start checkout
// @Description Open a checkout session from a non-empty cart. Guests get a session token; authenticated buyers are bound by account.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.StartCheckoutRequest true "Cart contents"
// @Success 201 {object} resdto.StartCheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Start(c *gin.Context) {
	var req reqdto.StartCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	result, err := h.checkoutCommands.Start(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMenuItemUnavailable):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "One or more items are unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.StartCheckoutResponse{
		SessionID:  result.SessionID,
		GuestToken: result.GuestToken,
	})
}

// @Summary Submit delivery info
// @Tags checkout
// @Accept json
// @Param id path string true "Checkout session ID"
// @Param request body reqdto.SubmitDeliveryRequest true "Delivery form"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout/{id}/delivery [put]
func (h *CheckoutHandler) SubmitDelivery(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.SubmitDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actor, guestToken := h.identity(c)
	err := h.checkoutCommands.SubmitDelivery(c.Request.Context(), sessionID, actor, guestToken, req)
	if err != nil {
		h.writeCheckoutError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Pay for checkout
// @Description Capture payment, commit the order, and apply any requested point redemption
// @Tags checkout
// @Accept json
// @Produce json
// @Param id path string true "Checkout session ID"
// @Param request body reqdto.PayRequest true "Payment request"
// @Success 200 {object} resdto.PayResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /checkout/{id}/pay [post]
func (h *CheckoutHandler) Pay(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	actor, guestToken := h.identity(c)
	result, err := h.checkoutCommands.Pay(c.Request.Context(), sessionID, actor, guestToken, req)
	if err != nil {
		h.writeCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPayResult(result))
}

// @Summary Checkout session state
// @Tags checkout
// @Produce json
// @Param id path string true "Checkout session ID"
// @Success 200 {object} queries.CheckoutView
// @Failure 404 {object} map[string]string
// @Router /checkout/{id} [get]
func (h *CheckoutHandler) Get(c *gin.Context) {
	sessionID, ok := h.sessionID(c)
	if !ok {
		return
	}

	actor, guestToken := h.identity(c)
	view, err := h.checkoutQueries.GetByID(c.Request.Context(), sessionID, actor, guestToken)
	if err != nil {
		if errors.Is(err, queries.ErrCheckoutNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Checkout session not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *CheckoutHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid checkout session ID",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *CheckoutHandler) identity(c *gin.Context) (*uuid.UUID, uuid.UUID) {
	var actor *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		actor = &id
	}
	return actor, middleware.GetGuestToken(c)
}

func (h *CheckoutHandler) writeCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrCheckoutNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Checkout session not found",
		})
	case errors.Is(err, commands.ErrCheckoutForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not your checkout session",
		})
	case errors.Is(err, commands.ErrDeliveryInvalid):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": deliveryMessage(err),
		})
	case errors.Is(err, commands.ErrCheckoutConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Checkout session is not in the right state",
		})
	case errors.Is(err, commands.ErrPaymentFailed):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Payment could not be captured",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

// deliveryMessage surfaces the failed field's own message so the buyer
// knows what to correct.
func deliveryMessage(err error) string {
	for _, sentinel := range []error{
		checkout.ErrMissingName,
		checkout.ErrMissingStreet,
		checkout.ErrMissingCity,
		checkout.ErrMissingPostalCode,
		checkout.ErrInvalidPhone,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "Invalid delivery details"
}
