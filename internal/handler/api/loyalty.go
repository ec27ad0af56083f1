package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/response"
	"github.com/kevinmatta11/pizzetna-sub000/internal/handler/middleware"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/commands"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	loyaltyCommands commands.LoyaltyCommands
	loyaltyQueries  queries.LoyaltyQueries
}

func NewLoyaltyHandler(loyaltyCommands commands.LoyaltyCommands, loyaltyQueries queries.LoyaltyQueries) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyCommands: loyaltyCommands,
		loyaltyQueries:  loyaltyQueries,
	}
}

// @Summary Spin the reward wheel
// @Description Consume a pending spin entitlement and record the draw. One spin per account per day.
// @Tags loyalty
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SpinResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /loyalty/spin [post]
func (h *LoyaltyHandler) Spin(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	result, err := h.loyaltyCommands.Spin(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAlreadySpunToday):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Already spun today",
				"code":  "ALREADY_SPUN_TODAY",
			})
		case errors.Is(err, commands.ErrNoPendingSpin):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No pending spin",
				"code":  "NO_PENDING_SPIN",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSpinResult(result))
}

// @Summary Points balance
// @Tags loyalty
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.BalanceView
// @Failure 401 {object} map[string]string
// @Router /loyalty/balance [get]
func (h *LoyaltyHandler) Balance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	balance, err := h.loyaltyQueries.GetBalance(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, balance)
}

// @Summary Points history
// @Description Ledger entries for the authenticated account, newest first
// @Tags loyalty
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max entries to return"
// @Success 200 {array} queries.TransactionView
// @Failure 401 {object} map[string]string
// @Router /loyalty/history [get]
func (h *LoyaltyHandler) History(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	history, err := h.loyaltyQueries.GetHistory(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, history)
}
