package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/request"
	resdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/response"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/commands"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler is the back office: menu management, order lifecycle, and
// manual balance adjustments.
type AdminHandler struct {
	menuCommands    commands.MenuCommands
	orderCommands   commands.OrderCommands
	loyaltyCommands commands.LoyaltyCommands
	menuQueries     queries.MenuQueries
	orderQueries    queries.OrderQueries
}

func NewAdminHandler(
	menuCommands commands.MenuCommands,
	orderCommands commands.OrderCommands,
	loyaltyCommands commands.LoyaltyCommands,
	menuQueries queries.MenuQueries,
	orderQueries queries.OrderQueries,
) *AdminHandler {
	return &AdminHandler{
		menuCommands:    menuCommands,
		orderCommands:   orderCommands,
		loyaltyCommands: loyaltyCommands,
		menuQueries:     menuQueries,
		orderQueries:    orderQueries,
	}
}

// @Summary Full menu including unavailable items
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} queries.CategoryView
// @Router /admin/menu [get]
func (h *AdminHandler) ListMenu(c *gin.Context) {
	menu, err := h.menuQueries.ListMenuAdmin(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, menu)
}

// @Summary Create category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCategoryRequest true "Category"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} map[string]string
// @Router /admin/menu/categories [post]
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.menuCommands.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.writeMenuError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Category ID"
// @Param request body reqdto.UpdateCategoryRequest true "Category"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/menu/categories/{id} [put]
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.menuCommands.UpdateCategory(c.Request.Context(), id, req); err != nil {
		h.writeMenuError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete category
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/menu/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.menuCommands.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrCategoryInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "Category still has items"})
			return
		}
		h.writeMenuError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create menu item
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} map[string]string
// @Router /admin/menu/items [post]
func (h *AdminHandler) CreateItem(c *gin.Context) {
	var req reqdto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.menuCommands.CreateItem(c.Request.Context(), req)
	if err != nil {
		h.writeMenuError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

// @Summary Update menu item
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Menu item ID"
// @Param request body reqdto.UpdateMenuItemRequest true "Menu item"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/menu/items/{id} [put]
func (h *AdminHandler) UpdateItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.menuCommands.UpdateItem(c.Request.Context(), id, req); err != nil {
		h.writeMenuError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete menu item
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/menu/items/{id} [delete]
func (h *AdminHandler) DeleteItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.menuCommands.DeleteItem(c.Request.Context(), id); err != nil {
		h.writeMenuError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary All orders
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max orders to return"
// @Success 200 {array} queries.OrderListItem
// @Router /admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	orders, err := h.orderQueries.ListAll(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// @Summary Update order status
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/orders/{id}/status [patch]
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.orderCommands.UpdateStatus(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.Is(err, commands.ErrInvalidStatusName):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Unknown order status"})
		case errors.Is(err, commands.ErrStatusTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Illegal status transition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Adjust a customer's points balance
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AdjustPointsRequest true "Adjustment"
// @Success 201 {object} resdto.IDResponse
// @Failure 400 {object} map[string]string
// @Router /admin/loyalty/adjust [post]
func (h *AdminHandler) AdjustPoints(c *gin.Context) {
	var req reqdto.AdjustPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.loyaltyCommands.AdjustPoints(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrAdjustInvalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid adjustment"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, resdto.IDResponse{ID: id})
}

func (h *AdminHandler) writeMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrMenuEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu entry not found"})
	case errors.Is(err, commands.ErrMenuValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return uuid.Nil, false
	}
	return id, true
}
