package api

import (
	"net/http"

	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MenuHandler struct {
	menuQueries queries.MenuQueries
}

func NewMenuHandler(menuQueries queries.MenuQueries) *MenuHandler {
	return &MenuHandler{
		menuQueries: menuQueries,
	}
}

// @Summary Storefront menu
// @Description List categories with their available items
// @Tags menu
// @Produce json
// @Success 200 {array} queries.CategoryView
// @Router /menu [get]
func (h *MenuHandler) ListMenu(c *gin.Context) {
	menu, err := h.menuQueries.ListMenu(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, menu)
}

// @Summary Menu item detail
// @Tags menu
// @Produce json
// @Param id path string true "Menu item ID"
// @Success 200 {object} queries.MenuItemView
// @Failure 404 {object} map[string]string
// @Router /menu/items/{id} [get]
func (h *MenuHandler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu item ID",
		})
		return
	}

	item, err := h.menuQueries.GetItem(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Menu item not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, item)
}
