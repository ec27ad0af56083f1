package request

import (
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/menu"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Position int    `json:"position" binding:"min=0"`
}

func (r CreateCategoryRequest) ToDomain() (*menu.Category, error) {
	return menu.NewCategory(r.Name, r.Position)
}

type UpdateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Position int    `json:"position" binding:"min=0"`
}

type CreateMenuItemRequest struct {
	CategoryID  uuid.UUID `json:"category_id" binding:"required"`
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents" binding:"min=0"`
	Available   bool      `json:"available"`
}

func (r CreateMenuItemRequest) ToDomain() (*menu.Item, error) {
	return menu.NewItem(r.CategoryID, r.Name, r.Description, r.PriceCents, r.Available)
}

type UpdateMenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
	Available   bool   `json:"available"`
}
