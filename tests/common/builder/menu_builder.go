//go:build unit || e2e

package builder

import (
	reqdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/request"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

type MenuItemBuilder struct {
	ID         uuid.UUID
	CategoryID uuid.UUID
	Name       string
	PriceCents int64
	Available  bool
}

func NewMenuItemBuilder() *MenuItemBuilder {
	return &MenuItemBuilder{
		ID:         uuid.New(),
		CategoryID: uuid.New(),
		Name:       "Margherita",
		PriceCents: 1200,
		Available:  true,
	}
}

func (b *MenuItemBuilder) BuildSnapshot() *shared.MenuItemSnapshot {
	return &shared.MenuItemSnapshot{
		ID:         b.ID,
		Name:       b.Name,
		PriceCents: b.PriceCents,
		Available:  b.Available,
	}
}

func (b *MenuItemBuilder) BuildCreateDTO() reqdto.CreateMenuItemRequest {
	return reqdto.CreateMenuItemRequest{
		CategoryID:  b.CategoryID,
		Name:        b.Name,
		Description: "Tomato, mozzarella, basil",
		PriceCents:  b.PriceCents,
		Available:   b.Available,
	}
}

// Fluent builder methods
func (b *MenuItemBuilder) WithName(name string) *MenuItemBuilder {
	b.Name = name
	return b
}

func (b *MenuItemBuilder) WithPrice(priceCents int64) *MenuItemBuilder {
	b.PriceCents = priceCents
	return b
}

func (b *MenuItemBuilder) AsUnavailable() *MenuItemBuilder {
	b.Available = false
	return b
}
