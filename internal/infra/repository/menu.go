package repository

import (
	"context"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/menu"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/db"

	"github.com/google/uuid"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

func (r *MenuRepository) CreateCategory(ctx context.Context, tx db.DBTX, c *menu.Category) (uuid.UUID, error) {
	const query = `
		INSERT INTO categories (id, name, position)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id uuid.UUID
	if err := tx.QueryRow(ctx, query, c.ID(), c.Name(), c.Position()).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create category", err)
	}
	return id, nil
}

func (r *MenuRepository) UpdateCategory(ctx context.Context, tx db.DBTX, c *menu.Category) error {
	const query = `
		UPDATE categories SET name = $2, position = $3, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, c.ID(), c.Name(), c.Position())
	if err != nil {
		return infra.WrapRepoErr("failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", errNoRowsUpdated, infra.KindNotFound)
	}
	return nil
}

func (r *MenuRepository) DeleteCategory(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", errNoRowsUpdated, infra.KindNotFound)
	}
	return nil
}

func (r *MenuRepository) CreateItem(ctx context.Context, tx db.DBTX, it *menu.Item) (uuid.UUID, error) {
	const query = `
		INSERT INTO menu_items (id, category_id, name, description, price_cents, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		it.ID(),
		it.CategoryID(),
		it.Name(),
		it.Description(),
		it.PriceCents(),
		it.Available(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create menu item", err)
	}
	return id, nil
}

func (r *MenuRepository) UpdateItem(ctx context.Context, tx db.DBTX, it *menu.Item) error {
	const query = `
		UPDATE menu_items
		SET name = $2, description = $3, price_cents = $4, available = $5, updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, it.ID(), it.Name(), it.Description(), it.PriceCents(), it.Available())
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", errNoRowsUpdated, infra.KindNotFound)
	}
	return nil
}

func (r *MenuRepository) DeleteItem(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", errNoRowsUpdated, infra.KindNotFound)
	}
	return nil
}
