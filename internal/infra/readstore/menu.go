package readstore

import (
	"context"

	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuReadStore struct {
	pool *pgxpool.Pool
}

func NewMenuReadStore(pool *pgxpool.Pool) *MenuReadStore {
	return &MenuReadStore{pool: pool}
}

func (r *MenuReadStore) ListCategoriesWithItems(ctx context.Context, includeUnavailable bool) ([]*queries.CategoryView, error) {
	const categoryQuery = `
		SELECT id, name, position
		FROM categories
		ORDER BY position, name`

	rows, err := r.pool.Query(ctx, categoryQuery)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	var views []*queries.CategoryView
	index := make(map[uuid.UUID]*queries.CategoryView)
	for rows.Next() {
		v := &queries.CategoryView{Items: []queries.MenuItemView{}}
		if err := rows.Scan(&v.ID, &v.Name, &v.Position); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category", err)
		}
		views = append(views, v)
		index[v.ID] = v
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read categories", err)
	}

	const itemQuery = `
		SELECT id, category_id, name, description, price_cents, available, created_at, updated_at
		FROM menu_items
		WHERE available OR $1
		ORDER BY name`

	itemRows, err := r.pool.Query(ctx, itemQuery, includeUnavailable)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item queries.MenuItemView
		err := itemRows.Scan(
			&item.ID, &item.CategoryID, &item.Name, &item.Description,
			&item.PriceCents, &item.Available, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item", err)
		}
		if category, ok := index[item.CategoryID]; ok {
			category.Items = append(category.Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read menu items", err)
	}

	return views, nil
}

func (r *MenuReadStore) FindItemByID(ctx context.Context, id uuid.UUID) (*queries.MenuItemView, error) {
	const query = `
		SELECT id, category_id, name, description, price_cents, available, created_at, updated_at
		FROM menu_items
		WHERE id = $1`

	var item queries.MenuItemView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.CategoryID, &item.Name, &item.Description,
		&item.PriceCents, &item.Available, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item", err)
	}
	return &item, nil
}
