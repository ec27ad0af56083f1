package commands

import (
	"context"
	"strings"
	"time"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/menu"
	reqdto "github.com/kevinmatta11/pizzetna-sub000/internal/handler/dto/request"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra"
	"github.com/kevinmatta11/pizzetna-sub000/internal/pkg/errs"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/queries"
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMenuEntryNotFound = errs.New("menu entry not found")
	ErrMenuValidation    = errs.New("invalid menu data")
	ErrCategoryInUse     = errs.New("category still has items")
)

type MenuCommands interface {
	CreateCategory(ctx context.Context, req reqdto.CreateCategoryRequest) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateItem(ctx context.Context, req reqdto.CreateMenuItemRequest) (uuid.UUID, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req reqdto.UpdateMenuItemRequest) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type menuCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.MenuReadStore
}

func NewMenuCommands(uow shared.UnitOfWork, readStore queries.MenuReadStore) MenuCommands {
	return &menuCommandsImpl{
		uow:       uow,
		readStore: readStore,
	}
}

func (m *menuCommandsImpl) CreateCategory(ctx context.Context, req reqdto.CreateCategoryRequest) (uuid.UUID, error) {
	category, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrMenuValidation)
	}

	var id uuid.UUID
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, createErr := tx.Menu().CreateCategory(ctx, tx.DB(), category)
		if createErr != nil {
			return createErr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to create category")
	}
	return id, nil
}

func (m *menuCommandsImpl) UpdateCategory(ctx context.Context, id uuid.UUID, req reqdto.UpdateCategoryRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errs.Mark(menu.ErrMissingName, ErrMenuValidation)
	}
	category := menu.ReconstructCategory(id, strings.TrimSpace(req.Name), req.Position, time.Time{}, time.Time{})

	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Menu().UpdateCategory(ctx, tx.DB(), category)
	})
	return m.mapMenuErr(err, "failed to update category")
}

func (m *menuCommandsImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Menu().DeleteCategory(ctx, tx.DB(), id)
	})
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return ErrCategoryInUse
	}
	return m.mapMenuErr(err, "failed to delete category")
}

func (m *menuCommandsImpl) CreateItem(ctx context.Context, req reqdto.CreateMenuItemRequest) (uuid.UUID, error) {
	item, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrMenuValidation)
	}

	var id uuid.UUID
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, createErr := tx.Menu().CreateItem(ctx, tx.DB(), item)
		if createErr != nil {
			return createErr
		}
		id = created
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, ErrMenuEntryNotFound
		}
		return uuid.Nil, errs.Wrap(err, "failed to create menu item")
	}
	return id, nil
}

func (m *menuCommandsImpl) UpdateItem(ctx context.Context, id uuid.UUID, req reqdto.UpdateMenuItemRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return errs.Mark(menu.ErrMissingName, ErrMenuValidation)
	}
	if req.PriceCents < 0 {
		return errs.Mark(menu.ErrNegativePrice, ErrMenuValidation)
	}

	current, err := m.readStore.FindItemByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMenuEntryNotFound
		}
		return errs.Wrap(err, "failed to load menu item")
	}

	item := menu.ReconstructItem(
		id,
		current.CategoryID,
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Description),
		req.PriceCents,
		req.Available,
		current.CreatedAt,
		current.UpdatedAt,
	)

	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Menu().UpdateItem(ctx, tx.DB(), item)
	})
	return m.mapMenuErr(err, "failed to update menu item")
}

func (m *menuCommandsImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	err := m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Menu().DeleteItem(ctx, tx.DB(), id)
	})
	return m.mapMenuErr(err, "failed to delete menu item")
}

func (m *menuCommandsImpl) mapMenuErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrMenuEntryNotFound
	}
	return errs.Wrap(err, msg)
}
