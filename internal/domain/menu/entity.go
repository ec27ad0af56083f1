package menu

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingName   = errors.New("name required")
	ErrNegativePrice = errors.New("price cannot be negative")
)

type Category struct {
	id        uuid.UUID
	name      string
	position  int
	createdAt time.Time
	updatedAt time.Time
}

func NewCategory(name string, position int) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	return &Category{
		id:       uuid.New(),
		name:     name,
		position: position,
	}, nil
}

func ReconstructCategory(id uuid.UUID, name string, position int, createdAt, updatedAt time.Time) *Category {
	return &Category{id: id, name: name, position: position, createdAt: createdAt, updatedAt: updatedAt}
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Position() int        { return c.position }
func (c *Category) CreatedAt() time.Time { return c.createdAt }
func (c *Category) UpdatedAt() time.Time { return c.updatedAt }

// Item is a menu entry. Orders copy its price at purchase time, so price
// edits here never rewrite history.
type Item struct {
	id          uuid.UUID
	categoryID  uuid.UUID
	name        string
	description string
	priceCents  int64
	available   bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(categoryID uuid.UUID, name, description string, priceCents int64, available bool) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Item{
		id:          uuid.New(),
		categoryID:  categoryID,
		name:        name,
		description: strings.TrimSpace(description),
		priceCents:  priceCents,
		available:   available,
	}, nil
}

func ReconstructItem(
	id, categoryID uuid.UUID,
	name, description string,
	priceCents int64,
	available bool,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		categoryID:  categoryID,
		name:        name,
		description: description,
		priceCents:  priceCents,
		available:   available,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Item) ID() uuid.UUID         { return i.id }
func (i *Item) CategoryID() uuid.UUID { return i.categoryID }
func (i *Item) Name() string          { return i.name }
func (i *Item) Description() string   { return i.description }
func (i *Item) PriceCents() int64     { return i.priceCents }
func (i *Item) Available() bool       { return i.available }
func (i *Item) CreatedAt() time.Time  { return i.createdAt }
func (i *Item) UpdatedAt() time.Time  { return i.updatedAt }
