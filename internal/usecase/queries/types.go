package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type CategoryView struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Position int32          `json:"position"`
	Items    []MenuItemView `json:"items"`
}

type MenuItemView struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type OrderItemView struct {
	MenuItemID     uuid.UUID `json:"menu_item_id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int32     `json:"quantity"`
}

type OrderView struct {
	ID               uuid.UUID       `json:"id"`
	UserID           *uuid.UUID      `json:"user_id,omitempty"`
	Items            []OrderItemView `json:"items"`
	SubtotalCents    int64           `json:"subtotal_cents"`
	DeliveryFeeCents int64           `json:"delivery_fee_cents"`
	DiscountCents    int64           `json:"discount_cents"`
	TotalCents       int64           `json:"total_cents"`
	Status           string          `json:"status"`
	PendingSpin      bool            `json:"pending_spin"`
	CreatedAt        time.Time       `json:"created_at"`
}

type OrderListItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	TotalCents  int64     `json:"total_cents"`
	Status      string    `json:"status"`
	PendingSpin bool      `json:"pending_spin"`
	CreatedAt   time.Time `json:"created_at"`
}

type BalanceView struct {
	AccountID  uuid.UUID `json:"account_id"`
	Balance    int64     `json:"balance"`
	ValueCents int64     `json:"value_cents"`
}

type TransactionView struct {
	ID          uuid.UUID  `json:"id"`
	AccountID   uuid.UUID  `json:"account_id"`
	Amount      int64      `json:"amount"`
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	OrderID     *uuid.UUID `json:"order_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type CheckoutView struct {
	ID               uuid.UUID      `json:"id"`
	State            string         `json:"state"`
	Lines            []OrderItemView `json:"lines"`
	SubtotalCents    int64          `json:"subtotal_cents"`
	DeliveryFeeCents int64          `json:"delivery_fee_cents"`
	PayableCents     int64          `json:"payable_cents"`
	OrderID          *uuid.UUID     `json:"order_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
