package shared

import (
	"context"
	"time"

	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/checkout"
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/loyalty"
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/menu"
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/order"
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/user"
	"github.com/kevinmatta11/pizzetna-sub000/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Orders() OrderRepository
	Ledger() LedgerRepository
	Checkouts() CheckoutRepository
	Menu() MenuRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	CheckoutSessionByID(ctx context.Context, id uuid.UUID) (*checkout.Session, error)
	MenuItemsByIDs(ctx context.Context, ids []uuid.UUID) ([]*MenuItemSnapshot, error)
	OrderStatusByID(ctx context.Context, id uuid.UUID) (order.Status, error)
	// TodaySpinExists reports whether the account already holds a
	// wheel_spin ledger row dated today (database local date).
	TodaySpinExists(ctx context.Context, accountID uuid.UUID) (bool, error)
	// OldestPendingSpinOrderID returns the earliest paid order that still
	// carries an unconsumed spin entitlement for the user.
	OldestPendingSpinOrderID(ctx context.Context, userID uuid.UUID) (*uuid.UUID, error)
	Balance(ctx context.Context, accountID uuid.UUID) (int64, error)
}

// Minimal snapshots for command-side validation reads.

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	Role         string
	PasswordHash string
	IsActive     bool
	LastLogin    *time.Time
}

type MenuItemSnapshot struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	Available  bool
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, tx db.DBTX, orderID uuid.UUID, status order.Status) error
	ApplyDiscount(ctx context.Context, tx db.DBTX, orderID uuid.UUID, discountCents int64) error
	// ConsumePendingSpin flips pending_spin to false and reports whether
	// this call was the one that consumed it.
	ConsumePendingSpin(ctx context.Context, tx db.DBTX, orderID uuid.UUID) (bool, error)
}

type LedgerRepository interface {
	// Append inserts the transaction and updates the cached account
	// balance in the same statement batch.
	Append(ctx context.Context, tx db.DBTX, t *loyalty.Transaction) (uuid.UUID, error)
	// LockAccount takes a row lock on the loyalty account and returns its
	// cached balance, creating the account row if missing.
	LockAccount(ctx context.Context, tx db.DBTX, accountID uuid.UUID) (int64, error)
	TodaySpinExists(ctx context.Context, tx db.DBTX, accountID uuid.UUID) (bool, error)
}

type CheckoutRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *checkout.Session) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, s *checkout.Session) error
	// CompleteSpinOffered moves the session bound to the order from
	// spin_offered to done. No-op when the session already finished.
	CompleteSpinOffered(ctx context.Context, tx db.DBTX, orderID uuid.UUID) error
}

type MenuRepository interface {
	CreateCategory(ctx context.Context, tx db.DBTX, c *menu.Category) (uuid.UUID, error)
	UpdateCategory(ctx context.Context, tx db.DBTX, c *menu.Category) error
	DeleteCategory(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	CreateItem(ctx context.Context, tx db.DBTX, it *menu.Item) (uuid.UUID, error)
	UpdateItem(ctx context.Context, tx db.DBTX, it *menu.Item) error
	DeleteItem(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
