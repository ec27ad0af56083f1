package loyalty

import "errors"

var (
	ErrInvalidKind        = errors.New("invalid transaction kind")
	ErrNonPositivePoints  = errors.New("points must be positive")
	ErrZeroAdjustment     = errors.New("adjustment cannot be zero")
	ErrMissingDescription = errors.New("transaction description required")
)

// Kind classifies a ledger entry.
type Kind string

const (
	KindEarned          Kind = "earned"
	KindRedeemed        Kind = "redeemed"
	KindWheelSpin       Kind = "wheel_spin"
	KindAdminAdjustment Kind = "admin_adjustment"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindEarned, KindRedeemed, KindWheelSpin, KindAdminAdjustment:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	return string(k)
}
