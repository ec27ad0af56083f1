package response

import (
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/commands"

	"github.com/google/uuid"
)

type StartCheckoutResponse struct {
	SessionID  uuid.UUID `json:"session_id"`
	GuestToken uuid.UUID `json:"guest_token"`
}

type PayResponse struct {
	OrderID        uuid.UUID `json:"order_id"`
	SubtotalCents  int64     `json:"subtotal_cents"`
	DeliveryCents  int64     `json:"delivery_fee_cents"`
	RedeemedPoints int64     `json:"redeemed_points"`
	DiscountCents  int64     `json:"discount_cents"`
	TotalCents     int64     `json:"total_cents"`
	SpinOffered    bool      `json:"spin_offered"`
}

func FromPayResult(r *commands.PayResult) *PayResponse {
	return &PayResponse{
		OrderID:        r.OrderID,
		SubtotalCents:  r.SubtotalCents,
		DeliveryCents:  r.DeliveryCents,
		RedeemedPoints: r.RedeemedPoints,
		DiscountCents:  r.DiscountCents,
		TotalCents:     r.TotalCents,
		SpinOffered:    r.SpinOffered,
	}
}
