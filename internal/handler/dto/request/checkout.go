package request

import (
	"github.com/kevinmatta11/pizzetna-sub000/internal/domain/checkout"

	"github.com/google/uuid"
)

type CheckoutLineRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int32     `json:"quantity" binding:"required,min=1,max=50"`
}

type StartCheckoutRequest struct {
	Items []CheckoutLineRequest `json:"items" binding:"required,min=1,dive"`
}

type SubmitDeliveryRequest struct {
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Notes      string `json:"notes"`
}

func (r SubmitDeliveryRequest) ToDomain() (checkout.DeliveryInfo, error) {
	return checkout.NewDeliveryInfo(
		r.Name,
		r.Street,
		r.City,
		r.PostalCode,
		r.Phone,
		r.Notes,
	)
}

type PayRequest struct {
	// Card runs through the gateway; cash is accepted on the spot.
	// Defaults to card when omitted.
	Method string `json:"method" binding:"omitempty,oneof=card cash"`
	// Points the customer wants to redeem against this payment. The
	// service clamps it to what the balance and the payable amount allow.
	RedeemPoints int64 `json:"redeem_points" binding:"min=0"`
}
