package response

import (
	"github.com/kevinmatta11/pizzetna-sub000/internal/usecase/commands"
)

type SpinResponse struct {
	Points     int64  `json:"points"`
	Label      string `json:"label"`
	Won        bool   `json:"won"`
	NewBalance int64  `json:"new_balance"`
}

func FromSpinResult(r *commands.SpinResult) *SpinResponse {
	return &SpinResponse{
		Points:     r.Points,
		Label:      r.Label,
		Won:        r.Won,
		NewBalance: r.NewBalance,
	}
}
