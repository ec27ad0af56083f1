package request

import (
	"github.com/google/uuid"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AdjustPointsRequest struct {
	UserID      uuid.UUID `json:"user_id" binding:"required"`
	Points      int64     `json:"points" binding:"required"`
	Description string    `json:"description" binding:"required"`
}
