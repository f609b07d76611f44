package requests

import (
	"github.com/greenbites/greenbites-backend/internal/impact"
	"github.com/greenbites/greenbites-backend/pkg/db/models"
)

// CreateRequestRequest is the payload for posting a new food request.
type CreateRequestRequest struct {
	FoodType string `json:"foodType" validate:"required"`
	Quantity string `json:"quantity" validate:"required"`
	Unit     string `json:"unit" validate:"required"`
	Urgency  string `json:"urgency" validate:"required"`
	Location string `json:"location" validate:"required"`
	Purpose  string `json:"purpose" validate:"required"`
}

// UpdateStatusRequest advances a request along its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListResult is the dashboard payload: one page of requests plus the impact
// snapshot computed over the full collection.
type ListResult struct {
	Items      []models.Request   `json:"items"`
	NextCursor string             `json:"nextCursor,omitempty"`
	Stats      impact.SeekerStats `json:"stats"`
}
