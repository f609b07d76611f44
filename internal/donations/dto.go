package donations

import (
	"github.com/greenbites/greenbites-backend/internal/impact"
	"github.com/greenbites/greenbites-backend/pkg/db/models"
)

// CreateDonationRequest is the payload for posting a new donation. Quantity
// arrives as a string to keep decimal precision intact.
type CreateDonationRequest struct {
	FoodType    string  `json:"foodType" validate:"required"`
	Quantity    string  `json:"quantity" validate:"required"`
	Unit        string  `json:"unit" validate:"required"`
	ExpiryDate  string  `json:"expiryDate" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// UpdateStatusRequest advances a donation along its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListResult is the dashboard payload: one page of donations plus the impact
// snapshot computed over the full collection.
type ListResult struct {
	Items      []models.Donation `json:"items"`
	NextCursor string            `json:"nextCursor,omitempty"`
	Stats      impact.DonorStats `json:"stats"`
}
