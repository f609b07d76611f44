package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenbites/greenbites-backend/pkg/enums"
)

// Donation is a donor-owned offer of surplus food.
type Donation struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID            `gorm:"type:uuid;not null;index" json:"-"`
	FoodType    string               `gorm:"type:text;not null" json:"foodType"`
	Quantity    decimal.Decimal      `gorm:"type:numeric;not null" json:"quantity"`
	Unit        enums.QuantityUnit   `gorm:"type:text;not null" json:"unit"`
	ExpiryDate  time.Time            `gorm:"type:date;not null" json:"expiryDate"`
	Location    string               `gorm:"type:text;not null" json:"location"`
	Description *string              `gorm:"type:text" json:"description,omitempty"`
	Status      enums.DonationStatus `gorm:"type:text;not null" json:"status"`
	DonorName   string               `gorm:"column:donor_name;not null" json:"donorName"`
	CreatedAt   time.Time            `gorm:"column:created_at" json:"createdAt"`
}
