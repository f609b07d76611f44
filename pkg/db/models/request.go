package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/greenbites/greenbites-backend/pkg/enums"
)

// Request is a seeker-owned ask for food.
type Request struct {
	ID         uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"-"`
	FoodType   string              `gorm:"type:text;not null" json:"foodType"`
	Quantity   decimal.Decimal     `gorm:"type:numeric;not null" json:"quantity"`
	Unit       enums.QuantityUnit  `gorm:"type:text;not null" json:"unit"`
	Urgency    enums.Urgency       `gorm:"type:text;not null" json:"urgency"`
	Location   string              `gorm:"type:text;not null" json:"location"`
	Purpose    string              `gorm:"type:text;not null" json:"purpose"`
	Status     enums.RequestStatus `gorm:"type:text;not null" json:"status"`
	SeekerName string              `gorm:"column:seeker_name;not null" json:"seekerName"`
	CreatedAt  time.Time           `gorm:"column:created_at" json:"createdAt"`
}
