package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/greenbites/greenbites-backend/pkg/enums"
)

// Notification stores in-app notification payloads scoped to users.
// ReadAt is nil until the notification is read; the flag only moves one way.
type Notification struct {
	ID        uuid.UUID              `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID              `gorm:"type:uuid;not null;index" json:"-"`
	Type      enums.NotificationType `gorm:"type:text;not null" json:"type"`
	Title     string                 `gorm:"type:text;not null" json:"title"`
	Message   string                 `gorm:"type:text;not null" json:"message"`
	ReadAt    *time.Time             `gorm:"column:read_at" json:"readAt,omitempty"`
	CreatedAt time.Time              `gorm:"column:created_at" json:"createdAt"`
}

// Read reports whether the notification has been seen.
func (n Notification) Read() bool {
	return n.ReadAt != nil
}
