package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/greenbites/greenbites-backend/pkg/enums"
)

// User represents one of the demo accounts. Every stored collection is keyed
// by the owning user's ID.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string         `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string         `gorm:"column:password_hash;not null" json:"-"`
	DisplayName  string         `gorm:"column:display_name;not null" json:"name"`
	Role         enums.UserRole `gorm:"type:text;not null" json:"role"`
	LastLoginAt  *time.Time     `gorm:"column:last_login_at" json:"-"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
