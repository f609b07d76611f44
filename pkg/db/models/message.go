package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is an inbox item delivered to a user; individually deletable.
type Message struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	Sender    string     `gorm:"type:text;not null" json:"sender"`
	Subject   string     `gorm:"type:text;not null" json:"subject"`
	Preview   string     `gorm:"type:text;not null" json:"preview"`
	Body      string     `gorm:"type:text;not null" json:"body"`
	ReadAt    *time.Time `gorm:"column:read_at" json:"readAt,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"createdAt"`
}

// Read reports whether the message has been opened.
func (m Message) Read() bool {
	return m.ReadAt != nil
}
