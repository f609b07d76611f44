package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base is the gorm handle every domain repository embeds.
type Base struct {
	db *gorm.DB
}

// NewBase wraps the shared GORM connection for embedding.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the connection bound to ctx; a nil ctx yields the raw handle.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}
