package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/greenbites/greenbites-backend/pkg/enums"
)

// SeedMarker records that a (user, collection) pair has been seeded with
// default data. It distinguishes "never loaded" from "deliberately emptied"
// so clearing a collection does not trigger re-seeding.
type SeedMarker struct {
	UserID   uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Kind     enums.CollectionKind `gorm:"type:text;primaryKey"`
	SeededAt time.Time            `gorm:"column:seeded_at"`
}
