package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/enums"
)

// Markers tracks which (user, collection) pairs have been seeded. A cleared
// collection keeps its marker, so defaults are only ever written once.
type Markers struct {
	db *gorm.DB
}

// NewMarkers constructs a marker store bound to the provided GORM DB.
func NewMarkers(db *gorm.DB) *Markers {
	return &Markers{db: db}
}

// Ensure runs fill exactly once per (user, kind). The fill and the marker
// write share a transaction so a failed fill leaves the pair unseeded.
func (m *Markers) Ensure(ctx context.Context, userID uuid.UUID, kind enums.CollectionKind, fill func(ctx context.Context, tx *gorm.DB) error) error {
	if !kind.IsValid() {
		return fmt.Errorf("invalid collection kind %q", kind)
	}

	seeded, err := m.seeded(ctx, userID, kind)
	if err != nil {
		return err
	}
	if seeded {
		return nil
	}

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := fill(ctx, tx); err != nil {
			return err
		}
		marker := models.SeedMarker{
			UserID:   userID,
			Kind:     kind,
			SeededAt: time.Now().UTC(),
		}
		return tx.Create(&marker).Error
	})
}

func (m *Markers) seeded(ctx context.Context, userID uuid.UUID, kind enums.CollectionKind) (bool, error) {
	var marker models.SeedMarker
	err := m.db.WithContext(ctx).
		Where("user_id = ? AND kind = ?", userID, kind).
		First(&marker).Error
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}
