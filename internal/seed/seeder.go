package seed

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/pkg/enums"
)

// Seeder writes the starter records for each collection on first access.
type Seeder struct {
	markers *Markers
	now     func() time.Time
}

// NewSeeder constructs a seeder bound to the provided GORM DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		markers: NewMarkers(db),
		now:     time.Now,
	}
}

// EnsureDonations seeds the donor's starter donations on first access.
func (s *Seeder) EnsureDonations(ctx context.Context, userID uuid.UUID) error {
	return s.markers.Ensure(ctx, userID, enums.CollectionDonations, func(ctx context.Context, tx *gorm.DB) error {
		items := DefaultDonations(userID, s.now().UTC())
		return tx.Create(&items).Error
	})
}

// EnsureRequests seeds the seeker's starter request history on first access.
func (s *Seeder) EnsureRequests(ctx context.Context, userID uuid.UUID) error {
	return s.markers.Ensure(ctx, userID, enums.CollectionRequests, func(ctx context.Context, tx *gorm.DB) error {
		items := DefaultRequests(userID, s.now().UTC())
		return tx.Create(&items).Error
	})
}

// EnsureNotifications seeds the role-specific notification feed on first access.
func (s *Seeder) EnsureNotifications(ctx context.Context, userID uuid.UUID, role enums.UserRole) error {
	return s.markers.Ensure(ctx, userID, enums.CollectionNotifications, func(ctx context.Context, tx *gorm.DB) error {
		items := DefaultNotifications(userID, role, s.now().UTC())
		return tx.Create(&items).Error
	})
}

// EnsureMessages seeds the role-specific inbox on first access.
func (s *Seeder) EnsureMessages(ctx context.Context, userID uuid.UUID, role enums.UserRole) error {
	return s.markers.Ensure(ctx, userID, enums.CollectionMessages, func(ctx context.Context, tx *gorm.DB) error {
		items := DefaultMessages(userID, role, s.now().UTC())
		return tx.Create(&items).Error
	})
}
