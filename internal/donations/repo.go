package donations

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/internal/repo"
	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/pagination"
)

// Repository exposes persistence helpers for donations.
type Repository interface {
	Create(ctx context.Context, donation *models.Donation) error
	List(ctx context.Context, params ListParams) ([]models.Donation, *pagination.Cursor, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]models.Donation, error)
	Find(ctx context.Context, userID, id uuid.UUID) (*models.Donation, error)
	UpdateStatus(ctx context.Context, donation *models.Donation) error
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
}

// ListParams carries the owner scope and cursor inputs for a page query.
type ListParams struct {
	UserID uuid.UUID
	Limit  int
	Cursor *pagination.Cursor
}

type repositoryImpl struct {
	repo.Base
}

// NewRepository returns a donations repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{Base: repo.NewBase(db)}
}

func (r *repositoryImpl) Create(ctx context.Context, donation *models.Donation) error {
	return r.DB(ctx).Create(donation).Error
}

func (r *repositoryImpl) List(ctx context.Context, params ListParams) ([]models.Donation, *pagination.Cursor, error) {
	limit := pagination.LimitWithBuffer(params.Limit)
	normalized := pagination.NormalizeLimit(params.Limit)
	query := r.DB(ctx).Model(&models.Donation{}).Where("user_id = ?", params.UserID)
	if params.Cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", params.Cursor.CreatedAt, params.Cursor.ID)
	}

	var donations []models.Donation
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&donations).Error; err != nil {
		return nil, nil, err
	}

	if len(donations) > normalized {
		donations = donations[:normalized]
		last := donations[normalized-1]
		return wellFormed(donations), &pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}, nil
	}
	return wellFormed(donations), nil, nil
}

// wellFormed drops stored rows whose enum fields no longer parse. Such rows
// are never surfaced with an undefined status or unit.
func wellFormed(donations []models.Donation) []models.Donation {
	kept := donations[:0]
	for _, donation := range donations {
		if donation.Status.IsValid() && donation.Unit.IsValid() {
			kept = append(kept, donation)
		}
	}
	return kept
}

func (r *repositoryImpl) ListAll(ctx context.Context, userID uuid.UUID) ([]models.Donation, error) {
	var donations []models.Donation
	err := r.DB(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&donations).Error
	if err != nil {
		return nil, err
	}
	return wellFormed(donations), nil
}

func (r *repositoryImpl) Find(ctx context.Context, userID, id uuid.UUID) (*models.Donation, error) {
	var donation models.Donation
	err := r.DB(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&donation).Error
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, donation *models.Donation) error {
	return r.DB(ctx).
		Model(&models.Donation{}).
		Where("id = ? AND user_id = ?", donation.ID, donation.UserID).
		UpdateColumn("status", donation.Status).Error
}

func (r *repositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	result := r.DB(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Donation{})
	return result.RowsAffected, result.Error
}
