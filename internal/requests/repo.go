package requests

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/internal/repo"
	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/pagination"
)

// Repository exposes persistence helpers for food requests.
type Repository interface {
	Create(ctx context.Context, request *models.Request) error
	List(ctx context.Context, params ListParams) ([]models.Request, *pagination.Cursor, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]models.Request, error)
	Find(ctx context.Context, userID, id uuid.UUID) (*models.Request, error)
	UpdateStatus(ctx context.Context, request *models.Request) error
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

// NewRepository returns a requests repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{Base: repo.NewBase(db)}
}

func (r *repositoryImpl) Create(ctx context.Context, request *models.Request) error {
	return r.DB(ctx).Create(request).Error
}

func (r *repositoryImpl) List(ctx context.Context, params ListParams) ([]models.Request, *pagination.Cursor, error) {
	limit := pagination.LimitWithBuffer(params.Limit)
	normalized := pagination.NormalizeLimit(params.Limit)
	query := r.DB(ctx).Model(&models.Request{}).Where("user_id = ?", params.UserID)
	if params.Cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", params.Cursor.CreatedAt, params.Cursor.ID)
	}

	var requests []models.Request
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&requests).Error; err != nil {
		return nil, nil, err
	}

	if len(requests) > normalized {
		requests = requests[:normalized]
		last := requests[normalized-1]
		return wellFormed(requests), &pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}, nil
	}
	return wellFormed(requests), nil, nil
}

// wellFormed drops stored rows whose enum fields no longer parse. Such rows
// are never surfaced with an undefined status, unit, or urgency.
func wellFormed(requests []models.Request) []models.Request {
	kept := requests[:0]
	for _, request := range requests {
		if request.Status.IsValid() && request.Unit.IsValid() && request.Urgency.IsValid() {
			kept = append(kept, request)
		}
	}
	return kept
}

func (r *repositoryImpl) ListAll(ctx context.Context, userID uuid.UUID) ([]models.Request, error) {
	var requests []models.Request
	err := r.DB(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return wellFormed(requests), nil
}

func (r *repositoryImpl) Find(ctx context.Context, userID, id uuid.UUID) (*models.Request, error) {
	var request models.Request
	err := r.DB(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, request *models.Request) error {
	return r.DB(ctx).
		Model(&models.Request{}).
		Where("id = ? AND user_id = ?", request.ID, request.UserID).
		UpdateColumn("status", request.Status).Error
}

func (r *repositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	result := r.DB(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Request{})
	return result.RowsAffected, result.Error
}
