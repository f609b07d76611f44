package messages

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/internal/repo"
	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/pagination"
)

// Repository exposes persistence helpers for inbox messages.
type Repository interface {
	Create(ctx context.Context, message *models.Message) error
	List(ctx context.Context, params ListParams) ([]models.Message, *pagination.Cursor, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, messageID uuid.UUID, now time.Time) (MarkResult, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (int64, error)
}

// ListParams carries the owner scope and cursor inputs for a page query.
type ListParams struct {
	UserID uuid.UUID
	Limit  int
	Cursor *pagination.Cursor
}

// MarkResult reports what a mark-read attempt found and changed.
type MarkResult struct {
	Found   bool
	Updated bool
}

type repositoryImpl struct {
	repo.Base
}

// NewRepository returns a messages repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{Base: repo.NewBase(db)}
}

func (r *repositoryImpl) Create(ctx context.Context, message *models.Message) error {
	return r.DB(ctx).Create(message).Error
}

func (r *repositoryImpl) List(ctx context.Context, params ListParams) ([]models.Message, *pagination.Cursor, error) {
	limit := pagination.LimitWithBuffer(params.Limit)
	normalized := pagination.NormalizeLimit(params.Limit)
	query := r.DB(ctx).Model(&models.Message{}).Where("user_id = ?", params.UserID)
	if params.Cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", params.Cursor.CreatedAt, params.Cursor.ID)
	}

	var messages []models.Message
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Find(&messages).Error; err != nil {
		return nil, nil, err
	}

	if len(messages) > normalized {
		messages = messages[:normalized]
		last := messages[normalized-1]
		return messages, &pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}, nil
	}
	return messages, nil, nil
}

func (r *repositoryImpl) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.DB(ctx).
		Model(&models.Message{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

func (r *repositoryImpl) MarkRead(ctx context.Context, userID, messageID uuid.UUID, now time.Time) (MarkResult, error) {
	result := r.DB(ctx).
		Model(&models.Message{}).
		Where("id = ? AND user_id = ? AND read_at IS NULL", messageID, userID).
		UpdateColumn("read_at", now)
	if result.Error != nil {
		return MarkResult{}, result.Error
	}
	if result.RowsAffected > 0 {
		return MarkResult{Found: true, Updated: true}, nil
	}

	var count int64
	err := r.DB(ctx).
		Model(&models.Message{}).
		Where("id = ? AND user_id = ?", messageID, userID).
		Count(&count).Error
	if err != nil {
		return MarkResult{}, err
	}
	return MarkResult{Found: count > 0}, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	result := r.DB(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Message{})
	return result.RowsAffected, result.Error
}
