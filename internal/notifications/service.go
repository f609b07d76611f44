package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/enums"
	pkgerrors "github.com/greenbites/greenbites-backend/pkg/errors"
	"github.com/greenbites/greenbites-backend/pkg/pagination"
)

// ListResult is one page of the feed plus the unread badge count.
type ListResult struct {
	Items       []models.Notification `json:"items"`
	NextCursor  string                `json:"nextCursor,omitempty"`
	UnreadCount int64                 `json:"unreadCount"`
}

// Service defines the behavior needed by the notifications controller.
type Service interface {
	List(ctx context.Context, userID uuid.UUID, role enums.UserRole, params pagination.Params, unreadOnly bool) (*ListResult, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID, confirmed bool) (int64, error)
}

type seeder interface {
	EnsureNotifications(ctx context.Context, userID uuid.UUID, role enums.UserRole) error
}

type service struct {
	repo   Repository
	seeder seeder
	now    func() time.Time
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Repo   Repository
	Seeder seeder
}

// NewService constructs a notifications service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("notifications repository is required")
	}
	if params.Seeder == nil {
		return nil, fmt.Errorf("seeder is required")
	}
	return &service{
		repo:   params.Repo,
		seeder: params.Seeder,
		now:    time.Now,
	}, nil
}

// List returns one page of the owner's feed, most recent first. First access
// seeds the role-specific starter notifications.
func (s *service) List(ctx context.Context, userID uuid.UUID, role enums.UserRole, params pagination.Params, unreadOnly bool) (*ListResult, error) {
	if err := s.seeder.EnsureNotifications(ctx, userID, role); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed notifications")
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	items, next, err := s.repo.List(ctx, ListParams{
		UserID:     userID,
		Limit:      params.Limit,
		Cursor:     cursor,
		UnreadOnly: unreadOnly,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list notifications")
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "count unread")
	}

	result := &ListResult{
		Items:       items,
		UnreadCount: unread,
	}
	if next != nil {
		result.NextCursor = pagination.EncodeCursor(*next)
	}
	return result, nil
}

// MarkRead sets the read timestamp. Marking an already-read notification is
// a no-op; the flag never moves back.
func (s *service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	mark, err := s.repo.MarkRead(ctx, userID, id, s.now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark notification read")
	}
	if !mark.Found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
	}
	return nil
}

// Clear empties the feed once the caller has confirmed. An unconfirmed call
// is the declined-prompt no-op. Clearing does not trigger re-seeding.
func (s *service) Clear(ctx context.Context, userID uuid.UUID, confirmed bool) (int64, error) {
	if !confirmed {
		return 0, nil
	}
	rows, err := s.repo.Clear(ctx, userID)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear notifications")
	}
	return rows, nil
}
