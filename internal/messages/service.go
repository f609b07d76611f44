package messages

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/enums"
	pkgerrors "github.com/greenbites/greenbites-backend/pkg/errors"
	"github.com/greenbites/greenbites-backend/pkg/pagination"
)

// ListResult is one page of the inbox plus the unread badge count.
type ListResult struct {
	Items       []models.Message `json:"items"`
	NextCursor  string           `json:"nextCursor,omitempty"`
	UnreadCount int64            `json:"unreadCount"`
}

// Service defines the behavior needed by the messages controller.
type Service interface {
	List(ctx context.Context, userID uuid.UUID, role enums.UserRole, params pagination.Params) (*ListResult, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID, confirmed bool) (bool, error)
}

type seeder interface {
	EnsureMessages(ctx context.Context, userID uuid.UUID, role enums.UserRole) error
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

// NewService constructs a messages service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("messages repository is required")
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

// List returns one page of the owner's inbox, most recent first. First
// access seeds the role-specific starter messages.
func (s *service) List(ctx context.Context, userID uuid.UUID, role enums.UserRole, params pagination.Params) (*ListResult, error) {
	if err := s.seeder.EnsureMessages(ctx, userID, role); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed messages")
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	items, next, err := s.repo.List(ctx, ListParams{
		UserID: userID,
		Limit:  params.Limit,
		Cursor: cursor,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list messages")
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

// MarkRead sets the read timestamp when a message is opened. Re-opening an
// already-read message is a no-op.
func (s *service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	mark, err := s.repo.MarkRead(ctx, userID, id, s.now().UTC())
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mark message read")
	}
	if !mark.Found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "message not found")
	}
	return nil
}

// Delete removes a single message once the caller has confirmed. An
// unconfirmed call is the declined-prompt no-op and reports deleted=false.
func (s *service) Delete(ctx context.Context, userID, id uuid.UUID, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}

	rows, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete message")
	}
	if rows == 0 {
		return false, pkgerrors.New(pkgerrors.CodeNotFound, "message not found")
	}
	return true, nil
}
