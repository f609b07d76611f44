package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/internal/impact"
	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/enums"
	pkgerrors "github.com/greenbites/greenbites-backend/pkg/errors"
	"github.com/greenbites/greenbites-backend/pkg/pagination"
)

// Service defines the behavior needed by the requests controller.
type Service interface {
	List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*ListResult, error)
	Create(ctx context.Context, userID uuid.UUID, seekerName string, req CreateRequestRequest) (*models.Request, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, req UpdateStatusRequest) (*models.Request, error)
	Delete(ctx context.Context, userID, id uuid.UUID, confirmed bool) (bool, error)
	Stats(ctx context.Context, userID uuid.UUID) (*impact.SeekerStats, error)
}

type seeder interface {
	EnsureRequests(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo   Repository
	seeder seeder
	now    func() time.Time
}

// ServiceParams bundles the dependencies required to build a requests service.
type ServiceParams struct {
	Repo   Repository
	Seeder seeder
}

// NewService constructs a requests service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("requests repository is required")
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

// List returns one page of the owner's requests, most recent first, plus the
// impact snapshot over the full collection. First access seeds the starter
// history.
func (s *service) List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*ListResult, error) {
	if err := s.seeder.EnsureRequests(ctx, userID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed requests")
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
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list requests")
	}

	all, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load requests for stats")
	}

	result := &ListResult{
		Items: items,
		Stats: impact.ComputeSeekerStats(all),
	}
	if next != nil {
		result.NextCursor = pagination.EncodeCursor(*next)
	}
	return result, nil
}

// Create validates and persists a new request. Validation failures return a
// field-keyed error map and leave the store untouched.
func (s *service) Create(ctx context.Context, userID uuid.UUID, seekerName string, req CreateRequestRequest) (*models.Request, error) {
	fieldErrors := map[string]string{}

	foodType := strings.TrimSpace(req.FoodType)
	if foodType == "" {
		fieldErrors["foodType"] = "food type is required"
	}

	quantity, err := parseQuantity(req.Quantity)
	if err != nil {
		fieldErrors["quantity"] = err.Error()
	}

	unit, err := enums.ParseQuantityUnit(strings.TrimSpace(req.Unit))
	if err != nil {
		fieldErrors["unit"] = "unit must be one of kg, g, lbs"
	}

	urgency, err := enums.ParseUrgency(strings.TrimSpace(req.Urgency))
	if err != nil {
		fieldErrors["urgency"] = "urgency must be one of low, medium, high"
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		fieldErrors["location"] = "location is required"
	}

	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		fieldErrors["purpose"] = "purpose is required"
	}

	if len(fieldErrors) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid request").WithDetails(fieldErrors)
	}

	request := &models.Request{
		ID:         uuid.New(),
		UserID:     userID,
		FoodType:   foodType,
		Quantity:   quantity,
		Unit:       unit,
		Urgency:    urgency,
		Location:   location,
		Purpose:    purpose,
		Status:     enums.RequestStatusPending,
		SeekerName: seekerName,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create request")
	}
	return request, nil
}

// UpdateStatus advances a request one step along pending -> approved ->
// completed. Any other move is a state conflict.
func (s *service) UpdateStatus(ctx context.Context, userID, id uuid.UUID, req UpdateStatusRequest) (*models.Request, error) {
	next, err := enums.ParseRequestStatus(strings.TrimSpace(req.Status))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid request status").
			WithDetails(map[string]string{"status": err.Error()})
	}

	request, err := s.repo.Find(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "request not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load request")
	}

	if !request.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move request from %s to %s", request.Status, next))
	}

	request.Status = next
	if err := s.repo.UpdateStatus(ctx, request); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update request status")
	}
	return request, nil
}

// Delete removes a request once the caller has confirmed. An unconfirmed
// call is the declined-prompt no-op and reports deleted=false.
func (s *service) Delete(ctx context.Context, userID, id uuid.UUID, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}

	rows, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete request")
	}
	if rows == 0 {
		return false, pkgerrors.New(pkgerrors.CodeNotFound, "request not found")
	}
	return true, nil
}

// Stats returns the impact snapshot over the full collection. First access
// seeds the starter history so a fresh account still reports the demo impact.
func (s *service) Stats(ctx context.Context, userID uuid.UUID) (*impact.SeekerStats, error) {
	if err := s.seeder.EnsureRequests(ctx, userID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed requests")
	}
	all, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load requests for stats")
	}
	stats := impact.ComputeSeekerStats(all)
	return &stats, nil
}

func parseQuantity(value string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("quantity is required")
	}
	quantity, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("quantity must be a number")
	}
	if !quantity.IsPositive() {
		return decimal.Zero, fmt.Errorf("quantity must be greater than zero")
	}
	return quantity, nil
}
