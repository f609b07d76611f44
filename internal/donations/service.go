package donations

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

const expiryDateLayout = "2006-01-02"

// Service defines the behavior needed by the donations controller.
type Service interface {
	List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*ListResult, error)
	Create(ctx context.Context, userID uuid.UUID, donorName string, req CreateDonationRequest) (*models.Donation, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, req UpdateStatusRequest) (*models.Donation, error)
	Delete(ctx context.Context, userID, id uuid.UUID, confirmed bool) (bool, error)
	Stats(ctx context.Context, userID uuid.UUID) (*impact.DonorStats, error)
}

type seeder interface {
	EnsureDonations(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo   Repository
	seeder seeder
	now    func() time.Time
}

// ServiceParams bundles the dependencies required to build a donations service.
type ServiceParams struct {
	Repo   Repository
	Seeder seeder
}

// NewService constructs a donations service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("donations repository is required")
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

// List returns one page of the owner's donations, most recent first, plus
// the impact snapshot over the full collection. First access seeds the
// starter records.
func (s *service) List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*ListResult, error) {
	if err := s.seeder.EnsureDonations(ctx, userID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed donations")
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
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list donations")
	}

	all, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load donations for stats")
	}

	result := &ListResult{
		Items: items,
		Stats: impact.ComputeDonorStats(all),
	}
	if next != nil {
		result.NextCursor = pagination.EncodeCursor(*next)
	}
	return result, nil
}

// Create validates and persists a new donation. Validation failures return a
// field-keyed error map and leave the store untouched.
func (s *service) Create(ctx context.Context, userID uuid.UUID, donorName string, req CreateDonationRequest) (*models.Donation, error) {
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

	expiry, err := s.parseExpiry(req.ExpiryDate)
	if err != nil {
		fieldErrors["expiryDate"] = err.Error()
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		fieldErrors["location"] = "location is required"
	}

	if len(fieldErrors) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid donation").WithDetails(fieldErrors)
	}

	donation := &models.Donation{
		ID:          uuid.New(),
		UserID:      userID,
		FoodType:    foodType,
		Quantity:    quantity,
		Unit:        unit,
		ExpiryDate:  expiry,
		Location:    location,
		Description: normalizeDescription(req.Description),
		Status:      enums.DonationStatusAvailable,
		DonorName:   donorName,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, donation); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create donation")
	}
	return donation, nil
}

// UpdateStatus advances a donation one step along available -> claimed ->
// completed. Any other move is a state conflict.
func (s *service) UpdateStatus(ctx context.Context, userID, id uuid.UUID, req UpdateStatusRequest) (*models.Donation, error) {
	next, err := enums.ParseDonationStatus(strings.TrimSpace(req.Status))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid donation status").
			WithDetails(map[string]string{"status": err.Error()})
	}

	donation, err := s.repo.Find(ctx, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "donation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load donation")
	}

	if !donation.Status.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move donation from %s to %s", donation.Status, next))
	}

	donation.Status = next
	if err := s.repo.UpdateStatus(ctx, donation); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update donation status")
	}
	return donation, nil
}

// Delete removes a donation once the caller has confirmed. An unconfirmed
// call is the declined-prompt no-op and reports deleted=false.
func (s *service) Delete(ctx context.Context, userID, id uuid.UUID, confirmed bool) (bool, error) {
	if !confirmed {
		return false, nil
	}

	rows, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete donation")
	}
	if rows == 0 {
		return false, pkgerrors.New(pkgerrors.CodeNotFound, "donation not found")
	}
	return true, nil
}

// Stats returns the impact snapshot over the full collection. First access
// seeds the starter records so a fresh account still reports the demo impact.
func (s *service) Stats(ctx context.Context, userID uuid.UUID) (*impact.DonorStats, error) {
	if err := s.seeder.EnsureDonations(ctx, userID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "seed donations")
	}
	all, err := s.repo.ListAll(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load donations for stats")
	}
	stats := impact.ComputeDonorStats(all)
	return &stats, nil
}

func (s *service) parseExpiry(value string) (time.Time, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return time.Time{}, fmt.Errorf("expiry date is required")
	}
	expiry, err := time.Parse(expiryDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("expiry date must be formatted YYYY-MM-DD")
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if expiry.Before(today) {
		return time.Time{}, fmt.Errorf("expiry date must not be in the past")
	}
	return expiry, nil
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

func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
