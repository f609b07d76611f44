package donations

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/enums"
	pkgerrors "github.com/greenbites/greenbites-backend/pkg/errors"
	"github.com/greenbites/greenbites-backend/pkg/pagination"
	"github.com/shopspring/decimal"
)

type fakeRepo struct {
	donations []models.Donation
	created   []models.Donation
	deleted   []uuid.UUID
}

func (f *fakeRepo) Create(_ context.Context, donation *models.Donation) error {
	f.created = append(f.created, *donation)
	f.donations = append([]models.Donation{*donation}, f.donations...)
	return nil
}

func (f *fakeRepo) List(_ context.Context, params ListParams) ([]models.Donation, *pagination.Cursor, error) {
	items := f.ownedBy(params.UserID)
	limit := pagination.NormalizeLimit(params.Limit)
	if len(items) > limit {
		next := items[limit]
		return items[:limit], &pagination.Cursor{CreatedAt: next.CreatedAt, ID: next.ID}, nil
	}
	return items, nil, nil
}

func (f *fakeRepo) ListAll(_ context.Context, userID uuid.UUID) ([]models.Donation, error) {
	return f.ownedBy(userID), nil
}

func (f *fakeRepo) Find(_ context.Context, userID, id uuid.UUID) (*models.Donation, error) {
	for i := range f.donations {
		if f.donations[i].ID == id && f.donations[i].UserID == userID {
			copied := f.donations[i]
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) UpdateStatus(_ context.Context, donation *models.Donation) error {
	for i := range f.donations {
		if f.donations[i].ID == donation.ID {
			f.donations[i].Status = donation.Status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) Delete(_ context.Context, userID, id uuid.UUID) (int64, error) {
	for i := range f.donations {
		if f.donations[i].ID == id && f.donations[i].UserID == userID {
			f.donations = append(f.donations[:i], f.donations[i+1:]...)
			f.deleted = append(f.deleted, id)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeRepo) ownedBy(userID uuid.UUID) []models.Donation {
	var items []models.Donation
	for _, d := range f.donations {
		if d.UserID == userID {
			items = append(items, d)
		}
	}
	return items
}

type fakeSeeder struct {
	calls int
}

func (f *fakeSeeder) EnsureDonations(_ context.Context, _ uuid.UUID) error {
	f.calls++
	return nil
}

func newTestService(t *testing.T, repo *fakeRepo, seeder *fakeSeeder) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo, Seeder: seeder})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func validCreateRequest() CreateDonationRequest {
	return CreateDonationRequest{
		FoodType:   "Fresh Vegetables",
		Quantity:   "15",
		Unit:       "kg",
		ExpiryDate: time.Now().UTC().Add(72 * time.Hour).Format(expiryDateLayout),
		Location:   "Downtown Farmers Market",
	}
}

func TestCreateDonation(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo, &fakeSeeder{})
	userID := uuid.New()

	donation, err := svc.Create(context.Background(), userID, "Food Donor", validCreateRequest())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if donation.Status != enums.DonationStatusAvailable {
		t.Fatalf("new donation status = %s, want available", donation.Status)
	}
	if donation.DonorName != "Food Donor" {
		t.Fatalf("donor name not stamped, got %q", donation.DonorName)
	}
	if donation.UserID != userID {
		t.Fatal("donation not scoped to owner")
	}
	if !donation.Quantity.Equal(decimal.NewFromInt(15)) {
		t.Fatalf("quantity = %s, want 15", donation.Quantity)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted donation, got %d", len(repo.created))
	}
}

func TestCreateDonationValidationMap(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo, &fakeSeeder{})

	_, err := svc.Create(context.Background(), uuid.New(), "Food Donor", CreateDonationRequest{
		FoodType:   "  ",
		Quantity:   "-3",
		Unit:       "boxes",
		ExpiryDate: "not-a-date",
		Location:   "",
	})

	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field map details, got %T", typed.Details())
	}
	for _, field := range []string{"foodType", "quantity", "unit", "expiryDate", "location"} {
		if details[field] == "" {
			t.Errorf("missing error for field %q", field)
		}
	}
	if len(repo.created) != 0 {
		t.Fatal("failed validation must not persist anything")
	}
}

func TestCreateDonationRejectsPastExpiry(t *testing.T) {
	svc := newTestService(t, &fakeRepo{}, &fakeSeeder{})
	req := validCreateRequest()
	req.ExpiryDate = time.Now().UTC().Add(-48 * time.Hour).Format(expiryDateLayout)

	_, err := svc.Create(context.Background(), uuid.New(), "Food Donor", req)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestListSeedsOnFirstAccess(t *testing.T) {
	repo := &fakeRepo{}
	seeder := &fakeSeeder{}
	svc := newTestService(t, repo, seeder)

	if _, err := svc.List(context.Background(), uuid.New(), pagination.Params{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if seeder.calls != 1 {
		t.Fatalf("expected seeding on list, got %d calls", seeder.calls)
	}
}

func TestListComputesStatsOverFullCollection(t *testing.T) {
	userID := uuid.New()
	repo := &fakeRepo{}
	now := time.Now().UTC()
	for i := 0; i < 30; i++ {
		repo.donations = append(repo.donations, models.Donation{
			ID:        uuid.New(),
			UserID:    userID,
			Quantity:  decimal.NewFromInt(1),
			Unit:      enums.UnitKilogram,
			Status:    enums.DonationStatusAvailable,
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		})
	}
	svc := newTestService(t, repo, &fakeSeeder{})

	result, err := svc.List(context.Background(), userID, pagination.Params{Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(result.Items) != 10 {
		t.Fatalf("expected 10 items on page, got %d", len(result.Items))
	}
	if result.NextCursor == "" {
		t.Fatal("expected a next cursor")
	}
	if result.Stats.TotalDonations != 30 {
		t.Fatalf("stats cover %d donations, want 30", result.Stats.TotalDonations)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	userID := uuid.New()
	donation := models.Donation{
		ID:       uuid.New(),
		UserID:   userID,
		Quantity: decimal.NewFromInt(5),
		Unit:     enums.UnitKilogram,
		Status:   enums.DonationStatusAvailable,
	}
	repo := &fakeRepo{donations: []models.Donation{donation}}
	svc := newTestService(t, repo, &fakeSeeder{})
	ctx := context.Background()

	updated, err := svc.UpdateStatus(ctx, userID, donation.ID, UpdateStatusRequest{Status: "claimed"})
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if updated.Status != enums.DonationStatusClaimed {
		t.Fatalf("status = %s, want claimed", updated.Status)
	}

	// Skipping a step is a state conflict.
	_, err = svc.UpdateStatus(ctx, userID, donation.ID, UpdateStatusRequest{Status: "claimed"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT, got %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, userID, donation.ID, UpdateStatusRequest{Status: "completed"}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	// Completed is terminal.
	_, err = svc.UpdateStatus(ctx, userID, donation.ID, UpdateStatusRequest{Status: "available"})
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected STATE_CONFLICT for backward move, got %v", err)
	}
}

func TestUpdateStatusUnknownDonation(t *testing.T) {
	svc := newTestService(t, &fakeRepo{}, &fakeSeeder{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), UpdateStatusRequest{Status: "claimed"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	userID := uuid.New()
	donation := models.Donation{ID: uuid.New(), UserID: userID, Quantity: decimal.NewFromInt(5), Unit: enums.UnitKilogram}
	repo := &fakeRepo{donations: []models.Donation{donation}}
	svc := newTestService(t, repo, &fakeSeeder{})
	ctx := context.Background()

	deleted, err := svc.Delete(ctx, userID, donation.ID, false)
	if err != nil {
		t.Fatalf("unconfirmed delete errored: %v", err)
	}
	if deleted {
		t.Fatal("unconfirmed delete must be a no-op")
	}
	if len(repo.deleted) != 0 {
		t.Fatal("unconfirmed delete touched the store")
	}

	deleted, err = svc.Delete(ctx, userID, donation.ID, true)
	if err != nil {
		t.Fatalf("confirmed delete failed: %v", err)
	}
	if !deleted {
		t.Fatal("confirmed delete should report success")
	}

	_, err = svc.Delete(ctx, userID, donation.ID, true)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND for missing donation, got %v", err)
	}
}
