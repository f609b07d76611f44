package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/enums"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepository(conn)
}

func TestCreateAndFindByEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "donor@example.com",
		PasswordHash: "hash",
		DisplayName:  "Food Donor",
		Role:         enums.UserRoleDonor,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	found, err := repo.FindByEmail(ctx, "donor@example.com")
	if err != nil {
		t.Fatalf("find by email: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("id mismatch: %s vs %s", found.ID, user.ID)
	}

	if _, err := repo.FindByEmail(ctx, "missing@example.com"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestUpdateLastLogin(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "seeker@example.com",
		PasswordHash: "hash",
		DisplayName:  "Food Seeker",
		Role:         enums.UserRoleSeeker,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	at := time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)
	if err := repo.UpdateLastLogin(ctx, user.ID, at); err != nil {
		t.Fatalf("update last login: %v", err)
	}

	found, err := repo.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("find by id: %v", err)
	}
	if found.LastLoginAt == nil || !found.LastLoginAt.Equal(at) {
		t.Fatalf("last login not recorded, got %v", found.LastLoginAt)
	}
}
