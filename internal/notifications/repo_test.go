package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/enums"
)

func newRepoDB(t *testing.T) Repository {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&models.Notification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepository(conn)
}

func TestListPaginatesWithoutLosingRows(t *testing.T) {
	repo := newRepoDB(t)
	ctx := context.Background()
	owner := uuid.New()
	base := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	created := make(map[uuid.UUID]bool, 7)
	for i := 0; i < 7; i++ {
		notification := &models.Notification{
			ID:        uuid.New(),
			UserID:    owner,
			Type:      enums.NotificationTypeInfo,
			Title:     "Impact Update",
			Message:   "Your donations have helped feed 120 people this month!",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := repo.Create(ctx, notification); err != nil {
			t.Fatalf("create: %v", err)
		}
		created[notification.ID] = true
	}

	first, cursor, err := repo.List(ctx, ListParams{UserID: owner, Limit: 5})
	if err != nil {
		t.Fatalf("first page: %v", err)
	}
	if len(first) != 5 || cursor == nil {
		t.Fatalf("expected full first page with cursor, got %d items", len(first))
	}

	second, cursor2, err := repo.List(ctx, ListParams{UserID: owner, Limit: 5, Cursor: cursor})
	if err != nil {
		t.Fatalf("second page: %v", err)
	}
	if len(second) != 2 || cursor2 != nil {
		t.Fatalf("expected trailing page of 2, got %d items (cursor %v)", len(second), cursor2)
	}

	for _, notification := range append(first, second...) {
		if !created[notification.ID] {
			t.Fatalf("notification %s appeared twice across pages", notification.ID)
		}
		delete(created, notification.ID)
	}
	if len(created) != 0 {
		t.Fatalf("%d notifications never surfaced across the two pages", len(created))
	}
}

func TestMarkReadOnlyMovesForward(t *testing.T) {
	repo := newRepoDB(t)
	ctx := context.Background()
	userID := uuid.New()

	notification := &models.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      enums.NotificationTypeInfo,
		Title:     "Impact Update",
		Message:   "Your donations have helped feed 120 people this month!",
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.Create(ctx, notification); err != nil {
		t.Fatalf("create: %v", err)
	}

	first := time.Date(2025, 10, 15, 9, 0, 0, 0, time.UTC)
	mark, err := repo.MarkRead(ctx, userID, notification.ID, first)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !mark.Found || !mark.Updated {
		t.Fatalf("expected found+updated, got %+v", mark)
	}

	later := first.Add(time.Hour)
	mark, err = repo.MarkRead(ctx, userID, notification.ID, later)
	if err != nil {
		t.Fatalf("second mark read: %v", err)
	}
	if !mark.Found || mark.Updated {
		t.Fatalf("expected found without update, got %+v", mark)
	}

	mark, err = repo.MarkRead(ctx, uuid.New(), notification.ID, later)
	if err != nil {
		t.Fatalf("foreign mark read: %v", err)
	}
	if mark.Found {
		t.Fatal("foreign user must not see the notification")
	}
}

func TestClearScopedToOwner(t *testing.T) {
	repo := newRepoDB(t)
	ctx := context.Background()
	owner := uuid.New()
	other := uuid.New()

	for _, userID := range []uuid.UUID{owner, owner, other} {
		err := repo.Create(ctx, &models.Notification{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      enums.NotificationTypeInfo,
			Title:     "t",
			Message:   "m",
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	removed, err := repo.Clear(ctx, owner)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed %d rows, want 2", removed)
	}

	count, err := repo.CountUnread(ctx, other)
	if err != nil {
		t.Fatalf("count unread: %v", err)
	}
	if count != 1 {
		t.Fatalf("other user's feed was touched, count=%d", count)
	}
}
