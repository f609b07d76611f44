package messages

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/pkg/db/models"
)

func setupMessagesTestDB(t *testing.T) Repository {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Message{}))
	return NewRepository(conn)
}

func newMessage(userID uuid.UUID, createdAt time.Time) *models.Message {
	return &models.Message{
		ID:        uuid.New(),
		UserID:    userID,
		Sender:    "GreenBites Team",
		Subject:   "Welcome",
		Preview:   "Thanks for joining",
		Body:      "Thanks for joining the platform.",
		CreatedAt: createdAt,
	}
}

func TestMessagesListPagination(t *testing.T) {
	repo := setupMessagesTestDB(t)
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, newMessage(userID, base.Add(time.Duration(i)*time.Second))))
	}
	require.NoError(t, repo.Create(ctx, newMessage(uuid.New(), base)))

	page, cursor, err := repo.List(ctx, ListParams{UserID: userID, Limit: 5})
	require.NoError(t, err)
	require.Len(t, page, 5)
	require.NotNil(t, cursor)
	assert.True(t, page[0].CreatedAt.After(page[4].CreatedAt), "pages are newest-first")

	rest, cursor, err := repo.List(ctx, ListParams{UserID: userID, Limit: 5, Cursor: cursor})
	require.NoError(t, err)
	require.Len(t, rest, 2)
	assert.Nil(t, cursor)

	seen := map[uuid.UUID]bool{}
	for _, m := range append(page, rest...) {
		assert.Equal(t, userID, m.UserID)
		assert.False(t, seen[m.ID], "message %s appeared twice", m.ID)
		seen[m.ID] = true
	}
}

func TestMessagesMarkReadIsOwnerScoped(t *testing.T) {
	repo := setupMessagesTestDB(t)
	ctx := context.Background()
	userID := uuid.New()
	msg := newMessage(userID, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, msg))

	readAt := time.Date(2025, 11, 2, 8, 30, 0, 0, time.UTC)
	mark, err := repo.MarkRead(ctx, userID, msg.ID, readAt)
	require.NoError(t, err)
	assert.True(t, mark.Found)
	assert.True(t, mark.Updated)

	mark, err = repo.MarkRead(ctx, userID, msg.ID, readAt.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, mark.Found)
	assert.False(t, mark.Updated, "read timestamp must not move")

	mark, err = repo.MarkRead(ctx, uuid.New(), msg.ID, readAt)
	require.NoError(t, err)
	assert.False(t, mark.Found)

	unread, err := repo.CountUnread(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestMessagesDeleteScopedToOwner(t *testing.T) {
	repo := setupMessagesTestDB(t)
	ctx := context.Background()
	owner := uuid.New()
	msg := newMessage(owner, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, msg))

	rows, err := repo.Delete(ctx, uuid.New(), msg.ID)
	require.NoError(t, err)
	assert.Zero(t, rows, "foreign user must not delete the message")

	rows, err = repo.Delete(ctx, owner, msg.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, rows)

	rows, err = repo.Delete(ctx, owner, msg.ID)
	require.NoError(t, err)
	assert.Zero(t, rows)
}
