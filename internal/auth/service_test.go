package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/pkg/config"
	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/enums"
	pkgerrors "github.com/greenbites/greenbites-backend/pkg/errors"
	"github.com/greenbites/greenbites-backend/pkg/security"
)

type fakeUserRepo struct {
	users       map[string]*models.User
	lastLoginID uuid.UUID
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, _ time.Time) error {
	f.lastLoginID = id
	return nil
}

type fakeSessions struct {
	registered []string
	revoked    []string
}

func (f *fakeSessions) Register(_ context.Context, accessID string) error {
	f.registered = append(f.registered, accessID)
	return nil
}

func (f *fakeSessions) Revoke(_ context.Context, accessID string) error {
	f.revoked = append(f.revoked, accessID)
	return nil
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func newTestService(t *testing.T, repo *fakeUserRepo, sessions *fakeSessions, delay time.Duration) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig: config.JWTConfig{
			Secret:            "test-secret",
			Issuer:            "greenbites-test",
			ExpirationMinutes: 60,
		},
		LoginConfig: config.LoginConfig{Delay: delay},
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func seedDonor(t *testing.T, repo *fakeUserRepo, password string) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordConfig())
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		ID:           uuid.New(),
		Email:        "donor@example.com",
		PasswordHash: hash,
		DisplayName:  "Food Donor",
		Role:         enums.UserRoleDonor,
	}
	repo.users = map[string]*models.User{user.Email: user}
	return user
}

func TestLoginSuccess(t *testing.T) {
	repo := &fakeUserRepo{}
	sessions := &fakeSessions{}
	user := seedDonor(t, repo, "donor123")
	svc := newTestService(t, repo, sessions, 0)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Donor@Example.com ",
		Password: "donor123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected an access token")
	}
	if resp.User == nil || resp.User.ID != user.ID {
		t.Fatalf("unexpected user payload %+v", resp.User)
	}
	if resp.User.Role != enums.UserRoleDonor {
		t.Fatalf("unexpected role %s", resp.User.Role)
	}
	if len(sessions.registered) != 1 {
		t.Fatalf("expected 1 registered session, got %d", len(sessions.registered))
	}
	if repo.lastLoginID != user.ID {
		t.Fatal("expected last login to be recorded")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	sessions := &fakeSessions{}
	seedDonor(t, repo, "donor123")
	svc := newTestService(t, repo, sessions, 0)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "donor@example.com",
		Password: "wrong",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
	if len(sessions.registered) != 0 {
		t.Fatal("failed login must not register a session")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{}}
	svc := newTestService(t, repo, &fakeSessions{}, 0)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED, got %v", err)
	}
}

func TestLoginHonorsContextCancellation(t *testing.T) {
	repo := &fakeUserRepo{}
	seedDonor(t, repo, "donor123")
	svc := newTestService(t, repo, &fakeSessions{}, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := svc.Login(ctx, LoginRequest{Email: "donor@example.com", Password: "donor123"})
	if err == nil {
		t.Fatal("expected canceled login to fail")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("canceled login waited %s", elapsed)
	}
}

func TestLogout(t *testing.T) {
	sessions := &fakeSessions{}
	svc := newTestService(t, &fakeUserRepo{}, sessions, 0)

	if err := svc.Logout(context.Background(), "access-id"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != "access-id" {
		t.Fatalf("expected session revocation, got %v", sessions.revoked)
	}

	err := svc.Logout(context.Background(), " ")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected UNAUTHORIZED for blank access id, got %v", err)
	}
}
