package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gorm.io/gorm"

	"github.com/greenbites/greenbites-backend/pkg/config"
	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/enums"
	"github.com/greenbites/greenbites-backend/pkg/security"
)

type bootstrapRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type demoAccount struct {
	email    string
	password string
	name     string
	role     enums.UserRole
}

// EnsureDemoAccounts creates the demo donor and seeker accounts if they do
// not already exist. Existing accounts are left untouched, password changes
// in config do not rewrite stored hashes. One account failing does not stop
// the other; failures are combined into the returned error.
func EnsureDemoAccounts(ctx context.Context, repo bootstrapRepository, demo config.DemoConfig, pwCfg config.PasswordConfig) error {
	if !demo.Bootstrap {
		return nil
	}

	accounts := []demoAccount{
		{email: demo.DonorEmail, password: demo.DonorPassword, name: demo.DonorName, role: enums.UserRoleDonor},
		{email: demo.SeekerEmail, password: demo.SeekerPassword, name: demo.SeekerName, role: enums.UserRoleSeeker},
	}

	var errs error
	for _, account := range accounts {
		if err := ensureAccount(ctx, repo, account, pwCfg); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func ensureAccount(ctx context.Context, repo bootstrapRepository, account demoAccount, pwCfg config.PasswordConfig) error {
	email := strings.ToLower(strings.TrimSpace(account.email))
	if email == "" {
		return fmt.Errorf("demo account email is required")
	}

	_, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup demo account %s: %w", email, err)
	}

	hash, err := security.HashPassword(account.password, pwCfg)
	if err != nil {
		return fmt.Errorf("hash demo password for %s: %w", email, err)
	}
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		DisplayName:  account.name,
		Role:         account.role,
	}
	if err := repo.Create(ctx, user); err != nil {
		return fmt.Errorf("create demo account %s: %w", email, err)
	}
	return nil
}
