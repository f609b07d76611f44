package db

import (
	"context"
	"fmt"

	"github.com/greenbites/greenbites-backend/pkg/config"
	"github.com/greenbites/greenbites-backend/pkg/db/models"
	"github.com/greenbites/greenbites-backend/pkg/logger"
)

// MaybeAutoMigrate syncs the schema when the auto-migrate flag is on.
// The stored layout carries no version markers, so this is the only schema
// management the service does.
func MaybeAutoMigrate(ctx context.Context, cfg config.DBConfig, logg *logger.Logger, client *Client) error {
	if !cfg.AutoMigrate {
		return nil
	}

	err := client.DB().WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.Donation{},
		&models.Request{},
		&models.Notification{},
		&models.Message{},
		&models.SeedMarker{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "schema auto-migration complete")
	}
	return nil
}
