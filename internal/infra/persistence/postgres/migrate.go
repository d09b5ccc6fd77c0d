package postgres

import (
	"context"
	"log/slog"

	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every storefront table together with its unique indexes
// (users.email, categories.name, cart_items(cart_id, product_id), orders.order_number).
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	models := model.All()
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate storefront schema")
	}

	logger.InfoContext(ctx, "Schema migrated", slog.Int("tables", len(models)))

	return nil
}
