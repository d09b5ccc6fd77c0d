package impl

import (
	"io"
	"log/slog"

	"storefront/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func storeTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        10,
			MaxActiveSessions: maxActiveSessions,
		},
		Store: &config.StoreConfig{
			TaxRate:               "0.18",
			FreeShippingThreshold: "50000",
			StandardShipping:      "199",
			ExpressShipping:       "499",
			TimeZone:              "UTC",
			OrderNumberRetries:    3,
		},
	}
}
