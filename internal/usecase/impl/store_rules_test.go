package impl

import (
	"regexp"
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-1700000000123-[A-Z0-9]{4}$`)
	now := time.UnixMilli(1700000000123)

	for range 50 {
		assert.Regexp(t, pattern, newOrderNumber(now))
	}
}

func TestPricingRulesFromConfig(t *testing.T) {
	t.Run("defaults without store section", func(t *testing.T) {
		rules, err := pricingRulesFromConfig(&config.Config{})

		require.NoError(t, err)
		assert.Equal(t, "0.18", rules.TaxRate.String())
		assert.Equal(t, "199", rules.StandardShipping.String())
	})

	t.Run("overrides configured values", func(t *testing.T) {
		cfg := storeTestConfig(0)
		cfg.Store.TaxRate = "0.2"
		cfg.Store.ExpressShipping = ""

		rules, err := pricingRulesFromConfig(cfg)

		require.NoError(t, err)
		assert.Equal(t, "0.2", rules.TaxRate.String())
		assert.Equal(t, "499", rules.ExpressShipping.String())
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		for _, raw := range []string{"abc", "-1"} {
			cfg := storeTestConfig(0)
			cfg.Store.StandardShipping = raw

			_, err := pricingRulesFromConfig(cfg)

			assert.Error(t, err, raw)
		}
	})
}

func TestStoreLocation(t *testing.T) {
	loc, err := storeLocation(&config.Config{Store: &config.StoreConfig{TimeZone: "Asia/Kolkata"}})
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())

	loc, err = storeLocation(nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = storeLocation(&config.Config{Store: &config.StoreConfig{TimeZone: "Mars/Olympus"}})
	assert.Error(t, err)
}

func TestOrderNumberRetries(t *testing.T) {
	assert.Equal(t, defaultOrderNumberRetries, orderNumberRetries(nil))
	assert.Equal(t, 3, orderNumberRetries(storeTestConfig(0)))
}
