package impl

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/pricing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	orderNumberPrefix    = "ORD-"
	orderNumberAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberSuffixLen = 4

	defaultOrderNumberRetries = 5
)

// newOrderNumber formats ORD-<epoch millis>-<4 upper-case alphanumerics>.
func newOrderNumber(now time.Time) string {
	suffix := make([]byte, orderNumberSuffixLen)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]
	}

	return orderNumberPrefix + strconv.FormatInt(now.UnixMilli(), 10) + "-" + string(suffix)
}

// pricingRulesFromConfig overlays the configured rates on the default schedule.
// Blank values keep the default.
func pricingRulesFromConfig(cfg *config.Config) (pricing.Rules, error) {
	rules := pricing.DefaultRules()
	if cfg == nil || cfg.Store == nil {
		return rules, nil
	}

	fields := []struct {
		name   string
		raw    string
		target *decimal.Decimal
	}{
		{"store.taxRate", cfg.Store.TaxRate, &rules.TaxRate},
		{"store.freeShippingThreshold", cfg.Store.FreeShippingThreshold, &rules.FreeShippingThreshold},
		{"store.standardShipping", cfg.Store.StandardShipping, &rules.StandardShipping},
		{"store.expressShipping", cfg.Store.ExpressShipping, &rules.ExpressShipping},
	}
	for _, field := range fields {
		if strings.TrimSpace(field.raw) == "" {
			continue
		}

		value, err := decimal.NewFromString(strings.TrimSpace(field.raw))
		if err != nil {
			return pricing.Rules{}, errors.Wrapf(err, "invalid %s", field.name)
		}
		if value.IsNegative() {
			return pricing.Rules{}, errors.Errorf("%s must not be negative", field.name)
		}
		*field.target = value
	}

	return rules, nil
}

func orderNumberRetries(cfg *config.Config) int {
	if cfg == nil || cfg.Store == nil || cfg.Store.OrderNumberRetries <= 0 {
		return defaultOrderNumberRetries
	}

	return cfg.Store.OrderNumberRetries
}

// storeLocation resolves the dashboard time zone, UTC when unset.
func storeLocation(cfg *config.Config) (*time.Location, error) {
	if cfg == nil || cfg.Store == nil || cfg.Store.TimeZone == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(cfg.Store.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid store.timeZone %q", cfg.Store.TimeZone)
	}

	return loc, nil
}
