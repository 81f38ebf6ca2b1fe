package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"radio-mediaplan/internal/config/configs"
	"radio-mediaplan/internal/core/calculator"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, configs.CatalogStatic, cfg.Catalog.Normalized())
	assert.Equal(t, "https://ai.gateway.lovable.dev/v1", cfg.Advisor.BaseURL)
	assert.Empty(t, cfg.Advisor.APIKey)

	policy := cfg.Pricing.Policy()
	require.NoError(t, policy.Validate())
	def := calculator.DefaultPolicy()
	assert.True(t, def.ProductionSurcharge.Equal(policy.ProductionSurcharge))
	assert.True(t, def.MaxCoverageDiscount.Equal(policy.MaxCoverageDiscount))
	assert.True(t, def.CoverageAdjustment.Equal(policy.CoverageAdjustment))
	assert.True(t, def.UniqueAudienceFactor.Equal(policy.UniqueAudienceFactor))
	assert.Equal(t, def.ReachMode, policy.ReachMode)
	assert.Equal(t, def.MaxDays, policy.MaxDays)
	assert.Equal(t, def.MaxDurationSeconds, policy.MaxDurationSeconds)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PRICING_PRODUCTION_SURCHARGE", "0")
	t.Setenv("PRICING_REACH_MODE", "weighted")
	t.Setenv("CATALOG_SOURCE", "Postgres")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MAIL_ADMIN_EMAIL", "sales@example.ru")
	t.Setenv("PRICING_MAX_DAYS", "90")
	t.Setenv("ADVISOR_MAX_RETRIES", "0")

	cfg, err := Load()
	require.NoError(t, err)

	policy := cfg.Pricing.Policy()
	assert.True(t, decimal.Zero.Equal(policy.ProductionSurcharge))
	assert.Equal(t, calculator.ReachWeighted, policy.ReachMode)
	assert.Equal(t, 90, policy.MaxDays)
	assert.Zero(t, cfg.Advisor.MaxRetries)
	assert.Equal(t, configs.CatalogPostgres, cfg.Catalog.Normalized())
	assert.Equal(t, "sales@example.ru", cfg.Mail.AdminEmail)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsMalformedDecimal(t *testing.T) {
	t.Setenv("PRICING_UNIQUE_AUDIENCE_FACTOR", "seventy percent")

	_, err := Load()
	assert.Error(t, err)
}
