package config_test

import (
	"os"
	"testing"
	"time"

	"ticketbari/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PAYMENT_STRIPE_SECRET_KEY", "sk_test_123")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.HttpServer.Port)
		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, 30*time.Minute, cfg.Payment.SessionTTL)
		assert.Equal(t, 5*time.Minute, cfg.Payment.ExpiryGrace)
		assert.Equal(t, "usd", cfg.Payment.Currency)
		assert.Equal(t, "sk_test_123", cfg.Payment.StripeSecretKey)
		assert.True(t, cfg.Database.AutoMigrate)
	})

	t.Run("nested prefix override", func(t *testing.T) {
		t.Setenv("PAYMENT_STRIPE_SECRET_KEY", "sk_test_123")
		t.Setenv("DATABASE_HOST", "db.internal")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("PAYMENT_SESSION_TTL", "45m")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 3, cfg.Redis.DB)
		assert.Equal(t, 45*time.Minute, cfg.Payment.SessionTTL)
	})

	t.Run("missing stripe key", func(t *testing.T) {
		t.Setenv("PAYMENT_STRIPE_SECRET_KEY", "unset")
		require.NoError(t, os.Unsetenv("PAYMENT_STRIPE_SECRET_KEY"))

		_, err := config.Load()
		assert.Error(t, err)
	})
}
