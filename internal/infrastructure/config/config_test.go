package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, "quotes", cfg.Tables.Quotes)
	assert.Equal(t, "quote_drafts", cfg.Tables.QuoteDrafts)
	assert.Equal(t, "embedded", cfg.Vehicles.Source)
	assert.Equal(t, 2000.0, cfg.FollowUp.HighThreshold)
	assert.Equal(t, 5000.0, cfg.FollowUp.UrgentThreshold)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("QUOTES_TABLE", "quotes-prod")
	t.Setenv("MAIL_MOCK", "true")
	t.Setenv("VEHICLE_TABLE_SOURCE", "DynamoDB")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "quotes-prod", cfg.Tables.Quotes)
	assert.True(t, cfg.Mail.Mock)
	assert.Equal(t, "dynamodb", cfg.Vehicles.Source)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("bad vehicle source", func(t *testing.T) {
		t.Setenv("VEHICLE_TABLE_SOURCE", "postgres")
		_, err := load(viper.New())
		assert.Error(t, err)
	})

	t.Run("bad port", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := load(viper.New())
		assert.Error(t, err)
	})

	t.Run("inverted thresholds", func(t *testing.T) {
		t.Setenv("FOLLOW_UP_URGENT_THRESHOLD", "100")
		_, err := load(viper.New())
		assert.Error(t, err)
	})
}
