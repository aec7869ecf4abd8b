package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	cfg.applyDefaults()

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 6, cfg.Auth.OTPLength)
	assert.Equal(t, 10*time.Minute, cfg.Auth.OTPTTL)
	assert.Equal(t, time.Hour, cfg.Auth.CleanupInterval)
	assert.Equal(t, OTPStorePostgres, cfg.OTP.Store)
	require.NotNil(t, cfg.Provider)
	assert.Equal(t, "BUSINESS VICTORY SOLUTIONS", cfg.Provider.Company)
}

func TestConfig_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth: &AuthConfig{
			AccessTokenTTL:  time.Minute,
			OTPLength:       8,
			CleanupInterval: -1,
		},
		OTP:     &OTPConfig{Store: OTPStoreRedis},
		PubSub:  &PubSubConfig{Provider: "rabbitmq"},
		Metrics: &MetricsConfig{Enabled: true},
	}

	cfg.applyDefaults()

	assert.Equal(t, time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 8, cfg.Auth.OTPLength)
	assert.Equal(t, time.Duration(-1), cfg.Auth.CleanupInterval)
	assert.Equal(t, OTPStoreRedis, cfg.OTP.Store)
	assert.Equal(t, defaultRabbitMQQueue, cfg.PubSub.RabbitMQ.Queue)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
}
