package infra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "secret")
	t.Setenv("ENV", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 720*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.False(t, cfg.UsePostgres())
	assert.False(t, cfg.IsProd())
	assert.Nil(t, cfg.AllowedOrigins())
}

func TestLoadConfig_RequiresSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SECRET_KEY", "secret")
	t.Setenv("ENV", "prod")
	t.Setenv("DB_NAME", "pantry")
	t.Setenv("DB_USER", "chef")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("AI_RATE_PER_MINUTE", "30")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProd())
	assert.True(t, cfg.UsePostgres())
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 30.0, cfg.AIRatePerMinute)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
	assert.Equal(t, "postgres://chef:pw@db:5433/pantry?sslmode=require", cfg.PostgresURL())

	cfg.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.PostgresURL())
}

func TestLoadConfig_RejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("SECRET_KEY", "secret")
	t.Setenv("TOKEN_TTL", "-1h")

	_, err := LoadConfig()
	assert.Error(t, err)
}
