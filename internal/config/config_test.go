package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "DB_DSN", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "GEMINI_API_KEY", "ASSISTANT_PROVIDER"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "root:@tcp(127.0.0.1:3306)/bigshop?parseTime=true", cfg.DSN)
	assert.Equal(t, ProviderKeyword, cfg.AssistantProvider)
	assert.True(t, cfg.Development())
}

func TestLoadComposedDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_USER", "shop")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "bigshop_prod")

	cfg := Load()
	assert.Equal(t, "shop:secret@tcp(db.internal:3307)/bigshop_prod?parseTime=true", cfg.DSN)
}

func TestLoadExplicitDSNWins(t *testing.T) {
	t.Setenv("DB_DSN", "user:pw@tcp(10.0.0.5:3306)/other?parseTime=true")
	t.Setenv("DB_HOST", "ignored")

	cfg := Load()
	assert.Equal(t, "user:pw@tcp(10.0.0.5:3306)/other?parseTime=true", cfg.DSN)
}

func TestLoadGeminiKeySwitchesProvider(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key-123")

	cfg := Load()
	assert.Equal(t, ProviderGemini, cfg.AssistantProvider)
}

func TestLoadExplicitProviderWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("ASSISTANT_PROVIDER", "keyword")

	cfg := Load()
	assert.Equal(t, ProviderKeyword, cfg.AssistantProvider)
}

func TestProductionMode(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	cfg := Load()
	assert.False(t, cfg.Development())
}
