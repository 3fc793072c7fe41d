package config

import (
	"fmt"
	"os"
	"strconv"
)

// Assistant provider names accepted in ASSISTANT_PROVIDER.
const (
	ProviderKeyword = "keyword"
	ProviderGemini  = "gemini"
)

// Config holds everything the server reads from the environment.
type Config struct {
	AppEnv   string
	LogLevel string

	Port int

	// DSN is the full MySQL connection string. When DB_DSN is not set it is
	// composed from the individual DB_* variables.
	DSN string

	GeminiAPIKey      string
	AssistantProvider string

	FrontendOrigin string
}

// Load reads the environment. godotenv is applied by the caller beforehand,
// so plain os.Getenv sees both .env values and real environment variables.
func Load() Config {
	cfg := Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnvInt("PORT", 8080),
		DSN:            os.Getenv("DB_DSN"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
	}

	if cfg.DSN == "" {
		host := getEnv("DB_HOST", "127.0.0.1")
		port := getEnvInt("DB_PORT", 3306)
		user := getEnv("DB_USER", "root")
		password := os.Getenv("DB_PASSWORD")
		name := getEnv("DB_NAME", "bigshop")
		cfg.DSN = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", user, password, host, port, name)
	}

	// The keyword resolver is the default; Gemini takes over only when a key
	// is present or the operator asks for it explicitly.
	def := ProviderKeyword
	if cfg.GeminiAPIKey != "" {
		def = ProviderGemini
	}
	cfg.AssistantProvider = getEnv("ASSISTANT_PROVIDER", def)

	return cfg
}

// Development reports whether detailed error text may be sent to clients.
func (c Config) Development() bool {
	return c.AppEnv == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
