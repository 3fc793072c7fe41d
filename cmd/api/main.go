package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/bigshop/bigshop-golang/internal/assistant"
	"github.com/bigshop/bigshop-golang/internal/config"
	"github.com/bigshop/bigshop-golang/internal/database"
	"github.com/bigshop/bigshop-golang/internal/handlers"
	"github.com/bigshop/bigshop-golang/internal/routes"
	"github.com/bigshop/bigshop-golang/internal/services"
	"github.com/bigshop/bigshop-golang/internal/store"
	"github.com/bigshop/bigshop-golang/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: no .env file found, relying on system environment variables")
	}

	cfg := config.Load()

	zlog := logger.New(cfg.AppEnv, cfg.LogLevel)
	defer zlog.Sync()

	db, err := database.Open(cfg.DSN)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		zlog.Fatal("failed to ensure database schema", zap.Error(err))
	}

	st := store.New(db)
	catalog := services.NewProductService(st, zlog)
	cart := services.NewCartService(st, st, zlog)

	ops := assistant.NewOps(catalog, cart)
	resolver := buildResolver(cfg, ops, zlog)
	chat := assistant.NewService(resolver, st, zlog)

	app := &handlers.Handlers{
		DB:         db,
		Catalog:    catalog,
		Cart:       cart,
		Assistant:  chat,
		Categories: st,
		Log:        zlog,
		Dev:        cfg.Development(),
	}

	router := routes.SetupRouter(app, cfg.FrontendOrigin)

	zlog.Info("starting API server", zap.Int("port", cfg.Port))
	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

// buildResolver selects the assistant backend from configuration. A gemini
// provider without an API key degrades to the unavailable resolver so the
// rest of the API keeps serving.
func buildResolver(cfg config.Config, ops *assistant.Ops, zlog *zap.Logger) assistant.Resolver {
	switch cfg.AssistantProvider {
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			zlog.Warn("gemini provider selected but GEMINI_API_KEY is empty, assistant disabled")
			return assistant.Unavailable{}
		}
		resolver, err := assistant.NewGeminiResolver(context.Background(), cfg.GeminiAPIKey, assistant.DefaultGeminiModel, ops)
		if err != nil {
			zlog.Warn("failed to initialize gemini client, assistant disabled", zap.Error(err))
			return assistant.Unavailable{}
		}
		return resolver
	case config.ProviderKeyword:
		return assistant.NewKeywordResolver(ops)
	default:
		zlog.Warn("unknown assistant provider, assistant disabled", zap.String("provider", cfg.AssistantProvider))
		return assistant.Unavailable{}
	}
}
