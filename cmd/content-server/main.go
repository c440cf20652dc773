package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/emmanuel128/repaso-app/internal/catalog"
	"github.com/emmanuel128/repaso-app/internal/content"
	"github.com/emmanuel128/repaso-app/internal/contentapi"
	"github.com/emmanuel128/repaso-app/internal/shared/envconfig"
	"github.com/emmanuel128/repaso-app/internal/shared/logging"
	sharedserver "github.com/emmanuel128/repaso-app/internal/shared/server"
	"github.com/emmanuel128/repaso-app/pkg/supabase"
)

type config struct {
	Port         string `validate:"required"`
	GeminiAPIKey string `validate:"required"`
	SupabaseURL  string `validate:"required,url"`
	AnonKey      string `validate:"required"`
}

func loadConfig() (config, error) {
	cfg := config{
		Port:         envconfig.Get("PORT", "8080"),
		GeminiAPIKey: resolveAPIKey(),
		SupabaseURL:  envconfig.Get("SUPABASE_URL", ""),
		AnonKey:      envconfig.Get("SUPABASE_ANON_KEY", ""),
	}
	return cfg, envconfig.Validate(cfg)
}

func resolveAPIKey() string {
	if key := envconfig.Get("GEMINI_API_KEY", ""); strings.TrimSpace(key) != "" {
		return key
	}
	return envconfig.Get("GOOGLE_API_KEY", "")
}

func main() {
	ctx := context.Background()
	cfg, err := loadConfig()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	logger := logging.New("content-service")

	// Optional per-type model overrides, applied before any request is served.
	content.ApplyModelOverrides(map[content.Type]string{
		content.TypeCase:     envconfig.Get("GEMINI_MODEL_CASE", ""),
		content.TypeQuestion: envconfig.Get("GEMINI_MODEL_QUESTION", ""),
		content.TypeExplain:  envconfig.Get("GEMINI_MODEL_EXPLAIN", ""),
		content.TypeMnemonic: envconfig.Get("GEMINI_MODEL_MNEMONIC", ""),
	})

	caller, err := content.NewGeminiCaller(ctx, cfg.GeminiAPIKey)
	if err != nil {
		panic(fmt.Errorf("gemini client: %w", err))
	}
	generator := content.NewGenerator(caller, logging.WithComponent(logger, "generator"))
	catalogSvc := catalog.NewService(supabase.NewClient(cfg.SupabaseURL, cfg.AnonKey))

	router := sharedserver.NewRouter("content-service", func(r chi.Router) {
		contentapi.RegisterRoutes(r, generator, catalogSvc, logging.WithComponent(logger, "contentapi"))
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := sharedserver.Run(ctx, srv, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}
