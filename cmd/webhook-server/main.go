package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/emmanuel128/repaso-app/internal/provision"
	"github.com/emmanuel128/repaso-app/internal/shared/envconfig"
	"github.com/emmanuel128/repaso-app/internal/shared/logging"
	sharedserver "github.com/emmanuel128/repaso-app/internal/shared/server"
	"github.com/emmanuel128/repaso-app/internal/webhookapi"
	"github.com/emmanuel128/repaso-app/pkg/supabase"
)

type config struct {
	Port            string `validate:"required"`
	SupabaseURL     string `validate:"required,url"`
	ServiceRoleKey  string `validate:"required"`
	WebhookSecret   string `validate:"required"`
	DefaultTenantID string
}

func loadConfig() (config, error) {
	cfg := config{
		Port:            envconfig.Get("PORT", "8080"),
		SupabaseURL:     envconfig.Get("SUPABASE_URL", ""),
		ServiceRoleKey:  envconfig.Get("SUPABASE_SERVICE_ROLE_KEY", ""),
		WebhookSecret:   envconfig.Get("WEBHOOK_SECRET", ""),
		DefaultTenantID: envconfig.Get("DEFAULT_TENANT_ID", ""),
	}
	return cfg, envconfig.Validate(cfg)
}

func main() {
	ctx := context.Background()
	cfg, err := loadConfig()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	logger := logging.New("auth-webhook")
	if cfg.DefaultTenantID == "" {
		logger.Warn("DEFAULT_TENANT_ID not configured, tenant-scoped provisioning disabled")
	}

	store := provision.NewSupabaseStore(supabase.NewClient(cfg.SupabaseURL, cfg.ServiceRoleKey))
	provisioner := provision.NewService(store, cfg.DefaultTenantID, logging.WithComponent(logger, "provision"))

	router := sharedserver.NewRouter("auth-webhook", func(r chi.Router) {
		webhookapi.RegisterRoutes(r, provisioner, cfg.WebhookSecret, logging.WithComponent(logger, "webhookapi"))
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := sharedserver.Run(ctx, srv, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}
