// Package webhookapi exposes the identity-provider webhook endpoint and
// bridges it to the provisioning service.
package webhookapi

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/emmanuel128/repaso-app/internal/provision"
	"github.com/emmanuel128/repaso-app/internal/shared/server"
)

// maxBodyBytes bounds webhook payloads; auth events are small.
const maxBodyBytes = 1 << 20

// Provisioner processes a normalized identity event.
type Provisioner interface {
	Process(ctx context.Context, event provision.Event) provision.Outcome
}

// RegisterRoutes mounts the webhook endpoint.
func RegisterRoutes(r chi.Router, svc Provisioner, secret string, logger *slog.Logger) {
	r.Post("/v1/auth/webhook", handleAuthEvent(svc, secret, logger))
}

type rejection struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason"`
}

func handleAuthEvent(svc Provisioner, secret string, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.With("delivery_id", uuid.NewString())

		// The secret check happens before the body is even read; either
		// recognized header may carry it.
		provided := r.Header.Get("x-signature")
		if provided == "" {
			provided = r.Header.Get("x-supabase-webhook-source")
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			log.Warn("webhook secret mismatch")
			server.WriteJSON(w, http.StatusUnauthorized, rejection{Reason: "invalid_signature"})
			return
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
		if err != nil {
			server.WriteJSON(w, http.StatusBadRequest, rejection{Reason: "unreadable_body"})
			return
		}

		event, err := provision.ParseEvent(body)
		if err != nil {
			if !errors.Is(err, provision.ErrMalformedPayload) {
				log.Error("event parse failed", "error", err)
			}
			server.WriteJSON(w, http.StatusBadRequest, rejection{Reason: "invalid_json"})
			return
		}

		// Every classified case answers 200: the provider's redelivery
		// cannot fix a partial downstream failure, it would only repeat it.
		outcome := svc.Process(r.Context(), event)
		server.WriteJSON(w, http.StatusOK, outcome)
	}
}
