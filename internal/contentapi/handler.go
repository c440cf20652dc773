// Package contentapi exposes the study-guide catalog and the generative
// content endpoints.
package contentapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/emmanuel128/repaso-app/internal/catalog"
	"github.com/emmanuel128/repaso-app/internal/content"
	"github.com/emmanuel128/repaso-app/internal/shared/httperr"
	"github.com/emmanuel128/repaso-app/internal/shared/server"
	"github.com/emmanuel128/repaso-app/pkg/sdk"
)

// Generator produces study content for a section/topic pair.
type Generator interface {
	Generate(ctx context.Context, t content.Type, section, topics string) (content.Response, error)
}

// Catalog serves the static study guide and the database-backed areas/topics.
type Catalog interface {
	Sections() []catalog.Section
	Section(id int) (catalog.Section, bool)
	Areas(ctx context.Context) ([]sdk.Area, error)
	TopicsByArea(ctx context.Context, areaID string) ([]sdk.Topic, error)
	AreasWithTopics(ctx context.Context) ([]sdk.AreaWithTopics, error)
}

// RegisterRoutes mounts the content endpoints.
func RegisterRoutes(r chi.Router, generator Generator, cat Catalog, logger *slog.Logger) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/generate", handleGenerate(generator, logger))
		r.Get("/models/{contentType}", handleModelInfo())
		r.Get("/sections", handleSections(cat))
		r.Get("/sections/{sectionID}", handleSection(cat))
		r.Get("/areas", handleAreas(cat, logger))
		r.Get("/areas/{areaID}/topics", handleTopicsByArea(cat, logger))
		r.Get("/areas-with-topics", handleAreasWithTopics(cat, logger))
	})
}

type generateRequest struct {
	Type    string `json:"type"`
	Section string `json:"section"`
	Topics  string `json:"topics"`
}

type generateResponse struct {
	Title    string `json:"title"`
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Model    string `json:"model"`
}

func handleGenerate(generator Generator, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httperr.Write(w, "bad_request", "invalid request body")
			return
		}

		contentType, ok := content.ParseType(req.Type)
		if !ok {
			httperr.Write(w, "bad_request", "unknown content type: "+req.Type)
			return
		}
		if strings.TrimSpace(req.Section) == "" || strings.TrimSpace(req.Topics) == "" {
			httperr.Write(w, "bad_request", "section and topics are required")
			return
		}

		result, err := generator.Generate(r.Context(), contentType, req.Section, req.Topics)
		if err != nil {
			writeGenerationError(w, err, logger)
			return
		}

		server.WriteJSON(w, http.StatusOK, generateResponse{
			Title:    content.Title(contentType, req.Section),
			Question: result.Question,
			Answer:   result.Answer,
			Model:    result.Model,
		})
	}
}

// writeGenerationError maps the pipeline's closed error set onto HTTP codes.
// Only the fixed user-facing messages ever leave the service.
func writeGenerationError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var genErr *content.Error
	if !errors.As(err, &genErr) {
		logger.Error("unexpected generation error", "error", err)
		httperr.Write(w, "internal", "No se pudo generar el contenido. Intenta de nuevo más tarde.")
		return
	}

	code := "internal"
	switch genErr.Category {
	case content.CategoryQuota:
		code = "rate_limited"
	case content.CategoryBlocked:
		code = "unprocessable"
	case content.CategoryNetwork:
		code = "upstream_unavailable"
	}
	httperr.Write(w, code, genErr.Error())
}

func handleModelInfo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentType, ok := content.ParseType(chi.URLParam(r, "contentType"))
		if !ok {
			httperr.Write(w, "not_found", "unknown content type")
			return
		}
		info, _ := content.InfoFor(contentType)
		server.WriteJSON(w, http.StatusOK, info)
	}
}

func handleSections(cat Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		server.WriteJSON(w, http.StatusOK, map[string]any{"sections": cat.Sections()})
	}
}

func handleSection(cat Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "sectionID"))
		if err != nil {
			httperr.Write(w, "bad_request", "section id must be numeric")
			return
		}
		section, ok := cat.Section(id)
		if !ok {
			httperr.Write(w, "not_found", "section not found")
			return
		}
		server.WriteJSON(w, http.StatusOK, section)
	}
}

func handleAreas(cat Catalog, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areas, err := cat.Areas(r.Context())
		if err != nil {
			logger.Error("areas fetch failed", "error", err)
			httperr.Write(w, "internal", "could not load areas")
			return
		}
		server.WriteJSON(w, http.StatusOK, map[string]any{"areas": areas})
	}
}

func handleTopicsByArea(cat Catalog, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areaID := chi.URLParam(r, "areaID")
		topics, err := cat.TopicsByArea(r.Context(), areaID)
		if err != nil {
			logger.Error("topics fetch failed", "area_id", areaID, "error", err)
			httperr.Write(w, "internal", "could not load topics")
			return
		}
		server.WriteJSON(w, http.StatusOK, map[string]any{"topics": topics})
	}
}

func handleAreasWithTopics(cat Catalog, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		combined, err := cat.AreasWithTopics(r.Context())
		if err != nil {
			logger.Error("catalog fetch failed", "error", err)
			httperr.Write(w, "internal", "could not load catalog")
			return
		}
		server.WriteJSON(w, http.StatusOK, map[string]any{"areas": combined})
	}
}
