// Package api exposes HTTP handlers for the exercise recommendation service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"example.com/recommendation/internal/auth"
	"example.com/recommendation/internal/catalog"
	"example.com/recommendation/internal/domain"
)

// Handler handles HTTP interactions.
type Handler struct {
	service *domain.Service
}

// NewHandler constructs Handler.
func NewHandler(service *domain.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes sets up routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/recommendations", h.recommend)
	mux.HandleFunc("/v1/exercises", h.listExercises)
	mux.HandleFunc("/v1/catalog/refresh", h.refreshCatalog)
	mux.HandleFunc("/healthz", healthz)
}

// healthz returns an OK response for readiness probes.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// RecommendRequest represents the recommendation request payload.
type RecommendRequest struct {
	Profile domain.Profile `json:"profile"`
	Options domain.Options `json:"options"`
}

// Validate ensures request integrity.
func (r RecommendRequest) Validate() error {
	if r.Profile.TimeMinutes < 0 {
		return errors.New("time_minutes must not be negative")
	}
	if r.Options.MaxResults < 0 {
		return errors.New("max_results must not be negative")
	}
	if r.Options.MaxPerPattern < 0 {
		return errors.New("max_per_pattern must not be negative")
	}
	return nil
}

func (h *Handler) recommend(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if !claims.HasScope(auth.ScopeRecommendRead) {
		writeError(w, http.StatusForbidden, "forbidden", "scope recommend:read required")
		return
	}

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	items, err := h.service.Recommend(r.Context(), req.Profile, req.Options)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) listExercises(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if !claims.HasScope(auth.ScopeCatalogRead) && !claims.HasScope(auth.ScopeCatalogWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope catalog:read required")
		return
	}

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	query := r.URL.Query().Get("query")
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	items, err := h.service.ListExercises(r.Context(), query, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) refreshCatalog(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if !claims.HasScope(auth.ScopeCatalogWrite) {
		writeError(w, http.StatusForbidden, "forbidden", "scope catalog:write required")
		return
	}

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	if err := h.service.RefreshCatalog(r.Context()); err != nil {
		if errors.Is(err, domain.ErrRefreshUnsupported) {
			writeError(w, http.StatusConflict, "refresh_unsupported", err.Error())
			return
		}
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps catalog load failures onto 502 so callers can tell
// an upstream outage from a broken request.
func writeServiceError(w http.ResponseWriter, err error) {
	var loadErr *catalog.LoadError
	if errors.As(err, &loadErr) {
		writeError(w, http.StatusBadGateway, "catalog_unavailable", loadErr.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, "server_error", err.Error())
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, map[string]string{"type": code, "detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
