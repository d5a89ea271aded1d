package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"example.com/recommendation/internal/auth"
	"example.com/recommendation/internal/catalog"
	"example.com/recommendation/internal/domain"
	"example.com/recommendation/pkg/testhelpers"
)

func newTestService() *domain.Service {
	store := catalog.NewStore()
	for _, exercise := range testhelpers.SampleCatalog() {
		store.Upsert(exercise)
	}
	return domain.NewService(store, domain.Options{})
}

func withClaims(req *http.Request, scopes ...string) *http.Request {
	claims := &auth.Claims{
		Subject:   "user",
		TenantID:  "tenant",
		Scopes:    scopesWith(scopes...),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return req.WithContext(auth.WithClaims(req.Context(), claims))
}

func TestRecommendReturnsItems(t *testing.T) {
	handler := NewHandler(newTestService())

	payload := map[string]any{
		"profile": map[string]any{
			"goals":        []string{"mobility"},
			"areas":        []string{"shoulder"},
			"intensity":    "medium",
			"time_minutes": 10,
		},
	}
	buf, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	req = withClaims(req, auth.ScopeRecommendRead)

	rr := httptest.NewRecorder()
	handler.recommend(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body struct {
		Items []domain.Exercise `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(body.Items) == 0 {
		t.Fatalf("expected at least one recommendation")
	}
	if body.Items[0].ID != "shoulder-circles" {
		t.Fatalf("expected the shoulder mobility exercise first, got %s", body.Items[0].ID)
	}
}

func TestRecommendRequiresAuth(t *testing.T) {
	handler := NewHandler(newTestService())

	req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewReader([]byte(`{}`)))
	rr := httptest.NewRecorder()
	handler.recommend(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestRecommendRequiresScope(t *testing.T) {
	handler := NewHandler(newTestService())

	req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewReader([]byte(`{}`)))
	req = withClaims(req, auth.ScopeCatalogRead)
	rr := httptest.NewRecorder()
	handler.recommend(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestRecommendRejectsMalformedBody(t *testing.T) {
	handler := NewHandler(newTestService())

	req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewReader([]byte("{")))
	req = withClaims(req, auth.ScopeRecommendRead)
	rr := httptest.NewRecorder()
	handler.recommend(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestRecommendRejectsNegativeValues(t *testing.T) {
	handler := NewHandler(newTestService())

	buf, _ := json.Marshal(map[string]any{
		"profile": map[string]any{"time_minutes": -5},
	})
	req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewReader(buf))
	req = withClaims(req, auth.ScopeRecommendRead)
	rr := httptest.NewRecorder()
	handler.recommend(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestRecommendSurfacesCatalogOutage(t *testing.T) {
	source := catalog.NewHTTPSource("http://127.0.0.1:1", 100*time.Millisecond)
	service := domain.NewService(source, domain.Options{})
	handler := NewHandler(service)

	buf, _ := json.Marshal(map[string]any{"profile": map[string]any{}})
	req := httptest.NewRequest(http.MethodPost, "/v1/recommendations", bytes.NewReader(buf))
	req = withClaims(req, auth.ScopeRecommendRead)
	rr := httptest.NewRecorder()
	handler.recommend(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
}

func TestListExercisesFiltersByQuery(t *testing.T) {
	handler := NewHandler(newTestService())

	req := httptest.NewRequest(http.MethodGet, "/v1/exercises?query=swing", nil)
	req = withClaims(req, auth.ScopeCatalogRead)
	rr := httptest.NewRecorder()
	handler.listExercises(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body struct {
		Items []domain.Exercise `json:"items"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(body.Items) != 1 {
		t.Fatalf("expected one match for 'swing', got %d", len(body.Items))
	}
	if body.Items[0].Name != "Heavy Swing" {
		t.Fatalf("unexpected match %s", body.Items[0].Name)
	}
}

func TestRefreshCatalogUnsupportedOnStore(t *testing.T) {
	handler := NewHandler(newTestService())

	req := httptest.NewRequest(http.MethodPost, "/v1/catalog/refresh", nil)
	req = withClaims(req, auth.ScopeCatalogWrite)
	rr := httptest.NewRecorder()
	handler.refreshCatalog(rr, req)

	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a store-backed catalog, got %d", rr.Code)
	}
}

func TestRefreshCatalogOnCachedSource(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer upstream.Close()

	source := catalog.NewCached(catalog.NewHTTPSource(upstream.URL, time.Second), time.Hour)
	handler := NewHandler(domain.NewService(source, domain.Options{}))

	req := httptest.NewRequest(http.MethodPost, "/v1/catalog/refresh", nil)
	req = withClaims(req, auth.ScopeCatalogWrite)
	rr := httptest.NewRecorder()
	handler.refreshCatalog(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
}

func scopesWith(values ...string) map[string]struct{} {
	scopes := make(map[string]struct{}, len(values))
	for _, value := range values {
		scopes[value] = struct{}{}
	}
	return scopes
}
