package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"example.com/recommendation/internal/domain"
)

// HTTPSource fetches the catalog from an upstream endpoint serving a JSON
// body of the form {"items": [...]}.
type HTTPSource struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSource constructs an HTTPSource with a request timeout.
func NewHTTPSource(endpoint string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
	}
}

// Load fetches and parses the catalog. Failures surface as *LoadError.
func (s *HTTPSource) Load(ctx context.Context) ([]domain.Exercise, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, &LoadError{Source: s.endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &LoadError{Source: s.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, &LoadError{Source: s.endpoint, Status: resp.StatusCode}
	}

	var body struct {
		Items []domain.Exercise `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &LoadError{Source: s.endpoint, Err: err}
	}
	return body.Items, nil
}
