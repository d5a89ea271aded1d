package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"example.com/recommendation/internal/observability"
)

// Source supplies the exercise catalog. Implementations live in the catalog
// package; the pipeline only ever sees the materialized slice.
type Source interface {
	Load(ctx context.Context) ([]Exercise, error)
}

// Refresher is implemented by sources that can be told to reload eagerly.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// ErrRefreshUnsupported indicates the configured source has no refresh path.
var ErrRefreshUnsupported = errors.New("catalog source does not support refresh")

// Service wires a catalog source to the recommendation pipeline and carries
// deployment-level option defaults.
type Service struct {
	source   Source
	defaults Options
}

// NewService constructs a Service. The defaults fill in option fields the
// caller leaves at zero on each request.
func NewService(source Source, defaults Options) *Service {
	return &Service{source: source, defaults: defaults}
}

// Recommend loads the catalog and runs the pipeline for one profile.
func (s *Service) Recommend(ctx context.Context, profile Profile, opts Options) ([]Exercise, error) {
	catalog, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	observability.RecordCatalogLoad(len(catalog))

	if opts.MaxResults <= 0 {
		opts.MaxResults = s.defaults.MaxResults
	}
	if opts.MaxPerPattern <= 0 {
		opts.MaxPerPattern = s.defaults.MaxPerPattern
	}
	if s.defaults.DisableTrendOverlay {
		opts.DisableTrendOverlay = true
	}

	results := Recommend(profile, catalog, opts)
	observability.RecordRecommendation(len(results))
	return results, nil
}

// ListExercises returns catalog entries whose name contains the query,
// case-insensitively. An empty query lists everything up to the limit.
func (s *Service) ListExercises(ctx context.Context, query string, limit int) ([]Exercise, error) {
	catalog, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	observability.RecordCatalogLoad(len(catalog))

	if limit <= 0 {
		limit = 20
	}
	normalized := strings.ToLower(strings.TrimSpace(query))
	results := make([]Exercise, 0, limit)
	for _, exercise := range catalog {
		if normalized != "" && !strings.Contains(strings.ToLower(exercise.Name), normalized) {
			continue
		}
		results = append(results, exercise)
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// RefreshCatalog forces a reload on sources that support it.
func (s *Service) RefreshCatalog(ctx context.Context) error {
	refresher, ok := s.source.(Refresher)
	if !ok {
		return ErrRefreshUnsupported
	}
	return refresher.Refresh(ctx)
}
