package domain

import (
	"cmp"
	"slices"

	"example.com/recommendation/internal/observability"
)

// Recommend runs the full pipeline over an in-memory catalog: hard filter,
// score, stable descending sort, diversity-capped selection, trend overlay.
// The catalog and profile are never mutated; the result is an ordered subset
// of catalog entries with no repeats. Pure and deterministic, so concurrent
// calls against the same catalog are safe.
func Recommend(profile Profile, catalog []Exercise, opts Options) []Exercise {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults(profile.TimeMinutes)
	}
	maxPerPattern := opts.MaxPerPattern
	if maxPerPattern <= 0 {
		maxPerPattern = defaultMaxPerPattern
	}

	candidates := make([]candidate, 0, len(catalog))
	for _, exercise := range catalog {
		if !passesFilter(profile, exercise) {
			continue
		}
		candidates = append(candidates, candidate{
			exercise: exercise,
			score:    scoreExercise(profile, exercise),
		})
	}

	// Stable sort keeps catalog order as the tie-breaker.
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(b.score, a.score)
	})

	selected := selectDiverse(candidates, maxResults, maxPerPattern)
	results := selected
	if !opts.DisableTrendOverlay {
		results = applyTrendOverlay(profile, candidates, selected)
		if len(results) > len(selected) {
			observability.RecordTrendOverlay()
		}
	}
	return results
}
