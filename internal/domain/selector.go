package domain

const defaultMaxPerPattern = 2

// defaultMaxResults derives the result cap from the session length.
func defaultMaxResults(timeMinutes int) int {
	switch {
	case timeMinutes <= 0:
		return 5
	case timeMinutes <= 5:
		return 3
	case timeMinutes <= 10:
		return 5
	case timeMinutes <= 20:
		return 7
	default:
		return 9
	}
}

// candidate pairs a surviving exercise with its relevance score.
type candidate struct {
	exercise Exercise
	score    float64
}

// selectDiverse walks the score-sorted candidates and greedily accepts
// entries while bounding how many share a primary pattern. A candidate
// skipped for pattern saturation does not consume a result slot. Once
// min(3, maxResults) entries are in and the scan reaches non-positive
// scores, the remainder is not worth including and the scan stops.
func selectDiverse(candidates []candidate, maxResults, maxPerPattern int) []Exercise {
	patternCounts := make(map[string]int)
	results := make([]Exercise, 0, maxResults)
	floor := min(3, maxResults)

	for _, cand := range candidates {
		if len(results) >= maxResults {
			break
		}
		if len(results) >= floor && cand.score <= 0 {
			break
		}
		pattern := cand.exercise.PrimaryPattern()
		if patternCounts[pattern] >= maxPerPattern {
			continue
		}
		patternCounts[pattern]++
		results = append(results, cand.exercise)
	}
	return results
}
