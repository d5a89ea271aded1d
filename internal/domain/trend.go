package domain

// applyTrendOverlay appends at most one trend-tagged exercise after
// selection. It never runs for low-intensity profiles, and backs off when a
// trend entry already made the cut. Relevance is by goal OR by area: an
// empty profile field counts as a match on that axis. The appended entry may
// push the result one past the configured cap.
func applyTrendOverlay(profile Profile, ranked []candidate, results []Exercise) []Exercise {
	if intensityRank(profile.Intensity) == 1 {
		return results
	}
	for _, picked := range results {
		if containsTag(picked.TagGoal, GoalTrend) {
			return results
		}
	}

	goals := toSet(profile.Goals)
	areas := toSet(profile.Areas)
	for _, cand := range ranked {
		exercise := cand.exercise
		if !containsTag(exercise.TagGoal, GoalTrend) {
			continue
		}
		goalMatch := len(profile.Goals) == 0 || overlapCount(exercise.TagGoal, goals) > 0
		areaMatch := len(profile.Areas) == 0 || overlapCount(exercise.TagArea, areas) > 0
		if goalMatch || areaMatch {
			return append(results, exercise)
		}
	}
	return results
}
