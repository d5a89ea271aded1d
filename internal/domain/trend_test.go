package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func trendCandidates() []candidate {
	return []candidate{
		{exercise: Exercise{ID: "picked", TagGoal: []string{"mobility"}, TagPattern: []string{"hinge"}}, score: 3},
		{exercise: Exercise{ID: "trendy", TagGoal: []string{GoalTrend, "stability"}, TagArea: []string{"lowback_core"}, TagPattern: []string{"carry"}}, score: 1},
	}
}

func TestTrendOverlayAppendsOneEntry(t *testing.T) {
	ranked := trendCandidates()
	results := []Exercise{ranked[0].exercise}

	out := applyTrendOverlay(Profile{Intensity: IntensityMedium}, ranked, results)
	require.Len(t, out, 2)
	require.Equal(t, "trendy", out[1].ID)
}

func TestTrendOverlaySkippedForLowIntensity(t *testing.T) {
	ranked := trendCandidates()
	results := []Exercise{ranked[0].exercise}

	out := applyTrendOverlay(Profile{Intensity: IntensityLow}, ranked, results)
	require.Len(t, out, 1)
}

func TestTrendOverlaySkippedWhenTrendAlreadySelected(t *testing.T) {
	ranked := trendCandidates()
	results := []Exercise{ranked[1].exercise}

	out := applyTrendOverlay(Profile{}, ranked, results)
	require.Len(t, out, 1)
}

func TestTrendOverlayRelevanceByGoalOrArea(t *testing.T) {
	ranked := []candidate{
		{exercise: Exercise{ID: "trendy", TagGoal: []string{GoalTrend}, TagArea: []string{"hip"}}, score: 0.5},
	}

	// Goals mismatch but the profile names no areas, so the area axis
	// counts as a match and the entry qualifies.
	profile := Profile{Goals: []string{"posture"}}
	out := applyTrendOverlay(profile, ranked, nil)
	require.Len(t, out, 1)

	// Both axes populated and both mismatched: not relevant.
	profile = Profile{Goals: []string{"posture"}, Areas: []string{"shoulder"}}
	out = applyTrendOverlay(profile, ranked, nil)
	require.Empty(t, out)

	// Area overlap alone is enough.
	profile = Profile{Goals: []string{"posture"}, Areas: []string{"hip"}}
	out = applyTrendOverlay(profile, ranked, nil)
	require.Len(t, out, 1)
}

func TestTrendOverlayNoCandidateLeavesResultsUnchanged(t *testing.T) {
	ranked := []candidate{
		{exercise: Exercise{ID: "plain", TagGoal: []string{"mobility"}}, score: 2},
	}
	results := []Exercise{ranked[0].exercise}

	out := applyTrendOverlay(Profile{}, ranked, results)
	require.Equal(t, results, out)
}
