// Package domain holds the exercise catalog model and the recommendation
// pipeline: hard filtering, scoring, diversity-capped selection and the
// trend overlay.
package domain

import "strings"

// Intensity levels form an ordinal scale; unrecognized values fall back to
// medium.
const (
	IntensityLow    = "low"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

// Well-known tag values interpreted by the pipeline.
const (
	EquipmentNone  = "none"
	PatternGeneral = "general"
	GoalTrend      = "trend"
	TimeCostShort  = "short"
	TimeCostMedium = "medium"
)

// Exercise represents one catalog entry. Tag fields are sets of free-form
// labels; absent fields behave as empty sets.
type Exercise struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Summary string `json:"summary,omitempty" yaml:"summary,omitempty"`

	TagGoal      []string `json:"tag_goal,omitempty" yaml:"tag_goal,omitempty"`
	TagArea      []string `json:"tag_area,omitempty" yaml:"tag_area,omitempty"`
	TagFeel      []string `json:"tag_feel,omitempty" yaml:"tag_feel,omitempty"`
	TagIntensity string   `json:"tag_intensity,omitempty" yaml:"tag_intensity,omitempty"`
	TagEquipment []string `json:"tag_equipment,omitempty" yaml:"tag_equipment,omitempty"`
	TagContra    []string `json:"tag_contra,omitempty" yaml:"tag_contra,omitempty"`
	TagTimeCost  string   `json:"tag_time_cost,omitempty" yaml:"tag_time_cost,omitempty"`
	TagPattern   []string `json:"tag_pattern,omitempty" yaml:"tag_pattern,omitempty"`
}

// PrimaryPattern returns the first movement-pattern tag, or "general" when
// the exercise has none. It is the diversity-capping key.
func (e Exercise) PrimaryPattern() string {
	if len(e.TagPattern) == 0 {
		return PatternGeneral
	}
	return e.TagPattern[0]
}

// Profile describes what the user is asking for. Empty fields mean "no
// preference" rather than an error.
type Profile struct {
	Goals       []string `json:"goals,omitempty"`
	Areas       []string `json:"areas,omitempty"`
	Feels       []string `json:"feels,omitempty"`
	Intensity   string   `json:"intensity,omitempty"`
	TimeMinutes int      `json:"time_minutes,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
	Avoid       []string `json:"avoid,omitempty"`
}

// Options tunes a single recommendation call. Zero values select the
// defaults: MaxResults derived from the profile's session length,
// MaxPerPattern 2, trend overlay enabled.
type Options struct {
	MaxResults          int  `json:"max_results,omitempty"`
	MaxPerPattern       int  `json:"max_per_pattern,omitempty"`
	DisableTrendOverlay bool `json:"disable_trend_overlay,omitempty"`
}

// intensityRank maps an intensity label onto the ordinal scale low=1,
// medium=2, high=3. Anything unrecognized counts as medium.
func intensityRank(value string) int {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case IntensityLow:
		return 1
	case IntensityHigh:
		return 3
	default:
		return 2
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func overlapCount(values []string, set map[string]struct{}) int {
	count := 0
	for _, v := range values {
		if _, ok := set[v]; ok {
			count++
		}
	}
	return count
}

func containsTag(values []string, tag string) bool {
	for _, v := range values {
		if v == tag {
			return true
		}
	}
	return false
}
