package domain

// Scoring weights. Terms whose profile field is empty contribute zero.
const (
	goalWeight      = 3.0
	areaWeight      = 2.0
	feelWeight      = 2.0
	timeCostBonus   = 1.0
	equipmentWeight = 1.0
	synergyBonus    = 0.5
	patternNudge    = 0.1
)

// Body areas that trigger the strength/posture synergy bonus.
var synergyAreas = map[string]struct{}{
	"shoulder":     {},
	"thoracic":     {},
	"lowback_core": {},
}

// scoreExercise computes the additive relevance score for one filtered
// exercise. Deterministic; ties are left to the stable sort.
func scoreExercise(profile Profile, exercise Exercise) float64 {
	score := goalScore(profile, exercise)
	score += areaScore(profile, exercise)
	score += feelScore(profile, exercise)
	score += timeCostScore(profile, exercise)
	score += equipmentScore(profile, exercise)
	score += strengthPostureSynergy(profile, exercise)
	if len(exercise.TagPattern) > 0 {
		score += patternNudge
	}
	return score
}

func goalScore(profile Profile, exercise Exercise) float64 {
	if len(profile.Goals) == 0 {
		return 0
	}
	return goalWeight * float64(overlapCount(exercise.TagGoal, toSet(profile.Goals)))
}

func areaScore(profile Profile, exercise Exercise) float64 {
	if len(profile.Areas) == 0 {
		return 0
	}
	return areaWeight * float64(overlapCount(exercise.TagArea, toSet(profile.Areas)))
}

func feelScore(profile Profile, exercise Exercise) float64 {
	if len(profile.Feels) == 0 {
		return 0
	}
	return feelWeight * float64(overlapCount(exercise.TagFeel, toSet(profile.Feels)))
}

// timeCostScore rewards an exact match against the time-cost label implied
// by the session length: short for sessions up to 12 minutes, medium beyond.
func timeCostScore(profile Profile, exercise Exercise) float64 {
	if profile.TimeMinutes <= 0 {
		return 0
	}
	desired := TimeCostMedium
	if profile.TimeMinutes <= 12 {
		desired = TimeCostShort
	}
	if exercise.TagTimeCost == desired {
		return timeCostBonus
	}
	return 0
}

// equipmentScore is a soft preference for exercises that use equipment the
// user actually has, independent of the hard equipment gate.
func equipmentScore(profile Profile, exercise Exercise) float64 {
	if len(profile.Equipment) == 0 {
		return 0
	}
	return equipmentWeight * float64(overlapCount(exercise.TagEquipment, toSet(profile.Equipment)))
}

// strengthPostureSynergy nudges stability/posture work for users chasing
// strength in the shoulder, thoracic or lower-back regions.
func strengthPostureSynergy(profile Profile, exercise Exercise) float64 {
	if !containsTag(profile.Goals, "strength") {
		return 0
	}
	if overlapCount(profile.Areas, synergyAreas) == 0 {
		return 0
	}
	if containsTag(exercise.TagGoal, "stability") || containsTag(exercise.TagGoal, "posture") {
		return synergyBonus
	}
	return 0
}
