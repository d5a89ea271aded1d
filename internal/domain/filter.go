package domain

// passesFilter applies the three hard gates. Each one is independently
// sufficient for exclusion; an exercise survives only if none fire.
func passesFilter(profile Profile, exercise Exercise) bool {
	// Equipment gate: skipped entirely when the profile lists no equipment.
	if len(profile.Equipment) > 0 {
		available := toSet(profile.Equipment)
		for _, required := range exercise.TagEquipment {
			if required == EquipmentNone {
				continue
			}
			if _, ok := available[required]; !ok {
				return false
			}
		}
	}

	// Contraindication gate: any overlap with the avoid list excludes.
	if len(profile.Avoid) > 0 && overlapCount(exercise.TagContra, toSet(profile.Avoid)) > 0 {
		return false
	}

	// Intensity gate: exercises above the user's level never surface.
	return intensityRank(exercise.TagIntensity) <= intensityRank(profile.Intensity)
}
