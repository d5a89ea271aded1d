// Package testhelpers provides catalog fixtures shared across test packages.
package testhelpers

import "example.com/recommendation/internal/domain"

// SampleCatalog returns a fixed catalog exercising every pipeline rule:
// overlapping patterns, equipment requirements, contraindications, a trend
// entry and a high-intensity entry.
func SampleCatalog() []domain.Exercise {
	return []domain.Exercise{
		{
			ID:           "shoulder-circles",
			Name:         "Shoulder Circles",
			TagGoal:      []string{"mobility"},
			TagArea:      []string{"shoulder"},
			TagFeel:      []string{"stiff"},
			TagIntensity: domain.IntensityLow,
			TagEquipment: []string{domain.EquipmentNone},
			TagTimeCost:  domain.TimeCostShort,
			TagPattern:   []string{"press"},
		},
		{
			ID:           "wall-press",
			Name:         "Wall Press",
			TagGoal:      []string{"strength"},
			TagArea:      []string{"shoulder"},
			TagIntensity: domain.IntensityLow,
			TagEquipment: []string{domain.EquipmentNone},
			TagTimeCost:  domain.TimeCostShort,
			TagPattern:   []string{"press"},
		},
		{
			ID:           "incline-push-up",
			Name:         "Incline Push-Up",
			TagGoal:      []string{"strength"},
			TagArea:      []string{"shoulder"},
			TagIntensity: domain.IntensityMedium,
			TagEquipment: []string{domain.EquipmentNone},
			TagTimeCost:  domain.TimeCostShort,
			TagPattern:   []string{"press"},
		},
		{
			ID:           "hip-hinge-drill",
			Name:         "Hip Hinge Drill",
			TagGoal:      []string{"mobility"},
			TagArea:      []string{"hip"},
			TagIntensity: domain.IntensityLow,
			TagEquipment: []string{domain.EquipmentNone},
			TagTimeCost:  domain.TimeCostShort,
			TagPattern:   []string{"hinge"},
		},
		{
			ID:           "row-band",
			Name:         "Band Row",
			TagGoal:      []string{"strength", "posture"},
			TagArea:      []string{"thoracic"},
			TagIntensity: domain.IntensityMedium,
			TagEquipment: []string{"band"},
			TagTimeCost:  domain.TimeCostMedium,
			TagPattern:   []string{"pull"},
		},
		{
			ID:           "heavy-swing",
			Name:         "Heavy Swing",
			TagGoal:      []string{"strength"},
			TagArea:      []string{"hip"},
			TagIntensity: domain.IntensityHigh,
			TagEquipment: []string{"kettlebell"},
			TagContra:    []string{"lowback_pain"},
			TagTimeCost:  domain.TimeCostMedium,
			TagPattern:   []string{"hinge"},
		},
		{
			ID:           "loaded-carry",
			Name:         "Loaded Carry",
			TagGoal:      []string{"trend", "stability"},
			TagArea:      []string{"lowback_core"},
			TagIntensity: domain.IntensityMedium,
			TagEquipment: []string{"kettlebell"},
			TagTimeCost:  domain.TimeCostMedium,
			TagPattern:   []string{"carry"},
		},
		{
			ID:          "untagged-walk",
			Name:        "Easy Walk",
			TagTimeCost: domain.TimeCostMedium,
		},
	}
}
