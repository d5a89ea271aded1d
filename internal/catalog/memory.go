package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"example.com/recommendation/internal/domain"
)

// Store keeps the catalog in memory. It is the default source for local
// development and the write target of the Kafka catalog consumer. Load
// order is insertion order, so repeated recommendations stay deterministic.
type Store struct {
	mu      sync.RWMutex
	entries map[string]domain.Exercise
	order   []string
}

// NewStore constructs an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[string]domain.Exercise)}
}

// NewSeededStore constructs a store populated with a small starter catalog.
func NewSeededStore() *Store {
	store := NewStore()
	for _, exercise := range seedCatalog() {
		store.Upsert(exercise)
	}
	return store
}

// Load returns a copy of the catalog in insertion order.
func (s *Store) Load(ctx context.Context) ([]domain.Exercise, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Exercise, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out, nil
}

// Upsert inserts or replaces an entry, assigning an ID when absent, and
// returns the stored entry.
func (s *Store) Upsert(exercise domain.Exercise) domain.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(exercise.ID) == "" {
		exercise.ID = uuid.NewString()
	}
	if _, exists := s.entries[exercise.ID]; !exists {
		s.order = append(s.order, exercise.ID)
	}
	s.entries[exercise.ID] = exercise
	return exercise
}

// Delete removes an entry by ID. Unknown IDs are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[id]; !exists {
		return
	}
	delete(s.entries, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func seedCatalog() []domain.Exercise {
	return []domain.Exercise{
		{
			ID:           "cat-camel",
			Name:         "Cat-Camel",
			Summary:      "Slow spinal flexion and extension on all fours.",
			TagGoal:      []string{"mobility"},
			TagArea:      []string{"thoracic", "lowback_core"},
			TagFeel:      []string{"stiff"},
			TagIntensity: domain.IntensityLow,
			TagEquipment: []string{domain.EquipmentNone},
			TagTimeCost:  domain.TimeCostShort,
			TagPattern:   []string{"spine"},
		},
		{
			ID:           "wall-slide",
			Name:         "Wall Slide",
			Summary:      "Forearms on the wall, slide overhead without shrugging.",
			TagGoal:      []string{"posture", "mobility"},
			TagArea:      []string{"shoulder", "thoracic"},
			TagFeel:      []string{"tight"},
			TagIntensity: domain.IntensityLow,
			TagEquipment: []string{domain.EquipmentNone},
			TagTimeCost:  domain.TimeCostShort,
			TagPattern:   []string{"press"},
		},
		{
			ID:           "dead-bug",
			Name:         "Dead Bug",
			Summary:      "Opposite arm and leg reach while bracing the trunk.",
			TagGoal:      []string{"stability"},
			TagArea:      []string{"lowback_core"},
			TagFeel:      []string{"weak"},
			TagIntensity: domain.IntensityMedium,
			TagEquipment: []string{domain.EquipmentNone},
			TagTimeCost:  domain.TimeCostShort,
			TagPattern:   []string{"anti-extension"},
		},
		{
			ID:           "goblet-squat",
			Name:         "Goblet Squat",
			Summary:      "Squat holding a weight at the chest.",
			TagGoal:      []string{"strength"},
			TagArea:      []string{"hip", "lowback_core"},
			TagIntensity: domain.IntensityMedium,
			TagEquipment: []string{"kettlebell"},
			TagTimeCost:  domain.TimeCostMedium,
			TagPattern:   []string{"squat"},
		},
		{
			ID:           "band-pull-apart",
			Name:         "Band Pull-Apart",
			Summary:      "Pull a light band apart at shoulder height.",
			TagGoal:      []string{"posture", "stability"},
			TagArea:      []string{"shoulder", "thoracic"},
			TagFeel:      []string{"tight"},
			TagIntensity: domain.IntensityLow,
			TagEquipment: []string{"band"},
			TagTimeCost:  domain.TimeCostShort,
			TagPattern:   []string{"pull"},
		},
		{
			ID:           "kb-swing",
			Name:         "Kettlebell Swing",
			Summary:      "Explosive hip hinge with a kettlebell.",
			TagGoal:      []string{"strength"},
			TagArea:      []string{"hip", "lowback_core"},
			TagIntensity: domain.IntensityHigh,
			TagEquipment: []string{"kettlebell"},
			TagContra:    []string{"lowback_pain"},
			TagTimeCost:  domain.TimeCostMedium,
			TagPattern:   []string{"hinge"},
		},
		{
			ID:           "couch-stretch",
			Name:         "Couch Stretch",
			Summary:      "Rear-foot-elevated hip flexor stretch.",
			TagGoal:      []string{"mobility"},
			TagArea:      []string{"hip"},
			TagFeel:      []string{"tight", "stiff"},
			TagIntensity: domain.IntensityLow,
			TagEquipment: []string{domain.EquipmentNone},
			TagContra:    []string{"knee_pain"},
			TagTimeCost:  domain.TimeCostShort,
			TagPattern:   []string{"lunge"},
		},
		{
			ID:           "farmer-carry",
			Name:         "Farmer Carry",
			Summary:      "Walk tall with heavy weights at the sides.",
			TagGoal:      []string{"strength", "stability", "trend"},
			TagArea:      []string{"lowback_core", "shoulder"},
			TagIntensity: domain.IntensityMedium,
			TagEquipment: []string{"kettlebell"},
			TagTimeCost:  domain.TimeCostMedium,
			TagPattern:   []string{"carry"},
		},
	}
}
