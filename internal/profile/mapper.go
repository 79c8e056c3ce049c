package profile

import (
	"strings"

	"github.com/fitadvisor/fitadvisor/internal/api/models"
	"github.com/fitadvisor/fitadvisor/internal/catalog"
)

// Defaults applied when optional request fields are absent.
const (
	DefaultWeightKg = 70.0
	DefaultHeightCm = 170.0
	DefaultAge      = 25
)

// VenueGym is the venue label that unlocks the full gym equipment set.
const VenueGym = "Gym"

// levelLabels maps classifier level labels to the 1..3 tier.
var levelLabels = map[string]int{
	"Beginner":     1,
	"Intermediate": 2,
	"Advanced":     3,
}

// FromRequest maps a raw recommendation request into a normalized Profile,
// applying documented defaults for absent fields.
func FromRequest(req *models.RecommendationRequest) Profile {
	weight := DefaultWeightKg
	if req.WeightKg != nil {
		weight = *req.WeightKg
	}
	height := DefaultHeightCm
	if req.HeightCm != nil {
		height = *req.HeightCm
	}
	age := DefaultAge
	if req.Age != nil {
		age = *req.Age
	}

	return Profile{
		FitnessLevel:       MapLevel(req.PredictedLevel),
		AvailableEquipment: availableEquipment(req.Venue, req.Tools),
		Goal:               MapGoal(req.Goal),
		Gender:             MapGender(req.Gender),
		Age:                age,
		BMI:                bmi(weight, height),
	}
}

// MapLevel maps a level label to the 1..3 tier, defaulting to 1 for
// unrecognized labels. Matching is case- and whitespace-insensitive.
func MapLevel(label string) int {
	normalized := titleWord(strings.TrimSpace(label))
	if level, ok := levelLabels[normalized]; ok {
		return level
	}
	return 1
}

// MapGoal maps the Vietnamese goal label to an engine goal,
// defaulting to gain_muscle.
func MapGoal(label string) string {
	switch label {
	case "Giảm cân", "Giảm mỡ":
		return GoalLoseFat
	case "Giữ dáng", "Sức khỏe chung":
		return GoalMaintain
	default:
		return GoalGainMuscle
	}
}

// MapGender maps the Vietnamese gender label: "Nam" is Male, anything else
// Female.
func MapGender(label string) string {
	if label == "Nam" {
		return GenderMale
	}
	return GenderFemale
}

// availableEquipment derives the equipment set from the venue policy: gym
// users get the full vocabulary minus Body Only (a gym is assumed fully
// equipped), home users get Body Only plus any declared tools that match
// the vocabulary after Title-casing. Unrecognized tools are dropped.
func availableEquipment(venue string, tools []string) []string {
	if venue == VenueGym {
		available := make([]string, 0, len(catalog.ValidEquipment)-1)
		for _, e := range catalog.ValidEquipment {
			if e != catalog.EquipmentBodyOnly {
				available = append(available, e)
			}
		}
		return available
	}

	available := []string{catalog.EquipmentBodyOnly}
	for _, tool := range tools {
		normalized := catalog.NormalizeEquipment(tool)
		if normalized != catalog.EquipmentBodyOnly && catalog.IsValidEquipment(normalized) {
			available = append(available, normalized)
		}
	}
	return available
}

// bmi computes weight_kg / (height_cm/100)^2, 0 when height is not positive.
func bmi(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	if heightM <= 0 {
		return 0
	}
	return weightKg / (heightM * heightM)
}

// titleWord uppercases the first rune and lowercases the rest, mirroring
// how the upstream labels are normalized before lookup.
func titleWord(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
