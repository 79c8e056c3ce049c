// Package profile maps raw recommendation requests into normalized user
// profiles consumed by the recommendation engine.
package profile

// Goal labels used by the engine.
const (
	GoalLoseFat    = "lose_fat"
	GoalGainMuscle = "gain_muscle"
	GoalMaintain   = "maintain"
)

// Gender labels used by the engine.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Profile is a normalized user profile, derived per request and never
// persisted.
type Profile struct {
	// FitnessLevel is the user's level tier, 1 (beginner) to 3 (advanced).
	FitnessLevel int

	// AvailableEquipment is the policy-derived set of equipment labels.
	// Order follows the closed vocabulary for gym users; home users get
	// Body Only first, then their declared tools.
	AvailableEquipment []string

	// Goal is lose_fat, gain_muscle or maintain.
	Goal string

	// Gender is Male or Female.
	Gender string

	// Age in years.
	Age int

	// BMI is derived from weight and height. Informational only; the
	// scorer does not consume it yet.
	BMI float64
}

// EquipmentSet returns the available equipment as a lookup set.
func (p Profile) EquipmentSet() map[string]bool {
	set := make(map[string]bool, len(p.AvailableEquipment))
	for _, e := range p.AvailableEquipment {
		set[e] = true
	}
	return set
}

// HasBodyOnly reports whether bodyweight training is in the available set.
func (p Profile) HasBodyOnly() bool {
	for _, e := range p.AvailableEquipment {
		if e == "Body Only" {
			return true
		}
	}
	return false
}
