package recommend

import (
	"fmt"
	"strings"

	"github.com/fitadvisor/fitadvisor/internal/catalog"
	"github.com/fitadvisor/fitadvisor/internal/profile"
)

// Prescription is the sets/reps/load guidance attached to a selected
// exercise. Deterministic for a given (goal, level, gender, equipment).
type Prescription struct {
	Sets   int
	Reps   int
	Weight string
}

// basePresets is the goal×level prescription table.
var basePresets = map[string]map[int]Prescription{
	profile.GoalLoseFat: {
		1: {Sets: 3, Reps: 15, Weight: "40-50% 1 Rep Max"},
		2: {Sets: 4, Reps: 15, Weight: "50-60% 1 Rep Max"},
		3: {Sets: 5, Reps: 12, Weight: "60-70% 1 Rep Max"},
	},
	profile.GoalGainMuscle: {
		1: {Sets: 3, Reps: 12, Weight: "60% 1 Rep Max"},
		2: {Sets: 4, Reps: 10, Weight: "65-75% 1 Rep Max"},
		3: {Sets: 5, Reps: 8, Weight: "75-85% 1 Rep Max"},
	},
	profile.GoalMaintain: {
		1: {Sets: 3, Reps: 12, Weight: "50-60% 1 Rep Max"},
		2: {Sets: 3, Reps: 12, Weight: "60-70% 1 Rep Max"},
		3: {Sets: 4, Reps: 10, Weight: "65-75% 1 Rep Max"},
	},
}

// BodyweightLabel is the weight text for bodyweight exercises.
const BodyweightLabel = "Bodyweight"

// Prescribe returns the sets/reps/load prescription for a selected
// exercise. strength is an alias for gain_muscle; unrecognized goals use
// the gain_muscle table and out-of-range levels fall back to 1.
func Prescribe(goal string, level int, gender, equipment string) Prescription {
	if goal == "strength" {
		goal = profile.GoalGainMuscle
	}
	table, ok := basePresets[goal]
	if !ok {
		table = basePresets[profile.GoalGainMuscle]
	}
	p, ok := table[level]
	if !ok {
		p = table[1]
		level = 1
	}

	bodyweight := equipment == catalog.EquipmentBodyOnly
	if bodyweight {
		p.Weight = BodyweightLabel
		// More reps compensate for the fixed load, except for advanced
		// users.
		if level < 3 {
			p.Reps = int(float64(p.Reps) * 1.5)
		}
	}

	if gender == profile.GenderFemale && !bodyweight {
		if p.Sets > 1 {
			p.Sets--
		}
		// NOTE: preset weight texts spell out "1 Rep Max", so this literal
		// "1RM" match never fires for them. Upstream behaves the same way;
		// kept until product decides which spelling wins.
		if strings.Contains(p.Weight, "1RM") {
			if adjusted, ok := reduceWeightPercent(p.Weight); ok {
				p.Weight = adjusted
			}
		}
	}

	return p
}

// reduceWeightPercent parses the leading percentage of a weight text,
// subtracts 10 (floor 0) and reformats as "{value}% 1RM". ok is false when
// the text does not start with a parsable percentage.
func reduceWeightPercent(weight string) (string, bool) {
	head := strings.SplitN(weight, "%", 2)[0]
	head = strings.SplitN(head, "-", 2)[0]

	var value float64
	if _, err := fmt.Sscanf(strings.TrimSpace(head), "%f", &value); err != nil {
		return "", false
	}

	value -= 10
	if value < 0 {
		value = 0
	}
	return fmt.Sprintf("%.0f%% 1RM", value), true
}
