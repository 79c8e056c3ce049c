package recommend

import (
	"github.com/fitadvisor/fitadvisor/internal/catalog"
	"github.com/fitadvisor/fitadvisor/internal/profile"
)

// Sub-score weights.
const (
	muscleWeight     = 0.5
	difficultyWeight = 0.3
	equipmentWeight  = 0.2
)

// cautionAge is the age above which harder-than-level exercises are
// penalized twice as hard.
const cautionAge = 50

// Score computes the suitability of an exercise for a user against the
// target muscle set of the current movement pattern. Exercises scoring 0
// are excluded from selection.
func Score(ex catalog.Exercise, prof profile.Profile, available map[string]bool, targets map[string]bool) float64 {
	muscleMatch := 0.0
	if targets[ex.BodyPartClean] {
		muscleMatch = 1.0
	}

	// Harder exercises fall off at 0.5 per level, easier ones at 0.2:
	// overshooting the user's level is riskier than undershooting it.
	diff := ex.LevelScore - prof.FitnessLevel
	var difficultyFit float64
	if diff > 0 {
		difficultyFit = max(0, 1-float64(diff)*0.5)
		if prof.Age > cautionAge {
			difficultyFit *= 0.5
		}
	} else {
		difficultyFit = max(0, 1-float64(-diff)*0.2)
	}

	// Reward exercises that use gear the user actually has; bodyweight is
	// neutral; missing equipment zeroes the sub-score.
	var equipmentScore float64
	switch {
	case !ex.IsBodyweight() && available[ex.Equipment]:
		equipmentScore = 1.5
	case ex.IsBodyweight():
		equipmentScore = 1.0
	default:
		equipmentScore = 0.0
	}

	return muscleWeight*muscleMatch + difficultyWeight*difficultyFit + equipmentWeight*equipmentScore
}
