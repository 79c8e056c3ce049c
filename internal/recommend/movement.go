// Package recommend implements the exercise-selection engine: per-movement
// filtering, scoring, quota-based sampling and prescription.
package recommend

import "github.com/fitadvisor/fitadvisor/internal/profile"

// Movement pattern names, in output order.
const (
	MovementPush = "push"
	MovementPull = "pull"
	MovementLegs = "legs"
	MovementCore = "core"
)

// MovementOrder fixes the order patterns appear in the result.
var MovementOrder = []string{MovementPush, MovementPull, MovementLegs, MovementCore}

// movementMuscles maps each movement pattern to its ordered target muscles.
var movementMuscles = map[string][]string{
	MovementPush: {"chest", "shoulders", "triceps"},
	MovementPull: {"biceps", "lats", "middle back", "traps", "forearms"},
	MovementLegs: {"quadriceps", "hamstrings", "glutes", "calves", "adductors", "abductors"},
	MovementCore: {"abdominals", "lower back"},
}

// majorMuscles classifies muscle groups that get proportionally more
// selection slots.
var majorMuscles = map[string]bool{
	"chest":       true,
	"shoulders":   true,
	"lats":        true,
	"middle back": true,
	"traps":       true,
	"quadriceps":  true,
	"glutes":      true,
	"abdominals":  true,
	"lower back":  true,
}

// minorMuscles classifies accessory muscle groups.
var minorMuscles = map[string]bool{
	"triceps":    true,
	"biceps":     true,
	"forearms":   true,
	"calves":     true,
	"adductors":  true,
	"abductors":  true,
	"hamstrings": true,
}

// MovementMuscles returns the ordered target muscles for a movement pattern.
func MovementMuscles(movement string) []string {
	return movementMuscles[movement]
}

// IsMajorMuscle reports whether muscle is classified as major.
func IsMajorMuscle(muscle string) bool {
	return majorMuscles[muscle]
}

// IsMinorMuscle reports whether muscle is classified as minor.
func IsMinorMuscle(muscle string) bool {
	return minorMuscles[muscle]
}

// targetCounts is the per-movement exercise count N, keyed by goal then
// fitness level.
var targetCounts = map[string]map[int]int{
	profile.GoalLoseFat:    {1: 4, 2: 5, 3: 6},
	profile.GoalGainMuscle: {1: 5, 2: 5, 3: 6},
	profile.GoalMaintain:   {1: 4, 2: 5, 3: 5},
}

// TargetCount returns the per-movement exercise count for a goal and level.
// Unknown goals use the maintain table; unknown levels default to 4.
func TargetCount(goal string, level int) int {
	table, ok := targetCounts[goal]
	if !ok {
		table = targetCounts[profile.GoalMaintain]
	}
	if n, ok := table[level]; ok {
		return n
	}
	return 4
}
