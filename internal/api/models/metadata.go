package models

// EquipmentList is the closed equipment vocabulary exposed to clients.
type EquipmentList struct {
	Items []string `json:"items"`
}

// MovementMuscles describes one movement pattern's target muscles.
type MovementMuscles struct {
	// Movement is the pattern name (push/pull/legs/core).
	Movement string `json:"movement"`

	// Muscles is the full ordered target muscle list.
	Muscles []string `json:"muscles"`

	// Major lists the target muscles classified as major.
	Major []string `json:"major"`

	// Minor lists the target muscles classified as minor.
	Minor []string `json:"minor"`
}

// MuscleMap is the movement-pattern metadata response.
type MuscleMap struct {
	Movements []MovementMuscles `json:"movements"`
}
