package models

// RecommendationRequest is the workout recommendation request body. The
// field names are the upstream mobile client's contract and must be kept
// bit-exact for compatibility.
type RecommendationRequest struct {
	// PredictedLevel is the classifier's level label
	// (Beginner/Intermediate/Advanced, case-insensitive).
	PredictedLevel string `json:"predicted_level"`

	// Venue is the workout venue: "Gym", anything else is treated as Home.
	Venue string `json:"loai_hinh_tap_luyen"`

	// Tools is the user-declared equipment list (home workouts only).
	Tools []string `json:"danh_sach_dung_cu"`

	// Goal is the primary goal label (Vietnamese vocabulary).
	Goal string `json:"muc_tieu_chinh"`

	// Gender is the gender label: "Nam" is male, anything else female.
	Gender string `json:"gioi_tinh"`

	// WeightKg is the body weight in kilograms (default 70 if absent).
	WeightKg *float64 `json:"can_nang_co_the"`

	// HeightCm is the height in centimeters (default 170 if absent).
	HeightCm *float64 `json:"chieu_cao"`

	// Age in years (default 25 if absent).
	Age *int `json:"tuoi"`
}

// RecommendationItem is one prescribed exercise in a workout plan.
type RecommendationItem struct {
	WorkoutID            string `json:"workout_id"`
	Movement             string `json:"movement"`
	ExerciseName         string `json:"exercise_name"`
	PrimaryMuscles       string `json:"primary_muscles"`
	Sets                 int    `json:"sets"`
	Reps                 int    `json:"reps"`
	WeightRecommendation string `json:"weight_recommendation"`
	Difficulty           string `json:"difficulty"`
	Equipment            string `json:"equipment"`
}

// RecommendationResponse is the workout recommendation response body.
type RecommendationResponse struct {
	Message string               `json:"message"`
	Count   int                  `json:"count,omitempty"`
	Data    []RecommendationItem `json:"data"`
}

// Recommendation response messages (upstream contract).
const (
	RecommendationSuccessMessage = "Success"
	RecommendationEmptyMessage   = "Không tìm thấy bài tập phù hợp."
)
