package profile_test

import (
	"math"
	"testing"

	"github.com/fitadvisor/fitadvisor/internal/api/models"
	"github.com/fitadvisor/fitadvisor/internal/catalog"
	"github.com/fitadvisor/fitadvisor/internal/profile"
)

func TestMapLevel(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"Beginner", 1},
		{"beginner", 1},
		{"  INTERMEDIATE  ", 2},
		{"Advanced", 3},
		{"Expert", 1}, // not a classifier label
		{"", 1},
	}

	for _, tt := range tests {
		if got := profile.MapLevel(tt.label); got != tt.want {
			t.Errorf("MapLevel(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}

func TestMapGoal(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Giảm cân", profile.GoalLoseFat},
		{"Giảm mỡ", profile.GoalLoseFat},
		{"Giữ dáng", profile.GoalMaintain},
		{"Sức khỏe chung", profile.GoalMaintain},
		{"Tăng cơ", profile.GoalGainMuscle},
		{"", profile.GoalGainMuscle},
		{"anything else", profile.GoalGainMuscle},
	}

	for _, tt := range tests {
		if got := profile.MapGoal(tt.label); got != tt.want {
			t.Errorf("MapGoal(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestMapGender(t *testing.T) {
	if got := profile.MapGender("Nam"); got != profile.GenderMale {
		t.Errorf("MapGender(Nam) = %q, want Male", got)
	}
	for _, label := range []string{"Nữ", "nam", ""} {
		if got := profile.MapGender(label); got != profile.GenderFemale {
			t.Errorf("MapGender(%q) = %q, want Female", label, got)
		}
	}
}

func TestFromRequest_GymEquipment(t *testing.T) {
	p := profile.FromRequest(&models.RecommendationRequest{
		PredictedLevel: "Intermediate",
		Venue:          "Gym",
		Tools:          []string{"Dumbbell"}, // ignored for gym users
		Gender:         "Nam",
	})

	if p.HasBodyOnly() {
		t.Error("gym profile must not include Body Only")
	}
	if len(p.AvailableEquipment) != len(catalog.ValidEquipment)-1 {
		t.Errorf("expected full gym set, got %d labels", len(p.AvailableEquipment))
	}
}

func TestFromRequest_HomeEquipment(t *testing.T) {
	p := profile.FromRequest(&models.RecommendationRequest{
		Venue: "Home",
		Tools: []string{"dumbbell", "kettlebell", "treadmill"},
	})

	want := []string{"Body Only", "Dumbbell", "Kettlebell"}
	if len(p.AvailableEquipment) != len(want) {
		t.Fatalf("expected %v, got %v", want, p.AvailableEquipment)
	}
	for i, e := range want {
		if p.AvailableEquipment[i] != e {
			t.Errorf("equipment[%d] = %q, want %q", i, p.AvailableEquipment[i], e)
		}
	}
}

func TestFromRequest_HomeNoTools(t *testing.T) {
	p := profile.FromRequest(&models.RecommendationRequest{Venue: "Home"})

	if len(p.AvailableEquipment) != 1 || p.AvailableEquipment[0] != "Body Only" {
		t.Fatalf("expected exactly {Body Only}, got %v", p.AvailableEquipment)
	}
}

func TestFromRequest_Defaults(t *testing.T) {
	p := profile.FromRequest(&models.RecommendationRequest{})

	if p.FitnessLevel != 1 {
		t.Errorf("expected default level 1, got %d", p.FitnessLevel)
	}
	if p.Goal != profile.GoalGainMuscle {
		t.Errorf("expected default goal gain_muscle, got %q", p.Goal)
	}
	if p.Gender != profile.GenderFemale {
		t.Errorf("expected default gender Female, got %q", p.Gender)
	}
	if p.Age != 25 {
		t.Errorf("expected default age 25, got %d", p.Age)
	}
	// 70kg at 1.70m.
	if math.Abs(p.BMI-24.221) > 0.01 {
		t.Errorf("expected BMI ~24.22, got %f", p.BMI)
	}
}

func TestFromRequest_ZeroHeight(t *testing.T) {
	zero := 0.0
	p := profile.FromRequest(&models.RecommendationRequest{HeightCm: &zero})
	if p.BMI != 0 {
		t.Errorf("expected BMI 0 for zero height, got %f", p.BMI)
	}
}
