package catalog

import "testing"

func TestNormalizeBodyPart(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Pectorals", "chest"},
		{"quads", "quadriceps"},
		{"Deltoids", "shoulders"},
		{"abs", "abdominals"},
		{"abdominal", "abdominals"},
		{"Bicep", "biceps"},
		{"tricep", "triceps"},
		{"Gluteus", "glutes"},
		{"hamstring", "hamstrings"},
		{"calf", "calves"},
		{"forearm", "forearms"},
		{"trap", "traps"},
		{"Latissimus Dorsi", "lats"},
		{"Lower Back", "lower back"},
		{"neck", "neck"},
		// Unmapped labels pass through lowercased.
		{"Obliques", "obliques"},
		{"  Chest  ", "chest"},
	}

	for _, tt := range tests {
		if got := NormalizeBodyPart(tt.raw); got != tt.want {
			t.Errorf("NormalizeBodyPart(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeEquipment(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"barbell", "Barbell"},
		{"DUMBBELL", "Dumbbell"},
		{"e-z curl bar", "E-Z Curl Bar"},
		{"medicine ball", "Medicine Ball"},
		{"body only", "Body Only"},
		{"BODY ONLY", "Body Only"},
		{"None", "Body Only"},
		{"none", "Body Only"},
		{"NaN", "Body Only"},
		{"", "Body Only"},
	}

	for _, tt := range tests {
		if got := NormalizeEquipment(tt.raw); got != tt.want {
			t.Errorf("NormalizeEquipment(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"Beginner", 1},
		{"intermediate", 2},
		{"Expert", 3},
		{"ADVANCED", 3},
		{"", 1},
		{"unknown", 1},
	}

	for _, tt := range tests {
		if got := NormalizeLevel(tt.raw); got != tt.want {
			t.Errorf("NormalizeLevel(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

// Normalization must be idempotent: re-normalizing already-canonical values
// is a no-op.
func TestNormalizationIdempotent(t *testing.T) {
	for _, muscle := range []string{"chest", "quadriceps", "lats", "lower back"} {
		if got := NormalizeBodyPart(muscle); got != muscle {
			t.Errorf("NormalizeBodyPart(%q) = %q, not stable", muscle, got)
		}
	}
	for _, eq := range ValidEquipment {
		if got := NormalizeEquipment(eq); got != eq {
			t.Errorf("NormalizeEquipment(%q) = %q, not stable", eq, got)
		}
	}
}
