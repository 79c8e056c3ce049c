package catalog

import (
	"strings"
	"unicode"
)

// EquipmentBodyOnly is the canonical label for bodyweight exercises.
const EquipmentBodyOnly = "Body Only"

// ValidEquipment is the closed equipment vocabulary, in canonical Title Case.
var ValidEquipment = []string{
	EquipmentBodyOnly,
	"Barbell",
	"Dumbbell",
	"Cable",
	"Machine",
	"Kettlebell",
	"Bands",
	"E-Z Curl Bar",
	"Medicine Ball",
	"Exercise Ball",
	"Foam Roll",
}

// IsValidEquipment reports whether label is in the closed equipment vocabulary.
func IsValidEquipment(label string) bool {
	for _, e := range ValidEquipment {
		if e == label {
			return true
		}
	}
	return false
}

// bodyPartSynonyms maps catalog muscle labels to canonical muscle names.
// Unmapped labels pass through lowercased.
var bodyPartSynonyms = map[string]string{
	"pectorals":        "chest",
	"quads":            "quadriceps",
	"deltoids":         "shoulders",
	"abs":              "abdominals",
	"abdominal":        "abdominals",
	"bicep":            "biceps",
	"tricep":           "triceps",
	"gluteus":          "glutes",
	"hamstring":        "hamstrings",
	"calf":             "calves",
	"forearm":          "forearms",
	"trap":             "traps",
	"latissimus dorsi": "lats",
	"lower back":       "lower back",
	"middle back":      "middle back",
	"neck":             "neck",
	"adductors":        "adductors",
	"abductors":        "abductors",
}

// difficultyScores maps difficulty labels to the 1..3 level scale.
var difficultyScores = map[string]int{
	"beginner":     1,
	"intermediate": 2,
	"expert":       3,
	"advanced":     3,
}

// NormalizeBodyPart maps a raw muscle label to its canonical name.
// Unrecognized labels pass through lowercased.
func NormalizeBodyPart(raw string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := bodyPartSynonyms[lower]; ok {
		return canonical
	}
	return lower
}

// NormalizeEquipment maps a raw equipment label to Title Case, collapsing
// empty, "None" and "Nan" values (and any casing of "body only") to the
// canonical Body Only label.
func NormalizeEquipment(raw string) string {
	titled := titleCase(strings.TrimSpace(raw))
	switch titled {
	case "", "None", "Nan":
		return EquipmentBodyOnly
	}
	if strings.EqualFold(titled, EquipmentBodyOnly) {
		return EquipmentBodyOnly
	}
	return titled
}

// NormalizeLevel maps a difficulty label to its integer score, defaulting
// to 1 for unrecognized or missing labels.
func NormalizeLevel(raw string) int {
	if score, ok := difficultyScores[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return score
	}
	return 1
}

// titleCase uppercases the first letter of every word and lowercases the
// rest, treating any non-letter as a word boundary ("e-z curl bar" becomes
// "E-Z Curl Bar").
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// defaultRating is used when a source carries no rating column.
const defaultRating = 10.0

// normalizeRecord converts a raw Record into an Exercise. ok is false when
// a required field is missing and the record must be dropped.
func normalizeRecord(rec Record) (Exercise, bool) {
	if strings.TrimSpace(rec.Title) == "" ||
		strings.TrimSpace(rec.BodyPart) == "" ||
		strings.TrimSpace(rec.Equipment) == "" ||
		strings.TrimSpace(rec.Level) == "" {
		return Exercise{}, false
	}

	rating := defaultRating
	if rec.Rating != nil {
		rating = *rec.Rating
	}

	return Exercise{
		ID:            rec.ID,
		Title:         rec.Title,
		BodyPartRaw:   rec.BodyPart,
		BodyPartClean: NormalizeBodyPart(rec.BodyPart),
		Equipment:     NormalizeEquipment(rec.Equipment),
		LevelRaw:      rec.Level,
		LevelScore:    NormalizeLevel(rec.Level),
		Rating:        rating,
	}, true
}
