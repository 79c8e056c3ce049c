package catalog

// SampleSource names the built-in fallback catalog in logs and diagnostics.
const SampleSource = "builtin-sample"

// sampleRecords is the built-in fallback catalog used when every configured
// source fails. Keeping a small chest/quadriceps spread across equipment
// types keeps the engine operational in degraded mode.
func sampleRecords() []Record {
	rating := func(v float64) *float64 { return &v }
	return []Record{
		{ID: "1", Title: "Push Up", BodyPart: "Chest", Equipment: "Body Only", Level: "Beginner", Rating: rating(9.0)},
		{ID: "2", Title: "Bench Press", BodyPart: "Chest", Equipment: "Barbell", Level: "Intermediate", Rating: rating(9.5)},
		{ID: "3", Title: "Dumbbell Press", BodyPart: "Chest", Equipment: "Dumbbell", Level: "Intermediate", Rating: rating(9.2)},
		{ID: "4", Title: "Machine Press", BodyPart: "Chest", Equipment: "Machine", Level: "Beginner", Rating: rating(8.5)},
		{ID: "5", Title: "Squat", BodyPart: "Quadriceps", Equipment: "Barbell", Level: "Intermediate", Rating: rating(9.5)},
		{ID: "6", Title: "Goblet Squat", BodyPart: "Quadriceps", Equipment: "Dumbbell", Level: "Beginner", Rating: rating(9.0)},
		{ID: "7", Title: "Bodyweight Squat", BodyPart: "Quadriceps", Equipment: "Body Only", Level: "Beginner", Rating: rating(8.0)},
	}
}

// SampleSnapshot builds the degraded-mode snapshot from the built-in sample.
func SampleSnapshot() *Snapshot {
	return NewSnapshot(sampleRecords(), SampleSource, true)
}
