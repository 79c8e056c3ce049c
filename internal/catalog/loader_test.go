package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type stubSource struct {
	name    string
	records []Record
	err     error
	calls   int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(_ context.Context) ([]Record, error) {
	s.calls++
	return s.records, s.err
}

func TestLoader_FirstHealthySourceWins(t *testing.T) {
	broken := &stubSource{name: "broken", err: errors.New("connection refused")}
	healthy := &stubSource{name: "healthy", records: []Record{
		{ID: "1", Title: "Push Up", BodyPart: "Chest", Equipment: "Body Only", Level: "Beginner"},
	}}
	unreached := &stubSource{name: "unreached", records: sampleRecords()}

	loader := NewLoader(context.Background(), LoaderConfig{
		Sources: []Source{broken, healthy, unreached},
		Logger:  zerolog.Nop(),
	})

	s := loader.Snapshot()
	if s.Source != "healthy" {
		t.Fatalf("expected healthy source, got %q", s.Source)
	}
	if s.Degraded {
		t.Error("snapshot from a real source must not be degraded")
	}
	if unreached.calls != 0 {
		t.Error("later sources should not be tried after a success")
	}
}

func TestLoader_FallsBackToSample(t *testing.T) {
	broken := &stubSource{name: "broken", err: errors.New("no such file")}

	loader := NewLoader(context.Background(), LoaderConfig{
		Sources: []Source{broken},
		Logger:  zerolog.Nop(),
	})

	s := loader.Snapshot()
	if !s.Degraded {
		t.Fatal("expected degraded snapshot")
	}
	if s.Source != SampleSource {
		t.Fatalf("expected %s source, got %q", SampleSource, s.Source)
	}
	if s.Len() != 7 {
		t.Fatalf("expected 7 sample exercises, got %d", s.Len())
	}
}

func TestLoader_Reload(t *testing.T) {
	src := &stubSource{name: "flaky", err: errors.New("down")}
	loader := NewLoader(context.Background(), LoaderConfig{
		Sources: []Source{src},
		Logger:  zerolog.Nop(),
	})
	if !loader.Snapshot().Degraded {
		t.Fatal("expected initial load to degrade")
	}

	// Source recovers; reload swaps in the real catalog.
	src.err = nil
	src.records = sampleRecords()
	loader.Reload(context.Background())

	s := loader.Snapshot()
	if s.Degraded {
		t.Fatal("expected reload to clear degraded mode")
	}
	if s.Source != "flaky" {
		t.Fatalf("expected flaky source, got %q", s.Source)
	}
}

func TestParseCSV(t *testing.T) {
	data := `workout_id,name,category,equipment,level,rating
10,Pull Up,Lats,Body Only,Intermediate,9.1
11,Barbell Row,Middle Back,Barbell,Intermediate,
`
	records, err := ParseCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != "10" || records[0].Title != "Pull Up" {
		t.Errorf("unexpected first record: %+v", records[0])
	}
	if records[0].Rating == nil || *records[0].Rating != 9.1 {
		t.Errorf("expected rating 9.1, got %v", records[0].Rating)
	}
	if records[1].Rating != nil {
		t.Errorf("expected nil rating for empty cell, got %v", *records[1].Rating)
	}
}

func TestParseCSV_MissingColumn(t *testing.T) {
	data := "workout_id,name,equipment,level\n1,Push Up,Body Only,Beginner\n"
	if _, err := ParseCSV(strings.NewReader(data)); err == nil {
		t.Fatal("expected error for missing category column")
	}
}
