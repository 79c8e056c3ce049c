package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FileSource reads exercise records from a local CSV file.
type FileSource struct {
	// Path to the CSV file.
	Path string
}

// Name implements Source.
func (s *FileSource) Name() string {
	return "csv:" + s.Path
}

// Fetch implements Source.
func (s *FileSource) Fetch(_ context.Context) ([]Record, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog file: %w", err)
	}
	defer f.Close()

	records, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.Path, err)
	}
	return records, nil
}

// csvColumns maps the header names accepted per field. The upstream dataset
// ships workout_id/name/category/level/equipment headers; the built-in
// sample and older exports use ID/Title/BodyPart/Level/Equipment.
var csvColumns = map[string][]string{
	"id":        {"workout_id", "id"},
	"title":     {"name", "title"},
	"body_part": {"category", "bodypart", "body_part"},
	"equipment": {"equipment"},
	"level":     {"level"},
	"rating":    {"rating"},
}

// ParseCSV reads exercise records from CSV data with a header row.
func ParseCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(csvColumns))
	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		for field, aliases := range csvColumns {
			if _, taken := index[field]; taken {
				continue
			}
			for _, alias := range aliases {
				if name == alias {
					index[field] = i
				}
			}
		}
	}
	for _, required := range []string{"title", "body_part", "equipment", "level"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		rec := Record{
			ID:        cell(row, index, "id"),
			Title:     cell(row, index, "title"),
			BodyPart:  cell(row, index, "body_part"),
			Equipment: cell(row, index, "equipment"),
			Level:     cell(row, index, "level"),
		}
		if raw := cell(row, index, "rating"); raw != "" {
			if rating, err := strconv.ParseFloat(raw, 64); err == nil {
				rec.Rating = &rating
			}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	return records, nil
}

func cell(row []string, index map[string]int, field string) string {
	i, ok := index[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
