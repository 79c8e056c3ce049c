// Package catalog loads and normalizes the exercise catalog used by the
// recommendation engine.
package catalog

import (
	"context"
	"errors"
)

// Catalog errors.
var (
	// ErrNoRecords is returned when a source yields an empty catalog.
	ErrNoRecords = errors.New("source returned no exercise records")

	// ErrNoSources is returned when a loader has no usable source configured.
	ErrNoSources = errors.New("no catalog sources configured")
)

// Record is one raw exercise row as produced by a catalog source,
// before normalization.
type Record struct {
	// ID is the opaque exercise identifier.
	ID string

	// Title is the display name.
	Title string

	// BodyPart is the original muscle/category label.
	BodyPart string

	// Equipment is the original equipment label.
	Equipment string

	// Level is the original difficulty label.
	Level string

	// Rating is the catalog rating, nil if the source has none.
	Rating *float64
}

// Exercise is one normalized, immutable catalog entry.
type Exercise struct {
	// ID is the opaque exercise identifier.
	ID string

	// Title is the display name.
	Title string

	// BodyPartRaw is the original muscle label, preserved for output.
	BodyPartRaw string

	// BodyPartClean is the normalized muscle name.
	BodyPartClean string

	// Equipment is the Title-cased equipment label from the closed vocabulary.
	Equipment string

	// LevelRaw is the original difficulty label, preserved for output.
	LevelRaw string

	// LevelScore is the difficulty in {1,2,3}.
	LevelScore int

	// Rating is the catalog rating (10.0 when the source has none).
	Rating float64
}

// IsBodyweight reports whether the exercise requires no equipment.
func (e Exercise) IsBodyweight() bool {
	return e.Equipment == EquipmentBodyOnly
}

// Source produces one Record per exercise. Implementations: local CSV file,
// Postgres table, remote dataset.
type Source interface {
	// Name identifies the source in logs and diagnostics.
	Name() string

	// Fetch retrieves all exercise records.
	Fetch(ctx context.Context) ([]Record, error)
}
