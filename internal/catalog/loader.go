package catalog

import (
	"context"

	"github.com/rs/zerolog"
)

// LoaderConfig holds configuration for the catalog loader.
type LoaderConfig struct {
	// Sources are tried in order; the first that yields records wins.
	Sources []Source

	// Logger for load and reload diagnostics.
	Logger zerolog.Logger
}

// Loader builds catalog snapshots from configured sources and keeps the
// current one in a Store. When every source fails it falls back to the
// built-in sample catalog so the service stays operational, and says so
// loudly in the logs.
type Loader struct {
	sources []Source
	logger  zerolog.Logger
	store   *Store
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(ctx context.Context, cfg LoaderConfig) *Loader {
	l := &Loader{
		sources: cfg.Sources,
		logger:  cfg.Logger,
	}
	l.store = NewStore(l.build(ctx))
	return l
}

// Store returns the snapshot store shared with the recommendation engine.
func (l *Loader) Store() *Store {
	return l.store
}

// Snapshot returns the current catalog snapshot.
func (l *Loader) Snapshot() *Snapshot {
	return l.store.Snapshot()
}

// Reload builds a fresh snapshot and atomically swaps it in. The previous
// snapshot keeps serving in-flight requests until they finish.
func (l *Loader) Reload(ctx context.Context) *Snapshot {
	snapshot := l.build(ctx)
	l.store.Swap(snapshot)
	l.logger.Info().
		Str("source", snapshot.Source).
		Int("exercises", snapshot.Len()).
		Bool("degraded", snapshot.Degraded).
		Msg("catalog snapshot swapped")
	return snapshot
}

func (l *Loader) build(ctx context.Context) *Snapshot {
	for _, src := range l.sources {
		records, err := src.Fetch(ctx)
		if err != nil {
			l.logger.Warn().
				Err(err).
				Str("source", src.Name()).
				Msg("catalog source failed")
			continue
		}
		if len(records) == 0 {
			l.logger.Warn().
				Str("source", src.Name()).
				Msg("catalog source returned no records")
			continue
		}

		snapshot := NewSnapshot(records, src.Name(), false)
		if snapshot.Len() == 0 {
			l.logger.Warn().
				Str("source", src.Name()).
				Int("raw_records", len(records)).
				Msg("catalog source records all dropped during normalization")
			continue
		}

		l.logger.Info().
			Str("source", src.Name()).
			Int("raw_records", len(records)).
			Int("exercises", snapshot.Len()).
			Msg("catalog loaded")
		return snapshot
	}

	l.logger.Error().
		Int("sources_tried", len(l.sources)).
		Msg("all catalog sources failed, using built-in sample catalog")
	return SampleSnapshot()
}
