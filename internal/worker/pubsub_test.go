package worker

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/fitadvisor/fitadvisor/internal/catalog"
)

// stubReloader returns canned snapshots and records reload calls.
type stubReloader struct {
	snapshot *catalog.Snapshot
	reloads  int
}

func (s *stubReloader) Reload(_ context.Context) *catalog.Snapshot {
	s.reloads++
	return s.snapshot
}

func (s *stubReloader) Snapshot() *catalog.Snapshot {
	return s.snapshot
}

func healthySnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()

	rating := 9.0
	snap := catalog.NewSnapshot([]catalog.Record{
		{ID: "1", Title: "Bench Press", BodyPart: "Chest", Equipment: "Barbell", Level: "Intermediate", Rating: &rating},
	}, "test", false)
	assert.Equal(t, 1, snap.Len())
	return snap
}

func newTestListener(loader Reloader) *ReloadListener {
	return &ReloadListener{
		loader: loader,
		logger: zerolog.Nop(),
	}
}

func TestRunJob_CatalogReload(t *testing.T) {
	reloader := &stubReloader{snapshot: healthySnapshot(t)}
	l := newTestListener(reloader)

	err := l.runJob(context.Background(), JobCatalogReload, zerolog.Nop())

	assert.NoError(t, err)
	assert.Equal(t, 1, reloader.reloads)
}

func TestRunJob_CatalogReloadDegraded(t *testing.T) {
	reloader := &stubReloader{snapshot: catalog.SampleSnapshot()}
	l := newTestListener(reloader)

	err := l.runJob(context.Background(), JobCatalogReload, zerolog.Nop())

	assert.Error(t, err)
	assert.Equal(t, 1, reloader.reloads)
}

func TestRunJob_HealthCheck(t *testing.T) {
	reloader := &stubReloader{snapshot: healthySnapshot(t)}
	l := newTestListener(reloader)

	err := l.runJob(context.Background(), JobHealthCheck, zerolog.Nop())

	assert.NoError(t, err)
	assert.Zero(t, reloader.reloads)
}

func TestRunJob_HealthCheckEmptyCatalog(t *testing.T) {
	reloader := &stubReloader{snapshot: catalog.NewSnapshot(nil, "test", false)}
	l := newTestListener(reloader)

	err := l.runJob(context.Background(), JobHealthCheck, zerolog.Nop())

	assert.Error(t, err)
}

func TestRunJob_UnknownJobTypeAcks(t *testing.T) {
	reloader := &stubReloader{snapshot: healthySnapshot(t)}
	l := newTestListener(reloader)

	err := l.runJob(context.Background(), "unrelated_job", zerolog.Nop())

	assert.NoError(t, err)
	assert.Zero(t, reloader.reloads)
}
