package catalog

import (
	"sync/atomic"
	"time"
)

// Snapshot is an immutable view of the normalized exercise catalog. All
// request handling reads from a snapshot; reloads build a fresh one and
// swap it in via Store, never mutate in place.
type Snapshot struct {
	// Exercises holds the normalized records in source order.
	Exercises []Exercise

	// Source names the catalog source that produced this snapshot.
	Source string

	// LoadedAt is when the snapshot was built.
	LoadedAt time.Time

	// Degraded is true when the snapshot came from the built-in sample
	// because every configured source failed.
	Degraded bool

	byBodyPart  map[string][]int
	byEquipment map[string][]int
}

// NewSnapshot normalizes raw records into a Snapshot, applying the drop and
// dedup rules: records missing a required field are dropped, and duplicate
// (title, body part) pairs keep the first occurrence.
func NewSnapshot(records []Record, source string, degraded bool) *Snapshot {
	s := &Snapshot{
		Source:      source,
		LoadedAt:    time.Now(),
		Degraded:    degraded,
		byBodyPart:  make(map[string][]int),
		byEquipment: make(map[string][]int),
	}

	seen := make(map[[2]string]bool, len(records))
	for _, rec := range records {
		ex, ok := normalizeRecord(rec)
		if !ok {
			continue
		}
		key := [2]string{ex.Title, ex.BodyPartRaw}
		if seen[key] {
			continue
		}
		seen[key] = true

		idx := len(s.Exercises)
		s.Exercises = append(s.Exercises, ex)
		s.byBodyPart[ex.BodyPartClean] = append(s.byBodyPart[ex.BodyPartClean], idx)
		s.byEquipment[ex.Equipment] = append(s.byEquipment[ex.Equipment], idx)
	}

	return s
}

// Len returns the number of exercises in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.Exercises)
}

// ByBodyPart returns the exercises whose normalized body part equals name,
// in catalog order.
func (s *Snapshot) ByBodyPart(name string) []Exercise {
	return s.collect(s.byBodyPart[name])
}

// ByEquipment returns the exercises using the given canonical equipment
// label, in catalog order.
func (s *Snapshot) ByEquipment(label string) []Exercise {
	return s.collect(s.byEquipment[label])
}

// EquipmentPool returns the exercises whose equipment is in the available
// set, in catalog order.
func (s *Snapshot) EquipmentPool(available map[string]bool) []Exercise {
	var pool []Exercise
	for _, ex := range s.Exercises {
		if available[ex.Equipment] {
			pool = append(pool, ex)
		}
	}
	return pool
}

func (s *Snapshot) collect(indices []int) []Exercise {
	if len(indices) == 0 {
		return nil
	}
	out := make([]Exercise, len(indices))
	for i, idx := range indices {
		out[i] = s.Exercises[idx]
	}
	return out
}

// Store holds the current catalog snapshot behind an atomic pointer.
// Readers never block; reloads swap in a complete replacement.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a Store holding the given initial snapshot.
func NewStore(initial *Snapshot) *Store {
	st := &Store{}
	st.current.Store(initial)
	return st
}

// Snapshot returns the current catalog snapshot.
func (st *Store) Snapshot() *Snapshot {
	return st.current.Load()
}

// Swap atomically replaces the current snapshot.
func (st *Store) Swap(s *Snapshot) {
	st.current.Store(s)
}
