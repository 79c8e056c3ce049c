package recommend

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/fitadvisor/fitadvisor/internal/api/models"
	"github.com/fitadvisor/fitadvisor/internal/catalog"
	"github.com/fitadvisor/fitadvisor/internal/profile"
)

// ServiceConfig holds configuration for the recommendation service.
type ServiceConfig struct {
	// Catalog is the shared exercise catalog store.
	Catalog *catalog.Store

	// Logger for recommendation diagnostics.
	Logger zerolog.Logger

	// Seed produces the seed for each request's random stream. Defaults
	// to the current time; tests inject a fixed seed.
	Seed func() int64
}

// Service builds workout recommendations from the catalog snapshot.
type Service struct {
	catalog *catalog.Store
	logger  zerolog.Logger
	seed    func() int64
}

// NewService creates a recommendation service.
func NewService(cfg ServiceConfig) *Service {
	seed := cfg.Seed
	if seed == nil {
		seed = func() int64 { return time.Now().UnixNano() }
	}
	return &Service{
		catalog: cfg.Catalog,
		logger:  cfg.Logger,
		seed:    seed,
	}
}

// Recommend selects and prescribes exercises for the given profile. An
// empty result is a legitimate outcome, not an error. Each call gets its
// own random stream, so concurrent requests never share RNG state.
func (s *Service) Recommend(_ context.Context, prof profile.Profile) []models.RecommendationItem {
	snapshot := s.catalog.Snapshot()
	available := prof.EquipmentSet()

	pool := snapshot.EquipmentPool(available)
	if len(pool) == 0 && !prof.HasBodyOnly() {
		// A fully-equipped profile that matches nothing (tiny or skewed
		// catalog) still deserves bodyweight work.
		pool = snapshot.ByEquipment(catalog.EquipmentBodyOnly)
	}
	if len(pool) == 0 {
		return nil
	}

	n := TargetCount(prof.Goal, prof.FitnessLevel)
	rng := rand.New(rand.NewSource(s.seed()))

	var items []models.RecommendationItem
	for _, movement := range MovementOrder {
		selected := selectForMovement(pool, prof, available, movement, n, rng)
		if len(selected) == 0 {
			continue
		}
		for _, c := range selected {
			p := Prescribe(prof.Goal, prof.FitnessLevel, prof.Gender, c.ex.Equipment)
			items = append(items, models.RecommendationItem{
				WorkoutID:            c.ex.ID,
				Movement:             movement,
				ExerciseName:         c.ex.Title,
				PrimaryMuscles:       c.ex.BodyPartRaw,
				Sets:                 p.Sets,
				Reps:                 p.Reps,
				WeightRecommendation: p.Weight,
				Difficulty:           c.ex.LevelRaw,
				Equipment:            c.ex.Equipment,
			})
		}
	}

	s.logger.Debug().
		Int("pool", len(pool)).
		Int("target_per_movement", n).
		Int("selected", len(items)).
		Str("goal", prof.Goal).
		Int("level", prof.FitnessLevel).
		Msg("recommendation computed")

	return items
}
