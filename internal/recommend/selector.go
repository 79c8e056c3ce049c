package recommend

import (
	"math"
	"math/rand"
	"sort"

	"github.com/fitadvisor/fitadvisor/internal/catalog"
	"github.com/fitadvisor/fitadvisor/internal/profile"
)

// majorShare is the fraction of a movement's slots reserved for major
// muscles before rounding.
const majorShare = 0.8

// candidate is a scored exercise under consideration for one movement.
type candidate struct {
	ex    catalog.Exercise
	score float64
}

// selectForMovement picks up to N exercises for one movement pattern from
// the equipment-filtered pool. Selection is quota-based per major muscle,
// then minors, then an any-muscle fallback, each stage sampling uniformly
// from the top-2×quota score prefix for run-to-run variety.
func selectForMovement(pool []catalog.Exercise, prof profile.Profile, available map[string]bool, movement string, n int, rng *rand.Rand) []candidate {
	muscles := MovementMuscles(movement)
	targets := make(map[string]bool, len(muscles))
	for _, m := range muscles {
		targets[m] = true
	}

	var scored []candidate
	for _, ex := range pool {
		if s := Score(ex, prof, available, targets); s > 0 {
			scored = append(scored, candidate{ex: ex, score: s})
		}
	}
	if len(scored) == 0 {
		return nil
	}

	majorCount := int(math.Round(float64(n) * majorShare))
	if n >= 4 && majorCount > n-1 {
		// Always leave at least one minor-muscle slot.
		majorCount = n - 1
	}

	var targetMajors []string
	for _, m := range muscles {
		if IsMajorMuscle(m) {
			targetMajors = append(targetMajors, m)
		}
	}

	picked := make(map[string]bool)
	var selected []candidate
	add := func(cands []candidate) {
		for _, c := range cands {
			picked[c.ex.ID] = true
			selected = append(selected, c)
		}
	}

	// Major muscles get an even per-muscle quota first.
	majorPool := filterCandidates(scored, func(c candidate) bool {
		return IsMajorMuscle(c.ex.BodyPartClean) && targets[c.ex.BodyPartClean]
	})
	if len(majorPool) > 0 && len(targetMajors) > 0 {
		quota := majorCount / len(targetMajors)
		if quota < 1 {
			quota = 1
		}
		for _, muscle := range targetMajors {
			if len(selected) >= majorCount {
				break
			}
			musclePool := filterCandidates(majorPool, func(c candidate) bool {
				return c.ex.BodyPartClean == muscle
			})
			if len(musclePool) == 0 {
				continue
			}
			count := quota
			if room := majorCount - len(selected); count > room {
				count = room
			}
			add(sampleTop(musclePool, quota, count, rng))
		}

		// Uneven candidate spreads can leave major slots unfilled; top up
		// from the whole major pool.
		if len(selected) < majorCount {
			needed := majorCount - len(selected)
			remaining := filterCandidates(majorPool, func(c candidate) bool {
				return !picked[c.ex.ID]
			})
			add(sampleTop(remaining, needed, needed, rng))
		}
	}

	// Minor muscles fill the rest.
	if needed := n - len(selected); needed > 0 {
		minorPool := filterCandidates(scored, func(c candidate) bool {
			return IsMinorMuscle(c.ex.BodyPartClean) && targets[c.ex.BodyPartClean] && !picked[c.ex.ID]
		})
		add(sampleTop(minorPool, needed, needed, rng))
	}

	// Any remaining scored candidate can close the gap.
	if needed := n - len(selected); needed > 0 {
		fallback := filterCandidates(scored, func(c candidate) bool {
			return !picked[c.ex.ID]
		})
		add(sampleTop(fallback, needed, needed, rng))
	}

	return selected
}

// sampleTop sorts candidates by score descending, keeps the top 2×quota,
// and draws count of them uniformly without replacement. The widened prefix
// trades strict greediness for variety across repeated calls.
func sampleTop(cands []candidate, quota, count int, rng *rand.Rand) []candidate {
	if len(cands) == 0 || count <= 0 {
		return nil
	}

	top := make([]candidate, len(cands))
	copy(top, cands)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].score > top[j].score
	})
	if limit := quota * 2; len(top) > limit {
		top = top[:limit]
	}

	if count > len(top) {
		count = len(top)
	}
	perm := rng.Perm(len(top))
	out := make([]candidate, 0, count)
	for _, idx := range perm[:count] {
		out = append(out, top[idx])
	}
	return out
}

func filterCandidates(cands []candidate, keep func(candidate) bool) []candidate {
	var out []candidate
	for _, c := range cands {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
