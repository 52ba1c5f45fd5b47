// Package questions provides the daily question selection algorithm and the
// seed catalog of reflection questions.
package questions

import (
	"math/rand"

	"github.com/monthsbackend/internal/models"
)

// Select picks n questions from the active pool, avoiding ids already used
// this period while enough unused questions remain. Once the unused pool is
// exhausted the whole active pool becomes eligible again, so repeats across
// the period are allowed rather than failing. If the pool itself holds fewer
// than n questions the result is short; callers must tolerate that.
//
// The randomness source is explicit so tests can pin a seed. Select never
// errors.
func Select(rng *rand.Rand, pool []models.Question, used map[string]bool, n int) []models.Question {
	available := make([]models.Question, 0, len(pool))
	for _, q := range pool {
		if !used[q.ID] {
			available = append(available, q)
		}
	}

	candidates := available
	if len(available) < n {
		candidates = pool
	}

	shuffled := shuffle(rng, candidates)
	if len(shuffled) > n {
		shuffled = shuffled[:n]
	}
	return shuffled
}

// shuffle returns a Fisher-Yates permutation of qs without mutating the input.
func shuffle(rng *rand.Rand, qs []models.Question) []models.Question {
	out := make([]models.Question, len(qs))
	copy(out, qs)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
