package questions

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monthsbackend/internal/models"
)

func testPool(n int) []models.Question {
	pool := make([]models.Question, n)
	for i := range pool {
		pool[i] = models.Question{
			ID:       fmt.Sprintf("q-%02d", i),
			Text:     fmt.Sprintf("Question %d?", i),
			Category: models.CategoryReflection,
		}
	}
	return pool
}

func TestSelectAvoidsUsedQuestions(t *testing.T) {
	pool := testPool(10)
	used := map[string]bool{
		"q-00": true,
		"q-01": true,
		"q-02": true,
		"q-03": true,
		"q-04": true,
	}

	// Selection is random, so exercise it repeatedly.
	for seed := int64(0); seed < 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		picked := Select(rng, pool, used, 3)
		require.Len(t, picked, 3)

		seen := map[string]bool{}
		for _, q := range picked {
			assert.False(t, used[q.ID], "picked already-used question %s", q.ID)
			assert.False(t, seen[q.ID], "picked question %s twice", q.ID)
			seen[q.ID] = true
		}
	}
}

func TestSelectFallsBackToFullPool(t *testing.T) {
	pool := testPool(10)

	// Only 2 unused remain, fewer than requested.
	used := map[string]bool{}
	for i := 0; i < 8; i++ {
		used[fmt.Sprintf("q-%02d", i)] = true
	}

	rng := rand.New(rand.NewSource(1))
	picked := Select(rng, pool, used, 3)
	require.Len(t, picked, 3)

	seen := map[string]bool{}
	for _, q := range picked {
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
	}
}

func TestSelectEverythingUsed(t *testing.T) {
	pool := testPool(5)
	used := map[string]bool{}
	for _, q := range pool {
		used[q.ID] = true
	}

	rng := rand.New(rand.NewSource(7))
	picked := Select(rng, pool, used, 3)
	assert.Len(t, picked, 3)
}

func TestSelectShortPool(t *testing.T) {
	pool := testPool(2)

	rng := rand.New(rand.NewSource(3))
	picked := Select(rng, pool, nil, 3)
	assert.Len(t, picked, 2)
}

func TestSelectEmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	picked := Select(rng, nil, nil, 3)
	assert.Empty(t, picked)
}

func TestSelectDoesNotMutatePool(t *testing.T) {
	pool := testPool(10)
	before := make([]models.Question, len(pool))
	copy(before, pool)

	rng := rand.New(rand.NewSource(42))
	Select(rng, pool, nil, 3)

	assert.Equal(t, before, pool)
}

func TestSelectDeterministicForSeed(t *testing.T) {
	pool := testPool(20)

	first := Select(rand.New(rand.NewSource(99)), pool, nil, 3)
	second := Select(rand.New(rand.NewSource(99)), pool, nil, 3)
	assert.Equal(t, first, second)
}

func TestCatalogCoversAllCategories(t *testing.T) {
	byCategory := map[models.QuestionCategory]int{}
	texts := map[string]bool{}
	for _, q := range Catalog {
		require.NotEmpty(t, q.Text)
		assert.False(t, texts[q.Text], "duplicate catalog question %q", q.Text)
		texts[q.Text] = true
		byCategory[q.Category]++
	}

	for _, c := range []models.QuestionCategory{
		models.CategoryReflection,
		models.CategoryGratitude,
		models.CategoryGrowth,
		models.CategoryRelationships,
		models.CategoryCreativity,
		models.CategoryChallenge,
		models.CategoryFuture,
	} {
		assert.Positive(t, byCategory[c], "no catalog questions for category %s", c)
	}
}
