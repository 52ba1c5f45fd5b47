package store

import (
	"context"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	postgresTC "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/monthsbackend/internal/models"
)

// setupTestStore starts a throwaway Postgres container and applies the
// migrations against it.
func setupTestStore(t *testing.T) *Postgres {
	t.Helper()
	ctx := context.Background()

	container, err := postgresTC.Run(ctx,
		"postgres:16-alpine",
		postgresTC.WithDatabase("months_test"),
		postgresTC.WithUsername("months"),
		postgresTC.WithPassword("months"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err, "failed to start Postgres container")
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	st, err := NewPostgres(dsn)
	require.NoError(t, err, "failed to connect to Postgres")
	t.Cleanup(func() {
		_ = st.Close()
	})

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(st.db.DB, "../../migrations"))
	return st
}

func seedTestQuestions(t *testing.T, st *Postgres, n int) []models.Question {
	t.Helper()
	batch := make([]models.Question, n)
	for i := range batch {
		batch[i] = models.Question{
			Text:     "Integration question " + string(rune('A'+i)) + "?",
			Category: models.CategoryReflection,
			IsActive: true,
		}
	}
	inserted, err := st.SeedQuestions(context.Background(), batch)
	require.NoError(t, err)
	require.Equal(t, n, inserted)

	questions, err := st.ListActiveQuestions(context.Background())
	require.NoError(t, err)
	return questions
}

func TestPostgresStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	st := setupTestStore(t)
	ctx := context.Background()
	questions := seedTestQuestions(t, st, 5)
	require.GreaterOrEqual(t, len(questions), 3)

	var user models.User
	t.Run("users", func(t *testing.T) {
		var err error
		user, err = st.CreateUser(ctx, "ada@example.com", "Ada", "bcrypt-hash")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)

		_, err = st.CreateUser(ctx, "ada@example.com", "Other Ada", "h")
		assert.ErrorIs(t, err, ErrDuplicateUser)

		byEmail, err := st.GetUserByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
		assert.Equal(t, "bcrypt-hash", byEmail.Password)

		byID, err := st.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ada", byID.Name)

		_, err = st.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	var ids [models.SlotCount]string
	for i := range ids {
		ids[i] = questions[i].ID
	}

	var entry models.DailyEntry
	t.Run("entry lifecycle", func(t *testing.T) {
		var err error
		entry, err = st.CreateEntry(ctx, user.ID, "2024-03-01", ids)
		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "2024-03-01", entry.EntryDate)

		_, err = st.CreateEntry(ctx, user.ID, "2024-03-01", ids)
		assert.ErrorIs(t, err, ErrDuplicateEntry)

		joined, err := st.GetEntry(ctx, user.ID, "2024-03-01")
		require.NoError(t, err)
		assert.Equal(t, entry.ID, joined.ID)
		for i := range joined.Questions {
			assert.Equal(t, questions[i].ID, joined.Questions[i].ID)
			assert.NotEmpty(t, joined.Questions[i].Text)
		}

		_, err = st.GetEntry(ctx, user.ID, "2024-03-02")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("slot updates", func(t *testing.T) {
		require.NoError(t, st.UpdateEntrySlot(ctx, entry.ID, models.SlotFirst, "first answer"))
		// Idempotent on retry.
		require.NoError(t, st.UpdateEntrySlot(ctx, entry.ID, models.SlotFirst, "first answer"))

		joined, err := st.GetEntry(ctx, user.ID, "2024-03-01")
		require.NoError(t, err)
		assert.Equal(t, "first answer", joined.Answer(models.SlotFirst))
		assert.True(t, joined.Completed(models.SlotFirst))
		assert.False(t, joined.Completed(models.SlotSecond))

		err = st.UpdateEntrySlot(ctx, "00000000-0000-0000-0000-000000000000", models.SlotFirst, "x")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("month queries", func(t *testing.T) {
		later, err := st.CreateEntry(ctx, user.ID, "2024-03-09", ids)
		require.NoError(t, err)

		entries, err := st.ListMonthEntries(ctx, user.ID, "2024-03-01", "2024-03-31")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, entry.ID, entries[0].ID)
		assert.Equal(t, later.ID, entries[1].ID)

		used, err := st.UsedQuestionIDs(ctx, user.ID, "2024-03-01", "2024-03-31")
		require.NoError(t, err)
		for _, id := range ids {
			assert.True(t, used[id])
		}

		count, err := st.CountCompletedEntries(ctx, user.ID, "2024-03-01", "2024-03-31")
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		for slot := models.SlotFirst; slot <= models.SlotThird; slot++ {
			require.NoError(t, st.UpdateEntrySlot(ctx, entry.ID, slot, "done"))
		}
		count, err = st.CountCompletedEntries(ctx, user.ID, "2024-03-01", "2024-03-31")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("seed is idempotent", func(t *testing.T) {
		inserted, err := st.SeedQuestions(ctx, []models.Question{{
			Text:     questions[0].Text,
			Category: questions[0].Category,
			IsActive: true,
		}})
		require.NoError(t, err)
		assert.Equal(t, 0, inserted)
	})
}
