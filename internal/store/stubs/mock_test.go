package stubs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monthsbackend/internal/models"
	"github.com/monthsbackend/internal/store"
)

func seedEntry(t *testing.T, m *MockStore, userID, date string) models.DailyEntry {
	t.Helper()
	var ids [models.SlotCount]string
	for i := range ids {
		ids[i] = m.AddQuestion("q for "+date+" #"+string(rune('1'+i)), models.CategoryGrowth).ID
	}
	entry, err := m.CreateEntry(context.Background(), userID, date, ids)
	require.NoError(t, err)
	return entry
}

func TestMockUserUniqueness(t *testing.T) {
	m := NewMockStore()
	ctx := context.Background()

	user, err := m.CreateUser(ctx, "a@example.com", "Ada", "hash")
	require.NoError(t, err)

	_, err = m.CreateUser(ctx, "a@example.com", "Another Ada", "hash2")
	assert.ErrorIs(t, err, store.ErrDuplicateUser)

	got, err := m.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	got, err = m.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)

	_, err = m.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMockEntryUniquenessPerUserAndDate(t *testing.T) {
	m := NewMockStore()
	ctx := context.Background()

	entry := seedEntry(t, m, "u1", "2024-03-01")

	var ids [models.SlotCount]string
	ids[0] = entry.Question1ID
	ids[1] = entry.Question2ID
	ids[2] = entry.Question3ID
	_, err := m.CreateEntry(ctx, "u1", "2024-03-01", ids)
	assert.ErrorIs(t, err, store.ErrDuplicateEntry)

	// Same date for another user, and another date for the same user, are fine.
	_, err = m.CreateEntry(ctx, "u2", "2024-03-01", ids)
	assert.NoError(t, err)
	_, err = m.CreateEntry(ctx, "u1", "2024-03-02", ids)
	assert.NoError(t, err)
}

func TestMockUpdateEntrySlotIsIdempotent(t *testing.T) {
	m := NewMockStore()
	ctx := context.Background()
	entry := seedEntry(t, m, "u1", "2024-03-01")

	require.NoError(t, m.UpdateEntrySlot(ctx, entry.ID, models.SlotSecond, "an answer"))
	require.NoError(t, m.UpdateEntrySlot(ctx, entry.ID, models.SlotSecond, "an answer"))

	got, ok := m.Entry(entry.ID)
	require.True(t, ok)
	require.NotNil(t, got.Question2Answer)
	assert.Equal(t, "an answer", *got.Question2Answer)
	assert.True(t, got.Question2Completed)
	assert.False(t, got.Question1Completed)

	err := m.UpdateEntrySlot(ctx, "missing", models.SlotFirst, "x")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMockGetEntryJoinsQuestions(t *testing.T) {
	m := NewMockStore()
	ctx := context.Background()
	entry := seedEntry(t, m, "u1", "2024-03-01")

	joined, err := m.GetEntry(ctx, "u1", "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, entry.ID, joined.ID)
	for i, q := range joined.Questions {
		assert.NotEmpty(t, q.Text, "slot %d question missing", i)
	}

	_, err = m.GetEntry(ctx, "u1", "2024-03-02")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMockMonthQueries(t *testing.T) {
	m := NewMockStore()
	ctx := context.Background()

	march2 := seedEntry(t, m, "u1", "2024-03-02")
	march1 := seedEntry(t, m, "u1", "2024-03-01")
	seedEntry(t, m, "u1", "2024-04-01")
	seedEntry(t, m, "u2", "2024-03-05")

	entries, err := m.ListMonthEntries(ctx, "u1", "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, march1.ID, entries[0].ID)
	assert.Equal(t, march2.ID, entries[1].ID)

	used, err := m.UsedQuestionIDs(ctx, "u1", "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Len(t, used, 6)
	assert.True(t, used[march1.Question1ID])
	assert.False(t, used["unknown"])

	// Completion counts only entries with all three slots answered.
	count, err := m.CountCompletedEntries(ctx, "u1", "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	for slot := models.SlotFirst; slot <= models.SlotThird; slot++ {
		require.NoError(t, m.UpdateEntrySlot(ctx, march1.ID, slot, "done"))
	}
	require.NoError(t, m.UpdateEntrySlot(ctx, march2.ID, models.SlotFirst, "partial"))

	count, err = m.CountCompletedEntries(ctx, "u1", "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMockSeedQuestionsSkipsDuplicates(t *testing.T) {
	m := NewMockStore()
	ctx := context.Background()

	batch := []models.Question{
		{Text: "One?", Category: models.CategoryGratitude, IsActive: true},
		{Text: "Two?", Category: models.CategoryGrowth, IsActive: true},
	}
	inserted, err := m.SeedQuestions(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = m.SeedQuestions(ctx, append(batch, models.Question{
		Text: "Three?", Category: models.CategoryFuture, IsActive: true,
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	questions, err := m.ListActiveQuestions(ctx)
	require.NoError(t, err)
	assert.Len(t, questions, 3)
}
