// Package stubs provides an in-memory implementation of the store interface
// for tests.
package stubs

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/monthsbackend/internal/models"
	"github.com/monthsbackend/internal/store"
)

// MockStore is an in-memory implementation of store.Store. It enforces the
// same uniqueness rules as the Postgres schema, so race-recovery paths behave
// identically against it. Failure hooks let tests inject errors on specific
// operations.
type MockStore struct {
	mu        sync.RWMutex
	users     map[string]models.User     // keyed by id
	questions map[string]models.Question // keyed by id
	entries   map[string]models.DailyEntry
	entryKeys map[string]string // (userID|date) -> entry id

	// Failure hooks. When set, the matching operation returns the hook's
	// error instead of running.
	FailCreateEntry     func() error
	FailUpdateEntrySlot func() error
	FailGetEntry        func() error
}

var _ store.Store = (*MockStore)(nil)

// NewMockStore creates an empty mock store.
func NewMockStore() *MockStore {
	return &MockStore{
		users:     make(map[string]models.User),
		questions: make(map[string]models.Question),
		entries:   make(map[string]models.DailyEntry),
		entryKeys: make(map[string]string),
	}
}

func entryKey(userID, date string) string {
	return userID + "|" + date
}

func (m *MockStore) Close() error { return nil }

// AddQuestion registers an active question and returns it.
func (m *MockStore) AddQuestion(text string, category models.QuestionCategory) models.Question {
	m.mu.Lock()
	defer m.mu.Unlock()

	q := models.Question{
		ID:        uuid.New().String(),
		Text:      text,
		Category:  category,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	m.questions[q.ID] = q
	return q
}

func (m *MockStore) CreateUser(ctx context.Context, email, name, passwordHash string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return models.User{}, store.ErrDuplicateUser
		}
	}
	now := time.Now().UTC()
	user := models.User{
		ID:               uuid.New().String(),
		Email:            email,
		Name:             name,
		Password:         passwordHash,
		SubscriptionTier: "free",
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	m.users[user.ID] = user
	return user, nil
}

func (m *MockStore) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (m *MockStore) GetUser(ctx context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (m *MockStore) ListActiveQuestions(ctx context.Context) ([]models.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var questions []models.Question
	for _, q := range m.questions {
		if q.IsActive {
			questions = append(questions, q)
		}
	}
	sort.Slice(questions, func(i, j int) bool {
		return questions[i].Text < questions[j].Text
	})
	return questions, nil
}

func (m *MockStore) SeedQuestions(ctx context.Context, questions []models.Question) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := make(map[string]bool, len(m.questions))
	for _, q := range m.questions {
		existing[q.Text] = true
	}

	inserted := 0
	for _, q := range questions {
		if existing[q.Text] {
			continue
		}
		if q.ID == "" {
			q.ID = uuid.New().String()
		}
		if q.CreatedAt.IsZero() {
			q.CreatedAt = time.Now().UTC()
		}
		m.questions[q.ID] = q
		existing[q.Text] = true
		inserted++
	}
	return inserted, nil
}

func (m *MockStore) GetEntry(ctx context.Context, userID, date string) (models.EntryWithQuestions, error) {
	if m.FailGetEntry != nil {
		if err := m.FailGetEntry(); err != nil {
			return models.EntryWithQuestions{}, err
		}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.entryKeys[entryKey(userID, date)]
	if !ok {
		return models.EntryWithQuestions{}, store.ErrNotFound
	}
	return m.joinQuestions(m.entries[id])
}

// joinQuestions builds the joined view for an entry. Callers hold m.mu.
func (m *MockStore) joinQuestions(entry models.DailyEntry) (models.EntryWithQuestions, error) {
	joined := models.EntryWithQuestions{DailyEntry: entry}
	for i, qid := range [models.SlotCount]string{entry.Question1ID, entry.Question2ID, entry.Question3ID} {
		q, ok := m.questions[qid]
		if !ok {
			return models.EntryWithQuestions{}, fmt.Errorf("entry %s references unknown question %s", entry.ID, qid)
		}
		joined.Questions[i] = q
	}
	return joined, nil
}

func (m *MockStore) CreateEntry(ctx context.Context, userID, date string, questionIDs [models.SlotCount]string) (models.DailyEntry, error) {
	if m.FailCreateEntry != nil {
		if err := m.FailCreateEntry(); err != nil {
			return models.DailyEntry{}, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := entryKey(userID, date)
	if _, exists := m.entryKeys[key]; exists {
		return models.DailyEntry{}, store.ErrDuplicateEntry
	}

	now := time.Now().UTC()
	entry := models.DailyEntry{
		ID:          uuid.New().String(),
		UserID:      userID,
		EntryDate:   date,
		Question1ID: questionIDs[0],
		Question2ID: questionIDs[1],
		Question3ID: questionIDs[2],
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.entries[entry.ID] = entry
	m.entryKeys[key] = entry.ID
	return entry, nil
}

func (m *MockStore) UpdateEntrySlot(ctx context.Context, entryID string, slot models.Slot, answer string) error {
	if m.FailUpdateEntrySlot != nil {
		if err := m.FailUpdateEntrySlot(); err != nil {
			return err
		}
	}
	if !slot.Valid() {
		return fmt.Errorf("invalid slot %d", slot)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[entryID]
	if !ok {
		return store.ErrNotFound
	}

	text := answer
	switch slot {
	case models.SlotFirst:
		entry.Question1Answer = &text
		entry.Question1Completed = true
	case models.SlotSecond:
		entry.Question2Answer = &text
		entry.Question2Completed = true
	case models.SlotThird:
		entry.Question3Answer = &text
		entry.Question3Completed = true
	}
	entry.UpdatedAt = time.Now().UTC()
	m.entries[entryID] = entry
	return nil
}

func (m *MockStore) ListMonthEntries(ctx context.Context, userID, first, last string) ([]models.EntryWithQuestions, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var entries []models.EntryWithQuestions
	for _, entry := range m.entries {
		if entry.UserID != userID || entry.EntryDate < first || entry.EntryDate > last {
			continue
		}
		joined, err := m.joinQuestions(entry)
		if err != nil {
			return nil, err
		}
		entries = append(entries, joined)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].EntryDate < entries[j].EntryDate
	})
	return entries, nil
}

func (m *MockStore) UsedQuestionIDs(ctx context.Context, userID, first, last string) (map[string]bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	used := make(map[string]bool)
	for _, entry := range m.entries {
		if entry.UserID != userID || entry.EntryDate < first || entry.EntryDate > last {
			continue
		}
		used[entry.Question1ID] = true
		used[entry.Question2ID] = true
		used[entry.Question3ID] = true
	}
	return used, nil
}

func (m *MockStore) CountCompletedEntries(ctx context.Context, userID, first, last string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, entry := range m.entries {
		if entry.UserID != userID || entry.EntryDate < first || entry.EntryDate > last {
			continue
		}
		if entry.Question1Completed && entry.Question2Completed && entry.Question3Completed {
			count++
		}
	}
	return count, nil
}

// Entry returns the raw persisted entry by id, for test assertions.
func (m *MockStore) Entry(entryID string) (models.DailyEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[entryID]
	return entry, ok
}

// EntryCount returns the number of persisted entries.
func (m *MockStore) EntryCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.entries)
}
