// Package store defines the data-access contract behind the journaling core
// and its Postgres implementation.
package store

import (
	"context"
	"errors"

	"github.com/monthsbackend/internal/models"
)

// Named error kinds. Implementations translate their driver's error encoding
// into these so callers never inspect vendor codes.
var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicateEntry is returned when creating a daily entry that would
	// violate the one-entry-per-user-per-date constraint. Callers recover by
	// re-fetching the winning row.
	ErrDuplicateEntry = errors.New("store: daily entry already exists for this date")

	// ErrDuplicateUser is returned when registering an email that is taken.
	ErrDuplicateUser = errors.New("store: user already exists")
)

// Store is the persistence interface consumed by the journal flow, the book
// endpoints and the auth endpoints.
type Store interface {
	// User operations
	CreateUser(ctx context.Context, email, name, passwordHash string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)

	// Question operations
	ListActiveQuestions(ctx context.Context) ([]models.Question, error)
	// SeedQuestions inserts catalog questions, skipping texts already present.
	// It returns the number of newly inserted questions.
	SeedQuestions(ctx context.Context, questions []models.Question) (int, error)

	// Daily entry operations
	//
	// GetEntry returns the entry for (user, date) joined with its three
	// questions, or ErrNotFound.
	GetEntry(ctx context.Context, userID, date string) (models.EntryWithQuestions, error)
	// CreateEntry creates the entry with its three question references fixed
	// and no answers. Returns ErrDuplicateEntry when one already exists for
	// (user, date).
	CreateEntry(ctx context.Context, userID, date string, questionIDs [models.SlotCount]string) (models.DailyEntry, error)
	// UpdateEntrySlot saves one slot's answer and marks that slot completed,
	// touching nothing else. Resubmitting the same answer is a no-op in
	// effect. Returns ErrNotFound for an unknown entry id.
	UpdateEntrySlot(ctx context.Context, entryID string, slot models.Slot, answer string) error

	// Month-scoped reads. first and last are inclusive day keys.
	ListMonthEntries(ctx context.Context, userID, first, last string) ([]models.EntryWithQuestions, error)
	UsedQuestionIDs(ctx context.Context, userID, first, last string) (map[string]bool, error)
	// CountCompletedEntries counts days in the range with all three slots
	// completed.
	CountCompletedEntries(ctx context.Context, userID, first, last string) (int, error)

	Close() error
}
