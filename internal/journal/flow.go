// Package journal drives a user through answering their three daily questions
// in order, persisting each answer as it is submitted.
package journal

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/monthsbackend/internal/dates"
	"github.com/monthsbackend/internal/models"
	"github.com/monthsbackend/internal/questions"
	"github.com/monthsbackend/internal/store"
)

var (
	// ErrNotEnoughQuestions means the active pool holds fewer than three
	// questions, so today's session cannot start. Distinct from transient
	// store failures so callers can report it differently.
	ErrNotEnoughQuestions = errors.New("journal: fewer than three active questions available")

	// ErrEmptyAnswer rejects a submission that is blank after trimming.
	ErrEmptyAnswer = errors.New("journal: answer is empty")

	// ErrWrongSlot rejects a submission for any slot other than the current
	// one.
	ErrWrongSlot = errors.New("journal: submission for a slot that is not current")

	// ErrAlreadyComplete rejects submissions after all three slots are done.
	ErrAlreadyComplete = errors.New("journal: all questions already completed")
)

// Flow is the in-memory working copy of one user's session for one date. It
// reconciles with the store on every submission; the store remains the sole
// owner of persisted state.
type Flow struct {
	store  store.Store
	logger *zap.Logger
	userID string
	date   string

	entryID   string
	questions [models.SlotCount]models.Question
	answers   [models.SlotCount]string
	completed [models.SlotCount]bool
	current   models.Slot
	complete  bool
}

// Start loads or begins the session for the date containing now.
//
// When an entry already exists the flow resumes at its first incomplete slot
// (or terminally, when the third slot is completed). Otherwise three questions
// are selected, avoiding ids already used this month, and the entry is created
// eagerly with its questions fixed. The eager create is best effort: any
// failure is logged and creation is retried lazily on the first submission, so
// a duplicate-tab race or a transient write error can never strand the
// session.
func Start(ctx context.Context, st store.Store, logger *zap.Logger, rng *rand.Rand, userID string, now time.Time) (*Flow, error) {
	f := &Flow{
		store:  st,
		logger: logger,
		userID: userID,
		date:   dates.DayKey(now),
	}

	entry, err := st.GetEntry(ctx, userID, f.date)
	if err == nil {
		f.resume(entry)
		return f, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("loading today's entry: %w", err)
	}

	pool, err := st.ListActiveQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading question pool: %w", err)
	}
	if len(pool) < models.SlotCount {
		return nil, ErrNotEnoughQuestions
	}

	first, last := dates.MonthBoundsAt(now)
	used, err := st.UsedQuestionIDs(ctx, userID, first, last)
	if err != nil {
		return nil, fmt.Errorf("loading used question ids: %w", err)
	}

	selected := questions.Select(rng, pool, used, models.SlotCount)
	copy(f.questions[:], selected)

	created, err := st.CreateEntry(ctx, userID, f.date, f.questionIDs())
	switch {
	case err == nil:
		f.entryID = created.ID
	case errors.Is(err, store.ErrDuplicateEntry):
		// Another session won the creation race. Its question assignment is
		// authoritative, so resume from the persisted entry when we can.
		existing, fetchErr := st.GetEntry(ctx, userID, f.date)
		if fetchErr == nil {
			f.resume(existing)
			return f, nil
		}
		logger.Warn("entry exists but re-fetch failed, deferring to submit",
			zap.String("user_id", userID),
			zap.String("date", f.date),
			zap.Error(fetchErr),
		)
	default:
		logger.Warn("eager entry creation failed, deferring to submit",
			zap.String("user_id", userID),
			zap.String("date", f.date),
			zap.Error(err),
		)
	}

	return f, nil
}

// resume initializes the flow from a persisted entry.
func (f *Flow) resume(entry models.EntryWithQuestions) {
	f.entryID = entry.ID
	f.questions = entry.Questions
	for slot := models.SlotFirst; slot <= models.SlotThird; slot++ {
		f.answers[slot] = entry.Answer(slot)
		f.completed[slot] = entry.Completed(slot)
	}

	// Resume at the first incomplete slot. Completion of the third slot is
	// terminal and sticky regardless of the other flags.
	if f.completed[models.SlotThird] {
		f.complete = true
		f.current = models.SlotThird
		return
	}
	for slot := models.SlotFirst; slot <= models.SlotThird; slot++ {
		if !f.completed[slot] {
			f.current = slot
			return
		}
	}
}

func (f *Flow) questionIDs() [models.SlotCount]string {
	var ids [models.SlotCount]string
	for i, q := range f.questions {
		ids[i] = q.ID
	}
	return ids
}

// SubmitAnswer persists text as the answer for slot and advances the flow.
// slot must be the current slot and text must not be blank. Any store failure
// leaves the flow at the current slot; the caller may retry with the same or
// edited text, and retries are idempotent in effect.
func (f *Flow) SubmitAnswer(ctx context.Context, slot models.Slot, text string) error {
	if f.complete {
		return ErrAlreadyComplete
	}
	if !slot.Valid() || slot != f.current {
		return ErrWrongSlot
	}
	if strings.TrimSpace(text) == "" {
		return ErrEmptyAnswer
	}

	if err := f.ensureEntry(ctx); err != nil {
		return err
	}

	if err := f.store.UpdateEntrySlot(ctx, f.entryID, slot, text); err != nil {
		return fmt.Errorf("saving answer: %w", err)
	}

	f.answers[slot] = text
	f.completed[slot] = true
	if slot == models.SlotThird {
		f.complete = true
	} else {
		f.current = slot + 1
	}
	return nil
}

// ensureEntry guarantees f.entryID names a persisted entry. This is the
// authoritative recovery path for the cross-session creation race: when the
// insert loses to a concurrent creator, the winning row is fetched and
// adopted.
func (f *Flow) ensureEntry(ctx context.Context) error {
	if f.entryID != "" {
		return nil
	}

	existing, err := f.store.GetEntry(ctx, f.userID, f.date)
	if err == nil {
		f.entryID = existing.ID
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("looking up today's entry: %w", err)
	}

	created, err := f.store.CreateEntry(ctx, f.userID, f.date, f.questionIDs())
	if err == nil {
		f.entryID = created.ID
		return nil
	}
	if !errors.Is(err, store.ErrDuplicateEntry) {
		return fmt.Errorf("creating today's entry: %w", err)
	}

	f.logger.Info("recovered from duplicate entry creation",
		zap.String("user_id", f.userID),
		zap.String("date", f.date),
	)
	winner, err := f.store.GetEntry(ctx, f.userID, f.date)
	if err != nil {
		return fmt.Errorf("fetching entry after duplicate creation: %w", err)
	}
	f.entryID = winner.ID
	return nil
}

// AllComplete reports whether all three slots have been answered.
func (f *Flow) AllComplete() bool { return f.complete }

// CurrentSlot returns the slot awaiting an answer. Meaningless once
// AllComplete is true.
func (f *Flow) CurrentSlot() models.Slot { return f.current }

// EntryID returns the persisted entry id, or "" while creation is deferred.
func (f *Flow) EntryID() string { return f.entryID }

// Date returns the session's day key.
func (f *Flow) Date() string { return f.date }

// Question returns the question assigned to slot.
func (f *Flow) Question(slot models.Slot) models.Question { return f.questions[slot] }

// Answer returns the saved answer for slot, or "" when none was submitted.
func (f *Flow) Answer(slot models.Slot) string { return f.answers[slot] }

// Completed reports whether slot has been answered.
func (f *Flow) Completed(slot models.Slot) bool { return f.completed[slot] }
