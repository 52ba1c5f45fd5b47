package models

import (
	"time"
)

type User struct {
	ID               string    `json:"id" db:"id"`
	Email            string    `json:"email" db:"email"`
	Name             string    `json:"name" db:"name"`
	Password         string    `json:"-" db:"password"` // Password hash is never exposed in JSON
	SubscriptionTier string    `json:"subscription_tier" db:"subscription_tier"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// QuestionCategory is the fixed set of reflection themes a question belongs to.
type QuestionCategory string

const (
	CategoryGratitude     QuestionCategory = "gratitude"
	CategoryGrowth        QuestionCategory = "growth"
	CategoryReflection    QuestionCategory = "reflection"
	CategoryFuture        QuestionCategory = "future"
	CategoryRelationships QuestionCategory = "relationships"
	CategoryCreativity    QuestionCategory = "creativity"
	CategoryChallenge     QuestionCategory = "challenge"
)

// Question is a reusable reflection prompt. Questions are immutable once
// seeded; only IsActive is toggled administratively.
type Question struct {
	ID        string           `json:"id" db:"id"`
	Text      string           `json:"text" db:"text"`
	Category  QuestionCategory `json:"category" db:"category"`
	IsActive  bool             `json:"is_active" db:"is_active"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// Slot addresses one of the three fixed question positions in a daily entry.
type Slot int

const (
	SlotFirst Slot = iota
	SlotSecond
	SlotThird

	SlotCount = 3
)

func (s Slot) Valid() bool {
	return s >= SlotFirst && s <= SlotThird
}

// DailyEntry is one user's three-question assignment and answers for one
// calendar date. EntryDate is an ISO day key (YYYY-MM-DD); the store enforces
// at most one entry per (user, date).
type DailyEntry struct {
	ID                 string    `json:"id" db:"id"`
	UserID             string    `json:"user_id" db:"user_id"`
	EntryDate          string    `json:"entry_date" db:"entry_date"`
	Question1ID        string    `json:"question_1_id" db:"question_1_id"`
	Question1Answer    *string   `json:"question_1_answer" db:"question_1_answer"`
	Question1Completed bool      `json:"question_1_completed" db:"question_1_completed"`
	Question2ID        string    `json:"question_2_id" db:"question_2_id"`
	Question2Answer    *string   `json:"question_2_answer" db:"question_2_answer"`
	Question2Completed bool      `json:"question_2_completed" db:"question_2_completed"`
	Question3ID        string    `json:"question_3_id" db:"question_3_id"`
	Question3Answer    *string   `json:"question_3_answer" db:"question_3_answer"`
	Question3Completed bool      `json:"question_3_completed" db:"question_3_completed"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}

// QuestionID returns the question reference in the given slot.
func (e *DailyEntry) QuestionID(s Slot) string {
	switch s {
	case SlotFirst:
		return e.Question1ID
	case SlotSecond:
		return e.Question2ID
	default:
		return e.Question3ID
	}
}

// Answer returns the answer text in the given slot, or "" when none was saved.
func (e *DailyEntry) Answer(s Slot) string {
	var a *string
	switch s {
	case SlotFirst:
		a = e.Question1Answer
	case SlotSecond:
		a = e.Question2Answer
	default:
		a = e.Question3Answer
	}
	if a == nil {
		return ""
	}
	return *a
}

// Completed reports whether the given slot's answer has been submitted.
func (e *DailyEntry) Completed(s Slot) bool {
	switch s {
	case SlotFirst:
		return e.Question1Completed
	case SlotSecond:
		return e.Question2Completed
	default:
		return e.Question3Completed
	}
}

// EntryWithQuestions is a daily entry joined with the full question rows its
// three slots reference.
type EntryWithQuestions struct {
	DailyEntry
	Questions [SlotCount]Question `json:"questions"`
}
