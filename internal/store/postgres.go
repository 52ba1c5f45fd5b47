package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/monthsbackend/internal/db"
	"github.com/monthsbackend/internal/models"
)

// Postgres implements Store on top of a Postgres database.
type Postgres struct {
	db *sqlx.DB
}

var _ Store = (*Postgres)(nil)

// NewPostgres connects to Postgres and returns a ready store.
func NewPostgres(databaseURL string) (*Postgres, error) {
	pool, err := db.Connect(databaseURL)
	if err != nil {
		return nil, err
	}
	return &Postgres{db: pool}, nil
}

// NewPostgresFromDB wraps an already-open connection pool. The caller keeps
// ownership of the pool's lifetime when using this constructor directly.
func NewPostgresFromDB(pool *sqlx.DB) *Postgres {
	return &Postgres{db: pool}
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (p *Postgres) CreateUser(ctx context.Context, email, name, passwordHash string) (models.User, error) {
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

	_, err := p.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, password, subscription_tier, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.Password, user.SubscriptionTier, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicateUser
		}
		return models.User{}, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := p.db.GetContext(ctx, &user, `
		SELECT id, email, name, password, subscription_tier, created_at, updated_at
		FROM users WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("getting user by email: %w", err)
	}
	return user, nil
}

func (p *Postgres) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	err := p.db.GetContext(ctx, &user, `
		SELECT id, email, name, password, subscription_tier, created_at, updated_at
		FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

func (p *Postgres) ListActiveQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	err := p.db.SelectContext(ctx, &questions, `
		SELECT id, text, category, is_active, created_at
		FROM questions WHERE is_active ORDER BY text`)
	if err != nil {
		return nil, fmt.Errorf("listing active questions: %w", err)
	}
	return questions, nil
}

func (p *Postgres) SeedQuestions(ctx context.Context, questions []models.Question) (int, error) {
	inserted := 0
	for _, q := range questions {
		id := q.ID
		if id == "" {
			id = uuid.New().String()
		}
		res, err := p.db.ExecContext(ctx, `
			INSERT INTO questions (id, text, category, is_active, created_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (text) DO NOTHING`,
			id, q.Text, q.Category, q.IsActive, time.Now().UTC(),
		)
		if err != nil {
			return inserted, fmt.Errorf("seeding question %q: %w", q.Text, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return inserted, fmt.Errorf("seeding question %q: %w", q.Text, err)
		}
		inserted += int(n)
	}
	return inserted, nil
}

// slotColumns maps each slot to its answer and completion columns. Keeping
// this as a fixed table means a bad slot can never turn into a malformed
// query.
var slotColumns = [models.SlotCount]struct {
	answer    string
	completed string
}{
	{"question_1_answer", "question_1_completed"},
	{"question_2_answer", "question_2_completed"},
	{"question_3_answer", "question_3_completed"},
}

// entryWithQuestionsRow scans a daily entry joined with its three questions.
type entryWithQuestionsRow struct {
	models.DailyEntry
	Q1 models.Question `db:"q1"`
	Q2 models.Question `db:"q2"`
	Q3 models.Question `db:"q3"`
}

func (r entryWithQuestionsRow) toModel() models.EntryWithQuestions {
	return models.EntryWithQuestions{
		DailyEntry: r.DailyEntry,
		Questions:  [models.SlotCount]models.Question{r.Q1, r.Q2, r.Q3},
	}
}

const entryWithQuestionsSelect = `
	SELECT
		e.id, e.user_id, e.entry_date::text AS entry_date,
		e.question_1_id, e.question_1_answer, e.question_1_completed,
		e.question_2_id, e.question_2_answer, e.question_2_completed,
		e.question_3_id, e.question_3_answer, e.question_3_completed,
		e.created_at, e.updated_at,
		q1.id AS "q1.id", q1.text AS "q1.text", q1.category AS "q1.category",
		q1.is_active AS "q1.is_active", q1.created_at AS "q1.created_at",
		q2.id AS "q2.id", q2.text AS "q2.text", q2.category AS "q2.category",
		q2.is_active AS "q2.is_active", q2.created_at AS "q2.created_at",
		q3.id AS "q3.id", q3.text AS "q3.text", q3.category AS "q3.category",
		q3.is_active AS "q3.is_active", q3.created_at AS "q3.created_at"
	FROM daily_entries e
	JOIN questions q1 ON q1.id = e.question_1_id
	JOIN questions q2 ON q2.id = e.question_2_id
	JOIN questions q3 ON q3.id = e.question_3_id`

func (p *Postgres) GetEntry(ctx context.Context, userID, date string) (models.EntryWithQuestions, error) {
	var row entryWithQuestionsRow
	err := p.db.GetContext(ctx, &row,
		entryWithQuestionsSelect+` WHERE e.user_id = $1 AND e.entry_date = $2::date`,
		userID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.EntryWithQuestions{}, ErrNotFound
	}
	if err != nil {
		return models.EntryWithQuestions{}, fmt.Errorf("getting entry: %w", err)
	}
	return row.toModel(), nil
}

func (p *Postgres) CreateEntry(ctx context.Context, userID, date string, questionIDs [models.SlotCount]string) (models.DailyEntry, error) {
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

	_, err := p.db.ExecContext(ctx, `
		INSERT INTO daily_entries (
			id, user_id, entry_date,
			question_1_id, question_2_id, question_3_id,
			created_at, updated_at
		) VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, entry.EntryDate,
		entry.Question1ID, entry.Question2ID, entry.Question3ID,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.DailyEntry{}, ErrDuplicateEntry
		}
		return models.DailyEntry{}, fmt.Errorf("creating entry: %w", err)
	}
	return entry, nil
}

func (p *Postgres) UpdateEntrySlot(ctx context.Context, entryID string, slot models.Slot, answer string) error {
	if !slot.Valid() {
		return fmt.Errorf("invalid slot %d", slot)
	}
	cols := slotColumns[slot]
	query := fmt.Sprintf(
		`UPDATE daily_entries SET %s = $1, %s = TRUE, updated_at = $2 WHERE id = $3`,
		cols.answer, cols.completed,
	)

	res, err := p.db.ExecContext(ctx, query, answer, time.Now().UTC(), entryID)
	if err != nil {
		return fmt.Errorf("updating entry slot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating entry slot: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ListMonthEntries(ctx context.Context, userID, first, last string) ([]models.EntryWithQuestions, error) {
	var rows []entryWithQuestionsRow
	err := p.db.SelectContext(ctx, &rows,
		entryWithQuestionsSelect+`
		WHERE e.user_id = $1 AND e.entry_date BETWEEN $2::date AND $3::date
		ORDER BY e.entry_date`,
		userID, first, last)
	if err != nil {
		return nil, fmt.Errorf("listing month entries: %w", err)
	}

	entries := make([]models.EntryWithQuestions, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toModel())
	}
	return entries, nil
}

func (p *Postgres) UsedQuestionIDs(ctx context.Context, userID, first, last string) (map[string]bool, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT question_1_id, question_2_id, question_3_id
		FROM daily_entries
		WHERE user_id = $1 AND entry_date BETWEEN $2::date AND $3::date`,
		userID, first, last)
	if err != nil {
		return nil, fmt.Errorf("listing used question ids: %w", err)
	}
	defer rows.Close()

	used := make(map[string]bool)
	for rows.Next() {
		var q1, q2, q3 string
		if err := rows.Scan(&q1, &q2, &q3); err != nil {
			return nil, fmt.Errorf("scanning used question ids: %w", err)
		}
		used[q1] = true
		used[q2] = true
		used[q3] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing used question ids: %w", err)
	}
	return used, nil
}

func (p *Postgres) CountCompletedEntries(ctx context.Context, userID, first, last string) (int, error) {
	var count int
	err := p.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM daily_entries
		WHERE user_id = $1 AND entry_date BETWEEN $2::date AND $3::date
		AND question_1_completed AND question_2_completed AND question_3_completed`,
		userID, first, last)
	if err != nil {
		return 0, fmt.Errorf("counting completed entries: %w", err)
	}
	return count, nil
}
