package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/spigell/interview-insights/internal/feedback"
	"github.com/spigell/interview-insights/internal/interview"
)

var ErrNotFound = errors.New("interview not found")

// Fixed-width UTC timestamps keep created_at sortable as text.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

const schema = `
CREATE TABLE IF NOT EXISTS interviews (
	id         TEXT PRIMARY KEY,
	candidate  TEXT NOT NULL DEFAULT '',
	position   TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sections (
	id           TEXT PRIMARY KEY,
	interview_id TEXT NOT NULL,
	position     INTEGER NOT NULL,
	title        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS questions (
	id         TEXT PRIMARY KEY,
	section_id TEXT NOT NULL,
	position   INTEGER NOT NULL,
	text       TEXT NOT NULL DEFAULT '',
	skipped    INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS feedback (
	question_id TEXT PRIMARY KEY,
	rating      REAL,
	notes       TEXT
);

CREATE INDEX IF NOT EXISTS sections_interview_idx ON sections (interview_id, position);
CREATE INDEX IF NOT EXISTS questions_section_idx ON questions (section_id, position);
`

// Store persists interviews with their sections, questions and feedback in SQLite.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// Header is a short description of a stored interview.
type Header struct {
	ID        string
	Candidate string
	Position  string
	CreatedAt time.Time
	Sections  int
}

type headerRow struct {
	interviewRow
	Sections int `db:"sections"`
}

type interviewRow struct {
	ID        string `db:"id"`
	Candidate string `db:"candidate"`
	Position  string `db:"position"`
	CreatedAt string `db:"created_at"`
}

type sectionRow struct {
	ID    string `db:"id"`
	Title string `db:"title"`
}

type questionRow struct {
	ID          string          `db:"id"`
	SectionID   string          `db:"section_id"`
	Text        string          `db:"text"`
	Skipped     bool            `db:"skipped"`
	HasFeedback bool            `db:"has_feedback"`
	Rating      sql.NullFloat64 `db:"rating"`
	Notes       sql.NullString  `db:"notes"`
}

// Open opens (and creates when missing) the database at path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveInterview stores the interview, replacing a stored one with the same id.
// An empty id is replaced with a new uuid. The id is returned.
func (s *Store) SaveInterview(ctx context.Context, iv interview.Interview) (string, error) {
	if iv.ID == "" {
		iv.ID = uuid.NewString()
	}

	createdAt := iv.CreatedAt
	if createdAt.IsZero() {
		createdAt = s.now()
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := deleteInterview(ctx, tx, iv.ID); err != nil {
		return "", err
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO interviews (id, candidate, position, created_at) VALUES (?, ?, ?, ?)",
		iv.ID, iv.Candidate, iv.Position, createdAt.UTC().Format(timeLayout),
	); err != nil {
		return "", fmt.Errorf("insert interview: %w", err)
	}

	for sectionPos, section := range iv.Sections {
		sectionID := uuid.NewString()
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO sections (id, interview_id, position, title) VALUES (?, ?, ?, ?)",
			sectionID, iv.ID, sectionPos, section.Title,
		); err != nil {
			return "", fmt.Errorf("insert section %q: %w", section.Title, err)
		}

		for questionPos, q := range section.Questions {
			if err := insertQuestion(ctx, tx, sectionID, questionPos, q); err != nil {
				return "", fmt.Errorf("insert question %d of section %q: %w", questionPos, section.Title, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	return iv.ID, nil
}

func insertQuestion(ctx context.Context, tx *sqlx.Tx, sectionID string, position int, q feedback.QuestionFeedback) error {
	questionID := uuid.NewString()

	text := ""
	if q.Question != nil {
		text = q.Question.Text
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO questions (id, section_id, position, text, skipped) VALUES (?, ?, ?, ?, ?)",
		questionID, sectionID, position, text, q.Skipped,
	); err != nil {
		return err
	}

	if q.Feedback == nil {
		return nil
	}

	_, err := tx.ExecContext(ctx,
		"INSERT INTO feedback (question_id, rating, notes) VALUES (?, ?, ?)",
		questionID, q.Feedback.Rating, q.Feedback.Notes,
	)
	return err
}

func deleteInterview(ctx context.Context, tx *sqlx.Tx, id string) error {
	statements := []string{
		`DELETE FROM feedback WHERE question_id IN (
			SELECT q.id FROM questions q JOIN sections s ON s.id = q.section_id WHERE s.interview_id = ?)`,
		`DELETE FROM questions WHERE section_id IN (SELECT id FROM sections WHERE interview_id = ?)`,
		`DELETE FROM sections WHERE interview_id = ?`,
		`DELETE FROM interviews WHERE id = ?`,
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return fmt.Errorf("delete interview %q: %w", id, err)
		}
	}

	return nil
}

// GetInterview loads an interview with its sections in order and every
// question joined with its feedback. Questions without feedback have a nil
// Feedback; NULL ratings and notes become zero values.
func (s *Store) GetInterview(ctx context.Context, id string) (interview.Interview, error) {
	var row interviewRow
	err := s.db.GetContext(ctx, &row, "SELECT id, candidate, position, created_at FROM interviews WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return interview.Interview{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return interview.Interview{}, fmt.Errorf("select interview: %w", err)
	}

	iv := interview.Interview{
		ID:        row.ID,
		Candidate: row.Candidate,
		Position:  row.Position,
		CreatedAt: parseTime(row.CreatedAt),
	}

	var sections []sectionRow
	if err := s.db.SelectContext(ctx, &sections,
		"SELECT id, title FROM sections WHERE interview_id = ? ORDER BY position", id,
	); err != nil {
		return interview.Interview{}, fmt.Errorf("select sections: %w", err)
	}

	var questions []questionRow
	if err := s.db.SelectContext(ctx, &questions, `
		SELECT q.id, q.section_id, q.text, q.skipped,
		       f.question_id IS NOT NULL AS has_feedback, f.rating, f.notes
		FROM questions q
		JOIN sections s ON s.id = q.section_id
		LEFT JOIN feedback f ON f.question_id = q.id
		WHERE s.interview_id = ?
		ORDER BY s.position, q.position`, id,
	); err != nil {
		return interview.Interview{}, fmt.Errorf("select questions: %w", err)
	}

	bySection := make(map[string][]feedback.QuestionFeedback, len(sections))
	for _, q := range questions {
		item := feedback.QuestionFeedback{
			Skipped:  q.Skipped,
			Question: &feedback.Question{ID: q.ID, Text: q.Text},
		}
		if q.HasFeedback {
			item.Feedback = &feedback.Feedback{
				Rating: q.Rating.Float64,
				Notes:  q.Notes.String,
			}
		}
		bySection[q.SectionID] = append(bySection[q.SectionID], item)
	}

	for _, section := range sections {
		iv.Sections = append(iv.Sections, interview.Section{
			ID:        section.ID,
			Title:     section.Title,
			Questions: bySection[section.ID],
		})
	}

	return iv, nil
}

// ListInterviews returns the stored interviews, newest first.
func (s *Store) ListInterviews(ctx context.Context) ([]Header, error) {
	var rows []headerRow
	if err := s.db.SelectContext(ctx, &rows, `
		SELECT i.id, i.candidate, i.position, i.created_at, COUNT(s.id) AS sections
		FROM interviews i
		LEFT JOIN sections s ON s.interview_id = i.id
		GROUP BY i.id
		ORDER BY i.created_at DESC, i.id`,
	); err != nil {
		return nil, fmt.Errorf("select interviews: %w", err)
	}

	headers := make([]Header, 0, len(rows))
	for _, row := range rows {
		headers = append(headers, Header{
			ID:        row.ID,
			Candidate: row.Candidate,
			Position:  row.Position,
			CreatedAt: parseTime(row.CreatedAt),
			Sections:  row.Sections,
		})
	}

	return headers, nil
}

func parseTime(raw string) time.Time {
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
