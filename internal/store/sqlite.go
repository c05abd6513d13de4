// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/examprep/backend/internal/domain/answer"
)

const schema = `
CREATE TABLE IF NOT EXISTS answers (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    question_id TEXT NOT NULL,
    topic_id TEXT NOT NULL,
    subtopic_id TEXT,
    answer_text TEXT NOT NULL,
    submitted_at TEXT NOT NULL,
    overall_score REAL,
    structure_score REAL,
    content_score REAL,
    depth_score REAL,
    feedback TEXT,
    evaluated_at TEXT,
    grade_error TEXT
);

CREATE INDEX IF NOT EXISTS idx_answers_user ON answers(user_id, submitted_at);
CREATE INDEX IF NOT EXISTS idx_answers_pending ON answers(evaluated_at, submitted_at);

CREATE TABLE IF NOT EXISTS syllabus_nodes (
    id TEXT PRIMARY KEY,
    parent_id TEXT,
    kind TEXT NOT NULL,
    name TEXT NOT NULL,
    code TEXT NOT NULL DEFAULT '',
    target_questions INTEGER NOT NULL DEFAULT 0,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS similarity_analyses (
    id TEXT PRIMARY KEY,
    answer_id TEXT NOT NULL,
    topper_id TEXT NOT NULL,
    scores TEXT NOT NULL,
    feedback TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    FOREIGN KEY (answer_id) REFERENCES answers(id) ON DELETE CASCADE
);
`

// SQLiteStore implements Store on a single SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// timeLayout is fixed width so that stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(v string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, v)
}

// ============================================================================
// Answers
// ============================================================================

const answerColumns = `id, user_id, question_id, topic_id, subtopic_id, answer_text, submitted_at,
    overall_score, structure_score, content_score, depth_score, feedback, evaluated_at, grade_error`

func (s *SQLiteStore) SaveAnswer(ctx context.Context, a *answer.Answer) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO answers (id, user_id, question_id, topic_id, subtopic_id, answer_text, submitted_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		a.ID, a.UserID, a.QuestionID, a.Topic, a.Subtopic, a.Text, formatTime(a.SubmittedAt),
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnswer(row rowScanner) (*answer.Answer, error) {
	var (
		a                                  answer.Answer
		subtopic, feedback, gradeErr       sql.NullString
		evaluatedAt                        sql.NullString
		submittedAt                        string
		overall, structure, content, depth sql.NullFloat64
	)
	if err := row.Scan(&a.ID, &a.UserID, &a.QuestionID, &a.Topic, &subtopic, &a.Text, &submittedAt,
		&overall, &structure, &content, &depth, &feedback, &evaluatedAt, &gradeErr); err != nil {
		return nil, err
	}

	var err error
	if a.SubmittedAt, err = parseTime(submittedAt); err != nil {
		return nil, fmt.Errorf("answer %s: submitted_at: %w", a.ID, err)
	}
	if subtopic.Valid {
		a.Subtopic = &subtopic.String
	}
	if gradeErr.Valid {
		a.GradeError = &gradeErr.String
	}
	if evaluatedAt.Valid {
		at, err := parseTime(evaluatedAt.String)
		if err != nil {
			return nil, fmt.Errorf("answer %s: evaluated_at: %w", a.ID, err)
		}
		a.Evaluation = &answer.Evaluation{
			Scores: answer.Scores{
				Overall:   overall.Float64,
				Structure: structure.Float64,
				Content:   content.Float64,
				Depth:     depth.Float64,
			},
			Feedback:    feedback.String,
			EvaluatedAt: at,
		}
	}
	return &a, nil
}

func (s *SQLiteStore) GetAnswer(ctx context.Context, id string) (*answer.Answer, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+answerColumns+" FROM answers WHERE id = ?", id)
	a, err := scanAnswer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *SQLiteStore) ListAnswers(ctx context.Context, userID string) ([]answer.Answer, error) {
	return s.queryAnswers(ctx,
		"SELECT "+answerColumns+" FROM answers WHERE user_id = ? ORDER BY submitted_at, id",
		userID,
	)
}

func (s *SQLiteStore) ListPendingAnswers(ctx context.Context, limit int) ([]answer.Answer, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	return s.queryAnswers(ctx,
		"SELECT "+answerColumns+" FROM answers WHERE evaluated_at IS NULL ORDER BY submitted_at, id LIMIT ?",
		limit,
	)
}

func (s *SQLiteStore) queryAnswers(ctx context.Context, query string, args ...any) ([]answer.Answer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := make([]answer.Answer, 0)
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		answers = append(answers, *a)
	}
	return answers, rows.Err()
}

func (s *SQLiteStore) SaveEvaluation(ctx context.Context, answerID string, ev answer.Evaluation) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE answers
		SET overall_score = ?, structure_score = ?, content_score = ?, depth_score = ?,
		    feedback = ?, evaluated_at = ?, grade_error = NULL
		WHERE id = ? AND evaluated_at IS NULL`,
		ev.Overall, ev.Structure, ev.Content, ev.Depth, ev.Feedback, formatTime(ev.EvaluatedAt), answerID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		// Either the answer does not exist or it was evaluated already.
		if _, err := s.GetAnswer(ctx, answerID); err != nil {
			return err
		}
		return ErrAlreadyEvaluated
	}
	return nil
}

func (s *SQLiteStore) SaveGradeFailure(ctx context.Context, answerID, reason string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE answers SET grade_error = ? WHERE id = ? AND evaluated_at IS NULL",
		reason, answerID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		if _, err := s.GetAnswer(ctx, answerID); err != nil {
			return err
		}
		return ErrAlreadyEvaluated
	}
	return nil
}
