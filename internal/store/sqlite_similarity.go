package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/examprep/backend/internal/domain/similarity"
)

// ============================================================================
// Similarity analyses
// ============================================================================

func (s *SQLiteStore) SaveSimilarityAnalysis(ctx context.Context, a *similarity.Analysis) error {
	if _, err := s.GetAnswer(ctx, a.AnswerID); err != nil {
		return err
	}
	scores, err := json.Marshal(a.Scores)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO similarity_analyses (id, answer_id, topper_id, scores, feedback, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		a.ID, a.AnswerID, a.TopperID, string(scores), a.Feedback, formatTime(a.CreatedAt),
	)
	return err
}

// ListSimilarityAnalyses returns the analyses of every answer owned by userID.
func (s *SQLiteStore) ListSimilarityAnalyses(ctx context.Context, userID string) ([]similarity.Analysis, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sa.id, sa.answer_id, sa.topper_id, sa.scores, sa.feedback, sa.created_at
		FROM similarity_analyses sa
		JOIN answers a ON a.id = sa.answer_id
		WHERE a.user_id = ?
		ORDER BY sa.created_at, sa.id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	analyses := make([]similarity.Analysis, 0)
	for rows.Next() {
		var a similarity.Analysis
		var scores, createdAt string
		if err := rows.Scan(&a.ID, &a.AnswerID, &a.TopperID, &scores, &a.Feedback, &createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(scores), &a.Scores); err != nil {
			return nil, fmt.Errorf("analysis %s: scores: %w", a.ID, err)
		}
		if a.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("analysis %s: created_at: %w", a.ID, err)
		}
		analyses = append(analyses, a)
	}
	return analyses, rows.Err()
}
