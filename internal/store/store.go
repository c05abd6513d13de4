package store

import (
	"context"
	"errors"

	"github.com/examprep/backend/internal/domain/answer"
	"github.com/examprep/backend/internal/domain/similarity"
	"github.com/examprep/backend/internal/domain/syllabus"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyEvaluated = errors.New("answer already evaluated")
)

// Store is the read/write surface the services need. Reads return snapshots;
// callers never observe a partially written record.
type Store interface {
	SaveAnswer(ctx context.Context, a *answer.Answer) error
	GetAnswer(ctx context.Context, id string) (*answer.Answer, error)
	ListAnswers(ctx context.Context, userID string) ([]answer.Answer, error)
	// ListPendingAnswers returns unevaluated answers of every user, oldest
	// first. limit <= 0 means no limit.
	ListPendingAnswers(ctx context.Context, limit int) ([]answer.Answer, error)
	// SaveEvaluation attaches the evaluation once; a second call fails with
	// ErrAlreadyEvaluated.
	SaveEvaluation(ctx context.Context, answerID string, ev answer.Evaluation) error
	SaveGradeFailure(ctx context.Context, answerID, reason string) error

	GetSyllabus(ctx context.Context) (syllabus.Tree, error)
	ReplaceSyllabus(ctx context.Context, tree syllabus.Tree) error

	SaveSimilarityAnalysis(ctx context.Context, a *similarity.Analysis) error
	ListSimilarityAnalyses(ctx context.Context, userID string) ([]similarity.Analysis, error)
}
