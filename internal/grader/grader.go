package grader

import (
	"context"

	"github.com/examprep/backend/internal/domain/answer"
)

// Grader scores a learner's answer on every evaluation dimension.
// Implementations may call an LLM or return canned results (for tests).
type Grader interface {
	GradeAnswer(ctx context.Context, a answer.Answer) (answer.Evaluation, error)
}
