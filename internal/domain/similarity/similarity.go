package similarity

import (
	"errors"
	"time"

	"github.com/examprep/backend/internal/id"
)

// OverallDimension is the dimension key averaged into average_similarity.
const OverallDimension = "overall"

// Analysis compares one user answer against a topper's answer.
// Scores maps a dimension name to a value in [0, 1]; the set of
// dimensions is open and may differ between analyses.
type Analysis struct {
	ID        string
	AnswerID  string
	TopperID  string
	Scores    map[string]float64
	Feedback  string
	CreatedAt time.Time
}

// New creates an analysis with a generated ID.
func New(answerID, topperID string, scores map[string]float64, feedback string, createdAt time.Time) *Analysis {
	return &Analysis{
		ID:        id.GenerateID(),
		AnswerID:  answerID,
		TopperID:  topperID,
		Scores:    scores,
		Feedback:  feedback,
		CreatedAt: createdAt,
	}
}

// Validate checks that every score lies in [0, 1].
func (a Analysis) Validate() error {
	if len(a.Scores) == 0 {
		return errors.New("similarity scores cannot be empty")
	}
	for name, v := range a.Scores {
		if name == "" {
			return errors.New("similarity dimension name cannot be empty")
		}
		if v < 0 || v > 1 || v != v {
			return errors.New("similarity scores must be between 0 and 1")
		}
	}
	return nil
}
