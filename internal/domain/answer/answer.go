package answer

import (
	"errors"
	"time"

	"github.com/examprep/backend/internal/id"
)

// MaxScore is the upper bound of every evaluation dimension.
const MaxScore = 10.0

// Scores holds one value per evaluation dimension.
type Scores struct {
	Overall   float64 `json:"overall"`
	Structure float64 `json:"structure"`
	Content   float64 `json:"content"`
	Depth     float64 `json:"sociological_depth"`
}

// Add returns the dimension-wise sum of s and o.
func (s Scores) Add(o Scores) Scores {
	return Scores{
		Overall:   s.Overall + o.Overall,
		Structure: s.Structure + o.Structure,
		Content:   s.Content + o.Content,
		Depth:     s.Depth + o.Depth,
	}
}

// Scale multiplies every dimension by f.
func (s Scores) Scale(f float64) Scores {
	return Scores{
		Overall:   s.Overall * f,
		Structure: s.Structure * f,
		Content:   s.Content * f,
		Depth:     s.Depth * f,
	}
}

// Evaluation is the grader's verdict on an answer. It is written at most once.
type Evaluation struct {
	Scores
	Feedback    string    `json:"feedback,omitempty"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// Validate reports whether every dimension lies in [0, MaxScore].
func (e Evaluation) Validate() error {
	for _, v := range []float64{e.Overall, e.Structure, e.Content, e.Depth} {
		if v < 0 || v > MaxScore || v != v {
			return errors.New("evaluation scores must be between 0 and 10")
		}
	}
	return nil
}

// Answer is a learner's submission to a previous-year question.
// Topic and Subtopic hold syllabus node ids.
type Answer struct {
	ID          string
	UserID      string
	QuestionID  string
	Topic       string
	Subtopic    *string // optional
	Text        string
	SubmittedAt time.Time
	Evaluation  *Evaluation // nil while pending
	GradeError  *string     // last grading failure, if any
}

// New creates a pending answer submitted at the given instant.
func New(userID, questionID, topic string, subtopic *string, text string, submittedAt time.Time) *Answer {
	return &Answer{
		ID:          id.GenerateID(),
		UserID:      userID,
		QuestionID:  questionID,
		Topic:       topic,
		Subtopic:    subtopic,
		Text:        text,
		SubmittedAt: submittedAt,
	}
}

// Evaluated reports whether a grader verdict exists.
func (a Answer) Evaluated() bool {
	return a.Evaluation != nil
}

// SubtopicID returns the subtopic id or "" when the answer is tagged at topic level.
func (a Answer) SubtopicID() string {
	if a.Subtopic == nil {
		return ""
	}
	return *a.Subtopic
}
