package answer_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/examprep/backend/internal/domain/answer"
)

func TestNew(t *testing.T) {
	sub := "p1-t1-s1"
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	a := answer.New("u1", "q1", "p1-t1", &sub, "text", at)

	assert.NotEmpty(t, a.ID)
	assert.Len(t, a.ID, 16)
	assert.False(t, a.Evaluated())
	assert.Equal(t, "p1-t1-s1", a.SubtopicID())
	assert.Equal(t, at, a.SubmittedAt)
}

func TestNew_UniqueIDs(t *testing.T) {
	a := answer.New("u1", "q1", "t", nil, "x", time.Now())
	b := answer.New("u1", "q1", "t", nil, "x", time.Now())
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, "", a.SubtopicID())
}

func TestEvaluationValidate(t *testing.T) {
	ok := answer.Evaluation{Scores: answer.Scores{Overall: 10, Structure: 0, Content: 5.5, Depth: 7}}
	assert.NoError(t, ok.Validate())

	tooHigh := answer.Evaluation{Scores: answer.Scores{Overall: 10.5}}
	assert.Error(t, tooHigh.Validate())

	negative := answer.Evaluation{Scores: answer.Scores{Depth: -1}}
	assert.Error(t, negative.Validate())

	nan := answer.Evaluation{Scores: answer.Scores{Content: math.NaN()}}
	assert.Error(t, nan.Validate())
}

func TestScoresArithmetic(t *testing.T) {
	s := answer.Scores{Overall: 1, Structure: 2, Content: 3, Depth: 4}
	sum := s.Add(s)
	assert.Equal(t, answer.Scores{Overall: 2, Structure: 4, Content: 6, Depth: 8}, sum)
	assert.Equal(t, s, sum.Scale(0.5))
}
