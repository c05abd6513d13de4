package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examprep/backend/internal/domain/answer"
	"github.com/examprep/backend/internal/domain/similarity"
	"github.com/examprep/backend/internal/domain/syllabus"
	"github.com/examprep/backend/internal/store"
)

var t0 = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func newStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func saveAnswer(t *testing.T, s store.Store, userID, topic string, sub *string, at time.Time) *answer.Answer {
	t.Helper()
	a := answer.New(userID, "q1", topic, sub, "my answer", at)
	require.NoError(t, s.SaveAnswer(context.Background(), a))
	return a
}

func strPtr(v string) *string { return &v }

func TestSQLite_AnswerRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	ist := time.FixedZone("IST", 5*3600+1800)
	a := saveAnswer(t, s, "u1", "t1", strPtr("s1"), t0.In(ist))
	b := saveAnswer(t, s, "u1", "t2", nil, t0.Add(time.Hour))

	got, err := s.GetAnswer(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "t1", got.Topic)
	require.NotNil(t, got.Subtopic)
	assert.Equal(t, "s1", *got.Subtopic)
	assert.True(t, got.SubmittedAt.Equal(t0))
	assert.False(t, got.Evaluated())
	assert.Nil(t, got.GradeError)

	got, err = s.GetAnswer(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Subtopic)

	_, err = s.GetAnswer(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSQLite_ListAnswersByUserInSubmissionOrder(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	late := saveAnswer(t, s, "u1", "t1", nil, t0.Add(2*time.Hour))
	early := saveAnswer(t, s, "u1", "t1", nil, t0)
	saveAnswer(t, s, "u2", "t1", nil, t0)

	answers, err := s.ListAnswers(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, early.ID, answers[0].ID)
	assert.Equal(t, late.ID, answers[1].ID)

	none, err := s.ListAnswers(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestSQLite_EvaluationWrittenOnce(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	a := saveAnswer(t, s, "u1", "t1", nil, t0)

	ev := answer.Evaluation{
		Scores:      answer.Scores{Overall: 7.5, Structure: 6, Content: 8, Depth: 7},
		Feedback:    "good",
		EvaluatedAt: t0.Add(time.Minute),
	}
	require.NoError(t, s.SaveEvaluation(ctx, a.ID, ev))

	got, err := s.GetAnswer(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, got.Evaluated())
	assert.Equal(t, ev.Scores, got.Evaluation.Scores)
	assert.Equal(t, "good", got.Evaluation.Feedback)
	assert.True(t, got.Evaluation.EvaluatedAt.Equal(ev.EvaluatedAt))

	ev.Overall = 1
	assert.ErrorIs(t, s.SaveEvaluation(ctx, a.ID, ev), store.ErrAlreadyEvaluated)
	assert.ErrorIs(t, s.SaveEvaluation(ctx, "missing", ev), store.ErrNotFound)

	got, err = s.GetAnswer(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 7.5, got.Evaluation.Overall)
}

func TestSQLite_GradeFailureKeepsAnswerPending(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	a := saveAnswer(t, s, "u1", "t1", nil, t0)

	require.NoError(t, s.SaveGradeFailure(ctx, a.ID, "grader timeout"))

	got, err := s.GetAnswer(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.Evaluated())
	require.NotNil(t, got.GradeError)
	assert.Equal(t, "grader timeout", *got.GradeError)

	require.NoError(t, s.SaveEvaluation(ctx, a.ID, answer.Evaluation{
		Scores:      answer.Scores{Overall: 5},
		EvaluatedAt: t0,
	}))
	got, err = s.GetAnswer(ctx, a.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GradeError)

	assert.ErrorIs(t, s.SaveGradeFailure(ctx, a.ID, "late"), store.ErrAlreadyEvaluated)
	assert.ErrorIs(t, s.SaveGradeFailure(ctx, "missing", "x"), store.ErrNotFound)
}

func TestSQLite_ListPendingAnswersAcrossUsers(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	failed := saveAnswer(t, s, "u2", "t1", nil, t0.Add(time.Hour))
	done := saveAnswer(t, s, "u1", "t1", nil, t0)
	oldest := saveAnswer(t, s, "u1", "t1", nil, t0.Add(-time.Hour))
	newest := saveAnswer(t, s, "u1", "t2", nil, t0.Add(2*time.Hour))

	require.NoError(t, s.SaveEvaluation(ctx, done.ID, answer.Evaluation{Scores: answer.Scores{Overall: 6}, EvaluatedAt: t0}))
	require.NoError(t, s.SaveGradeFailure(ctx, failed.ID, "grader timeout"))

	pending, err := s.ListPendingAnswers(ctx, 0)
	require.NoError(t, err)
	ids := make([]string, len(pending))
	for i, a := range pending {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{oldest.ID, failed.ID, newest.ID}, ids)
	require.NotNil(t, pending[1].GradeError)

	limited, err := s.ListPendingAnswers(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSQLite_SyllabusReplaceKeepsOrderAndShape(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	empty, err := s.GetSyllabus(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Papers)

	tree := syllabus.Tree{Papers: []syllabus.Node{
		{ID: "p2", Name: "Paper 2", Kind: syllabus.KindPaper, Children: []syllabus.Node{
			{ID: "t9", Name: "Topic 9", Kind: syllabus.KindTopic, Children: []syllabus.Node{
				{ID: "s9", Name: "Sub 9", Code: "P2_9.1", Kind: syllabus.KindSubtopic, TargetQuestions: 4},
				{ID: "s1", Name: "Sub 1", Kind: syllabus.KindSubtopic, TargetQuestions: -2},
			}},
		}},
		{ID: "p1", Name: "Paper 1", Kind: syllabus.KindPaper},
	}}
	require.NoError(t, s.ReplaceSyllabus(ctx, tree))

	got, err := s.GetSyllabus(ctx)
	require.NoError(t, err)
	assert.Equal(t, tree, got)

	replacement := syllabus.Tree{Papers: []syllabus.Node{{ID: "only", Name: "Only", Kind: syllabus.KindPaper}}}
	require.NoError(t, s.ReplaceSyllabus(ctx, replacement))
	got, err = s.GetSyllabus(ctx)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestSQLite_SyllabusReplaceIsAtomic(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	original := syllabus.Tree{Papers: []syllabus.Node{{ID: "p1", Name: "Paper 1", Kind: syllabus.KindPaper}}}
	require.NoError(t, s.ReplaceSyllabus(ctx, original))

	dup := syllabus.Tree{Papers: []syllabus.Node{
		{ID: "x", Name: "X", Kind: syllabus.KindPaper},
		{ID: "x", Name: "X again", Kind: syllabus.KindPaper},
	}}
	assert.Error(t, s.ReplaceSyllabus(ctx, dup))

	got, err := s.GetSyllabus(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestSQLite_SimilarityAnalysesScopedToUser(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	mine := saveAnswer(t, s, "u1", "t1", nil, t0)
	theirs := saveAnswer(t, s, "u2", "t1", nil, t0)

	first := similarity.New(mine.ID, "topper-1", map[string]float64{"overall": 0.8, "keyword_coverage": 0.4}, "close", t0.Add(time.Hour))
	second := similarity.New(mine.ID, "topper-2", map[string]float64{"overall": 0.6}, "", t0.Add(2*time.Hour))
	other := similarity.New(theirs.ID, "topper-1", map[string]float64{"overall": 0.1}, "", t0)
	for _, a := range []*similarity.Analysis{second, first, other} {
		require.NoError(t, s.SaveSimilarityAnalysis(ctx, a))
	}

	got, err := s.ListSimilarityAnalyses(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, first.Scores, got[0].Scores)
	assert.Equal(t, "close", got[0].Feedback)
	assert.True(t, got[0].CreatedAt.Equal(first.CreatedAt))
	assert.Equal(t, second.ID, got[1].ID)

	orphan := similarity.New("missing", "topper-1", map[string]float64{"overall": 0.5}, "", t0)
	assert.ErrorIs(t, s.SaveSimilarityAnalysis(ctx, orphan), store.ErrNotFound)
}
