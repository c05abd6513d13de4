package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examprep/backend/internal/domain/answer"
	"github.com/examprep/backend/internal/service"
	"github.com/examprep/backend/internal/store"
)

// stubGrader grades by answer text.
type stubGrader struct{}

func (stubGrader) GradeAnswer(_ context.Context, a answer.Answer) (answer.Evaluation, error) {
	switch a.Text {
	case "unreachable":
		return answer.Evaluation{}, errors.New("connection refused")
	case "nonsense":
		return answer.Evaluation{Scores: answer.Scores{Overall: 42}}, nil
	}
	return answer.Evaluation{
		Scores:      answer.Scores{Overall: 7, Structure: 6, Content: 7, Depth: 8},
		Feedback:    "solid",
		EvaluatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}, nil
}

func newGrading(t *testing.T, m *memStore) *service.GradingService {
	t.Helper()
	logger, _ := testLogger()
	gs := service.NewGradingService(context.Background(), m, stubGrader{}, logger, 2, 4)
	t.Cleanup(gs.Close)
	return gs
}

func submit(t *testing.T, m *memStore, gs *service.GradingService, text string) *answer.Answer {
	t.Helper()
	a := answer.New("u1", "q1", "t1", nil, text, time.Now())
	require.NoError(t, m.SaveAnswer(context.Background(), a))
	require.NoError(t, gs.SubmitGrading(context.Background(), *a))
	return a
}

func TestGradingService_PersistsEvaluation(t *testing.T) {
	m := newMemStore()
	gs := newGrading(t, m)

	ok := submit(t, m, gs, "a thoughtful answer")
	down := submit(t, m, gs, "unreachable")
	bad := submit(t, m, gs, "nonsense")
	gs.Wait()

	got, err := m.GetAnswer(context.Background(), ok.ID)
	require.NoError(t, err)
	require.True(t, got.Evaluated())
	assert.Equal(t, 7.0, got.Evaluation.Overall)
	assert.Equal(t, "solid", got.Evaluation.Feedback)

	got, err = m.GetAnswer(context.Background(), down.ID)
	require.NoError(t, err)
	assert.False(t, got.Evaluated())
	assert.Contains(t, m.failure(down.ID), "connection refused")

	got, err = m.GetAnswer(context.Background(), bad.ID)
	require.NoError(t, err)
	assert.False(t, got.Evaluated())
	assert.Contains(t, m.failure(bad.ID), "between 0 and 10")
}

func TestGradingService_RejectsEvaluatedAnswer(t *testing.T) {
	gs := newGrading(t, newMemStore())

	a := answer.New("u1", "q1", "t1", nil, "done", time.Now())
	a.Evaluation = &answer.Evaluation{}

	assert.ErrorIs(t, gs.SubmitGrading(context.Background(), *a), store.ErrAlreadyEvaluated)
}

func TestGradingService_SubmitAfterClose(t *testing.T) {
	logger, _ := testLogger()
	gs := service.NewGradingService(context.Background(), newMemStore(), stubGrader{}, logger, 1, 1)
	gs.Close()

	a := answer.New("u1", "q1", "t1", nil, "late", time.Now())
	err := gs.SubmitGrading(context.Background(), *a)
	assert.Error(t, err)
	gs.Wait()
}

// countingGrader fails every answer until healthy is set.
type countingGrader struct {
	healthy atomic.Bool
	calls   atomic.Int32
}

func (g *countingGrader) GradeAnswer(ctx context.Context, a answer.Answer) (answer.Evaluation, error) {
	g.calls.Add(1)
	if !g.healthy.Load() {
		return answer.Evaluation{}, errors.New("connection refused")
	}
	return stubGrader{}.GradeAnswer(ctx, a)
}

func TestGradingService_RequeuePendingRetriesFailedAndUnqueued(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	logger, _ := testLogger()
	g := &countingGrader{}

	first := service.NewGradingService(ctx, m, g, logger, 1, 4)
	failed := submit(t, m, first, "graded while the model was down")
	first.Wait()
	first.Close()
	require.Contains(t, m.failure(failed.ID), "connection refused")

	// Stored but never queued, as after a restart.
	lost := answer.New("u2", "q2", "t1", nil, "queued before a restart", time.Now())
	require.NoError(t, m.SaveAnswer(ctx, lost))
	done := answer.New("u1", "q3", "t1", nil, "already graded", time.Now())
	done.Evaluation = &answer.Evaluation{Scores: answer.Scores{Overall: 9}}
	require.NoError(t, m.SaveAnswer(ctx, done))

	g.healthy.Store(true)
	second := service.NewGradingService(ctx, m, g, logger, 2, 4)
	t.Cleanup(second.Close)

	n, err := second.RequeuePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	second.Wait()

	for _, id := range []string{failed.ID, lost.ID} {
		got, err := m.GetAnswer(ctx, id)
		require.NoError(t, err)
		assert.True(t, got.Evaluated(), id)
	}
	assert.Equal(t, int32(3), g.calls.Load())

	n, err = second.RequeuePending(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
