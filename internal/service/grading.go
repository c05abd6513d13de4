// internal/service/grading.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/examprep/backend/internal/domain/answer"
	"github.com/examprep/backend/internal/grader"
	"github.com/examprep/backend/internal/metrics"
	"github.com/examprep/backend/internal/store"
	"github.com/examprep/backend/internal/worker"
)

// gradeOutcome is what a grading job reports back to the collector.
type gradeOutcome struct {
	answerID string
	outcome  string
	took     time.Duration
	err      error
}

// GradingService grades pending answers asynchronously on a worker pool and
// persists the evaluation, or the failure, through the store.
type GradingService struct {
	store  store.Store
	grader grader.Grader
	logger *slog.Logger

	pool    *worker.Pool[gradeOutcome]
	pending sync.WaitGroup
	done    chan struct{}
}

// NewGradingService starts the grading workers. Jobs run with ctx, not
// the context of the request that queued them, so they outlive the request.
func NewGradingService(ctx context.Context, s store.Store, g grader.Grader, logger *slog.Logger, workers, queue int) *GradingService {
	gs := &GradingService{
		store:  s,
		grader: g,
		logger: logger,
		pool:   worker.NewPool[gradeOutcome](ctx, workers, queue),
		done:   make(chan struct{}),
	}
	go gs.collect()
	return gs
}

// SubmitGrading queues a pending answer. It blocks while the queue is full
// until ctx is done.
func (gs *GradingService) SubmitGrading(ctx context.Context, a answer.Answer) error {
	if a.Evaluated() {
		return store.ErrAlreadyEvaluated
	}
	gs.pending.Add(1)
	err := gs.pool.Submit(ctx, a.ID, func(ctx context.Context) gradeOutcome {
		return gs.grade(ctx, a)
	})
	if err != nil {
		gs.pending.Done()
		metrics.GradingFinished(metrics.OutcomeDropped, 0)
		gs.logger.Warn("grading not queued", "answer_id", a.ID, "error", err)
		return err
	}
	return nil
}

// RequeuePending queues every answer left unevaluated, oldest first: jobs
// lost to a restart or a full queue, and answers whose grading failed. It
// stops at the first answer that cannot be queued and returns how many were.
func (gs *GradingService) RequeuePending(ctx context.Context) (int, error) {
	pending, err := gs.store.ListPendingAnswers(ctx, 0)
	if err != nil {
		return 0, fmt.Errorf("list pending answers: %w", err)
	}
	for i, a := range pending {
		if err := gs.SubmitGrading(ctx, a); err != nil {
			return i, err
		}
	}
	if len(pending) > 0 {
		gs.logger.Info("pending answers requeued", "count", len(pending))
	}
	return len(pending), nil
}

// Wait blocks until every queued answer has been graded.
func (gs *GradingService) Wait() {
	gs.pending.Wait()
}

// Close stops accepting answers and waits for the queued ones.
func (gs *GradingService) Close() {
	gs.pool.Close()
	<-gs.done
}

func (gs *GradingService) collect() {
	defer close(gs.done)
	for r := range gs.pool.Results() {
		o := r.Output
		metrics.GradingFinished(o.outcome, o.took)
		if o.err != nil {
			gs.logger.Error("grading failed",
				"answer_id", o.answerID,
				"outcome", o.outcome,
				"error", o.err,
			)
		} else {
			gs.logger.Info("answer graded", "answer_id", o.answerID, "duration", o.took)
		}
		gs.pending.Done()
	}
}

// grade calls the grader and persists the result.
func (gs *GradingService) grade(ctx context.Context, a answer.Answer) gradeOutcome {
	start := time.Now()
	out := gradeOutcome{answerID: a.ID, outcome: metrics.OutcomeEvaluated}

	ev, err := gs.grader.GradeAnswer(ctx, a)
	if err == nil {
		err = ev.Validate()
	}
	if err != nil {
		out.outcome, out.err = metrics.OutcomeFailed, err
		if saveErr := gs.store.SaveGradeFailure(ctx, a.ID, err.Error()); saveErr != nil {
			out.err = errors.Join(err, saveErr)
		}
		out.took = time.Since(start)
		return out
	}

	if err := gs.store.SaveEvaluation(ctx, a.ID, ev); err != nil {
		out.outcome, out.err = metrics.OutcomeFailed, err
	}
	out.took = time.Since(start)
	return out
}
