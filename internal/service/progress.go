// internal/service/progress.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/examprep/backend/internal/analytics"
	"github.com/examprep/backend/internal/metrics"
	"github.com/examprep/backend/internal/store"
)

var tracer = otel.Tracer("examprep.service")

// ProgressService answers analytics queries for one learner. Every call reads
// a fresh snapshot from the store and recomputes; nothing is cached.
type ProgressService struct {
	store  store.Store
	engine *analytics.Engine
	logger *slog.Logger
}

// NewProgressService creates a ProgressService. The engine's location is the
// default zone for calls that pass a nil location.
func NewProgressService(s store.Store, engine *analytics.Engine, logger *slog.Logger) *ProgressService {
	return &ProgressService{store: s, engine: engine, logger: logger}
}

// Location returns the default zone used for calendar days.
func (ps *ProgressService) Location() *time.Location {
	return ps.engine.Location()
}

type need uint8

const (
	needAnswers need = 1 << iota
	needSyllabus
	needAnalyses
)

// snapshot fetches the requested records concurrently.
func (ps *ProgressService) snapshot(ctx context.Context, userID string, n need) (analytics.Snapshot, error) {
	var snap analytics.Snapshot
	g, ctx := errgroup.WithContext(ctx)

	if n&needAnswers != 0 {
		g.Go(func() error {
			answers, err := ps.store.ListAnswers(ctx, userID)
			snap.Answers = answers
			return err
		})
	}
	if n&needSyllabus != 0 {
		g.Go(func() error {
			tree, err := ps.store.GetSyllabus(ctx)
			snap.Syllabus = tree
			return err
		})
	}
	if n&needAnalyses != 0 {
		g.Go(func() error {
			analyses, err := ps.store.ListSimilarityAnalyses(ctx, userID)
			snap.Analyses = analyses
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return analytics.Snapshot{}, err
	}
	metrics.ObserveSnapshot(len(snap.Answers))
	return snap, nil
}

// observe wraps one query in a span, a duration metric and an error log.
func observe[T any](ctx context.Context, ps *ProgressService, op, userID string, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := tracer.Start(ctx, "ProgressService."+op, trace.WithAttributes(
		attribute.String("user_id", userID),
	))
	defer span.End()

	start := time.Now()
	v, err := fn(ctx)
	metrics.ObserveCompute(op, start, err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		level := slog.LevelError
		if isClientError(err) {
			level = slog.LevelInfo
		}
		ps.logger.Log(ctx, level, "analytics query failed",
			"operation", op,
			"user_id", userID,
			"error", err,
		)
		return v, err
	}
	ps.logger.Debug("analytics query",
		"operation", op,
		"user_id", userID,
		"duration", time.Since(start),
	)
	return v, nil
}

func isClientError(err error) bool {
	return errors.Is(err, analytics.ErrInvalidWindow) || errors.Is(err, analytics.ErrUnknownTopic)
}

// reportIssues logs every syllabus integrity problem once per query.
func (ps *ProgressService) reportIssues(ctx context.Context, userID string, issues []analytics.DataIntegrityError) {
	for _, issue := range issues {
		metrics.IntegrityIssue(issue.SubtreeSkipped)
		ps.logger.WarnContext(ctx, "syllabus data integrity issue",
			"user_id", userID,
			"node_id", issue.NodeID,
			"reason", issue.Reason,
			"subtree_skipped", issue.SubtreeSkipped,
		)
	}
}

// SyllabusOverview returns the progress-annotated syllabus tree.
func (ps *ProgressService) SyllabusOverview(ctx context.Context, userID string) (analytics.Overview, error) {
	return observe(ctx, ps, "syllabus_overview", userID, func(ctx context.Context) (analytics.Overview, error) {
		snap, err := ps.snapshot(ctx, userID, needAnswers|needSyllabus)
		if err != nil {
			return analytics.Overview{}, err
		}
		ov := ps.engine.SyllabusOverview(snap)
		ps.reportIssues(ctx, userID, ov.Issues)
		return ov, nil
	})
}

// StrengthAnalysis classifies every topic of the syllabus.
func (ps *ProgressService) StrengthAnalysis(ctx context.Context, userID string) (analytics.StrengthAnalysis, error) {
	return observe(ctx, ps, "strength_analysis", userID, func(ctx context.Context) (analytics.StrengthAnalysis, error) {
		snap, err := ps.snapshot(ctx, userID, needAnswers|needSyllabus)
		if err != nil {
			return analytics.StrengthAnalysis{}, err
		}
		return ps.engine.StrengthAnalysis(snap), nil
	})
}

// Timeline returns days daily buckets ending today in loc (nil: default zone).
func (ps *ProgressService) Timeline(ctx context.Context, userID string, days int, loc *time.Location) ([]analytics.DayBucket, error) {
	return observe(ctx, ps, "timeline", userID, func(ctx context.Context) ([]analytics.DayBucket, error) {
		if err := analytics.ValidateWindow(days); err != nil {
			return nil, err
		}
		snap, err := ps.snapshot(ctx, userID, needAnswers)
		if err != nil {
			return nil, err
		}
		return ps.engine.In(loc).Timeline(snap, days)
	})
}

// Streak returns the current practice streak in loc (nil: default zone).
func (ps *ProgressService) Streak(ctx context.Context, userID string, loc *time.Location) (int, error) {
	return observe(ctx, ps, "streak", userID, func(ctx context.Context) (int, error) {
		snap, err := ps.snapshot(ctx, userID, needAnswers)
		if err != nil {
			return 0, err
		}
		return ps.engine.In(loc).Streak(snap), nil
	})
}

// Recommendations returns the prioritised study suggestions.
func (ps *ProgressService) Recommendations(ctx context.Context, userID string) ([]analytics.Recommendation, error) {
	return observe(ctx, ps, "recommendations", userID, func(ctx context.Context) ([]analytics.Recommendation, error) {
		snap, err := ps.snapshot(ctx, userID, needAnswers|needSyllabus)
		if err != nil {
			return nil, err
		}
		return ps.engine.Recommendations(snap), nil
	})
}

// SimilarityStats aggregates the learner's topper comparisons.
func (ps *ProgressService) SimilarityStats(ctx context.Context, userID string) (analytics.SimilarityStats, error) {
	return observe(ctx, ps, "similarity_stats", userID, func(ctx context.Context) (analytics.SimilarityStats, error) {
		snap, err := ps.snapshot(ctx, userID, needAnalyses)
		if err != nil {
			return analytics.SimilarityStats{}, err
		}
		return ps.engine.SimilarityStats(snap), nil
	})
}

// SimilarityHistory lists the latest topper comparisons.
func (ps *ProgressService) SimilarityHistory(ctx context.Context, userID string, limit int) ([]analytics.HistoryEntry, error) {
	return observe(ctx, ps, "similarity_history", userID, func(ctx context.Context) ([]analytics.HistoryEntry, error) {
		snap, err := ps.snapshot(ctx, userID, needAnalyses)
		if err != nil {
			return nil, err
		}
		return ps.engine.SimilarityHistory(snap, limit), nil
	})
}

// Summary returns the dashboard headline numbers.
func (ps *ProgressService) Summary(ctx context.Context, userID string) (analytics.Summary, error) {
	return observe(ctx, ps, "summary", userID, func(ctx context.Context) (analytics.Summary, error) {
		snap, err := ps.snapshot(ctx, userID, needAnswers|needSyllabus)
		if err != nil {
			return analytics.Summary{}, err
		}
		return ps.engine.Summary(snap), nil
	})
}

// TopicScores returns the per-topic score breakdown.
func (ps *ProgressService) TopicScores(ctx context.Context, userID string) ([]analytics.TopicScore, error) {
	return observe(ctx, ps, "topic_scores", userID, func(ctx context.Context) ([]analytics.TopicScore, error) {
		snap, err := ps.snapshot(ctx, userID, needAnswers)
		if err != nil {
			return nil, err
		}
		return ps.engine.TopicScores(snap), nil
	})
}

// TopicDetail drills into one topic; an unknown topic fails with
// analytics.ErrUnknownTopic.
func (ps *ProgressService) TopicDetail(ctx context.Context, userID, topicID string) (analytics.TopicDetail, error) {
	return observe(ctx, ps, "topic_detail", userID, func(ctx context.Context) (analytics.TopicDetail, error) {
		snap, err := ps.snapshot(ctx, userID, needAnswers|needSyllabus)
		if err != nil {
			return analytics.TopicDetail{}, err
		}
		return ps.engine.TopicDetail(snap, topicID)
	})
}
