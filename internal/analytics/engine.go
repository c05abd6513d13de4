// Package analytics turns a snapshot of a learner's answers, the syllabus and
// topper comparisons into progress, mastery, timeline, streak, recommendation
// and similarity reports. Every computation is a pure function of the
// snapshot, the clock reading and the time zone; nothing is cached.
package analytics

import (
	"sort"
	"time"

	"github.com/examprep/backend/internal/domain/answer"
	"github.com/examprep/backend/internal/domain/similarity"
	"github.com/examprep/backend/internal/domain/syllabus"
)

// Snapshot is the immutable input of one computation.
type Snapshot struct {
	Answers  []answer.Answer
	Syllabus syllabus.Tree
	Analyses []similarity.Analysis
}

// Engine computes reports over snapshots. It holds configuration only and is
// safe for concurrent use.
type Engine struct {
	now        func() time.Time
	loc        *time.Location
	partitions int
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the source of "now".
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLocation sets the time zone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithPartitions aggregates large snapshots in n concurrent partitions.
func WithPartitions(n int) Option {
	return func(e *Engine) { e.partitions = n }
}

// NewEngine returns an engine using the wall clock in UTC unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now, loc: time.UTC, partitions: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// In returns a copy of the engine bound to another time zone.
func (e *Engine) In(loc *time.Location) *Engine {
	c := *e
	if loc != nil {
		c.loc = loc
	}
	return &c
}

// Location returns the engine's time zone.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// ordered returns the answers sorted by submission time then id, so that
// every sum is accumulated in the same order whatever the fetch order.
func ordered(answers []answer.Answer) []answer.Answer {
	out := make([]answer.Answer, len(answers))
	copy(out, answers)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.Before(out[j].SubmittedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (e *Engine) annotate(s Snapshot) (Annotations, []DataIntegrityError, []answer.Answer) {
	answers := ordered(s.Answers)
	groups := AggregatePartitioned(answers, ByNode, e.partitions)
	ann, issues := Annotate(s.Syllabus, groups)
	return ann, issues, answers
}

// SyllabusOverview reports hierarchical completion percentages.
func (e *Engine) SyllabusOverview(s Snapshot) Overview {
	ann, issues, answers := e.annotate(s)
	ov := BuildOverview(s.Syllabus, ann, issues)
	for _, a := range answers {
		if !a.Evaluated() {
			ov.PendingAnswers++
			continue
		}
		key, _ := ByNode(a)
		if na, ok := ann[key]; !ok || na.Err != nil {
			ov.UnmappedAnswers++
		}
	}
	return ov
}

// StrengthAnalysis classifies every topic.
func (e *Engine) StrengthAnalysis(s Snapshot) StrengthAnalysis {
	ann, _, _ := e.annotate(s)
	return ClassifyTopics(s.Syllabus, ann)
}

// Timeline returns exactly days daily buckets ending today.
func (e *Engine) Timeline(s Snapshot, days int) ([]DayBucket, error) {
	return BuildTimeline(ordered(s.Answers), days, e.now(), e.loc)
}

// Streak returns the current run of consecutive days with evaluated answers.
func (e *Engine) Streak(s Snapshot) int {
	var days []time.Time
	for _, a := range s.Answers {
		if a.Evaluated() {
			days = append(days, a.SubmittedAt)
		}
	}
	return Streak(days, e.now(), e.loc)
}

// Recommendations returns at most MaxRecommendations study suggestions.
func (e *Engine) Recommendations(s Snapshot) []Recommendation {
	ann, _, _ := e.annotate(s)
	return Recommend(s.Syllabus, ann)
}

// SimilarityStats aggregates the topper comparisons.
func (e *Engine) SimilarityStats(s Snapshot) SimilarityStats {
	return AggregateSimilarity(s.Analyses)
}

// SimilarityHistory lists the latest topper comparisons.
func (e *Engine) SimilarityHistory(s Snapshot, limit int) []HistoryEntry {
	return SimilarityHistory(s.Analyses, limit)
}

// Summary computes the dashboard headline numbers.
func (e *Engine) Summary(s Snapshot) Summary {
	return Summarize(ordered(s.Answers), s.Syllabus, e.now())
}

// TopicScores breaks scores down by topic tag.
func (e *Engine) TopicScores(s Snapshot) []TopicScore {
	return TopicScores(ordered(s.Answers))
}

// TopicDetail drills into a single topic.
func (e *Engine) TopicDetail(s Snapshot, topicID string) (TopicDetail, error) {
	ann, _, answers := e.annotate(s)
	return DetailTopic(s.Syllabus, ann, answers, topicID)
}
