// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "examprep"

var (
	// computeDuration measures one analytics query, fetch included.
	// Labels: operation, status (ok, error)
	computeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "compute_duration_seconds",
		Help:      "Duration of analytics queries in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"operation", "status"})

	// snapshotAnswers tracks how many answers each query had to fold.
	snapshotAnswers = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "snapshot_answers",
		Help:      "Number of answers in the snapshot of an analytics query",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})

	// integrityIssues counts malformed syllabus nodes seen while computing progress.
	// Labels: skipped (true when the subtree was left out)
	integrityIssues = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "analytics",
		Name:      "integrity_issues_total",
		Help:      "Syllabus data integrity issues found during progress computation",
	}, []string{"skipped"})

	// gradingOutcomes counts finished grading jobs.
	// Labels: outcome (evaluated, failed, dropped)
	gradingOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "grading",
		Name:      "outcomes_total",
		Help:      "Finished grading jobs by outcome",
	}, []string{"outcome"})

	gradingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "grading",
		Name:      "duration_seconds",
		Help:      "Time spent grading one answer",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
	})
)

// ObserveCompute records the duration of an analytics operation.
func ObserveCompute(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	computeDuration.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
}

func ObserveSnapshot(answers int) {
	snapshotAnswers.Observe(float64(answers))
}

func IntegrityIssue(skipped bool) {
	label := "false"
	if skipped {
		label = "true"
	}
	integrityIssues.WithLabelValues(label).Inc()
}

// Grading outcomes.
const (
	OutcomeEvaluated = "evaluated"
	OutcomeFailed    = "failed"
	OutcomeDropped   = "dropped"
)

func GradingFinished(outcome string, took time.Duration) {
	gradingOutcomes.WithLabelValues(outcome).Inc()
	if outcome != OutcomeDropped {
		gradingDuration.Observe(took.Seconds())
	}
}

// Handler serves the default registry for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}
