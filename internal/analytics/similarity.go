package analytics

import (
	"sort"
	"time"

	"github.com/examprep/backend/internal/domain/similarity"
)

// Dimension thresholds on the 0-1 similarity scale.
const (
	StrengthAreaFrom  = 0.7
	WeaknessAreaBelow = 0.5
)

// SimilarityStats summarises every topper comparison of a learner.
type SimilarityStats struct {
	TotalAnalyses     int                `json:"total_analyses"`
	AverageSimilarity *float64           `json:"average_similarity"`
	DetailedAverages  map[string]float64 `json:"detailed_averages"`
	StrengthAreas     []string           `json:"strength_areas"`
	WeaknessAreas     []string           `json:"weakness_areas"`
}

// AggregateSimilarity averages every dimension found in the analyses. A
// dimension's mean is taken over the analyses that report it. Means in
// [WeaknessAreaBelow, StrengthAreaFrom) are listed in neither area.
func AggregateSimilarity(analyses []similarity.Analysis) SimilarityStats {
	stats := SimilarityStats{
		TotalAnalyses:    len(analyses),
		DetailedAverages: make(map[string]float64),
		StrengthAreas:    make([]string, 0),
		WeaknessAreas:    make([]string, 0),
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, a := range analyses {
		for dim, v := range a.Scores {
			sums[dim] += v
			counts[dim]++
		}
	}

	dims := make([]string, 0, len(sums))
	for dim := range sums {
		dims = append(dims, dim)
	}
	sort.Strings(dims)

	for _, dim := range dims {
		mean := sums[dim] / float64(counts[dim])
		stats.DetailedAverages[dim] = roundTo(mean, 3)
		switch {
		case mean >= StrengthAreaFrom:
			stats.StrengthAreas = append(stats.StrengthAreas, dim)
		case mean < WeaknessAreaBelow:
			stats.WeaknessAreas = append(stats.WeaknessAreas, dim)
		}
		if dim == similarity.OverallDimension {
			avg := roundTo(mean, 3)
			stats.AverageSimilarity = &avg
		}
	}
	return stats
}

// DefaultHistoryLimit bounds the analysis history when no limit is given.
const DefaultHistoryLimit = 10

// HistoryEntry is one past topper comparison.
type HistoryEntry struct {
	AnalysisID string             `json:"analysis_id"`
	AnswerID   string             `json:"user_answer_id"`
	TopperID   string             `json:"topper_id"`
	Scores     map[string]float64 `json:"similarity_scores"`
	Feedback   string             `json:"feedback"`
	AnalyzedAt time.Time          `json:"analyzed_at"`
}

// SimilarityHistory returns the most recent analyses first.
func SimilarityHistory(analyses []similarity.Analysis, limit int) []HistoryEntry {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	sorted := make([]similarity.Analysis, len(analyses))
	copy(sorted, analyses)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]HistoryEntry, len(sorted))
	for i, a := range sorted {
		entries[i] = HistoryEntry{
			AnalysisID: a.ID,
			AnswerID:   a.AnswerID,
			TopperID:   a.TopperID,
			Scores:     a.Scores,
			Feedback:   a.Feedback,
			AnalyzedAt: a.CreatedAt,
		}
	}
	return entries
}
