package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examprep/backend/internal/analytics"
	"github.com/examprep/backend/internal/domain/similarity"
)

func analysis(id string, at time.Time, scores map[string]float64) similarity.Analysis {
	return similarity.Analysis{ID: id, AnswerID: "ans-" + id, TopperID: "topper", Scores: scores, CreatedAt: at}
}

func TestAggregateSimilarity(t *testing.T) {
	analyses := []similarity.Analysis{
		analysis("a1", day0, map[string]float64{"overall": 0.8, "keyword": 0.4, "structure": 0.6}),
		analysis("a2", day0, map[string]float64{"overall": 0.6, "keyword": 0.5, "structure": 0.6}),
		analysis("a3", day0, map[string]float64{"overall": 0.9, "keyword": 0.45, "structure": 0.6}),
	}

	stats := analytics.AggregateSimilarity(analyses)

	assert.Equal(t, 3, stats.TotalAnalyses)
	require.NotNil(t, stats.AverageSimilarity)
	assert.InDelta(t, 0.7667, *stats.AverageSimilarity, 0.001)
	assert.InDelta(t, 0.45, stats.DetailedAverages["keyword"], 1e-9)
	assert.InDelta(t, 0.6, stats.DetailedAverages["structure"], 1e-9)

	assert.Equal(t, []string{"overall"}, stats.StrengthAreas)
	assert.Equal(t, []string{"keyword"}, stats.WeaknessAreas)
	assert.NotContains(t, stats.StrengthAreas, "structure")
	assert.NotContains(t, stats.WeaknessAreas, "structure")
}

func TestAggregateSimilarity_DynamicDimensions(t *testing.T) {
	analyses := []similarity.Analysis{
		analysis("a1", day0, map[string]float64{"overall": 0.5, "thinker_coverage": 0.9}),
		analysis("a2", day0, map[string]float64{"overall": 0.5, "case_studies": 0.1}),
	}

	stats := analytics.AggregateSimilarity(analyses)

	assert.InDelta(t, 0.9, stats.DetailedAverages["thinker_coverage"], 1e-9, "mean over the analyses reporting the dimension")
	assert.Equal(t, []string{"thinker_coverage"}, stats.StrengthAreas)
	assert.Equal(t, []string{"case_studies"}, stats.WeaknessAreas)
	assert.Len(t, stats.DetailedAverages, 3)
}

func TestAggregateSimilarity_Boundaries(t *testing.T) {
	stats := analytics.AggregateSimilarity([]similarity.Analysis{
		analysis("a1", day0, map[string]float64{"at_strength": 0.7, "at_weakness": 0.5, "below": 0.4999}),
	})
	assert.Equal(t, []string{"at_strength"}, stats.StrengthAreas)
	assert.Equal(t, []string{"below"}, stats.WeaknessAreas)
	assert.Nil(t, stats.AverageSimilarity, "no overall dimension reported")
}

func TestAggregateSimilarity_Empty(t *testing.T) {
	stats := analytics.AggregateSimilarity(nil)
	assert.Equal(t, 0, stats.TotalAnalyses)
	assert.Nil(t, stats.AverageSimilarity)
	assert.NotNil(t, stats.StrengthAreas)
	assert.NotNil(t, stats.WeaknessAreas)
	assert.Empty(t, stats.DetailedAverages)
}

func TestSimilarityHistory(t *testing.T) {
	var analyses []similarity.Analysis
	for i := 0; i < 12; i++ {
		analyses = append(analyses, analysis(string(rune('a'+i)), day0.Add(time.Duration(i)*time.Hour), map[string]float64{"overall": 0.5}))
	}

	history := analytics.SimilarityHistory(analyses, 0)
	require.Len(t, history, analytics.DefaultHistoryLimit)
	assert.Equal(t, "l", history[0].AnalysisID)
	assert.Equal(t, "c", history[9].AnalysisID)

	limited := analytics.SimilarityHistory(analyses, 3)
	require.Len(t, limited, 3)
	assert.Equal(t, "ans-l", limited[0].AnswerID)
	assert.Equal(t, "a", analyses[0].ID, "input must not be reordered")
}
