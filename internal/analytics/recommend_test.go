package analytics_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examprep/backend/internal/analytics"
	"github.com/examprep/backend/internal/domain/answer"
	"github.com/examprep/backend/internal/domain/syllabus"
)

func recommend(tree syllabus.Tree, answers []answer.Answer) []analytics.Recommendation {
	return analytics.NewEngine().Recommendations(analytics.Snapshot{Answers: answers, Syllabus: tree})
}

func TestRecommend_Rules(t *testing.T) {
	tree := syllabus.Tree{Papers: []syllabus.Node{
		paper("p1",
			topic("weak", subtopic("weak-s", 10)),
			topic("moderate", subtopic("moderate-s", 2)),
			topic("strong-done", subtopic("strong-done-s", 2)),
			topic("strong-thin", subtopic("strong-thin-s", 10)),
			topic("strong-mid", subtopic("strong-mid-s", 10)),
			topic("untouched", subtopic("untouched-s", 10)),
		),
	}}
	var answers []answer.Answer
	answers = append(answers, repeat(1, "weak", "weak-s", 3)...)
	answers = append(answers, repeat(2, "moderate", "moderate-s", 6)...)
	answers = append(answers, repeat(2, "strong-done", "strong-done-s", 9)...)
	answers = append(answers, repeat(2, "strong-thin", "strong-thin-s", 9)...)
	answers = append(answers, repeat(6, "strong-mid", "strong-mid-s", 9)...)

	recs := recommend(tree, answers)

	byNode := map[string]analytics.Recommendation{}
	for _, r := range recs {
		byNode[r.NodeID] = r
	}

	for _, id := range []string{"weak", "weak-s"} {
		require.Contains(t, byNode, id)
		assert.Equal(t, analytics.TypeFocusArea, byNode[id].Type)
		assert.Equal(t, analytics.PriorityHigh, byNode[id].Priority)
	}
	for _, id := range []string{"moderate", "moderate-s", "strong-thin", "strong-thin-s"} {
		require.Contains(t, byNode, id)
		assert.Equal(t, analytics.TypePracticeMore, byNode[id].Type)
		assert.Equal(t, analytics.PriorityMedium, byNode[id].Priority)
	}
	for _, id := range []string{"strong-done", "strong-done-s"} {
		require.Contains(t, byNode, id)
		assert.Equal(t, analytics.TypeStrength, byNode[id].Type)
		assert.Equal(t, analytics.PriorityLow, byNode[id].Priority)
	}
	for _, id := range []string{"untouched", "untouched-s", "strong-mid", "strong-mid-s", "p1"} {
		assert.NotContains(t, byNode, id)
	}

	assert.Contains(t, byNode["weak"].Title, "Topic weak")
	assert.Contains(t, byNode["weak"].Description, "3.0")
}

func TestRecommend_OrderAndCap(t *testing.T) {
	var topics []syllabus.Node
	var answers []answer.Answer
	for i := 0; i < 15; i++ {
		id := fmt.Sprintf("t%02d", i)
		topics = append(topics, syllabus.Node{ID: id, Name: id, Kind: syllabus.KindTopic, TargetQuestions: 20})
		answers = append(answers, repeat(15-i, id, "", 2)...)
	}
	tree := syllabus.Tree{Papers: []syllabus.Node{paper("p1", topics...)}}

	recs := recommend(tree, answers)

	require.Len(t, recs, analytics.MaxRecommendations)
	for i, r := range recs {
		assert.Equal(t, analytics.PriorityHigh, r.Priority)
		if i > 0 {
			assert.LessOrEqual(t, recs[i-1].ProgressPercentage, r.ProgressPercentage)
		}
	}
	assert.Equal(t, "t14", recs[0].NodeID)
	assert.Equal(t, "t05", recs[9].NodeID)
}

func TestRecommend_PriorityBeforeProgress(t *testing.T) {
	tree := syllabus.Tree{Papers: []syllabus.Node{
		paper("p1",
			syllabus.Node{ID: "strong", Name: "strong", Kind: syllabus.KindTopic, TargetQuestions: 1},
			syllabus.Node{ID: "moderate", Name: "moderate", Kind: syllabus.KindTopic, TargetQuestions: 100},
			syllabus.Node{ID: "weak", Name: "weak", Kind: syllabus.KindTopic, TargetQuestions: 2},
		),
	}}
	answers := append(repeat(1, "strong", "", 9), repeat(1, "moderate", "", 6)...)
	answers = append(answers, repeat(2, "weak", "", 1)...)

	recs := recommend(tree, answers)

	require.Len(t, recs, 3)
	assert.Equal(t, "weak", recs[0].NodeID)
	assert.Equal(t, "moderate", recs[1].NodeID)
	assert.Equal(t, "strong", recs[2].NodeID)
}

func TestRecommend_SkipsMalformedSubtrees(t *testing.T) {
	tree := syllabus.Tree{Papers: []syllabus.Node{
		paper("p1", topic("t1", subtopic("s1", -1))),
	}}
	recs := recommend(tree, repeat(3, "t1", "s1", 2))
	for _, r := range recs {
		assert.NotEqual(t, "s1", r.NodeID)
	}
}

func TestRecommend_EmptyIsNotNil(t *testing.T) {
	recs := recommend(twoPaperTree(), nil)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecommend_NodeWithoutMeanIsSkipped(t *testing.T) {
	tree := syllabus.Tree{Papers: []syllabus.Node{
		paper("p1", topic("t1", subtopic("s1", 4))),
	}}
	scored := analytics.Stats{Count: 1, Sum: answer.Scores{Overall: 3, Structure: 3, Content: 3, Depth: 3}}
	ann := analytics.Annotations{
		"p1": {Level: analytics.LevelNotStarted, Target: 4},
		// A stale level with no scores behind it.
		"t1": {Level: analytics.LevelWeak, Target: 4},
		"s1": {Stats: scored, Level: analytics.LevelWeak, Target: 4, Progress: 25},
	}

	recs := analytics.Recommend(tree, ann)

	require.Len(t, recs, 1)
	assert.Equal(t, "s1", recs[0].NodeID)
	assert.Contains(t, recs[0].Description, "3.0")
}
