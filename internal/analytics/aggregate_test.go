package analytics_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examprep/backend/internal/analytics"
	"github.com/examprep/backend/internal/domain/answer"
)

func TestAggregate_SkipsPendingAnswers(t *testing.T) {
	answers := []answer.Answer{
		evaluated("a1", "t1", "s1", 6, day0),
		evaluated("a2", "t1", "s1", 8, day0),
		pending("a3", "t1", "s1", day0),
	}

	groups := analytics.Aggregate(answers, analytics.BySubtopic)

	require.Contains(t, groups, "s1")
	s := groups["s1"]
	assert.Equal(t, 2, s.Count)
	require.NotNil(t, s.Mean())
	assert.InDelta(t, 7.0, s.Mean().Overall, 1e-9)
	assert.InDelta(t, 6.0, s.Mean().Structure, 1e-9)
	assert.InDelta(t, 8.0, s.Mean().Depth, 1e-9)
}

func TestStats_EmptyGroupHasNoMean(t *testing.T) {
	var s analytics.Stats
	assert.Nil(t, s.Mean())
	assert.Nil(t, s.MeanOverall())

	groups := analytics.Aggregate([]answer.Answer{pending("a1", "t1", "", day0)}, analytics.ByTopic)
	assert.Empty(t, groups)
	assert.Nil(t, groups["t1"].MeanOverall(), "missing group must read as no data, not zero")
}

func TestKeyFuncs(t *testing.T) {
	withSub := evaluated("a1", "t1", "s1", 5, day0)
	topicOnly := evaluated("a2", "t1", "", 5, day0)

	k, ok := analytics.ByNode(withSub)
	assert.True(t, ok)
	assert.Equal(t, "s1", k)

	k, ok = analytics.ByNode(topicOnly)
	assert.True(t, ok)
	assert.Equal(t, "t1", k)

	_, ok = analytics.BySubtopic(topicOnly)
	assert.False(t, ok)

	_, ok = analytics.ByTopic(evaluated("a3", "", "", 5, day0))
	assert.False(t, ok)
}

func TestByDay_UsesCallerTimeZone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	late := evaluated("a1", "t1", "", 5, time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC))

	utcKey, _ := analytics.ByDay(time.UTC)(late)
	istKey, _ := analytics.ByDay(ist)(late)

	assert.Equal(t, "2024-01-01", utcKey)
	assert.Equal(t, "2024-01-02", istKey)
}

func TestAggregate_OrderIndependent(t *testing.T) {
	answers := []answer.Answer{
		evaluated("a1", "t1", "", 3, day0),
		evaluated("a2", "t2", "", 9, day0),
		evaluated("a3", "t1", "", 4, day0),
		evaluated("a4", "t1", "", 10, day0),
	}
	reversed := make([]answer.Answer, len(answers))
	for i, a := range answers {
		reversed[len(answers)-1-i] = a
	}

	assert.Equal(t, analytics.Aggregate(answers, analytics.ByTopic), analytics.Aggregate(reversed, analytics.ByTopic))
}

func TestGroupsMerge(t *testing.T) {
	left := analytics.Aggregate([]answer.Answer{evaluated("a1", "t1", "", 4, day0)}, analytics.ByTopic)
	right := analytics.Aggregate([]answer.Answer{
		evaluated("a2", "t1", "", 8, day0),
		evaluated("a3", "t2", "", 2, day0),
	}, analytics.ByTopic)

	merged := left.Merge(right)

	assert.Equal(t, 2, merged["t1"].Count)
	assert.InDelta(t, 6.0, *merged["t1"].MeanOverall(), 1e-9)
	assert.Equal(t, 1, merged["t2"].Count)
	assert.Equal(t, 1, left["t1"].Count, "merge must not mutate its receiver")
}

func TestAggregatePartitioned_MatchesSequential(t *testing.T) {
	var answers []answer.Answer
	for i := 0; i < 101; i++ {
		topic := fmt.Sprintf("t%d", i%7)
		answers = append(answers, evaluated(fmt.Sprintf("a%03d", i), topic, "", float64(i%10+1), day0))
	}

	want := analytics.Aggregate(answers, analytics.ByTopic)
	for _, parts := range []int{0, 1, 2, 4, 8} {
		got := analytics.AggregatePartitioned(answers, analytics.ByTopic, parts)
		assert.Equal(t, want, got, "partitions=%d", parts)
	}
}
