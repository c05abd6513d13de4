package analytics

import (
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/examprep/backend/internal/domain/answer"
)

// DayLayout is the calendar-day key format used for day buckets.
const DayLayout = "2006-01-02"

// Stats aggregates the evaluated answers of one group.
type Stats struct {
	Count int
	Sum   answer.Scores
}

// Merge combines two partial aggregates of disjoint answer sets.
func (s Stats) Merge(o Stats) Stats {
	return Stats{Count: s.Count + o.Count, Sum: s.Sum.Add(o.Sum)}
}

// Mean returns the per-dimension mean, or nil when the group is empty.
// An empty group has no mean; it is never reported as zero.
func (s Stats) Mean() *answer.Scores {
	if s.Count == 0 {
		return nil
	}
	m := s.Sum.Scale(1 / float64(s.Count))
	return &m
}

// MeanOverall returns the mean overall score, or nil when the group is empty.
func (s Stats) MeanOverall() *float64 {
	m := s.Mean()
	if m == nil {
		return nil
	}
	return &m.Overall
}

// Groups maps a group key to its aggregate.
type Groups map[string]Stats

// Merge folds o into a copy of g.
func (g Groups) Merge(o Groups) Groups {
	out := make(Groups, len(g)+len(o))
	for k, v := range g {
		out[k] = v
	}
	for k, v := range o {
		out[k] = out[k].Merge(v)
	}
	return out
}

// KeyFunc extracts the group key of an answer. ok=false drops the answer.
type KeyFunc func(a answer.Answer) (key string, ok bool)

// ByTopic groups answers by their topic id.
func ByTopic(a answer.Answer) (string, bool) {
	return a.Topic, a.Topic != ""
}

// BySubtopic groups answers by subtopic id; topic-level answers are dropped.
func BySubtopic(a answer.Answer) (string, bool) {
	sub := a.SubtopicID()
	return sub, sub != ""
}

// ByNode groups answers by the most specific syllabus node they are tagged with.
func ByNode(a answer.Answer) (string, bool) {
	if sub := a.SubtopicID(); sub != "" {
		return sub, true
	}
	return ByTopic(a)
}

// ByDay groups answers by the calendar day of submission in loc.
func ByDay(loc *time.Location) KeyFunc {
	return func(a answer.Answer) (string, bool) {
		return a.SubmittedAt.In(loc).Format(DayLayout), true
	}
}

// Aggregate groups the evaluated answers by key. Pending answers carry no
// scores and are skipped.
func Aggregate(answers []answer.Answer, key KeyFunc) Groups {
	groups := make(Groups)
	for _, a := range answers {
		if !a.Evaluated() {
			continue
		}
		k, ok := key(a)
		if !ok {
			continue
		}
		s := groups[k]
		s.Count++
		s.Sum = s.Sum.Add(a.Evaluation.Scores)
		groups[k] = s
	}
	return groups
}

// AggregatePartitioned splits answers into contiguous partitions, aggregates
// them concurrently and merges the partials in partition order, so the result
// only depends on the input order, not on goroutine scheduling.
func AggregatePartitioned(answers []answer.Answer, key KeyFunc, partitions int) Groups {
	if partitions <= 1 || len(answers) < partitions*2 {
		return Aggregate(answers, key)
	}

	size := (len(answers) + partitions - 1) / partitions
	partials := make([]Groups, partitions)

	var g errgroup.Group
	for i := 0; i < partitions; i++ {
		lo := i * size
		if lo >= len(answers) {
			break
		}
		hi := min(lo+size, len(answers))
		g.Go(func() error {
			partials[i] = Aggregate(answers[lo:hi], key)
			return nil
		})
	}
	_ = g.Wait()

	out := make(Groups)
	for _, p := range partials {
		out = out.Merge(p)
	}
	return out
}

// roundTo rounds v to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

func roundScores(s *answer.Scores) *answer.Scores {
	if s == nil {
		return nil
	}
	return &answer.Scores{
		Overall:   roundTo(s.Overall, 2),
		Structure: roundTo(s.Structure, 2),
		Content:   roundTo(s.Content, 2),
		Depth:     roundTo(s.Depth, 2),
	}
}

func roundPtr(v *float64, decimals int) *float64 {
	if v == nil {
		return nil
	}
	r := roundTo(*v, decimals)
	return &r
}
