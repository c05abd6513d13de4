package analytics

import (
	"fmt"
	"sort"

	"github.com/examprep/backend/internal/domain/syllabus"
)

// RecommendationType names the kind of advice.
type RecommendationType string

const (
	TypeFocusArea    RecommendationType = "focus_area"
	TypePracticeMore RecommendationType = "practice_more"
	TypeStrength     RecommendationType = "strength"
)

// Priority orders recommendations; high comes first.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// MaxRecommendations caps the list returned to callers.
const MaxRecommendations = 10

// lowVolumeRatio is the share of a node's target below which it is flagged
// for more practice whatever its score.
const lowVolumeRatio = 0.5

// Recommendation is one actionable study suggestion.
type Recommendation struct {
	Type               RecommendationType `json:"type"`
	Priority           Priority           `json:"priority"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	NodeID             string             `json:"subject_node_id"`
	ProgressPercentage int                `json:"progress_percentage"`
}

// Recommend applies the rules to every topic and subtopic of the annotated
// tree, first match wins per node, then keeps the top MaxRecommendations by
// priority and ascending progress. Remaining ties keep syllabus order.
func Recommend(tree syllabus.Tree, ann Annotations) []Recommendation {
	recs := make([]Recommendation, 0)
	tree.Walk(func(n syllabus.Node, _ *syllabus.Node) bool {
		a, ok := ann[n.ID]
		if !ok || a.Err != nil {
			return false
		}
		if n.Kind == syllabus.KindPaper {
			return true
		}
		if r, ok := recommendFor(n, a); ok {
			recs = append(recs, r)
		}
		return true
	})

	sort.SliceStable(recs, func(i, j int) bool {
		if ri, rj := recs[i].Priority.rank(), recs[j].Priority.rank(); ri != rj {
			return ri < rj
		}
		return recs[i].ProgressPercentage < recs[j].ProgressPercentage
	})
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

func recommendFor(n syllabus.Node, a Annotation) (Recommendation, bool) {
	count := a.Stats.Count
	r := Recommendation{NodeID: n.ID, ProgressPercentage: a.Progress}

	// Every rule describes the node by its mean score.
	m := a.Stats.MeanOverall()
	if a.Level == LevelNotStarted || m == nil {
		return r, false
	}
	mean := *m

	switch {
	case a.Level == LevelWeak && count >= 1:
		r.Type, r.Priority = TypeFocusArea, PriorityHigh
		r.Title = fmt.Sprintf("Focus on %s", n.Name)
		r.Description = fmt.Sprintf(
			"Your average score in %s is %.1f. Review the topic and retarget your practice on it.",
			n.Name, mean)

	case a.Level == LevelModerate || float64(count) < float64(a.Target)*lowVolumeRatio:
		r.Type, r.Priority = TypePracticeMore, PriorityMedium
		r.Title = fmt.Sprintf("Practice more in %s", n.Name)
		r.Description = fmt.Sprintf(
			"You have answered %d of %d target questions in %s with an average score of %.1f. Keep practicing to consolidate it.",
			count, a.Target, n.Name, mean)

	case a.Level == LevelStrong && count >= a.Target:
		r.Type, r.Priority = TypeStrength, PriorityLow
		r.Title = fmt.Sprintf("Strong performance in %s", n.Name)
		r.Description = fmt.Sprintf(
			"Excellent work! Your average score in %s is %.1f across %d answers. Keep it up.",
			n.Name, mean, count)

	default:
		return r, false
	}
	return r, true
}
