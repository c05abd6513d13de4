package analytics

import (
	"fmt"
	"math"

	"github.com/examprep/backend/internal/domain/answer"
	"github.com/examprep/backend/internal/domain/syllabus"
)

// DataIntegrityError reports a malformed syllabus node. When SubtreeSkipped
// is set the node and its descendants were left out of every total; otherwise
// the node was computed with a clamped value.
type DataIntegrityError struct {
	NodeID         string `json:"node_id"`
	Reason         string `json:"reason"`
	SubtreeSkipped bool   `json:"subtree_skipped"`
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("syllabus node %q: %s", e.NodeID, e.Reason)
}

// Annotation is the computed state of one syllabus node. Annotations live in
// a map keyed by node id next to the immutable syllabus tree.
type Annotation struct {
	Stats    Stats
	Target   int
	Progress int
	Level    Level
	Err      *DataIntegrityError
}

// Annotations maps node id to its annotation.
type Annotations map[string]Annotation

// NodeProgress is one node of the progress-annotated syllabus tree.
type NodeProgress struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Code               string         `json:"code,omitempty"`
	Kind               syllabus.Kind  `json:"kind"`
	TargetQuestions    int            `json:"target_questions"`
	AnswersCount       int            `json:"answers_count"`
	ProgressPercentage int            `json:"progress_percentage"`
	AverageScore       *float64       `json:"average_score"`
	MeanScores         *answer.Scores `json:"mean_scores"`
	Strength           Level          `json:"strength_level"`
	Error              string         `json:"error,omitempty"`
	Children           []NodeProgress `json:"children,omitempty"`
}

// Overview is the syllabus completion report.
type Overview struct {
	OverallProgress        int                  `json:"overall_progress"`
	TotalQuestionsAnswered int                  `json:"total_questions_answered"`
	TotalPossibleQuestions int                  `json:"total_possible_questions"`
	PendingAnswers         int                  `json:"pending_answers"`
	UnmappedAnswers        int                  `json:"unmapped_answers"`
	Papers                 []NodeProgress       `json:"tree_with_progress"`
	Issues                 []DataIntegrityError `json:"issues,omitempty"`
}

// percentage returns round(100*count/target) clamped to 100, or 0 without a target.
func percentage(count, target int) int {
	if target <= 0 {
		return 0
	}
	p := int(math.Round(100 * float64(count) / float64(target)))
	return min(p, 100)
}

// Annotate folds the per-node aggregates bottom-up over the syllabus tree.
// groups must be keyed by node id (see ByNode). A malformed node only
// affects its own subtree.
func Annotate(tree syllabus.Tree, groups Groups) (Annotations, []DataIntegrityError) {
	f := folder{
		groups: groups,
		ann:    make(Annotations, tree.Size()),
		seen:   make(map[string]bool),
	}
	for _, p := range tree.Papers {
		f.fold(p, syllabus.KindPaper)
	}
	return f.ann, f.issues
}

type folder struct {
	groups Groups
	ann    Annotations
	seen   map[string]bool
	issues []DataIntegrityError
}

func (f *folder) fail(n syllabus.Node, reason string) Annotation {
	err := DataIntegrityError{NodeID: n.ID, Reason: reason, SubtreeSkipped: true}
	f.issues = append(f.issues, err)
	a := Annotation{Level: LevelNotStarted, Err: &err}
	if n.ID != "" && !f.seen[n.ID] {
		f.ann[n.ID] = a
	}
	return a
}

func (f *folder) fold(n syllabus.Node, want syllabus.Kind) Annotation {
	switch {
	case n.ID == "":
		return f.fail(n, "node has no id")
	case f.seen[n.ID]:
		return f.fail(n, "duplicate node id")
	case n.Kind != want:
		return f.fail(n, fmt.Sprintf("%s found where a %s was expected", kindLabel(n.Kind), want))
	case n.TargetQuestions < 0:
		return f.fail(n, fmt.Sprintf("negative target_questions %d", n.TargetQuestions))
	}
	childKind, canNest := n.Kind.ChildKind()
	if len(n.Children) > 0 && !canNest {
		return f.fail(n, "subtopic cannot have children")
	}
	f.seen[n.ID] = true

	stats := f.groups[n.ID]
	target := n.TargetQuestions

	if len(n.Children) > 0 {
		target = 0
		for _, c := range n.Children {
			ca := f.fold(c, childKind)
			if ca.Err != nil {
				continue
			}
			stats = stats.Merge(ca.Stats)
			target += ca.Target
		}
	} else if target == 0 {
		f.issues = append(f.issues, DataIntegrityError{
			NodeID: n.ID,
			Reason: "target_questions is 0; progress clamped to 0%",
		})
	}

	a := Annotation{
		Stats:    stats,
		Target:   target,
		Progress: percentage(stats.Count, target),
		Level:    ClassifyStats(stats),
	}
	f.ann[n.ID] = a
	return a
}

func kindLabel(k syllabus.Kind) string {
	if k == "" {
		return "node without kind"
	}
	if !k.Valid() {
		return fmt.Sprintf("unknown kind %q", string(k))
	}
	return string(k)
}

// BuildOverview renders the annotated tree and the overall totals.
func BuildOverview(tree syllabus.Tree, ann Annotations, issues []DataIntegrityError) Overview {
	ov := Overview{
		Papers: make([]NodeProgress, 0, len(tree.Papers)),
		Issues: issues,
	}
	for _, p := range tree.Papers {
		ov.Papers = append(ov.Papers, renderNode(p, ann))
		a, ok := ann[p.ID]
		if !ok || a.Err != nil {
			continue
		}
		ov.TotalQuestionsAnswered += a.Stats.Count
		ov.TotalPossibleQuestions += a.Target
	}
	ov.OverallProgress = percentage(ov.TotalQuestionsAnswered, ov.TotalPossibleQuestions)
	return ov
}

func renderNode(n syllabus.Node, ann Annotations) NodeProgress {
	a := ann[n.ID]
	np := NodeProgress{
		ID:                 n.ID,
		Name:               n.Name,
		Code:               n.Code,
		Kind:               n.Kind,
		TargetQuestions:    a.Target,
		AnswersCount:       a.Stats.Count,
		ProgressPercentage: a.Progress,
		AverageScore:       roundPtr(a.Stats.MeanOverall(), 2),
		MeanScores:         roundScores(a.Stats.Mean()),
		Strength:           a.Level,
	}
	if a.Level == "" {
		np.Strength = LevelNotStarted
	}
	if a.Err != nil {
		np.Error = a.Err.Reason
		np.TargetQuestions = n.TargetQuestions
		return np
	}
	for _, c := range n.Children {
		np.Children = append(np.Children, renderNode(c, ann))
	}
	return np
}
