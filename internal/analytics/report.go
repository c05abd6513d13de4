package analytics

import (
	"errors"
	"sort"
	"time"

	"github.com/examprep/backend/internal/domain/answer"
	"github.com/examprep/backend/internal/domain/syllabus"
)

// ErrUnknownTopic is returned when a topic id is not part of the syllabus.
var ErrUnknownTopic = errors.New("unknown topic")

// TopicLevel is a topic listed in the strength analysis.
type TopicLevel struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Code         string   `json:"code,omitempty"`
	AnswersCount int      `json:"answers_count"`
	AverageScore *float64 `json:"average_score"`
}

// StrengthAnalysis buckets every topic by mastery level.
type StrengthAnalysis struct {
	StrongTopics     []TopicLevel `json:"strong_topics"`
	ModerateTopics   []TopicLevel `json:"moderate_topics"`
	WeakTopics       []TopicLevel `json:"weak_topics"`
	NotStartedTopics []TopicLevel `json:"not_started_topics"`
}

// ClassifyTopics builds the strength analysis in syllabus order. Topics in a
// malformed subtree are left out.
func ClassifyTopics(tree syllabus.Tree, ann Annotations) StrengthAnalysis {
	sa := StrengthAnalysis{
		StrongTopics:     make([]TopicLevel, 0),
		ModerateTopics:   make([]TopicLevel, 0),
		WeakTopics:       make([]TopicLevel, 0),
		NotStartedTopics: make([]TopicLevel, 0),
	}
	for _, t := range tree.Topics() {
		a, ok := ann[t.ID]
		if !ok || a.Err != nil {
			continue
		}
		tl := TopicLevel{
			ID:           t.ID,
			Name:         t.Name,
			Code:         t.Code,
			AnswersCount: a.Stats.Count,
			AverageScore: roundPtr(a.Stats.MeanOverall(), 2),
		}
		switch a.Level {
		case LevelStrong:
			sa.StrongTopics = append(sa.StrongTopics, tl)
		case LevelModerate:
			sa.ModerateTopics = append(sa.ModerateTopics, tl)
		case LevelWeak:
			sa.WeakTopics = append(sa.WeakTopics, tl)
		default:
			sa.NotStartedTopics = append(sa.NotStartedTopics, tl)
		}
	}
	return sa
}

// RecentDays is the look-back of the summary's recent activity count.
const RecentDays = 7

// BestTopic is the topic with the highest mean overall score.
type BestTopic struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	AverageScore float64 `json:"average_score"`
}

// Summary is the dashboard headline.
type Summary struct {
	TotalAnswers     int            `json:"total_answers"`
	EvaluatedAnswers int            `json:"evaluated_answers"`
	PendingAnswers   int            `json:"pending_answers"`
	TopicsPracticed  int            `json:"topics_practiced"`
	RecentAnswers    int            `json:"recent_answers"`
	AverageScores    *answer.Scores `json:"average_scores"`
	BestTopic        *BestTopic     `json:"best_topic"`
}

// Summarize computes the headline numbers. Recent answers are submissions
// within RecentDays before now, evaluated or not.
func Summarize(answers []answer.Answer, tree syllabus.Tree, now time.Time) Summary {
	s := Summary{TotalAnswers: len(answers)}
	since := now.AddDate(0, 0, -RecentDays)

	var all Stats
	for _, a := range answers {
		if !a.SubmittedAt.Before(since) && !a.SubmittedAt.After(now) {
			s.RecentAnswers++
		}
		if !a.Evaluated() {
			s.PendingAnswers++
			continue
		}
		s.EvaluatedAnswers++
		all.Count++
		all.Sum = all.Sum.Add(a.Evaluation.Scores)
	}
	s.AverageScores = roundScores(all.Mean())

	topics := Aggregate(answers, ByTopic)
	s.TopicsPracticed = len(topics)
	for _, id := range sortedKeys(topics) {
		mean := *topics[id].MeanOverall()
		if s.BestTopic == nil || mean > s.BestTopic.AverageScore {
			name := id
			if n, ok := tree.Find(id); ok {
				name = n.Name
			}
			s.BestTopic = &BestTopic{ID: id, Name: name, AverageScore: mean}
		}
	}
	if s.BestTopic != nil {
		s.BestTopic.AverageScore = roundTo(s.BestTopic.AverageScore, 2)
	}
	return s
}

// TopicScore is the per-dimension breakdown of one topic tag.
type TopicScore struct {
	TopicID      string         `json:"topic"`
	AnswersCount int            `json:"answers_count"`
	MeanScores   *answer.Scores `json:"average_scores"`
}

// TopicScores breaks evaluated answers down by topic tag, ordered by topic id.
func TopicScores(answers []answer.Answer) []TopicScore {
	groups := Aggregate(answers, ByTopic)
	out := make([]TopicScore, 0, len(groups))
	for _, id := range sortedKeys(groups) {
		s := groups[id]
		out = append(out, TopicScore{
			TopicID:      id,
			AnswersCount: s.Count,
			MeanScores:   roundScores(s.Mean()),
		})
	}
	return out
}

// RecentAnswerLimit is how many recent answers each subtopic shows.
const RecentAnswerLimit = 3

// RecentAnswer is a short view of an evaluated answer.
type RecentAnswer struct {
	ID           string    `json:"id"`
	QuestionID   string    `json:"question_id"`
	OverallScore float64   `json:"score"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// SubtopicDetail is a subtopic's progress with its latest answers.
type SubtopicDetail struct {
	NodeProgress
	RecentAnswers []RecentAnswer `json:"recent_answers"`
}

// TopicDetail drills into one topic.
type TopicDetail struct {
	Topic     NodeProgress     `json:"topic"`
	Subtopics []SubtopicDetail `json:"subtopics_progress"`
}

// DetailTopic renders one topic and its subtopics. answers must be sorted
// by submission time.
func DetailTopic(tree syllabus.Tree, ann Annotations, answers []answer.Answer, topicID string) (TopicDetail, error) {
	var topic syllabus.Node
	found := false
	for _, t := range tree.Topics() {
		if t.ID == topicID {
			topic, found = t, true
			break
		}
	}
	if !found {
		return TopicDetail{}, ErrUnknownTopic
	}

	recent := make(map[string][]RecentAnswer)
	for i := len(answers) - 1; i >= 0; i-- {
		a := answers[i]
		sub := a.SubtopicID()
		if !a.Evaluated() || sub == "" || len(recent[sub]) >= RecentAnswerLimit {
			continue
		}
		recent[sub] = append(recent[sub], RecentAnswer{
			ID:           a.ID,
			QuestionID:   a.QuestionID,
			OverallScore: a.Evaluation.Overall,
			SubmittedAt:  a.SubmittedAt,
		})
	}

	rendered := renderNode(topic, ann)
	detail := TopicDetail{Subtopics: make([]SubtopicDetail, 0, len(rendered.Children))}
	for _, c := range rendered.Children {
		ra := recent[c.ID]
		if ra == nil {
			ra = make([]RecentAnswer, 0)
		}
		detail.Subtopics = append(detail.Subtopics, SubtopicDetail{NodeProgress: c, RecentAnswers: ra})
	}
	rendered.Children = nil
	detail.Topic = rendered
	return detail, nil
}

func sortedKeys(g Groups) []string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
