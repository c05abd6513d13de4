package analytics_test

import (
	"fmt"
	"time"

	"github.com/examprep/backend/internal/domain/answer"
	"github.com/examprep/backend/internal/domain/syllabus"
)

var day0 = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func on(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return t.Add(10 * time.Hour)
}

func evaluated(id, topic, sub string, overall float64, at time.Time) answer.Answer {
	a := pending(id, topic, sub, at)
	a.Evaluation = &answer.Evaluation{
		Scores: answer.Scores{
			Overall:   overall,
			Structure: overall - 1,
			Content:   overall,
			Depth:     overall + 1,
		},
		EvaluatedAt: at.Add(time.Minute),
	}
	return a
}

func pending(id, topic, sub string, at time.Time) answer.Answer {
	a := answer.Answer{ID: id, UserID: "u1", QuestionID: "q-" + id, Topic: topic, SubmittedAt: at}
	if sub != "" {
		s := sub
		a.Subtopic = &s
	}
	return a
}

func repeat(n int, topic, sub string, overall float64) []answer.Answer {
	out := make([]answer.Answer, n)
	for i := range out {
		out[i] = evaluated(fmt.Sprintf("%s-%s-%d", topic, sub, i), topic, sub, overall, day0.Add(time.Duration(i)*time.Hour))
	}
	return out
}

func subtopic(id string, target int) syllabus.Node {
	return syllabus.Node{ID: id, Name: "Subtopic " + id, Kind: syllabus.KindSubtopic, TargetQuestions: target}
}

func topic(id string, children ...syllabus.Node) syllabus.Node {
	return syllabus.Node{ID: id, Name: "Topic " + id, Kind: syllabus.KindTopic, Children: children}
}

func paper(id string, children ...syllabus.Node) syllabus.Node {
	return syllabus.Node{ID: id, Name: "Paper " + id, Kind: syllabus.KindPaper, Children: children}
}

// twoPaperTree:
//
//	p1 ── t1 ── s1 (10), s2 (10)
//	   └─ t2 ── s3 (5)
//	p2 ── t3 ── s4 (20)
func twoPaperTree() syllabus.Tree {
	return syllabus.Tree{Papers: []syllabus.Node{
		paper("p1",
			topic("t1", subtopic("s1", 10), subtopic("s2", 10)),
			topic("t2", subtopic("s3", 5)),
		),
		paper("p2",
			topic("t3", subtopic("s4", 20)),
		),
	}}
}
