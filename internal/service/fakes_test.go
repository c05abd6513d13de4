package service_test

import (
	"bytes"
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/examprep/backend/internal/domain/answer"
	"github.com/examprep/backend/internal/domain/similarity"
	"github.com/examprep/backend/internal/domain/syllabus"
	"github.com/examprep/backend/internal/store"
)

// memStore is an in-memory store.Store.
type memStore struct {
	mu       sync.Mutex
	answers  map[string]answer.Answer
	tree     syllabus.Tree
	analyses []similarity.Analysis
	failures map[string]string
	listErr  error
}

var _ store.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{answers: make(map[string]answer.Answer), failures: make(map[string]string)}
}

func (m *memStore) SaveAnswer(_ context.Context, a *answer.Answer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers[a.ID] = *a
	return nil
}

func (m *memStore) GetAnswer(_ context.Context, id string) (*answer.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.answers[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &a, nil
}

func (m *memStore) ListAnswers(_ context.Context, userID string) ([]answer.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []answer.Answer
	for _, a := range m.answers {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) ListPendingAnswers(_ context.Context, limit int) ([]answer.Answer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []answer.Answer
	for _, a := range m.answers {
		if !a.Evaluated() {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].SubmittedAt.Before(out[j].SubmittedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) SaveEvaluation(_ context.Context, answerID string, ev answer.Evaluation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.answers[answerID]
	if !ok {
		return store.ErrNotFound
	}
	if a.Evaluated() {
		return store.ErrAlreadyEvaluated
	}
	a.Evaluation = &ev
	a.GradeError = nil
	m.answers[answerID] = a
	return nil
}

func (m *memStore) SaveGradeFailure(_ context.Context, answerID, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.answers[answerID]; !ok {
		return store.ErrNotFound
	}
	m.failures[answerID] = reason
	return nil
}

func (m *memStore) GetSyllabus(context.Context) (syllabus.Tree, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tree, nil
}

func (m *memStore) ReplaceSyllabus(_ context.Context, tree syllabus.Tree) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tree = tree
	return nil
}

func (m *memStore) SaveSimilarityAnalysis(_ context.Context, a *similarity.Analysis) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses = append(m.analyses, *a)
	return nil
}

func (m *memStore) ListSimilarityAnalyses(_ context.Context, userID string) ([]similarity.Analysis, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []similarity.Analysis
	for _, a := range m.analyses {
		if ans, ok := m.answers[a.AnswerID]; ok && ans.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) failure(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failures[id]
}

// syncBuffer is a goroutine-safe log sink.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}
