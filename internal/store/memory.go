package store

import (
	"context"
	"sort"
	"sync"

	"github.com/zubenkoruslan/hospitalitai-sub005/internal/quiz"
)

// MemoryStore backs tests and offline development.
type MemoryStore struct {
	mu       sync.RWMutex
	quizzes  map[string]quiz.Quiz
	attempts map[string]RecordedAttempt
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		quizzes:  map[string]quiz.Quiz{},
		attempts: map[string]RecordedAttempt{},
	}
}

func (m *MemoryStore) PutQuiz(_ context.Context, q quiz.Quiz) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizzes[q.ID] = q
	return nil
}

func (m *MemoryStore) GetQuiz(ctx context.Context, id string) (quiz.Quiz, error) {
	q, err := m.GetQuizFull(ctx, id)
	if err != nil {
		return quiz.Quiz{}, err
	}
	safe := make([]quiz.Question, len(q.Questions))
	for i, question := range q.Questions {
		safe[i] = question.StudentView()
	}
	q.Questions = safe
	return q, nil
}

func (m *MemoryStore) GetQuizFull(_ context.Context, id string) (quiz.Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[id]
	if !ok {
		return quiz.Quiz{}, ErrQuizNotFound
	}
	return q, nil
}

func (m *MemoryStore) RecordAttempt(_ context.Context, a RecordedAttempt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts[a.ID] = a
	return nil
}

func (m *MemoryStore) ListAttempts(_ context.Context, opts AttemptListOpts) ([]RecordedAttempt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]RecordedAttempt, 0, len(m.attempts))
	for _, a := range m.attempts {
		if opts.QuizID != "" && a.QuizID != opts.QuizID {
			continue
		}
		if opts.UserID != "" && a.UserID != opts.UserID {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt > out[j].SubmittedAt })
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return []RecordedAttempt{}, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}
