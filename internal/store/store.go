// Package store persists authored quizzes and recorded quiz attempts.
package store

import (
	"context"
	"errors"

	"github.com/zubenkoruslan/hospitalitai-sub005/internal/quiz"
)

var (
	ErrQuizNotFound    = errors.New("store: quiz not found")
	ErrAttemptNotFound = errors.New("store: attempt not found")
)

// RecordedAttempt is one graded submission row. Every SubmitAttempt call
// records a new row; the server carries no idempotency key, duplicates are
// prevented client-side by the session's single-fire guarantee.
type RecordedAttempt struct {
	ID             string  `json:"id"`
	QuizID         string  `json:"quiz_id"`
	UserID         string  `json:"user_id"`
	Score          float64 `json:"score"`
	TotalAttempted int     `json:"total_attempted"`
	TotalQuestions int     `json:"total_questions"`
	DurationSec    int64   `json:"duration_sec"`
	AnswersJSON    string  `json:"answers_json,omitempty"`
	SubmittedAt    int64   `json:"submitted_at"`
}

type AttemptListOpts struct {
	QuizID string
	UserID string
	Limit  int
	Offset int
}

type Store interface {
	PutQuiz(ctx context.Context, q quiz.Quiz) error
	// GetQuiz is student-safe: answer keys and points are stripped.
	GetQuiz(ctx context.Context, id string) (quiz.Quiz, error)
	// GetQuizFull keeps answer keys; for grading and management surfaces.
	GetQuizFull(ctx context.Context, id string) (quiz.Quiz, error)
	RecordAttempt(ctx context.Context, a RecordedAttempt) error
	ListAttempts(ctx context.Context, opts AttemptListOpts) ([]RecordedAttempt, error)
}
