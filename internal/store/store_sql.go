package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/zubenkoruslan/hospitalitai-sub005/internal/quiz"
)

// SQLStore works against sqlite and postgres; questions live in a JSON
// column like the rest of the attempt payloads.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) PutQuiz(ctx context.Context, q quiz.Quiz) error {
	qj, err := json.Marshal(q.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	createdAt := q.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().Unix()
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quizzes (id,title,questions_json,created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, questions_json=EXCLUDED.questions_json`,
		q.ID, q.Title, string(qj), createdAt)
	return err
}

func (s *SQLStore) GetQuiz(ctx context.Context, id string) (quiz.Quiz, error) {
	q, err := s.GetQuizFull(ctx, id)
	if err != nil {
		return quiz.Quiz{}, err
	}
	for i := range q.Questions {
		q.Questions[i] = q.Questions[i].StudentView()
	}
	return q, nil
}

func (s *SQLStore) GetQuizFull(ctx context.Context, id string) (quiz.Quiz, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,questions_json,created_at FROM quizzes WHERE id=$1`, id)
	var q quiz.Quiz
	var qjson string
	if err := row.Scan(&q.ID, &q.Title, &qjson, &q.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.Quiz{}, ErrQuizNotFound
		}
		return quiz.Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &q.Questions); err != nil {
		return quiz.Quiz{}, fmt.Errorf("unmarshal questions: %w", err)
	}
	return q, nil
}

func (s *SQLStore) RecordAttempt(ctx context.Context, a RecordedAttempt) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO attempts
		(id,quiz_id,user_id,score,total_attempted,total_questions,duration_sec,answers_json,submitted_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.QuizID, a.UserID, a.Score, a.TotalAttempted, a.TotalQuestions,
		a.DurationSec, a.AnswersJSON, a.SubmittedAt)
	return err
}

func (s *SQLStore) ListAttempts(ctx context.Context, opts AttemptListOpts) ([]RecordedAttempt, error) {
	q := `SELECT id,quiz_id,user_id,score,total_attempted,total_questions,duration_sec,answers_json,submitted_at
		FROM attempts WHERE 1=1`
	args := []interface{}{}
	if opts.QuizID != "" {
		args = append(args, opts.QuizID)
		q += fmt.Sprintf(" AND quiz_id=$%d", len(args))
	}
	if opts.UserID != "" {
		args = append(args, opts.UserID)
		q += fmt.Sprintf(" AND user_id=$%d", len(args))
	}
	q += " ORDER BY submitted_at DESC"
	// SQLite only accepts OFFSET after LIMIT, so an offset without a
	// caller-supplied limit still needs one emitted.
	limit := opts.Limit
	if limit <= 0 && opts.Offset > 0 {
		limit = math.MaxInt32
	}
	if limit > 0 {
		args = append(args, limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RecordedAttempt{}
	for rows.Next() {
		var a RecordedAttempt
		if err := rows.Scan(&a.ID, &a.QuizID, &a.UserID, &a.Score, &a.TotalAttempted,
			&a.TotalQuestions, &a.DurationSec, &a.AnswersJSON, &a.SubmittedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
