// Package grading scores a submitted attempt against the quiz answer keys.
package grading

import (
	"context"
	"fmt"

	"github.com/zubenkoruslan/hospitalitai-sub005/internal/quiz"
)

// Strategy grades a single question's response. The response is the wire
// value from a submission payload: a choice ID, a slice of choice IDs, or
// nil when unanswered.
type Strategy interface {
	Grade(ctx context.Context, q quiz.Question, response interface{}) (bool, error)
}

// Grader routes by question type to the correct Strategy and assembles the
// per-attempt result.
type Grader interface {
	GradeAttempt(ctx context.Context, attemptID, quizID string, questions []quiz.Question, payload quiz.SubmissionPayload) (quiz.GradedResult, error)
}

type Option func(*config)

type config struct {
	DefaultPoints float64 // points for questions authored without a value
}

func WithDefaultPoints(p float64) Option { return func(c *config) { c.DefaultPoints = p } }

type defaultGrader struct {
	strategies    map[quiz.QuestionType]Strategy
	defaultPoints float64
}

// NewGrader installs the built-in strategies.
func NewGrader(opts ...Option) Grader {
	cfg := &config{DefaultPoints: 1}
	for _, o := range opts {
		o(cfg)
	}
	return &defaultGrader{
		defaultPoints: cfg.DefaultPoints,
		strategies: map[quiz.QuestionType]Strategy{
			quiz.TypeSingleChoice: singleChoiceStrategy{},
			quiz.TypeTrueFalse:    singleChoiceStrategy{},
			quiz.TypeMultiChoice:  multiChoiceStrategy{},
		},
	}
}

// GradeAttempt walks the question list, grades each given answer, and builds
// the graded result. The correct answer is revealed only on incorrect or
// unanswered items; correct items keep it hidden.
func (g *defaultGrader) GradeAttempt(ctx context.Context, attemptID, quizID string, questions []quiz.Question, payload quiz.SubmissionPayload) (quiz.GradedResult, error) {
	given := make(map[string]interface{}, len(payload.Answers))
	for _, a := range payload.Answers {
		given[a.QuestionID] = a.AnswerGiven
	}

	out := quiz.GradedResult{
		AttemptID:      attemptID,
		QuizID:         quizID,
		TotalQuestions: len(questions),
		Results:        make([]quiz.QuestionResult, 0, len(questions)),
	}
	for _, q := range questions {
		resp := given[q.ID]
		qr := quiz.QuestionResult{QuestionID: q.ID, AnswerGiven: resp}
		if resp != nil {
			out.TotalAttempted++
			s, ok := g.strategies[q.Type]
			if !ok {
				return quiz.GradedResult{}, fmt.Errorf("no strategy for question type %q", q.Type)
			}
			correct, err := s.Grade(ctx, q, resp)
			if err != nil {
				return quiz.GradedResult{}, fmt.Errorf("grade question %s: %w", q.ID, err)
			}
			qr.Correct = correct
		}
		if qr.Correct {
			out.Score += g.points(q)
		} else {
			qr.CorrectAnswer = append([]string(nil), q.AnswerKey...)
		}
		out.Results = append(out.Results, qr)
	}
	return out, nil
}

func (g *defaultGrader) points(q quiz.Question) float64 {
	if q.Points > 0 {
		return q.Points
	}
	return g.defaultPoints
}

// --- Strategies ---

type singleChoiceStrategy struct{}

func (singleChoiceStrategy) Grade(_ context.Context, q quiz.Question, response interface{}) (bool, error) {
	resp, ok := response.(string)
	if !ok {
		return false, fmt.Errorf("response must be a choice id string, got %T", response)
	}
	for _, k := range q.AnswerKey {
		if resp == k {
			return true, nil
		}
	}
	return false, nil
}

type multiChoiceStrategy struct{}

func (multiChoiceStrategy) Grade(_ context.Context, q quiz.Question, response interface{}) (bool, error) {
	resp, ok := toStringSlice(response)
	if !ok {
		return false, fmt.Errorf("response must be a slice of choice ids, got %T", response)
	}
	return setEqual(toSet(resp), toSet(q.AnswerKey)), nil
}

// helpers

// toStringSlice accepts both []string (in-process callers) and
// []interface{} (JSON-decoded payloads).
func toStringSlice(v interface{}) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			s, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

func toSet(arr []string) map[string]struct{} {
	m := make(map[string]struct{}, len(arr))
	for _, s := range arr {
		m[s] = struct{}{}
	}
	return m
}

func setEqual(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
