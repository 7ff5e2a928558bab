package grading

import (
	"context"
	"testing"

	"github.com/zubenkoruslan/hospitalitai-sub005/internal/quiz"
)

func gradedQuestions() []quiz.Question {
	return []quiz.Question{
		{ID: "q1", Type: quiz.TypeSingleChoice, AnswerKey: []string{"a"}},
		{ID: "q2", Type: quiz.TypeMultiChoice, AnswerKey: []string{"a", "c"}},
		{ID: "q3", Type: quiz.TypeTrueFalse, AnswerKey: []string{"false"}, Points: 2},
	}
}

func TestGradeAttempt(t *testing.T) {
	g := NewGrader()
	payload := quiz.SubmissionPayload{Answers: []quiz.SubmissionAnswer{
		{QuestionID: "q1", AnswerGiven: "a"},
		{QuestionID: "q2", AnswerGiven: []string{"a", "b"}},
		{QuestionID: "q3", AnswerGiven: nil},
	}}

	res, err := g.GradeAttempt(context.Background(), "att-1", "quiz-1", gradedQuestions(), payload)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if res.TotalQuestions != 3 || res.TotalAttempted != 2 {
		t.Fatalf("totals = %d/%d, want attempted 2 of 3", res.TotalAttempted, res.TotalQuestions)
	}
	if res.Score != 1 {
		t.Fatalf("score = %v, want 1", res.Score)
	}
	if !res.Results[0].Correct || res.Results[0].CorrectAnswer != nil {
		t.Fatalf("q1: correct answer must stay hidden on a correct item: %+v", res.Results[0])
	}
	if res.Results[1].Correct {
		t.Fatalf("q2: partial multi selection must not be correct")
	}
	if len(res.Results[1].CorrectAnswer) != 2 {
		t.Fatalf("q2: correct answer not revealed: %+v", res.Results[1])
	}
	if res.Results[2].Correct || len(res.Results[2].CorrectAnswer) != 1 {
		t.Fatalf("q3: unanswered item must reveal the key: %+v", res.Results[2])
	}
}

func TestGradeAttemptMultiChoiceOrderInsensitive(t *testing.T) {
	g := NewGrader()
	payload := quiz.SubmissionPayload{Answers: []quiz.SubmissionAnswer{
		{QuestionID: "q1", AnswerGiven: nil},
		// JSON-decoded payloads arrive as []interface{}.
		{QuestionID: "q2", AnswerGiven: []interface{}{"c", "a"}},
		{QuestionID: "q3", AnswerGiven: "false"},
	}}

	res, err := g.GradeAttempt(context.Background(), "att-1", "quiz-1", gradedQuestions(), payload)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if !res.Results[1].Correct {
		t.Fatalf("q2: order-insensitive match expected")
	}
	if !res.Results[2].Correct {
		t.Fatalf("q3: true_false expected correct")
	}
	// q2 worth default 1, q3 authored at 2 points.
	if res.Score != 3 {
		t.Fatalf("score = %v, want 3", res.Score)
	}
}

func TestGradeAttemptRejectsWrongShape(t *testing.T) {
	g := NewGrader()
	payload := quiz.SubmissionPayload{Answers: []quiz.SubmissionAnswer{
		{QuestionID: "q1", AnswerGiven: 42},
	}}
	if _, err := g.GradeAttempt(context.Background(), "att-1", "quiz-1", gradedQuestions(), payload); err == nil {
		t.Fatalf("expected error for non-string single_choice response")
	}
}
