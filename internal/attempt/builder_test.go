package attempt

import (
	"testing"
	"time"

	"github.com/zubenkoruslan/hospitalitai-sub005/internal/quiz"
)

func TestBuildPayloadCoversEveryQuestionInOrder(t *testing.T) {
	questions := []quiz.Question{
		{ID: "q1", Type: quiz.TypeSingleChoice},
		{ID: "q2", Type: quiz.TypeMultiChoice},
		{ID: "q3", Type: quiz.TypeTrueFalse},
	}
	answers := NewAnswerStore()
	answers.Replace("q1", "b")

	p := BuildPayload(questions, answers, 90*time.Second)

	if len(p.Answers) != 3 {
		t.Fatalf("answers = %d, want 3", len(p.Answers))
	}
	for i, q := range questions {
		if p.Answers[i].QuestionID != q.ID {
			t.Fatalf("answer %d is for %q, want %q", i, p.Answers[i].QuestionID, q.ID)
		}
	}
	if p.Answers[0].AnswerGiven != "b" {
		t.Fatalf("q1 = %v, want b", p.Answers[0].AnswerGiven)
	}
	// Unanswered questions get explicit nils, never dropped.
	if p.Answers[1].AnswerGiven != nil || p.Answers[2].AnswerGiven != nil {
		t.Fatalf("unanswered entries must be nil: %v / %v",
			p.Answers[1].AnswerGiven, p.Answers[2].AnswerGiven)
	}
	if p.DurationInSeconds != 90 {
		t.Fatalf("duration = %d, want 90", p.DurationInSeconds)
	}
}

func TestBuildPayloadAnswerShapes(t *testing.T) {
	questions := []quiz.Question{
		{ID: "single", Type: quiz.TypeSingleChoice},
		{ID: "multi", Type: quiz.TypeMultiChoice},
		{ID: "tf", Type: quiz.TypeTrueFalse},
	}
	answers := NewAnswerStore()
	answers.Replace("single", "a")
	answers.Toggle("multi", "a")
	answers.Toggle("multi", "c")
	answers.Replace("tf", "false")

	p := BuildPayload(questions, answers, 0)

	if got, ok := p.Answers[0].AnswerGiven.(string); !ok || got != "a" {
		t.Fatalf("single = %v, want string a", p.Answers[0].AnswerGiven)
	}
	multi, ok := p.Answers[1].AnswerGiven.([]string)
	if !ok || len(multi) != 2 || multi[0] != "a" || multi[1] != "c" {
		t.Fatalf("multi = %v, want [a c]", p.Answers[1].AnswerGiven)
	}
	if got, ok := p.Answers[2].AnswerGiven.(string); !ok || got != "false" {
		t.Fatalf("tf = %v, want string false", p.Answers[2].AnswerGiven)
	}
}

func TestBuildPayloadClampsNegativeElapsed(t *testing.T) {
	p := BuildPayload([]quiz.Question{{ID: "q1", Type: quiz.TypeSingleChoice}}, NewAnswerStore(), -5*time.Second)
	if p.DurationInSeconds != 0 {
		t.Fatalf("duration = %d, want 0", p.DurationInSeconds)
	}
}

func TestAnswerStoreToggle(t *testing.T) {
	s := NewAnswerStore()
	s.Toggle("q", "a")
	s.Toggle("q", "b")
	s.Toggle("q", "a") // off again
	if got := s.Get("q"); len(got) != 1 || got[0] != "b" {
		t.Fatalf("selection = %v, want [b]", got)
	}
	s.Toggle("q", "b")
	if s.Answered("q") {
		t.Fatalf("question with empty selection must count as unanswered")
	}
	if got := s.Get("q"); got != nil {
		t.Fatalf("empty selection must read as nil, got %v", got)
	}
}

func TestAnswerStoreSnapshotIsDetached(t *testing.T) {
	s := NewAnswerStore()
	s.Replace("q1", "a")
	s.Toggle("q2", "a")
	s.Toggle("q2", "a") // back to empty

	snap := s.Snapshot()
	if len(snap) != 1 {
		t.Fatalf("snapshot = %v, want only q1", snap)
	}
	snap["q1"][0] = "mutated"
	if got := s.Get("q1"); got[0] != "a" {
		t.Fatalf("snapshot mutation leaked into store: %v", got)
	}
}
