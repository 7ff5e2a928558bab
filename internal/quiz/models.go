package quiz

// QuestionType tags how a question is answered and graded.
type QuestionType string

const (
	TypeSingleChoice QuestionType = "single_choice"
	TypeMultiChoice  QuestionType = "multi_choice"
	TypeTrueFalse    QuestionType = "true_false"
)

func (t QuestionType) Valid() bool {
	switch t {
	case TypeSingleChoice, TypeMultiChoice, TypeTrueFalse:
		return true
	}
	return false
}

type Choice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is immutable once fetched. AnswerKey and Points are server-side
// only and stripped before a question set is served to staff taking a quiz.
type Question struct {
	ID      string       `json:"id"`
	Prompt  string       `json:"prompt"`
	Type    QuestionType `json:"type"`
	Choices []Choice     `json:"choices"`

	AnswerKey []string `json:"answer_key,omitempty"`
	Points    float64  `json:"points,omitempty"`
}

// StudentView returns a copy safe to serve to the person taking the quiz.
func (q Question) StudentView() Question {
	q.AnswerKey = nil
	q.Points = 0
	return q
}

// SubmissionAnswer carries the answer given for one question. AnswerGiven is
// a choice ID (single_choice, true_false), a []string of choice IDs
// (multi_choice), or nil when the question was left unanswered. Unanswered
// questions are never omitted from a payload; the grader needs every
// question to compute the denominator.
type SubmissionAnswer struct {
	QuestionID  string      `json:"question_id"`
	AnswerGiven interface{} `json:"answer_given"`
}

type SubmissionPayload struct {
	Answers           []SubmissionAnswer `json:"answers"`
	DurationInSeconds int64              `json:"duration_in_seconds"`
}

// QuestionResult reports grading for one question. CorrectAnswer is only
// revealed for incorrect or unanswered items.
type QuestionResult struct {
	QuestionID    string      `json:"question_id"`
	Correct       bool        `json:"correct"`
	AnswerGiven   interface{} `json:"answer_given"`
	CorrectAnswer []string    `json:"correct_answer,omitempty"`
}

type GradedResult struct {
	AttemptID      string           `json:"attempt_id"`
	QuizID         string           `json:"quiz_id"`
	Score          float64          `json:"score"`
	TotalAttempted int              `json:"total_attempted"`
	TotalQuestions int              `json:"total_questions"`
	Results        []QuestionResult `json:"results"`
}

// Quiz is the authored unit staff attempt. Questions carry answer keys here;
// the store strips them when serving an attempt.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
	CreatedAt int64      `json:"created_at,omitempty"`
}
