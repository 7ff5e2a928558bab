package attempt

import (
	"time"

	"github.com/zubenkoruslan/hospitalitai-sub005/internal/quiz"
)

// BuildPayload converts the fetched question list and the answers given so
// far into a submission payload. The question list defines order and
// completeness: every question gets exactly one entry, and unanswered
// questions carry an explicit nil so the grader sees the full denominator.
func BuildPayload(questions []quiz.Question, answers *AnswerStore, elapsed time.Duration) quiz.SubmissionPayload {
	out := quiz.SubmissionPayload{
		Answers:           make([]quiz.SubmissionAnswer, 0, len(questions)),
		DurationInSeconds: int64(elapsed / time.Second),
	}
	if out.DurationInSeconds < 0 {
		out.DurationInSeconds = 0
	}
	for _, q := range questions {
		entry := quiz.SubmissionAnswer{QuestionID: q.ID}
		if sel := answers.Get(q.ID); len(sel) > 0 {
			if q.Type == quiz.TypeMultiChoice {
				entry.AnswerGiven = sel
			} else {
				entry.AnswerGiven = sel[0]
			}
		}
		out.Answers = append(out.Answers, entry)
	}
	return out
}
