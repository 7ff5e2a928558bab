// Package attempt owns the lifecycle of a single staff quiz attempt, from
// question fetch to guaranteed submission. The Session is the one mutable
// object for an attempt: UI events mutate it, and teardown consults its
// current fields, so an exit handler always sees the latest answer state
// rather than state captured at registration time.
package attempt

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/zubenkoruslan/hospitalitai-sub005/internal/quiz"
)

// Gateway is the training-platform surface the session consumes. A REST
// client implements it in production; tests use in-memory fakes.
type Gateway interface {
	FetchAttemptQuestions(ctx context.Context, quizID string) ([]quiz.Question, error)
	SubmitAttempt(ctx context.Context, quizID string, payload quiz.SubmissionPayload) (quiz.GradedResult, error)
}

// State is the attempt lifecycle position. Completed is terminal: once
// reached by any path, no further submission is ever issued.
type State string

const (
	StateLoading    State = "loading"
	StateInProgress State = "in_progress"
	StateSubmitting State = "submitting"
	StateCompleted  State = "completed"
	StateCancelling State = "cancelling"
	StateFailed     State = "failed"
)

// Session is a single-use attempt orchestrator. All methods are safe for
// concurrent use; the guard that matters is the state machine itself, which
// rejects re-entrant submits and makes the background submission fire at
// most once no matter how many teardown signals race in.
type Session struct {
	gw   Gateway
	now  func() time.Time
	logf func(format string, args ...interface{})

	mu        sync.Mutex
	quizID    string
	state     State
	started   bool
	questions []quiz.Question
	answers   *AnswerStore
	startedAt time.Time
	result    *quiz.GradedResult
	lastErr   error
}

type Option func(*Session)

// WithClock overrides the wall clock used for duration bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithLogger overrides where background-submission failures are logged.
func WithLogger(logf func(format string, args ...interface{})) Option {
	return func(s *Session) { s.logf = logf }
}

func NewSession(gw Gateway, opts ...Option) *Session {
	s := &Session{
		gw:      gw,
		now:     time.Now,
		logf:    log.Printf,
		state:   StateLoading,
		answers: NewAnswerStore(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Start fetches the attempt questions and moves the session to InProgress.
// A fetch error or an empty question set moves it to Failed with a
// LoadError; the session is then dead and the caller must build a new one.
func (s *Session) Start(ctx context.Context, quizID string) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.quizID = quizID
	s.mu.Unlock()

	qs, err := s.gw.FetchAttemptQuestions(ctx, quizID)
	if err == nil && len(qs) == 0 {
		err = ErrNoQuestions
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateFailed
		s.lastErr = &LoadError{QuizID: quizID, Err: err}
		return s.lastErr
	}
	s.questions = qs
	s.answers = NewAnswerStore()
	s.startedAt = s.now()
	s.state = StateInProgress
	return nil
}

// SetAnswer records a choice for a question: toggle semantics for
// multi_choice, replace semantics for single_choice and true_false.
// Outside InProgress, and for unknown question IDs, it is a no-op.
func (s *Session) SetAnswer(questionID, choiceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress {
		return
	}
	for _, q := range s.questions {
		if q.ID != questionID {
			continue
		}
		if q.Type == quiz.TypeMultiChoice {
			s.answers.Toggle(questionID, choiceID)
		} else {
			s.answers.Replace(questionID, choiceID)
		}
		return
	}
}

// Submit sends the attempt with the current answers. On success the session
// is Completed and the graded result is available; on failure it drops back
// to InProgress with answers intact and a retryable SubmissionError. While
// a submission is in flight the state is Submitting and a second Submit
// returns ErrNotInProgress without issuing a network call.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return ErrNotInProgress
	}
	quizID := s.quizID
	payload := BuildPayload(s.questions, s.answers, s.now().Sub(s.startedAt))
	s.state = StateSubmitting
	s.mu.Unlock()

	res, err := s.gw.SubmitAttempt(ctx, quizID, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateInProgress
		s.lastErr = &SubmissionError{QuizID: quizID, Err: err}
		return s.lastErr
	}
	s.state = StateCompleted
	s.result = &res
	s.lastErr = nil
	return nil
}

// Cancel submits the attempt with whatever answers exist and completes the
// session. "Cancel" records the attempt rather than discarding it; the
// submission is best-effort, so a failure is logged and not surfaced since
// the user is leaving regardless.
func (s *Session) Cancel(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return ErrNotInProgress
	}
	quizID := s.quizID
	payload := BuildPayload(s.questions, s.answers, s.now().Sub(s.startedAt))
	s.state = StateCancelling
	s.mu.Unlock()

	res, err := s.gw.SubmitAttempt(ctx, quizID, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.logf("attempt: cancel submission for quiz %s failed: %v", quizID, err)
	} else {
		s.result = &res
	}
	s.state = StateCompleted
	return nil
}

// Dispose is the idempotent teardown hook. If the session is still
// InProgress it is marked Completed immediately and exactly one background
// submission is fired with the current answers. Teardown never waits on the
// request; a failure is logged, never surfaced. In every other state
// Dispose does nothing.
func (s *Session) Dispose() {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return
	}
	quizID := s.quizID
	payload := BuildPayload(s.questions, s.answers, s.now().Sub(s.startedAt))
	s.state = StateCompleted
	s.mu.Unlock()

	go func() {
		res, err := s.gw.SubmitAttempt(context.Background(), quizID, payload)
		if err != nil {
			s.logf("attempt: background submission for quiz %s failed: %v", quizID, err)
			return
		}
		s.mu.Lock()
		if s.result == nil {
			s.result = &res
		}
		s.mu.Unlock()
	}()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) QuizID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quizID
}

// Questions returns the fetched question list. The slice is a copy; the
// questions themselves are immutable once fetched.
func (s *Session) Questions() []quiz.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]quiz.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// Answers returns a read-only snapshot of the current selections.
func (s *Session) Answers() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answers.Snapshot()
}

// UnansweredCount reports how many fetched questions have no answer yet.
// The UI uses it to decide whether to confirm before an explicit submit.
func (s *Session) UnansweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, q := range s.questions {
		if !s.answers.Answered(q.ID) {
			n++
		}
	}
	return n
}

// Result returns the graded result once the session completed via a
// successful submission.
func (s *Session) Result() (quiz.GradedResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return quiz.GradedResult{}, false
	}
	return *s.result, true
}

// LastError returns the most recent surfaced error: a LoadError after a
// failed Start, or a SubmissionError after a failed Submit. It is cleared
// by a successful Submit.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
