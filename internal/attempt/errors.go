package attempt

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyStarted is returned by Start on a session that already ran.
	// Sessions are single-use; retaking a quiz means a new Session.
	ErrAlreadyStarted = errors.New("attempt: session already started")

	// ErrNotInProgress is returned by Submit and Cancel outside InProgress.
	// A duplicate Submit while a request is in flight gets this error and
	// causes no second network call.
	ErrNotInProgress = errors.New("attempt: session not in progress")

	// ErrNoQuestions marks a fetch that returned an empty question set.
	ErrNoQuestions = errors.New("attempt: quiz has no questions")
)

// LoadError is fatal to the session: the question fetch failed or came back
// empty. The caller must start a fresh session to retry.
type LoadError struct {
	QuizID string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load questions for quiz %s: %v", e.QuizID, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SubmissionError is recoverable: the session drops back to InProgress with
// answers intact and Submit may be retried.
type SubmissionError struct {
	QuizID string
	Err    error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submit attempt for quiz %s: %v", e.QuizID, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
