package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/zubenkoruslan/hospitalitai-sub005/internal/grading"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/store"

	"github.com/go-chi/chi/v5"
)

// intQuery reads a positive integer query parameter; missing, malformed,
// and non-positive values all fall back to the default, so limit=0 cannot
// turn a listing unbounded.
func intQuery(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// MountAttemptRoutes wires the routes the quiz-taking flow consumes. The
// caller decides what auth middleware wraps them.
func MountAttemptRoutes(r chi.Router, st store.Store, grader grading.Grader, events EventSink, now func() time.Time) {
	r.Get("/quizzes/{quizID}/questions", GetQuizQuestionsHandler(st))
	r.Post("/quizzes/{quizID}/attempts", SubmitAttemptHandler(st, grader, events, now))
	r.Get("/attempts", ListAttemptsHandler(st))
}
