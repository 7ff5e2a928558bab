package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/zubenkoruslan/hospitalitai-sub005/internal/auth"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/grading"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/quiz"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/store"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/syncx"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// EventSink receives domain events for the sync feed. nil disables it.
type EventSink interface {
	Append(ctx context.Context, e syncx.Event) error
}

// GET /quizzes/{quizID}/questions
// Returns the student-safe question set for an attempt.
func GetQuizQuestionsHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		q, err := st.GetQuiz(r.Context(), id)
		if errors.Is(err, store.ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(q.Questions)
	}
}

// POST /quizzes/{quizID}/attempts
// Grades the submitted payload, records a new attempt, returns the graded
// result. Every call records a fresh attempt; the client's single-fire
// guarantee is what keeps duplicates out.
func SubmitAttemptHandler(st store.Store, grader grading.Grader, events EventSink, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizID := chi.URLParam(r, "quizID")
		var payload quiz.SubmissionPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}

		full, err := st.GetQuizFull(r.Context(), quizID)
		if errors.Is(err, store.ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		attemptID := uuid.NewString()
		result, err := grader.GradeAttempt(r.Context(), attemptID, quizID, full.Questions, payload)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		answersJSON, _ := json.Marshal(payload.Answers)
		rec := store.RecordedAttempt{
			ID:             attemptID,
			QuizID:         quizID,
			UserID:         auth.SubjectFromContext(r.Context()),
			Score:          result.Score,
			TotalAttempted: result.TotalAttempted,
			TotalQuestions: result.TotalQuestions,
			DurationSec:    payload.DurationInSeconds,
			AnswersJSON:    string(answersJSON),
			SubmittedAt:    now().Unix(),
		}
		if err := st.RecordAttempt(r.Context(), rec); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if events != nil {
			data, _ := json.Marshal(rec)
			if err := events.Append(r.Context(), syncx.Event{
				Type:     syncx.TypeAttemptRecorded,
				Key:      attemptID,
				DataJSON: string(data),
			}); err != nil {
				log.Printf("event log append for attempt %s failed: %v", attemptID, err)
			}
		}

		_ = json.NewEncoder(w).Encode(result)
	}
}

// GET /attempts?quiz_id=&limit=&offset=
// Staff see their own recorded attempts; managers may inspect another
// user's with ?user_id=.
func ListAttemptsHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := store.AttemptListOpts{
			QuizID: r.URL.Query().Get("quiz_id"),
			UserID: auth.SubjectFromContext(r.Context()),
			Limit:  intQuery(r, "limit", 50),
			Offset: intQuery(r, "offset", 0),
		}
		if want := r.URL.Query().Get("user_id"); want != "" {
			if auth.RoleFromContext(r.Context()) != "manager" {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			opts.UserID = want
		}
		attempts, err := st.ListAttempts(r.Context(), opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(attempts)
	}
}

// POST /quizzes (manager only)
// Ingests an authored quiz, answer keys included.
func UploadQuizHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var q quiz.Quiz
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if q.ID == "" || len(q.Questions) == 0 {
			http.Error(w, "id and questions required", http.StatusBadRequest)
			return
		}
		for _, question := range q.Questions {
			if !question.Type.Valid() {
				http.Error(w, "unknown question type: "+string(question.Type), http.StatusBadRequest)
				return
			}
		}
		if err := st.PutQuiz(r.Context(), q); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": q.ID})
	}
}
