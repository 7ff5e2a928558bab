package gateway_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	api "github.com/zubenkoruslan/hospitalitai-sub005/internal/api/http"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/attempt"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/gateway"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/grading"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/quiz"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

var _ attempt.Gateway = (*gateway.Client)(nil)

// Full vertical slice: session -> REST client -> chi router -> grader ->
// in-memory store.
func TestSessionAgainstAPI(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.PutQuiz(context.Background(), quiz.Quiz{
		ID:    "service-101",
		Title: "Table Service Basics",
		Questions: []quiz.Question{
			{ID: "q1", Prompt: "Which side is wine poured from?", Type: quiz.TypeSingleChoice,
				Choices:   []quiz.Choice{{ID: "a", Text: "Right"}, {ID: "b", Text: "Left"}},
				AnswerKey: []string{"a"}},
			{ID: "q2", Prompt: "Select every fortified wine", Type: quiz.TypeMultiChoice,
				Choices: []quiz.Choice{{ID: "a", Text: "Port"}, {ID: "b", Text: "Merlot"}, {ID: "c", Text: "Sherry"}},
				AnswerKey: []string{"a", "c"}},
			{ID: "q3", Prompt: "Decanting aerates the wine", Type: quiz.TypeTrueFalse,
				Choices:   []quiz.Choice{{ID: "true", Text: "True"}, {ID: "false", Text: "False"}},
				AnswerKey: []string{"true"}},
		},
	}))

	r := chi.NewRouter()
	api.MountAttemptRoutes(r, st, grading.NewGrader(), nil, time.Now)
	srv := httptest.NewServer(r)
	defer srv.Close()

	client := gateway.New(gateway.Config{BaseURL: srv.URL})
	s := attempt.NewSession(client)
	require.NoError(t, s.Start(context.Background(), "service-101"))

	// Answer keys must never reach the taking surface.
	for _, q := range s.Questions() {
		require.Empty(t, q.AnswerKey, "question %s leaked its answer key", q.ID)
	}
	require.Equal(t, 3, s.UnansweredCount())

	s.SetAnswer("q1", "a")
	s.SetAnswer("q2", "a")
	s.SetAnswer("q2", "c")
	require.Equal(t, 1, s.UnansweredCount())

	require.NoError(t, s.Submit(context.Background()))
	require.Equal(t, attempt.StateCompleted, s.State())

	res, ok := s.Result()
	require.True(t, ok)
	require.Equal(t, "service-101", res.QuizID)
	require.Equal(t, float64(2), res.Score)
	require.Equal(t, 2, res.TotalAttempted)
	require.Equal(t, 3, res.TotalQuestions)
	require.Len(t, res.Results, 3)
	require.True(t, res.Results[0].Correct)
	require.True(t, res.Results[1].Correct)
	require.False(t, res.Results[2].Correct)
	require.Equal(t, []string{"true"}, res.Results[2].CorrectAnswer)

	// The attempt got recorded server-side.
	attempts, err := st.ListAttempts(context.Background(), store.AttemptListOpts{QuizID: "service-101"})
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	require.Equal(t, res.AttemptID, attempts[0].ID)
}

func TestSessionDisposeRecordsAttempt(t *testing.T) {
	st := store.NewMemoryStore()
	require.NoError(t, st.PutQuiz(context.Background(), quiz.Quiz{
		ID: "wine-201",
		Questions: []quiz.Question{
			{ID: "q1", Type: quiz.TypeTrueFalse,
				Choices:   []quiz.Choice{{ID: "true", Text: "True"}, {ID: "false", Text: "False"}},
				AnswerKey: []string{"false"}},
		},
	}))

	r := chi.NewRouter()
	api.MountAttemptRoutes(r, st, grading.NewGrader(), nil, time.Now)
	srv := httptest.NewServer(r)
	defer srv.Close()

	s := attempt.NewSession(gateway.New(gateway.Config{BaseURL: srv.URL}))
	require.NoError(t, s.Start(context.Background(), "wine-201"))
	s.SetAnswer("q1", "false")

	// Abandonment: tab closed without submitting.
	s.Dispose()

	require.Eventually(t, func() bool {
		attempts, err := st.ListAttempts(context.Background(), store.AttemptListOpts{QuizID: "wine-201"})
		return err == nil && len(attempts) == 1
	}, 2*time.Second, 10*time.Millisecond, "background submission never recorded an attempt")

	attempts, err := st.ListAttempts(context.Background(), store.AttemptListOpts{QuizID: "wine-201"})
	require.NoError(t, err)
	require.Equal(t, float64(1), attempts[0].Score)
	require.Equal(t, 1, attempts[0].TotalAttempted)
}
