// Package gateway is the REST client for the training platform's quiz API.
// It implements attempt.Gateway for production use.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/zubenkoruslan/hospitalitai-sub005/internal/quiz"
)

type Config struct {
	BaseURL string
	Token   string // bearer token from /auth/login
	Timeout time.Duration
}

type Client struct {
	base  string
	token string
	http  *http.Client
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base:  strings.TrimSuffix(cfg.BaseURL, "/"),
		token: cfg.Token,
		http:  &http.Client{Timeout: timeout},
	}
}

// FetchAttemptQuestions loads the student-safe question set for a quiz.
func (c *Client) FetchAttemptQuestions(ctx context.Context, quizID string) ([]quiz.Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/quizzes/%s/questions", c.base, quizID), nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode/100 != 2 {
		return nil, fmt.Errorf("fetch attempt questions: %s", res.Status)
	}

	var out []quiz.Question
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// SubmitAttempt posts the payload and returns the graded result. The server
// records a new attempt for every call.
func (c *Client) SubmitAttempt(ctx context.Context, quizID string, payload quiz.SubmissionPayload) (quiz.GradedResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return quiz.GradedResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/quizzes/%s/attempts", c.base, quizID), bytes.NewReader(body))
	if err != nil {
		return quiz.GradedResult{}, err
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return quiz.GradedResult{}, err
	}
	defer res.Body.Close()
	if res.StatusCode/100 != 2 {
		return quiz.GradedResult{}, fmt.Errorf("submit attempt: %s", res.Status)
	}

	var out quiz.GradedResult
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return quiz.GradedResult{}, err
	}
	return out, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}
