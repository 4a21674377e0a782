// Package backend is the HTTP client for the PrepDeck generation service.
// All quiz generation, resource search, study-plan generation, and
// conversational answers live behind it; the client itself holds no state
// beyond connection configuration.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prateeks/prepdeck/internal/quiz"
)

// DefaultBaseURL is where the generation service listens when run locally.
const DefaultBaseURL = "http://localhost:5000"

// Service is the collaborator abstraction consumed by the screens. The
// production implementation is *Client; tests use *Mock.
type Service interface {
	GenerateQuiz(ctx context.Context, req QuizRequest) ([]quiz.Question, error)
	Search(ctx context.Context, userQuery string) (*SearchResult, error)
	GenerateStudyPlan(ctx context.Context, profile map[string]any) (string, error)
	GenerateResponse(ctx context.Context, input string) (string, error)
}

// Client talks to the generation service over HTTP with JSON bodies.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a Client for the service at baseURL. An empty baseURL
// falls back to DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Service = (*Client)(nil)

// GenerateQuiz requests a generated question set. The response is validated
// against the quiz schema before any question is mapped; an empty quiz array
// counts as malformed since a test cannot start from it.
func (c *Client) GenerateQuiz(ctx context.Context, req QuizRequest) ([]quiz.Question, error) {
	raw, err := c.postJSON(ctx, "/generate-quiz", req)
	if err != nil {
		return nil, err
	}

	if err := validateQuizResponse(raw); err != nil {
		return nil, err
	}

	var resp quizResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ErrMalformedResponse{Content: raw, Err: err}
	}
	if len(resp.Quiz) == 0 {
		return nil, &ErrMalformedResponse{Content: raw, Err: errors.New("quiz array is empty")}
	}

	questions := make([]quiz.Question, 0, len(resp.Quiz))
	for i, p := range resp.Quiz {
		if _, ok := p.Options[p.CorrectAnswer]; !ok {
			return nil, &ErrMalformedResponse{
				Content: raw,
				Err:     fmt.Errorf("question %d: correct_answer %q is not an option label", i, p.CorrectAnswer),
			}
		}
		questions = append(questions, quiz.Question{
			Text:          p.Question,
			Options:       p.Options,
			CorrectAnswer: p.CorrectAnswer,
			Explanation:   p.Explanation,
			Topic:         p.Topic,
			Subject:       p.Subject,
			Difficulty:    p.Difficulty,
		})
	}
	return questions, nil
}

// Search asks the backend for learning resources matching userQuery.
func (c *Client) Search(ctx context.Context, userQuery string) (*SearchResult, error) {
	raw, err := c.postJSON(ctx, "/search", map[string]string{"user_query": userQuery})
	if err != nil {
		return nil, err
	}

	var result SearchResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ErrMalformedResponse{Content: raw, Err: err}
	}
	return &result, nil
}

// GenerateStudyPlan sends a learner profile and returns the plan text.
func (c *Client) GenerateStudyPlan(ctx context.Context, profile map[string]any) (string, error) {
	raw, err := c.postJSON(ctx, "/generate-study-plan", profile)
	if err != nil {
		return "", err
	}

	var resp studyPlanResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &ErrMalformedResponse{Content: raw, Err: err}
	}
	if resp.StudyPlan == "" {
		return "", &ErrMalformedResponse{Content: raw, Err: errors.New("study_plan field missing or empty")}
	}
	return resp.StudyPlan, nil
}

// GenerateResponse sends free-form input to the conversational endpoint.
func (c *Client) GenerateResponse(ctx context.Context, input string) (string, error) {
	raw, err := c.postJSON(ctx, "/generate-response", map[string]string{"input": input})
	if err != nil {
		return "", err
	}

	var resp chatResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", &ErrMalformedResponse{Content: raw, Err: err}
	}
	if resp.Response == "" {
		return "", &ErrMalformedResponse{Content: raw, Err: errors.New("response field missing or empty")}
	}
	return resp.Response, nil
}

// postJSON performs a JSON POST and returns the raw response body.
// Transport failures and non-2xx statuses become *ErrBackendUnavailable.
func (c *Client) postJSON(ctx context.Context, path string, body any) (json.RawMessage, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ErrBackendUnavailable{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrBackendUnavailable{Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrBackendUnavailable{Err: fmt.Errorf("%s returned status %d", path, resp.StatusCode)}
	}

	return data, nil
}
