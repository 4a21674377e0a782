package backend

import (
	"context"
	"sync"

	"github.com/prateeks/prepdeck/internal/quiz"
)

// Mock is a deterministic Service for tests. Each method returns canned
// values in FIFO order and records the call; an exhausted queue returns
// *ErrBackendUnavailable, mimicking an unreachable backend.
type Mock struct {
	mu sync.Mutex

	QuizQueue   []QuizMockResponse
	SearchQueue []SearchMockResponse
	PlanQueue   []TextMockResponse
	ChatQueue   []TextMockResponse

	QuizCalls   []QuizRequest
	SearchCalls []string
	PlanCalls   []map[string]any
	ChatCalls   []string
}

// QuizMockResponse is a canned GenerateQuiz outcome.
type QuizMockResponse struct {
	Questions []quiz.Question
	Err       error
}

// SearchMockResponse is a canned Search outcome.
type SearchMockResponse struct {
	Result *SearchResult
	Err    error
}

// TextMockResponse is a canned text-returning outcome.
type TextMockResponse struct {
	Text string
	Err  error
}

var _ Service = (*Mock)(nil)

func (m *Mock) GenerateQuiz(_ context.Context, req QuizRequest) ([]quiz.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.QuizCalls = append(m.QuizCalls, req)
	if len(m.QuizQueue) == 0 {
		return nil, &ErrBackendUnavailable{}
	}
	resp := m.QuizQueue[0]
	m.QuizQueue = m.QuizQueue[1:]
	return resp.Questions, resp.Err
}

func (m *Mock) Search(_ context.Context, userQuery string) (*SearchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SearchCalls = append(m.SearchCalls, userQuery)
	if len(m.SearchQueue) == 0 {
		return nil, &ErrBackendUnavailable{}
	}
	resp := m.SearchQueue[0]
	m.SearchQueue = m.SearchQueue[1:]
	return resp.Result, resp.Err
}

func (m *Mock) GenerateStudyPlan(_ context.Context, profile map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PlanCalls = append(m.PlanCalls, profile)
	if len(m.PlanQueue) == 0 {
		return "", &ErrBackendUnavailable{}
	}
	resp := m.PlanQueue[0]
	m.PlanQueue = m.PlanQueue[1:]
	return resp.Text, resp.Err
}

func (m *Mock) GenerateResponse(_ context.Context, input string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ChatCalls = append(m.ChatCalls, input)
	if len(m.ChatQueue) == 0 {
		return "", &ErrBackendUnavailable{}
	}
	resp := m.ChatQueue[0]
	m.ChatQueue = m.ChatQueue[1:]
	return resp.Text, resp.Err
}
