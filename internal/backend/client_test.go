package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quizServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

const validQuizBody = `{
	"quiz": [
		{
			"question": "What is the unit of charge?",
			"options": {"A": "Coulomb", "B": "Ampere", "C": "Volt", "D": "Ohm"},
			"correct_answer": "A",
			"explanation": "Charge is measured in coulombs.",
			"topic": "Electrostatics",
			"subject": "Physics",
			"difficulty": "Easy"
		}
	]
}`

func TestGenerateQuiz(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		server := quizServer(t, http.StatusOK, validQuizBody)
		defer server.Close()

		client := NewClient(server.URL)
		questions, err := client.GenerateQuiz(context.Background(), QuizRequest{
			ExamType:   "JEE",
			Subjects:   []SubjectRequest{{Name: "Physics", QuestionCount: 1}},
			Difficulty: "Easy",
		})
		require.NoError(t, err)
		require.Len(t, questions, 1)
		assert.Equal(t, "What is the unit of charge?", questions[0].Text)
		assert.Equal(t, "A", questions[0].CorrectAnswer)
		assert.Equal(t, "Electrostatics", questions[0].Topic)
	})

	t.Run("empty quiz array is malformed", func(t *testing.T) {
		server := quizServer(t, http.StatusOK, `{"quiz": []}`)
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.GenerateQuiz(context.Background(), QuizRequest{})
		var malformed *ErrMalformedResponse
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("quiz field missing", func(t *testing.T) {
		server := quizServer(t, http.StatusOK, `{"error": "something broke"}`)
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.GenerateQuiz(context.Background(), QuizRequest{})
		var malformed *ErrMalformedResponse
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("quiz not an array", func(t *testing.T) {
		server := quizServer(t, http.StatusOK, `{"quiz": "soon"}`)
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.GenerateQuiz(context.Background(), QuizRequest{})
		var malformed *ErrMalformedResponse
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("correct answer not an option", func(t *testing.T) {
		body := `{"quiz": [{"question": "q", "options": {"A": "a", "B": "b"}, "correct_answer": "E"}]}`
		server := quizServer(t, http.StatusOK, body)
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.GenerateQuiz(context.Background(), QuizRequest{})
		var malformed *ErrMalformedResponse
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("non-success status", func(t *testing.T) {
		server := quizServer(t, http.StatusInternalServerError, `{"error": "boom"}`)
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.GenerateQuiz(context.Background(), QuizRequest{})
		var unavailable *ErrBackendUnavailable
		require.ErrorAs(t, err, &unavailable)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1")
		_, err := client.GenerateQuiz(context.Background(), QuizRequest{})
		var unavailable *ErrBackendUnavailable
		require.ErrorAs(t, err, &unavailable)
	})
}

func TestGenerateQuiz_RequestBody(t *testing.T) {
	var got QuizRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(validQuizBody))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GenerateQuiz(context.Background(), QuizRequest{
		ExamType:   "NEET",
		Subjects:   []SubjectRequest{{Name: "Biology", QuestionCount: 10}},
		Difficulty: "Hard",
		Topics:     []string{"Genetics"},
		TestName:   "Biology Drill",
	})
	require.NoError(t, err)

	assert.Equal(t, "NEET", got.ExamType)
	require.Len(t, got.Subjects, 1)
	assert.Equal(t, "Biology", got.Subjects[0].Name)
	assert.Equal(t, 10, got.Subjects[0].QuestionCount)
	assert.Equal(t, []string{"Genetics"}, got.Topics)
	assert.Equal(t, "Biology Drill", got.TestName)
}

func TestSearch(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		body := `{
			"youtube_results": ["1. **Kinematics Basics** - PhysicsHub - [Watch here](https://youtube.com/watch?v=abc123)"],
			"educational_resources": "1. **Concepts of Physics** - [Read here](https://example.com) - A classic."
		}`
		server := quizServer(t, http.StatusOK, body)
		defer server.Close()

		client := NewClient(server.URL)
		result, err := client.Search(context.Background(), "kinematics tutorial videos")
		require.NoError(t, err)
		require.Len(t, result.YouTubeResults, 1)
		assert.Contains(t, result.EducationalResources, "Concepts of Physics")
	})

	t.Run("unreachable", func(t *testing.T) {
		client := NewClient("http://127.0.0.1:1")
		_, err := client.Search(context.Background(), "anything")
		var unavailable *ErrBackendUnavailable
		require.ErrorAs(t, err, &unavailable)
	})
}

func TestGenerateStudyPlan(t *testing.T) {
	server := quizServer(t, http.StatusOK, `{"study_plan": "Week 1: revise mechanics."}`)
	defer server.Close()

	client := NewClient(server.URL)
	plan, err := client.GenerateStudyPlan(context.Background(), map[string]any{"name": "Test User"})
	require.NoError(t, err)
	assert.Equal(t, "Week 1: revise mechanics.", plan)
}

func TestGenerateResponse(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		server := quizServer(t, http.StatusOK, `{"response": "Integrate by parts."}`)
		defer server.Close()

		client := NewClient(server.URL)
		text, err := client.GenerateResponse(context.Background(), "how do I integrate x·e^x?")
		require.NoError(t, err)
		assert.Equal(t, "Integrate by parts.", text)
	})

	t.Run("missing response field", func(t *testing.T) {
		server := quizServer(t, http.StatusOK, `{"error": "quota exceeded"}`)
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.GenerateResponse(context.Background(), "hello")
		var malformed *ErrMalformedResponse
		require.ErrorAs(t, err, &malformed)
	})
}

func TestMock_ExhaustedQueueIsUnavailable(t *testing.T) {
	m := &Mock{}
	_, err := m.Search(context.Background(), "q")
	var unavailable *ErrBackendUnavailable
	if !errors.As(err, &unavailable) {
		t.Errorf("err = %v, want ErrBackendUnavailable", err)
	}
	if len(m.SearchCalls) != 1 {
		t.Errorf("SearchCalls = %d, want 1", len(m.SearchCalls))
	}
}
