package tests

import (
	"github.com/prateeks/prepdeck/internal/history"
	"github.com/prateeks/prepdeck/internal/quiz"
)

// quizReadyMsg is sent when the backend has generated a question set.
type quizReadyMsg struct {
	Questions []quiz.Question
	Err       error
}

// submittedMsg is sent once the in-progress test has been graded.
type submittedMsg struct {
	Result *quiz.Result
	Err    error
}

// archivedMsg is sent after a completed test is filed into history.
type archivedMsg struct {
	Entry *history.Entry
}
