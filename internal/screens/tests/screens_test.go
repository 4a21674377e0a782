package tests

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/prateeks/prepdeck/internal/backend"
	"github.com/prateeks/prepdeck/internal/history"
	"github.com/prateeks/prepdeck/internal/router"
	"github.com/prateeks/prepdeck/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testConfigScreen() (*ConfigScreen, *backend.Mock, *history.Store) {
	mock := &backend.Mock{}
	store := history.NewStore()
	return NewConfig(mock, store), mock, store
}

func TestConfigScreen_ValidationBlocksStart(t *testing.T) {
	s, mock, _ := testConfigScreen()

	// Jump to the start button and press enter without selecting subjects.
	s.focus = fieldStart
	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	cs := scr.(*ConfigScreen)

	if cmd != nil {
		t.Error("expected no command when validation fails")
	}
	if len(cs.problems) == 0 {
		t.Error("expected inline validation problems")
	}
	if len(mock.QuizCalls) != 0 {
		t.Errorf("backend called %d times, want 0", len(mock.QuizCalls))
	}
}

func TestConfigScreen_StartRequestsQuiz(t *testing.T) {
	s, mock, _ := testConfigScreen()
	mock.QuizQueue = []backend.QuizMockResponse{
		{Questions: testSession(t).Questions()},
	}

	s.subjects.Choose("Physics")
	s.countInput.Model.SetValue("10")
	s.focus = fieldStart

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	cs := scr.(*ConfigScreen)

	if cmd == nil {
		t.Fatal("expected a generation command")
	}
	if !cs.loading {
		t.Error("expected loading state while request is outstanding")
	}

	msg := cmd()
	ready, ok := msg.(quizReadyMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want quizReadyMsg", msg)
	}
	if ready.Err != nil {
		t.Fatalf("quizReadyMsg.Err = %v", ready.Err)
	}
	if len(mock.QuizCalls) != 1 {
		t.Fatalf("backend called %d times, want 1", len(mock.QuizCalls))
	}
	if got := mock.QuizCalls[0].ExamType; got != "JEE" {
		t.Errorf("ExamType = %q, want JEE", got)
	}
}

func TestConfigScreen_IgnoresKeysWhileLoading(t *testing.T) {
	s, mock, _ := testConfigScreen()
	s.loading = true
	s.focus = fieldStart

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected keys to be ignored while loading")
	}
	if len(mock.QuizCalls) != 0 {
		t.Error("expected no backend call while loading")
	}
}

func TestConfigScreen_BackendDownShowsError(t *testing.T) {
	s, _, _ := testConfigScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(quizReadyMsg{Err: &backend.ErrBackendUnavailable{}})
	cs := scr.(*ConfigScreen)

	if cs.loading {
		t.Error("expected loading cleared after failure")
	}
	if cs.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestConfigScreen_QuizReadyPushesTestScreen(t *testing.T) {
	s, _, _ := testConfigScreen()
	s.loading = true

	var scr screen.Screen = s
	scr, cmd := scr.Update(quizReadyMsg{Questions: testSession(t).Questions()})
	cs := scr.(*ConfigScreen)

	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want PushScreenMsg", msg)
	}
	if _, ok := push.Screen.(*TestScreen); !ok {
		t.Errorf("pushed %T, want *TestScreen", push.Screen)
	}
	if cs.controller.Phase() != PhaseInProgress {
		t.Errorf("controller phase = %v, want in-progress", cs.controller.Phase())
	}
}

func testInProgressScreen(t *testing.T) (*TestScreen, *history.Store) {
	t.Helper()
	c := NewController()
	if err := c.Begin("Drill", testSession(t)); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	store := history.NewStore()
	return NewTest(c, store), store
}

func TestTestScreen_AnswerRecorded(t *testing.T) {
	s, _ := testInProgressScreen(t)

	// Pick option B directly by its key.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('b'))
	ts := scr.(*TestScreen)

	session := ts.controller.Session()
	if got := session.Answer(0); got != "B" {
		t.Errorf("recorded answer = %q, want B", got)
	}
}

func TestTestScreen_AnswerSurvivesNavigation(t *testing.T) {
	s, _ := testInProgressScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	scr, _ = scr.Update(specialKey(tea.KeyLeft))
	ts := scr.(*TestScreen)

	if got := ts.controller.Session().Answer(0); got != "A" {
		t.Errorf("answer after round trip = %q, want A", got)
	}
	if !ts.options.HasChoice() {
		t.Error("expected option list to restore the recorded choice")
	}
}

func TestTestScreen_SubmitFlow(t *testing.T) {
	s, store := testInProgressScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('b'))
	scr, _ = scr.Update(keyPress('s'))
	ts := scr.(*TestScreen)
	if !ts.showingSubmitConfirm {
		t.Fatal("expected submit confirmation")
	}

	scr, cmd := ts.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	msg := cmd()
	sub, ok := msg.(submittedMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want submittedMsg", msg)
	}
	if sub.Err != nil {
		t.Fatalf("submit error: %v", sub.Err)
	}
	// One correct, one skipped out of two questions.
	if sub.Result.CorrectCount != 1 || sub.Result.SkippedCount != 1 {
		t.Errorf("result = %d correct / %d skipped, want 1/1",
			sub.Result.CorrectCount, sub.Result.SkippedCount)
	}

	scr, cmd = scr.Update(sub)
	if cmd == nil {
		t.Fatal("expected navigation command after grading")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	results, ok := replace.Screen.(*ResultsScreen)
	if !ok {
		t.Fatalf("replaced with %T, want *ResultsScreen", replace.Screen)
	}

	// Finishing the results screen archives the test.
	_, cmd = results.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected pop command after finish")
	}
	if store.Len() != 1 {
		t.Errorf("archived entries = %d, want 1", store.Len())
	}
}

func TestResultsScreen_NewTestSkipsArchive(t *testing.T) {
	c := NewController()
	if err := c.Begin("Drill", testSession(t)); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, err := c.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	store := history.NewStore()
	results := NewResults(c, store)

	_, cmd := results.Update(keyPress('n'))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	if store.Len() != 0 {
		t.Errorf("archived entries = %d, want 0", store.Len())
	}
	if c.Phase() != PhaseConfiguring {
		t.Errorf("phase = %v, want configuring after new test", c.Phase())
	}
}

func TestTestScreen_AbandonDiscards(t *testing.T) {
	s, store := testInProgressScreen(t)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ts := scr.(*TestScreen)
	if !ts.showingQuitConfirm {
		t.Fatal("expected quit confirmation")
	}

	_, cmd := ts.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if ts.controller.Phase() != PhaseConfiguring {
		t.Errorf("phase = %v, want configuring after abandon", ts.controller.Phase())
	}
	if store.Len() != 0 {
		t.Errorf("archived entries = %d, want 0", store.Len())
	}
}
