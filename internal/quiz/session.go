package quiz

import "fmt"

// Session is one learner's in-progress attempt at a generated set of
// questions. The question list is fixed at creation; only the cursor and the
// answer ledger mutate afterwards.
type Session struct {
	questions []Question
	current   int
	answers   map[int]string // question index → chosen option label
}

// NewSession creates a Session over the given questions. The slice is copied
// so later mutation by the caller cannot reach into the session.
func NewSession(questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptySession
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Session{
		questions: qs,
		answers:   make(map[int]string),
	}, nil
}

// Len returns the number of questions in the session.
func (s *Session) Len() int {
	return len(s.questions)
}

// CurrentIndex returns the cursor position, always in [0, Len()-1].
func (s *Session) CurrentIndex() int {
	return s.current
}

// Current returns the question under the cursor.
func (s *Session) Current() Question {
	return s.questions[s.current]
}

// Question returns the question at index i.
func (s *Session) Question(i int) (Question, error) {
	if i < 0 || i >= len(s.questions) {
		return Question{}, fmt.Errorf("question index %d out of range [0,%d)", i, len(s.questions))
	}
	return s.questions[i], nil
}

// Questions returns a copy of the session's question list.
func (s *Session) Questions() []Question {
	qs := make([]Question, len(s.questions))
	copy(qs, s.questions)
	return qs
}

// SelectAnswer records the chosen option label for the question at index i,
// overwriting any prior choice. The label is recorded as given; a label that
// is not one of the question's options never matches the answer key at scoring,
// so callers should validate with Question.HasOption first.
func (s *Session) SelectAnswer(i int, label string) error {
	if i < 0 || i >= len(s.questions) {
		return fmt.Errorf("answer index %d out of range [0,%d)", i, len(s.questions))
	}
	s.answers[i] = label
	return nil
}

// Answer returns the recorded option label for question i, or "" when the
// question is unanswered.
func (s *Session) Answer(i int) string {
	return s.answers[i]
}

// Advance moves the cursor forward by one. Silent no-op at the last question.
func (s *Session) Advance() {
	if s.current < len(s.questions)-1 {
		s.current++
	}
}

// Retreat moves the cursor back by one. Silent no-op at the first question.
func (s *Session) Retreat() {
	if s.current > 0 {
		s.current--
	}
}

// Progress returns how many questions have an answer and the total count.
func (s *Session) Progress() (answered, total int) {
	return len(s.answers), len(s.questions)
}
