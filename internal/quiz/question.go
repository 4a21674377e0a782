package quiz

import "sort"

// DefaultTopic is used when the generation backend omits a question's topic.
const DefaultTopic = "General"

// Question is a single multiple-choice question as received from the
// generation backend. Immutable once created.
type Question struct {
	Text          string
	Options       map[string]string // option label ("A".."E") → option text
	CorrectAnswer string
	Explanation   string
	Topic         string
	Subject       string
	Difficulty    string
}

// EffectiveTopic returns the question's topic, falling back to DefaultTopic
// when the backend left it empty.
func (q Question) EffectiveTopic() string {
	if q.Topic == "" {
		return DefaultTopic
	}
	return q.Topic
}

// OptionLabels returns the question's option labels in alphabetical order.
func (q Question) OptionLabels() []string {
	labels := make([]string, 0, len(q.Options))
	for label := range q.Options {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// HasOption reports whether label is a valid option for this question.
func (q Question) HasOption(label string) bool {
	_, ok := q.Options[label]
	return ok
}
