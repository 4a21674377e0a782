package quiz

import (
	"errors"
	"math"
	"strings"
)

// ErrEmptySession is returned when a session with no questions is created
// or scored.
var ErrEmptySession = errors.New("session has no questions")

// weakTopicThreshold is the accuracy below which a topic is recommended for
// further study. Strictly below: exactly 60% is not weak.
const weakTopicThreshold = 0.6

const encouragement = "Great job! Continue practicing to maintain your understanding."

// QuestionResult is the scored outcome of a single question.
type QuestionResult struct {
	Question   Question
	UserAnswer string // "" when skipped
	IsCorrect  bool
	IsSkipped  bool
}

// TopicStats is the per-topic correct/total tally.
type TopicStats struct {
	Correct int
	Total   int
}

// Result is the computed outcome of a completed session. Created once by
// Score and never mutated.
type Result struct {
	TotalQuestions   int
	CorrectCount     int
	IncorrectCount   int
	SkippedCount     int
	ScorePercent     int
	PerQuestion      []QuestionResult
	TopicPerformance map[string]TopicStats
	// TopicOrder holds topics in order of first appearance across the
	// question sequence, so reports and recommendations are deterministic.
	TopicOrder     []string
	Recommendation string
}

// Score computes a Result from a session. It is a pure function of the
// session's questions and answer ledger: scoring the same session twice
// yields identical results.
func Score(s *Session) (*Result, error) {
	if s == nil || s.Len() == 0 {
		return nil, ErrEmptySession
	}

	total := s.Len()
	r := &Result{
		TotalQuestions:   total,
		PerQuestion:      make([]QuestionResult, 0, total),
		TopicPerformance: make(map[string]TopicStats),
	}

	for i := 0; i < total; i++ {
		q := s.questions[i]
		userAnswer := s.Answer(i)
		skipped := userAnswer == ""
		correct := !skipped && userAnswer == q.CorrectAnswer

		switch {
		case correct:
			r.CorrectCount++
		case skipped:
			r.SkippedCount++
		default:
			r.IncorrectCount++
		}

		r.PerQuestion = append(r.PerQuestion, QuestionResult{
			Question:   q,
			UserAnswer: userAnswer,
			IsCorrect:  correct,
			IsSkipped:  skipped,
		})

		topic := q.EffectiveTopic()
		stats, seen := r.TopicPerformance[topic]
		if !seen {
			r.TopicOrder = append(r.TopicOrder, topic)
		}
		stats.Total++
		if correct {
			stats.Correct++
		}
		r.TopicPerformance[topic] = stats
	}

	r.ScorePercent = int(math.Round(float64(r.CorrectCount) / float64(total) * 100))
	r.Recommendation = recommendation(r.TopicPerformance, r.TopicOrder)
	return r, nil
}

// recommendation names the weak topics in first-appearance order, or returns
// a fixed encouragement when there are none.
func recommendation(perf map[string]TopicStats, order []string) string {
	var weak []string
	for _, topic := range order {
		stats := perf[topic]
		if stats.Total == 0 {
			continue
		}
		if float64(stats.Correct)/float64(stats.Total) < weakTopicThreshold {
			weak = append(weak, topic)
		}
	}
	if len(weak) == 0 {
		return encouragement
	}
	return "Focus on improving in these areas: " + strings.Join(weak, ", ") + "."
}
