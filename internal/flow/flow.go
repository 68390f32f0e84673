// Package flow drives the questionnaire state machine: one question at
// a time, answer-before-advance, submit only from the last question with
// a complete vector.
package flow

import (
	"stress-checker/internal/scoring"
)

// State is the in-memory form of one questionnaire run. It is hydrated
// from the persisted test session, mutated by exactly one request at a
// time, and written back by the caller.
type State struct {
	Index    int
	Answers  []int
	Complete bool
}

// New returns a run positioned on the first question with every answer
// slot set to the unanswered sentinel.
func New() *State {
	return &State{Answers: scoring.NewAnswerVector()}
}

// Resume rebuilds a run from persisted session data. A malformed vector
// (wrong length) is replaced with a fresh one rather than trusted.
func Resume(index int, answers []int, complete bool) *State {
	if len(answers) != scoring.NumQuestions {
		return New()
	}
	if index < 0 {
		index = 0
	}
	if index > scoring.NumQuestions-1 {
		index = scoring.NumQuestions - 1
	}
	vec := make([]int, len(answers))
	copy(vec, answers)
	return &State{Index: index, Answers: vec, Complete: complete}
}

// SelectOption records value for the current question. The run stays on
// the same question; advancing is a separate action. Values outside
// [0,4] and calls after completion are rejected without state change.
func (s *State) SelectOption(value int) bool {
	if s.Complete || value < 0 || value > 4 {
		return false
	}
	s.Answers[s.Index] = value
	return true
}

// Advance moves to the next question. It is a no-op while the current
// question is unanswered, and on the last question, where Submit is the
// only way forward.
func (s *State) Advance() bool {
	if s.Complete || s.Answers[s.Index] == scoring.Unanswered {
		return false
	}
	if s.Index >= scoring.NumQuestions-1 {
		return false
	}
	s.Index++
	return true
}

// Retreat moves back one question, keeping every answer already given.
// A no-op on the first question.
func (s *State) Retreat() bool {
	if s.Complete || s.Index == 0 {
		return false
	}
	s.Index--
	return true
}

// OnLastQuestion reports whether the run sits on the final question.
func (s *State) OnLastQuestion() bool {
	return s.Index == scoring.NumQuestions-1
}

// CanSubmit reports whether the run is on the last question with all
// ten slots answered.
func (s *State) CanSubmit() bool {
	return !s.Complete && s.OnLastQuestion() && scoring.IsComplete(s.Answers)
}

// Submit finalizes the run: the vector is scored and classified, then
// handed to persist. If persist fails the run is left exactly as it was
// so the user can retry without re-answering; only a successful save
// marks the run complete.
func (s *State) Submit(persist func(total int, level scoring.Level) error) (int, scoring.Level, error) {
	if !s.CanSubmit() {
		return 0, "", ErrIncomplete
	}
	total := scoring.CalculateScore(s.Answers)
	level := scoring.Classify(total)
	if err := persist(total, level); err != nil {
		return 0, "", err
	}
	s.Complete = true
	return total, level, nil
}

// Restart resets the run to the first question with a freshly
// sentinel-filled vector.
func (s *State) Restart() {
	s.Index = 0
	s.Answers = scoring.NewAnswerVector()
	s.Complete = false
}
