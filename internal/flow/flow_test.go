package flow

import (
	"errors"
	"testing"

	"stress-checker/internal/scoring"
)

func answerAll(s *State, value int) {
	for i := 0; i < scoring.NumQuestions-1; i++ {
		s.SelectOption(value)
		s.Advance()
	}
	s.SelectOption(value)
}

func TestNewStartsAtFirstQuestionUnanswered(t *testing.T) {
	s := New()
	if s.Index != 0 || s.Complete {
		t.Fatalf("fresh state: index=%d complete=%v", s.Index, s.Complete)
	}
	for i, v := range s.Answers {
		if v != scoring.Unanswered {
			t.Fatalf("slot %d starts at %d, want sentinel", i, v)
		}
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	s := New()
	if s.Advance() {
		t.Fatal("advanced past an unanswered question")
	}
	if !s.SelectOption(2) {
		t.Fatal("valid option rejected")
	}
	if !s.Advance() {
		t.Fatal("could not advance after answering")
	}
	if s.Index != 1 {
		t.Fatalf("index=%d after one advance", s.Index)
	}
}

func TestSelectOptionRejectsOutOfRange(t *testing.T) {
	s := New()
	for _, v := range []int{-1, 5, 99} {
		if s.SelectOption(v) {
			t.Errorf("SelectOption(%d) accepted", v)
		}
	}
	if s.Answers[0] != scoring.Unanswered {
		t.Errorf("slot mutated by rejected value: %d", s.Answers[0])
	}
}

func TestRetreatPreservesAnswers(t *testing.T) {
	s := New()
	if s.Retreat() {
		t.Fatal("retreated from the first question")
	}
	s.SelectOption(3)
	s.Advance()
	s.SelectOption(1)
	if !s.Retreat() {
		t.Fatal("could not retreat")
	}
	if s.Index != 0 {
		t.Fatalf("index=%d after retreat", s.Index)
	}
	if s.Answers[0] != 3 || s.Answers[1] != 1 {
		t.Fatalf("answers not preserved: %v", s.Answers[:2])
	}
}

func TestAdvanceDisallowedOnLastQuestion(t *testing.T) {
	s := New()
	answerAll(s, 2)
	if !s.OnLastQuestion() {
		t.Fatalf("expected last question, at index %d", s.Index)
	}
	if s.Advance() {
		t.Fatal("advanced past the last question")
	}
}

func TestSubmitRequiresCompleteVector(t *testing.T) {
	s := New()
	answerAll(s, 2)
	s.Answers[4] = scoring.Unanswered

	called := false
	_, _, err := s.Submit(func(int, scoring.Level) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrIncomplete) {
		t.Fatalf("err=%v, want ErrIncomplete", err)
	}
	if called {
		t.Fatal("persist invoked on incomplete vector")
	}
	if s.Complete {
		t.Fatal("incomplete run marked complete")
	}
}

func TestSubmitScoresAndPersists(t *testing.T) {
	s := New()
	answerAll(s, 4)

	var gotTotal int
	var gotLevel scoring.Level
	total, level, err := s.Submit(func(t int, l scoring.Level) error {
		gotTotal, gotLevel = t, l
		return nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	// All fours: the four reversed items contribute 0, the rest 4 each.
	if total != 24 || gotTotal != 24 {
		t.Fatalf("total=%d persisted=%d, want 24", total, gotTotal)
	}
	if level != scoring.LevelSedang || gotLevel != scoring.LevelSedang {
		t.Fatalf("level=%q persisted=%q, want Sedang", level, gotLevel)
	}
	if !s.Complete {
		t.Fatal("run not marked complete after successful submit")
	}
}

func TestSubmitFailureLeavesStateRetryable(t *testing.T) {
	s := New()
	answerAll(s, 0)

	boom := errors.New("db down")
	if _, _, err := s.Submit(func(int, scoring.Level) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want persistence error", err)
	}
	if s.Complete {
		t.Fatal("failed submit marked run complete")
	}
	if !s.OnLastQuestion() {
		t.Fatalf("index moved to %d on failed submit", s.Index)
	}

	// Retry without touching the answers.
	total, level, err := s.Submit(func(int, scoring.Level) error { return nil })
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	// All zeros: reversed items contribute 4 each.
	if total != 16 || level != scoring.LevelSedang {
		t.Fatalf("retry scored %d/%q, want 16/Sedang", total, level)
	}
}

func TestSubmitOnlyFromLastQuestion(t *testing.T) {
	s := New()
	// Answer everything, then walk back to the middle.
	answerAll(s, 1)
	for i := 0; i < 5; i++ {
		s.Retreat()
	}
	if _, _, err := s.Submit(func(int, scoring.Level) error { return nil }); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("submit away from last question: err=%v", err)
	}
}

func TestRestart(t *testing.T) {
	s := New()
	answerAll(s, 2)
	if _, _, err := s.Submit(func(int, scoring.Level) error { return nil }); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	s.Restart()
	if s.Index != 0 || s.Complete {
		t.Fatalf("after restart: index=%d complete=%v", s.Index, s.Complete)
	}
	for _, v := range s.Answers {
		if v != scoring.Unanswered {
			t.Fatalf("restart kept answer %d", v)
		}
	}
}

func TestResumeSanitizesBadState(t *testing.T) {
	s := Resume(42, []int{1, 2}, false)
	if s.Index != 0 || len(s.Answers) != scoring.NumQuestions {
		t.Fatalf("malformed session not reset: index=%d len=%d", s.Index, len(s.Answers))
	}

	s = Resume(12, scoring.NewAnswerVector(), false)
	if s.Index != scoring.NumQuestions-1 {
		t.Fatalf("index not clamped: %d", s.Index)
	}
}
