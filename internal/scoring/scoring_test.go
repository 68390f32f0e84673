package scoring

import "testing"

func TestCalculateScoreExamples(t *testing.T) {
	cases := []struct {
		name    string
		answers []int
		want    int
	}{
		{"all zeros, reversed items contribute 4 each", []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 16},
		{"all fours, reversed items contribute 0 each", []int{4, 4, 4, 4, 4, 4, 4, 4, 4, 4}, 24},
		{"mixed from the instrument manual", []int{0, 0, 0, 0, 4, 0, 4, 4, 0, 0}, 4},
		{"all unanswered", []int{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1}, 0},
		{"partially answered skips sentinels", []int{3, -1, 2, -1, -1, -1, -1, -1, -1, -1}, 5},
	}
	for _, c := range cases {
		if got := CalculateScore(c.answers); got != c.want {
			t.Errorf("%s: CalculateScore(%v)=%d, want %d", c.name, c.answers, got, c.want)
		}
	}
}

func TestCalculateScoreReversedContribution(t *testing.T) {
	// For each reverse-scored position a raw 0 contributes 4 and a raw 4
	// contributes 0.
	for _, q := range []int{4, 5, 7, 8} {
		answers := NewAnswerVector()
		answers[q-1] = 0
		if got := CalculateScore(answers); got != 4 {
			t.Errorf("question %d raw 0: got %d, want 4", q, got)
		}
		answers[q-1] = 4
		if got := CalculateScore(answers); got != 0 {
			t.Errorf("question %d raw 4: got %d, want 0", q, got)
		}
	}
}

func TestCalculateScoreDirectContribution(t *testing.T) {
	for v := 0; v <= 4; v++ {
		answers := NewAnswerVector()
		answers[0] = v
		if got := CalculateScore(answers); got != v {
			t.Errorf("question 1 raw %d: got %d, want %d", v, got, v)
		}
	}
}

func TestCalculateScoreRange(t *testing.T) {
	// Every fully answered single-value vector stays within [0,40].
	for v := 0; v <= 4; v++ {
		answers := make([]int, NumQuestions)
		for i := range answers {
			answers[i] = v
		}
		got := CalculateScore(answers)
		if got < 0 || got > MaxScore {
			t.Errorf("uniform vector of %d scored %d, outside [0,%d]", v, got, MaxScore)
		}
	}
}

func TestCalculateScoreIdempotent(t *testing.T) {
	answers := []int{1, 2, 3, 4, 0, 1, 2, 3, 4, 0}
	first := CalculateScore(answers)
	second := CalculateScore(answers)
	if first != second {
		t.Errorf("repeated scoring differed: %d then %d", first, second)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  Level
	}{
		{0, LevelRendah},
		{13, LevelRendah},
		{14, LevelSedang},
		{26, LevelSedang},
		{27, LevelTinggi},
		{40, LevelTinggi},
		{-3, LevelRendah},
		{55, LevelTinggi},
	}
	for _, c := range cases {
		if got := Classify(c.score); got != c.want {
			t.Errorf("Classify(%d)=%q, want %q", c.score, got, c.want)
		}
	}
}

func TestIsComplete(t *testing.T) {
	full := []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4}
	if !IsComplete(full) {
		t.Errorf("IsComplete(%v)=false, want true", full)
	}
	partial := NewAnswerVector()
	partial[0] = 2
	if IsComplete(partial) {
		t.Error("vector with sentinels reported complete")
	}
	if IsComplete([]int{0, 1, 2}) {
		t.Error("short vector reported complete")
	}
	bad := []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 9}
	if IsComplete(bad) {
		t.Error("out-of-range value reported complete")
	}
}

func TestIsReversed(t *testing.T) {
	want := map[int]bool{4: true, 5: true, 7: true, 8: true}
	for q := 1; q <= NumQuestions; q++ {
		if got := IsReversed(q); got != want[q] {
			t.Errorf("IsReversed(%d)=%v, want %v", q, got, want[q])
		}
	}
}
