package models

import "testing"

func TestEncodeDecodeAnswers(t *testing.T) {
	answers := []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4}
	raw, err := EncodeAnswers(answers)
	if err != nil {
		t.Fatalf("EncodeAnswers: %v", err)
	}

	decoded := DecodeAnswers(raw)
	if len(decoded) != 10 {
		t.Fatalf("decoded %d entries, want 10", len(decoded))
	}
	for i, v := range answers {
		key := "q" + string(rune('1'+i))
		if i == 9 {
			key = "q10"
		}
		if decoded[key] != v {
			t.Errorf("%s=%d, want %d", key, decoded[key], v)
		}
	}
}

func TestDecodeAnswersMalformed(t *testing.T) {
	for _, raw := range []string{"", "not json", "[1,2,3]", `{"q1":"x"}`} {
		decoded := DecodeAnswers(raw)
		if decoded == nil {
			t.Errorf("DecodeAnswers(%q) returned nil", raw)
		}
		if len(decoded) != 0 {
			t.Errorf("DecodeAnswers(%q) returned %v, want empty map", raw, decoded)
		}
	}
}
