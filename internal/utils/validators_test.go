package utils

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name@example.com", "x+y@sub.domain.org"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q)=false, want true", e)
		}
	}
	invalid := []string{"", "plain", "no@dot", "spaces in@mail.com", "@missing.local"}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q)=true, want false", e)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if IsValidPassword("12345") {
		t.Error("five characters accepted")
	}
	if !IsValidPassword("123456") {
		t.Error("six characters rejected")
	}
}
