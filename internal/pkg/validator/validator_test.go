package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidPeriod(t *testing.T) {
	valid := []string{"2024-01", "2025-12", "1999-06"}
	invalid := []string{"2024-13", "2024-00", "2024-1", "2024/01", "24-01", "", "2024-01-15"}
	for _, p := range valid {
		if !IsValidPeriod(p) {
			t.Errorf("IsValidPeriod(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPeriod(p) {
			t.Errorf("IsValidPeriod(%q) = true, want false", p)
		}
	}
}
