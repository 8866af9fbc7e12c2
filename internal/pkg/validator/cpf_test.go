package validator

import (
	"testing"
)

func TestIsValidCPF(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid plain", "11144477735", true},
		{"valid formatted", "111.444.777-35", true},
		{"repeated digits", "11111111111", false},
		{"repeated zeros", "00000000000", false},
		{"ten digits", "1114447773", false},
		{"twelve digits", "111444777350", false},
		{"wrong first check digit", "11144477745", false},
		{"wrong second check digit", "11144477736", false},
		{"empty", "", false},
		{"letters only", "abcdefghijk", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidCPF(tc.input); got != tc.want {
				t.Errorf("IsValidCPF(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestSanitizeCPF(t *testing.T) {
	if got := SanitizeCPF("111.444.777-35"); got != "11144477735" {
		t.Errorf("SanitizeCPF = %q, want 11144477735", got)
	}
	if got := SanitizeCPF("abc"); got != "" {
		t.Errorf("SanitizeCPF(abc) = %q, want empty", got)
	}
}

func TestFormatCPF(t *testing.T) {
	if got := FormatCPF("11144477735"); got != "111.444.777-35" {
		t.Errorf("FormatCPF = %q, want 111.444.777-35", got)
	}
	// Anything that is not 11 digits passes through untouched.
	if got := FormatCPF("12345"); got != "12345" {
		t.Errorf("FormatCPF(12345) = %q, want 12345", got)
	}
}
