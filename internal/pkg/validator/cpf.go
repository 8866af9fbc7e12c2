package validator

import (
	"strings"
	"unicode"
)

// SanitizeCPF strips everything that is not a digit.
func SanitizeCPF(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// IsValidCPF verifies the two check digits of a Brazilian CPF. The input may
// carry formatting; anything other than 11 digits, or 11 repeated digits,
// is rejected.
func IsValidCPF(cpf string) bool {
	clean := SanitizeCPF(cpf)
	if len(clean) != 11 {
		return false
	}

	allEq := true
	for i := 1; i < 11; i++ {
		if clean[i] != clean[0] {
			allEq = false
			break
		}
	}
	if allEq {
		return false
	}

	if cpfCheckDigit(clean, 9) != int(clean[9]-'0') {
		return false
	}
	return cpfCheckDigit(clean, 10) == int(clean[10]-'0')
}

// cpfCheckDigit computes the modulus-11 check digit over the first n digits,
// weighted n+1 down to 2. A remainder of 10 or 11 maps to 0.
func cpfCheckDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	return remainder
}

// FormatCPF renders an 11-digit CPF as XXX.XXX.XXX-XX. Inputs that are not
// 11 digits come back unchanged.
func FormatCPF(cpf string) string {
	clean := SanitizeCPF(cpf)
	if len(clean) != 11 {
		return cpf
	}
	var b strings.Builder
	b.WriteString(clean[0:3])
	b.WriteByte('.')
	b.WriteString(clean[3:6])
	b.WriteByte('.')
	b.WriteString(clean[6:9])
	b.WriteByte('-')
	b.WriteString(clean[9:11])
	return b.String()
}
