package crypto

import (
	"strings"
	"unicode/utf8"
)

// Strength labels, weakest first.
const (
	LabelWeak       = "Weak"
	LabelMedium     = "Medium"
	LabelStrong     = "Strong"
	LabelVeryStrong = "Very Strong"
)

var weakPatterns = []string{"123", "abc", "qwe"}

// Strength scores password on a 0-100 scale.
//
// The variety bonus at the end rewards the same character classes already
// counted individually; both are part of the score.
func Strength(password string) int {
	length := utf8.RuneCountInString(password)
	score := min(length*4, 40)

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	variety := 0
	if hasLower {
		score += 5
		variety++
	}
	if hasUpper {
		score += 5
		variety++
	}
	if hasDigit {
		score += 5
		variety++
	}
	if hasSpecial {
		score += 10
		variety++
	}

	if length < 8 {
		score -= 20
	}
	if length > 12 {
		score += 10
	}
	if length > 16 {
		score += 10
	}

	if hasRepeatRun(password, 3) {
		score -= 10
	}
	if containsWeakPattern(password) {
		score -= 10
	}

	score += variety * 5

	return max(0, min(100, score))
}

// StrengthLabel buckets a score.
func StrengthLabel(score int) string {
	switch {
	case score < 30:
		return LabelWeak
	case score < 60:
		return LabelMedium
	case score < 80:
		return LabelStrong
	default:
		return LabelVeryStrong
	}
}

// StrengthColor returns the display color of the score's bucket.
func StrengthColor(score int) string {
	switch {
	case score < 30:
		return "#ff4757"
	case score < 60:
		return "#ffa502"
	case score < 80:
		return "#2ed573"
	default:
		return "#5352ed"
	}
}

// hasRepeatRun reports whether any rune appears n or more times in a row.
// Line terminators never count toward a run.
func hasRepeatRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		switch {
		case isLineTerminator(r):
			run = 0
		case run > 0 && r == prev:
			run++
		default:
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

func containsWeakPattern(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range weakPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
