package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Answers arrive as free text from both numeric and multiple-choice items,
// so matching tries numbers first and falls back to normalized strings.

var numericPrefix = regexp.MustCompile(`^[-+]?\d*\.?\d+`)

// ParseNumeric extracts a leading numeric token from a raw answer. This is a
// best-effort probe: "3.14abc" yields 3.14, "abc" yields ok=false. It never
// fails in an error sense.
func ParseNumeric(raw string) (float64, bool) {
	token := numericPrefix.FindString(strings.TrimSpace(raw))
	if token == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AnswersMatch compares a student answer against a reference answer. When
// both sides parse numerically they match within the absolute tolerance, so
// "5" and "5.00" agree even though their string forms differ. Otherwise the
// comparison is trimmed and case-insensitive.
func AnswersMatch(studentAnswer, referenceAnswer string, tolerance float64) bool {
	sNum, sOK := ParseNumeric(studentAnswer)
	rNum, rOK := ParseNumeric(referenceAnswer)
	if sOK && rOK {
		return math.Abs(sNum-rNum) <= tolerance
	}
	return strings.EqualFold(strings.TrimSpace(studentAnswer), strings.TrimSpace(referenceAnswer))
}
