package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{name: "plain integer", input: "42", want: 42, ok: true},
		{name: "decimal", input: "3.14", want: 3.14, ok: true},
		{name: "negative", input: "-7.5", want: -7.5, ok: true},
		{name: "explicit plus sign", input: "+2", want: 2, ok: true},
		{name: "leading whitespace", input: "  0.5", want: 0.5, ok: true},
		{name: "trailing unit text", input: "3.14abc", want: 3.14, ok: true},
		{name: "fraction notation keeps numerator", input: "1/2", want: 1, ok: true},
		{name: "bare decimal point", input: ".25", want: 0.25, ok: true},
		{name: "pure text", input: "abc", ok: false},
		{name: "number not at start", input: "about 12", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "only whitespace", input: "   ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumeric(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestAnswersMatch(t *testing.T) {
	tests := []struct {
		name      string
		student   string
		reference string
		tolerance float64
		want      bool
	}{
		{name: "exact numeric", student: "5", reference: "5", tolerance: 0.01, want: true},
		{name: "numeric within tolerance", student: "0.333", reference: "0.3333", tolerance: 0.01, want: true},
		{name: "numeric outside tolerance", student: "0.3", reference: "0.5", tolerance: 0.01, want: false},
		{name: "different formatting same value", student: "5", reference: "5.00", tolerance: 0.01, want: true},
		{name: "numeric with unit suffix", student: "12 cm", reference: "12", tolerance: 0.01, want: true},
		{name: "string case insensitive", student: "paris", reference: "Paris", tolerance: 0.01, want: true},
		{name: "string trimmed", student: "  Paris  ", reference: "Paris", tolerance: 0.01, want: true},
		{name: "string mismatch", student: "London", reference: "Paris", tolerance: 0.01, want: false},
		{name: "zero tolerance exact only", student: "2.0001", reference: "2", tolerance: 0, want: false},
		{name: "negative values", student: "-3", reference: "-3.005", tolerance: 0.01, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnswersMatch(tt.student, tt.reference, tt.tolerance)
			assert.Equal(t, tt.want, got)
		})
	}
}
