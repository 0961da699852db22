package feedback

import (
	"slices"
	"testing"
)

func TestPositiveIndicators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		notes  string
		expect []string
	}{
		{
			name:   "demonstrated and excellent",
			notes:  "Demonstrated excellent grasp of scoping.",
			expect: []string{"excellent grasp of scoping", "grasp of scoping"},
		},
		{
			name:   "good understanding and strong",
			notes:  "Good understanding of channels, strong testing habits.",
			expect: []string{"channels", "testing habits"},
		},
		{
			name:   "well handled and clear understanding",
			notes:  "Well-handled edge cases. Clear understanding of indexes.",
			expect: []string{"edge cases", "indexes"},
		},
		{
			name:   "pattern order wins over text order",
			notes:  "Strong recall, demonstrated patience.",
			expect: []string{"patience", "recall"},
		},
		{
			name:   "first sentence fallback",
			notes:  "Answered every question thoroughly. Nice.",
			expect: []string{"Answered every question thoroughly"},
		},
		{
			name:   "trigger inside a word is ignored",
			notes:  "Headstrong personality, fine.",
			expect: []string{"Headstrong personality, fine"},
		},
		{
			name:   "short first sentence gives nothing",
			notes:  "Fine.",
			expect: nil,
		},
		{
			name:   "empty",
			notes:  "",
			expect: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := PositiveIndicators(tt.notes); !slices.Equal(got, tt.expect) {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestImprovementIndicators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		notes  string
		expect []string
	}{
		{
			name:   "needs to work on",
			notes:  "The candidate needs to work on recursion and dynamic programming.",
			expect: []string{"recursion and dynamic programming"},
		},
		{
			name:   "needs work on",
			notes:  "Needs work on naming",
			expect: []string{"naming"},
		},
		{
			name:   "struggled and limited understanding",
			notes:  "Struggled with pointers, limited understanding of memory layout.",
			expect: []string{"pointers", "memory layout"},
		},
		{
			name:   "lacking and insufficient",
			notes:  "Lacking tests. Insufficient error handling.",
			expect: []string{"tests", "error handling"},
		},
		{
			name:   "weak in",
			notes:  "Weak in SQL",
			expect: []string{"SQL"},
		},
		{
			name:   "trigger inside a word is ignored",
			notes:  "Unlimited patience with follow-ups.",
			expect: []string{"Unlimited patience with follow-ups"},
		},
		{
			name:   "first sentence fallback",
			notes:  "Could not finish the exercise in time. Ran out of ideas.",
			expect: []string{"Could not finish the exercise in time"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ImprovementIndicators(tt.notes); !slices.Equal(got, tt.expect) {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
