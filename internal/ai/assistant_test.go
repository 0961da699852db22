package ai

import "testing"

func TestNarrationText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		narration *Narration
		expect    string
	}{
		{name: "nil", narration: nil, expect: ""},
		{name: "overall only", narration: &Narration{Overall: "Solid."}, expect: "Solid."},
		{name: "recommendation only", narration: &Narration{Recommendation: "Hire"}, expect: "Recommendation: Hire"},
		{name: "both", narration: &Narration{Overall: "Solid.", Recommendation: "Hire"}, expect: "Solid. Recommendation: Hire"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.narration.Text(); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
