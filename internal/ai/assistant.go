package ai

import (
	"context"

	"github.com/spigell/interview-insights/internal/interview"
)

// Narration is what a provider says about a whole interview.
type Narration struct {
	Overall        string
	Recommendation string
	Raw            string
}

// Text joins the overall assessment and the recommendation into one paragraph.
func (n *Narration) Text() string {
	if n == nil {
		return ""
	}
	if n.Recommendation == "" {
		return n.Overall
	}
	if n.Overall == "" {
		return "Recommendation: " + n.Recommendation
	}
	return n.Overall + " Recommendation: " + n.Recommendation
}

// Narrator writes a short narrative for a heuristic interview summary.
type Narrator interface {
	Narrate(ctx context.Context, summary *interview.Summary) (string, error)
}
