package interview

import (
	"errors"
	"time"

	"github.com/spigell/interview-insights/internal/feedback"
)

var ErrNoSections = errors.New("interview has no sections")

type Interview struct {
	ID        string    `json:"id,omitempty" mapstructure:"id"`
	Candidate string    `json:"candidate,omitempty" mapstructure:"candidate"`
	Position  string    `json:"position,omitempty" mapstructure:"position"`
	CreatedAt time.Time `json:"createdAt,omitempty" mapstructure:"createdAt"`
	Sections  []Section `json:"sections" mapstructure:"sections"`
}

// Section is a titled group of questions with their feedback already joined.
type Section struct {
	ID        string                      `json:"id,omitempty" mapstructure:"id"`
	Title     string                      `json:"title" mapstructure:"title"`
	Questions []feedback.QuestionFeedback `json:"questions" mapstructure:"questions"`
}

// Summary is the per-interview payload assembled from the section analyses.
type Summary struct {
	InterviewID string              `json:"interviewId,omitempty"`
	Candidate   string              `json:"candidate,omitempty"`
	Position    string              `json:"position,omitempty"`
	Sections    []feedback.Analysis `json:"sections"`
	Overall     string              `json:"overall,omitempty"`
}

// Len returns the number of sections.
func (s *Summary) Len() int {
	return len(s.Sections)
}
