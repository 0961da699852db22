// Package feedback turns interviewer notes and ratings for one interview
// section into short strength and gap statements.
//
// Everything in this package is a pure function of its input: no I/O, no
// shared state, safe for concurrent use.
package feedback

const (
	// StrengthThreshold is the minimal average rating of a topic reported as a strength.
	StrengthThreshold = 4.0
	// GapThreshold is the maximal average rating of a topic reported as a gap.
	GapThreshold = 2.0
	// MaxStatements caps both the strengths and the gaps lists.
	MaxStatements = 3
)

// Question is the question part of a section record.
type Question struct {
	ID   string `json:"id,omitempty" mapstructure:"id"`
	Text string `json:"text" mapstructure:"text"`
}

// Feedback is what the interviewer recorded for a question.
// A missing rating is 0 and missing notes are empty.
type Feedback struct {
	Rating float64 `json:"rating,omitempty" mapstructure:"rating"`
	Notes  string  `json:"notes,omitempty" mapstructure:"notes"`
}

// QuestionFeedback is a question of a section joined with its feedback.
// Both Question and Feedback may be nil.
type QuestionFeedback struct {
	Skipped  bool      `json:"skipped,omitempty" mapstructure:"skipped"`
	Question *Question `json:"question,omitempty" mapstructure:"question"`
	Feedback *Feedback `json:"feedback,omitempty" mapstructure:"feedback"`
}

// Analysis is the per-section result.
type Analysis struct {
	SectionTitle string   `json:"sectionTitle"`
	Strengths    []string `json:"strengths"`
	Gaps         []string `json:"gaps"`

	// Step describes how many records survived normalization.
	Step FilterStep `json:"-"`
}

// Analyze groups the usable feedback of a section by topic and builds at most
// MaxStatements strengths and MaxStatements gaps, most detailed first.
// The section title is not used by the algorithm and is copied to the result.
func Analyze(sectionTitle string, questions []QuestionFeedback) Analysis {
	entries, step := Normalize(questions)

	result := Analysis{
		SectionTitle: sectionTitle,
		Strengths:    []string{},
		Gaps:         []string{},
		Step:         step,
	}

	if len(entries) == 0 {
		return result
	}

	var strengths, gaps []string
	for _, group := range GroupByTopic(entries) {
		avg := group.AverageRating()
		switch {
		case avg >= StrengthThreshold:
			strengths = append(strengths, StrengthStatement(group))
		case avg <= GapThreshold:
			gaps = append(gaps, GapStatement(group))
		}
	}

	result.Strengths = Rank(strengths, MaxStatements, ByLength)
	result.Gaps = Rank(gaps, MaxStatements, ByLength)

	return result
}
