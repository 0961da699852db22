package feedback

// Entry is a question record that carries usable feedback.
type Entry struct {
	QuestionText string
	Skipped      bool
	Rating       float64
	Notes        string
}

// FilterStep describes the result of normalization.
type FilterStep struct {
	Initial int
	Dropped int
	Left    int
}

// Normalize keeps the records that are not skipped, have question text and
// have either a non-zero rating or non-empty notes. Missing fields default to
// zero values; nothing is rejected with an error.
func Normalize(questions []QuestionFeedback) ([]Entry, FilterStep) {
	entries := make([]Entry, 0, len(questions))

	for _, q := range questions {
		if q.Skipped || q.Question == nil || q.Question.Text == "" {
			continue
		}

		var fb Feedback
		if q.Feedback != nil {
			fb = *q.Feedback
		}

		if fb.Rating == 0 && fb.Notes == "" {
			continue
		}

		entries = append(entries, Entry{
			QuestionText: q.Question.Text,
			Rating:       fb.Rating,
			Notes:        fb.Notes,
		})
	}

	return entries, FilterStep{
		Initial: len(questions),
		Dropped: len(questions) - len(entries),
		Left:    len(entries),
	}
}
