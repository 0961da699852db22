package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/spigell/interview-insights/internal/feedback"
	"github.com/spigell/interview-insights/internal/interview"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func sampleInterview() interview.Interview {
	return interview.Interview{
		Candidate: "Alex",
		Position:  "Backend engineer",
		Sections: []interview.Section{
			{
				Title: "JavaScript",
				Questions: []feedback.QuestionFeedback{
					{
						Question: &feedback.Question{Text: "Closures"},
						Feedback: &feedback.Feedback{Rating: 5, Notes: "Demonstrated excellent grasp of scoping."},
					},
					{
						Skipped:  true,
						Question: &feedback.Question{Text: "Generators"},
					},
				},
			},
			{
				Title: "Algorithms",
				Questions: []feedback.QuestionFeedback{
					{
						Question: &feedback.Question{Text: "Explain memoization?"},
						Feedback: &feedback.Feedback{Rating: 2},
					},
				},
			},
			{Title: "Behavioral"},
		},
	}
}

func TestSaveAndGetInterview(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.SaveInterview(ctx, sampleInterview())
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if id == "" {
		t.Fatal("expected generated id")
	}

	iv, err := s.GetInterview(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if iv.Candidate != "Alex" || iv.Position != "Backend engineer" {
		t.Fatalf("unexpected header: %+v", iv)
	}

	if iv.CreatedAt.IsZero() {
		t.Fatal("expected created at to be set")
	}

	if len(iv.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(iv.Sections))
	}

	titles := []string{iv.Sections[0].Title, iv.Sections[1].Title, iv.Sections[2].Title}
	if titles[0] != "JavaScript" || titles[1] != "Algorithms" || titles[2] != "Behavioral" {
		t.Fatalf("unexpected section order: %v", titles)
	}

	js := iv.Sections[0].Questions
	if len(js) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(js))
	}

	if js[0].Question.Text != "Closures" || js[0].Feedback == nil || js[0].Feedback.Rating != 5 {
		t.Fatalf("unexpected first question: %+v", js[0])
	}

	if !js[1].Skipped || js[1].Feedback != nil {
		t.Fatalf("unexpected skipped question: %+v", js[1])
	}

	algo := iv.Sections[1].Questions[0]
	if algo.Feedback == nil || algo.Feedback.Rating != 2 || algo.Feedback.Notes != "" {
		t.Fatalf("unexpected algorithms feedback: %+v", algo.Feedback)
	}

	if len(iv.Sections[2].Questions) != 0 {
		t.Fatalf("expected empty section, got %+v", iv.Sections[2].Questions)
	}
}

func TestSaveInterviewReplacesExisting(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	iv := sampleInterview()
	iv.ID = "iv-1"

	if _, err := s.SaveInterview(ctx, iv); err != nil {
		t.Fatalf("save: %v", err)
	}

	iv.Sections = iv.Sections[:1]
	iv.Candidate = "Alex B."
	if _, err := s.SaveInterview(ctx, iv); err != nil {
		t.Fatalf("save again: %v", err)
	}

	got, err := s.GetInterview(ctx, "iv-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if got.Candidate != "Alex B." || len(got.Sections) != 1 {
		t.Fatalf("expected replaced interview, got %+v", got)
	}

	headers, err := s.ListInterviews(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(headers) != 1 || headers[0].Sections != 1 {
		t.Fatalf("unexpected headers: %+v", headers)
	}
}

func TestGetInterviewNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetInterview(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListInterviewsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		iv := interview.Interview{
			ID:        name,
			Candidate: name,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
			Sections:  []interview.Section{{Title: "Go"}, {Title: "SQL"}},
		}
		if _, err := s.SaveInterview(ctx, iv); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	headers, err := s.ListInterviews(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if len(headers) != 3 {
		t.Fatalf("expected 3 headers, got %d", len(headers))
	}

	if headers[0].ID != "third" || headers[2].ID != "first" {
		t.Fatalf("unexpected order: %+v", headers)
	}

	if headers[0].Sections != 2 {
		t.Fatalf("expected 2 sections, got %d", headers[0].Sections)
	}

	if !headers[0].CreatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("unexpected created at: %v", headers[0].CreatedAt)
	}
}
