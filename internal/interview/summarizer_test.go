package interview

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/interview-insights/internal/feedback"
)

type stubNarrator struct {
	text  string
	err   error
	calls int
}

func (s *stubNarrator) Narrate(_ context.Context, summary *Summary) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return fmt.Sprintf("%s (%d sections)", s.text, summary.Len()), nil
}

func rated(text string, rating float64, notes string) feedback.QuestionFeedback {
	return feedback.QuestionFeedback{
		Question: &feedback.Question{Text: text},
		Feedback: &feedback.Feedback{Rating: rating, Notes: notes},
	}
}

func testInterview(sections int) Interview {
	iv := Interview{ID: "iv-1", Candidate: "Alex"}
	for i := range sections {
		iv.Sections = append(iv.Sections, Section{
			Title: fmt.Sprintf("Section %d", i),
			Questions: []feedback.QuestionFeedback{
				rated(fmt.Sprintf("Topic %d", i), 5, "Demonstrated excellent grasp of scoping."),
			},
		})
	}
	return iv
}

func TestSummarizeKeepsSectionOrder(t *testing.T) {
	s := NewSummarizer(zap.NewNop(), nil, 3)

	summary, err := s.Summarize(context.Background(), testInterview(20))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Len() != 20 {
		t.Fatalf("expected 20 sections, got %d", summary.Len())
	}

	for i, section := range summary.Sections {
		if section.SectionTitle != fmt.Sprintf("Section %d", i) {
			t.Fatalf("section %d out of order: %q", i, section.SectionTitle)
		}
		expected := fmt.Sprintf("Strong understanding of Topic %d - excellent grasp of scoping", i)
		if len(section.Strengths) != 1 || section.Strengths[0] != expected {
			t.Fatalf("unexpected strengths for section %d: %q", i, section.Strengths)
		}
	}

	if summary.InterviewID != "iv-1" || summary.Candidate != "Alex" {
		t.Fatalf("unexpected summary header: %+v", summary)
	}
}

func TestSummarizeEmptySectionStillReported(t *testing.T) {
	s := NewSummarizer(nil, nil, 0)

	summary, err := s.Summarize(context.Background(), Interview{Sections: []Section{{Title: "Behavioral"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Len() != 1 || summary.Sections[0].SectionTitle != "Behavioral" {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	if summary.Sections[0].Strengths == nil || summary.Sections[0].Gaps == nil {
		t.Fatalf("expected empty non-nil lists: %+v", summary.Sections[0])
	}
}

func TestSummarizeWithoutSections(t *testing.T) {
	s := NewSummarizer(nil, nil, 0)

	if _, err := s.Summarize(context.Background(), Interview{}); !errors.Is(err, ErrNoSections) {
		t.Fatalf("expected ErrNoSections, got %v", err)
	}
}

func TestSummarizeCancelled(t *testing.T) {
	s := NewSummarizer(nil, nil, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Summarize(ctx, testInterview(3)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestSummarizeNarration(t *testing.T) {
	narrator := &stubNarrator{text: "Solid candidate"}
	s := NewSummarizer(nil, narrator, 2)

	summary, err := s.Summarize(context.Background(), testInterview(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if narrator.calls != 1 {
		t.Fatalf("expected one narrator call, got %d", narrator.calls)
	}

	if summary.Overall != "Solid candidate (2 sections)" {
		t.Fatalf("unexpected overall: %q", summary.Overall)
	}
}

func TestSummarizeNarrationFailureIsLogged(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	narrator := &stubNarrator{err: errors.New("quota exhausted")}
	s := NewSummarizer(zap.New(core), narrator, 2)

	summary, err := s.Summarize(context.Background(), testInterview(1))
	if err != nil {
		t.Fatalf("narrator errors must not fail the summary: %v", err)
	}

	if summary.Overall != "" {
		t.Fatalf("expected empty overall, got %q", summary.Overall)
	}

	entries := observed.FilterMessage("narrating summary failed; returning heuristic summary only").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", len(entries))
	}

	if entries[0].ContextMap()["interview_id"] != "iv-1" {
		t.Fatalf("expected interview id on the log entry: %v", entries[0].ContextMap())
	}
}
