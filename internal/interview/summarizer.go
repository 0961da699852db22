package interview

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/interview-insights/internal/feedback"
	"github.com/spigell/interview-insights/internal/logger"
)

const defaultConcurrency = 4

type narrator interface {
	Narrate(ctx context.Context, summary *Summary) (string, error)
}

// Summarizer runs the feedback analysis for every section of an interview.
type Summarizer struct {
	logger      *zap.Logger
	narrator    narrator
	concurrency int
}

// NewSummarizer creates a Summarizer. A nil narrator disables the overall
// narrative; concurrency <= 0 falls back to the default.
func NewSummarizer(logger *zap.Logger, narrator narrator, concurrency int) *Summarizer {
	if logger == nil {
		logger = zap.NewNop()
	}

	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &Summarizer{
		logger:      logger,
		narrator:    narrator,
		concurrency: concurrency,
	}
}

// Summarize analyzes sections in parallel. Sections keep their input order in
// the summary regardless of completion order.
func (s *Summarizer) Summarize(ctx context.Context, iv Interview) (*Summary, error) {
	if len(iv.Sections) == 0 {
		return nil, ErrNoSections
	}

	log := logger.WithFields(s.logger, logger.InterviewFields(iv.ID, iv.Candidate)...)

	analyses := make([]feedback.Analysis, len(iv.Sections))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, section := range iv.Sections {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			analysis := feedback.Analyze(section.Title, section.Questions)
			analyses[i] = analysis

			log.Debug("section analyzed",
				zap.String("section", section.Title),
				zap.Int("questions", analysis.Step.Initial),
				zap.Int("kept", analysis.Step.Left),
				zap.Int("dropped", analysis.Step.Dropped),
				zap.Int("strengths", len(analysis.Strengths)),
				zap.Int("gaps", len(analysis.Gaps)),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyzing sections: %w", err)
	}

	summary := &Summary{
		InterviewID: iv.ID,
		Candidate:   iv.Candidate,
		Position:    iv.Position,
		Sections:    analyses,
	}

	if s.narrator != nil {
		overall, err := s.narrator.Narrate(ctx, summary)
		if err != nil {
			log.Warn("narrating summary failed; returning heuristic summary only", zap.Error(err))
		} else {
			summary.Overall = overall
		}
	}

	log.Info("interview summarized",
		zap.Int("sections", summary.Len()),
		zap.Bool("narrated", summary.Overall != ""),
	)

	return summary, nil
}
