package gemini

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/interview-insights/internal/ai"
	"github.com/spigell/interview-insights/internal/interview"
	"github.com/spigell/interview-insights/internal/utils"
)

const (
	defaultMaxLogLength = 200

	systemInstruction = "You are a careful hiring committee assistant. You summarize interview feedback faithfully and answer in JSON."
)

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, prompt string) (string, error)
}

// Narrator asks Gemini for an overall assessment of a summarized interview.
type Narrator struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

var _ ai.Narrator = (*Narrator)(nil)

func NewNarrator(generator contentGenerator, maxLogLength int, logger *zap.Logger) *Narrator {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Narrator{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Narrate returns the overall assessment followed by the recommendation.
func (n *Narrator) Narrate(ctx context.Context, summary *interview.Summary) (string, error) {
	narration, err := n.Evaluate(ctx, summary)
	if err != nil {
		return "", err
	}
	return narration.Text(), nil
}

// Evaluate sends the summary to Gemini and parses the structured answer.
func (n *Narrator) Evaluate(ctx context.Context, summary *interview.Summary) (*ai.Narration, error) {
	if summary == nil {
		return nil, errors.New("summary is required")
	}

	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary payload: %w", err)
	}

	prompt := buildPrompt(string(summaryJSON))

	n.logger.Debug("gemini generate content request",
		zap.String("interview_id", summary.InterviewID),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, n.maxLogLen)),
	)

	raw, err := n.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	n.logger.Debug("gemini generate content response",
		zap.String("interview_id", summary.InterviewID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, n.maxLogLen)),
	)

	narration, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	narration.Raw = raw
	return narration, nil
}

func buildPrompt(summaryJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Summary:\n{{SUMMARY_JSON}}\n\nJSON Response:"
	}
	return strings.ReplaceAll(template, "{{SUMMARY_JSON}}", summaryJSON)
}

func parseResponse(raw string) (*ai.Narration, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	narration := &ai.Narration{
		Overall:        coerceString(data["overall"]),
		Recommendation: coerceString(data["recommendation"]),
	}

	if narration.Overall == "" && narration.Recommendation == "" {
		return nil, errors.New("gemini response has neither overall nor recommendation")
	}

	return narration, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
