package feedback

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minFallbackLength is the length a first sentence must exceed to be used as
// an indicator when no pattern matched.
const minFallbackLength = 15

// indicatorPattern captures the phrase that follows a trigger, up to the next
// comma or period. group is the index of that capture.
type indicatorPattern struct {
	name  string
	re    *regexp.Regexp
	group int
}

var positivePatterns = []indicatorPattern{
	{name: "demonstrated", re: regexp.MustCompile(`(?i)\bdemonstrated\s+([^,.]+)`), group: 1},
	{name: "good_understanding", re: regexp.MustCompile(`(?i)\bgood\s+(understanding|grasp)\s+of\s+([^,.]+)`), group: 2},
	{name: "excellent", re: regexp.MustCompile(`(?i)\bexcellent\s+([^,.]+)`), group: 1},
	{name: "strong", re: regexp.MustCompile(`(?i)\bstrong\s+([^,.]+)`), group: 1},
	{name: "well_handled", re: regexp.MustCompile(`(?i)\bwell[- ]?handled\s+([^,.]+)`), group: 1},
	{name: "clear_understanding", re: regexp.MustCompile(`(?i)\bclear[- ]?understanding\s+of\s+([^,.]+)`), group: 1},
}

var improvementPatterns = []indicatorPattern{
	{name: "needs_work", re: regexp.MustCompile(`(?i)\bneeds?\s+(to\s+)?(work\s+)?on\s+([^,.]+)`), group: 3},
	{name: "struggled", re: regexp.MustCompile(`(?i)\b(didn't|does not|struggled|weak)\s+(with|in|on)\s+([^,.]+)`), group: 3},
	{name: "unclear", re: regexp.MustCompile(`(?i)\b(unclear|incomplete|confused|limited)(?:\s+(understanding|grasp))?(?:\s+(of|in))?\s+([^,.]+)`), group: 4},
	{name: "lacking", re: regexp.MustCompile(`(?i)\blacking\s+([^,.]+)`), group: 1},
	{name: "insufficient", re: regexp.MustCompile(`(?i)\binsufficient\s+([^,.]+)`), group: 1},
}

// PositiveIndicators returns the praised details found in notes, in pattern
// order. The first sentence is returned when nothing matched and it is long
// enough.
func PositiveIndicators(notes string) []string {
	return extractIndicators(notes, positivePatterns)
}

// ImprovementIndicators is PositiveIndicators for criticism.
func ImprovementIndicators(notes string) []string {
	return extractIndicators(notes, improvementPatterns)
}

func extractIndicators(notes string, patterns []indicatorPattern) []string {
	var found []string

	for _, p := range patterns {
		for _, match := range p.re.FindAllStringSubmatch(notes, -1) {
			if p.group >= len(match) {
				continue
			}
			if phrase := strings.TrimSpace(match[p.group]); phrase != "" {
				found = append(found, phrase)
			}
		}
	}

	if len(found) > 0 {
		return found
	}

	if sentence := firstSentence(notes); utf8.RuneCountInString(sentence) > minFallbackLength {
		return []string{sentence}
	}

	return nil
}

func firstSentence(text string) string {
	if idx := strings.Index(text, "."); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
