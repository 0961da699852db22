package feedback

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// minSnippetLength is the length a first sentence must exceed to be appended
// to a statement without indicators.
const minSnippetLength = 10

// Group holds the entries that share a topic.
type Group struct {
	Topic   string
	Entries []Entry
}

// GroupByTopic buckets entries by ExtractTopic of their question. Groups come
// out in the order their topic was first seen.
func GroupByTopic(entries []Entry) []*Group {
	var groups []*Group
	index := make(map[string]*Group)

	for _, entry := range entries {
		topic := ExtractTopic(entry.QuestionText)
		group, ok := index[topic]
		if !ok {
			group = &Group{Topic: topic}
			index[topic] = group
			groups = append(groups, group)
		}
		group.Entries = append(group.Entries, entry)
	}

	return groups
}

// AverageRating is the arithmetic mean of the entries' ratings.
func (g *Group) AverageRating() float64 {
	if len(g.Entries) == 0 {
		return 0
	}

	var sum float64
	for _, e := range g.Entries {
		sum += e.Rating
	}
	return sum / float64(len(g.Entries))
}

// Notes joins the non-empty notes of the group with a space.
func (g *Group) Notes() string {
	notes := make([]string, 0, len(g.Entries))
	for _, e := range g.Entries {
		if e.Notes != "" {
			notes = append(notes, e.Notes)
		}
	}
	return strings.Join(notes, " ")
}

// StrengthStatement describes a well rated topic.
func StrengthStatement(g *Group) string {
	return statement(g, "Strong understanding of ", PositiveIndicators, func(n int) string {
		return fmt.Sprintf(" across %d different aspects", n)
	})
}

// GapStatement describes a poorly rated topic.
func GapStatement(g *Group) string {
	return statement(g, "Needs improvement in ", ImprovementIndicators, func(int) string {
		return " (struggled with multiple aspects)"
	})
}

func statement(g *Group, prefix string, indicators func(string) []string, multiple func(int) string) string {
	base := prefix + g.Topic
	notes := g.Notes()

	if found := indicators(notes); len(found) > 0 {
		return base + " - " + found[0]
	}

	if len(g.Entries) > 1 {
		return base + multiple(len(g.Entries))
	}

	if notes != "" {
		if snippet := firstSentence(notes); utf8.RuneCountInString(snippet) > minSnippetLength {
			return base + " - " + snippet
		}
	}

	return base
}

// Scorer rates a statement; higher scores are ranked first.
type Scorer func(statement string) int

// ByLength scores a statement by its length in characters. Longer statements
// are assumed to be more detailed; this is a heuristic and says nothing about
// quality.
func ByLength(statement string) int {
	return utf8.RuneCountInString(statement)
}

// Rank orders statements by descending score, keeping the input order for
// equal scores, and returns at most limit of them. The result is never nil.
func Rank(statements []string, limit int, score Scorer) []string {
	ranked := slices.Clone(statements)
	slices.SortStableFunc(ranked, func(a, b string) int {
		return score(b) - score(a)
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	if ranked == nil {
		return []string{}
	}
	return ranked
}
