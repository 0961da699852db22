package feedback

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxTopicLength = 80

var (
	// A question word may carry its auxiliary verb ("what is", "how does").
	leadingVerbRe = regexp.MustCompile(`(?i)^(?:explain|describe|what|how|why|implement|design|write|build|create|demonstrate|show|tell|discuss|compare|analyze|list|name|define)(?:\s+(?:is|are|was|were|do|does|did|can|could|would|should|will))?\s+`)
	leadingTheRe  = regexp.MustCompile(`(?i)^the\s+`)
)

// ExtractTopic derives a short label from question text. The steps run in a
// fixed order: cut at the first '?', drop one leading instruction verb, drop a
// leading "the", capitalize, then shorten to 80 characters plus "...".
// Blank input gives an empty topic.
//
// The dropped verb takes one auxiliary with it when present (is, are, was,
// were, do, does, did, can, could, would, should, will), so "What is a
// closure?" gives "A closure" and "How does garbage collection work?" gives
// "Garbage collection work".
func ExtractTopic(question string) string {
	topic := question
	if idx := strings.Index(topic, "?"); idx >= 0 {
		topic = topic[:idx]
	}
	topic = strings.TrimSpace(topic)

	if loc := leadingVerbRe.FindStringIndex(topic); loc != nil {
		topic = topic[loc[1]:]
	}

	if loc := leadingTheRe.FindStringIndex(topic); loc != nil {
		topic = topic[loc[1]:]
	}

	topic = capitalize(topic)

	if utf8.RuneCountInString(topic) > maxTopicLength {
		topic = string([]rune(topic)[:maxTopicLength]) + "..."
	}

	return topic
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
