package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/spigell/interview-insights/internal/interview"
)

type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat accepts a format name case-insensitively; "md" is an alias
// for markdown.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "markdown", "md", "":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown output format: %q", name)
	}
}

// Render writes the summary to w in the given format.
func Render(w io.Writer, summary *interview.Summary, format Format) error {
	if summary == nil {
		return fmt.Errorf("summary is required")
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(summary))
		return err
	case FormatHTML:
		return renderHTML(w, summary)
	default:
		return fmt.Errorf("unknown output format: %q", format)
	}
}

// Markdown renders the summary as a markdown document.
func Markdown(summary *interview.Summary) string {
	var b strings.Builder

	title := "Interview summary"
	if summary.Candidate != "" {
		title += ": " + summary.Candidate
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if summary.Position != "" {
		fmt.Fprintf(&b, "_Position: %s_\n\n", summary.Position)
	}

	if summary.Overall != "" {
		fmt.Fprintf(&b, "%s\n\n", summary.Overall)
	}

	for _, section := range summary.Sections {
		heading := section.SectionTitle
		if heading == "" {
			heading = "Untitled section"
		}
		fmt.Fprintf(&b, "## %s\n\n", heading)
		writeList(&b, "Strengths", "_No notable strengths._", section.Strengths)
		writeList(&b, "Gaps", "_No notable gaps._", section.Gaps)
	}

	return b.String()
}

func writeList(b *strings.Builder, heading, empty string, items []string) {
	fmt.Fprintf(b, "### %s\n\n", heading)
	if len(items) == 0 {
		fmt.Fprintf(b, "%s\n\n", empty)
		return
	}
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func renderHTML(w io.Writer, summary *interview.Summary) error {
	var content bytes.Buffer
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(Markdown(summary)), &content); err != nil {
		return fmt.Errorf("markdown convert: %w", err)
	}

	title := "Interview summary"
	if summary.Candidate != "" {
		title += " - " + summary.Candidate
	}

	_, err := fmt.Fprintf(w,
		"<!doctype html><html><head><meta charset='utf-8'><title>%s</title></head><body>\n%s</body></html>\n",
		html.EscapeString(title), content.String(),
	)
	return err
}
