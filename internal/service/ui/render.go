package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathadriele/creditlens/internal/core"
	"github.com/nathadriele/creditlens/pkg/conv"
)

const maxRenderedSources = 5

// RenderResponse formats a retrieval answer for the terminal: the answer
// body, a confidence badge, the top sources, and usage numbers.
func RenderResponse(resp *core.RetrievalResponse) string {
	var b strings.Builder

	b.WriteString(conv.MarkdownToTerminal(resp.Answer))
	b.WriteString("\n\n")

	badge := ConfidenceStyle(resp.Confidence).Render(fmt.Sprintf("Confidence: %.0f%%", resp.Confidence*100))
	b.WriteString(badge)
	b.WriteString("\n")

	if len(resp.Sources) > 0 {
		b.WriteString(TitleStyle.Render(fmt.Sprintf("Sources (%d)", len(resp.Sources))))
		b.WriteString("\n")

		sources := resp.Sources
		if len(sources) > maxRenderedSources {
			sources = sources[:maxRenderedSources]
		}
		for i, src := range sources {
			b.WriteString(SourceStyle.Render(fmt.Sprintf("%d. %s (score %.2f)", i+1, src.Title, src.Score)))
			b.WriteString("\n")
			if src.Content != "" {
				b.WriteString(MetaStyle.Render("   " + src.Content))
				b.WriteString("\n")
			}
			if line := metadataLine(src.Metadata); line != "" {
				b.WriteString(MetaStyle.Render("   " + line))
				b.WriteString("\n")
			}
		}
	}

	if resp.Usage.TotalTokens > 0 || resp.Usage.ProcessingTime > 0 {
		b.WriteString(MetaStyle.Render(fmt.Sprintf("Tokens: %d | Processing: %.2fs",
			resp.Usage.TotalTokens, resp.Usage.ProcessingTime)))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderHistory formats recent conversation turns, newest first.
func RenderHistory(turns []core.Turn) string {
	if len(turns) == 0 {
		return MetaStyle.Render("No conversation history yet.") + "\n"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Recent turns (%d)", len(turns))))
	b.WriteString("\n")
	for _, turn := range turns {
		b.WriteString(SourceStyle.Render("Q: " + turn.Query))
		b.WriteString("\n")
		b.WriteString("A: " + summarize(turn.Response.Answer))
		b.WriteString("\n")
		b.WriteString(MetaStyle.Render(turn.Timestamp.Format("2006-01-02 15:04:05")))
		b.WriteString("\n\n")
	}
	return b.String()
}

// metadataLine joins metadata as "k=v" pairs in key order so output is
// stable across runs.
func metadataLine(meta map[string]string) string {
	if len(meta) == 0 {
		return ""
	}
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+meta[k])
	}
	return strings.Join(pairs, " ")
}

func summarize(answer string) string {
	answer = strings.ReplaceAll(strings.TrimSpace(answer), "\n", " ")
	const limit = 120
	if len(answer) <= limit {
		return answer
	}
	return answer[:limit] + "…"
}
