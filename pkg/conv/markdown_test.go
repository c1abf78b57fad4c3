package conv

import (
	"strings"
	"testing"
)

// html2text uppercases headings, so matching is case-insensitive.
func TestMarkdownToTerminal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "empty input",
			input:    "",
			contains: nil,
		},
		{
			name:     "plain text",
			input:    "Hello world",
			contains: []string{"Hello world"},
		},
		{
			name:     "bold markers stripped",
			input:    "**Personal Loans**: 650 minimum credit score",
			contains: []string{"Personal Loans", "650 minimum credit score"},
			excludes: []string{"**", "<strong>"},
		},
		{
			name:  "bullet list survives",
			input: "- **Personal Loans**: 650\n- **Business Loans**: 700",
			contains: []string{
				"Personal Loans", "650",
				"Business Loans", "700",
			},
			excludes: []string{"<li>"},
		},
		{
			name:     "numbered list survives",
			input:    "1. **Credit History**: payment history\n2. **Collateral**: asset valuation",
			contains: []string{"Credit History", "Collateral"},
			excludes: []string{"<ol>"},
		},
		{
			name:     "script tags sanitized away",
			input:    "<script>alert('xss')</script>safe",
			contains: []string{"safe"},
			excludes: []string{"alert", "script"},
		},
		{
			name:     "header markers stripped",
			input:    "# Minimum Requirements",
			contains: []string{"Minimum Requirements"},
			excludes: []string{"#", "<h1>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MarkdownToTerminal(tt.input)
			lower := strings.ToLower(got)
			for _, want := range tt.contains {
				if !strings.Contains(lower, strings.ToLower(want)) {
					t.Errorf("MarkdownToTerminal(%q) = %q, missing %q", tt.input, got, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(lower, strings.ToLower(bad)) {
					t.Errorf("MarkdownToTerminal(%q) = %q, should not contain %q", tt.input, got, bad)
				}
			}
		})
	}
}
