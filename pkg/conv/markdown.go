package conv

import (
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/inbucket/html2text"
	"github.com/microcosm-cc/bluemonday"
)

var (
	extensions = parser.CommonExtensions | parser.NoEmptyLineBeforeBlock
	htmlFlags  = html.CommonFlags
	// Answers come back from a remote service; strip anything that is not
	// plain user-generated formatting before rendering.
	policy = bluemonday.UGCPolicy()
)

// MarkdownToTerminal renders a markdown answer as plain text for terminal
// output. On render failure the raw markdown is returned as-is.
func MarkdownToTerminal(md string) string {
	p := parser.NewWithExtensions(extensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	unsafeHTML := markdown.Render(p.Parse([]byte(md)), renderer)

	sanitized := policy.SanitizeBytes(unsafeHTML)

	text, err := html2text.FromString(string(sanitized))
	if err != nil {
		return strings.TrimSpace(md)
	}
	return strings.TrimSpace(text)
}
