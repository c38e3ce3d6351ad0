package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

var (
	renderersMu sync.Mutex
	renderers   = map[int]*glamour.TermRenderer{}
)

// replyStyleConfig is the dark glamour style recolored to the advisor palette.
// Agent replies are short and prose-like, so block margins are removed.
func replyStyleConfig() ansi.StyleConfig {
	cfg := styles.DarkStyleConfig

	cfg.Document.Margin = uintPtr(0)
	cfg.Document.BlockPrefix = ""
	cfg.Document.BlockSuffix = ""
	cfg.Document.Color = stringPtr(ColorText)

	cfg.Paragraph.Margin = uintPtr(0)
	cfg.Heading.Color = stringPtr(ColorBrand)
	cfg.H1.BackgroundColor = nil
	cfg.H1.Color = stringPtr(ColorBrand)
	cfg.Strong.Color = stringPtr(ColorTextBright)
	cfg.Link.Color = stringPtr(ColorInfo)
	cfg.LinkText.Color = stringPtr(ColorInfo)
	cfg.Item.BlockPrefix = "• "
	cfg.Code.Color = stringPtr(ColorWarning)
	return cfg
}

func stringPtr(s string) *string { return &s }
func uintPtr(u uint) *uint       { return &u }

// markdownRenderer returns a renderer wrapping at width, one per width.
func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	renderersMu.Lock()
	defer renderersMu.Unlock()

	if r, ok := renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(replyStyleConfig()),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}
	renderers[width] = r
	return r, nil
}

// RenderMarkdown renders content for the terminal, wrapping at width.
// On failure the content is returned unchanged.
func RenderMarkdown(content string, width int) string {
	if content == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	r, err := markdownRenderer(width)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}
