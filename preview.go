package md2slack

import (
	"bytes"
	"context"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// previewTemplate wraps Goldmark's fragment output in a complete HTML5
// document so the preview opens directly in a browser.
const previewTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Message Preview</title>
</head>
<body>
%s
</body>
</html>`

// previewRenderer abstracts markdown to HTML rendering for local preview.
type previewRenderer interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkPreview renders markdown to HTML using goldmark (pure Go).
type goldmarkPreview struct {
	md goldmark.Markdown
}

// newGoldmarkPreview creates a goldmarkPreview with GFM tables and inline
// syntax highlighting, so a preview shows the same tables and code fences
// the compiled payload carries.
func newGoldmarkPreview(style string) *goldmarkPreview {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // Inline styles: the preview is a single self-contained file
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>, matching chat rendering
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &goldmarkPreview{md: md}
}

// ToHTML renders markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (p *goldmarkPreview) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := p.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrPreviewRender, err)}
			return
		}
		done <- result{html: fmt.Sprintf(previewTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
