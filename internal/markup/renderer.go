// Package markup converts Markdown draft bodies to email-ready HTML
// and injects the open-tracking beacon.
package markup

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts Markdown to HTML the way prospect emails expect it:
// single newlines become <br>, pipe tables and fenced code blocks work.
type Renderer struct {
	md       goldmark.Markdown
	pixelURL string
}

func NewRenderer(pixelURL string) *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithUnsafe(),
			),
		),
		pixelURL: pixelURL,
	}
}

func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// WithTrackingPixel appends a 1x1 transparent beacon to rendered HTML.
// docType tells the tracker whether the pixel belongs to a draft or a
// follow-up document.
func (r *Renderer) WithTrackingPixel(htmlBody, pixelID string, followup bool) string {
	docType := "draft"
	if followup {
		docType = "followup"
	}
	src := fmt.Sprintf("%s?id=%s&type=%s", r.pixelURL, url.QueryEscape(pixelID), docType)
	return htmlBody + fmt.Sprintf(`<img src="%s" width="1" height="1" style="display:none" alt="">`, src)
}
