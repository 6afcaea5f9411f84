// Package extract implements the Extractor interface.
// It isolates the document body of an HTML page (a wiki export, a saved
// requirements page) by removing page chrome and keeping the first content
// container. Tables and emphasis are left intact for the normalizer.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoContent is returned when the page has no usable content container.
var ErrNoContent = errors.New("no content container found in HTML")

// chromeSelectors are removed before extraction. None of them carry
// requirement text.
var chromeSelectors = []string{
	"script", "style", "noscript", "template",
	"nav", "footer", "aside",
	"img", "picture", "figure", "svg", "canvas",
	"iframe", "video", "audio",
	"form", "button", "input", "select", "textarea",
	".sidebar", ".menu", ".navigation", ".toc", "#toc",
}

// containerSelectors are tried in order; the first match wins.
var containerSelectors = []string{"main", "article", "[role=main]", "#content", "body"}

// HTMLExtractor strips page chrome and returns the content fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract takes raw HTML and returns the inner HTML of the best content
// container.
func (e *HTMLExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range chromeSelectors {
		doc.Find(sel).Remove()
	}

	var content *goquery.Selection
	for _, sel := range containerSelectors {
		if found := doc.Find(sel); found.Length() > 0 {
			content = found.First()
			break
		}
	}
	if content == nil || strings.TrimSpace(content.Text()) == "" {
		return "", ErrNoContent
	}

	result, err := content.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return result, nil
}
