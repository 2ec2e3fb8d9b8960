// Package ingestion cleans recruiter-supplied posting content before storage.
package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	multiSpace   = regexp.MustCompile(`[ \t]+`)
	multiNewline = regexp.MustCompile(`\n{3,}`)
)

// LooksLikeHTML reports whether a description appears to be HTML markup
// rather than plain text.
func LooksLikeHTML(s string) bool {
	trimmed := strings.TrimSpace(s)
	return strings.Contains(trimmed, "</") || strings.HasPrefix(trimmed, "<")
}

// ExtractText parses an HTML fragment and returns its readable text.
// Navigation, script and style elements are stripped; whitespace is
// collapsed. Recruiters often paste descriptions straight from careers pages.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, iframe, form, button").Remove()

	content := doc.Find("main, article").First()
	if content.Length() == 0 {
		content = doc.Find("body")
	}

	// Keep list items and paragraphs on their own lines before flattening.
	content.Find("li, p, br, h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return cleanWhitespace(content.Text()), nil
}

// NormalizeDescription returns plain text for a posting description,
// extracting from HTML when needed and trimming otherwise. Extraction
// failures fall back to the raw input rather than rejecting the posting.
func NormalizeDescription(description string) string {
	if !LooksLikeHTML(description) {
		return strings.TrimSpace(description)
	}
	text, err := ExtractText(description)
	if err != nil || text == "" {
		return strings.TrimSpace(description)
	}
	return text
}

// cleanWhitespace collapses runs of spaces and blank lines.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")
	text = multiNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
