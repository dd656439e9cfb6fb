// Package jdtext normalizes pasted job description input into plain text
// before scoring. Postings copied from job boards often arrive as HTML
// fragments; the scorer expects readable text.
package jdtext

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// htmlTagRe is a cheap sniff for markup; a single tag-looking token is
// enough to route input through the HTML extractor.
var htmlTagRe = regexp.MustCompile(`<\s*(!doctype|html|body|div|p|br|ul|ol|li|span|h[1-6]|section|article|table)\b`)

// whitespaceRe collapses runs of whitespace (including newlines) left over
// after tag removal.
var whitespaceRe = regexp.MustCompile(`[ \t]+`)

// blankLinesRe collapses three or more consecutive newlines.
var blankLinesRe = regexp.MustCompile(`\n{3,}`)

// FromHTML extracts readable text from an HTML job posting. Script, style,
// and chrome elements (nav, header, footer) are dropped; block elements
// become line breaks so list items stay separated.
func FromHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse job description HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer, iframe").Remove()

	// Insert separators so adjacent blocks don't run together.
	doc.Find("br, p, div, li, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	return collapseWhitespace(root.Text()), nil
}

// Normalize returns plain text for a job description that may be either
// HTML or already-plain text. Plain input passes through with whitespace
// collapsed; empty input stays empty.
func Normalize(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}
	if htmlTagRe.MatchString(strings.ToLower(input)) {
		return FromHTML(input)
	}
	return collapseWhitespace(input), nil
}

// collapseWhitespace trims each line and squeezes runs of spaces and blank
// lines.
func collapseWhitespace(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
