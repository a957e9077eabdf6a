package parser

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// blockTags are elements whose boundaries become line breaks in the
// rendered text.
var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "li": {}, "blockquote": {}, "tr": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
}

var multiNewline = regexp.MustCompile(`\n{2,}`)

type Parser struct{}

// ExtractText selects the region matching selector and renders it as
// normalized plain text. The second return value reports whether the
// selector matched anything; an empty selector falls back to readability
// article extraction over the whole document.
func (p *Parser) ExtractText(rawURL, htmlStr, selector string) (string, bool, error) {
	if selector == "" {
		return p.extractArticle(rawURL, htmlStr)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlStr))
	if err != nil {
		return "", false, fmt.Errorf("failed to parse HTML: %w", err)
	}

	sel := doc.Find(selector)
	if sel.Length() == 0 {
		return "", false, nil
	}

	var b strings.Builder
	for _, node := range sel.Nodes {
		renderNode(node, &b)
		b.WriteString("\n")
	}
	return Normalize(b.String()), true, nil
}

// extractArticle lets go-readability find the main content when no
// selector is given.
func (p *Parser) extractArticle(rawURL, htmlStr string) (string, bool, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", false, err
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(htmlStr), parsedURL)
	if err != nil {
		return "", false, fmt.Errorf("readability extraction failed: %w", err)
	}

	text := Normalize(article.TextContent)
	return text, text != "", nil
}

// renderNode walks an HTML subtree, writing text content and inserting
// newlines at block-element boundaries and <br> tags.
func renderNode(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
		if n.Data == "br" {
			b.WriteString("\n")
			return
		}
		_, block := blockTags[n.Data]
		if block {
			b.WriteString("\n")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(c, b)
		}
		if block {
			b.WriteString("\n")
		}
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(c, b)
		}
	}
}

// Normalize trims each line, collapses runs of blank lines, and ends
// non-empty text with exactly one newline.
func Normalize(input string) string {
	lines := strings.Split(input, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text := CollapseNewlines(strings.Join(lines, "\n"))
	text = strings.Trim(text, "\n")
	if text == "" {
		return ""
	}
	return text + "\n"
}

// CollapseNewlines replaces any run of two or more newlines with a single
// newline. Idempotent.
func CollapseNewlines(s string) string {
	return multiNewline.ReplaceAllString(s, "\n")
}
