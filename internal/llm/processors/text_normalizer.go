package processors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"resume-composer/internal/sections"
)

var (
	fencePattern    = regexp.MustCompile("(?s)^```[A-Za-z0-9_-]*\\s*\\n(.*?)\\n?```\\s*$")
	boldPattern     = regexp.MustCompile(`\*\*(\S(?:[^*\n]*\S)?)\*\*`)
	headingPattern  = regexp.MustCompile(`^#{1,6}\s+`)
	spacePattern    = regexp.MustCompile(`[ \t\f\v]+`)
	htmlPattern     = regexp.MustCompile(`(?i)^\s*(<!doctype html|<html|<body|<div|<p>|<h[1-6])`)
)

// TextNormalizer turns a model completion into plain resume text lines
type TextNormalizer struct {
	// Tags dropped together with their content
	removeTags []string
	// Elements that end a line of text
	blockTags []string
}

// NewTextNormalizer creates a new normalizer instance
func NewTextNormalizer() *TextNormalizer {
	return &TextNormalizer{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"svg", "meta", "link", "title", "head",
		},
		blockTags: []string{
			"p", "div", "li", "tr", "section", "article", "header", "footer",
			"h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "table",
		},
	}
}

// Normalize strips a wrapping code fence, reduces an HTML completion to text lines,
// unwraps **bold** spans, drops '#' markers in front of section headings and trims
// every line. Blank lines are kept as single empty lines. Other text is left as is,
// so "__init__" or "# of users" survive.
func (tn *TextNormalizer) Normalize(completion string) string {
	text := strings.TrimSpace(completion)
	if text == "" {
		return ""
	}

	if m := fencePattern.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	if htmlPattern.MatchString(text) {
		if extracted, err := tn.htmlToText(text); err == nil && strings.TrimSpace(extracted) != "" {
			text = extracted
		}
	}

	return tn.cleanLines(text)
}

// htmlToText renders the visible text of an HTML fragment, one block element per line
func (tn *TextNormalizer) htmlToText(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}

	for _, tag := range tn.removeTags {
		doc.Find(tag).Remove()
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(strings.Join(tn.blockTags, ", ")).Each(func(_ int, s *goquery.Selection) {
		s.BeforeHtml("\n")
		s.AfterHtml("\n")
	})
	doc.Find("td, th").Each(func(i int, s *goquery.Selection) {
		if s.Prev().Length() > 0 {
			s.PrependHtml(": ")
		}
	})

	return doc.Find("body").Text(), nil
}

func (tn *TextNormalizer) cleanLines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var (
		out       []string
		lastBlank = true
	)
	for _, line := range strings.Split(text, "\n") {
		line = stripHeadingMarker(strings.TrimSpace(line))
		line = boldPattern.ReplaceAllString(line, "${1}")
		line = strings.TrimSpace(spacePattern.ReplaceAllString(line, " "))

		if line == "" {
			if !lastBlank {
				out = append(out, "")
			}
			lastBlank = true
			continue
		}
		out = append(out, line)
		lastBlank = false
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

// stripHeadingMarker removes a leading "# " run only when the rest is a section heading
func stripHeadingMarker(line string) string {
	marker := headingPattern.FindString(line)
	if marker == "" || !sections.IsHeading(line[len(marker):]) {
		return line
	}
	return line[len(marker):]
}
