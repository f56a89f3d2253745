package html_parser

import (
	"fmt"
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const wordsPerMinute = 200

// ExtractText returns the visible text of an HTML fragment with scripts
// and styles removed.
func ExtractText(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return fallbackText(strings.NewReader(raw))
	}
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text())
}

// EstimateReadTime computes reading minutes for an HTML fragment at 200
// words per minute, never reporting less than one minute.
func EstimateReadTime(raw string) int {
	words := len(strings.Fields(ExtractText(raw)))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Heading is one table-of-contents entry.
type Heading struct {
	ID    string `json:"id"`
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// TableOfContents extracts h2/h3 headings from an HTML fragment and
// returns the fragment with anchor IDs assigned to any heading that
// lacks one, alongside the entries. Duplicate anchors get a numeric
// suffix so in-page links stay unambiguous.
func TableOfContents(raw string) (string, []Heading, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw, nil, fmt.Errorf("parsing content: %w", err)
	}

	seen := make(map[string]int)
	headings := make([]Heading, 0)

	doc.Find("h2, h3").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}

		id, ok := s.Attr("id")
		if !ok || id == "" {
			id = slugifyAnchor(text)
			if id == "" {
				id = "section"
			}
		}
		if count := seen[id]; count > 0 {
			seen[id]++
			id = fmt.Sprintf("%s-%d", id, count+1)
		} else {
			seen[id] = 1
		}
		s.SetAttr("id", id)

		level := 2
		if goquery.NodeName(s) == "h3" {
			level = 3
		}
		headings = append(headings, Heading{ID: id, Level: level, Text: text})
	})

	// goquery wraps fragments in html/head/body; unwrap the body again.
	rendered, err := doc.Find("body").Html()
	if err != nil {
		return raw, headings, fmt.Errorf("rendering content: %w", err)
	}
	return rendered, headings, nil
}

func slugifyAnchor(text string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}

func fallbackText(r *strings.Reader) string {
	var b strings.Builder
	z := html.NewTokenizer(r)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(z.Text())
		}
	}
	return strings.TrimSpace(b.String())
}
