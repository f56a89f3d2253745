package html_parser

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

// ContentPolicy returns the sanitizer applied to post bodies before they
// are stored. The editor produces rich HTML, so the UGC policy is
// extended with the structural elements it emits; script and event
// handler attributes never survive.
func ContentPolicy() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("figure", "figcaption", "section", "mark")
		policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
		policy.AllowAttrs("class").OnElements("blockquote", "p", "span", "table", "figure")
		policy.AllowTables()
		contentPolicy = policy
	})
	return contentPolicy
}

// SanitizeContent strips unsafe markup from editor-submitted HTML.
func SanitizeContent(raw string) string {
	return ContentPolicy().Sanitize(raw)
}
