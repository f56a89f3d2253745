package seo

import (
	"encoding/json"
	"html/template"
	"time"

	"grandriver/domain"
)

// Crumb is one breadcrumb entry: a label and a site-relative path.
type Crumb struct {
	Label string
	Path  string
}

// Organization returns the schema.org Organization payload.
func Organization(baseURL, name, description, logoURL string) map[string]any {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "Organization",
		"url":         baseURL,
		"name":        name,
		"description": description,
	}
	if logoURL != "" {
		data["logo"] = logoURL
	}
	return data
}

// WebsiteSearch returns the schema.org WebSite payload with a
// SearchAction pointing at the blog index query parameter.
func WebsiteSearch(baseURL string) map[string]any {
	return map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"url":      baseURL,
		"potentialAction": map[string]any{
			"@type":       "SearchAction",
			"target":      baseURL + "/blog?query={search_term_string}",
			"query-input": "required name=search_term_string",
		},
	}
}

// Breadcrumbs returns the schema.org BreadcrumbList payload.
func Breadcrumbs(baseURL string, crumbs []Crumb) map[string]any {
	items := make([]map[string]any, 0, len(crumbs))
	for i, crumb := range crumbs {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb.Label,
			"item":     baseURL + crumb.Path,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

// BlogPosting returns the schema.org BlogPosting payload for a post.
func BlogPosting(baseURL string, post *domain.Post, siteName, siteDescription string) map[string]any {
	canonical := baseURL + "/post/" + post.Slug

	publishDate := post.DisplayDate()
	updateDate := post.UpdatedAt
	if updateDate.IsZero() {
		updateDate = publishDate
	}

	data := map[string]any{
		"@context":         "https://schema.org",
		"@type":            "BlogPosting",
		"headline":         post.Title,
		"description":      post.SEODescription(siteDescription),
		"datePublished":    publishDate.Format(time.RFC3339),
		"dateModified":     updateDate.Format(time.RFC3339),
		"mainEntityOfPage": canonical,
		"url":              canonical,
		"author": map[string]any{
			"@type": "Organization",
			"name":  siteName,
		},
		"publisher": map[string]any{
			"@type":       "Organization",
			"name":        siteName,
			"description": siteDescription,
		},
	}
	if post.CoverURL != "" {
		data["image"] = post.CoverURL
	}
	if tags := post.TagList(); len(tags) > 0 {
		data["keywords"] = tags
	}
	return data
}

// RenderJSON marshals a JSON-LD payload for embedding inside a
// script tag. Marshal failures degrade to an empty object rather than
// breaking page rendering.
func RenderJSON(payload map[string]any) template.JS {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return template.JS("{}")
	}
	return template.JS(encoded)
}
