// Package seo builds the page metadata and schema.org payloads emitted
// on every rendered page.
package seo

// Meta carries the head-section metadata for one page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	ImageURL    string
	OGType      string
}

// BuildMeta assembles page metadata. OGType defaults to "website";
// article pages pass "article".
func BuildMeta(title, description, canonical, imageURL, ogType string) Meta {
	if ogType == "" {
		ogType = "website"
	}
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		ImageURL:    imageURL,
		OGType:      ogType,
	}
}
